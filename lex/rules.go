package lex

// LexicalRule is one rule of a ruleset handed to Build: a regex pattern,
// the token kind it produces, a priority used to break same-length-match
// ties, and whether matches of this rule should be dropped from Tokenize's
// output (for whitespace and comments).
//
// Priority ties are resolved in favor of the lowest Priority value; if two
// rules share both length and priority, the rule appearing earlier in the
// slice passed to Build wins - rules are fused in declaration order, so an
// earlier rule's accepting state always has a lower NFA state id than that
// of a same-priority rule following it, and the lower id wins. See
// automaton.winningTag.
type LexicalRule struct {
	Pattern  string
	Kind     TokenKind
	Priority int
	Ignore   bool
}
