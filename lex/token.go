// Package lex implements the tokenizer (C7): fusing a ruleset's compiled
// rule automata into one multi-accept DFA, then scanning input against it
// with maximal-munch-then-lowest-priority-wins semantics, emitting UNKNOWN
// tokens for unrecognized input and a trailing EOF token.
//
// Grounded on the teacher's lex package for idiom (Token shape, line/column
// bookkeeping, panic-mode-style recovery on unmatched input) even though the
// teacher's own runtime lexer (lazy.go) delegates to Go's regexp package
// rather than running a hand-built DFA; pike's Tokenizer is the part of
// this module that actually implements the regex -> NFA -> DFA pipeline
// spec.md calls for.
package lex

import "fmt"

// TokenKind names a lexical rule's category - spec's "token_kind" - e.g.
// "NUMBER", "KW_IF", "IDENTIFIER". UNKNOWN and EOF are reserved kinds emitted by
// the tokenizer itself rather than by any rule.
type TokenKind string

const (
	// KindUnknown is emitted for a single rune of input at which no rule's
	// automaton accepts; each unmatched rune gets its own UNKNOWN token.
	KindUnknown TokenKind = "UNKNOWN"
	// KindEOF is always the last token of a Tokenize call's output.
	KindEOF TokenKind = "EOF"
)

// Token is a lexeme recognized from the input, tagged with its rule's kind
// and its position. Grounded on the teacher's lexerToken fields (lexed,
// linePos, lineNum, line), flattened into one exported struct since pike
// has no need for the teacher's Token/TokenClass interface split - there is
// only ever one concrete token representation in this module.
type Token struct {
	Kind   TokenKind
	Lexeme string

	// Position is the 0-based rune offset of the token's first rune in the
	// input Tokenize was called on.
	Position int
	// Line is the 1-based line number the token starts on.
	Line int
	// Column is the 1-based column (rune count since the last newline) the
	// token starts on.
	Column int
}

func (t Token) String() string {
	return fmt.Sprintf("%s %q (line %d, col %d)", t.Kind, t.Lexeme, t.Line, t.Column)
}
