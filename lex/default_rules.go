package lex

// Token kinds produced by DefaultRules.
const (
	KindNumber     TokenKind = "NUMBER"
	KindIdent      TokenKind = "IDENTIFIER"
	KindString     TokenKind = "STRING"
	KindKwIf       TokenKind = "KW_IF"
	KindKwElse     TokenKind = "KW_ELSE"
	KindKwWhile    TokenKind = "KW_WHILE"
	KindKwFor      TokenKind = "KW_FOR"
	KindKwInt      TokenKind = "KW_INT"
	KindKwFloat    TokenKind = "KW_FLOAT"
	KindKwBoolean  TokenKind = "KW_BOOLEAN"
	KindKwTrue     TokenKind = "KW_TRUE"
	KindKwFalse    TokenKind = "KW_FALSE"
	KindKwReturn   TokenKind = "KW_RETURN"
	KindKwVoid     TokenKind = "KW_VOID"
	KindAssign     TokenKind = "ASSIGN"
	KindEq         TokenKind = "EQ"
	KindLE         TokenKind = "LE"
	KindGE         TokenKind = "GE"
	KindLT         TokenKind = "LT"
	KindGT         TokenKind = "GT"
	KindPlus       TokenKind = "PLUS"
	KindMinus      TokenKind = "MINUS"
	KindStar       TokenKind = "STAR"
	KindSlash      TokenKind = "SLASH"
	KindSemi       TokenKind = "SEMI"
	KindComma      TokenKind = "COMMA"
	KindLParen     TokenKind = "LPAREN"
	KindRParen     TokenKind = "RPAREN"
	KindLBrace     TokenKind = "LBRACE"
	KindRBrace     TokenKind = "RBRACE"
	KindWhitespace TokenKind = "WHITESPACE"
	KindComment    TokenKind = "COMMENT"
)

// DefaultRules returns a conformance-fixture ruleset exercising every rule
// shape spec §8's end-to-end scenarios require: keywords (lowest priority
// values, so they win ties against IDENTIFIER), then operators, then
// literals, then ignored whitespace/comments. Priorities are assigned by
// position in this list, so every rule gets a distinct value (spec §3:
// "Priorities are unique per ruleset") while preserving the keyword-before-
// operator-before-literal-before-ignore tie-break order across groups.
//
// This is a fixture for exercising Build/Tokenize, not a general rule
// description language - loading rulesets from a config file is out of
// scope (see spec's Non-goals).
func DefaultRules() []LexicalRule {
	rules := []LexicalRule{
		{Pattern: `if`, Kind: KindKwIf},
		{Pattern: `else`, Kind: KindKwElse},
		{Pattern: `while`, Kind: KindKwWhile},
		{Pattern: `for`, Kind: KindKwFor},
		{Pattern: `int`, Kind: KindKwInt},
		{Pattern: `float`, Kind: KindKwFloat},
		{Pattern: `boolean`, Kind: KindKwBoolean},
		{Pattern: `true`, Kind: KindKwTrue},
		{Pattern: `false`, Kind: KindKwFalse},
		{Pattern: `return`, Kind: KindKwReturn},
		{Pattern: `void`, Kind: KindKwVoid},

		{Pattern: `==`, Kind: KindEq},
		{Pattern: `<=`, Kind: KindLE},
		{Pattern: `>=`, Kind: KindGE},
		{Pattern: `=`, Kind: KindAssign},
		{Pattern: `<`, Kind: KindLT},
		{Pattern: `>`, Kind: KindGT},
		{Pattern: `\+`, Kind: KindPlus},
		{Pattern: `-`, Kind: KindMinus},
		{Pattern: `\*`, Kind: KindStar},
		{Pattern: `/`, Kind: KindSlash},
		{Pattern: `;`, Kind: KindSemi},
		{Pattern: `,`, Kind: KindComma},
		{Pattern: `\(`, Kind: KindLParen},
		{Pattern: `\)`, Kind: KindRParen},
		{Pattern: `\{`, Kind: KindLBrace},
		{Pattern: `\}`, Kind: KindRBrace},

		{Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`, Kind: KindIdent},
		{Pattern: `[0-9]+(\.[0-9]+)?`, Kind: KindNumber},
		{Pattern: `"[^"]*"`, Kind: KindString},

		{Pattern: "[ \t\r\n]+", Kind: KindWhitespace, Ignore: true},
		{Pattern: "//[^\n]*", Kind: KindComment, Ignore: true},
	}

	for i := range rules {
		rules[i].Priority = i
	}
	return rules
}
