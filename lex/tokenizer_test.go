package lex_test

import (
	"testing"

	"github.com/dekarrin/pike/lex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kinds(toks []lex.Token) []lex.TokenKind {
	out := make([]lex.TokenKind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func TestTokenize_DeclarationStatement(t *testing.T) {
	tok, err := lex.Build(lex.DefaultRules())
	require.NoError(t, err)

	toks, err := tok.Tokenize("int x = 42;")
	require.NoError(t, err)

	assert.Equal(t, []lex.TokenKind{
		lex.KindKwInt, lex.KindIdent, lex.KindAssign, lex.KindNumber, lex.KindSemi, lex.KindEOF,
	}, kinds(toks))
}

func TestTokenize_MultiCharOperatorWinsOverPrefix(t *testing.T) {
	tok, err := lex.Build(lex.DefaultRules())
	require.NoError(t, err)

	toks, err := tok.Tokenize("<=")
	require.NoError(t, err)

	assert.Equal(t, []lex.TokenKind{lex.KindLE, lex.KindEOF}, kinds(toks))
}

func TestTokenize_KeywordWinsOverIdentifierTie(t *testing.T) {
	tok, err := lex.Build(lex.DefaultRules())
	require.NoError(t, err)

	toks, err := tok.Tokenize("if myif")
	require.NoError(t, err)
	require.Len(t, toks, 3)
	assert.Equal(t, lex.KindKwIf, toks[0].Kind)
	assert.Equal(t, "if", toks[0].Lexeme)
	assert.Equal(t, lex.KindIdent, toks[1].Kind)
	assert.Equal(t, "myif", toks[1].Lexeme)
}

func TestTokenize_WhitespaceAndCommentsAreIgnored(t *testing.T) {
	tok, err := lex.Build(lex.DefaultRules())
	require.NoError(t, err)

	toks, err := tok.Tokenize("  if   else  // trailing comment\n")
	require.NoError(t, err)

	assert.Equal(t, []lex.TokenKind{lex.KindKwIf, lex.KindKwElse, lex.KindEOF}, kinds(toks))
}

func TestTokenize_UnknownCharacterEmitsUnknownToken(t *testing.T) {
	tok, err := lex.Build(lex.DefaultRules())
	require.NoError(t, err)

	toks, err := tok.Tokenize("if @ else")
	require.NoError(t, err)

	assert.Equal(t, []lex.TokenKind{lex.KindKwIf, lex.KindUnknown, lex.KindKwElse, lex.KindEOF}, kinds(toks))
	assert.Equal(t, "@", toks[1].Lexeme)
}

func TestTokenize_LineAndColumnTracking(t *testing.T) {
	tok, err := lex.Build(lex.DefaultRules())
	require.NoError(t, err)

	toks, err := tok.Tokenize("int x;\nint y;")
	require.NoError(t, err)

	var secondInt lex.Token
	found := false
	for i, tk := range toks {
		if i > 0 && tk.Kind == lex.KindKwInt {
			secondInt = tk
			found = true
		}
	}
	require.True(t, found)
	assert.Equal(t, 2, secondInt.Line)
	assert.Equal(t, 1, secondInt.Column)
}

func TestBuild_BadRegexWithoutFallbackFails(t *testing.T) {
	_, err := lex.Build([]lex.LexicalRule{
		{Pattern: "(", Kind: "BAD", Priority: 0},
	})
	require.Error(t, err)
}

func TestBuild_BadRegexWithFallbackMatchesLiterally(t *testing.T) {
	tok, err := lex.Build([]lex.LexicalRule{
		{Pattern: "(", Kind: "LPAREN_LIT", Priority: 0},
	}, lex.WithBadRegexFallback())
	require.NoError(t, err)

	toks, err := tok.Tokenize("(")
	require.NoError(t, err)
	assert.Equal(t, lex.TokenKind("LPAREN_LIT"), toks[0].Kind)
}

func TestTokenizer_MarshalUnmarshalRoundTrip(t *testing.T) {
	tok, err := lex.Build(lex.DefaultRules())
	require.NoError(t, err)

	data, err := tok.MarshalBinary()
	require.NoError(t, err)

	var restored lex.Tokenizer
	require.NoError(t, restored.UnmarshalBinary(data))

	toks, err := restored.Tokenize("int x = 42;")
	require.NoError(t, err)
	assert.Equal(t, []lex.TokenKind{
		lex.KindKwInt, lex.KindIdent, lex.KindAssign, lex.KindNumber, lex.KindSemi, lex.KindEOF,
	}, kinds(toks))
}
