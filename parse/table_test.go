package parse_test

import (
	"testing"

	"github.com/dekarrin/pike/grammar"
	"github.com/dekarrin/pike/lex"
	"github.com/dekarrin/pike/parse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exprGrammar() *grammar.Grammar {
	return grammar.New("E", []grammar.Production{
		{Head: "E", Body: []string{"E", "+", "T"}},
		{Head: "E", Body: []string{"T"}},
		{Head: "T", Body: []string{"T", "*", "F"}},
		{Head: "T", Body: []string{"F"}},
		{Head: "F", Body: []string{"(", "E", ")"}},
		{Head: "F", Body: []string{"id"}},
	})
}

func tok(kind string, lexeme string) lex.Token {
	return lex.Token{Kind: lex.TokenKind(kind), Lexeme: lexeme}
}

func TestBuildTable_NoConflictsOnUnambiguousGrammar(t *testing.T) {
	table, err := parse.BuildTable(exprGrammar())
	require.NoError(t, err)
	assert.Empty(t, table.Conflicts())
}

func TestParse_AcceptsIdPlusIdTimesId(t *testing.T) {
	table, err := parse.BuildTable(exprGrammar())
	require.NoError(t, err)

	tokens := []lex.Token{
		tok("id", "a"),
		tok("+", "+"),
		tok("id", "b"),
		tok("*", "*"),
		tok("id", "c"),
		{Kind: lex.KindEOF},
	}

	result, err := table.Parse(tokens)
	require.NoError(t, err)
	assert.NotEmpty(t, result.Reductions)
	// last reduction applied before accept must be E -> E + T; the augmented
	// start production is accepted, not reduced, so it never appears here.
	last := result.Reductions[len(result.Reductions)-1]
	assert.Equal(t, "E", last.Head)
}

func TestParse_UnbalancedParensIsSyntaxError(t *testing.T) {
	table, err := parse.BuildTable(exprGrammar())
	require.NoError(t, err)

	tokens := []lex.Token{
		tok("(", "("),
		tok("id", "a"),
		{Kind: lex.KindEOF},
	}

	_, err = table.Parse(tokens)
	require.Error(t, err)
}

func TestBuildTable_RejectsUndefinedStartSymbol(t *testing.T) {
	g := grammar.New("MISSING", nil)
	_, err := parse.BuildTable(g)
	require.Error(t, err)
}

func TestLALRTable_MarshalUnmarshalRoundTrip(t *testing.T) {
	table, err := parse.BuildTable(exprGrammar())
	require.NoError(t, err)

	data, err := table.MarshalBinary()
	require.NoError(t, err)

	var restored parse.LALRTable
	require.NoError(t, restored.UnmarshalBinary(data))

	tokens := []lex.Token{
		tok("id", "a"),
		tok("+", "+"),
		tok("id", "b"),
		tok("*", "*"),
		tok("id", "c"),
		{Kind: lex.KindEOF},
	}

	result, err := restored.Parse(tokens)
	require.NoError(t, err)
	assert.NotEmpty(t, result.Reductions)
	assert.Equal(t, table.Initial(), restored.Initial())
}
