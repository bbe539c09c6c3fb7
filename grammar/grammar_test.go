package grammar_test

import (
	"errors"
	"testing"

	"github.com/dekarrin/pike/grammar"
	"github.com/dekarrin/pike/perr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// exprGrammar builds the classic expression grammar from the purple dragon
// book (E -> E + T | T, T -> T * F | F, F -> ( E ) | id), the same shape
// spec's end-to-end parse scenarios use.
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

func TestGrammar_TerminalsAndNonTerminals(t *testing.T) {
	g := exprGrammar()
	assert.ElementsMatch(t, []string{"+", "*", "(", ")", "id"}, g.Terminals())
	assert.ElementsMatch(t, []string{"E", "T", "F"}, g.NonTerminals())
}

func TestGrammar_Validate(t *testing.T) {
	g := exprGrammar()
	assert.NoError(t, g.Validate())
}

func TestGrammar_ValidateRejectsUndefinedNonTerminal(t *testing.T) {
	g := grammar.New("S", []grammar.Production{
		{Head: "S", Body: []string{"UNDEFINED"}},
	})
	err := g.Validate()
	require.Error(t, err)
	var ge *perr.GrammarError
	require.True(t, errors.As(err, &ge))
	assert.Equal(t, perr.GrammarErrUndefinedNonTerminal, ge.Kind)
}

func TestGrammar_First(t *testing.T) {
	g := exprGrammar()
	assert.ElementsMatch(t, []string{"(", "id"}, g.First("F").Elements())
	assert.ElementsMatch(t, []string{"(", "id"}, g.First("T").Elements())
	assert.ElementsMatch(t, []string{"(", "id"}, g.First("E").Elements())
}

func TestGrammar_Follow(t *testing.T) {
	g := exprGrammar()
	follow := g.Follow()
	assert.ElementsMatch(t, []string{"+", ")", grammar.EndOfInput}, follow["E"].Elements())
	assert.ElementsMatch(t, []string{"+", "*", ")", grammar.EndOfInput}, follow["T"].Elements())
	assert.ElementsMatch(t, []string{"+", "*", ")", grammar.EndOfInput}, follow["F"].Elements())
}
