package automaton_test

import (
	"testing"

	"github.com/dekarrin/pike/automaton"
	"github.com/stretchr/testify/assert"
)

// buildABStar constructs an NFA for "a(b|c)*" by hand, exercising Builder
// directly rather than through package regex.
func buildABStar(t *testing.T) *automaton.NFA {
	t.Helper()
	b := automaton.NewBuilder()

	s0 := b.AddState()
	s1 := b.AddState()
	s2 := b.AddState()
	s3 := b.AddState()

	b.AddSymbol(s0, 'a', s1)
	b.AddEpsilon(s1, s2)
	b.AddSymbol(s2, 'b', s3)
	b.AddSymbol(s2, 'c', s3)
	b.AddEpsilon(s3, s2)
	b.AddEpsilon(s2, s1) // allow zero repetitions too, via alt epsilon path
	b.SetAccept(s1, automaton.AcceptTag{Kind: "AB", Priority: 0})
	b.SetAccept(s2, automaton.AcceptTag{Kind: "AB", Priority: 0})

	return b.Build(s0)
}

func TestToDFA_SubsetConstructionIsDeterministic(t *testing.T) {
	nfa := buildABStar(t)
	d := nfa.ToDFA()

	state := d.Start
	for _, c := range "abcbcb" {
		next, ok := d.Next(state, c)
		assert.True(t, ok, "expected transition on %q", c)
		state = next
	}
	assert.NotNil(t, d.Accept(state))
}

func TestMinimize_PreservesAcceptedLanguage(t *testing.T) {
	nfa := buildABStar(t)
	d := nfa.ToDFA()
	min := d.Minimize()

	inputs := []struct {
		s       string
		accepts bool
	}{
		{"a", true},
		{"ab", true},
		{"abc", true},
		{"abcbcbc", true},
		{"b", false},
		{"", false},
	}

	for _, tc := range inputs {
		assert.Equal(t, tc.accepts, runAccepts(min, tc.s), "input %q", tc.s)
	}
}

func TestMinimize_NeverMergesDifferentAcceptKinds(t *testing.T) {
	b := automaton.NewBuilder()
	s0 := b.AddState()
	s1 := b.AddState()
	s2 := b.AddState()
	b.AddSymbol(s0, 'x', s1)
	b.AddSymbol(s0, 'y', s2)
	b.SetAccept(s1, automaton.AcceptTag{Kind: "X", Priority: 0})
	b.SetAccept(s2, automaton.AcceptTag{Kind: "Y", Priority: 0})

	d := b.Build(s0).ToDFA().Minimize()

	xState, _ := d.Next(d.Start, 'x')
	yState, _ := d.Next(d.Start, 'y')
	assert.NotEqual(t, xState, yState)
	assert.Equal(t, "X", d.Accept(xState).Kind)
	assert.Equal(t, "Y", d.Accept(yState).Kind)
}

func runAccepts(d *automaton.DFA, s string) bool {
	state := d.Start
	for _, c := range s {
		next, ok := d.Next(state, c)
		if !ok {
			return false
		}
		state = next
	}
	return d.Accept(state) != nil
}
