package regex_test

import (
	"testing"

	"github.com/dekarrin/pike/automaton"
	"github.com/dekarrin/pike/regex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compileAndTag(t *testing.T, pattern string) *automaton.DFA {
	t.Helper()
	nfa, err := regex.Compile(pattern, automaton.NewBuilder())
	require.NoError(t, err)
	return nfa.ToDFA()
}

func accepts(d *automaton.DFA, s string) bool {
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

func TestCompile_Literal(t *testing.T) {
	d := compileAndTag(t, "abc")
	assert.True(t, accepts(d, "abc"))
	assert.False(t, accepts(d, "ab"))
	assert.False(t, accepts(d, "abcd"))
}

func TestCompile_Union(t *testing.T) {
	d := compileAndTag(t, "cat|dog")
	assert.True(t, accepts(d, "cat"))
	assert.True(t, accepts(d, "dog"))
	assert.False(t, accepts(d, "cow"))
}

func TestCompile_Star(t *testing.T) {
	d := compileAndTag(t, "ab*")
	assert.True(t, accepts(d, "a"))
	assert.True(t, accepts(d, "abbbb"))
	assert.False(t, accepts(d, "b"))
}

func TestCompile_Plus(t *testing.T) {
	d := compileAndTag(t, "a+")
	assert.False(t, accepts(d, ""))
	assert.True(t, accepts(d, "a"))
	assert.True(t, accepts(d, "aaaa"))
}

func TestCompile_Question(t *testing.T) {
	d := compileAndTag(t, "colou?r")
	assert.True(t, accepts(d, "color"))
	assert.True(t, accepts(d, "colour"))
	assert.False(t, accepts(d, "colouur"))
}

func TestCompile_CharClassAndEscapedDot(t *testing.T) {
	d := compileAndTag(t, `[0-9]+\.[0-9]+`)
	assert.True(t, accepts(d, "3.14"))
	assert.False(t, accepts(d, "3."))
	assert.False(t, accepts(d, ".14"))
}

func TestCompile_NegatedClass(t *testing.T) {
	d := compileAndTag(t, `[^"]*`)
	assert.True(t, accepts(d, "hello"))
	assert.False(t, accepts(d, `he"llo`))
}

func TestCompile_UnmatchedParenIsBadRegex(t *testing.T) {
	_, err := regex.Compile("(abc", automaton.NewBuilder())
	require.Error(t, err)
}

func TestCompile_TrailingBackslashIsBadRegex(t *testing.T) {
	_, err := regex.Compile(`abc\`, automaton.NewBuilder())
	require.Error(t, err)
}
