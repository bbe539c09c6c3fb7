package parse

import (
	"fmt"

	"github.com/dekarrin/pike/grammar"
	"github.com/dekarrin/pike/internal/container"
	"github.com/dekarrin/pike/lex"
	"github.com/dekarrin/pike/perr"
)

// Result is the outcome of a successful Parse: the sequence of productions
// applied, in the order the driver reduced them. There is no parse tree -
// building one requires semantic actions, which are out of scope for this
// module.
type Result struct {
	Reductions []grammar.Production
}

// TraceFunc receives one human-readable line per driver step, grounded on
// the teacher's lrParser trace-listener callbacks (notifyAction,
// notifyStatePeek/Push/Pop, notifyNextToken), collapsed into a single
// callback rather than one method per event kind.
type TraceFunc func(line string)

// SetTrace installs fn as t's trace listener; pass nil to disable tracing.
// This is what pikecfg.BuildConfig.Trace wires up for callers that load
// their build settings from TOML.
func (t *LALRTable) SetTrace(fn TraceFunc) {
	t.trace = fn
}

func (t *LALRTable) notifyTrace(format string, args ...any) {
	if t.trace != nil {
		t.trace(fmt.Sprintf(format, args...))
	}
}

// Parse drives t's ACTION/GOTO tables over tokens with the classic
// stack-based shift/reduce engine (purple dragon algorithm 4.44), grounded
// on the teacher's lrParser.Parse. Unlike the teacher, this driver never
// builds a types.ParseTree - only the sequence of reductions is returned,
// since no semantic-action layer consumes a tree here.
func (t *LALRTable) Parse(tokens []lex.Token) (Result, error) {
	var states container.Stack[int]
	states.Push(t.Initial())

	var result Result

	pos := 0
	cur := tokens[pos]
	t.notifyTrace("next token: %s", cur.String())

	for {
		s := states.Peek()
		act := t.Action(s, symbolOf(cur))
		t.notifyTrace("state %d, action %v", s, act.Kind)

		switch act.Kind {
		case ActionShift:
			states.Push(act.State)
			pos++
			if pos < len(tokens) {
				cur = tokens[pos]
			}
			t.notifyTrace("next token: %s", cur.String())

		case ActionReduce:
			for i := 0; i < len(act.Rule.Body); i++ {
				states.Pop()
			}
			result.Reductions = append(result.Reductions, act.Rule)

			top := states.Peek()
			next, ok := t.Goto(top, act.Rule.Head)
			if !ok {
				return result, perr.NewSyntaxError(string(cur.Kind), cur.Lexeme, cur.Position, cur.Line, cur.Column, nil)
			}
			states.Push(next)

		case ActionAccept:
			return result, nil

		default:
			return result, t.syntaxErrorAt(s, cur)
		}
	}
}

// symbolOf maps a lexed token to the grammar terminal symbol the parse
// table keys its ACTION/GOTO cells by: every kind passes through unchanged
// except EOF, which the grammar always names with the reserved end-of-input
// symbol "$".
func symbolOf(tok lex.Token) string {
	if tok.Kind == lex.KindEOF {
		return grammar.EndOfInput
	}
	return string(tok.Kind)
}

// syntaxErrorAt builds a perr.SyntaxError for the offending token at state
// s, listing every terminal with a defined action at s as the expected set
// - grounded on the teacher's getExpectedString/findExpectedTokens.
func (t *LALRTable) syntaxErrorAt(s int, tok lex.Token) error {
	var expected []string
	for _, term := range t.g.Terminals() {
		if t.Action(s, term).Kind != ActionError {
			expected = append(expected, term)
		}
	}
	if t.Action(s, grammar.EndOfInput).Kind != ActionError {
		expected = append(expected, grammar.EndOfInput)
	}

	return perr.NewSyntaxError(string(tok.Kind), tok.Lexeme, tok.Position, tok.Line, tok.Column, expected)
}
