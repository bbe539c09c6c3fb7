package regex

import (
	"github.com/dekarrin/pike/automaton"
	"github.com/dekarrin/pike/internal/container"
	"github.com/dekarrin/pike/perr"
)

// fragment is a Thompson fragment: a start and (single) accept state within
// a shared automaton.Builder arena. Unlike the teacher's NFA.Join, which
// renumbers and merges two independently-built automata's states by string
// namespace prefixing, every fragment here is built directly into one
// Builder from the start, so combining fragments is just wiring new
// epsilon transitions between existing ids - no renumbering step needed.
type fragment struct {
	start, accept automaton.StateID
}

// Compile builds the NFA fragment for pattern, scanning its postfix form
// left to right with a fragment stack per McNaughton-Yamada-Thompson
// (purple dragon algorithm 3.23). The returned NFA has exactly one
// accepting state, marked with an empty AcceptTag - callers (package lex)
// replace it with the rule's tag after import into the fused ruleset arena.
func Compile(pattern string, b *automaton.Builder) (*automaton.NFA, error) {
	infix, err := preprocess(pattern)
	if err != nil {
		return nil, err
	}
	postfix, err := toPostfix(infix)
	if err != nil {
		return nil, err
	}
	if len(postfix) == 0 {
		return nil, perr.NewBadRegex(0, "empty pattern")
	}

	var stack container.Stack[fragment]

	for _, t := range postfix {
		switch {
		case t.kind == tokLiteral:
			stack.Push(literalFragment(b, t.ch))

		case t.kind == tokConcat:
			if stack.Len() < 2 {
				return nil, perr.NewBadRegex(t.pos, "concatenation missing operand")
			}
			right := stack.Pop()
			left := stack.Pop()
			stack.Push(concatFragment(b, left, right))

		case t.kind == tokUnion:
			if stack.Len() < 2 {
				return nil, perr.NewBadRegex(t.pos, "union missing operand")
			}
			right := stack.Pop()
			left := stack.Pop()
			stack.Push(unionFragment(b, left, right))

		case t.kind == tokStar:
			if stack.Empty() {
				return nil, perr.NewBadRegex(t.pos, "'*' missing operand")
			}
			stack.Push(starFragment(b, stack.Pop()))

		case t.kind == tokPlus:
			if stack.Empty() {
				return nil, perr.NewBadRegex(t.pos, "'+' missing operand")
			}
			stack.Push(plusFragment(b, stack.Pop()))

		case t.kind == tokQuestion:
			if stack.Empty() {
				return nil, perr.NewBadRegex(t.pos, "'?' missing operand")
			}
			stack.Push(questionFragment(b, stack.Pop()))

		default:
			return nil, perr.NewBadRegex(t.pos, "unexpected token in postfix stream")
		}
	}

	if stack.Len() != 1 {
		return nil, perr.NewBadRegex(0, "malformed expression: leftover operands")
	}

	final := stack.Pop()
	b.SetAccept(final.accept, automaton.AcceptTag{})
	return b.Build(final.start), nil
}

// literalFragment builds the base case "for any subexpression r in sigma":
// a two-state fragment with a single transition on c.
func literalFragment(b *automaton.Builder, c rune) fragment {
	start := b.AddState()
	accept := b.AddState()
	b.AddSymbol(start, c, accept)
	return fragment{start: start, accept: accept}
}

// concatFragment builds "for any expression st": wire left's accept
// directly to right's start via epsilon, and the new fragment's accept is
// right's accept.
func concatFragment(b *automaton.Builder, left, right fragment) fragment {
	b.AddEpsilon(left.accept, right.start)
	return fragment{start: left.start, accept: right.accept}
}

// unionFragment builds "for any expression s|t": a new start epsilon-forks
// to both operands' starts, and both operands' accepts epsilon-join to a
// new shared accept.
func unionFragment(b *automaton.Builder, left, right fragment) fragment {
	start := b.AddState()
	accept := b.AddState()

	b.AddEpsilon(start, left.start)
	b.AddEpsilon(start, right.start)
	b.AddEpsilon(left.accept, accept)
	b.AddEpsilon(right.accept, accept)

	return fragment{start: start, accept: accept}
}

// starFragment builds Kleene closure r*: a new start/accept pair bypasses
// the body entirely (zero repetitions), and the body's accept loops back to
// its own start (more repetitions) and also forward to the new accept.
func starFragment(b *automaton.Builder, body fragment) fragment {
	start := b.AddState()
	accept := b.AddState()

	b.AddEpsilon(start, body.start)
	b.AddEpsilon(start, accept)
	b.AddEpsilon(body.accept, body.start)
	b.AddEpsilon(body.accept, accept)

	return fragment{start: start, accept: accept}
}

// plusFragment builds r+ = r r*: at least one repetition required, then
// zero or more more. Built directly (not as star-then-concat) to keep a
// single fresh start/accept pair rather than chaining two fragments.
func plusFragment(b *automaton.Builder, body fragment) fragment {
	start := b.AddState()
	accept := b.AddState()

	b.AddEpsilon(start, body.start)
	b.AddEpsilon(body.accept, body.start)
	b.AddEpsilon(body.accept, accept)

	return fragment{start: start, accept: accept}
}

// questionFragment builds r? = (r|epsilon): the body is optional.
func questionFragment(b *automaton.Builder, body fragment) fragment {
	start := b.AddState()
	accept := b.AddState()

	b.AddEpsilon(start, body.start)
	b.AddEpsilon(start, accept)
	b.AddEpsilon(body.accept, accept)

	return fragment{start: start, accept: accept}
}
