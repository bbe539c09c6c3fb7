package grammar

import (
	"sort"

	"github.com/dekarrin/pike/internal/container"
	"github.com/dekarrin/pike/perr"
)

// Grammar is an ordered list of productions over a set of terminal and
// non-terminal symbols, plus a designated start symbol.
type Grammar struct {
	Start       string
	Productions []Production

	terminals    container.Set[string]
	nonTerminals container.Set[string]
}

// New constructs a Grammar from start symbol and productions, in the order
// given - production order matters, since it breaks reduce/reduce ties: the
// earlier-declared production's reduce is the one a parse table keeps.
func New(start string, productions []Production) *Grammar {
	g := &Grammar{Start: start, Productions: productions}
	g.terminals = container.NewSet[string]()
	g.nonTerminals = container.NewSet[string]()

	for _, p := range productions {
		g.nonTerminals.Add(p.Head)
	}
	for _, p := range productions {
		for _, sym := range p.Body {
			if sym == Epsilon {
				continue
			}
			if !g.nonTerminals.Has(sym) {
				g.terminals.Add(sym)
			}
		}
	}

	return g
}

// IsTerminal reports whether sym is a terminal of g.
func (g *Grammar) IsTerminal(sym string) bool {
	return g.terminals.Has(sym)
}

// IsNonTerminal reports whether sym is a non-terminal of g.
func (g *Grammar) IsNonTerminal(sym string) bool {
	return g.nonTerminals.Has(sym)
}

// Terminals returns the grammar's terminal symbols in sorted order.
func (g *Grammar) Terminals() []string {
	t := g.terminals.Elements()
	sort.Strings(t)
	return t
}

// NonTerminals returns the grammar's non-terminal symbols in sorted order.
func (g *Grammar) NonTerminals() []string {
	t := g.nonTerminals.Elements()
	sort.Strings(t)
	return t
}

// Rules returns the productions whose head is sym, in declaration order.
func (g *Grammar) Rules(sym string) []Production {
	var out []Production
	for _, p := range g.Productions {
		if p.Head == sym {
			out = append(out, p)
		}
	}
	return out
}

// Validate checks that every non-terminal referenced in a production body
// has at least one production defining it, and that the start symbol has a
// production, per spec §4.7.
func (g *Grammar) Validate() error {
	if len(g.Rules(g.Start)) == 0 {
		return perr.NewGrammarError(perr.GrammarErrNoStartProduction, g.Start)
	}
	for _, p := range g.Productions {
		for _, sym := range p.Body {
			if sym == Epsilon {
				continue
			}
			if IsNonTerminal(sym) && len(g.Rules(sym)) == 0 {
				return perr.NewGrammarError(perr.GrammarErrUndefinedNonTerminal, sym)
			}
		}
	}
	return nil
}

// AugmentedStart is the synthetic start symbol spec §4.9 introduces for
// LR(1)/LALR(1) construction: S' -> Start.
const AugmentedStart = "S'"

// Augmented returns a copy of g with one extra production S' -> Start
// placed first in Productions, ahead of g's own productions - the canonical
// first step of constructing an LR(0)/LR(1) automaton (purple dragon §4.7).
func (g *Grammar) Augmented() *Grammar {
	aug := make([]Production, 0, len(g.Productions)+1)
	aug = append(aug, Production{Head: AugmentedStart, Body: []string{g.Start}})
	aug = append(aug, g.Productions...)
	return New(AugmentedStart, aug)
}

// First computes FIRST(sym) via the standard fixed-point algorithm (purple
// dragon algorithm 4.4): a symbol's FIRST set is itself if terminal,
// otherwise the union of FIRST(rhs-prefix) over its productions, with ε
// included if some production of sym is nullable.
func (g *Grammar) First(sym string) container.Set[string] {
	memo := map[string]container.Set[string]{}
	return g.firstOf(sym, memo)
}

func (g *Grammar) firstOf(sym string, memo map[string]container.Set[string]) container.Set[string] {
	if sym == Epsilon {
		return container.NewSet(Epsilon)
	}
	if g.IsTerminal(sym) || sym == EndOfInput {
		return container.NewSet(sym)
	}

	if cached, ok := memo[sym]; ok {
		return cached
	}
	// seed memo with empty set to break left-recursive cycles during the
	// fixed-point walk; firstOfSeq re-reads memo[sym] on repeat visits.
	memo[sym] = container.NewSet[string]()

	result := container.NewSet[string]()
	changed := true
	for changed {
		changed = false
		for _, p := range g.Rules(sym) {
			before := result.Len()
			seqFirst, seqNullable := g.firstOfSeq(p.Body, memo)
			result.AddAll(seqFirst)
			if seqNullable {
				result.Add(Epsilon)
			}
			if result.Len() != before {
				changed = true
			}
		}
		memo[sym] = result
	}

	return result
}

// firstOfSeq computes FIRST of a symbol sequence (a production body, or a
// suffix of one), and whether the whole sequence is nullable.
func (g *Grammar) firstOfSeq(seq []string, memo map[string]container.Set[string]) (container.Set[string], bool) {
	result := container.NewSet[string]()
	if len(seq) == 0 {
		return result, true
	}

	for _, sym := range seq {
		symFirst := g.firstOf(sym, memo)
		for _, t := range symFirst.Elements() {
			if t != Epsilon {
				result.Add(t)
			}
		}
		if !symFirst.Has(Epsilon) {
			return result, false
		}
	}
	return result, true
}

// FirstOfSeq is First generalized to a sequence of symbols (used by LR(1)
// closure to compute lookaheads), returning whether the sequence is
// nullable as its second value.
func (g *Grammar) FirstOfSeq(seq []string) (container.Set[string], bool) {
	memo := map[string]container.Set[string]{}
	for _, sym := range seq {
		g.firstOf(sym, memo)
	}
	return g.firstOfSeq(seq, memo)
}

// Follow computes FOLLOW(sym) for every non-terminal via the standard
// fixed-point algorithm (purple dragon algorithm 4.5), seeding FOLLOW(Start)
// with EndOfInput.
func (g *Grammar) Follow() map[string]container.Set[string] {
	follow := map[string]container.Set[string]{}
	for _, nt := range g.NonTerminals() {
		follow[nt] = container.NewSet[string]()
	}
	follow[g.Start].Add(EndOfInput)

	changed := true
	for changed {
		changed = false
		for _, p := range g.Productions {
			for i, b := range p.Body {
				if !g.IsNonTerminal(b) {
					continue
				}
				before := follow[b].Len()

				rest := p.Body[i+1:]
				restFirst, restNullable := g.firstOfSeq(rest, map[string]container.Set[string]{})
				for _, t := range restFirst.Elements() {
					if t != Epsilon {
						follow[b].Add(t)
					}
				}
				if restNullable {
					follow[b].AddAll(follow[p.Head])
				}

				if follow[b].Len() != before {
					changed = true
				}
			}
		}
	}

	return follow
}
