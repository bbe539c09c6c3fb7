package grammar

import (
	"sort"
	"strings"
)

// LR0Item is a production with a dot marking how much of the body has been
// recognized so far: NonTerminal -> Left . Right. Grounded on the shape of
// the teacher's grammar.LR0Item (NonTerminal/Left/Right fields), adapted to
// this package's Production type.
type LR0Item struct {
	NonTerminal string
	Left        []string
	Right       []string
}

// ItemFor returns the LR0Item for production p with the dot at the start.
// Epsilon symbols in the body are dropped, so the item for an empty
// production (body [ε]) is already AtEnd.
func ItemFor(p Production) LR0Item {
	right := make([]string, 0, len(p.Body))
	for _, sym := range p.Body {
		if sym != Epsilon {
			right = append(right, sym)
		}
	}
	return LR0Item{NonTerminal: p.Head, Right: right}
}

// AtEnd reports whether the dot has reached the end of the production
// (nothing left of Right), meaning this item calls for a reduction.
func (i LR0Item) AtEnd() bool {
	return len(i.Right) == 0
}

// NextSymbol returns the symbol immediately after the dot, and whether one
// exists.
func (i LR0Item) NextSymbol() (string, bool) {
	if i.AtEnd() {
		return "", false
	}
	return i.Right[0], true
}

// Advance returns the item with the dot moved one symbol to the right. It
// panics if called on an item already AtEnd - callers must check first.
func (i LR0Item) Advance() LR0Item {
	if i.AtEnd() {
		panic("grammar: advance of item already at end")
	}
	left := make([]string, len(i.Left)+1)
	copy(left, i.Left)
	left[len(i.Left)] = i.Right[0]

	right := make([]string, len(i.Right)-1)
	copy(right, i.Right[1:])

	return LR0Item{NonTerminal: i.NonTerminal, Left: left, Right: right}
}

// Production reconstructs the production this item is derived from.
func (i LR0Item) Production() Production {
	body := make([]string, 0, len(i.Left)+len(i.Right))
	body = append(body, i.Left...)
	body = append(body, i.Right...)
	return Production{Head: i.NonTerminal, Body: body}
}

func (i LR0Item) String() string {
	var sb strings.Builder
	sb.WriteString(i.NonTerminal)
	sb.WriteString(" -> ")
	sb.WriteString(strings.Join(i.Left, " "))
	sb.WriteString(" . ")
	sb.WriteString(strings.Join(i.Right, " "))
	return sb.String()
}

// Equal reports whether i and o are the same item.
func (i LR0Item) Equal(o LR0Item) bool {
	return i.NonTerminal == o.NonTerminal &&
		strSliceEqual(i.Left, o.Left) &&
		strSliceEqual(i.Right, o.Right)
}

func strSliceEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// LR1Item is an LR0Item annotated with a single lookahead terminal, per
// purple dragon's definition of an LR(1) item. Grounded on the teacher's
// grammar.LR1Item (LR0Item embedded plus a Lookahead field).
type LR1Item struct {
	LR0Item
	Lookahead string
}

func (i LR1Item) String() string {
	return i.LR0Item.String() + ", " + i.Lookahead
}

// Equal reports whether i and o are the same LR(1) item.
func (i LR1Item) Equal(o LR1Item) bool {
	return i.LR0Item.Equal(o.LR0Item) && i.Lookahead == o.Lookahead
}

// Advance returns the LR1Item with the dot moved one symbol right,
// preserving the lookahead.
func (i LR1Item) Advance() LR1Item {
	return LR1Item{LR0Item: i.LR0Item.Advance(), Lookahead: i.Lookahead}
}

// core returns a comparable key identifying i's LR0 core (ignoring
// lookahead), used to group LR(1) items sharing the same core when
// merging LALR(1) states.
func (i LR1Item) core() string {
	return i.LR0Item.String()
}

// CoreSet returns the set of distinct LR0 cores present among items, encoded
// as a sorted, comparable string key. Two LR(1) states are candidates for
// LALR(1) merging iff their CoreSet keys match. Grounded on the teacher's
// grammar.CoreSet/EqualCoreSets helpers.
func CoreSet(items []LR1Item) string {
	cores := map[string]bool{}
	for _, it := range items {
		cores[it.core()] = true
	}
	keys := make([]string, 0, len(cores))
	for k := range cores {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return strings.Join(keys, "|")
}
