package automaton

import (
	"fmt"
	"sort"

	"github.com/dekarrin/pike/grammar"
)

// ItemState is an automaton state in a viable-prefix DFA: the set of LR(1)
// items active after recognizing some viable prefix.
type ItemState struct {
	Items []grammar.LR1Item
}

// LR1DFA is a deterministic viable-prefix automaton: one state per distinct
// canonical LR(1) item set, with GOTO transitions on grammar symbols.
// Grounded on the teacher's automaton.NewLR1ViablePrefixDFA (closure/GOTO
// worklist construction over grammar.LR1_CLOSURE/LR1_GOTO).
type LR1DFA struct {
	g       *grammar.Grammar
	states  map[StateID]ItemState
	trans   map[StateID]map[string]StateID
	Start   StateID
	nextID  StateID
}

// State returns the item set of state id.
func (d *LR1DFA) State(id StateID) ItemState { return d.states[id] }

// States returns all state ids in ascending order.
func (d *LR1DFA) States() []StateID {
	ids := make([]StateID, 0, len(d.states))
	for id := range d.states {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Goto returns the state reached from id on grammar symbol x.
func (d *LR1DFA) Goto(id StateID, x string) (StateID, bool) {
	row, ok := d.trans[id]
	if !ok {
		return 0, false
	}
	to, ok := row[x]
	return to, ok
}

// Symbols returns the symbols that have an outbound transition from id.
func (d *LR1DFA) Symbols(id StateID) []string {
	row := d.trans[id]
	out := make([]string, 0, len(row))
	for x := range row {
		out = append(out, x)
	}
	sort.Strings(out)
	return out
}

// NewLR1DFA builds the canonical collection of LR(1) item sets for the
// augmented grammar g (purple dragon algorithm 4.56/4.59): closure of the
// single item S' -> .S, $ is the start state, and GOTO is computed for every
// state and every grammar symbol until no new states appear.
func NewLR1DFA(g *grammar.Grammar) *LR1DFA {
	d := &LR1DFA{
		g:      g,
		states: map[StateID]ItemState{},
		trans:  map[StateID]map[string]StateID{},
	}

	startRules := g.Rules(g.Start)
	if len(startRules) == 0 {
		panic(fmt.Sprintf("automaton: start symbol %q has no production", g.Start))
	}
	startItem := grammar.LR1Item{LR0Item: grammar.ItemFor(startRules[0]), Lookahead: grammar.EndOfInput}
	startSet := g.Closure1([]grammar.LR1Item{startItem})

	byKey := map[string]StateID{}
	d.Start = d.stateFor(startSet, byKey)

	worklist := []StateID{d.Start}
	for len(worklist) > 0 {
		id := worklist[0]
		worklist = worklist[1:]

		for _, x := range symbolsAfterDot(d.states[id]) {
			next := g.Goto1(d.states[id].Items, x)
			if len(next) == 0 {
				continue
			}
			_, existed := byKey[coreLookaheadKey(next)]
			toID := d.stateFor(next, byKey)
			if d.trans[id] == nil {
				d.trans[id] = map[string]StateID{}
			}
			d.trans[id][x] = toID
			if !existed {
				worklist = append(worklist, toID)
			}
		}
	}

	return d
}

func (d *LR1DFA) stateFor(items []grammar.LR1Item, byKey map[string]StateID) StateID {
	key := coreLookaheadKey(items)
	if id, ok := byKey[key]; ok {
		return id
	}
	id := d.nextID
	d.nextID++
	byKey[key] = id
	d.states[id] = ItemState{Items: items}
	return id
}

func coreLookaheadKey(items []grammar.LR1Item) string {
	strs := make([]string, len(items))
	for i, it := range items {
		strs[i] = it.String()
	}
	sort.Strings(strs)
	out := ""
	for i, s := range strs {
		if i > 0 {
			out += "\n"
		}
		out += s
	}
	return out
}

func symbolsAfterDot(s ItemState) []string {
	seen := map[string]bool{}
	var out []string
	for _, it := range s.Items {
		sym, ok := it.NextSymbol()
		if !ok || seen[sym] {
			continue
		}
		seen[sym] = true
		out = append(out, sym)
	}
	sort.Strings(out)
	return out
}

// LALR1DFA is the LALR(1) viable-prefix automaton obtained by merging every
// group of LR(1) states that share the same LR(0) core, per spec §4.9.
// Grounded on the teacher's automaton.NewLALR1ViablePrefixDFA, which builds
// the canonical LR(1) DFA first and then merges same-core states - chosen
// over the teacher's other, unfinished efficient-lookahead-propagation path
// (its parse.computeLALR1Kernels, which never completes its fixed-point
// loop and always returns an empty result).
type LALR1DFA struct {
	lr1    *LR1DFA
	toCore map[StateID]StateID // lr1 state id -> merged (core) state id
	core   map[StateID][]StateID
	items  map[StateID][]grammar.LR1Item
	trans  map[StateID]map[string]StateID
	Start  StateID
}

// State returns the merged item set of core state id.
func (d *LALR1DFA) State(id StateID) []grammar.LR1Item { return d.items[id] }

// States returns all merged state ids in ascending order.
func (d *LALR1DFA) States() []StateID {
	ids := make([]StateID, 0, len(d.items))
	for id := range d.items {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Goto returns the merged state reached from id on grammar symbol x.
func (d *LALR1DFA) Goto(id StateID, x string) (StateID, bool) {
	row, ok := d.trans[id]
	if !ok {
		return 0, false
	}
	to, ok := row[x]
	return to, ok
}

// Symbols returns the symbols with an outbound transition from id.
func (d *LALR1DFA) Symbols(id StateID) []string {
	row := d.trans[id]
	out := make([]string, 0, len(row))
	for x := range row {
		out = append(out, x)
	}
	sort.Strings(out)
	return out
}

// NewLALR1DFA merges the canonical LR(1) collection for g into its LALR(1)
// automaton: states with identical LR(0) cores are unioned into one state
// whose item set is the union of their LR(1) items (their lookaheads
// pooled together), and transitions are rewritten onto the merged states.
func NewLALR1DFA(g *grammar.Grammar) *LALR1DFA {
	lr1 := NewLR1DFA(g)

	coreKeyOf := map[StateID]string{}
	for _, id := range lr1.States() {
		coreKeyOf[id] = grammar.CoreSet(lr1.State(id).Items)
	}

	mergedID := map[string]StateID{}
	var nextID StateID
	toCore := map[StateID]StateID{}
	coreMembers := map[StateID][]StateID{}

	for _, id := range lr1.States() {
		ck := coreKeyOf[id]
		mid, ok := mergedID[ck]
		if !ok {
			mid = nextID
			nextID++
			mergedID[ck] = mid
		}
		toCore[id] = mid
		coreMembers[mid] = append(coreMembers[mid], id)
	}

	items := map[StateID][]grammar.LR1Item{}
	for mid, members := range coreMembers {
		seen := map[string]grammar.LR1Item{}
		for _, lid := range members {
			for _, it := range lr1.State(lid).Items {
				seen[it.String()] = it
			}
		}
		merged := make([]grammar.LR1Item, 0, len(seen))
		for _, it := range seen {
			merged = append(merged, it)
		}
		items[mid] = merged
	}

	trans := map[StateID]map[string]StateID{}
	for _, id := range lr1.States() {
		mid := toCore[id]
		for _, x := range lr1.Symbols(id) {
			to, _ := lr1.Goto(id, x)
			toMid := toCore[to]
			if trans[mid] == nil {
				trans[mid] = map[string]StateID{}
			}
			trans[mid][x] = toMid
		}
	}

	return &LALR1DFA{
		lr1:    lr1,
		toCore: toCore,
		core:   coreMembers,
		items:  items,
		trans:  trans,
		Start:  toCore[lr1.Start],
	}
}
