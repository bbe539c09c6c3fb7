// Package parse builds LALR(1) parse tables from a grammar (C10) and
// drives them over a token stream with a stack-based shift/reduce engine
// (C11). Grounded on the teacher's parse.lalr1Table/constructLALR1ParseTable
// for the table shape and parse.lrParser.Parse (purple dragon algorithm
// 4.44) for the driver, adapted in one deliberate way: the teacher treats
// any ACTION-table collision as a fatal "grammar is not LALR(1)" error,
// which conflicts with this module's diagnostic-only conflict policy -
// conflicts are recorded and the first action written wins, construction
// never aborts because of one.
package parse

import (
	"fmt"
	"sort"

	"github.com/dekarrin/pike/automaton"
	"github.com/dekarrin/pike/grammar"
	"github.com/dekarrin/pike/perr"
	"github.com/dekarrin/pike/pikecfg"
	"github.com/google/uuid"
)

// ActionKind distinguishes the four things an ACTION table cell can say to
// do, per purple dragon's LR driver.
type ActionKind int

const (
	ActionError ActionKind = iota
	ActionShift
	ActionReduce
	ActionAccept
)

func (k ActionKind) String() string {
	switch k {
	case ActionShift:
		return "shift"
	case ActionReduce:
		return "reduce"
	case ActionAccept:
		return "accept"
	default:
		return "error"
	}
}

// Action is one ACTION[state, terminal] cell.
type Action struct {
	Kind    ActionKind
	State   int             // target state, when Kind == ActionShift
	Rule    grammar.Production // reduced production, when Kind == ActionReduce
}

// LALRTable is a compiled LALR(1) parse table: ACTION and GOTO maps plus a
// Conflicts log recorded (but not fatal) at construction time.
type LALRTable struct {
	BuildID   uuid.UUID
	g         *grammar.Grammar
	dfa       *automaton.LALR1DFA
	action    map[int]map[string]Action
	gotoTable map[int]map[string]int
	conflicts []perr.TableConflict
	trace     TraceFunc
	initial   int
}

// Conflicts returns the shift/reduce and reduce/reduce conflicts recorded
// while building the table, in the order they were discovered.
func (t *LALRTable) Conflicts() []perr.TableConflict {
	return t.conflicts
}

// Initial returns the table's start state.
func (t *LALRTable) Initial() int {
	return t.initial
}

// Action returns the ACTION-table cell for state×terminal.
func (t *LALRTable) Action(state int, terminal string) Action {
	row, ok := t.action[state]
	if !ok {
		return Action{Kind: ActionError}
	}
	a, ok := row[terminal]
	if !ok {
		return Action{Kind: ActionError}
	}
	return a
}

// Goto returns the GOTO-table cell for state×nonTerminal, and whether it is
// defined.
func (t *LALRTable) Goto(state int, nonTerminal string) (int, bool) {
	row, ok := t.gotoTable[state]
	if !ok {
		return 0, false
	}
	s, ok := row[nonTerminal]
	return s, ok
}

// BuildTable constructs the LALR(1) ACTION/GOTO table for g (C10): the
// augmented grammar's LALR(1) viable-prefix automaton (package automaton)
// supplies the states and core-merged item sets; for each state, a shift
// action is recorded for every terminal with an outbound GOTO, a reduce
// action for every complete item's (production, lookahead) pair, and an
// accept action when the augmented start production is complete on "$".
// Colliding writes to the same cell are recorded as a perr.TableConflict
// and otherwise ignored - the first action written for a cell always wins.
func BuildTable(g *grammar.Grammar) (*LALRTable, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}

	aug := g.Augmented()
	dfa := automaton.NewLALR1DFA(aug)

	t := &LALRTable{
		BuildID:   uuid.New(),
		g:         g,
		dfa:       dfa,
		action:    map[int]map[string]Action{},
		gotoTable: map[int]map[string]int{},
		initial:   int(dfa.Start),
	}

	// complete items are written in production declaration order (then by
	// lookahead), so the reduce kept on a reduce/reduce conflict is always
	// the earlier-declared production's.
	rank := map[string]int{}
	for k, p := range aug.Productions {
		rank[p.String()] = k
	}

	for _, id := range dfa.States() {
		state := int(id)
		t.action[state] = map[string]Action{}
		t.gotoTable[state] = map[string]int{}

		for _, x := range dfa.Symbols(id) {
			to, _ := dfa.Goto(id, x)
			if aug.IsTerminal(x) {
				t.writeAction(state, x, Action{Kind: ActionShift, State: int(to)})
			} else {
				t.gotoTable[state][x] = int(to)
			}
		}

		items := append([]grammar.LR1Item(nil), dfa.State(id)...)
		sort.Slice(items, func(i, j int) bool {
			ri, rj := rank[items[i].Production().String()], rank[items[j].Production().String()]
			if ri != rj {
				return ri < rj
			}
			return items[i].Lookahead < items[j].Lookahead
		})
		for _, item := range items {
			if !item.AtEnd() {
				continue
			}
			prod := item.Production()
			if prod.Head == grammar.AugmentedStart {
				if item.Lookahead == grammar.EndOfInput {
					t.writeAction(state, grammar.EndOfInput, Action{Kind: ActionAccept})
				}
				continue
			}
			t.writeAction(state, item.Lookahead, Action{Kind: ActionReduce, Rule: prod})
		}
	}

	return t, nil
}

// BuildTableWithConfig is BuildTable, additionally wiring cfg.Trace into
// the returned table's trace listener via SetTrace.
func BuildTableWithConfig(g *grammar.Grammar, cfg pikecfg.BuildConfig) (*LALRTable, error) {
	t, err := BuildTable(g)
	if err != nil {
		return nil, err
	}
	if cfg.Trace {
		t.SetTrace(func(line string) { fmt.Println(line) })
	}
	return t, nil
}

// writeAction installs a into the ACTION table at [state, sym] if that cell
// is empty; otherwise it records a conflict and keeps the existing action.
func (t *LALRTable) writeAction(state int, sym string, a Action) {
	existing, ok := t.action[state][sym]
	if !ok {
		t.action[state][sym] = a
		return
	}
	if existing.Kind == a.Kind && existing.State == a.State && existing.Rule.Equal(a.Rule) {
		return
	}

	kind := perr.ConflictShiftReduce
	if existing.Kind == ActionReduce && a.Kind == ActionReduce {
		kind = perr.ConflictReduceReduce
	}
	t.conflicts = append(t.conflicts, perr.TableConflict{State: state, Symbol: sym, Kind: kind})
}

// sortedStates is a small helper kept for table dumping (table_string.go).
func sortedStates(ids []int) []int {
	out := append([]int(nil), ids...)
	sort.Ints(out)
	return out
}
