package parse

import (
	"github.com/dekarrin/pike/grammar"
	"github.com/dekarrin/pike/perr"
	"github.com/dekarrin/rezi"
	"github.com/google/uuid"
)

// snapshot is the flat, rezi-encodable shape of a LALRTable - the nested
// map-of-maps ACTION/GOTO tables are flattened to parallel slices, the same
// way lex.Tokenizer flattens its DFA before encoding.
type snapshot struct {
	BuildID      string
	StartSymbol  string
	Productions  []grammar.Production
	Initial      int
	ActionState  []int
	ActionSymbol []string
	ActionKind   []int
	ActionTarget []int
	ActionRule   []grammar.Production
	GotoState    []int
	GotoSymbol   []string
	GotoTarget   []int
	Conflicts    []perr.TableConflict
}

// MarshalBinary encodes t using rezi, per the teacher's rezi.EncBinary
// persistence pattern - a compiled LALR(1) table can be saved and reloaded
// without re-running canonical-collection construction and kernel merging.
func (t *LALRTable) MarshalBinary() ([]byte, error) {
	snap := snapshot{
		BuildID:     t.BuildID.String(),
		StartSymbol: t.g.Start,
		Productions: t.g.Productions,
		Initial:     t.initial,
		Conflicts:   t.conflicts,
	}

	for _, s := range sortedTableStates(t.action) {
		for _, sym := range sortedTableSymbols(t.action[s]) {
			a := t.action[s][sym]
			snap.ActionState = append(snap.ActionState, s)
			snap.ActionSymbol = append(snap.ActionSymbol, sym)
			snap.ActionKind = append(snap.ActionKind, int(a.Kind))
			snap.ActionTarget = append(snap.ActionTarget, a.State)
			snap.ActionRule = append(snap.ActionRule, a.Rule)
		}
	}

	for _, s := range sortedTableStates(t.gotoTable) {
		for _, nt := range sortedTableSymbols(t.gotoTable[s]) {
			snap.GotoState = append(snap.GotoState, s)
			snap.GotoSymbol = append(snap.GotoSymbol, nt)
			snap.GotoTarget = append(snap.GotoTarget, t.gotoTable[s][nt])
		}
	}

	return rezi.EncBinary(snap), nil
}

// UnmarshalBinary decodes a LALRTable previously produced by MarshalBinary.
// The resulting table drives Parse/Action/Goto/Conflicts/String exactly as
// the original did; it does not reconstruct the LALR(1) viable-prefix
// automaton the table was built from, since nothing after construction
// needs it.
func (t *LALRTable) UnmarshalBinary(data []byte) error {
	var snap snapshot
	if _, err := rezi.DecBinary(data, &snap); err != nil {
		return err
	}

	id, err := uuid.Parse(snap.BuildID)
	if err != nil {
		return err
	}

	t.BuildID = id
	t.g = grammar.New(snap.StartSymbol, snap.Productions)
	t.initial = snap.Initial
	t.conflicts = snap.Conflicts
	t.dfa = nil

	t.action = map[int]map[string]Action{}
	for i, s := range snap.ActionState {
		row, ok := t.action[s]
		if !ok {
			row = map[string]Action{}
			t.action[s] = row
		}
		row[snap.ActionSymbol[i]] = Action{
			Kind:  ActionKind(snap.ActionKind[i]),
			State: snap.ActionTarget[i],
			Rule:  snap.ActionRule[i],
		}
	}

	t.gotoTable = map[int]map[string]int{}
	for i, s := range snap.GotoState {
		row, ok := t.gotoTable[s]
		if !ok {
			row = map[string]int{}
			t.gotoTable[s] = row
		}
		row[snap.GotoSymbol[i]] = snap.GotoTarget[i]
	}

	return nil
}

func sortedTableStates[V any](m map[int]map[string]V) []int {
	out := make([]int, 0, len(m))
	for s := range m {
		out = append(out, s)
	}
	return sortedStates(out)
}

func sortedTableSymbols[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for s := range m {
		out = append(out, s)
	}
	sortStringsLocal(out)
	return out
}

func sortStringsLocal(s []string) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}
