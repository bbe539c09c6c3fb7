package lex

import (
	"github.com/dekarrin/pike/automaton"
	"github.com/dekarrin/rezi"
	"github.com/google/uuid"
)

// snapshot is the exported, flat shape of a Tokenizer that rezi can walk by
// reflection - the DFA's map-of-pointers internals aren't directly
// encodable, so MarshalBinary first flattens it to parallel slices.
type snapshot struct {
	BuildID     string
	Rules       []LexicalRule
	Start       int
	StateCount  int
	AcceptKind  map[int]string
	AcceptPrio  map[int]int
	TransFrom   []int
	TransOn     []rune
	TransTo     []int
}

// MarshalBinary encodes t using rezi, per the teacher's rezi.EncBinary
// persistence pattern for compiled, otherwise-expensive-to-rebuild state.
func (t *Tokenizer) MarshalBinary() ([]byte, error) {
	snap := snapshot{
		BuildID:    t.BuildID.String(),
		Rules:      t.rules,
		Start:      int(t.dfa.Start),
		AcceptKind: map[int]string{},
		AcceptPrio: map[int]int{},
	}

	for _, id := range t.dfa.States() {
		snap.StateCount++
		if tag := t.dfa.Accept(id); tag != nil {
			snap.AcceptKind[int(id)] = tag.Kind
			snap.AcceptPrio[int(id)] = tag.Priority
		}
		for _, c := range sortedRunes(t.dfa.Alphabet()) {
			to, ok := t.dfa.Next(id, c)
			if !ok {
				continue
			}
			snap.TransFrom = append(snap.TransFrom, int(id))
			snap.TransOn = append(snap.TransOn, c)
			snap.TransTo = append(snap.TransTo, int(to))
		}
	}

	return rezi.EncBinary(snap), nil
}

// UnmarshalBinary decodes a Tokenizer previously produced by MarshalBinary.
func (t *Tokenizer) UnmarshalBinary(data []byte) error {
	var snap snapshot
	if _, err := rezi.DecBinary(data, &snap); err != nil {
		return err
	}

	id, err := uuid.Parse(snap.BuildID)
	if err != nil {
		return err
	}

	t.BuildID = id
	t.rules = snap.Rules
	t.dfa = rebuildDFA(snap)
	return nil
}

func rebuildDFA(snap snapshot) *automaton.DFA {
	accept := map[automaton.StateID]automaton.AcceptTag{}
	for id, kind := range snap.AcceptKind {
		accept[automaton.StateID(id)] = automaton.AcceptTag{Kind: kind, Priority: snap.AcceptPrio[id]}
	}

	from := make([]automaton.StateID, len(snap.TransFrom))
	to := make([]automaton.StateID, len(snap.TransTo))
	for i := range snap.TransFrom {
		from[i] = automaton.StateID(snap.TransFrom[i])
		to[i] = automaton.StateID(snap.TransTo[i])
	}

	return automaton.RebuildDFA(automaton.StateID(snap.Start), accept, from, to, snap.TransOn)
}

func sortedRunes(set map[rune]struct{}) []rune {
	out := make([]rune, 0, len(set))
	for c := range set {
		out = append(out, c)
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1] > out[j]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}
