package automaton

import "sort"

// Minimize collapses equivalent states of d using Moore's partition
// refinement (table-filling), per spec §4.5. The teacher repo has no
// counterpart to this pass - dekarrin/tunaq's lexer never minimizes,
// since it tokenizes straight off Go's regexp package - so this is
// authored directly from the textbook algorithm, kept in the same
// arena/StateID style as ToDFA.
//
// States are only ever merged within a partition block, and partitions
// start out split by accept tag: two accepting states with different
// (kind, priority) tags can never be merged, since collapsing them would
// erase which rule a given input is supposed to match. Non-accepting
// states start in their own block, keyed by "no tag".
func (d *DFA) Minimize() *DFA {
	alphabet := sortedAlphabet(d.Alphabet())
	ids := d.States()

	blockOf := map[StateID]int{}
	blocks := partitionByAcceptTag(d, ids, blockOf)

	for {
		next := refine(d, alphabet, blocks, blockOf)
		if len(next) == len(blocks) {
			blocks = next
			break
		}
		blocks = next
	}

	return rebuild(d, blocks, blockOf)
}

// partitionByAcceptTag builds the initial partition: one block per distinct
// accept-tag signature (including a block for "non-accepting"), and fills in
// blockOf.
func partitionByAcceptTag(d *DFA, ids []StateID, blockOf map[StateID]int) [][]StateID {
	keyOf := func(id StateID) string {
		tag := d.Accept(id)
		if tag == nil {
			return "-"
		}
		return tag.Kind + "#" + itoa(tag.Priority)
	}

	byKey := map[string][]StateID{}
	var order []string
	for _, id := range ids {
		k := keyOf(id)
		if _, ok := byKey[k]; !ok {
			order = append(order, k)
		}
		byKey[k] = append(byKey[k], id)
	}
	sort.Strings(order)

	var blocks [][]StateID
	for _, k := range order {
		blockIdx := len(blocks)
		members := byKey[k]
		for _, id := range members {
			blockOf[id] = blockIdx
		}
		blocks = append(blocks, members)
	}
	return blocks
}

// refine makes one splitting pass: it splits any block whose members
// disagree on which block their c-successor falls into, for some symbol c.
// Minimize calls it repeatedly and stops at the fixed point, once a pass
// leaves the number of blocks unchanged.
func refine(d *DFA, alphabet []rune, blocks [][]StateID, blockOf map[StateID]int) [][]StateID {
	var next [][]StateID

	for _, block := range blocks {
		if len(block) == 1 {
			next = append(next, block)
			continue
		}

		groups := map[string][]StateID{}
		var order []string
		for _, id := range block {
			sig := successorSignature(d, id, alphabet, blockOf)
			if _, ok := groups[sig]; !ok {
				order = append(order, sig)
			}
			groups[sig] = append(groups[sig], id)
		}

		if len(groups) == 1 {
			next = append(next, block)
			continue
		}

		sort.Strings(order)
		for _, sig := range order {
			next = append(next, groups[sig])
		}
	}

	newBlockOf := map[StateID]int{}
	for i, block := range next {
		for _, id := range block {
			newBlockOf[id] = i
		}
	}
	for id, i := range newBlockOf {
		blockOf[id] = i
	}

	return next
}

// successorSignature encodes, for state id, which block each alphabet
// symbol's transition lands in (or "x" for no transition), so that two
// states are judged equivalent only if every symbol routes them to the
// same block.
func successorSignature(d *DFA, id StateID, alphabet []rune, blockOf map[StateID]int) string {
	buf := make([]byte, 0, len(alphabet)*4)
	for i, c := range alphabet {
		if i > 0 {
			buf = append(buf, '|')
		}
		to, ok := d.Next(id, c)
		if !ok {
			buf = append(buf, 'x')
			continue
		}
		buf = appendInt(buf, blockOf[to])
	}
	return string(buf)
}

// rebuild constructs the minimized DFA with one state per final block.
func rebuild(d *DFA, blocks [][]StateID, blockOf map[StateID]int) *DFA {
	states := make(map[StateID]*dfaState, len(blocks))
	for i, block := range blocks {
		rep := block[0]
		states[StateID(i)] = &dfaState{
			id:     StateID(i),
			trans:  map[rune]StateID{},
			accept: d.Accept(rep),
		}
	}

	for i, block := range blocks {
		rep := block[0]
		for c := range d.Alphabet() {
			to, ok := d.Next(rep, c)
			if !ok {
				continue
			}
			states[StateID(i)].trans[c] = StateID(blockOf[to])
		}
	}

	start := StateID(blockOf[d.Start])
	return &DFA{states: states, Start: start}
}

func sortedAlphabet(set map[rune]struct{}) []rune {
	out := make([]rune, 0, len(set))
	for c := range set {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func itoa(v int) string {
	return string(appendInt(nil, v))
}
