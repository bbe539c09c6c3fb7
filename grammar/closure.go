package grammar

// Closure1 computes CLOSURE(items) for a set of LR(1) items (purple dragon
// algorithm 4.56): repeatedly, for every item A -> α.Bβ, lookahead a, add
// B -> .γ, b for every production B -> γ and every b in FIRST(βa), until no
// more items are added. Grammar g must already be the augmented grammar.
func (g *Grammar) Closure1(items []LR1Item) []LR1Item {
	seen := map[string]LR1Item{}
	for _, it := range items {
		seen[itemKey(it)] = it
	}

	changed := true
	for changed {
		changed = false
		for _, it := range copyItems(seen) {
			b, ok := it.NextSymbol()
			if !ok || !g.IsNonTerminal(b) {
				continue
			}

			beta := it.Right[1:]
			lookaheads := g.lookaheadsFor(beta, it.Lookahead)

			for _, p := range g.Rules(b) {
				for _, la := range lookaheads {
					cand := LR1Item{LR0Item: ItemFor(p), Lookahead: la}
					key := itemKey(cand)
					if _, already := seen[key]; !already {
						seen[key] = cand
						changed = true
					}
				}
			}
		}
	}

	return copyItems(seen)
}

// lookaheadsFor computes FIRST(beta a) for the closure rule: the terminals
// that can follow B in this context, namely FIRST of the remaining symbols
// beta, falling back to the surrounding lookahead a if beta is nullable.
func (g *Grammar) lookaheadsFor(beta []string, a string) []string {
	first, nullable := g.FirstOfSeq(beta)
	out := first.Elements()
	if nullable {
		out = append(out, a)
	}
	// dedupe (a may already be in FIRST(beta)) and drop ε, which is never
	// itself a valid lookahead terminal.
	seen := map[string]bool{}
	result := out[:0]
	for _, t := range out {
		if t == Epsilon || seen[t] {
			continue
		}
		seen[t] = true
		result = append(result, t)
	}
	return result
}

// Goto1 computes GOTO(items, x): closure of the items obtained by advancing
// every item of items whose next symbol is x.
func (g *Grammar) Goto1(items []LR1Item, x string) []LR1Item {
	var moved []LR1Item
	for _, it := range items {
		sym, ok := it.NextSymbol()
		if ok && sym == x {
			moved = append(moved, it.Advance())
		}
	}
	if len(moved) == 0 {
		return nil
	}
	return g.Closure1(moved)
}

func itemKey(it LR1Item) string {
	return it.String()
}

func copyItems(m map[string]LR1Item) []LR1Item {
	out := make([]LR1Item, 0, len(m))
	for _, it := range m {
		out = append(out, it)
	}
	return out
}
