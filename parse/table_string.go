package parse

import (
	"fmt"

	"github.com/dekarrin/rosed"
)

// String renders t's ACTION/GOTO table as a fixed-width text grid, in the
// same rosed.Edit(...).InsertTableOpts(...) style the teacher's
// lalr1Table.String uses.
func (t *LALRTable) String() string {
	terms := t.g.Terminals()
	terms = append(terms, "$")
	nonTerms := t.g.NonTerminals()

	headers := []string{"S", "|"}
	for _, term := range terms {
		headers = append(headers, "A:"+term)
	}
	headers = append(headers, "|")
	for _, nt := range nonTerms {
		headers = append(headers, "G:"+nt)
	}

	data := [][]string{headers}

	states := make([]int, 0, len(t.action))
	for s := range t.action {
		states = append(states, s)
	}
	for _, s := range sortedStates(states) {
		row := []string{fmt.Sprintf("%d", s), "|"}

		for _, term := range terms {
			cell := ""
			switch a := t.Action(s, term); a.Kind {
			case ActionAccept:
				cell = "acc"
			case ActionShift:
				cell = fmt.Sprintf("s%d", a.State)
			case ActionReduce:
				cell = fmt.Sprintf("r(%s)", a.Rule.String())
			}
			row = append(row, cell)
		}

		row = append(row, "|")
		for _, nt := range nonTerms {
			cell := ""
			if to, ok := t.Goto(s, nt); ok {
				cell = fmt.Sprintf("%d", to)
			}
			row = append(row, cell)
		}

		data = append(data, row)
	}

	return rosed.
		Edit("").
		InsertTableOpts(0, data, 10, rosed.Options{
			TableHeaders:             true,
			NoTrailingLineSeparators: true,
		}).
		String()
}

// DumpConflicts renders t's recorded conflicts as a table, one row per
// conflict, for diagnostic output.
func (t *LALRTable) DumpConflicts() string {
	data := [][]string{{"State", "Symbol", "Kind"}}
	for _, c := range t.conflicts {
		data = append(data, []string{fmt.Sprintf("%d", c.State), c.Symbol, c.Kind.String()})
	}

	return rosed.
		Edit("").
		InsertTableOpts(0, data, 10, rosed.Options{
			TableHeaders:             true,
			NoTrailingLineSeparators: true,
		}).
		String()
}
