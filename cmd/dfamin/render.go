package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/geange/stateminimizer"
)

var cellMarks = map[stateminimizer.Cell]string{
	stateminimizer.CellHidden:     " ",
	stateminimizer.CellUnmarked:   ".",
	stateminimizer.CellRed:        "R",
	stateminimizer.CellBlue:       "B",
	stateminimizer.CellPropagated: "X",
}

func labels(states []stateminimizer.State) []string {
	names := make([]string, len(states))
	for i, s := range states {
		names[i] = s.Label()
	}
	return names
}

// renderText writes the automaton summary, the lower triangle of the pair table as
// visible at the walkthrough's stage, and the equivalence classes.
func renderText(out io.Writer, w *stateminimizer.Walkthrough, res *stateminimizer.Result) error {
	bw := bufio.NewWriter(out)
	dfa := res.Automaton()
	states := dfa.States()

	initial, err := dfa.InitialState()
	if err != nil {
		return err
	}
	fmt.Fprintf(bw, "Σ: %s\n", strings.Join(dfa.Alphabet(), ", "))
	fmt.Fprintf(bw, "K: %s\n", strings.Join(labels(states), ", "))
	fmt.Fprintf(bw, "S: %s\n", initial.Label())
	fmt.Fprintf(bw, "F: %s\n\n", strings.Join(labels(dfa.FinalStates()), ", "))

	width := 1
	for _, name := range labels(states) {
		width = max(width, len(name))
	}

	for row, rs := range states {
		for col := 0; col < row; col++ {
			c, err := w.Cell(rs.ID, states[col].ID)
			if err != nil {
				return err
			}
			fmt.Fprintf(bw, "%-*s ", width, cellMarks[c])
		}
		fmt.Fprintln(bw, rs.Label())
	}

	if groups := w.Groups(); groups != nil {
		fmt.Fprintln(bw)
		for _, g := range groups {
			sig, err := res.ActiveSignature(g.States[0].ID)
			if err != nil {
				return err
			}
			fmt.Fprintf(bw, "group %d: {%s} signature {%s}\n", g.ID, strings.Join(g.Names(), ", "), sig)
		}
	}
	return bw.Flush()
}
