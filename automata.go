package stateminimizer

import (
	"bytes"
)

// ExampleAutomaton
// Returns the automaton offered as a downloadable example: states q0..q4 over {a,b},
// with q0 initial and final.
func ExampleAutomaton() *Automaton {
	b := NewBuilder("a", "b")
	for _, name := range []string{"q0", "q1", "q2", "q3", "q4"} {
		b.AddState(name)
	}
	for _, t := range [][3]string{
		{"q0", "a", "q3"},
		{"q0", "b", "q1"},
		{"q1", "b", "q2"},
		{"q2", "a", "q0"},
		{"q3", "a", "q4"},
		{"q4", "b", "q0"},
	} {
		if err := b.AddTransition(t[0], t[1], t[2]); err != nil {
			panic(err)
		}
	}
	b.SetFinal("q0")

	a, err := b.Finish()
	if err != nil {
		panic(err)
	}
	return a
}

// ExampleTable
// Returns ExampleAutomaton in table form.
func ExampleTable() []byte {
	var buf bytes.Buffer
	if err := WriteTable(&buf, ExampleAutomaton()); err != nil {
		panic(err)
	}
	return buf.Bytes()
}
