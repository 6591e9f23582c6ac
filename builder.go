package stateminimizer

import (
	"fmt"
	"slices"
)

// Builder Constructs an automaton by state name. Ids are assigned in the order states are
// added, so the first state added becomes the initial state. A name referenced by a transition
// before it was added is created on the spot.
type Builder struct {
	alphabet []string
	names    map[string]int
	states   []State
	finals   []int
}

func NewBuilder(alphabet ...string) *Builder {
	return &Builder{
		alphabet: slices.Clone(alphabet),
		names:    make(map[string]int),
	}
}

// AddState Returns the id of the named state, creating it if needed.
func (b *Builder) AddState(name string) int {
	if id, ok := b.names[name]; ok {
		return id
	}
	id := len(b.states)
	b.names[name] = id
	b.states = append(b.states, State{ID: id, Name: name, Transitions: make(map[string]int)})
	return id
}

// AddTransition Add a transition from -symbol-> to. A state can have at most one transition
// per symbol.
func (b *Builder) AddTransition(from, symbol, to string) error {
	if !slices.Contains(b.alphabet, symbol) {
		return fmt.Errorf("%w: unknown symbol %q", ErrInvalidAutomaton, symbol)
	}
	source := b.AddState(from)
	dest := b.AddState(to)
	if prev, ok := b.states[source].Transitions[symbol]; ok && prev != dest {
		return fmt.Errorf("%w: state %q already has a transition on %q", ErrInvalidAutomaton, from, symbol)
	}
	b.states[source].Transitions[symbol] = dest
	return nil
}

// SetFinal Marks the named state as final.
func (b *Builder) SetFinal(names ...string) {
	for _, name := range names {
		id := b.AddState(name)
		if !slices.Contains(b.finals, id) {
			b.finals = append(b.finals, id)
		}
	}
}

// Finish Returns the built automaton.
func (b *Builder) Finish() (*Automaton, error) {
	return NewAutomaton(b.states, b.alphabet, b.finals)
}
