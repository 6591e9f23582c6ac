package stateminimizer

import (
	"fmt"
	"maps"
	"slices"
	"strconv"

	"github.com/bits-and-blooms/bitset"
	"github.com/tiendc/go-deepcopy"
)

// InitialStateID is the id of the initial state of every automaton.
const InitialStateID = 0

// State A single DFA state. Transitions is a partial function from input symbol to
// target state id; a missing symbol means there is no transition on it.
type State struct {
	ID          int            `json:"id"`
	Name        string         `json:"name,omitempty"`
	Transitions map[string]int `json:"transitions,omitempty"`
}

// Next Returns the target of the transition on symbol, if one is defined.
func (s State) Next(symbol string) (int, bool) {
	dest, ok := s.Transitions[symbol]
	return dest, ok
}

// Label Returns the display name of the state, falling back to q<id>.
func (s State) Label() string {
	if s.Name != "" {
		return s.Name
	}
	return "q" + strconv.Itoa(s.ID)
}

func (s State) clone() State {
	return cloneStates([]State{s})[0]
}

// cloneStates Returns deep copies of states. State holds only ints, strings and a map of them,
// all of which deepcopy supports.
func cloneStates(states []State) []State {
	dst := make([]State, 0, len(states))
	if err := deepcopy.Copy(&dst, &states); err != nil {
		panic(fmt.Sprintf("copy states: %v", err))
	}
	return dst
}

func (s State) String() string {
	return fmt.Sprintf("state: %d(%s) symbols: %v", s.ID, s.Label(), slices.Sorted(maps.Keys(s.Transitions)))
}

// Automaton Represents a deterministic finite automaton: an ordered sequence of states, an alphabet
// and a set of final states. State InitialStateID is the initial state. An Automaton is read-only
// once built; every stage of the minimization produces a new one instead of mutating its input.
type Automaton struct {
	states []State

	// Position of each state id in states.
	index map[int]int

	alphabet []string

	// Position of each symbol in alphabet.
	symbols map[string]int

	// If the bit at a state's position is set then that state is final.
	isFinal *bitset.BitSet
}

// NewAutomaton Builds an automaton from its states, alphabet and final state ids. States keep their
// order; duplicate alphabet symbols are dropped. States are deep copied, so later changes to the
// passed maps do not leak into the automaton. Ids may be sparse; storage follows the number of
// states, not the largest id.
func NewAutomaton(states []State, alphabet []string, finals []int) (*Automaton, error) {
	a := &Automaton{
		index:    make(map[int]int, len(states)),
		alphabet: make([]string, 0, len(alphabet)),
		symbols:  make(map[string]int, len(alphabet)),
		isFinal:  bitset.New(uint(len(states))),
	}

	for _, symbol := range alphabet {
		if _, ok := a.symbols[symbol]; ok {
			continue
		}
		a.symbols[symbol] = len(a.alphabet)
		a.alphabet = append(a.alphabet, symbol)
	}

	for _, s := range states {
		if s.ID < 0 {
			return nil, fmt.Errorf("%w: negative state id %d", ErrInvalidAutomaton, s.ID)
		}
		if _, ok := a.index[s.ID]; ok {
			return nil, fmt.Errorf("%w: duplicate state id %d", ErrInvalidAutomaton, s.ID)
		}
		a.index[s.ID] = len(a.index)
	}
	a.states = cloneStates(states)

	for _, s := range a.states {
		for symbol, dest := range s.Transitions {
			if _, ok := a.symbols[symbol]; !ok {
				return nil, fmt.Errorf("%w: state %d has a transition on unknown symbol %q",
					ErrInvalidAutomaton, s.ID, symbol)
			}
			if _, ok := a.index[dest]; !ok {
				return nil, fmt.Errorf("%w: transition %d -%s-> %d targets a missing state",
					ErrInvalidAutomaton, s.ID, symbol, dest)
			}
		}
	}

	for _, id := range finals {
		pos, ok := a.index[id]
		if !ok {
			return nil, fmt.Errorf("%w: final state %d does not exist", ErrInvalidAutomaton, id)
		}
		a.isFinal.Set(uint(pos))
	}

	return a, nil
}

// GetNumStates How many states this automaton has.
func (a *Automaton) GetNumStates() int {
	return len(a.states)
}

// States Returns a copy of the states in automaton order.
func (a *Automaton) States() []State {
	return cloneStates(a.states)
}

// IDs Returns the state ids in automaton order.
func (a *Automaton) IDs() []int {
	ids := make([]int, len(a.states))
	for i, s := range a.states {
		ids[i] = s.ID
	}
	return ids
}

// Has Returns true if a state with this id exists.
func (a *Automaton) Has(id int) bool {
	_, ok := a.index[id]
	return ok
}

// State Looks up a state by id.
func (a *Automaton) State(id int) (State, error) {
	pos, ok := a.index[id]
	if !ok {
		return State{}, fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	return a.states[pos].clone(), nil
}

// position Returns the index of the state in automaton order.
func (a *Automaton) position(id int) (int, error) {
	pos, ok := a.index[id]
	if !ok {
		return -1, fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	return pos, nil
}

// InitialState Returns the state with id InitialStateID.
func (a *Automaton) InitialState() (State, error) {
	return a.State(InitialStateID)
}

// IsFinal Returns true if this state is a final state.
func (a *Automaton) IsFinal(id int) bool {
	pos, ok := a.index[id]
	return ok && a.isFinal.Test(uint(pos))
}

// FinalIDs Returns the ids of the final states in ascending order.
func (a *Automaton) FinalIDs() []int {
	ids := make([]int, 0, a.isFinal.Count())
	for i, ok := a.isFinal.NextSet(0); ok; i, ok = a.isFinal.NextSet(i + 1) {
		ids = append(ids, a.states[i].ID)
	}
	slices.Sort(ids)
	return ids
}

// FinalStates Returns the final states in automaton order.
func (a *Automaton) FinalStates() []State {
	return a.filter(true)
}

// NonFinalStates Returns the non-final states in automaton order.
func (a *Automaton) NonFinalStates() []State {
	return a.filter(false)
}

func (a *Automaton) filter(final bool) []State {
	result := make([]State, 0)
	for _, s := range a.states {
		if a.IsFinal(s.ID) == final {
			result = append(result, s.clone())
		}
	}
	return result
}

// Alphabet Returns the input symbols in insertion order.
func (a *Automaton) Alphabet() []string {
	return slices.Clone(a.alphabet)
}

// Step Performs a lookup in the transition function.
// Returns the destination state and true, or false if state has no transition on symbol
// or does not exist.
func (a *Automaton) Step(state int, symbol string) (int, bool) {
	pos, ok := a.index[state]
	if !ok {
		return -1, false
	}
	return a.states[pos].Next(symbol)
}
