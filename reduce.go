package stateminimizer

import (
	"fmt"
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// Reduce Returns a new automaton holding only the states reachable from the initial state.
// States are deep copies ordered by ascending id; the alphabet is carried over and the final
// ids are filtered to the surviving states.
func Reduce(a *Automaton) (*Automaton, error) {
	if !a.Has(InitialStateID) {
		return nil, fmt.Errorf("%w: no initial state with id %d", ErrInvalidAutomaton, InitialStateID)
	}

	live := getLiveStatesFromInitial(a)

	reachable := make([]State, 0, live.Count())
	finals := make([]int, 0)
	for pos, ok := live.NextSet(0); ok; pos, ok = live.NextSet(pos + 1) {
		s := a.states[pos]
		reachable = append(reachable, s)
		if a.isFinal.Test(pos) {
			finals = append(finals, s.ID)
		}
	}
	slices.SortFunc(reachable, func(x, y State) int { return x.ID - y.ID })
	slices.Sort(finals)

	return NewAutomaton(reachable, a.alphabet, finals)
}

// getLiveStatesFromInitial Breadth-first search from the initial state over all defined
// transitions. If the bit at a state's position is set then that state is reachable.
func getLiveStatesFromInitial(a *Automaton) *bitset.BitSet {
	live := bitset.New(uint(a.GetNumStates()))
	start, ok := a.index[InitialStateID]
	if !ok {
		return live
	}

	workList := make([]int, 0)
	live.Set(uint(start))
	workList = append(workList, start)

	for len(workList) > 0 {
		pos := workList[0]
		workList = workList[1:]

		s := a.states[pos]
		for _, symbol := range a.alphabet {
			dest, ok := s.Next(symbol)
			if !ok {
				continue
			}
			next := a.index[dest]
			if !live.Test(uint(next)) {
				live.Set(uint(next))
				workList = append(workList, next)
			}
		}
	}

	return live
}
