package stateminimizer

import (
	"fmt"
	"strings"
)

// StateGroup An equivalence class of pairwise indistinguishable states. Each group becomes one
// state of the minimized automaton.
type StateGroup struct {
	ID     int
	States []State
}

// IDs Returns the ids of the member states.
func (g *StateGroup) IDs() []int {
	ids := make([]int, len(g.States))
	for i, s := range g.States {
		ids[i] = s.ID
	}
	return ids
}

// Names Returns the display names of the member states.
func (g *StateGroup) Names() []string {
	names := make([]string, len(g.States))
	for i, s := range g.States {
		names[i] = s.Label()
	}
	return names
}

// Contains Returns true if the state with this id is a member.
func (g *StateGroup) Contains(id int) bool {
	for _, s := range g.States {
		if s.ID == id {
			return true
		}
	}
	return false
}

func (g *StateGroup) String() string {
	return fmt.Sprintf("state group: %d states: %s", g.ID, strings.Join(g.Names(), ", "))
}

// buildPartition Splits the states of a into classes of mutually unmarked states. Unmarked is an
// equivalence relation once marking is complete, so the first matching class is the only one.
func buildPartition(a *Automaton, marked *PairSet) []*StateGroup {
	n := a.GetNumStates()
	groupOf := make([]*StateGroup, n)
	groups := make([]*StateGroup, 0)

	for i := 0; i < n; i++ {
		if groupOf[i] == nil {
			for j := 0; j < i; j++ {
				if groupOf[j] != nil && !marked.Has(i, j) {
					groupOf[i] = groupOf[j]
					groupOf[i].States = append(groupOf[i].States, a.states[i])
					break
				}
			}
		}
		if groupOf[i] == nil {
			group := &StateGroup{ID: len(groups), States: []State{a.states[i]}}
			groups = append(groups, group)
			groupOf[i] = group
		}

		for j := i + 1; j < n; j++ {
			if groupOf[j] == nil && !marked.Has(i, j) {
				groupOf[j] = groupOf[i]
				groupOf[i].States = append(groupOf[i].States, a.states[j])
			}
		}
	}
	return groups
}
