package stateminimizer

import "fmt"

// Result The outcome of one minimization run. It is read-only: the marking sets are complete
// when Minimize returns and never change afterwards.
type Result struct {
	dfa        *Automaton
	signatures *SignatureIndex

	// marked holds every distinguishable pair; red and blue are the subsets marked
	// by final status and by signature respectively.
	marked *PairSet
	red    *PairSet
	blue   *PairSet

	groups []*StateGroup
}

// Automaton Returns the reduced automaton the run operated on.
func (r *Result) Automaton() *Automaton {
	return r.dfa
}

// Groups Returns the equivalence classes, ordered by their smallest state id.
func (r *Result) Groups() []*StateGroup {
	return r.groups
}

// GroupOf Returns the equivalence class holding the state.
func (r *Result) GroupOf(id int) (*StateGroup, error) {
	for _, g := range r.groups {
		if g.Contains(id) {
			return g, nil
		}
	}
	return nil, fmt.Errorf("%w: %d", ErrNotFound, id)
}

// Signatures Returns the signature groups of the run.
func (r *Result) Signatures() *SignatureIndex {
	return r.signatures
}

func (r *Result) test(set *PairSet, a, b int) (bool, error) {
	i, err := r.dfa.position(a)
	if err != nil {
		return false, err
	}
	j, err := r.dfa.position(b)
	if err != nil {
		return false, err
	}
	return set.Has(i, j), nil
}

// IsMarked Returns true if a and b are distinguishable. The arguments may be given in any order.
func (r *Result) IsMarked(a, b int) (bool, error) {
	return r.test(r.marked, a, b)
}

// IsMarkedAsRed Returns true if exactly one of a and b is final.
func (r *Result) IsMarkedAsRed(a, b int) (bool, error) {
	return r.test(r.red, a, b)
}

// IsMarkedAsBlue Returns true if a and b share their final status but have different signatures.
func (r *Result) IsMarkedAsBlue(a, b int) (bool, error) {
	return r.test(r.blue, a, b)
}

// ActiveSignature Returns the signature key of the state: its symbols with a defined transition,
// in alphabet order, separated by commas.
func (r *Result) ActiveSignature(id int) (string, error) {
	g, err := r.signatures.GroupOf(id)
	if err != nil {
		return "", err
	}
	return g.Key, nil
}

// SameFinality Returns true if both states are final or both are not.
func (r *Result) SameFinality(a, b int) (bool, error) {
	if !r.dfa.Has(a) {
		return false, fmt.Errorf("%w: %d", ErrNotFound, a)
	}
	if !r.dfa.Has(b) {
		return false, fmt.Errorf("%w: %d", ErrNotFound, b)
	}
	return r.dfa.IsFinal(a) == r.dfa.IsFinal(b), nil
}

// SameSignature Returns true if both states are in the same signature group.
func (r *Result) SameSignature(a, b int) (bool, error) {
	ga, err := r.signatures.GroupOf(a)
	if err != nil {
		return false, err
	}
	gb, err := r.signatures.GroupOf(b)
	if err != nil {
		return false, err
	}
	return ga.ID == gb.ID, nil
}

// MarkedPairs Returns the distinguishable pairs in enumeration order.
func (r *Result) MarkedPairs() []Pair {
	return r.pairsOf(r.marked)
}

// RedPairs Returns the pairs marked by final status.
func (r *Result) RedPairs() []Pair {
	return r.pairsOf(r.red)
}

// BluePairs Returns the pairs marked by signature.
func (r *Result) BluePairs() []Pair {
	return r.pairsOf(r.blue)
}

func (r *Result) pairsOf(set *PairSet) []Pair {
	pairs := make([]Pair, 0, set.Len())
	for _, c := range createStatePairs(r.dfa.GetNumStates()) {
		if set.has(c) {
			pairs = append(pairs, NewPair(r.dfa.states[c.i].ID, r.dfa.states[c.j].ID))
		}
	}
	return pairs
}
