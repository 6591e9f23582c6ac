package stateminimizer

import (
	"fmt"

	"go.uber.org/zap"
)

// Minimizer Runs the table-filling minimization. A Minimizer holds no state between runs, so one
// instance can serve concurrent calls; every run owns its marking sets and dependency map.
type Minimizer struct {
	logger *zap.Logger
}

type MinimizerOption func(m *Minimizer)

// WithLogger Sets the logger used for debug output of each run.
func WithLogger(logger *zap.Logger) MinimizerOption {
	return func(m *Minimizer) {
		if logger != nil {
			m.logger = logger
		}
	}
}

func NewMinimizer(options ...MinimizerOption) *Minimizer {
	m := &Minimizer{logger: zap.NewNop()}
	for _, opt := range options {
		opt(m)
	}
	return m
}

// Minimize
// Minimizes the given automaton with a default Minimizer.
func Minimize(a *Automaton) (*Result, error) {
	return NewMinimizer().Minimize(a)
}

// Minimize Removes the unreachable states of a, then decides for every pair of the remaining
// states whether they are distinguishable and groups the indistinguishable ones.
func (m *Minimizer) Minimize(a *Automaton) (*Result, error) {
	dfa, err := Reduce(a)
	if err != nil {
		return nil, err
	}
	m.logger.Debug("removed unreachable states",
		zap.Int("states", a.GetNumStates()),
		zap.Int("reachable", dfa.GetNumStates()))

	r := newMarkingRun(dfa, m.logger)
	r.markFinal()
	if err := r.markSignatures(); err != nil {
		return nil, err
	}
	if err := r.propagate(); err != nil {
		return nil, err
	}

	res := &Result{
		dfa:        dfa,
		signatures: r.signatures,
		marked:     r.marked,
		red:        r.red,
		blue:       r.blue,
	}
	res.groups = buildPartition(dfa, r.marked)

	for _, g := range res.groups {
		m.logger.Debug("final group", zap.Int("group", g.ID), zap.Strings("states", g.Names()))
	}
	return res, nil
}

// markingRun Working state of a single minimization.
type markingRun struct {
	dfa    *Automaton
	logger *zap.Logger

	pairs      []cell
	signatures *SignatureIndex

	marked *PairSet
	red    *PairSet
	blue   *PairSet

	// Owner pair to the pairs that become distinguishable once the owner is.
	dependents map[cell][]cell
}

func newMarkingRun(dfa *Automaton, logger *zap.Logger) *markingRun {
	n := dfa.GetNumStates()
	return &markingRun{
		dfa:        dfa,
		logger:     logger,
		pairs:      createStatePairs(n),
		marked:     NewPairSet(n),
		red:        NewPairSet(n),
		blue:       NewPairSet(n),
		dependents: make(map[cell][]cell),
	}
}

// createStatePairs Enumerates every pair of positions i < j, row by row.
func createStatePairs(n int) []cell {
	pairs := make([]cell, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, cell{i: i, j: j})
		}
	}
	return pairs
}

func (r *markingRun) state(pos int) State {
	return r.dfa.states[pos]
}

// markFinal Marks every pair of a final and a non-final state.
func (r *markingRun) markFinal() {
	for _, p := range r.pairs {
		if r.dfa.IsFinal(r.state(p.i).ID) != r.dfa.IsFinal(r.state(p.j).ID) {
			r.marked.add(p)
			r.red.add(p)
		}
	}
	r.logger.Debug("marked final against non-final states", zap.Int("pairs", r.red.Len()))
}

// markSignatures Marks every remaining pair whose states fall into different signature groups.
func (r *markingRun) markSignatures() error {
	r.signatures = NewSignatureIndex(r.dfa)
	for _, g := range r.signatures.Groups() {
		r.logger.Debug("signature group",
			zap.Int("group", g.ID),
			zap.Bool("final", g.Final),
			zap.String("signature", g.Key),
			zap.Ints("states", g.States))
	}

	for _, p := range r.pairs {
		if r.marked.has(p) {
			continue
		}
		same, err := r.sameGroup(r.state(p.i).ID, r.state(p.j).ID)
		if err != nil {
			return err
		}
		if !same {
			r.marked.add(p)
			r.blue.add(p)
		}
	}
	r.logger.Debug("marked by signature", zap.Int("pairs", r.blue.Len()))
	return nil
}

func (r *markingRun) sameGroup(a, b int) (bool, error) {
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

// propagate Checks every still unmarked pair once against the pairs of its successors.
func (r *markingRun) propagate() error {
	for _, p := range r.pairs {
		if r.marked.has(p) {
			continue
		}
		if err := r.checkPair(p); err != nil {
			return err
		}
	}
	r.logger.Debug("propagated marks",
		zap.Int("marked", r.marked.Len()),
		zap.Int("pairs", len(r.pairs)))
	return nil
}

// checkPair Marks p if some symbol leads its states into a known distinguishable pair,
// otherwise registers p as a dependent of each successor pair.
func (r *markingRun) checkPair(p cell) error {
	a, b := r.state(p.i), r.state(p.j)
	for _, symbol := range r.dfa.alphabet {
		ta, ok := a.Next(symbol)
		if !ok {
			continue
		}
		tb, okB := b.Next(symbol)
		if okB && ta == tb {
			continue
		}

		apart, err := r.apart(ta, tb, okB)
		if err != nil {
			return err
		}
		if apart {
			r.mark(p)
			return nil
		}

		owner, err := r.cellOf(ta, tb)
		if err != nil {
			return err
		}
		r.dependents[owner] = append(r.dependents[owner], p)
	}
	return nil
}

// apart Reports whether the successors ta and tb are already known to be distinguishable.
// tb may be undefined, ta is always defined.
func (r *markingRun) apart(ta, tb int, okB bool) (bool, error) {
	if !okB {
		return true, nil
	}
	c, err := r.cellOf(ta, tb)
	if err != nil {
		return false, err
	}
	if r.marked.has(c) {
		return true, nil
	}
	same, err := r.sameGroup(ta, tb)
	if err != nil {
		return false, err
	}
	return !same, nil
}

func (r *markingRun) cellOf(a, b int) (cell, error) {
	i, err := r.dfa.position(a)
	if err != nil {
		return cell{}, fmt.Errorf("successor lookup: %w", err)
	}
	j, err := r.dfa.position(b)
	if err != nil {
		return cell{}, fmt.Errorf("successor lookup: %w", err)
	}
	return newCell(i, j), nil
}

// mark Marks p and everything that transitively depends on it. Every pair is marked at most
// once, so cycles in the dependency map end the walk.
func (r *markingRun) mark(p cell) {
	workList := []cell{p}
	for len(workList) > 0 {
		c := workList[0]
		workList = workList[1:]

		if !r.marked.add(c) {
			continue
		}
		workList = append(workList, r.dependents[c]...)
		delete(r.dependents, c)
	}
}
