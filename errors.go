package stateminimizer

import "errors"

var (
	// ErrInvalidAutomaton is returned when an automaton violates the model invariants:
	// duplicate or negative ids, dangling transition targets or final ids, unknown
	// symbols, or a missing initial state at reduction time.
	ErrInvalidAutomaton = errors.New("invalid automaton")

	// ErrNotFound is returned when a query names a state that is not part of the automaton.
	ErrNotFound = errors.New("state not found")

	// ErrMalformedTable is returned by ReadTable for input that cannot describe an automaton.
	ErrMalformedTable = errors.New("malformed automaton table")

	// ErrWalkthroughDone is returned when a finished walkthrough is advanced.
	ErrWalkthroughDone = errors.New("walkthrough already finished")
)
