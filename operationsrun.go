package stateminimizer

// Run Returns true if the automaton accepts word. A missing transition rejects the word.
func Run(a *Automaton, word ...string) bool {
	return RunFrom(a, InitialStateID, word...)
}

// RunFrom Like Run, starting from the given state.
func RunFrom(a *Automaton, state int, word ...string) bool {
	if !a.Has(state) {
		return false
	}
	for _, symbol := range word {
		next, ok := a.Step(state, symbol)
		if !ok {
			return false
		}
		state = next
	}
	return a.IsFinal(state)
}

// Trace Returns the symbols on which the state reached by word has a transition, and whether
// the word could be followed at all. Together with RunFrom it describes everything a word
// can observe about a state.
func Trace(a *Automaton, state int, word ...string) ([]string, bool) {
	if !a.Has(state) {
		return nil, false
	}
	for _, symbol := range word {
		next, ok := a.Step(state, symbol)
		if !ok {
			return nil, false
		}
		state = next
	}
	enabled := make([]string, 0)
	for _, symbol := range a.alphabet {
		if _, ok := a.Step(state, symbol); ok {
			enabled = append(enabled, symbol)
		}
	}
	return enabled, true
}
