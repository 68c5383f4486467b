package nfa2dfa

// Run Walks the DFA transition table over input and returns true if it ends in an accept state.
// A token outside the alphabet rejects. Unlike Simulate there is no early halt: a missing NFA
// successor is the empty subset, which never accepts.
func Run(d *DFA, input []string) bool {
	state := d.Initial()
	for _, tok := range input {
		sym, ok := d.SymbolOf(tok)
		if !ok {
			return false
		}
		state = d.Step(state, sym)
		if state == -1 {
			return false
		}
	}
	return d.IsAccept(state)
}
