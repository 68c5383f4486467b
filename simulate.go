package nfa2dfa

import (
	u "github.com/araddon/gou"
	"github.com/bits-and-blooms/bitset"
)

// Result The outcome of simulating one input.
type Result struct {
	Accepted    bool
	HaltedEarly bool

	// Number of input symbols consumed before halting.
	Consumed int

	// Names of the states held when the simulation stopped, sorted.
	Final []string

	// Set when HaltedEarly; names the symbol and states where no transition existed.
	Diagnostic *NoTransitionError
}

// Simulate Runs input against the NFA, recomputing successor sets from the transition table at
// every step.
//
// The current set starts as the closure of the initial state. For each symbol the move over the
// current set is computed; if it is empty the simulation halts, leaving the current set as it
// was and the remaining input unread. Otherwise the current set becomes the closure of the move.
// Acceptance is judged on the current set however the loop ended, so an input with an
// unreachable suffix is still accepted when the state reached before halting is final.
func Simulate(n *NFA, input []string) Result {
	t := n.table
	seed := bitset.New(uint(t.numStates))
	seed.Set(uint(n.initial))
	current := t.closure(seed)

	var res Result
	for i, tok := range input {
		var move *bitset.BitSet
		if sym, ok := n.symbols[tok]; ok {
			move = t.move(current, sym)
		}
		if move == nil || move.None() {
			res.HaltedEarly = true
			res.Diagnostic = &NoTransitionError{Symbol: tok, Position: i, States: n.Names(current)}
			u.Debugf("simulation halted: %v", res.Diagnostic)
			break
		}
		current = t.closure(move)
		res.Consumed++
	}

	res.Final = n.Names(current)
	res.Accepted = current.IntersectionCardinality(n.finals) > 0
	return res
}
