package nfa2dfa

import (
	u "github.com/araddon/gou"
	"github.com/bits-and-blooms/bitset"
)

type determinizeOptions struct {
	workLimit int // 0 means unlimited
	capacity  int
}

type DeterminizeOption func(*determinizeOptions)

// WithWorkLimit Aborts determinization with a *TooComplexError once more than limit DFA states
// have been discovered. Zero or less means no limit.
func WithWorkLimit(limit int) DeterminizeOption {
	return func(o *determinizeOptions) {
		o.workLimit = limit
	}
}

// WithInitialCapacity Pre-sizes the table of discovered subsets.
func WithInitialCapacity(capacity int) DeterminizeOption {
	return func(o *determinizeOptions) {
		o.capacity = capacity
	}
}

// Determinize Builds the DFA equivalent to n by subset construction.
// Worst case complexity: exponential in number of states.
//
// Every DFA state is the canonical epsilon-closed subset of NFA states reached by some input,
// state 0 being the closure of the initial state. Transitions are recorded for every alphabet
// symbol, including those leading to the empty subset, so the result is total. Nothing is
// returned on error.
func Determinize(n *NFA, opts ...DeterminizeOption) (*DFA, error) {
	if n == nil {
		return nil, ErrEmptyAutomaton
	}
	o := &determinizeOptions{capacity: 16}
	for _, fn := range opts {
		fn(o)
	}
	if o.capacity < 1 {
		o.capacity = 1
	}

	t := n.table
	numSymbols := len(n.alphabet)

	initial, err := t.Closure(n.initial)
	if err != nil {
		return nil, err
	}
	initialSet := newStateSet(initial)

	sets := []StateSet{initialSet}
	newState := NewHashMap[int](WithCapacity(o.capacity))
	newState.Set(initialSet, 0)

	transitions := make([]int, 0, numSymbols*o.capacity)
	workList := []int{0}

	// States are numbered in discovery order and dequeued FIFO, so rows are appended in order.
	for len(workList) > 0 {
		cur := workList[0]
		workList = workList[1:]
		bits := sets[cur].bits(t.numStates)

		for sym := 0; sym < numSymbols; sym++ {
			move, err := t.Move(bits, Symbol(sym))
			if err != nil {
				return nil, err
			}
			target := newStateSet(t.closure(move))

			dest, ok := newState.Get(target)
			if !ok {
				if o.workLimit > 0 && len(sets) >= o.workLimit {
					return nil, &TooComplexError{Limit: o.workLimit}
				}
				dest = len(sets)
				sets = append(sets, target)
				newState.Set(target, dest)
				workList = append(workList, dest)
				u.Debugf("dfa state %d = %s via %s from %s", dest, n.Label(target), n.alphabet[sym], n.Label(sets[cur]))
			}
			transitions = append(transitions, dest)
		}
	}

	isAccept := bitset.New(uint(len(sets)))
	for i, set := range sets {
		for _, s := range set.members {
			if n.finals.Test(uint(s)) {
				isAccept.Set(uint(i))
				break
			}
		}
	}

	return &DFA{
		alphabet:    n.alphabet,
		symbols:     n.symbols,
		stateNames:  n.stateNames,
		sets:        sets,
		transitions: transitions,
		isAccept:    isAccept,
	}, nil
}
