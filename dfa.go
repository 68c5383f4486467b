package nfa2dfa

import (
	"iter"
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// DFA A deterministic automaton produced by Determinize. Each state stands for a canonical
// subset of NFA states; state 0 is the initial state. The transition function is total over
// the alphabet and stored densely, one row of len(alphabet) destinations per state. A DFA is
// immutable.
type DFA struct {
	alphabet   []string
	symbols    map[string]Symbol
	stateNames []string

	sets []StateSet

	// Destination of (state, symbol) at state*len(alphabet)+symbol.
	transitions []int

	isAccept *bitset.BitSet
}

// Transition One entry of the DFA transition table.
type Transition struct {
	From   int
	Symbol string
	To     int
}

// NumStates How many states this automaton has.
func (d *DFA) NumStates() int {
	return len(d.sets)
}

// NumTransitions How many transitions this automaton has.
func (d *DFA) NumTransitions() int {
	return len(d.transitions)
}

// Initial Returns the initial state, always 0.
func (d *DFA) Initial() int {
	return 0
}

func (d *DFA) Alphabet() []string {
	return slices.Clone(d.alphabet)
}

// SymbolOf Looks up an alphabet symbol by token.
func (d *DFA) SymbolOf(tok string) (Symbol, bool) {
	sym, ok := d.symbols[tok]
	return sym, ok
}

// StateSet Returns the NFA states that state stands for.
func (d *DFA) StateSet(state int) StateSet {
	return d.sets[state]
}

// Label Renders state as its NFA subset, e.g. {A,B}. The empty subset renders as {}.
func (d *DFA) Label(state int) string {
	return label(d.stateNames, d.sets[state])
}

// IsAccept Returns true if this state is an accept state.
func (d *DFA) IsAccept(state int) bool {
	return d.isAccept.Test(uint(state))
}

// Finals Returns the accept states in ascending order.
func (d *DFA) Finals() []int {
	out := make([]int, 0, d.isAccept.Count())
	for s, ok := d.isAccept.NextSet(0); ok; s, ok = d.isAccept.NextSet(s + 1) {
		out = append(out, int(s))
	}
	return out
}

// Lookup Returns the state whose subset equals set.
func (d *DFA) Lookup(set StateSet) (int, bool) {
	i := slices.IndexFunc(d.sets, func(s StateSet) bool {
		return s.Equals(set)
	})
	return i, i >= 0
}

// Step Performs lookup in transitions.
// Returns: destination state, -1 if state or sym is out of range
func (d *DFA) Step(state int, sym Symbol) int {
	numSymbols := len(d.alphabet)
	if state < 0 || state >= len(d.sets) || sym < 0 || int(sym) >= numSymbols {
		return -1
	}
	return d.transitions[state*numSymbols+int(sym)]
}

// Transitions Iterates the transition table row by row, symbols in alphabet order.
func (d *DFA) Transitions() iter.Seq[Transition] {
	return func(yield func(Transition) bool) {
		numSymbols := len(d.alphabet)
		for i, to := range d.transitions {
			t := Transition{From: i / numSymbols, Symbol: d.alphabet[i%numSymbols], To: to}
			if !yield(t) {
				return
			}
		}
	}
}

// IsEmpty Returns true if the automaton accepts no strings.
func (d *DFA) IsEmpty() bool {
	if d.IsAccept(0) {
		return false
	}

	numSymbols := len(d.alphabet)
	seen := bitset.New(uint(len(d.sets)))
	workList := []int{0}
	seen.Set(0)

	for len(workList) > 0 {
		state := workList[0]
		workList = workList[1:]
		if d.IsAccept(state) {
			return false
		}
		for _, dest := range d.transitions[state*numSymbols : (state+1)*numSymbols] {
			if !seen.Test(uint(dest)) {
				seen.Set(uint(dest))
				workList = append(workList, dest)
			}
		}
	}
	return true
}
