package nfa2dfa

import (
	"strconv"

	"github.com/bits-and-blooms/bitset"
)

// TransitionTable Holds, for every state, the target set of each symbol column. Column 0 is
// epsilon, column i+1 is alphabet symbol i. Every cell exists; a symbol without a declared
// transition maps to the empty set. The table is filled once by NewNFA and never mutated
// afterwards.
type TransitionTable struct {
	numStates  int
	numSymbols int

	// (numSymbols+1) cells per state, each a bitset sized to numStates.
	cells []*bitset.BitSet

	epsilonEdges int
}

func newTransitionTable(numStates, numSymbols int) *TransitionTable {
	t := &TransitionTable{
		numStates:  numStates,
		numSymbols: numSymbols,
		cells:      make([]*bitset.BitSet, numStates*(numSymbols+1)),
	}
	for i := range t.cells {
		t.cells[i] = bitset.New(uint(numStates))
	}
	return t
}

func (t *TransitionTable) cell(s State, sym Symbol) *bitset.BitSet {
	return t.cells[int(s)*(t.numSymbols+1)+int(sym)+1]
}

func (t *TransitionTable) add(from State, sym Symbol, to State) {
	c := t.cell(from, sym)
	if sym == Epsilon && !c.Test(uint(to)) {
		t.epsilonEdges++
	}
	c.Set(uint(to))
}

// NumStates How many states the table covers.
func (t *TransitionTable) NumStates() int {
	return t.numStates
}

// NumSymbols How many alphabet symbols the table covers, epsilon excluded.
func (t *TransitionTable) NumSymbols() int {
	return t.numSymbols
}

// HasEpsilonEdges Returns true if at least one epsilon transition was declared.
func (t *TransitionTable) HasEpsilonEdges() bool {
	return t.epsilonEdges > 0
}

func (t *TransitionTable) checkState(s State) error {
	if s < 0 || int(s) >= t.numStates {
		return &UnknownStateError{State: "#" + strconv.Itoa(int(s)), Where: "table lookup"}
	}
	return nil
}

func (t *TransitionTable) checkSymbol(sym Symbol) error {
	if sym < Epsilon || int(sym) >= t.numSymbols {
		return &UnknownSymbolError{Symbol: "#" + strconv.Itoa(int(sym)), Where: "table lookup"}
	}
	return nil
}

func (t *TransitionTable) checkSet(set *bitset.BitSet) error {
	if i, ok := set.NextSet(uint(t.numStates)); ok {
		return t.checkState(State(i))
	}
	return nil
}

// Targets Returns the targets of s on sym, in state order.
func (t *TransitionTable) Targets(s State, sym Symbol) ([]State, error) {
	if err := t.checkState(s); err != nil {
		return nil, err
	}
	if err := t.checkSymbol(sym); err != nil {
		return nil, err
	}
	return membersOf(t.cell(s, sym)), nil
}

// Move Returns the union of the targets on sym of every state in set.
func (t *TransitionTable) Move(set *bitset.BitSet, sym Symbol) (*bitset.BitSet, error) {
	if err := t.checkSet(set); err != nil {
		return nil, err
	}
	if err := t.checkSymbol(sym); err != nil {
		return nil, err
	}
	return t.move(set, sym), nil
}

func (t *TransitionTable) move(set *bitset.BitSet, sym Symbol) *bitset.BitSet {
	result := bitset.New(uint(t.numStates))
	for s, ok := set.NextSet(0); ok; s, ok = set.NextSet(s + 1) {
		result.InPlaceUnion(t.cell(State(s), sym))
	}
	return result
}

func membersOf(b *bitset.BitSet) []State {
	out := make([]State, 0, b.Count())
	for i, ok := b.NextSet(0); ok; i, ok = b.NextSet(i + 1) {
		out = append(out, State(i))
	}
	return out
}
