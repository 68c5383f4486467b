package nfa2dfa

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	u "github.com/araddon/gou"
	"github.com/bits-and-blooms/bitset"
)

// State is the index of a declared NFA state, in declaration order.
type State int

// Symbol is the index of a declared alphabet symbol, in declaration order.
type Symbol int

// Epsilon is the symbol of empty transitions. It is never an alphabet member.
const Epsilon Symbol = -1

// NFA A validated nondeterministic automaton. States and symbols are interned to indices;
// the transition table is built once and never mutated.
type NFA struct {
	stateNames []string
	states     map[string]State

	alphabet []string
	symbols  map[string]Symbol

	initial    State
	finals     *bitset.BitSet
	table      *TransitionTable
	hasEpsilon bool
}

// NewNFA Validates desc and builds its transition table. It fails with ErrEmptyAutomaton,
// *UnknownStateError, *UnknownSymbolError or *DuplicateError before any construction work.
func NewNFA(desc Description) (*NFA, error) {
	if len(desc.States) == 0 {
		return nil, ErrEmptyAutomaton
	}

	n := &NFA{
		stateNames: slices.Clone(desc.States),
		states:     make(map[string]State, len(desc.States)),
		alphabet:   slices.Clone(desc.Alphabet),
		symbols:    make(map[string]Symbol, len(desc.Alphabet)),
		hasEpsilon: desc.HasEpsilon,
	}

	for i, name := range desc.States {
		if name == "" {
			return nil, fmt.Errorf("state %d: %w", i, ErrEmptyToken)
		}
		if _, ok := n.states[name]; ok {
			return nil, &DuplicateError{Kind: "state", Name: name}
		}
		n.states[name] = State(i)
	}

	for i, sym := range desc.Alphabet {
		switch {
		case sym == "":
			return nil, fmt.Errorf("symbol %d: %w", i, ErrEmptyToken)
		case IsEpsilon(sym):
			return nil, fmt.Errorf("symbol %q: %w", sym, ErrEpsilonInAlphabet)
		}
		if _, ok := n.symbols[sym]; ok {
			return nil, &DuplicateError{Kind: "symbol", Name: sym}
		}
		n.symbols[sym] = Symbol(i)
	}

	initial, ok := n.states[desc.Initial]
	if !ok {
		return nil, &UnknownStateError{State: desc.Initial, Where: "initial state"}
	}
	n.initial = initial

	n.table = newTransitionTable(len(n.stateNames), len(n.alphabet))
	for _, tr := range desc.Transitions {
		where := "transition " + tr.String()

		from, ok := n.states[tr.From]
		if !ok {
			return nil, &UnknownStateError{State: tr.From, Where: where}
		}

		sym := Epsilon
		if !IsEpsilon(tr.Symbol) {
			if sym, ok = n.symbols[tr.Symbol]; !ok {
				return nil, &UnknownSymbolError{Symbol: tr.Symbol, Where: where}
			}
		}

		if len(tr.To) == 0 {
			return nil, fmt.Errorf("%s has no target: %w", where, ErrEmptyToken)
		}
		for _, name := range tr.To {
			to, ok := n.states[name]
			if !ok {
				return nil, &UnknownStateError{State: name, Where: where}
			}
			n.table.add(from, sym, to)
		}
	}

	n.finals = bitset.New(uint(len(n.stateNames)))
	for _, name := range desc.Finals {
		s, ok := n.states[name]
		if !ok {
			return nil, &UnknownStateError{State: name, Where: "final state"}
		}
		n.finals.Set(uint(s))
	}

	if n.hasEpsilon != n.table.HasEpsilonEdges() {
		u.Debugf("declared epsilon=%v but table has %d epsilon edges", n.hasEpsilon, n.table.epsilonEdges)
	}
	return n, nil
}

// MustNFA is like NewNFA but panics on an invalid description.
func MustNFA(desc Description) *NFA {
	n, err := NewNFA(desc)
	if err != nil {
		panic(err)
	}
	return n
}

// NumStates How many states this automaton has.
func (n *NFA) NumStates() int {
	return len(n.stateNames)
}

// States Returns the state names in declaration order.
func (n *NFA) States() []string {
	return slices.Clone(n.stateNames)
}

// StateName Returns the declared name of s.
func (n *NFA) StateName(s State) string {
	return n.stateNames[s]
}

// StateOf Looks up a state by name.
func (n *NFA) StateOf(name string) (State, bool) {
	s, ok := n.states[name]
	return s, ok
}

// Alphabet Returns the symbols in declaration order.
func (n *NFA) Alphabet() []string {
	return slices.Clone(n.alphabet)
}

// SymbolOf Looks up an alphabet symbol by token. The epsilon marker is not a symbol.
func (n *NFA) SymbolOf(tok string) (Symbol, bool) {
	sym, ok := n.symbols[tok]
	return sym, ok
}

func (n *NFA) Initial() State {
	return n.initial
}

func (n *NFA) IsFinal(s State) bool {
	return n.finals.Test(uint(s))
}

// HasEpsilon Returns the epsilon flag declared with the description. It is informational only;
// see TransitionTable.HasEpsilonEdges for what was actually declared.
func (n *NFA) HasEpsilon() bool {
	return n.hasEpsilon
}

func (n *NFA) Table() *TransitionTable {
	return n.table
}

// Names Returns the names of the states in set, sorted lexically.
func (n *NFA) Names(set *bitset.BitSet) []string {
	out := make([]string, 0, set.Count())
	for s, ok := set.NextSet(0); ok; s, ok = set.NextSet(s + 1) {
		out = append(out, n.stateNames[s])
	}
	slices.Sort(out)
	return out
}

// Label Renders a canonical state set with this automaton's state names, e.g. {A,B}.
func (n *NFA) Label(s StateSet) string {
	return label(n.stateNames, s)
}

// Tokenize Splits a test string into symbols. At each position the longest alphabet symbol that
// matches wins; where none matches, a single rune is taken so the simulator can report it.
func (n *NFA) Tokenize(s string) []string {
	out := make([]string, 0, len(s))
	for len(s) > 0 {
		best := ""
		for _, sym := range n.alphabet {
			if len(sym) > len(best) && strings.HasPrefix(s, sym) {
				best = sym
			}
		}
		if best == "" {
			_, size := utf8.DecodeRuneInString(s)
			best = s[:size]
		}
		out = append(out, best)
		s = s[len(best):]
	}
	return out
}

// Accepts Tokenizes s and reports whether Simulate accepts it.
func (n *NFA) Accepts(s string) bool {
	return Simulate(n, n.Tokenize(s)).Accepted
}
