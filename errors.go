package nfa2dfa

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyAutomaton is returned when a description declares no states.
	ErrEmptyAutomaton = errors.New("automaton declares no states")

	// ErrEmptyToken is returned for an empty state or symbol token.
	ErrEmptyToken = errors.New("empty state or symbol token")

	// ErrEpsilonInAlphabet is returned when the epsilon marker is declared as an alphabet symbol.
	ErrEpsilonInAlphabet = errors.New("epsilon marker declared in alphabet")
)

// UnknownStateError A transition, initial state or final state references a token that is not
// a declared state.
type UnknownStateError struct {
	State string
	Where string
}

func (e *UnknownStateError) Error() string {
	return fmt.Sprintf("%s references undeclared state %q", e.Where, e.State)
}

// UnknownSymbolError A transition references a non-epsilon symbol outside the declared alphabet.
type UnknownSymbolError struct {
	Symbol string
	Where  string
}

func (e *UnknownSymbolError) Error() string {
	return fmt.Sprintf("%s references undeclared symbol %q", e.Where, e.Symbol)
}

// DuplicateError A state or symbol token is declared more than once.
type DuplicateError struct {
	Kind string
	Name string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("%s %q declared more than once", e.Kind, e.Name)
}

// TooComplexError Subset construction discovered more DFA states than the configured work limit.
type TooComplexError struct {
	Limit int
}

func (e *TooComplexError) Error() string {
	return fmt.Sprintf("too complex to determinize: more than %d states", e.Limit)
}

// NoTransitionError Simulation found no successor for Symbol at input position Position.
// It is reported in a Result, never returned as a failure.
type NoTransitionError struct {
	Symbol   string
	Position int
	States   []string
}

func (e *NoTransitionError) Error() string {
	return fmt.Sprintf("no transition for symbol '%s' at position %d in current state(s) {%s}",
		e.Symbol, e.Position, strings.Join(e.States, ","))
}
