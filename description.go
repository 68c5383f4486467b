package nfa2dfa

import (
	"fmt"
	"strings"
)

// EpsilonMarker is the token used for epsilon transitions in descriptions.
const EpsilonMarker = "ε"

// IsEpsilon reports whether tok names the empty transition.
func IsEpsilon(tok string) bool {
	switch tok {
	case EpsilonMarker, "eps", "epsilon":
		return true
	}
	return false
}

// Description is the raw NFA as collected from a user or a file, before validation.
type Description struct {
	States      []string         `json:"states"`
	Initial     string           `json:"initial"`
	Alphabet    []string         `json:"alphabet"`
	Transitions []TransitionSpec `json:"transitions"`
	Finals      []string         `json:"finals"`
	HasEpsilon  bool             `json:"has_epsilon"`
}

// TransitionSpec is one (from, symbol, to-list) triple.
type TransitionSpec struct {
	From   string   `json:"from"`
	Symbol string   `json:"symbol"`
	To     []string `json:"to"`
}

func (t TransitionSpec) String() string {
	return t.From + "," + t.Symbol + "," + strings.Join(t.To, ",")
}

// SplitList splits a comma-separated line into trimmed, non-empty tokens.
func SplitList(line string) []string {
	fields := strings.Split(line, ",")
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// ParseTransition parses a line such as "A,0,B" or "A,ε,B,C". Every field after the symbol
// is a target state.
func ParseTransition(line string) (TransitionSpec, error) {
	fields := strings.Split(line, ",")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	if len(fields) < 3 {
		return TransitionSpec{}, fmt.Errorf("transition %q: want from,symbol,to[,to...]", line)
	}
	to := SplitList(strings.Join(fields[2:], ","))
	if fields[0] == "" || fields[1] == "" || len(to) == 0 {
		return TransitionSpec{}, fmt.Errorf("transition %q: %w", line, ErrEmptyToken)
	}
	return TransitionSpec{From: fields[0], Symbol: fields[1], To: to}, nil
}
