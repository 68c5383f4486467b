package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/geange/nfa2dfa"
)

// report simulates s and prints the verdict the way the interactive tester always has.
func report(w io.Writer, n *nfa2dfa.NFA, s string) nfa2dfa.Result {
	res := nfa2dfa.Simulate(n, n.Tokenize(s))
	if d := res.Diagnostic; d != nil {
		fmt.Fprintf(w, "No transition for symbol '%s' in current state(s) {%s}.\n", d.Symbol, strings.Join(d.States, ","))
	}
	if res.Accepted {
		fmt.Fprintln(w, "Accepted!")
	} else {
		fmt.Fprintln(w, "Not accepted.")
	}
	return res
}
