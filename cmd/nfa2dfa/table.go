package main

import (
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/geange/nfa2dfa"
)

// marker prefixes a row name with → for the initial state and * for accepting states.
func marker(name string, initial, accept bool) string {
	prefix := ""
	if initial {
		prefix += "→"
	}
	if accept {
		prefix += "*"
	}
	return prefix + name
}

func printNFATable(w io.Writer, n *nfa2dfa.NFA) error {
	tbl := n.Table()
	alphabet := n.Alphabet()
	withEpsilon := tbl.HasEpsilonEdges()

	header := append([]string{"State"}, alphabet...)
	if withEpsilon {
		header = append(header, nfa2dfa.EpsilonMarker)
	}

	table := tablewriter.NewWriter(w)
	table.Header(header)

	for s := nfa2dfa.State(0); int(s) < n.NumStates(); s++ {
		row := []string{marker(n.StateName(s), s == n.Initial(), n.IsFinal(s))}
		symbols := make([]nfa2dfa.Symbol, 0, len(alphabet)+1)
		for i := range alphabet {
			symbols = append(symbols, nfa2dfa.Symbol(i))
		}
		if withEpsilon {
			symbols = append(symbols, nfa2dfa.Epsilon)
		}

		for _, sym := range symbols {
			targets, err := tbl.Targets(s, sym)
			if err != nil {
				return err
			}
			names := make([]string, len(targets))
			for i, t := range targets {
				names[i] = n.StateName(t)
			}
			row = append(row, strings.Join(names, ","))
		}
		if err := table.Append(row); err != nil {
			return err
		}
	}
	return table.Render()
}

func printDFATable(w io.Writer, d *nfa2dfa.DFA) error {
	alphabet := d.Alphabet()

	table := tablewriter.NewWriter(w)
	table.Header(append([]string{"Subset"}, alphabet...))

	row := make([]string, 0, len(alphabet)+1)
	for t := range d.Transitions() {
		if len(row) == 0 {
			row = append(row, marker(d.Label(t.From), t.From == d.Initial(), d.IsAccept(t.From)))
		}
		row = append(row, d.Label(t.To))
		if len(row) == len(alphabet)+1 {
			if err := table.Append(row); err != nil {
				return err
			}
			row = make([]string, 0, len(alphabet)+1)
		}
	}
	if len(alphabet) == 0 {
		for s := 0; s < d.NumStates(); s++ {
			if err := table.Append([]string{marker(d.Label(s), s == d.Initial(), d.IsAccept(s))}); err != nil {
				return err
			}
		}
	}
	return table.Render()
}
