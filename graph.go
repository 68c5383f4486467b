package nfa2dfa

import (
	"strconv"
	"strings"
)

// Node A vertex handed to a renderer.
type Node struct {
	ID           string
	Label        string
	DoubleCircle bool
}

// Edge A labelled arc handed to a renderer. Parallel arcs are merged, labels joined by ",".
type Edge struct {
	From  string
	To    string
	Label string
}

// Graph Layout-free description of an automaton for rendering. Start is the ID of the node
// that receives the start marker.
type Graph struct {
	Nodes []Node
	Edges []Edge
	Start string
}

type edgeMerger struct {
	edges []Edge
	index map[[2]string]int
}

func (m *edgeMerger) add(from, to, label string) {
	if m.index == nil {
		m.index = make(map[[2]string]int)
	}
	key := [2]string{from, to}
	if i, ok := m.index[key]; ok {
		if !strings.Contains(","+m.edges[i].Label+",", ","+label+",") {
			m.edges[i].Label += "," + label
		}
		return
	}
	m.index[key] = len(m.edges)
	m.edges = append(m.edges, Edge{From: from, To: to, Label: label})
}

func dfaNodeID(state int) string {
	return "d" + strconv.Itoa(state)
}

func nfaNodeID(state State) string {
	return "n" + strconv.Itoa(int(state))
}

// Graph Returns one node per DFA state, labelled with its subset, double-circled when accepting.
func (d *DFA) Graph() Graph {
	g := Graph{
		Nodes: make([]Node, len(d.sets)),
		Start: dfaNodeID(d.Initial()),
	}
	for i := range d.sets {
		g.Nodes[i] = Node{ID: dfaNodeID(i), Label: d.Label(i), DoubleCircle: d.IsAccept(i)}
	}

	var m edgeMerger
	for t := range d.Transitions() {
		m.add(dfaNodeID(t.From), dfaNodeID(t.To), t.Symbol)
	}
	g.Edges = m.edges
	return g
}

// Graph Returns one node per NFA state; epsilon arcs are labelled with EpsilonMarker.
func (n *NFA) Graph() Graph {
	g := Graph{
		Nodes: make([]Node, len(n.stateNames)),
		Start: nfaNodeID(n.initial),
	}
	for i, name := range n.stateNames {
		g.Nodes[i] = Node{ID: nfaNodeID(State(i)), Label: name, DoubleCircle: n.IsFinal(State(i))}
	}

	var m edgeMerger
	for s := range n.stateNames {
		for sym := Epsilon; int(sym) < len(n.alphabet); sym++ {
			lbl := EpsilonMarker
			if sym != Epsilon {
				lbl = n.alphabet[sym]
			}
			for _, to := range membersOf(n.table.cell(State(s), sym)) {
				m.add(nfaNodeID(State(s)), nfaNodeID(to), lbl)
			}
		}
	}
	g.Edges = m.edges
	return g
}
