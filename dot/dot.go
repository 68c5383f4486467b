// Package dot renders automaton graphs in the Graphviz DOT language.
package dot

import (
	"io"
	"strconv"

	"github.com/awalterschulze/gographviz"

	"github.com/geange/nfa2dfa"
)

const (
	graphName = "G"
	beginNode = "BEGIN"
)

// Render Lays out g left to right with circle nodes, double circles for accepting nodes and an
// invisible BEGIN node whose "start" edge points at the initial node.
func Render(g nfa2dfa.Graph) (string, error) {
	gv := gographviz.NewGraph()
	if err := gv.SetName(graphName); err != nil {
		return "", err
	}
	if err := gv.SetDir(true); err != nil {
		return "", err
	}
	if err := gv.AddAttr(graphName, "rankdir", "LR"); err != nil {
		return "", err
	}

	for _, n := range g.Nodes {
		shape := "circle"
		if n.DoubleCircle {
			shape = "doublecircle"
		}
		attrs := map[string]string{
			"label": strconv.Quote(n.Label),
			"shape": shape,
		}
		if err := gv.AddNode(graphName, strconv.Quote(n.ID), attrs); err != nil {
			return "", err
		}
	}

	if g.Start != "" {
		if err := gv.AddNode(graphName, beginNode, map[string]string{"label": `""`, "shape": "none"}); err != nil {
			return "", err
		}
		if err := gv.AddEdge(beginNode, strconv.Quote(g.Start), true, map[string]string{"label": "start"}); err != nil {
			return "", err
		}
	}

	for _, e := range g.Edges {
		attrs := map[string]string{"label": strconv.Quote(e.Label)}
		if err := gv.AddEdge(strconv.Quote(e.From), strconv.Quote(e.To), true, attrs); err != nil {
			return "", err
		}
	}

	return gv.String(), nil
}

// Write renders g to w.
func Write(w io.Writer, g nfa2dfa.Graph) error {
	s, err := Render(g)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s)
	return err
}
