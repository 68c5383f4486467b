// Command nfa2dfa converts an NFA description into a DFA by subset construction, prints the
// transition tables, writes the DFA as a Graphviz graph and tests strings against the automaton.
//
//	nfa2dfa -f automaton.nfa 01 0110
//	nfa2dfa -i
package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	u "github.com/araddon/gou"

	"github.com/geange/nfa2dfa"
	"github.com/geange/nfa2dfa/describe"
	"github.com/geange/nfa2dfa/dot"
)

var (
	descFile    = flag.String("f", "", "NFA description file (.json or text format)")
	interactive = flag.Bool("i", false, "collect the NFA and test strings interactively")
	outFile     = flag.String("o", "gv_dfa.gv", "DOT output file for the DFA, - for stdout, empty to skip")
	nfaFile     = flag.String("nfa", "", "also write the NFA graph to this DOT file")
	pngFlag     = flag.Bool("png", false, "render PNG next to each DOT file via dot -Tpng")
	tableFlag   = flag.Bool("table", true, "print the NFA and DFA transition tables")
	workLimit   = flag.Int("limit", 0, "maximum number of DFA states, 0 for no limit")
	logLevel    = flag.String("loglevel", "warn", "log level [debug|info|warn|error]")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [-f file | -i] [flags] [test strings...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	u.SetupLogging(*logLevel)
	u.SetColorIfTerminal()

	if *descFile == "" && !*interactive {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(os.Stdout); err != nil {
		u.Errorf("%v", err)
		os.Exit(1)
	}
}

func run(out io.Writer) error {
	desc, err := loadDescription()
	if err != nil {
		return err
	}

	n, err := nfa2dfa.NewNFA(*desc)
	if err != nil {
		return fmt.Errorf("invalid automaton: %w", err)
	}
	if *tableFlag {
		if err := printNFATable(out, n); err != nil {
			return err
		}
		fmt.Fprintln(out)
	}

	d, err := nfa2dfa.Determinize(n, nfa2dfa.WithWorkLimit(*workLimit))
	if err != nil {
		return err
	}
	u.Infof("dfa has %d states and %d transitions", d.NumStates(), d.NumTransitions())
	if *tableFlag {
		if err := printDFATable(out, d); err != nil {
			return err
		}
		fmt.Fprintln(out)
	}

	if err := writeGraph(out, *outFile, d.Graph()); err != nil {
		return err
	}
	if err := writeGraph(out, *nfaFile, n.Graph()); err != nil {
		return err
	}

	for _, s := range flag.Args() {
		report(out, n, s)
	}
	if *interactive {
		return testLoop(out, n)
	}
	return nil
}

func loadDescription() (*nfa2dfa.Description, error) {
	if *descFile == "" {
		return collectDescription()
	}

	data, err := os.ReadFile(*descFile)
	if err != nil {
		return nil, err
	}
	if strings.EqualFold(filepath.Ext(*descFile), ".json") {
		desc := &nfa2dfa.Description{}
		if err := json.Unmarshal(data, desc); err != nil {
			return nil, fmt.Errorf("%s: %w", *descFile, err)
		}
		return desc, nil
	}
	return describe.Parse(*descFile, bytes.NewReader(data))
}

func writeGraph(out io.Writer, path string, g nfa2dfa.Graph) error {
	if path == "" {
		return nil
	}
	src, err := dot.Render(g)
	if err != nil {
		return err
	}
	if path == "-" {
		_, err = io.WriteString(out, src)
		return err
	}
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		return err
	}
	fmt.Fprintf(out, "DOT written to %s\n", path)

	if *pngFlag {
		png := strings.TrimSuffix(path, filepath.Ext(path)) + ".png"
		cmd := exec.Command("dot", "-Tpng", "-o", png)
		cmd.Stdin = strings.NewReader(src)
		cmd.Stderr = os.Stderr
		if err := cmd.Run(); err != nil {
			var execErr *exec.Error
			if errors.As(err, &execErr) {
				u.Warnf("graphviz not available, skipping %s: %v", png, err)
				return nil
			}
			return fmt.Errorf("dot failed: %w", err)
		}
		fmt.Fprintf(out, "PNG written to %s\n", png)
	}
	return nil
}
