package main

import (
	"errors"
	"io"
	"strings"

	u "github.com/araddon/gou"
	"github.com/manifoldco/promptui"

	"github.com/geange/nfa2dfa"
)

const (
	doneWord = "done"
	exitWord = "exit"
)

func promptText(label string, validate promptui.ValidateFunc) (string, error) {
	p := promptui.Prompt{Label: label, Validate: validate}
	s, err := p.Run()
	return strings.TrimSpace(s), err
}

func promptList(label string, allowEmpty bool) ([]string, error) {
	s, err := promptText(label, func(s string) error {
		if !allowEmpty && len(nfa2dfa.SplitList(s)) == 0 {
			return errors.New("at least one value is required")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return nfa2dfa.SplitList(s), nil
}

// validateTransition accepts a from,symbol,to[,to...] line or the done keyword.
func validateTransition(s string) error {
	if strings.EqualFold(strings.TrimSpace(s), doneWord) {
		return nil
	}
	_, err := nfa2dfa.ParseTransition(s)
	return err
}

// collectDescription asks for the NFA in this order: states, initial
// state, alphabet, epsilon flag, transitions until "done", finals.
func collectDescription() (*nfa2dfa.Description, error) {
	desc := &nfa2dfa.Description{}
	var err error

	if desc.States, err = promptList("Enter NFA states (comma-separated)", false); err != nil {
		return nil, err
	}
	if desc.Initial, err = promptText("Enter initial state", nil); err != nil {
		return nil, err
	}
	if desc.Alphabet, err = promptList("Enter alphabet symbols (comma-separated)", true); err != nil {
		return nil, err
	}

	sel := promptui.Select{
		Label: "Does the NFA have epsilon transitions?",
		Items: []string{"yes", "no"},
	}
	_, answer, err := sel.Run()
	if err != nil {
		return nil, err
	}
	desc.HasEpsilon = answer == "yes"

	example := "e.g., A,0,B"
	if desc.HasEpsilon {
		example += " or A," + nfa2dfa.EpsilonMarker + ",B"
	}
	for {
		line, err := promptText("Enter transition ("+example+"), '"+doneWord+"' to finish", validateTransition)
		if err != nil {
			return nil, err
		}
		if strings.EqualFold(line, doneWord) {
			break
		}
		tr, err := nfa2dfa.ParseTransition(line)
		if err != nil {
			return nil, err
		}
		desc.Transitions = append(desc.Transitions, tr)
	}

	if desc.Finals, err = promptList("Enter final states (comma-separated)", true); err != nil {
		return nil, err
	}
	u.Debugf("collected %d states, %d transitions", len(desc.States), len(desc.Transitions))
	return desc, nil
}

// testLoop prompts for strings until "exit" or end of input.
func testLoop(w io.Writer, n *nfa2dfa.NFA) error {
	for {
		s, err := promptText("Enter a string to test (type '"+exitWord+"' to stop)", nil)
		switch {
		case errors.Is(err, promptui.ErrInterrupt), errors.Is(err, promptui.ErrEOF):
			return nil
		case err != nil:
			return err
		}
		if strings.EqualFold(s, exitWord) {
			return nil
		}
		report(w, n, s)
	}
}
