// Package describe parses the line-oriented NFA description format:
//
//	# comments run to the end of the line
//	states: A, B, C
//	initial: A
//	alphabet: 0, 1
//	epsilon: yes
//	delta: A, ε, B
//	delta: B, 0, C, A
//	finals: C
//
// Each delta line is from, symbol and one or more targets. List sections may repeat and
// accumulate; initial and epsilon may appear once.
package describe

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/geange/nfa2dfa"
)

type File struct {
	Entries []*Entry `parser:"( @@ | EOL )*"`
}

type Entry struct {
	Pos lexer.Position

	List   *List   `parser:"  @@"`
	Scalar *Scalar `parser:"| @@"`
	Delta  *Delta  `parser:"| 'delta' ':' @@"`
}

type List struct {
	Key    string   `parser:"@( 'states' | 'alphabet' | 'finals' ) ':'"`
	Values []string `parser:"( @Token ( ',' @Token )* )?"`
}

type Scalar struct {
	Key   string `parser:"@( 'initial' | 'epsilon' ) ':'"`
	Value string `parser:"@Token"`
}

type Delta struct {
	From   string   `parser:"@Token ','"`
	Symbol string   `parser:"@Token ','"`
	To     []string `parser:"@Token ( ',' @Token )*"`
}

var descLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "EOL", Pattern: `[\r\n]+`},
	{Name: "Whitespace", Pattern: `[ \t]+`},
	{Name: "Punct", Pattern: `[,:]`},
	{Name: "Token", Pattern: `[^\s,:#]+`},
})

var parser = participle.MustBuild[File](
	participle.Lexer(descLexer),
	participle.Elide("Whitespace", "Comment"),
)

// Parse reads a description from r. name is used in error positions.
func Parse(name string, r io.Reader) (*nfa2dfa.Description, error) {
	f, err := parser.Parse(name, r)
	if err != nil {
		return nil, err
	}
	return f.Description()
}

// ParseString is like Parse for an in-memory description.
func ParseString(name, s string) (*nfa2dfa.Description, error) {
	return Parse(name, strings.NewReader(s))
}

// Description converts the parsed entries. It checks only the format; state and symbol
// references are validated by nfa2dfa.NewNFA.
func (f *File) Description() (*nfa2dfa.Description, error) {
	desc := &nfa2dfa.Description{}
	var haveInitial, haveEpsilon bool

	for _, e := range f.Entries {
		switch {
		case e.List != nil:
			switch e.List.Key {
			case "states":
				desc.States = append(desc.States, e.List.Values...)
			case "alphabet":
				desc.Alphabet = append(desc.Alphabet, e.List.Values...)
			case "finals":
				desc.Finals = append(desc.Finals, e.List.Values...)
			}

		case e.Scalar != nil:
			switch e.Scalar.Key {
			case "initial":
				if haveInitial {
					return nil, fmt.Errorf("%s: initial state declared twice", e.Pos)
				}
				haveInitial = true
				desc.Initial = e.Scalar.Value
			case "epsilon":
				if haveEpsilon {
					return nil, fmt.Errorf("%s: epsilon flag declared twice", e.Pos)
				}
				haveEpsilon = true
				yes, err := ParseYesNo(e.Scalar.Value)
				if err != nil {
					return nil, fmt.Errorf("%s: %w", e.Pos, err)
				}
				desc.HasEpsilon = yes
			}

		case e.Delta != nil:
			desc.Transitions = append(desc.Transitions, nfa2dfa.TransitionSpec{
				From:   e.Delta.From,
				Symbol: e.Delta.Symbol,
				To:     e.Delta.To,
			})
		}
	}
	return desc, nil
}

// ParseYesNo accepts yes/no, y/n and true/false in any case.
func ParseYesNo(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "y", "true":
		return true, nil
	case "no", "n", "false":
		return false, nil
	}
	return false, fmt.Errorf("expected yes or no, got %q", s)
}
