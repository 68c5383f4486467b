package describe

import (
	"os"
	"strings"
	"testing"

	u "github.com/araddon/gou"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geange/nfa2dfa"
)

func TestMain(m *testing.M) {
	u.SetupLogging("warn")
	os.Exit(m.Run())
}

const scenarioB = `
# A -ε-> B -0-> C
states: A, B, C
initial: A
alphabet: 0
epsilon: yes

delta: A, ε, B
delta: B, 0, C
finals: C
`

func TestParse(t *testing.T) {
	desc, err := ParseString("b.nfa", scenarioB)
	require.NoError(t, err)

	assert.Equal(t, &nfa2dfa.Description{
		States:     []string{"A", "B", "C"},
		Initial:    "A",
		Alphabet:   []string{"0"},
		HasEpsilon: true,
		Transitions: []nfa2dfa.TransitionSpec{
			{From: "A", Symbol: "ε", To: []string{"B"}},
			{From: "B", Symbol: "0", To: []string{"C"}},
		},
		Finals: []string{"C"},
	}, desc)

	n, err := nfa2dfa.NewNFA(*desc)
	require.NoError(t, err)
	assert.True(t, n.Accepts("0"))
}

func TestParseMultipleTargetsAndRepeats(t *testing.T) {
	src := "states: q0, q1\nstates: q2\ninitial: q0\nalphabet: a, b\ndelta: q0, a, q1, q2 # fan out\nfinals:\n"
	desc, err := Parse("multi.nfa", strings.NewReader(src))
	require.NoError(t, err)

	assert.Equal(t, []string{"q0", "q1", "q2"}, desc.States)
	assert.Equal(t, []string{"q1", "q2"}, desc.Transitions[0].To)
	assert.Empty(t, desc.Finals)
	assert.False(t, desc.HasEpsilon)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{name: "unknown section", src: "colors: red\n", want: "bad.nfa:1:1"},
		{name: "short delta", src: "delta: A, 0\n", want: "bad.nfa:1"},
		{name: "initial twice", src: "initial: A\ninitial: B\n", want: "initial state declared twice"},
		{name: "bad epsilon flag", src: "epsilon: maybe\n", want: "expected yes or no"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseString("bad.nfa", tt.src)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestParseYesNo(t *testing.T) {
	for _, s := range []string{"yes", "Y", "TRUE"} {
		v, err := ParseYesNo(s)
		assert.NoError(t, err)
		assert.True(t, v, s)
	}
	v, err := ParseYesNo(" no ")
	assert.NoError(t, err)
	assert.False(t, v)
}
