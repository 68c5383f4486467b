package nfa2dfa

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulate(t *testing.T) {
	t.Run("scenario A", func(t *testing.T) {
		n := MustNFA(scenarioA())
		res := Simulate(n, split("01"))
		assert.True(t, res.Accepted)
		assert.False(t, res.HaltedEarly)
		assert.Equal(t, 2, res.Consumed)
		assert.Equal(t, []string{"B"}, res.Final)
		assert.Nil(t, res.Diagnostic)

		assert.False(t, Simulate(n, split("011")).Accepted)
	})

	t.Run("scenario B", func(t *testing.T) {
		n := MustNFA(scenarioB())
		res := Simulate(n, split("0"))
		assert.True(t, res.Accepted)
		assert.Equal(t, []string{"C"}, res.Final)
	})

	t.Run("empty input judges the initial closure", func(t *testing.T) {
		n := MustNFA(scenarioB())
		res := Simulate(n, nil)
		assert.False(t, res.Accepted)
		assert.Equal(t, []string{"A", "B"}, res.Final)
	})

	t.Run("scenario C halts early on the stale set", func(t *testing.T) {
		n := MustNFA(scenarioC())
		res := Simulate(n, split("011"))
		assert.True(t, res.HaltedEarly)
		assert.True(t, res.Accepted)
		assert.Equal(t, 1, res.Consumed)
		assert.Equal(t, []string{"B"}, res.Final)

		require.NotNil(t, res.Diagnostic)
		assert.Equal(t, "1", res.Diagnostic.Symbol)
		assert.Equal(t, 1, res.Diagnostic.Position)
		assert.Equal(t, []string{"B"}, res.Diagnostic.States)
		assert.Contains(t, res.Diagnostic.Error(), "'1'")

		// the table walk sees the dead subset instead
		_, d := determinize(t, scenarioC())
		assert.False(t, Run(d, split("011")))
	})

	t.Run("halt on the first symbol keeps the initial closure", func(t *testing.T) {
		n := MustNFA(scenarioC())
		res := Simulate(n, split("1"))
		assert.True(t, res.HaltedEarly)
		assert.False(t, res.Accepted)
		assert.Equal(t, 0, res.Consumed)
		assert.Equal(t, []string{"A"}, res.Final)
	})

	t.Run("unknown token is a runtime gap", func(t *testing.T) {
		n := MustNFA(scenarioA())
		res := Simulate(n, split("1x0"))
		assert.True(t, res.HaltedEarly)
		assert.True(t, res.Accepted)
		assert.Equal(t, "x", res.Diagnostic.Symbol)

		res = Simulate(n, []string{EpsilonMarker})
		assert.True(t, res.HaltedEarly)
	})

	t.Run("multi-character symbols", func(t *testing.T) {
		n := MustNFA(Description{
			States:   []string{"s", "t"},
			Initial:  "s",
			Alphabet: []string{"go", "stop"},
			Transitions: []TransitionSpec{
				{From: "s", Symbol: "go", To: []string{"t"}},
				{From: "t", Symbol: "stop", To: []string{"s"}},
			},
			Finals: []string{"t"},
		})
		assert.True(t, n.Accepts("gostopgo"))
		assert.False(t, n.Accepts("gostop"))
	})
}

func TestSimulateAgreesWithRun(t *testing.T) {
	r := rand.New(rand.NewPCG(13, 17))
	for round := 0; round < 40; round++ {
		n, d := determinize(t, randomDescription(r, 1+r.IntN(6), round%2 == 0))
		alphabet := n.Alphabet()

		for i := 0; i < 30; i++ {
			input := make([]string, r.IntN(8))
			for j := range input {
				input[j] = alphabet[r.IntN(len(alphabet))]
			}

			res := Simulate(n, input)
			if res.HaltedEarly {
				assert.False(t, Run(d, input), strings.Join(input, ""))
				continue
			}
			assert.Equal(t, res.Accepted, Run(d, input), strings.Join(input, ""))

			state := d.Initial()
			for _, tok := range input {
				sym, _ := d.SymbolOf(tok)
				state = d.Step(state, sym)
			}
			assert.Equal(t, "{"+strings.Join(res.Final, ",")+"}", d.Label(state))
		}
	}
}

func TestRun(t *testing.T) {
	_, d := determinize(t, scenarioA())

	tests := []struct {
		name  string
		input []string
		want  bool
	}{
		{name: "empty", input: nil, want: false},
		{name: "odd ones", input: split("0100"), want: true},
		{name: "even ones", input: split("0110"), want: false},
		{name: "unknown token", input: split("1x"), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equalf(t, tt.want, Run(d, tt.input), "Run(%v)", tt.input)
		})
	}
}
