package nfa2dfa

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func labels(d *DFA) []string {
	out := make([]string, d.NumStates())
	for i := range out {
		out[i] = d.Label(i)
	}
	return out
}

func TestDeterminize(t *testing.T) {
	t.Run("scenario A keeps its shape", func(t *testing.T) {
		_, d := determinize(t, scenarioA())

		assert.Equal(t, []string{"{A}", "{B}"}, labels(d))
		assert.Equal(t, []int{1}, d.Finals())
		assert.Equal(t, 0, d.Step(0, 0))
		assert.Equal(t, 1, d.Step(0, 1))
		assert.Equal(t, 1, d.Step(1, 0))
		assert.Equal(t, 0, d.Step(1, 1))
		assert.Equal(t, -1, d.Step(2, 0))
		assert.Equal(t, -1, d.Step(0, 2))
	})

	t.Run("scenario B records the empty subset", func(t *testing.T) {
		_, d := determinize(t, scenarioB())

		assert.Equal(t, []string{"{A,B}", "{C}", "{}"}, labels(d))
		assert.Equal(t, []int{1}, d.Finals())
		assert.Equal(t, 1, d.Step(0, 0))
		assert.Equal(t, 2, d.Step(1, 0))
		assert.Equal(t, 2, d.Step(2, 0))
		assert.True(t, d.StateSet(2).IsEmpty())
		assert.False(t, d.IsAccept(2))
	})

	t.Run("(a|b)*abb", func(t *testing.T) {
		_, d := determinize(t, abbDescription())

		assert.Equal(t, 5, d.NumStates())
		assert.Equal(t, 10, d.NumTransitions())
		assert.Len(t, d.Finals(), 1)
		assert.Equal(t, []State{0, 1, 2, 4, 7}, d.StateSet(0).Members())

		for _, s := range []string{"abb", "aabb", "babb", "abababb"} {
			assert.True(t, Run(d, split(s)), s)
		}
		for _, s := range []string{"", "ab", "abba", "bbb"} {
			assert.False(t, Run(d, split(s)), s)
		}
	})

	t.Run("empty alphabet", func(t *testing.T) {
		_, d := determinize(t, Description{States: []string{"A"}, Initial: "A", Finals: []string{"A"}})
		assert.Equal(t, 1, d.NumStates())
		assert.Equal(t, 0, d.NumTransitions())
		assert.True(t, Run(d, nil))
	})

	t.Run("nil automaton", func(t *testing.T) {
		d, err := Determinize(nil)
		assert.Nil(t, d)
		assert.ErrorIs(t, err, ErrEmptyAutomaton)
	})
}

func TestDeterminizeWorkLimit(t *testing.T) {
	n := MustNFA(abbDescription())

	d, err := Determinize(n, WithWorkLimit(3))
	assert.Nil(t, d)
	var target *TooComplexError
	require.ErrorAs(t, err, &target)
	assert.Equal(t, 3, target.Limit)

	d, err = Determinize(n, WithWorkLimit(5), WithInitialCapacity(1))
	require.NoError(t, err)
	assert.Equal(t, 5, d.NumStates())
}

func TestDeterminizeProperties(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 5))
	for round := 0; round < 40; round++ {
		desc := randomDescription(r, 1+r.IntN(7), round%3 != 0)
		n, d := determinize(t, desc)
		numSymbols := len(n.Alphabet())

		// bounded state growth
		assert.LessOrEqual(t, d.NumStates(), 1<<n.NumStates())

		// every state is canonical and distinct
		keys := make(map[string]bool)
		for i := 0; i < d.NumStates(); i++ {
			set := d.StateSet(i)
			assert.True(t, slices.IsSorted(set.Members()))
			assert.False(t, keys[set.Key()], "duplicate subset %s", d.Label(i))
			keys[set.Key()] = true
		}

		// transition totality
		assert.Equal(t, d.NumStates()*numSymbols, d.NumTransitions())
		seen := make(map[[2]int]int)
		for tr := range d.Transitions() {
			sym, ok := d.SymbolOf(tr.Symbol)
			require.True(t, ok)
			seen[[2]int{tr.From, int(sym)}]++
		}
		for s := 0; s < d.NumStates(); s++ {
			for sym := 0; sym < numSymbols; sym++ {
				assert.Equal(t, 1, seen[[2]int{s, sym}])
			}
		}

		// reachability from the initial state
		reached := map[int]bool{0: true}
		workList := []int{0}
		for len(workList) > 0 {
			s := workList[0]
			workList = workList[1:]
			for sym := 0; sym < numSymbols; sym++ {
				if dest := d.Step(s, Symbol(sym)); !reached[dest] {
					reached[dest] = true
					workList = append(workList, dest)
				}
			}
		}
		assert.Len(t, reached, d.NumStates())

		// accept states are exactly the subsets meeting the NFA finals
		for i := 0; i < d.NumStates(); i++ {
			want := slices.ContainsFunc(d.StateSet(i).Members(), n.IsFinal)
			assert.Equal(t, want, d.IsAccept(i))
		}

		// determinism
		d2, err := Determinize(n)
		require.NoError(t, err)
		assert.Equal(t, labels(d), labels(d2))
		assert.Equal(t, slices.Collect(d.Transitions()), slices.Collect(d2.Transitions()))
	}
}

func TestDeterminizeIgnoresDeclarationOrder(t *testing.T) {
	a := abbDescription()
	b := abbDescription()
	slices.Reverse(b.Transitions)
	for i := range b.Transitions {
		slices.Reverse(b.Transitions[i].To)
	}

	_, da := determinize(t, a)
	_, db := determinize(t, b)
	assert.Equal(t, labels(da), labels(db))
	assert.Equal(t, slices.Collect(da.Transitions()), slices.Collect(db.Transitions()))
}
