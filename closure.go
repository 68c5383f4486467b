package nfa2dfa

import "github.com/bits-and-blooms/bitset"

// Closure Returns the set of states reachable from seed by zero or more epsilon transitions.
// The seed itself is always a member.
func (t *TransitionTable) Closure(seed State) (*bitset.BitSet, error) {
	if err := t.checkState(seed); err != nil {
		return nil, err
	}
	seeds := bitset.New(uint(t.numStates))
	seeds.Set(uint(seed))
	return t.closure(seeds), nil
}

// ClosureOf Returns the union of the epsilon closures of every state in seeds.
func (t *TransitionTable) ClosureOf(seeds *bitset.BitSet) (*bitset.BitSet, error) {
	if err := t.checkSet(seeds); err != nil {
		return nil, err
	}
	return t.closure(seeds), nil
}

func (t *TransitionTable) closure(seeds *bitset.BitSet) *bitset.BitSet {
	seen := bitset.New(uint(t.numStates))
	workList := make([]State, 0, seeds.Count())
	for s, ok := seeds.NextSet(0); ok; s, ok = seeds.NextSet(s + 1) {
		seen.Set(s)
		workList = append(workList, State(s))
	}

	for len(workList) > 0 {
		s := workList[len(workList)-1]
		workList = workList[:len(workList)-1]

		eps := t.cell(s, Epsilon)
		for d, ok := eps.NextSet(0); ok; d, ok = eps.NextSet(d + 1) {
			if !seen.Test(d) {
				seen.Set(d)
				workList = append(workList, State(d))
			}
		}
	}
	return seen
}
