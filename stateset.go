package nfa2dfa

import (
	"slices"
	"strconv"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

var _ Hashable = StateSet{}

// StateSet A frozen, canonical subset of NFA states: members are sorted and deduplicated, so two
// StateSets are equal iff they hold the same states.
type StateSet struct {
	members  []State
	hashCode uint64
}

// NewStateSet Returns the canonical set of the given states, in any order and with repeats.
func NewStateSet(states ...State) StateSet {
	members := make([]State, len(states))
	copy(members, states)
	slices.Sort(members)
	return freeze(slices.Compact(members))
}

func newStateSet(b *bitset.BitSet) StateSet {
	return freeze(membersOf(b))
}

func freeze(members []State) StateSet {
	hashCode := uint64(len(members))
	for _, s := range members {
		hashCode += uint64(mix(int(s)))
	}
	return StateSet{members: members, hashCode: hashCode}
}

func (s StateSet) Hash() uint64 {
	return s.hashCode
}

func (s StateSet) Equals(other Hashable) bool {
	o, ok := other.(StateSet)
	if !ok {
		return false
	}
	return s.hashCode == o.hashCode && slices.Equal(s.members, o.members)
}

// Members Returns the states in ascending order.
func (s StateSet) Members() []State {
	return slices.Clone(s.members)
}

func (s StateSet) Size() int {
	return len(s.members)
}

func (s StateSet) IsEmpty() bool {
	return len(s.members) == 0
}

func (s StateSet) Contains(state State) bool {
	_, ok := slices.BinarySearch(s.members, state)
	return ok
}

// Key Returns a string that is equal for equal sets, usable as a map key.
func (s StateSet) Key() string {
	var b strings.Builder
	for i, m := range s.members {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(int(m)))
	}
	return b.String()
}

func (s StateSet) bits(numStates int) *bitset.BitSet {
	b := bitset.New(uint(numStates))
	for _, m := range s.members {
		b.Set(uint(m))
	}
	return b
}

// label renders the set as {A,B}, names sorted lexically.
func label(names []string, s StateSet) string {
	out := make([]string, len(s.members))
	for i, m := range s.members {
		out[i] = names[m]
	}
	slices.Sort(out)
	return "{" + strings.Join(out, ",") + "}"
}
