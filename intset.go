package fsa

import "slices"

// IntSet A set of NFA state ids with a content hash, so that sets built in different ways can key the same
// map entry.
type IntSet interface {
	Hashable

	GetArray() []int

	Size() int
}

var _ IntSet = &FrozenIntSet{}

// FrozenIntSet An immutable sorted set. state is the DFA state the set was assigned to, or -1.
type FrozenIntSet struct {
	values   []int
	state    int
	hashCode uint64
}

func NewFrozenIntSet(values []int, hashCode uint64, state int) *FrozenIntSet {
	return &FrozenIntSet{values: values, state: state, hashCode: hashCode}
}

// freezeInts sorts and de-duplicates values in place and returns the frozen set.
func freezeInts(values []int, state int) *FrozenIntSet {
	slices.Sort(values)
	values = slices.Compact(values)
	return NewFrozenIntSet(values, hashInts(values), state)
}

func (f *FrozenIntSet) Hash() uint64 {
	return f.hashCode
}

// Equals Compares contents. Two sets with the same hash but different members are different keys.
func (f *FrozenIntSet) Equals(other Hashable) bool {
	is, ok := other.(IntSet)
	if !ok || f == nil {
		return false
	}
	if f.Hash() != is.Hash() || f.Size() != is.Size() {
		return false
	}
	return slices.Equal(f.values, is.GetArray())
}

func (f *FrozenIntSet) GetArray() []int {
	return f.values
}

func (f *FrozenIntSet) Size() int {
	return len(f.values)
}

var _ IntSet = &StateSet{}

// StateSet A mutable multiset of states. A state stays a member while its count is positive.
type StateSet struct {
	inner       map[int]int
	hashUpdated bool
	hashCode    uint64
}

func NewStateSet() *StateSet {
	return &StateSet{
		inner: make(map[int]int),
	}
}

func (s *StateSet) Hash() uint64 {
	if s.hashUpdated {
		return s.hashCode
	}
	s.hashCode = uint64(len(s.inner))
	for key := range s.inner {
		s.hashCode += uint64(mix(key))
	}
	s.hashUpdated = true
	return s.hashCode
}

func (s *StateSet) Equals(other Hashable) bool {
	is, ok := other.(IntSet)
	if !ok {
		return false
	}
	if s.Hash() != is.Hash() || s.Size() != is.Size() {
		return false
	}
	for _, v := range is.GetArray() {
		if _, ok := s.inner[v]; !ok {
			return false
		}
	}
	return true
}

func (s *StateSet) GetArray() []int {
	keys := make([]int, 0, len(s.inner))

	for k := range s.inner {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func (s *StateSet) Size() int {
	return len(s.inner)
}

func (s *StateSet) keyChanged() {
	s.hashUpdated = false
	s.hashCode = 0
}

func (s *StateSet) Incr(state int) {
	s.inner[state]++
	if s.inner[state] == 1 {
		s.keyChanged()
	}
}

func (s *StateSet) Decr(state int) {
	count, ok := s.inner[state]
	if !ok {
		return
	}
	if count == 1 {
		delete(s.inner, state)
		s.keyChanged()
	} else {
		s.inner[state]--
	}
}

// Freeze Returns an immutable copy assigned to the given DFA state.
func (s *StateSet) Freeze(state int) *FrozenIntSet {
	return NewFrozenIntSet(s.GetArray(), s.Hash(), state)
}

// hashInts hashes sorted, distinct values the same way StateSet.Hash does.
func hashInts(values []int) uint64 {
	h := uint64(len(values))
	for _, v := range values {
		h += uint64(mix(v))
	}
	return h
}
