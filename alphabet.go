package fsa

import "slices"

// Alphabet A sorted set of input symbols. It never contains Epsilon.
type Alphabet []rune

// NewAlphabet Returns the sorted, de-duplicated alphabet of symbols. Epsilon is dropped.
func NewAlphabet(symbols ...rune) Alphabet {
	result := make([]rune, 0, len(symbols))
	for _, r := range symbols {
		if r != Epsilon {
			result = append(result, r)
		}
	}
	slices.Sort(result)
	return Alphabet(slices.Compact(result))
}

// Union Returns the symbols of both alphabets.
func (al Alphabet) Union(other Alphabet) Alphabet {
	merged := make([]rune, 0, len(al)+len(other))
	merged = append(merged, al...)
	merged = append(merged, other...)
	return NewAlphabet(merged...)
}

// Contains Returns true if r belongs to the alphabet.
func (al Alphabet) Contains(r rune) bool {
	_, found := slices.BinarySearch(al, r)
	return found
}

func (al Alphabet) String() string {
	return string(al)
}
