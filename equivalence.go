package fsa

import "slices"

// Equivalent Returns true if a and b accept the same language. Both are determinized over the union of their
// alphabets and minimized; minimal DFAs in canonical numbering are equal iff their languages are.
func Equivalent(a, b *Automaton) bool {
	alphabet := a.Alphabet().Union(b.Alphabet())
	// Determinize never returns an NFA, so Minimize cannot fail here.
	ma, _ := Minimize(Determinize(a, alphabet))
	mb, _ := Minimize(Determinize(b, alphabet))
	return sameGraph(ma, mb)
}

func sameGraph(a, b *Automaton) bool {
	return a.initial == b.initial &&
		a.NumStates() == b.NumStates() &&
		slices.Equal(a.FinalStates(), b.FinalStates()) &&
		slices.Equal(a.Transitions(), b.Transitions())
}
