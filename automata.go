package fsa

import "fmt"

// MakeEmpty
// Returns a new (deterministic) automaton with the empty language: one initial state and no final state.
func MakeEmpty() *Automaton {
	return NewAutomaton()
}

// MakeEmptyString
// Returns a new automaton that accepts only the empty string. It has two states joined by an Epsilon edge, so
// it keeps the single-final shape the structural operators expect.
func MakeEmptyString() *Automaton {
	a := NewAutomaton()
	final := a.CreateState()
	a.addEdge(a.initial, Epsilon, final)
	a.final.Set(uint(final))
	return a
}

// MakeSymbol
// Returns a new (deterministic) automaton that accepts the single one-symbol string.
func MakeSymbol(symbol rune) (*Automaton, error) {
	if symbol == Epsilon {
		return nil, preconditionError("symbol", ErrEpsilonSymbol)
	}
	if symbol < 0 {
		return nil, fmt.Errorf("invalid symbol %d", symbol)
	}
	a := NewAutomaton()
	final := a.CreateState()
	a.addEdge(a.initial, symbol, final)
	a.final.Set(uint(final))
	return a, nil
}

// MakeString
// Returns a new (deterministic) automaton that accepts exactly s. The empty string yields MakeEmptyString.
func MakeString(s string) (*Automaton, error) {
	if s == "" {
		return MakeEmptyString(), nil
	}
	a := NewAutomaton()
	last := a.initial
	for _, r := range s {
		next := a.CreateState()
		a.addEdge(last, r, next)
		last = next
	}
	a.final.Set(uint(last))
	return a, nil
}
