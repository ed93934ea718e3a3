package fsa

// Every structural operator below is a pure function: the operands are read, never mutated, and the result
// shares nothing with them. Given operands in Thompson shape (the initial state has no incoming edge and the
// single final state has no outgoing edge), operators producing an NFA keep that shape. Any single-final
// operand is accepted, for example a minimal DFA from Parse.

// Union
// Returns an automaton accepting L(a) ∪ L(b): a fresh initial state with Epsilon edges to both initial states
// and a fresh final state reached by Epsilon edges from both final states. Both operands must have exactly
// one final state.
func Union(a, b *Automaton) (*Automaton, error) {
	aFinal, ok := a.singleFinal()
	if !ok {
		return nil, preconditionError("union", ErrFinalStateCount)
	}
	bFinal, ok := b.singleFinal()
	if !ok {
		return nil, preconditionError("union", ErrFinalStateCount)
	}

	result := a.Clone()
	result.final.ClearAll()
	mapping := mergeInto(result, b, result.next, nil)

	initial := result.CreateState()
	result.addEdge(initial, Epsilon, a.initial)
	result.addEdge(initial, Epsilon, mapping[b.initial])

	final := result.CreateState()
	result.addEdge(aFinal, Epsilon, final)
	if landed, ok := mapping[bFinal]; ok {
		result.addEdge(landed, Epsilon, final)
	}

	result.initial = initial
	result.final.Set(uint(final))
	return result, nil
}

// Concatenate
// Returns an automaton accepting L(a)·L(b); the result's final state is wherever b's final state landed. When
// a's final state has no outgoing edge or b's initial state has no incoming edge, b's graph is merged starting
// at a's final state, so b's initial state coincides with it. Otherwise b is copied to fresh states
// reached by an Epsilon edge from a's final state. Both operands must have exactly one final state.
func Concatenate(a, b *Automaton) (*Automaton, error) {
	aFinal, ok := a.singleFinal()
	if !ok {
		return nil, preconditionError("concatenate", ErrFinalStateCount)
	}
	bFinal, ok := b.singleFinal()
	if !ok {
		return nil, preconditionError("concatenate", ErrFinalStateCount)
	}

	result := a.Clone()
	result.final.ClearAll()
	var mapping map[State]State
	if !a.hasOutgoing(aFinal) || !b.hasIncoming(b.initial) {
		mapping = mergeInto(result, b, aFinal, &aFinal)
	} else {
		mapping = mergeInto(result, b, result.next, nil)
		result.addEdge(aFinal, Epsilon, mapping[b.initial])
	}

	final, ok := mapping[bFinal]
	if !ok {
		// b's final state is unreachable, so is the result's.
		final = result.CreateState()
	}
	result.final.Set(uint(final))
	return result, nil
}

// KleeneStar
// Returns an automaton accepting L(a)*. a's final state loops back to a's initial state; a fresh initial state
// leads to the old initial state and directly to a fresh final state, which the old final state also reaches.
// a must have exactly one final state.
func KleeneStar(a *Automaton) (*Automaton, error) {
	oldFinal, ok := a.singleFinal()
	if !ok {
		return nil, preconditionError("kleene star", ErrFinalStateCount)
	}

	result := a.Clone()
	result.final.ClearAll()
	result.addEdge(oldFinal, Epsilon, a.initial)

	initial := result.CreateState()
	final := result.CreateState()
	result.addEdge(initial, Epsilon, a.initial)
	result.addEdge(oldFinal, Epsilon, final)
	result.addEdge(initial, Epsilon, final)

	result.initial = initial
	result.final.Set(uint(final))
	return result, nil
}

// Reverse
// Returns an automaton accepting the reversal of every string of L(a). Every edge is inverted, the old initial
// state becomes the only final state and a fresh initial state has Epsilon edges to every old final state.
func Reverse(a *Automaton) *Automaton {
	result := newBareAutomaton()
	result.states = a.states.Clone()
	result.next = a.next

	for _, t := range a.Transitions() {
		result.addEdge(t.Dest, t.Symbol, t.Source)
	}

	initial := result.CreateState()
	for _, f := range a.FinalStates() {
		result.addEdge(initial, Epsilon, f)
	}

	result.initial = initial
	result.final.Set(uint(a.initial))
	return result
}

// Complement
// Returns an automaton accepting every string over alphabet (extended with a's own symbols) not in L(a): the
// final set becomes states \ final. a must be deterministic and total; use Determinize and Totalize first.
// The result is again a total DFA, so the operation is its own inverse.
func Complement(a *Automaton, alphabet Alphabet) (*Automaton, error) {
	if !a.IsDeterministic() {
		return nil, preconditionError("complement", ErrNotDeterministic)
	}
	if !a.IsTotal(alphabet.Union(a.Alphabet())) {
		return nil, preconditionError("complement", ErrNotTotal)
	}

	result := a.Clone()
	result.final = a.states.Difference(a.final)
	return result, nil
}

// Totalize
// Returns a copy of the DFA a in which every state has an edge for every symbol of alphabet (extended with a's
// own symbols). Missing edges lead to a fresh non-final sink state looping on every symbol; no sink is added
// if nothing is missing.
func Totalize(a *Automaton, alphabet Alphabet) (*Automaton, error) {
	if !a.IsDeterministic() {
		return nil, preconditionError("totalize", ErrNotDeterministic)
	}
	alphabet = alphabet.Union(a.Alphabet())

	result := a.Clone()
	sink, hasSink := State(0), false
	for _, s := range a.States() {
		for _, sym := range alphabet {
			if _, ok := result.Step(s, sym); ok {
				continue
			}
			if !hasSink {
				sink, hasSink = result.CreateState(), true
				for _, loop := range alphabet {
					result.addEdge(sink, loop, sink)
				}
			}
			result.addEdge(s, sym, sink)
		}
	}
	return result, nil
}

// normalize wraps a with a fresh initial state and a fresh single final state joined by Epsilon edges, giving
// any automaton the Thompson shape. With no final state the fresh final state is unreachable.
func normalize(a *Automaton) *Automaton {
	result := a.Clone()
	result.final.ClearAll()

	initial := result.CreateState()
	result.addEdge(initial, Epsilon, a.initial)

	final := result.CreateState()
	for _, f := range a.FinalStates() {
		result.addEdge(f, Epsilon, final)
	}

	result.initial = initial
	result.final.Set(uint(final))
	return result
}
