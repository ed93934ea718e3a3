package fsa

// Intersect
// Returns the minimal DFA accepting L(a) ∩ L(b), which equals ¬(¬a ∪ ¬b). Both operands are determinized and
// totalized over the union of their alphabets and combined by product construction.
func Intersect(a, b *Automaton) (*Automaton, error) {
	return product("intersect", a, b, func(inA, inB bool) bool {
		return inA && inB
	})
}

// Difference
// Returns the minimal DFA accepting L(a) \ L(b), which equals a ∩ ¬b.
func Difference(a, b *Automaton) (*Automaton, error) {
	return product("difference", a, b, func(inA, inB bool) bool {
		return inA && !inB
	})
}

type statePair struct {
	p, q State
}

func product(op string, a, b *Automaton, accept func(inA, inB bool) bool) (*Automaton, error) {
	alphabet := a.Alphabet().Union(b.Alphabet())

	da, err := Totalize(Determinize(a, alphabet), alphabet)
	if err != nil {
		return nil, preconditionError(op, err)
	}
	db, err := Totalize(Determinize(b, alphabet), alphabet)
	if err != nil {
		return nil, preconditionError(op, err)
	}

	result := newBareAutomaton()
	start := statePair{da.initial, db.initial}
	ids := map[statePair]State{start: result.CreateState()}
	result.initial = ids[start]

	workList := []statePair{start}
	for len(workList) > 0 {
		pair := workList[0]
		workList = workList[1:]

		from := ids[pair]
		if accept(da.IsFinal(pair.p), db.IsFinal(pair.q)) {
			result.final.Set(uint(from))
		}

		for _, sym := range alphabet {
			// Both operands are total.
			p, _ := da.Step(pair.p, sym)
			q, _ := db.Step(pair.q, sym)
			next := statePair{p, q}
			to, ok := ids[next]
			if !ok {
				to = result.CreateState()
				ids[next] = to
				workList = append(workList, next)
			}
			result.addEdge(from, sym, to)
		}
	}

	return Minimize(result)
}
