package fsa

import "fmt"

// Determinize Returns a DFA accepting the same language as a, built by subset construction over alphabet
// together with every symbol a uses. DFA states are numbered densely from 0, the initial state. Missing
// transitions reject. Worst case complexity: exponential in the number of states of a.
func Determinize(a *Automaton, alphabet Alphabet) *Automaton {
	// Without a state limit the construction cannot fail.
	d, _ := determinize(a, alphabet, 0)
	return d
}

// Determinize Replaces a's graph with an equivalent DFA. See the package-level Determinize.
func (a *Automaton) Determinize(alphabet Alphabet) {
	*a = *Determinize(a, alphabet)
}

func determinize(a *Automaton, alphabet Alphabet, maxStates int) (*Automaton, error) {
	sc := &subsetConstruction{
		nfa:       a,
		alphabet:  alphabet.Union(a.Alphabet()),
		maxStates: maxStates,
		closures:  make(map[State][]int),
		moves:     NewHashMap[*FrozenIntSet](WithCapacity(16)),
		dfaStates: NewHashMap[State](WithCapacity(16)),
	}
	return sc.run()
}

type subsetConstruction struct {
	nfa       *Automaton
	alphabet  Alphabet
	maxStates int

	// Epsilon closure of a single NFA state.
	closures map[State][]int

	// Move set -> epsilon closure of the move set.
	moves *HashMap[*FrozenIntSet]

	// Closed subset -> DFA state, and back.
	dfaStates *HashMap[State]
	subsets   []*FrozenIntSet

	dfa *Automaton
}

func (sc *subsetConstruction) run() (*Automaton, error) {
	sc.dfa = newBareAutomaton()

	start := sc.closeSet(freezeInts([]int{int(sc.nfa.initial)}, -1))
	initial, err := sc.register(start)
	if err != nil {
		return nil, err
	}
	sc.dfa.initial = initial

	workList := []State{initial}
	for len(workList) > 0 {
		d := workList[0]
		workList = workList[1:]
		subset := sc.subsets[d]

		for _, sym := range sc.alphabet {
			move := NewStateSet()
			for _, s := range subset.GetArray() {
				for _, t := range sc.nfa.Targets(State(s), sym) {
					move.Incr(int(t))
				}
			}
			if move.Size() == 0 {
				continue
			}

			closed := sc.closeSet(move.Freeze(-1))
			target, ok := sc.dfaStates.Get(closed)
			if !ok {
				target, err = sc.register(closed)
				if err != nil {
					return nil, err
				}
				workList = append(workList, target)
			}
			sc.dfa.addEdge(d, sym, target)
		}
	}

	return sc.dfa, nil
}

// register allocates the next dense DFA state for subset. The state is final iff the subset contains an NFA
// final state.
func (sc *subsetConstruction) register(subset *FrozenIntSet) (State, error) {
	if sc.maxStates > 0 && len(sc.subsets) >= sc.maxStates {
		return 0, fmt.Errorf("%w: more than %d states", ErrTooComplex, sc.maxStates)
	}
	d := sc.dfa.CreateState()
	frozen := NewFrozenIntSet(subset.GetArray(), subset.Hash(), int(d))
	sc.dfaStates.Set(frozen, d)
	sc.subsets = append(sc.subsets, frozen)

	for _, s := range frozen.GetArray() {
		if sc.nfa.IsFinal(State(s)) {
			sc.dfa.final.Set(uint(d))
			break
		}
	}
	return d, nil
}

// closeSet returns the epsilon closure of move, memoized by the content of move.
func (sc *subsetConstruction) closeSet(move *FrozenIntSet) *FrozenIntSet {
	if closed, ok := sc.moves.Get(move); ok {
		return closed
	}
	values := make([]int, 0, move.Size())
	for _, s := range move.GetArray() {
		values = append(values, sc.closure(State(s))...)
	}
	closed := freezeInts(values, -1)
	sc.moves.Set(move, closed)
	return closed
}

// closure returns the states reachable from s through Epsilon edges only, s included.
func (sc *subsetConstruction) closure(s State) []int {
	if c, ok := sc.closures[s]; ok {
		return c
	}

	seen := map[State]struct{}{s: {}}
	result := []int{int(s)}
	stack := []State{s}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, t := range sc.nfa.Targets(top, Epsilon) {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			result = append(result, int(t))
			stack = append(stack, t)
		}
	}

	sc.closures[s] = result
	return result
}
