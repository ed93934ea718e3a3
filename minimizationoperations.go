package fsa

import "github.com/bits-and-blooms/bitset"

// Minimize
// Returns the DFA with the fewest states accepting the same language as a, using partition refinement over
// inverse transitions. a must be deterministic; it may be partial. The result is trimmed (no state that cannot
// reach a final state, except a lone initial state for the empty language) and numbered densely in
// breadth-first order over sorted symbols, so minimizing a minimal DFA returns an identical automaton.
func Minimize(a *Automaton) (*Automaton, error) {
	if !a.IsDeterministic() {
		return nil, preconditionError("minimize", ErrNotDeterministic)
	}
	return newMinimizer(a).run(), nil
}

// Minimize Replaces a's graph with the minimal equivalent DFA. See the package-level Minimize.
func (a *Automaton) Minimize() error {
	m, err := Minimize(a)
	if err != nil {
		return err
	}
	*a = *m
	return nil
}

type minimizer struct {
	alphabet Alphabet

	// Reachable states in breadth-first order; index 0 is the initial state and index sink is the implicit
	// dead state completing the transition function.
	states []State
	sink   int
	final  *bitset.BitSet

	// delta[i][k] is the index reached from i on alphabet[k].
	delta [][]int
	// inverse[k][j] holds the indexes reaching j on alphabet[k].
	inverse [][]*bitset.BitSet

	blocks  []*bitset.BitSet
	blockOf []int
}

func newMinimizer(a *Automaton) *minimizer {
	m := &minimizer{alphabet: a.Alphabet()}

	index := map[State]int{a.initial: 0}
	m.states = []State{a.initial}
	for i := 0; i < len(m.states); i++ {
		for _, t := range a.TransitionsFrom(m.states[i]) {
			if _, ok := index[t.Dest]; !ok {
				index[t.Dest] = len(m.states)
				m.states = append(m.states, t.Dest)
			}
		}
	}
	m.sink = len(m.states)
	n := m.sink + 1

	m.final = bitset.New(uint(n))
	m.delta = make([][]int, n)
	m.inverse = make([][]*bitset.BitSet, len(m.alphabet))
	for k := range m.alphabet {
		m.inverse[k] = make([]*bitset.BitSet, n)
	}

	for i := 0; i < n; i++ {
		if i < m.sink && a.IsFinal(m.states[i]) {
			m.final.Set(uint(i))
		}
		m.delta[i] = make([]int, len(m.alphabet))
		for k, sym := range m.alphabet {
			j := m.sink
			if i < m.sink {
				if dest, ok := a.Step(m.states[i], sym); ok {
					j = index[dest]
				}
			}
			m.delta[i][k] = j
			if m.inverse[k][j] == nil {
				m.inverse[k][j] = bitset.New(uint(n))
			}
			m.inverse[k][j].Set(uint(i))
		}
	}
	return m
}

func (m *minimizer) run() *Automaton {
	m.refine()
	return m.rebuild()
}

// refine computes the coarsest partition stable under every symbol, starting from {final, non-final}.
func (m *minimizer) refine() {
	n := uint(m.sink + 1)
	m.blockOf = make([]int, n)

	nonFinal := bitset.New(n)
	for i := uint(0); i < n; i++ {
		if !m.final.Test(i) {
			nonFinal.Set(i)
		}
	}

	inWorkList := make([]bool, 0, 2)
	workList := make([]int, 0, 2)
	for _, block := range []*bitset.BitSet{m.final, nonFinal} {
		if block.None() {
			continue
		}
		id := len(m.blocks)
		m.blocks = append(m.blocks, block.Clone())
		for _, i := range members(block) {
			m.blockOf[i] = id
		}
		inWorkList = append(inWorkList, true)
		workList = append(workList, id)
	}

	for len(workList) > 0 {
		splitterID := workList[len(workList)-1]
		workList = workList[:len(workList)-1]
		inWorkList[splitterID] = false
		splitter := members(m.blocks[splitterID])

		for k := range m.alphabet {
			// States with an edge on alphabet[k] into the splitter.
			pre := bitset.New(n)
			for _, j := range splitter {
				if from := m.inverse[k][j]; from != nil {
					pre.InPlaceUnion(from)
				}
			}
			if pre.None() {
				continue
			}

			for _, y := range m.touchedBlocks(pre) {
				block := m.blocks[y]
				inter := block.Intersection(pre)
				if inter.Count() == block.Count() {
					continue
				}
				rest := block.Difference(pre)

				z := len(m.blocks)
				m.blocks[y] = inter
				m.blocks = append(m.blocks, rest)
				inWorkList = append(inWorkList, false)
				for _, i := range members(rest) {
					m.blockOf[i] = z
				}

				switch {
				case inWorkList[y]:
					workList = append(workList, z)
					inWorkList[z] = true
				case inter.Count() <= rest.Count():
					workList = append(workList, y)
					inWorkList[y] = true
				default:
					workList = append(workList, z)
					inWorkList[z] = true
				}
			}
		}
	}
}

// touchedBlocks returns the distinct blocks owning a member of pre, in order of first appearance.
func (m *minimizer) touchedBlocks(pre *bitset.BitSet) []int {
	seen := make(map[int]struct{})
	result := make([]int, 0)
	for _, i := range members(pre) {
		b := m.blockOf[i]
		if _, ok := seen[b]; !ok {
			seen[b] = struct{}{}
			result = append(result, b)
		}
	}
	return result
}

// rebuild merges every block into its lowest-index representative, drops the block of the sink (the states
// that cannot reach a final state) and numbers the survivors in breadth-first order from the initial block.
func (m *minimizer) rebuild() *Automaton {
	result := newBareAutomaton()
	dead := m.blockOf[m.sink]

	ids := map[int]State{m.blockOf[0]: result.CreateState()}
	result.initial = ids[m.blockOf[0]]

	workList := []int{m.blockOf[0]}
	for len(workList) > 0 {
		b := workList[0]
		workList = workList[1:]

		repIndex, _ := m.blocks[b].NextSet(0)
		rep := int(repIndex)
		from := ids[b]
		if m.final.Test(repIndex) {
			result.final.Set(uint(from))
		}

		for k, sym := range m.alphabet {
			target := m.blockOf[m.delta[rep][k]]
			if target == dead {
				continue
			}
			to, ok := ids[target]
			if !ok {
				to = result.CreateState()
				ids[target] = to
				workList = append(workList, target)
			}
			result.addEdge(from, sym, to)
		}
	}
	return result
}
