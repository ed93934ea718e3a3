package fsa

import (
	"fmt"
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// State Opaque identifier of a state, unique within one automaton. States carry no meaning beyond identity;
// all edges live in the automaton's transition table keyed by State.
type State uint32

// Epsilon The label of a non-consuming transition. It is never a legal input symbol.
const Epsilon rune = -1

// Transition A single labeled edge, as exposed to readers of an automaton.
type Transition struct {
	Source State
	Symbol rune
	Dest   State
}

// Automaton Represents an NFA or a DFA: a set of states, one initial state, a set of final states and a
// transition table mapping (state, symbol) to a set of target states. A DFA is an automaton with no Epsilon
// edges and at most one target per (state, symbol); missing transitions reject.
//
// States are created with CreateState and never reused. The zero value is not usable; call NewAutomaton.
type Automaton struct {
	states *bitset.BitSet
	final  *bitset.BitSet

	initial State

	// source -> symbol -> targets
	transitions map[State]map[rune]*bitset.BitSet

	// Lowest id that may be free. Ids below it are either used or were skipped by a merge.
	next State
}

// NewAutomaton Returns an automaton holding only its initial state. It accepts no strings.
func NewAutomaton() *Automaton {
	a := newBareAutomaton()
	a.initial = a.CreateState()
	return a
}

func newBareAutomaton() *Automaton {
	return &Automaton{
		states:      bitset.New(8),
		final:       bitset.New(8),
		transitions: make(map[State]map[rune]*bitset.BitSet),
	}
}

// CreateState Create a new state with an identifier not used anywhere in this automaton.
func (a *Automaton) CreateState() State {
	s := a.nextFree(a.next)
	a.states.Set(uint(s))
	a.next = s + 1
	return s
}

// nextFree returns the first id >= from that is not in use. Every id referenced by a transition, the
// initial state or the final set is a member of states, so testing states is enough.
func (a *Automaton) nextFree(from State) State {
	for a.states.Test(uint(from)) {
		from++
	}
	return from
}

// HasState Returns true if s is a state of this automaton.
func (a *Automaton) HasState(s State) bool {
	return a.states.Test(uint(s))
}

// SetInitial Makes s the initial state.
func (a *Automaton) SetInitial(s State) error {
	if !a.HasState(s) {
		return fmt.Errorf("initial state %d is not a state of the automaton", s)
	}
	a.initial = s
	return nil
}

// SetFinal Set or clear s as a final state.
func (a *Automaton) SetFinal(s State, final bool) error {
	if !a.HasState(s) {
		return fmt.Errorf("final state %d is not a state of the automaton", s)
	}
	a.final.SetTo(uint(s), final)
	return nil
}

// AddTransition Add an edge from source to dest labeled symbol. Use Epsilon for a non-consuming edge.
func (a *Automaton) AddTransition(source State, symbol rune, dest State) error {
	if !a.HasState(source) {
		return fmt.Errorf("source state %d is not a state of the automaton", source)
	}
	if !a.HasState(dest) {
		return fmt.Errorf("dest state %d is not a state of the automaton", dest)
	}
	if symbol < Epsilon {
		return fmt.Errorf("invalid symbol %d", symbol)
	}
	a.addEdge(source, symbol, dest)
	return nil
}

// AddEpsilon Add a non-consuming edge from source to dest.
func (a *Automaton) AddEpsilon(source, dest State) error {
	return a.AddTransition(source, Epsilon, dest)
}

// addEdge skips the membership checks; callers own both endpoints.
func (a *Automaton) addEdge(source State, symbol rune, dest State) {
	bySymbol, ok := a.transitions[source]
	if !ok {
		bySymbol = make(map[rune]*bitset.BitSet)
		a.transitions[source] = bySymbol
	}
	targets, ok := bySymbol[symbol]
	if !ok {
		targets = bitset.New(uint(dest) + 1)
		bySymbol[symbol] = targets
	}
	targets.Set(uint(dest))
}

// Initial Returns the initial state.
func (a *Automaton) Initial() State {
	return a.initial
}

// IsFinal Returns true if s is a final state.
func (a *Automaton) IsFinal(s State) bool {
	return a.final.Test(uint(s))
}

// States Returns all states in ascending order.
func (a *Automaton) States() []State {
	return members(a.states)
}

// FinalStates Returns the final states in ascending order.
func (a *Automaton) FinalStates() []State {
	return members(a.final)
}

// NumStates How many states this automaton has.
func (a *Automaton) NumStates() int {
	return int(a.states.Count())
}

// NumFinalStates How many final states this automaton has.
func (a *Automaton) NumFinalStates() int {
	return int(a.final.Count())
}

// NumTransitions How many (source, symbol, dest) edges this automaton has.
func (a *Automaton) NumTransitions() int {
	n := 0
	for _, bySymbol := range a.transitions {
		for _, targets := range bySymbol {
			n += int(targets.Count())
		}
	}
	return n
}

// Targets Returns the states reachable from s by exactly one edge labeled symbol, in ascending order.
func (a *Automaton) Targets(s State, symbol rune) []State {
	targets, ok := a.transitions[s][symbol]
	if !ok {
		return nil
	}
	return members(targets)
}

// Step Returns the target of the edge leaving s on symbol, assuming determinism. The boolean is false if
// there is no such edge.
func (a *Automaton) Step(s State, symbol rune) (State, bool) {
	targets, ok := a.transitions[s][symbol]
	if !ok {
		return 0, false
	}
	dest, ok := targets.NextSet(0)
	return State(dest), ok
}

// TransitionsFrom Returns the edges leaving s, sorted by symbol then dest.
func (a *Automaton) TransitionsFrom(s State) []Transition {
	bySymbol := a.transitions[s]
	symbols := make([]rune, 0, len(bySymbol))
	for sym := range bySymbol {
		symbols = append(symbols, sym)
	}
	slices.Sort(symbols)

	result := make([]Transition, 0, len(symbols))
	for _, sym := range symbols {
		for _, dest := range members(bySymbol[sym]) {
			result = append(result, Transition{Source: s, Symbol: sym, Dest: dest})
		}
	}
	return result
}

// hasOutgoing reports whether any edge leaves s.
func (a *Automaton) hasOutgoing(s State) bool {
	for _, targets := range a.transitions[s] {
		if targets.Any() {
			return true
		}
	}
	return false
}

// hasIncoming reports whether any edge enters s.
func (a *Automaton) hasIncoming(s State) bool {
	for _, bySymbol := range a.transitions {
		for _, targets := range bySymbol {
			if targets.Test(uint(s)) {
				return true
			}
		}
	}
	return false
}

// Transitions Sugar to get all edges, sorted by source, symbol and dest.
func (a *Automaton) Transitions() []Transition {
	result := make([]Transition, 0, a.NumTransitions())
	for _, s := range a.States() {
		result = append(result, a.TransitionsFrom(s)...)
	}
	return result
}

// Alphabet Returns the symbols labeling at least one edge, excluding Epsilon.
func (a *Automaton) Alphabet() Alphabet {
	symbols := make([]rune, 0)
	for _, bySymbol := range a.transitions {
		for sym := range bySymbol {
			symbols = append(symbols, sym)
		}
	}
	return NewAlphabet(symbols...)
}

// IsDeterministic Returns true if there are no Epsilon edges and no state has two edges with the same label.
func (a *Automaton) IsDeterministic() bool {
	for _, bySymbol := range a.transitions {
		for sym, targets := range bySymbol {
			if sym == Epsilon || targets.Count() > 1 {
				return false
			}
		}
	}
	return true
}

// IsTotal Returns true if the automaton is deterministic and every state has an edge for every symbol of
// alphabet.
func (a *Automaton) IsTotal(alphabet Alphabet) bool {
	if !a.IsDeterministic() {
		return false
	}
	for _, s := range a.States() {
		for _, sym := range alphabet {
			if _, ok := a.Step(s, sym); !ok {
				return false
			}
		}
	}
	return true
}

// Clone Returns a deep copy sharing nothing with a.
func (a *Automaton) Clone() *Automaton {
	c := &Automaton{
		states:      a.states.Clone(),
		final:       a.final.Clone(),
		initial:     a.initial,
		transitions: make(map[State]map[rune]*bitset.BitSet, len(a.transitions)),
		next:        a.next,
	}
	for s, bySymbol := range a.transitions {
		cloned := make(map[rune]*bitset.BitSet, len(bySymbol))
		for sym, targets := range bySymbol {
			cloned[sym] = targets.Clone()
		}
		c.transitions[s] = cloned
	}
	return c
}

// singleFinal returns the only final state, or false if there are zero or several.
func (a *Automaton) singleFinal() (State, bool) {
	if a.final.Count() != 1 {
		return 0, false
	}
	s, _ := a.final.NextSet(0)
	return State(s), true
}

func (a *Automaton) String() string {
	return fmt.Sprintf("automaton{states: %d, transitions: %d, initial: %d, final: %v}",
		a.NumStates(), a.NumTransitions(), a.initial, a.FinalStates())
}

func members(b *bitset.BitSet) []State {
	result := make([]State, 0, b.Count())
	for i, ok := b.NextSet(0); ok; i, ok = b.NextSet(i + 1) {
		result = append(result, State(i))
	}
	return result
}
