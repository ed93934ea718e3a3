package fsa

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

// accepts simulates a, nondeterministic or not, on input. It is a test oracle only.
func accepts(a *Automaton, input string) bool {
	current := epsilonClosure(a, []State{a.Initial()})
	for _, r := range input {
		next := make([]State, 0)
		for _, s := range current {
			next = append(next, a.Targets(s, r)...)
		}
		current = epsilonClosure(a, next)
	}
	for _, s := range current {
		if a.IsFinal(s) {
			return true
		}
	}
	return false
}

func epsilonClosure(a *Automaton, states []State) []State {
	seen := make(map[State]bool)
	stack := append([]State(nil), states...)
	result := make([]State, 0)
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[s] {
			continue
		}
		seen[s] = true
		result = append(result, s)
		stack = append(stack, a.Targets(s, Epsilon)...)
	}
	return result
}

// allStrings returns every string over alphabet of length at most maxLen, shortest first.
func allStrings(alphabet string, maxLen int) []string {
	result := []string{""}
	layer := []string{""}
	for n := 0; n < maxLen; n++ {
		next := make([]string, 0, len(layer)*len(alphabet))
		for _, prefix := range layer {
			for _, r := range alphabet {
				next = append(next, prefix+string(r))
			}
		}
		result = append(result, next...)
		layer = next
	}
	return result
}

// language returns the accepted strings over alphabet up to maxLen, sorted.
func language(a *Automaton, alphabet string, maxLen int) []string {
	result := make([]string, 0)
	for _, s := range allStrings(alphabet, maxLen) {
		if accepts(a, s) {
			result = append(result, s)
		}
	}
	slices.Sort(result)
	return result
}

func mustParse(t *testing.T, expression string, options ...Option) *Automaton {
	t.Helper()
	a, err := Parse(expression, options...)
	require.NoError(t, err, "Parse(%q)", expression)
	return a
}

func mustParseNFA(t *testing.T, expression string) *Automaton {
	t.Helper()
	a, err := ParseNFA(expression)
	require.NoError(t, err, "ParseNFA(%q)", expression)
	return a
}

func mustSymbol(t *testing.T, r rune) *Automaton {
	t.Helper()
	a, err := MakeSymbol(r)
	require.NoError(t, err)
	return a
}
