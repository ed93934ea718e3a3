package fsa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeInto(t *testing.T) {
	t.Run("skips identifiers already in use", func(t *testing.T) {
		target := NewAutomaton()
		s1 := target.CreateState()
		s2 := target.CreateState()
		require.NoError(t, target.SetFinal(s2, true))
		source, err := MakeString("abc")
		require.NoError(t, err)

		mapping := mergeInto(target, source, s1, nil)

		assert.Equal(t, map[State]State{0: 3, 1: 4, 2: 5, 3: 6}, mapping)
		assert.Equal(t, 7, target.NumStates())
		assert.Equal(t, 3, target.NumTransitions())
		assert.Equal(t, []State{s2}, target.FinalStates())
		assert.Equal(t, State(7), target.CreateState())
	})

	t.Run("never collides with initial or final states", func(t *testing.T) {
		target := NewAutomaton()
		for i := 0; i < 5; i++ {
			target.CreateState()
		}
		require.NoError(t, target.SetFinal(4, true))
		used := target.States()

		source := mustParseNFA(t, "(a|b)*c")
		mapping := mergeInto(target, source, 0, nil)

		seen := make(map[State]bool)
		for _, s := range used {
			seen[s] = true
		}
		for _, to := range mapping {
			assert.False(t, seen[to], "state %d reused", to)
			seen[to] = true
		}
		assert.Equal(t, source.NumTransitions(), target.NumTransitions())
	})

	t.Run("copies each reachable transition once", func(t *testing.T) {
		target := NewAutomaton()
		source := mustParseNFA(t, "ab*|c")

		mapping := mergeInto(target, source, target.next, nil)

		require.Len(t, mapping, source.NumStates())
		for _, tr := range source.Transitions() {
			assert.Contains(t, target.Targets(mapping[tr.Source], tr.Symbol), mapping[tr.Dest])
		}
		assert.Equal(t, source.NumTransitions(), target.NumTransitions())
	})

	t.Run("drops unreachable states", func(t *testing.T) {
		source := mustSymbol(t, 'a')
		orphan := source.CreateState()
		require.NoError(t, source.AddTransition(orphan, 'b', source.Initial()))

		target := NewAutomaton()
		mapping := mergeInto(target, source, 1, nil)

		assert.Len(t, mapping, 2)
		assert.NotContains(t, mapping, orphan)
		assert.Equal(t, 1, target.NumTransitions())
	})

	t.Run("anchors the initial state", func(t *testing.T) {
		target := mustSymbol(t, 'a')
		anchor := target.FinalStates()[0]
		source := mustSymbol(t, 'b')

		mapping := mergeInto(target, source, anchor, &anchor)

		assert.Equal(t, anchor, mapping[source.Initial()])
		assert.Equal(t, 3, target.NumStates())
		dest, ok := target.Step(anchor, 'b')
		require.True(t, ok)
		assert.Equal(t, mapping[source.FinalStates()[0]], dest)
	})
}
