package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/geange/fsa"
)

func TestMermaid(t *testing.T) {
	a, err := fsa.Parse("a")
	require.NoError(t, err)

	want := "flowchart LR\n" +
		"\tstart[ ] --> 0\n" +
		"\t0((0))\n" +
		"\t0-- a -->1\n" +
		"\t1(((1)))\n" +
		"\tstyle start fill:none,stroke:none\n"
	assert.Equal(t, want, Mermaid(a))
}

func TestMermaid_Epsilon(t *testing.T) {
	a, err := fsa.ParseNFA("a|b")
	require.NoError(t, err)

	out := Mermaid(a)
	assert.Contains(t, out, "-- ε -->")
	assert.Contains(t, out, "-- a -->")
	assert.Contains(t, out, "-- b -->")
}

func TestLabel(t *testing.T) {
	tests := []struct {
		symbol rune
		want   string
	}{
		{'a', "a"},
		{'7', "7"},
		{fsa.Epsilon, EpsilonLabel},
		{'"', "#quot;"},
		{'[', "#91;"},
		{'-', "#45;"},
		{';', "#59;"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Label(tt.symbol), "symbol %q", tt.symbol)
	}
}

func TestYAML(t *testing.T) {
	a, err := fsa.Parse("a")
	require.NoError(t, err)

	data, err := YAML(a)
	require.NoError(t, err)

	want := `alphabet: a
states:
    - 0
    - 1
initial: 0
final:
    - 1
transitions:
    - from: 0
      symbol: a
      to: 1
`
	assert.Equal(t, want, string(data))
}

func TestNewDocument_Epsilon(t *testing.T) {
	a, err := fsa.ParseNFA("()")
	require.NoError(t, err)

	doc := NewDocument(a)
	assert.Equal(t, "", doc.Alphabet)
	assert.Equal(t, []uint32{0, 1}, doc.States)
	assert.Equal(t, []Edge{{From: 0, Symbol: "", To: 1}}, doc.Transitions)

	data, err := YAML(a)
	require.NoError(t, err)

	var decoded Document
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, doc, decoded)
}
