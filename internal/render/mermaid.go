// Package render turns a compiled automaton into text for people and tools. It only reads the automaton's
// public accessors.
package render

import (
	"fmt"
	"strings"

	"github.com/geange/fsa"
)

// EpsilonLabel is printed on non-consuming edges.
const EpsilonLabel = "ε"

// Mermaid produces a Mermaid flowchart of a. Ordinary states are drawn as ((circles)), final states as
// (((double circles))) and the initial state gets an incoming edge from an invisible start node.
func Mermaid(a *fsa.Automaton) string {
	var sb strings.Builder
	sb.WriteString("flowchart LR\n")
	sb.WriteString(fmt.Sprintf("\tstart[ ] --> %d\n", a.Initial()))

	for _, s := range a.States() {
		opener, closer := "((", "))"
		if a.IsFinal(s) {
			opener, closer = "(((", ")))"
		}
		sb.WriteString(fmt.Sprintf("\t%d%s%d%s\n", s, opener, s, closer))

		for _, t := range a.TransitionsFrom(s) {
			sb.WriteString(fmt.Sprintf("\t%d-- %s -->%d\n", t.Source, Label(t.Symbol), t.Dest))
		}
	}
	sb.WriteString("\tstyle start fill:none,stroke:none\n")
	return sb.String()
}

// Label renders a transition symbol, escaping the characters Mermaid treats as syntax.
func Label(symbol rune) string {
	if symbol == fsa.Epsilon {
		return EpsilonLabel
	}
	switch symbol {
	case '"':
		return "#quot;"
	case '(', ')', '[', ']', '{', '}', '|', '<', '>', '-', '#', ';':
		return fmt.Sprintf("#%d;", symbol)
	}
	return string(symbol)
}
