package render

import (
	"gopkg.in/yaml.v3"

	"github.com/geange/fsa"
)

// Document is the serialized shape of an automaton.
type Document struct {
	Alphabet    string   `yaml:"alphabet"`
	States      []uint32 `yaml:"states"`
	Initial     uint32   `yaml:"initial"`
	Final       []uint32 `yaml:"final"`
	Transitions []Edge   `yaml:"transitions"`
}

// Edge is one transition. Symbol is empty for an epsilon edge.
type Edge struct {
	From   uint32 `yaml:"from"`
	Symbol string `yaml:"symbol"`
	To     uint32 `yaml:"to"`
}

// NewDocument captures the public state of a.
func NewDocument(a *fsa.Automaton) Document {
	doc := Document{
		Alphabet:    a.Alphabet().String(),
		States:      ids(a.States()),
		Initial:     uint32(a.Initial()),
		Final:       ids(a.FinalStates()),
		Transitions: make([]Edge, 0, a.NumTransitions()),
	}
	for _, t := range a.Transitions() {
		symbol := ""
		if t.Symbol != fsa.Epsilon {
			symbol = string(t.Symbol)
		}
		doc.Transitions = append(doc.Transitions, Edge{From: uint32(t.Source), Symbol: symbol, To: uint32(t.Dest)})
	}
	return doc
}

// YAML marshals the document of a.
func YAML(a *fsa.Automaton) ([]byte, error) {
	return yaml.Marshal(NewDocument(a))
}

func ids(states []fsa.State) []uint32 {
	result := make([]uint32, len(states))
	for i, s := range states {
		result[i] = uint32(s)
	}
	return result
}
