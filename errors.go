package fsa

import (
	"errors"
	"fmt"
)

var (
	// ErrSyntax is wrapped by every *SyntaxError.
	ErrSyntax = errors.New("syntax error")

	// ErrFinalStateCount An operand of Union, Concatenate or KleeneStar does not have exactly one final state.
	ErrFinalStateCount = errors.New("operand must have exactly one final state")

	// ErrNotDeterministic An operation requiring a DFA received an NFA.
	ErrNotDeterministic = errors.New("automaton must be deterministic")

	// ErrNotTotal Complement received a DFA with missing transitions.
	ErrNotTotal = errors.New("automaton must be total over the alphabet")

	// ErrEpsilonSymbol Epsilon was used where an input symbol is required.
	ErrEpsilonSymbol = errors.New("epsilon is not an input symbol")

	// ErrTooComplex Determinization produced more states than allowed by WithMaxStates.
	ErrTooComplex = errors.New("too complex to determinize")
)

// SyntaxError Reports a malformed expression. Pos is the rune offset of the offending token.
type SyntaxError struct {
	Pos int
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s at position %d", e.Msg, e.Pos)
}

func (e *SyntaxError) Unwrap() error {
	return ErrSyntax
}

func syntaxErrorf(pos int, format string, args ...any) error {
	return &SyntaxError{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

// PreconditionError Reports an operand that violates an operator's precondition.
type PreconditionError struct {
	Op  string
	Err error
}

func (e *PreconditionError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *PreconditionError) Unwrap() error {
	return e.Err
}

func preconditionError(op string, err error) error {
	return &PreconditionError{Op: op, Err: err}
}
