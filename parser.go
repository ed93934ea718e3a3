package fsa

import (
	"log/slog"
	"strings"
	"unicode"

	"github.com/geange/fsa/internal/logging"
)

// Operators of the expression syntax. Every other printable ASCII character is a symbol; whitespace is
// ignored.
const (
	opUnion      = '|'
	opConcat     = '&'
	opStar       = '*'
	opReverse    = '^'
	opComplement = '~'
	opOpen       = '('
	opClose      = ')'
)

const reserved = "()|&*^~"

type parseOption struct {
	alphabet  Alphabet
	logger    *slog.Logger
	maxStates int
}

type Option func(*parseOption)

// WithAlphabet Extends the alphabet complements and the final DFA are built over. The symbols appearing in the
// expression are always part of it.
func WithAlphabet(alphabet Alphabet) Option {
	return func(o *parseOption) {
		o.alphabet = o.alphabet.Union(alphabet)
	}
}

// WithLogger Sets the logger receiving debug records about each compilation stage.
func WithLogger(logger *slog.Logger) Option {
	return func(o *parseOption) {
		o.logger = logger
	}
}

// WithMaxStates Caps the number of states any determinization may create. Zero means unlimited.
func WithMaxStates(n int) Option {
	return func(o *parseOption) {
		o.maxStates = n
	}
}

// Parse
// Compiles expression into a minimal DFA.
//
// Syntax: a symbol is any printable ASCII character other than ( ) | & * ^ ~. Binary operators are | (union)
// and & (concatenation, also implied between adjacent operands). Postfix * is the Kleene star, postfix ^ is
// reversal and ~ is complement either before or after its operand. Parentheses group; () is the empty
// string. Precedence, highest first: * ^ ~, then &, then |. Binary operators are left associative and postfix
// operators bind tighter than a pending prefix ~, so ~a* is ~(a*).
//
// Complement is taken over the alphabet of the expression plus WithAlphabet. A malformed expression returns a
// *SyntaxError and no automaton.
func Parse(expression string, options ...Option) (*Automaton, error) {
	p := newParser(expression, options...)
	nfa, err := p.parse()
	if err != nil {
		return nil, err
	}
	p.logger.Debug("built nfa", "expression", expression,
		"states", nfa.NumStates(), "transitions", nfa.NumTransitions())

	dfa, err := determinize(nfa, p.alphabet, p.opts.maxStates)
	if err != nil {
		return nil, err
	}
	p.logger.Debug("determinized", "states", dfa.NumStates(), "transitions", dfa.NumTransitions())

	minimal, err := Minimize(dfa)
	if err != nil {
		return nil, err
	}
	p.logger.Debug("minimized", "states", minimal.NumStates(), "transitions", minimal.NumTransitions())
	return minimal, nil
}

// ParseNFA
// Builds the nondeterministic automaton of expression without determinizing or minimizing it. Complemented
// sub-expressions are still determinized locally.
func ParseNFA(expression string, options ...Option) (*Automaton, error) {
	return newParser(expression, options...).parse()
}

type operator struct {
	kind rune
	pos  int
}

// parser is a two-stack operator-precedence parser. operands owns the automata built so far; every
// reduction pops its inputs, so nothing is left referenced after an error.
type parser struct {
	opts     *parseOption
	logger   *slog.Logger
	input    []rune
	pos      int
	alphabet Alphabet

	operands  stack[*Automaton]
	operators stack[operator]

	// Set when the last token completed an operand, so a binary or postfix operator may follow.
	expectOperator bool
	// Last non-whitespace token, 0 before the first one.
	prev rune
}

func newParser(expression string, options ...Option) *parser {
	opts := &parseOption{}
	for _, fn := range options {
		fn(opts)
	}
	logger := opts.logger
	if logger == nil {
		logger = logging.NewNop()
	}

	input := []rune(expression)
	symbols := make([]rune, 0, len(input))
	for _, r := range input {
		if isSymbol(r) {
			symbols = append(symbols, r)
		}
	}

	return &parser{
		opts:     opts,
		logger:   logger,
		input:    input,
		alphabet: NewAlphabet(symbols...).Union(opts.alphabet),
	}
}

func isSymbol(r rune) bool {
	return r >= 0x21 && r <= 0x7e && !strings.ContainsRune(reserved, r)
}

func (p *parser) more() bool {
	return p.pos < len(p.input)
}

func (p *parser) parse() (*Automaton, error) {
	for p.more() {
		pos := p.pos
		c := p.input[p.pos]
		p.pos++

		if unicode.IsSpace(c) {
			continue
		}

		var err error
		switch {
		case c == opOpen:
			err = p.parseOpen(pos)
		case c == opClose:
			err = p.parseClose(pos)
		case c == opUnion || c == opConcat:
			if !p.expectOperator {
				return nil, syntaxErrorf(pos, "operator %q where an operand was expected", c)
			}
			err = p.pushBinary(operator{kind: c, pos: pos})
			p.expectOperator = false
		case c == opStar || c == opReverse:
			if !p.expectOperator {
				return nil, syntaxErrorf(pos, "unary operator %q without operand", c)
			}
			err = p.applyPostfix(c, pos)
		case c == opComplement:
			if p.expectOperator {
				err = p.applyPostfix(c, pos)
			} else {
				p.operators.Push(operator{kind: c, pos: pos})
			}
		case isSymbol(c):
			err = p.parseSymbol(c, pos)
		default:
			return nil, syntaxErrorf(pos, "invalid symbol %q", c)
		}
		if err != nil {
			return nil, err
		}
		p.prev = c
	}

	return p.finish()
}

func (p *parser) parseOpen(pos int) error {
	if p.expectOperator {
		if err := p.pushBinary(operator{kind: opConcat, pos: pos}); err != nil {
			return err
		}
	}
	p.operators.Push(operator{kind: opOpen, pos: pos})
	p.expectOperator = false
	return nil
}

func (p *parser) parseClose(pos int) error {
	if !p.expectOperator {
		if p.prev != opOpen {
			return syntaxErrorf(pos, "missing operand before ')'")
		}
		p.operands.Push(MakeEmptyString())
	}

	for {
		top, ok := p.operators.Peek()
		if !ok {
			return syntaxErrorf(pos, "unmatched ')'")
		}
		if top.kind == opOpen {
			p.operators.Pop()
			break
		}
		if err := p.reduce(); err != nil {
			return err
		}
	}
	p.expectOperator = true
	return nil
}

func (p *parser) parseSymbol(c rune, pos int) error {
	if p.expectOperator {
		if err := p.pushBinary(operator{kind: opConcat, pos: pos}); err != nil {
			return err
		}
	}
	a, err := MakeSymbol(c)
	if err != nil {
		return err
	}
	p.operands.Push(a)
	p.expectOperator = true
	return nil
}

// finish drains the operator stack. A well-formed expression leaves exactly one operand.
func (p *parser) finish() (*Automaton, error) {
	if p.prev == 0 {
		// Nothing but whitespace.
		return MakeEmptyString(), nil
	}
	if !p.expectOperator {
		return nil, syntaxErrorf(len(p.input), "unexpected end of expression")
	}

	for p.operators.Len() > 0 {
		top, _ := p.operators.Peek()
		if top.kind == opOpen {
			return nil, syntaxErrorf(top.pos, "unmatched '('")
		}
		if err := p.reduce(); err != nil {
			return nil, err
		}
	}

	if p.operands.Len() != 1 {
		return nil, syntaxErrorf(len(p.input), "expected one expression, found %d operands", p.operands.Len())
	}
	result, _ := p.operands.Pop()
	return result, nil
}

func precedence(kind rune) int {
	switch kind {
	case opUnion:
		return 1
	case opConcat:
		return 2
	default:
		return 3
	}
}

// pushBinary reduces every stacked operator binding at least as tightly as op, then stacks op.
func (p *parser) pushBinary(op operator) error {
	for {
		top, ok := p.operators.Peek()
		if !ok || top.kind == opOpen || precedence(top.kind) < precedence(op.kind) {
			break
		}
		if err := p.reduce(); err != nil {
			return err
		}
	}
	p.operators.Push(op)
	return nil
}

// reduce pops one operator and applies it to the operands it needs.
func (p *parser) reduce() error {
	op, _ := p.operators.Pop()

	if op.kind == opComplement {
		operand, ok := p.operands.Pop()
		if !ok {
			return syntaxErrorf(op.pos, "missing operand for %q", op.kind)
		}
		result, err := p.complement(operand)
		if err != nil {
			return err
		}
		p.operands.Push(result)
		return nil
	}

	right, ok := p.operands.Pop()
	if !ok {
		return syntaxErrorf(op.pos, "missing operand for %q", op.kind)
	}
	left, ok := p.operands.Pop()
	if !ok {
		return syntaxErrorf(op.pos, "missing operand for %q", op.kind)
	}

	var result *Automaton
	var err error
	switch op.kind {
	case opUnion:
		result, err = Union(left, right)
	case opConcat:
		result, err = Concatenate(left, right)
	default:
		return syntaxErrorf(op.pos, "unexpected operator %q", op.kind)
	}
	if err != nil {
		return err
	}
	p.operands.Push(result)
	return nil
}

// applyPostfix replaces the operand on top of the stack by the result of a postfix operator.
func (p *parser) applyPostfix(kind rune, pos int) error {
	operand, ok := p.operands.Pop()
	if !ok {
		return syntaxErrorf(pos, "unary operator %q without operand", kind)
	}

	var result *Automaton
	var err error
	switch kind {
	case opStar:
		result, err = KleeneStar(operand)
	case opReverse:
		result = Reverse(operand)
	case opComplement:
		result, err = p.complement(operand)
	}
	if err != nil {
		return err
	}
	p.operands.Push(result)
	return nil
}

// complement determinizes and totalizes operand over the expression alphabet, complements it, and gives the
// result back the single-final shape the other operators need.
func (p *parser) complement(operand *Automaton) (*Automaton, error) {
	dfa, err := determinize(operand, p.alphabet, p.opts.maxStates)
	if err != nil {
		return nil, err
	}
	total, err := Totalize(dfa, p.alphabet)
	if err != nil {
		return nil, err
	}
	complemented, err := Complement(total, p.alphabet)
	if err != nil {
		return nil, err
	}
	minimal, err := Minimize(complemented)
	if err != nil {
		return nil, err
	}
	return normalize(minimal), nil
}
