package fsa

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var propertyOperands = []string{"a", "ab", "a*", "a|b", "(ab)*", "b*a", "()", "~a"}

func TestProperties_Union(t *testing.T) {
	for _, x := range propertyOperands {
		for _, y := range propertyOperands {
			t.Run(x+","+y, func(t *testing.T) {
				assert.True(t, Equivalent(
					mustParseNFA(t, fmt.Sprintf("(%s)|(%s)", x, y)),
					mustParseNFA(t, fmt.Sprintf("(%s)|(%s)", y, x))))

				z := "ba"
				assert.True(t, Equivalent(
					mustParseNFA(t, fmt.Sprintf("((%s)|(%s))|(%s)", x, y, z)),
					mustParseNFA(t, fmt.Sprintf("(%s)|((%s)|(%s))", x, y, z))))
			})
		}
	}
}

func TestProperties_ConcatenationDistributes(t *testing.T) {
	for _, x := range propertyOperands {
		for _, y := range propertyOperands {
			t.Run(x+","+y, func(t *testing.T) {
				z := "b*"
				assert.True(t, Equivalent(
					mustParseNFA(t, fmt.Sprintf("(%s)&((%s)|(%s))", x, y, z)),
					mustParseNFA(t, fmt.Sprintf("((%s)&(%s))|((%s)&(%s))", x, y, x, z))))
			})
		}
	}
}

func TestProperties_Unary(t *testing.T) {
	for _, x := range propertyOperands {
		t.Run(x, func(t *testing.T) {
			a := mustParseNFA(t, x)
			assert.True(t, Equivalent(mustParseNFA(t, fmt.Sprintf("((%s)*)*", x)), mustParseNFA(t, fmt.Sprintf("(%s)*", x))),
				"star is idempotent")
			assert.True(t, Equivalent(mustParseNFA(t, fmt.Sprintf("((%s)^)^", x)), a), "reverse is self-inverse")
			assert.True(t, Equivalent(Reverse(Reverse(a)), a), "reverse is self-inverse")
			assert.True(t, Equivalent(mustParseNFA(t, fmt.Sprintf("((%s)~)~", x)), a), "complement is self-inverse")
		})
	}
}

func TestProperties_ComplementSelfInverse(t *testing.T) {
	alphabet := NewAlphabet('a', 'b')
	for _, x := range propertyOperands {
		t.Run(x, func(t *testing.T) {
			total, err := Totalize(Determinize(mustParseNFA(t, x), alphabet), alphabet)
			require.NoError(t, err)

			once, err := Complement(total, alphabet)
			require.NoError(t, err)
			twice, err := Complement(once, alphabet)
			require.NoError(t, err)

			assert.True(t, sameGraph(total, twice))
			for _, s := range allStrings("ab", 5) {
				assert.NotEqual(t, accepts(total, s), accepts(once, s), "string %q", s)
			}
		})
	}
}

func TestProperties_Intersect(t *testing.T) {
	for _, x := range propertyOperands {
		for _, y := range propertyOperands {
			t.Run(x+","+y, func(t *testing.T) {
				a, b := mustParseNFA(t, x), mustParseNFA(t, y)
				inter, err := Intersect(a, b)
				require.NoError(t, err)
				for _, s := range allStrings("ab", 4) {
					assert.Equal(t, accepts(a, s) && accepts(b, s), accepts(inter, s), "string %q", s)
				}
			})
		}
	}
}
