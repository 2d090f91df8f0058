package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cognicore/ontoexplain/pkg/ontoexplain/owl"
)

const ns = "http://example.org/pizza#"

var (
	pizza      = owl.NewClass(ns + "Pizza")
	food       = owl.NewClass(ns + "Food")
	margherita = owl.NewClass(ns + "Margherita")
	cheese     = owl.NewClass(ns + "Cheese")
	meat       = owl.NewClass(ns + "Meat")
	fish       = owl.NewClass(ns + "Fish")
	hasTopping = owl.NewObjectProperty(ns + "hasTopping")
	hasBase    = owl.NewObjectProperty(ns + "hasBase")
	isBaseOf   = owl.NewObjectProperty(ns + "isBaseOf")
	italy      = owl.NewIndividual(ns + "Italy")
	france     = owl.NewIndividual(ns + "France")
)

func TestExpressionRules(t *testing.T) {
	r := New()
	tests := []struct {
		name string
		expr owl.Expression
		want string
	}{
		{"named", pizza, "Pizza"},
		{"complement", owl.ObjectComplementOf{Operand: meat}, "does not Meat"},
		{"universal", owl.ObjectAllValuesFrom{Property: hasTopping, Filler: cheese}, "has hasTopping that is Cheese"},
		{"existential", owl.ObjectSomeValuesFrom{Property: hasBase, Filler: food}, "has some hasBase that is Food"},
		{"intersection", owl.ObjectIntersectionOf{Operands: []owl.Expression{pizza, owl.ObjectSomeValuesFrom{Property: hasTopping, Filler: cheese}}}, "Pizza and has some hasTopping that is Cheese"},
		{"union", owl.ObjectUnionOf{Operands: []owl.Expression{meat, fish, cheese}}, "either Meat or Fish or Cheese"},
		{"has value", owl.ObjectHasValue{Property: hasBase, Value: italy}, "has hasBase with value Italy"},
		{"one of", owl.ObjectOneOf{Individuals: []owl.Individual{italy, france}}, "is one of: Italy, France"},
		{"min cardinality", owl.ObjectMinCardinality{Cardinality: 3, Property: hasTopping, Filler: cheese}, "has at least 3 hasTopping that are Cheese"},
		{"nested", owl.ObjectAllValuesFrom{Property: hasTopping, Filler: owl.ObjectComplementOf{Operand: owl.ObjectUnionOf{Operands: []owl.Expression{meat, fish}}}}, "has hasTopping that is does not either Meat or Fish"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Expression(tt.expr))
			assert.Equal(t, tt.want, r.Render(tt.expr))
		})
	}
}

func TestAxiomRules(t *testing.T) {
	r := New()
	tests := []struct {
		name string
		ax   owl.Axiom
		want string
	}{
		{"equivalent", owl.EquivalentClasses{Expressions: []owl.Expression{margherita, owl.ObjectIntersectionOf{Operands: []owl.Expression{pizza, owl.ObjectSomeValuesFrom{Property: hasTopping, Filler: cheese}}}}}, "Margherita is defined as Pizza and has some hasTopping that is Cheese"},
		{"disjoint", owl.DisjointClasses{Expressions: []owl.Expression{meat, fish, cheese}}, "Meat and Fish and Cheese do not overlap."},
		{"domain", owl.ObjectPropertyDomain{Property: hasTopping, Domain: pizza}, "hasTopping is in the domain Pizza"},
		{"range", owl.ObjectPropertyRange{Property: hasTopping, Range: food}, "hasTopping has the range Food"},
		{"subclass named", owl.NewSubClassOf(margherita, pizza), "Every Margherita is a Pizza"},
		{"subclass compound", owl.SubClassOf{Sub: pizza, Super: owl.ObjectSomeValuesFrom{Property: hasBase, Filler: food}}, "Every Pizza has some hasBase that is Food"},
		{"functional", owl.FunctionalObjectProperty{Property: hasBase}, "hasBase can only have one value"},
		{"sub property", owl.SubObjectPropertyOf{Sub: hasBase, Super: hasTopping}, "Every hasBase is a hasTopping"},
		{"inverse", owl.InverseObjectProperties{First: hasBase, Second: isBaseOf}, "hasBase is the inverse of isBaseOf"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Axiom(tt.ax))
			assert.Equal(t, tt.want, r.Render(tt.ax))
		})
	}
}

func TestRenderIsRepeatable(t *testing.T) {
	r := New()
	ax := owl.SubClassOf{Sub: margherita, Super: owl.ObjectIntersectionOf{Operands: []owl.Expression{
		pizza,
		owl.ObjectAllValuesFrom{Property: hasTopping, Filler: owl.ObjectUnionOf{Operands: []owl.Expression{cheese, fish}}},
	}}}
	first := r.Render(ax)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, r.Render(ax))
	}
}

func TestOperandSeparatorCount(t *testing.T) {
	r := New()
	names := []owl.Class{pizza, food, cheese, meat, fish}
	for n := 1; n <= len(names); n++ {
		ops := make([]owl.Expression, n)
		for i := range ops {
			ops[i] = names[i]
		}

		and := r.Expression(owl.ObjectIntersectionOf{Operands: ops})
		assert.Equal(t, n-1, strings.Count(and, " and "), "intersection of %d", n)
		for _, c := range names[:n] {
			assert.Contains(t, and, c.ShortForm())
		}

		or := r.Expression(owl.ObjectUnionOf{Operands: ops})
		assert.True(t, strings.HasPrefix(or, "either "))
		assert.Equal(t, n-1, strings.Count(or, " or "), "union of %d", n)
	}
	assert.Equal(t, "Pizza", r.Expression(owl.ObjectIntersectionOf{Operands: []owl.Expression{pizza}}))
	assert.Equal(t, "either Pizza", r.Expression(owl.ObjectUnionOf{Operands: []owl.Expression{pizza}}))
}

func TestSubClassOfBranch(t *testing.T) {
	r := New()
	some := owl.ObjectSomeValuesFrom{Property: hasTopping, Filler: cheese}

	assert.Equal(t, "Every "+r.Render(margherita)+" is a Pizza", r.Render(owl.NewSubClassOf(margherita, pizza)))

	got := r.Render(owl.SubClassOf{Sub: margherita, Super: some})
	assert.Equal(t, "Every Margherita has some hasTopping that is "+r.Render(cheese), got)
	assert.NotContains(t, got, "is a")
}

func TestRenderPanicsOnUnknownValue(t *testing.T) {
	assert.Panics(t, func() { New().Render(42) })
}
