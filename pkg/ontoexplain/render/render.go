// Package render turns class expressions and axioms into English fragments.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cognicore/ontoexplain/pkg/ontoexplain/owl"
)

// Renderer is stateless; the zero value is ready to use.
type Renderer struct{}

// New creates a renderer
func New() Renderer { return Renderer{} }

// Render dispatches to Expression or Axiom. Any other value panics.
func (r Renderer) Render(v any) string {
	switch x := v.(type) {
	case owl.Axiom:
		return r.Axiom(x)
	case owl.Expression:
		return r.Expression(x)
	default:
		panic(fmt.Sprintf("render: cannot render %T", v))
	}
}

// Expression renders a class expression
func (r Renderer) Expression(e owl.Expression) string {
	switch x := e.(type) {
	case owl.Class:
		return x.ShortForm()
	case owl.ObjectComplementOf:
		return "does not " + r.Expression(x.Operand)
	case owl.ObjectAllValuesFrom:
		return "has " + x.Property.ShortForm() + " that is " + r.Expression(x.Filler)
	case owl.ObjectSomeValuesFrom:
		return "has some " + x.Property.ShortForm() + " that is " + r.Expression(x.Filler)
	case owl.ObjectIntersectionOf:
		return r.join(x.Operands, " and ")
	case owl.ObjectUnionOf:
		return "either " + r.join(x.Operands, " or ")
	case owl.ObjectHasValue:
		return "has " + x.Property.ShortForm() + " with value " + x.Value.ShortForm()
	case owl.ObjectOneOf:
		names := make([]string, len(x.Individuals))
		for i, ind := range x.Individuals {
			names[i] = ind.ShortForm()
		}
		return "is one of: " + strings.Join(names, ", ")
	case owl.ObjectMinCardinality:
		return "has at least " + strconv.Itoa(x.Cardinality) + " " + x.Property.ShortForm() +
			" that are " + r.Expression(x.Filler)
	default:
		panic(fmt.Sprintf("render: unhandled expression %T", e))
	}
}

// Axiom renders an axiom
func (r Renderer) Axiom(ax owl.Axiom) string {
	switch a := ax.(type) {
	case owl.EquivalentClasses:
		return r.join(a.Expressions, " is defined as ")
	case owl.DisjointClasses:
		return r.join(a.Expressions, " and ") + " do not overlap."
	case owl.ObjectPropertyDomain:
		return a.Property.ShortForm() + " is in the domain " + r.Expression(a.Domain)
	case owl.ObjectPropertyRange:
		return a.Property.ShortForm() + " has the range " + r.Expression(a.Range)
	case owl.SubClassOf:
		// Compound supers already read as predicates ("has X that is Y").
		if owl.IsNamed(a.Super) {
			return "Every " + r.Expression(a.Sub) + " is a " + r.Expression(a.Super)
		}
		return "Every " + r.Expression(a.Sub) + " " + r.Expression(a.Super)
	case owl.FunctionalObjectProperty:
		return a.Property.ShortForm() + " can only have one value"
	case owl.SubObjectPropertyOf:
		return "Every " + a.Sub.ShortForm() + " is a " + a.Super.ShortForm()
	case owl.InverseObjectProperties:
		return a.First.ShortForm() + " is the inverse of " + a.Second.ShortForm()
	default:
		panic(fmt.Sprintf("render: unhandled axiom %T", ax))
	}
}

func (r Renderer) join(ops []owl.Expression, sep string) string {
	parts := make([]string, len(ops))
	for i, op := range ops {
		parts[i] = r.Expression(op)
	}
	return strings.Join(parts, sep)
}
