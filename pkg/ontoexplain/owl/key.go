package owl

import (
	"fmt"
	"strings"
)

// ExpressionKey returns a functional-syntax rendering of e used as its identity.
func ExpressionKey(e Expression) string {
	var b strings.Builder
	writeExpression(&b, e)
	return b.String()
}

func writeExpression(b *strings.Builder, e Expression) {
	switch x := e.(type) {
	case Class:
		writeIRI(b, x.IRI)
	case ObjectComplementOf:
		b.WriteString("ObjectComplementOf(")
		writeExpression(b, x.Operand)
		b.WriteString(")")
	case ObjectAllValuesFrom:
		b.WriteString("ObjectAllValuesFrom(")
		writeIRI(b, x.Property.IRI)
		b.WriteString(" ")
		writeExpression(b, x.Filler)
		b.WriteString(")")
	case ObjectSomeValuesFrom:
		b.WriteString("ObjectSomeValuesFrom(")
		writeIRI(b, x.Property.IRI)
		b.WriteString(" ")
		writeExpression(b, x.Filler)
		b.WriteString(")")
	case ObjectIntersectionOf:
		writeList(b, "ObjectIntersectionOf", x.Operands)
	case ObjectUnionOf:
		writeList(b, "ObjectUnionOf", x.Operands)
	case ObjectHasValue:
		b.WriteString("ObjectHasValue(")
		writeIRI(b, x.Property.IRI)
		b.WriteString(" ")
		writeIRI(b, x.Value.IRI)
		b.WriteString(")")
	case ObjectOneOf:
		b.WriteString("ObjectOneOf(")
		for i, ind := range x.Individuals {
			if i > 0 {
				b.WriteString(" ")
			}
			writeIRI(b, ind.IRI)
		}
		b.WriteString(")")
	case ObjectMinCardinality:
		fmt.Fprintf(b, "ObjectMinCardinality(%d ", x.Cardinality)
		writeIRI(b, x.Property.IRI)
		b.WriteString(" ")
		writeExpression(b, x.Filler)
		b.WriteString(")")
	default:
		panic(fmt.Sprintf("owl: unhandled expression %T", e))
	}
}

func writeList(b *strings.Builder, name string, ops []Expression) {
	b.WriteString(name)
	b.WriteString("(")
	for i, op := range ops {
		if i > 0 {
			b.WriteString(" ")
		}
		writeExpression(b, op)
	}
	b.WriteString(")")
}

func writeIRI(b *strings.Builder, iri IRI) {
	b.WriteString("<")
	b.WriteString(string(iri))
	b.WriteString(">")
}

func (a EquivalentClasses) Key() string {
	var b strings.Builder
	writeList(&b, "EquivalentClasses", a.Expressions)
	return b.String()
}

func (a DisjointClasses) Key() string {
	var b strings.Builder
	writeList(&b, "DisjointClasses", a.Expressions)
	return b.String()
}

func (a ObjectPropertyDomain) Key() string {
	return fmt.Sprintf("ObjectPropertyDomain(<%s> %s)", a.Property.IRI, ExpressionKey(a.Domain))
}

func (a ObjectPropertyRange) Key() string {
	return fmt.Sprintf("ObjectPropertyRange(<%s> %s)", a.Property.IRI, ExpressionKey(a.Range))
}

func (a SubClassOf) Key() string {
	return fmt.Sprintf("SubClassOf(%s %s)", ExpressionKey(a.Sub), ExpressionKey(a.Super))
}

func (a FunctionalObjectProperty) Key() string {
	return fmt.Sprintf("FunctionalObjectProperty(<%s>)", a.Property.IRI)
}

func (a SubObjectPropertyOf) Key() string {
	return fmt.Sprintf("SubObjectPropertyOf(<%s> <%s>)", a.Sub.IRI, a.Super.IRI)
}

func (a InverseObjectProperties) Key() string {
	return fmt.Sprintf("InverseObjectProperties(<%s> <%s>)", a.First.IRI, a.Second.IRI)
}
