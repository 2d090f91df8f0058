package document

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/ontoexplain/pkg/ontoexplain/owl"
)

// Encode writes an ontology as a document. Names are written as full IRIs.
func Encode(o *owl.Ontology) ([]byte, error) {
	doc := Document{IRI: string(o.IRI())}
	for _, c := range o.Classes() {
		doc.Classes = append(doc.Classes, string(c.IRI))
	}
	for _, p := range o.ObjectProperties() {
		doc.ObjectProperties = append(doc.ObjectProperties, string(p.IRI))
	}
	for _, i := range o.Individuals() {
		doc.Individuals = append(doc.Individuals, string(i.IRI))
	}
	for _, ax := range o.Axioms() {
		doc.Axioms = append(doc.Axioms, *axiomNode(ax))
	}
	return yaml.Marshal(&doc)
}

// EncodeAxiom writes a single axiom node, the inverse of DecodeAxiom
func EncodeAxiom(ax owl.Axiom) ([]byte, error) {
	return yaml.Marshal(axiomNode(ax))
}

func scalar(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

func mapping(kv ...any) *yaml.Node {
	n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for i := 0; i+1 < len(kv); i += 2 {
		n.Content = append(n.Content, scalar(kv[i].(string)), kv[i+1].(*yaml.Node))
	}
	return n
}

func sequence(items ...*yaml.Node) *yaml.Node {
	return &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Content: items}
}

func expressionsNode(exprs []owl.Expression) *yaml.Node {
	items := make([]*yaml.Node, len(exprs))
	for i, e := range exprs {
		items[i] = expressionNode(e)
	}
	return sequence(items...)
}

func expressionNode(e owl.Expression) *yaml.Node {
	switch x := e.(type) {
	case owl.Class:
		return scalar(string(x.IRI))
	case owl.ObjectComplementOf:
		return mapping("not", expressionNode(x.Operand))
	case owl.ObjectAllValuesFrom:
		return mapping("all", mapping("property", scalar(string(x.Property.IRI)), "filler", expressionNode(x.Filler)))
	case owl.ObjectSomeValuesFrom:
		return mapping("some", mapping("property", scalar(string(x.Property.IRI)), "filler", expressionNode(x.Filler)))
	case owl.ObjectIntersectionOf:
		return mapping("and", expressionsNode(x.Operands))
	case owl.ObjectUnionOf:
		return mapping("or", expressionsNode(x.Operands))
	case owl.ObjectHasValue:
		return mapping("value", mapping("property", scalar(string(x.Property.IRI)), "individual", scalar(string(x.Value.IRI))))
	case owl.ObjectOneOf:
		items := make([]*yaml.Node, len(x.Individuals))
		for i, ind := range x.Individuals {
			items[i] = scalar(string(ind.IRI))
		}
		return mapping("oneOf", sequence(items...))
	case owl.ObjectMinCardinality:
		card := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(x.Cardinality)}
		return mapping("min", mapping(
			"cardinality", card,
			"property", scalar(string(x.Property.IRI)),
			"filler", expressionNode(x.Filler),
		))
	default:
		panic(fmt.Sprintf("document: unhandled expression %T", e))
	}
}

func axiomNode(ax owl.Axiom) *yaml.Node {
	switch a := ax.(type) {
	case owl.SubClassOf:
		return mapping("subClassOf", mapping("sub", expressionNode(a.Sub), "super", expressionNode(a.Super)))
	case owl.EquivalentClasses:
		return mapping("equivalentClasses", expressionsNode(a.Expressions))
	case owl.DisjointClasses:
		return mapping("disjointClasses", expressionsNode(a.Expressions))
	case owl.ObjectPropertyDomain:
		return mapping("domain", mapping("property", scalar(string(a.Property.IRI)), "class", expressionNode(a.Domain)))
	case owl.ObjectPropertyRange:
		return mapping("range", mapping("property", scalar(string(a.Property.IRI)), "class", expressionNode(a.Range)))
	case owl.FunctionalObjectProperty:
		return mapping("functional", scalar(string(a.Property.IRI)))
	case owl.SubObjectPropertyOf:
		return mapping("subPropertyOf", mapping("sub", scalar(string(a.Sub.IRI)), "super", scalar(string(a.Super.IRI))))
	case owl.InverseObjectProperties:
		return mapping("inverse", sequence(scalar(string(a.First.IRI)), scalar(string(a.Second.IRI))))
	default:
		panic(fmt.Sprintf("document: unhandled axiom %T", ax))
	}
}
