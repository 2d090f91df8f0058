// Package document reads and writes ontologies as YAML documents.
//
// A document lists declarations and axioms. Class expressions are YAML nodes: a
// scalar names a class, a single-key mapping selects a compound shape:
//
//	not: C
//	all: {property: p, filler: C}
//	some: {property: p, filler: C}
//	and: [C1, C2]
//	or: [C1, C2]
//	value: {property: p, individual: i}
//	oneOf: [i1, i2]
//	min: {cardinality: 2, property: p, filler: C}
//
// Bare names are expanded with the document prefix; names containing ':' are
// taken as full IRIs.
package document

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/ontoexplain/pkg/ontoexplain/internalerr"
	"github.com/cognicore/ontoexplain/pkg/ontoexplain/owl"
)

// Document is the on-disk shape of an ontology
type Document struct {
	IRI              string      `yaml:"iri"`
	Prefix           string      `yaml:"prefix,omitempty"`
	Classes          []string    `yaml:"classes,omitempty"`
	ObjectProperties []string    `yaml:"objectProperties,omitempty"`
	Individuals      []string    `yaml:"individuals,omitempty"`
	Axioms           []yaml.Node `yaml:"axioms"`
}

// LoadFile reads an ontology document from disk
func LoadFile(path string) (*owl.Ontology, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	o, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return o, nil
}

// Decode parses an ontology document
func Decode(data []byte) (*owl.Ontology, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", internalerr.ErrInvalidDocument, err)
	}

	d := decoder{prefix: doc.Prefix}
	if d.prefix == "" && doc.IRI != "" {
		d.prefix = strings.TrimSuffix(doc.IRI, "#") + "#"
	}

	var decl owl.Declarations
	for _, name := range doc.Classes {
		decl.Classes = append(decl.Classes, owl.Class{IRI: d.expand(name)})
	}
	for _, name := range doc.ObjectProperties {
		decl.ObjectProperties = append(decl.ObjectProperties, owl.ObjectProperty{IRI: d.expand(name)})
	}
	for _, name := range doc.Individuals {
		decl.Individuals = append(decl.Individuals, owl.Individual{IRI: d.expand(name)})
	}

	axioms := make([]owl.Axiom, 0, len(doc.Axioms))
	for i := range doc.Axioms {
		ax, err := d.axiom(&doc.Axioms[i])
		if err != nil {
			return nil, err
		}
		axioms = append(axioms, ax)
	}

	return owl.NewOntology(owl.IRI(doc.IRI), decl, axioms), nil
}

// DecodeAxiom parses a single axiom node encoded by EncodeAxiom
func DecodeAxiom(data []byte) (owl.Axiom, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("%w: %v", internalerr.ErrInvalidDocument, err)
	}
	if node.Kind == yaml.DocumentNode && len(node.Content) == 1 {
		return decoder{}.axiom(node.Content[0])
	}
	return decoder{}.axiom(&node)
}

type decoder struct {
	prefix string
}

func (d decoder) expand(name string) owl.IRI {
	if strings.Contains(name, ":") || d.prefix == "" {
		return owl.IRI(name)
	}
	return owl.IRI(d.prefix + name)
}

func invalid(node *yaml.Node, format string, args ...any) error {
	return fmt.Errorf("line %d: %w: %s", node.Line, internalerr.ErrInvalidDocument, fmt.Sprintf(format, args...))
}

// single returns the key and value of a one-entry mapping
func single(node *yaml.Node) (string, *yaml.Node, error) {
	if node.Kind != yaml.MappingNode || len(node.Content) != 2 {
		return "", nil, invalid(node, "expected a mapping with exactly one key")
	}
	return node.Content[0].Value, node.Content[1], nil
}

func field(node *yaml.Node, name string) (*yaml.Node, error) {
	if node.Kind != yaml.MappingNode {
		return nil, invalid(node, "expected a mapping with %q", name)
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == name {
			return node.Content[i+1], nil
		}
	}
	return nil, invalid(node, "missing %q", name)
}

func (d decoder) name(node *yaml.Node) (owl.IRI, error) {
	if node.Kind != yaml.ScalarNode || node.Value == "" {
		return "", invalid(node, "expected a name")
	}
	return d.expand(node.Value), nil
}

func (d decoder) property(node *yaml.Node, key string) (owl.ObjectProperty, error) {
	n, err := field(node, key)
	if err != nil {
		return owl.ObjectProperty{}, err
	}
	iri, err := d.name(n)
	if err != nil {
		return owl.ObjectProperty{}, err
	}
	return owl.ObjectProperty{IRI: iri}, nil
}

func (d decoder) expressionField(node *yaml.Node, key string) (owl.Expression, error) {
	n, err := field(node, key)
	if err != nil {
		return nil, err
	}
	return d.expression(n)
}

func (d decoder) expressions(node *yaml.Node) ([]owl.Expression, error) {
	if node.Kind != yaml.SequenceNode || len(node.Content) == 0 {
		return nil, invalid(node, "expected a non-empty list of class expressions")
	}
	out := make([]owl.Expression, 0, len(node.Content))
	for _, n := range node.Content {
		e, err := d.expression(n)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func (d decoder) expression(node *yaml.Node) (owl.Expression, error) {
	if node.Kind == yaml.ScalarNode {
		iri, err := d.name(node)
		if err != nil {
			return nil, err
		}
		return owl.Class{IRI: iri}, nil
	}

	key, val, err := single(node)
	if err != nil {
		return nil, err
	}

	switch key {
	case "not":
		op, err := d.expression(val)
		if err != nil {
			return nil, err
		}
		return owl.ObjectComplementOf{Operand: op}, nil
	case "all", "some":
		p, err := d.property(val, "property")
		if err != nil {
			return nil, err
		}
		filler, err := d.expressionField(val, "filler")
		if err != nil {
			return nil, err
		}
		if key == "all" {
			return owl.ObjectAllValuesFrom{Property: p, Filler: filler}, nil
		}
		return owl.ObjectSomeValuesFrom{Property: p, Filler: filler}, nil
	case "and", "or":
		ops, err := d.expressions(val)
		if err != nil {
			return nil, err
		}
		if key == "and" {
			return owl.ObjectIntersectionOf{Operands: ops}, nil
		}
		return owl.ObjectUnionOf{Operands: ops}, nil
	case "value":
		p, err := d.property(val, "property")
		if err != nil {
			return nil, err
		}
		n, err := field(val, "individual")
		if err != nil {
			return nil, err
		}
		iri, err := d.name(n)
		if err != nil {
			return nil, err
		}
		return owl.ObjectHasValue{Property: p, Value: owl.Individual{IRI: iri}}, nil
	case "oneOf":
		if val.Kind != yaml.SequenceNode || len(val.Content) == 0 {
			return nil, invalid(val, "oneOf expects a non-empty list of individuals")
		}
		inds := make([]owl.Individual, 0, len(val.Content))
		for _, n := range val.Content {
			iri, err := d.name(n)
			if err != nil {
				return nil, err
			}
			inds = append(inds, owl.Individual{IRI: iri})
		}
		return owl.ObjectOneOf{Individuals: inds}, nil
	case "min":
		n, err := field(val, "cardinality")
		if err != nil {
			return nil, err
		}
		var card int
		if err := n.Decode(&card); err != nil || card < 0 {
			return nil, invalid(n, "cardinality must be a non-negative integer")
		}
		p, err := d.property(val, "property")
		if err != nil {
			return nil, err
		}
		filler, err := d.expressionField(val, "filler")
		if err != nil {
			return nil, err
		}
		return owl.ObjectMinCardinality{Cardinality: card, Property: p, Filler: filler}, nil
	default:
		return nil, invalid(node, "unknown class expression %q", key)
	}
}

func (d decoder) axiom(node *yaml.Node) (owl.Axiom, error) {
	key, val, err := single(node)
	if err != nil {
		return nil, err
	}

	switch key {
	case "subClassOf":
		sub, err := d.expressionField(val, "sub")
		if err != nil {
			return nil, err
		}
		super, err := d.expressionField(val, "super")
		if err != nil {
			return nil, err
		}
		return owl.SubClassOf{Sub: sub, Super: super}, nil
	case "equivalentClasses", "disjointClasses":
		exprs, err := d.expressions(val)
		if err != nil {
			return nil, err
		}
		if len(exprs) < 2 {
			return nil, invalid(val, "%s needs at least two class expressions", key)
		}
		if key == "equivalentClasses" {
			return owl.EquivalentClasses{Expressions: exprs}, nil
		}
		return owl.DisjointClasses{Expressions: exprs}, nil
	case "domain", "range":
		p, err := d.property(val, "property")
		if err != nil {
			return nil, err
		}
		c, err := d.expressionField(val, "class")
		if err != nil {
			return nil, err
		}
		if key == "domain" {
			return owl.ObjectPropertyDomain{Property: p, Domain: c}, nil
		}
		return owl.ObjectPropertyRange{Property: p, Range: c}, nil
	case "functional":
		iri, err := d.name(val)
		if err != nil {
			return nil, err
		}
		return owl.FunctionalObjectProperty{Property: owl.ObjectProperty{IRI: iri}}, nil
	case "subPropertyOf":
		sub, err := d.property(val, "sub")
		if err != nil {
			return nil, err
		}
		super, err := d.property(val, "super")
		if err != nil {
			return nil, err
		}
		return owl.SubObjectPropertyOf{Sub: sub, Super: super}, nil
	case "inverse":
		if val.Kind != yaml.SequenceNode || len(val.Content) != 2 {
			return nil, invalid(val, "inverse expects exactly two properties")
		}
		first, err := d.name(val.Content[0])
		if err != nil {
			return nil, err
		}
		second, err := d.name(val.Content[1])
		if err != nil {
			return nil, err
		}
		return owl.InverseObjectProperties{
			First:  owl.ObjectProperty{IRI: first},
			Second: owl.ObjectProperty{IRI: second},
		}, nil
	default:
		return nil, invalid(node, "unknown axiom %q", key)
	}
}
