// Package owl holds the immutable ontology model: named entities, the closed set of
// class expressions and axioms the explorer understands, and the ontology container.
package owl

import "strings"

// IRI identifies an entity
type IRI string

// ThingIRI is the IRI of the top class
const ThingIRI IRI = "http://www.w3.org/2002/07/owl#Thing"

// Thing is the top class every class is subsumed by
var Thing = Class{IRI: ThingIRI}

// ShortForm returns the human-readable trailing segment of the IRI:
// the part after the last '#', else after the last '/', else the whole IRI.
func (i IRI) ShortForm() string {
	s := string(i)
	if idx := strings.LastIndex(s, "#"); idx >= 0 && idx < len(s)-1 {
		return s[idx+1:]
	}
	if idx := strings.LastIndex(s, "/"); idx >= 0 && idx < len(s)-1 {
		return s[idx+1:]
	}
	return s
}

// Class is a named class
type Class struct {
	IRI IRI
}

// NewClass creates a named class
func NewClass(iri string) Class { return Class{IRI: IRI(iri)} }

// ShortForm returns the display name of the class
func (c Class) ShortForm() string { return c.IRI.ShortForm() }

// IsThing reports whether c is owl:Thing
func (c Class) IsThing() bool { return c.IRI == ThingIRI }

// ObjectProperty is a named object property
type ObjectProperty struct {
	IRI IRI
}

// NewObjectProperty creates a named object property
func NewObjectProperty(iri string) ObjectProperty { return ObjectProperty{IRI: IRI(iri)} }

// ShortForm returns the display name of the property
func (p ObjectProperty) ShortForm() string { return p.IRI.ShortForm() }

// Individual is a named individual
type Individual struct {
	IRI IRI
}

// NewIndividual creates a named individual
func NewIndividual(iri string) Individual { return Individual{IRI: IRI(iri)} }

// ShortForm returns the display name of the individual
func (i Individual) ShortForm() string { return i.IRI.ShortForm() }
