package owl

// Declarations lists the entities an ontology declares explicitly
type Declarations struct {
	Classes          []Class
	ObjectProperties []ObjectProperty
	Individuals      []Individual
}

// Ontology is an immutable set of axioms plus its signature
type Ontology struct {
	iri        IRI
	axioms     []Axiom
	classes    []Class
	properties []ObjectProperty
	indivs     []Individual
}

// NewOntology builds an ontology. Axioms keep their given order. Each part of the
// signature is the declared entities followed by every other entity of that kind
// mentioned in an axiom, in first-seen order.
func NewOntology(iri IRI, decl Declarations, axioms []Axiom) *Ontology {
	o := &Ontology{
		iri:    iri,
		axioms: append([]Axiom(nil), axioms...),
	}

	seenClass := make(map[IRI]bool)
	addClass := func(c Class) {
		if seenClass[c.IRI] {
			return
		}
		seenClass[c.IRI] = true
		o.classes = append(o.classes, c)
	}
	seenProp := make(map[IRI]bool)
	addProp := func(p ObjectProperty) {
		if seenProp[p.IRI] {
			return
		}
		seenProp[p.IRI] = true
		o.properties = append(o.properties, p)
	}
	seenIndiv := make(map[IRI]bool)
	addIndiv := func(ind Individual) {
		if seenIndiv[ind.IRI] {
			return
		}
		seenIndiv[ind.IRI] = true
		o.indivs = append(o.indivs, ind)
	}
	for _, ind := range decl.Individuals {
		addIndiv(ind)
	}

	for _, c := range decl.Classes {
		addClass(c)
	}
	for _, p := range decl.ObjectProperties {
		addProp(p)
	}
	for _, ax := range axioms {
		for _, e := range AxiomExpressions(ax) {
			for _, c := range NamedClasses(e) {
				addClass(c)
			}
			for _, p := range NamedProperties(e) {
				addProp(p)
			}
			for _, ind := range NamedIndividuals(e) {
				addIndiv(ind)
			}
		}
		for _, p := range AxiomProperties(ax) {
			addProp(p)
		}
	}
	return o
}

// IRI returns the ontology IRI
func (o *Ontology) IRI() IRI { return o.iri }

// Axioms returns a copy of the axioms in document order
func (o *Ontology) Axioms() []Axiom {
	return append([]Axiom(nil), o.axioms...)
}

// Classes returns the class signature
func (o *Ontology) Classes() []Class {
	return append([]Class(nil), o.classes...)
}

// ObjectProperties returns the object-property signature
func (o *Ontology) ObjectProperties() []ObjectProperty {
	return append([]ObjectProperty(nil), o.properties...)
}

// Individuals returns the individual signature
func (o *Ontology) Individuals() []Individual {
	return append([]Individual(nil), o.indivs...)
}

// AxiomExpressions returns the top-level class expressions an axiom mentions
func AxiomExpressions(ax Axiom) []Expression {
	switch a := ax.(type) {
	case EquivalentClasses:
		return a.Expressions
	case DisjointClasses:
		return a.Expressions
	case ObjectPropertyDomain:
		return []Expression{a.Domain}
	case ObjectPropertyRange:
		return []Expression{a.Range}
	case SubClassOf:
		return []Expression{a.Sub, a.Super}
	default:
		return nil
	}
}

// AxiomProperties returns the object properties an axiom mentions directly
func AxiomProperties(ax Axiom) []ObjectProperty {
	switch a := ax.(type) {
	case ObjectPropertyDomain:
		return []ObjectProperty{a.Property}
	case ObjectPropertyRange:
		return []ObjectProperty{a.Property}
	case FunctionalObjectProperty:
		return []ObjectProperty{a.Property}
	case SubObjectPropertyOf:
		return []ObjectProperty{a.Sub, a.Super}
	case InverseObjectProperties:
		return []ObjectProperty{a.First, a.Second}
	default:
		return nil
	}
}
