package owl

// Axiom is an assertion over classes and properties. Like Expression the set of
// implementations is closed.
type Axiom interface {
	isAxiom()
	// Key is the canonical structural identity of the axiom. Two axioms with the
	// same Key are the same axiom.
	Key() string
}

// EquivalentClasses states C1 ≡ C2 ≡ …
type EquivalentClasses struct {
	Expressions []Expression
}

// DisjointClasses states C1, C2, … are pairwise disjoint
type DisjointClasses struct {
	Expressions []Expression
}

// ObjectPropertyDomain states P has domain D
type ObjectPropertyDomain struct {
	Property ObjectProperty
	Domain   Expression
}

// ObjectPropertyRange states P has range R
type ObjectPropertyRange struct {
	Property ObjectProperty
	Range    Expression
}

// SubClassOf states Sub ⊑ Super
type SubClassOf struct {
	Sub   Expression
	Super Expression
}

// FunctionalObjectProperty states P is functional
type FunctionalObjectProperty struct {
	Property ObjectProperty
}

// SubObjectPropertyOf states P1 ⊑ P2
type SubObjectPropertyOf struct {
	Sub   ObjectProperty
	Super ObjectProperty
}

// InverseObjectProperties states P1 ≡ P2⁻¹
type InverseObjectProperties struct {
	First  ObjectProperty
	Second ObjectProperty
}

func (EquivalentClasses) isAxiom()        {}
func (DisjointClasses) isAxiom()          {}
func (ObjectPropertyDomain) isAxiom()     {}
func (ObjectPropertyRange) isAxiom()      {}
func (SubClassOf) isAxiom()               {}
func (FunctionalObjectProperty) isAxiom() {}
func (SubObjectPropertyOf) isAxiom()      {}
func (InverseObjectProperties) isAxiom()  {}

// NewSubClassOf builds the subclass-of axiom between two named classes
func NewSubClassOf(sub, super Class) SubClassOf {
	return SubClassOf{Sub: sub, Super: super}
}
