package owl

// Expression is a class expression. The set of implementations is closed:
// only the types in this file satisfy it.
type Expression interface {
	isExpression()
}

// ObjectComplementOf is NOT C
type ObjectComplementOf struct {
	Operand Expression
}

// ObjectAllValuesFrom is the universal restriction ∀P.C
type ObjectAllValuesFrom struct {
	Property ObjectProperty
	Filler   Expression
}

// ObjectSomeValuesFrom is the existential restriction ∃P.C
type ObjectSomeValuesFrom struct {
	Property ObjectProperty
	Filler   Expression
}

// ObjectIntersectionOf is C1 ∩ C2 ∩ …
type ObjectIntersectionOf struct {
	Operands []Expression
}

// ObjectUnionOf is C1 ∪ C2 ∪ …
type ObjectUnionOf struct {
	Operands []Expression
}

// ObjectHasValue is the restriction "P has value v"
type ObjectHasValue struct {
	Property ObjectProperty
	Value    Individual
}

// ObjectOneOf enumerates individuals: {i1, i2, …}
type ObjectOneOf struct {
	Individuals []Individual
}

// ObjectMinCardinality is ≥n P.C
type ObjectMinCardinality struct {
	Cardinality int
	Property    ObjectProperty
	Filler      Expression
}

func (Class) isExpression()                {}
func (ObjectComplementOf) isExpression()   {}
func (ObjectAllValuesFrom) isExpression()  {}
func (ObjectSomeValuesFrom) isExpression() {}
func (ObjectIntersectionOf) isExpression() {}
func (ObjectUnionOf) isExpression()        {}
func (ObjectHasValue) isExpression()       {}
func (ObjectOneOf) isExpression()          {}
func (ObjectMinCardinality) isExpression() {}

// IsNamed reports whether e is a named class
func IsNamed(e Expression) bool {
	_, ok := e.(Class)
	return ok
}

// NamedClasses returns the named classes mentioned anywhere in e, in traversal order.
// Duplicates are kept; callers dedupe when they need a set.
func NamedClasses(e Expression) []Class {
	var out []Class
	var walk func(Expression)
	walk = func(e Expression) {
		switch x := e.(type) {
		case Class:
			out = append(out, x)
		case ObjectComplementOf:
			walk(x.Operand)
		case ObjectAllValuesFrom:
			walk(x.Filler)
		case ObjectSomeValuesFrom:
			walk(x.Filler)
		case ObjectIntersectionOf:
			for _, op := range x.Operands {
				walk(op)
			}
		case ObjectUnionOf:
			for _, op := range x.Operands {
				walk(op)
			}
		case ObjectMinCardinality:
			walk(x.Filler)
		case ObjectHasValue, ObjectOneOf:
		}
	}
	walk(e)
	return out
}

// NamedProperties returns the object properties used by restrictions in e, in
// traversal order. Duplicates are kept.
func NamedProperties(e Expression) []ObjectProperty {
	var out []ObjectProperty
	var walk func(Expression)
	walk = func(e Expression) {
		switch x := e.(type) {
		case ObjectComplementOf:
			walk(x.Operand)
		case ObjectAllValuesFrom:
			out = append(out, x.Property)
			walk(x.Filler)
		case ObjectSomeValuesFrom:
			out = append(out, x.Property)
			walk(x.Filler)
		case ObjectIntersectionOf:
			for _, op := range x.Operands {
				walk(op)
			}
		case ObjectUnionOf:
			for _, op := range x.Operands {
				walk(op)
			}
		case ObjectHasValue:
			out = append(out, x.Property)
		case ObjectMinCardinality:
			out = append(out, x.Property)
			walk(x.Filler)
		case Class, ObjectOneOf:
		}
	}
	walk(e)
	return out
}

// NamedIndividuals returns the individuals mentioned by value restrictions and
// enumerations in e, in traversal order. Duplicates are kept.
func NamedIndividuals(e Expression) []Individual {
	var out []Individual
	var walk func(Expression)
	walk = func(e Expression) {
		switch x := e.(type) {
		case ObjectComplementOf:
			walk(x.Operand)
		case ObjectAllValuesFrom:
			walk(x.Filler)
		case ObjectSomeValuesFrom:
			walk(x.Filler)
		case ObjectIntersectionOf:
			for _, op := range x.Operands {
				walk(op)
			}
		case ObjectUnionOf:
			for _, op := range x.Operands {
				walk(op)
			}
		case ObjectHasValue:
			out = append(out, x.Value)
		case ObjectOneOf:
			out = append(out, x.Individuals...)
		case ObjectMinCardinality:
			walk(x.Filler)
		case Class:
		}
	}
	walk(e)
	return out
}
