package inference

import (
	"testing"

	"github.com/cognicore/ontoexplain/pkg/ontoexplain/owl"
)

const ns = "http://example.org/t#"

func class(name string) owl.Class { return owl.NewClass(ns + name) }

func names(cs []owl.Class) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.ShortForm()
	}
	return out
}

func pathNames(p []Edge) []string {
	if len(p) == 0 {
		return nil
	}
	out := []string{p[0].From.ShortForm()}
	for _, e := range p {
		out = append(out, e.To.ShortForm())
	}
	return out
}

func reaches(g *Graph, sub, super owl.Class) bool {
	for _, c := range g.Closure(sub) {
		if c == super {
			return true
		}
	}
	return false
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestBasicEdges(t *testing.T) {
	g := Build([]owl.Axiom{
		owl.NewSubClassOf(class("Margherita"), class("Pizza")),
		owl.NewSubClassOf(class("Pizza"), class("Food")),
	})

	if !reaches(g, class("Margherita"), class("Pizza")) {
		t.Error("Expected Margherita ⊑ Pizza")
	}
	if !reaches(g, class("Margherita"), class("Food")) {
		t.Error("Expected transitive: Margherita ⊑ Food")
	}
	if reaches(g, class("Food"), class("Pizza")) {
		t.Error("Food should not be subsumed by Pizza")
	}
	if len(g.Edges()) != 2 {
		t.Errorf("Expected 2 edges, got %d", len(g.Edges()))
	}
}

func TestIntersectionAndEquivalenceEdges(t *testing.T) {
	hasTopping := owl.NewObjectProperty(ns + "hasTopping")
	cheesy := owl.EquivalentClasses{Expressions: []owl.Expression{
		class("CheesyPizza"),
		owl.ObjectIntersectionOf{Operands: []owl.Expression{
			class("Pizza"),
			owl.ObjectSomeValuesFrom{Property: hasTopping, Filler: class("Cheese")},
		}},
	}}
	same := owl.EquivalentClasses{Expressions: []owl.Expression{class("Pie"), class("Pizza")}}
	g := Build([]owl.Axiom{
		cheesy,
		same,
		owl.SubClassOf{Sub: class("Calzone"), Super: owl.ObjectIntersectionOf{Operands: []owl.Expression{class("Pizza"), class("Folded")}}},
		owl.SubClassOf{Sub: class("Pizza"), Super: owl.ObjectSomeValuesFrom{Property: hasTopping, Filler: class("Food")}},
	})

	if got := names(g.Closure(class("CheesyPizza"))); !equal(got, []string{"Pizza", "Pie"}) {
		t.Errorf("CheesyPizza closure = %v", got)
	}
	if got := names(g.Closure(class("Calzone"))); !equal(got, []string{"Pizza", "Pie", "Folded"}) {
		t.Errorf("Calzone closure = %v", got)
	}
	if !reaches(g, class("Pie"), class("Pizza")) || !reaches(g, class("Pizza"), class("Pie")) {
		t.Error("equivalent classes should subsume each other")
	}
	if len(g.successors(class("Pizza"))) != 1 {
		t.Errorf("existential super should not produce an edge, got %v", g.successors(class("Pizza")))
	}
	if e := g.successors(class("CheesyPizza"))[0]; e.Axiom.Key() != cheesy.Key() {
		t.Errorf("edge should carry its axiom, got %s", e.Axiom.Key())
	}
}

func TestShortestPath(t *testing.T) {
	g := Build([]owl.Axiom{
		owl.NewSubClassOf(class("A"), class("B")),
		owl.NewSubClassOf(class("B"), class("C")),
		owl.NewSubClassOf(class("C"), class("D")),
		owl.NewSubClassOf(class("A"), class("D")),
	})

	if got := pathNames(g.ShortestPath(class("A"), class("D"))); !equal(got, []string{"A", "D"}) {
		t.Errorf("shortest path = %v", got)
	}
	if got := pathNames(g.ShortestPath(class("A"), class("C"))); !equal(got, []string{"A", "B", "C"}) {
		t.Errorf("shortest path = %v", got)
	}
	if p := g.ShortestPath(class("D"), class("A")); p != nil {
		t.Errorf("expected no path, got %v", pathNames(p))
	}
}

func TestPathsWithCycle(t *testing.T) {
	g := Build([]owl.Axiom{
		owl.NewSubClassOf(class("A"), class("B")),
		owl.NewSubClassOf(class("B"), class("A")),
		owl.NewSubClassOf(class("B"), class("C")),
		owl.NewSubClassOf(class("A"), class("C")),
	})

	paths := g.Paths(class("A"), class("C"), 0)
	if len(paths) != 2 {
		t.Fatalf("Expected 2 paths, got %d", len(paths))
	}
	if got := pathNames(paths[0]); !equal(got, []string{"A", "B", "C"}) {
		t.Errorf("first path = %v", got)
	}
	if got := pathNames(paths[1]); !equal(got, []string{"A", "C"}) {
		t.Errorf("second path = %v", got)
	}

	if limited := g.Paths(class("A"), class("C"), 1); len(limited) != 1 {
		t.Errorf("limit 1 should give 1 path, got %d", len(limited))
	}
	if none := g.Paths(class("C"), class("A"), 0); len(none) != 0 {
		t.Errorf("expected no paths, got %d", len(none))
	}
}

func TestSelfLoopIgnored(t *testing.T) {
	g := Build([]owl.Axiom{owl.NewSubClassOf(class("A"), class("A"))})
	if len(g.Edges()) != 0 {
		t.Errorf("self subsumption should not create an edge")
	}
}
