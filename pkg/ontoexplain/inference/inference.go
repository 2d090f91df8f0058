package inference

import (
	"github.com/cognicore/ontoexplain/pkg/ontoexplain/owl"
)

// Edge is one told subsumption From ⊑ To, read off a single axiom
type Edge struct {
	From  owl.Class
	To    owl.Class
	Axiom owl.Axiom
}

// Graph is the told-subsumption graph of an ontology.
// Edges keep axiom order so every traversal is deterministic.
type Graph struct {
	out   map[owl.IRI][]Edge
	edges []Edge
}

// Build derives the told edges from the axioms:
//
//	SubClassOf(A, B)                      A → B
//	SubClassOf(A, B ∩ …)                  A → each named conjunct
//	EquivalentClasses(A, B, …)            every named pair, both ways
//	EquivalentClasses(A, B ∩ …)           A → each named conjunct
func Build(axioms []owl.Axiom) *Graph {
	g := &Graph{out: make(map[owl.IRI][]Edge)}
	for _, ax := range axioms {
		switch a := ax.(type) {
		case owl.SubClassOf:
			sub, ok := a.Sub.(owl.Class)
			if !ok {
				continue
			}
			for _, super := range namedConjuncts(a.Super) {
				g.add(sub, super, ax)
			}
		case owl.EquivalentClasses:
			for i, left := range a.Expressions {
				lc, ok := left.(owl.Class)
				if !ok {
					continue
				}
				for j, right := range a.Expressions {
					if i == j {
						continue
					}
					for _, super := range namedConjuncts(right) {
						g.add(lc, super, ax)
					}
				}
			}
		}
	}
	return g
}

// namedConjuncts returns e itself when named, the named operands of an
// intersection, and nothing otherwise.
func namedConjuncts(e owl.Expression) []owl.Class {
	switch x := e.(type) {
	case owl.Class:
		return []owl.Class{x}
	case owl.ObjectIntersectionOf:
		var out []owl.Class
		for _, op := range x.Operands {
			if c, ok := op.(owl.Class); ok {
				out = append(out, c)
			}
		}
		return out
	default:
		return nil
	}
}

func (g *Graph) add(from, to owl.Class, ax owl.Axiom) {
	if from == to {
		return
	}
	// Avoid duplicates
	for _, e := range g.successors(from) {
		if e.To == to && e.Axiom.Key() == ax.Key() {
			return
		}
	}
	e := Edge{From: from, To: to, Axiom: ax}
	g.out[from.IRI] = append(g.out[from.IRI], e)
	g.edges = append(g.edges, e)
}

// Edges returns every told edge in axiom order
func (g *Graph) Edges() []Edge {
	return append([]Edge(nil), g.edges...)
}

func (g *Graph) successors(c owl.Class) []Edge {
	return g.out[c.IRI]
}

// Closure returns every class reachable from c (excluding c unless it lies on a
// cycle through itself), in depth-first discovery order.
func (g *Graph) Closure(c owl.Class) []owl.Class {
	var out []owl.Class
	seen := make(map[owl.IRI]bool)
	var visit func(owl.Class)
	visit = func(from owl.Class) {
		for _, e := range g.successors(from) {
			if seen[e.To.IRI] {
				continue
			}
			seen[e.To.IRI] = true
			out = append(out, e.To)
			visit(e.To)
		}
	}
	visit(c)
	return out
}

// ShortestPath finds a path with the fewest edges from sub to super (breadth-first).
// Returns nil when no path exists or sub == super.
func (g *Graph) ShortestPath(sub, super owl.Class) []Edge {
	if sub == super {
		return nil
	}
	prev := map[owl.IRI]Edge{}
	visited := map[owl.IRI]bool{sub.IRI: true}
	queue := []owl.Class{sub}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, e := range g.successors(cur) {
			if visited[e.To.IRI] {
				continue
			}
			visited[e.To.IRI] = true
			prev[e.To.IRI] = e
			if e.To == super {
				return unwind(prev, sub, super)
			}
			queue = append(queue, e.To)
		}
	}
	return nil
}

func unwind(prev map[owl.IRI]Edge, sub, super owl.Class) []Edge {
	var path []Edge
	for at := super; at != sub; {
		e := prev[at.IRI]
		path = append([]Edge{e}, path...)
		at = e.From
	}
	return path
}

// Paths enumerates simple paths from sub to super depth-first, stopping after
// limit paths (limit <= 0 means no limit).
func (g *Graph) Paths(sub, super owl.Class, limit int) [][]Edge {
	var out [][]Edge
	onPath := map[owl.IRI]bool{sub.IRI: true}
	var path []Edge

	var dfs func(from owl.Class) bool
	dfs = func(from owl.Class) bool {
		for _, e := range g.successors(from) {
			if onPath[e.To.IRI] {
				continue // cycle detection
			}
			path = append(path, e)
			if e.To == super {
				out = append(out, append([]Edge(nil), path...))
				if limit > 0 && len(out) >= limit {
					return true
				}
			} else {
				onPath[e.To.IRI] = true
				if dfs(e.To) {
					return true
				}
				onPath[e.To.IRI] = false
			}
			path = path[:len(path)-1]
		}
		return false
	}

	if sub != super {
		dfs(sub)
	}
	return out
}
