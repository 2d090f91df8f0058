// Package explain computes justifications for subclass-of axioms: minimal sets of
// axioms that together entail the relationship.
package explain

import (
	"context"
	"fmt"

	"github.com/cognicore/ontoexplain/pkg/ontoexplain/inference"
	"github.com/cognicore/ontoexplain/pkg/ontoexplain/internalerr"
	"github.com/cognicore/ontoexplain/pkg/ontoexplain/owl"
)

// DefaultMaxJustifications bounds path enumeration in All
const DefaultMaxJustifications = 64

// Generator produces justifications
type Generator interface {
	// Minimal returns one minimal justification
	Minimal(ctx context.Context, ax owl.SubClassOf) ([]owl.Axiom, error)
	// All returns every minimal justification, in discovery order
	All(ctx context.Context, ax owl.SubClassOf) ([][]owl.Axiom, error)
}

// GraphGenerator justifies subsumptions between named classes by told paths:
// the axioms labelling the edges of one path form one justification.
type GraphGenerator struct {
	graph *inference.Graph
	limit int
}

var _ Generator = (*GraphGenerator)(nil)

// NewGraphGenerator creates a generator. limit <= 0 uses DefaultMaxJustifications.
func NewGraphGenerator(g *inference.Graph, limit int) *GraphGenerator {
	if limit <= 0 {
		limit = DefaultMaxJustifications
	}
	return &GraphGenerator{graph: g, limit: limit}
}

func named(ax owl.SubClassOf) (owl.Class, owl.Class, error) {
	sub, ok := ax.Sub.(owl.Class)
	if !ok {
		return owl.Class{}, owl.Class{}, fmt.Errorf("%w: subclass must be a named class", internalerr.ErrNoJustification)
	}
	super, ok := ax.Super.(owl.Class)
	if !ok {
		return owl.Class{}, owl.Class{}, fmt.Errorf("%w: superclass must be a named class", internalerr.ErrNoJustification)
	}
	return sub, super, nil
}

// Minimal implements Generator using a shortest told path
func (g *GraphGenerator) Minimal(ctx context.Context, ax owl.SubClassOf) ([]owl.Axiom, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	sub, super, err := named(ax)
	if err != nil {
		return nil, err
	}
	if super.IsThing() {
		return []owl.Axiom{}, nil
	}
	path := g.graph.ShortestPath(sub, super)
	if len(path) == 0 {
		return nil, fmt.Errorf("%w: %s ⊑ %s", internalerr.ErrNoJustification, sub.ShortForm(), super.ShortForm())
	}
	return axiomsOf(path), nil
}

// All implements Generator
func (g *GraphGenerator) All(ctx context.Context, ax owl.SubClassOf) ([][]owl.Axiom, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	sub, super, err := named(ax)
	if err != nil {
		return nil, err
	}
	if super.IsThing() {
		return [][]owl.Axiom{{}}, nil
	}

	paths := g.graph.Paths(sub, super, g.limit)
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w: %s ⊑ %s", internalerr.ErrNoJustification, sub.ShortForm(), super.ShortForm())
	}

	sets := make([][]owl.Axiom, 0, len(paths))
	for _, p := range paths {
		sets = append(sets, axiomsOf(p))
	}
	return minimalSets(sets), nil
}

func axiomsOf(path []inference.Edge) []owl.Axiom {
	seen := make(map[string]bool, len(path))
	out := make([]owl.Axiom, 0, len(path))
	for _, e := range path {
		k := e.Axiom.Key()
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, e.Axiom)
	}
	return out
}

// minimalSets drops duplicate sets and sets that strictly contain another set.
func minimalSets(sets [][]owl.Axiom) [][]owl.Axiom {
	keys := make([]map[string]bool, len(sets))
	for i, s := range sets {
		keys[i] = make(map[string]bool, len(s))
		for _, ax := range s {
			keys[i][ax.Key()] = true
		}
	}
	subset := func(a, b map[string]bool) bool {
		if len(a) > len(b) {
			return false
		}
		for k := range a {
			if !b[k] {
				return false
			}
		}
		return true
	}

	var out [][]owl.Axiom
	for i := range sets {
		keep := true
		for j := range sets {
			if i == j || !subset(keys[j], keys[i]) {
				continue
			}
			// j ⊆ i: drop i if strictly larger, or if equal and j came first
			if len(keys[j]) < len(keys[i]) || j < i {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, sets[i])
		}
	}
	return out
}

// Flatten merges justifications into one list, keeping each distinct axiom once
// in first-seen order.
func Flatten(justifications [][]owl.Axiom) []owl.Axiom {
	seen := make(map[string]bool)
	var out []owl.Axiom
	for _, j := range justifications {
		for _, ax := range j {
			k := ax.Key()
			if seen[k] {
				continue
			}
			seen[k] = true
			out = append(out, ax)
		}
	}
	return out
}
