// Package structural is a pure-Go reasoner over the told-subsumption graph.
package structural

import (
	"context"

	"github.com/cognicore/ontoexplain/pkg/ontoexplain/inference"
	"github.com/cognicore/ontoexplain/pkg/ontoexplain/owl"
	"github.com/cognicore/ontoexplain/pkg/ontoexplain/reasoner"
)

// Reasoner classifies by transitive closure of told edges
type Reasoner struct {
	graph *inference.Graph
}

var _ reasoner.Reasoner = (*Reasoner)(nil)

// New creates a reasoner over the given graph
func New(g *inference.Graph) *Reasoner {
	return &Reasoner{graph: g}
}

// FromAxioms builds the graph and the reasoner in one step
func FromAxioms(axioms []owl.Axiom) *Reasoner {
	return New(inference.Build(axioms))
}

// DirectSuperclasses implements reasoner.Reasoner
func (r *Reasoner) DirectSuperclasses(ctx context.Context, c owl.Class) ([]owl.Class, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return reasoner.Direct(c, r.graph.Closure), nil
}
