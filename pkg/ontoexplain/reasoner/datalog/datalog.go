// Package datalog classifies with Google Mangle. Told edges become facts and
// the subsumption closure is a recursive rule evaluated to fixpoint once.
package datalog

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/google/mangle/analysis"
	"github.com/google/mangle/ast"
	_ "github.com/google/mangle/builtin"
	mengine "github.com/google/mangle/engine"
	"github.com/google/mangle/factstore"
	"github.com/google/mangle/parse"
	"go.uber.org/zap"

	"github.com/cognicore/ontoexplain/pkg/ontoexplain/inference"
	"github.com/cognicore/ontoexplain/pkg/ontoexplain/owl"
	"github.com/cognicore/ontoexplain/pkg/ontoexplain/reasoner"
)

const rules = `
subsumes(X, Y) :- told(X, Y).
subsumes(X, Z) :- told(X, Y), subsumes(Y, Z).
`

// Reasoner answers from the evaluated subsumes/2 relation
type Reasoner struct {
	subsumers map[owl.IRI][]owl.Class
}

var _ reasoner.Reasoner = (*Reasoner)(nil)

// New compiles the graph's told edges into a Mangle program and evaluates it.
func New(g *inference.Graph, logger *zap.Logger) (*Reasoner, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &Reasoner{subsumers: make(map[owl.IRI][]owl.Class)}

	edges := g.Edges()
	if len(edges) == 0 {
		// told/2 would be undefined; nothing to derive
		return r, nil
	}

	var src strings.Builder
	for _, e := range edges {
		fmt.Fprintf(&src, "told(%s, %s).\n", strconv.Quote(string(e.From.IRI)), strconv.Quote(string(e.To.IRI)))
	}
	src.WriteString(rules)

	unit, err := parse.Unit(strings.NewReader(src.String()))
	if err != nil {
		return nil, fmt.Errorf("parse program: %w", err)
	}
	programInfo, err := analysis.AnalyzeOneUnit(unit, nil)
	if err != nil {
		return nil, fmt.Errorf("analyze program: %w", err)
	}

	var store factstore.FactStore = factstore.NewSimpleInMemoryStore()
	stats, err := mengine.EvalProgramWithStats(programInfo, store)
	if err != nil {
		return nil, fmt.Errorf("evaluate program: %w", err)
	}
	logger.Debug("datalog closure evaluated",
		zap.Int("told", len(edges)),
		zap.Any("stats", stats),
	)

	sym := ast.PredicateSym{Symbol: "subsumes", Arity: 2}
	err = store.GetFacts(ast.NewQuery(sym), func(atom ast.Atom) error {
		from, err := stringArg(atom, 0)
		if err != nil {
			return err
		}
		to, err := stringArg(atom, 1)
		if err != nil {
			return err
		}
		r.subsumers[owl.IRI(from)] = append(r.subsumers[owl.IRI(from)], owl.Class{IRI: owl.IRI(to)})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("read subsumes: %w", err)
	}

	// Fact store iteration order is unspecified
	for iri := range r.subsumers {
		cs := r.subsumers[iri]
		sort.Slice(cs, func(i, j int) bool { return cs[i].IRI < cs[j].IRI })
	}
	return r, nil
}

// FromAxioms builds the graph and evaluates it
func FromAxioms(axioms []owl.Axiom, logger *zap.Logger) (*Reasoner, error) {
	return New(inference.Build(axioms), logger)
}

func stringArg(atom ast.Atom, i int) (string, error) {
	if i >= len(atom.Args) {
		return "", fmt.Errorf("subsumes: missing argument %d", i)
	}
	c, ok := atom.Args[i].(ast.Constant)
	if !ok || c.Type != ast.StringType {
		return "", fmt.Errorf("subsumes: argument %d is %v, want string", i, atom.Args[i])
	}
	return c.Symbol, nil
}

// Subsumers returns every derived subsumer of c
func (r *Reasoner) Subsumers(c owl.Class) []owl.Class {
	return append([]owl.Class(nil), r.subsumers[c.IRI]...)
}

// DirectSuperclasses implements reasoner.Reasoner
func (r *Reasoner) DirectSuperclasses(ctx context.Context, c owl.Class) ([]owl.Class, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return reasoner.Direct(c, r.Subsumers), nil
}
