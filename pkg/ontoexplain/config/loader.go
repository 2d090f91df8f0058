package config

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/cognicore/ontoexplain/pkg/ontoexplain/document"
	"github.com/cognicore/ontoexplain/pkg/ontoexplain/explain"
	"github.com/cognicore/ontoexplain/pkg/ontoexplain/inference"
	"github.com/cognicore/ontoexplain/pkg/ontoexplain/owl"
	"github.com/cognicore/ontoexplain/pkg/ontoexplain/reasoner"
	"github.com/cognicore/ontoexplain/pkg/ontoexplain/reasoner/datalog"
	"github.com/cognicore/ontoexplain/pkg/ontoexplain/reasoner/structural"
	"github.com/cognicore/ontoexplain/pkg/ontoexplain/store"
	"github.com/cognicore/ontoexplain/pkg/ontoexplain/store/memstore"
	"github.com/cognicore/ontoexplain/pkg/ontoexplain/store/sqlite"
)

// Loader turns a configuration into explorer components
type Loader struct {
	File   File
	Logger *zap.Logger
}

// Components holds everything the explorer needs
type Components struct {
	Store     store.Store
	Ontology  *owl.Ontology
	Graph     *inference.Graph
	Reasoner  reasoner.Reasoner
	Generator explain.Generator
}

// Close releases the store
func (c *Components) Close() error {
	if c.Store == nil {
		return nil
	}
	return c.Store.Close()
}

// Load validates the configuration and builds the components
func (l *Loader) Load(ctx context.Context) (*Components, error) {
	if err := l.File.Validate(); err != nil {
		return nil, err
	}
	logger := l.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	st, err := l.openStore(ctx, logger)
	if err != nil {
		return nil, err
	}
	comp := &Components{Store: st}

	o, err := st.Ontology(ctx)
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("load ontology: %w", err)
	}
	comp.Ontology = o
	comp.Graph = inference.Build(o.Axioms())

	switch l.File.Reasoner {
	case ReasonerDatalog:
		r, err := datalog.New(comp.Graph, logger)
		if err != nil {
			st.Close()
			return nil, fmt.Errorf("build datalog reasoner: %w", err)
		}
		comp.Reasoner = r
	default:
		comp.Reasoner = structural.New(comp.Graph)
	}
	comp.Generator = explain.NewGraphGenerator(comp.Graph, l.File.Explain.MaxJustifications)

	logger.Info("ontology loaded",
		zap.String("iri", string(o.IRI())),
		zap.Int("classes", len(o.Classes())),
		zap.Int("axioms", len(o.Axioms())),
		zap.Int("edges", len(comp.Graph.Edges())),
		zap.String("reasoner", l.File.Reasoner),
	)
	return comp, nil
}

func (l *Loader) openStore(ctx context.Context, logger *zap.Logger) (store.Store, error) {
	f := l.File
	if f.Database == "" {
		o, err := document.LoadFile(f.Ontology)
		if err != nil {
			return nil, fmt.Errorf("load ontology document: %w", err)
		}
		return memstore.New(o), nil
	}

	cat, err := sqlite.Open(ctx, f.Database)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if f.Ontology != "" {
		o, err := document.LoadFile(f.Ontology)
		if err != nil {
			cat.Close()
			return nil, fmt.Errorf("load ontology document: %w", err)
		}
		id, err := cat.Import(ctx, o, f.Ontology)
		if err != nil {
			cat.Close()
			return nil, fmt.Errorf("import ontology: %w", err)
		}
		logger.Info("ontology imported", zap.String("id", id), zap.String("iri", string(o.IRI())))
	}
	if f.OntologyIRI != "" {
		if err := cat.Use(ctx, owl.IRI(f.OntologyIRI)); err != nil {
			cat.Close()
			return nil, err
		}
	}
	return cat, nil
}
