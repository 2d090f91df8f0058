// Package ontoexplain is the explorer facade: it answers the listing,
// classification and explanation questions the dialogue and the one-shot
// commands ask of an ontology.
package ontoexplain

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/cognicore/ontoexplain/pkg/ontoexplain/config"
	"github.com/cognicore/ontoexplain/pkg/ontoexplain/explain"
	"github.com/cognicore/ontoexplain/pkg/ontoexplain/internalerr"
	"github.com/cognicore/ontoexplain/pkg/ontoexplain/navigator"
	"github.com/cognicore/ontoexplain/pkg/ontoexplain/owl"
	"github.com/cognicore/ontoexplain/pkg/ontoexplain/present"
	"github.com/cognicore/ontoexplain/pkg/ontoexplain/reasoner"
	"github.com/cognicore/ontoexplain/pkg/ontoexplain/render"
	"github.com/cognicore/ontoexplain/pkg/ontoexplain/store"
)

// Explorer ties an ontology store to a reasoner and a justification generator
type Explorer struct {
	store     store.Store
	reasoner  reasoner.Reasoner
	generator explain.Generator
	renderer  render.Renderer
	logger    *zap.Logger
}

// Options configures an Explorer
type Options struct {
	Store     store.Store
	Reasoner  reasoner.Reasoner
	Generator explain.Generator
	Logger    *zap.Logger
}

// New creates an Explorer with the given dependencies
func New(opts Options) *Explorer {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Explorer{
		store:     opts.Store,
		reasoner:  opts.Reasoner,
		generator: opts.Generator,
		renderer:  render.New(),
		logger:    logger,
	}
}

// Open loads the components a configuration names and wraps them
func Open(ctx context.Context, f config.File, logger *zap.Logger) (*Explorer, error) {
	comp, err := (&config.Loader{File: f, Logger: logger}).Load(ctx)
	if err != nil {
		return nil, err
	}
	return New(Options{
		Store:     comp.Store,
		Reasoner:  comp.Reasoner,
		Generator: comp.Generator,
		Logger:    logger,
	}), nil
}

// Close releases the store
func (e *Explorer) Close() error {
	return e.store.Close()
}

// Classes returns the class signature in listing order
func (e *Explorer) Classes(ctx context.Context) (present.IndexedList, error) {
	classes, err := e.store.Classes(ctx)
	if err != nil {
		return present.IndexedList{}, err
	}
	return present.NewIndexedList(classes), nil
}

// FindClass resolves a full IRI or a short name to a class of the ontology.
// Declared classes win over the built-in "Thing" shortcut.
func (e *Explorer) FindClass(ctx context.Context, name string) (owl.Class, error) {
	classes, err := e.store.Classes(ctx)
	if err != nil {
		return owl.Class{}, err
	}

	var matches []owl.Class
	for _, c := range classes {
		if string(c.IRI) == name {
			return c, nil
		}
		if c.ShortForm() == name {
			matches = append(matches, c)
		}
	}
	switch len(matches) {
	case 0:
		if owl.IRI(name) == owl.ThingIRI || strings.EqualFold(name, owl.Thing.ShortForm()) {
			return owl.Thing, nil
		}
		return owl.Class{}, fmt.Errorf("class %q: %w", name, internalerr.ErrNotFound)
	case 1:
		return matches[0], nil
	default:
		return owl.Class{}, fmt.Errorf("%w: %q matches %d classes, use the full IRI", internalerr.ErrInvalidSelection, name, len(matches))
	}
}

// DirectSuperclasses lists the direct superclasses of c in listing order
func (e *Explorer) DirectSuperclasses(ctx context.Context, c owl.Class) (present.IndexedList, error) {
	supers, err := e.reasoner.DirectSuperclasses(ctx, c)
	if err != nil {
		return present.IndexedList{}, fmt.Errorf("%w: %v", internalerr.ErrCollaborator, err)
	}
	return present.NewIndexedList(supers), nil
}

// ExplainRequest asks why Sub is subsumed by Super
type ExplainRequest struct {
	Sub   owl.Class
	Super owl.Class
	Full  bool
}

// Explanation is a rendered justification
type Explanation = explain.Explanation

// Explain produces the minimal or the full explanation of a subsumption
func (e *Explorer) Explain(ctx context.Context, req ExplainRequest) (Explanation, error) {
	out, err := explain.Render(ctx, e.generator, e.renderer, req.Sub, req.Super, req.Full)
	if err != nil {
		return Explanation{}, err
	}
	e.logger.Debug("explained",
		zap.String("sub", string(req.Sub.IRI)),
		zap.String("super", string(req.Super.IRI)),
		zap.Bool("full", req.Full),
		zap.Int("axioms", len(out.Axioms)),
	)
	return out, nil
}

// RenderAxioms renders every axiom of the ontology in document order
func (e *Explorer) RenderAxioms(ctx context.Context) ([]string, error) {
	axioms, err := e.store.Axioms(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(axioms))
	for i, ax := range axioms {
		out[i] = e.renderer.Axiom(ax)
	}
	return out, nil
}

// Navigator returns a dialogue over this explorer's collaborators
func (e *Explorer) Navigator(out *present.Presenter) (*navigator.Navigator, error) {
	return navigator.New(navigator.Options{
		Store:     e.store,
		Reasoner:  e.reasoner,
		Generator: e.generator,
		Renderer:  e.renderer,
		Presenter: out,
		Logger:    e.logger,
	})
}
