package memstore

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/cognicore/ontoexplain/pkg/ontoexplain/internalerr"
	"github.com/cognicore/ontoexplain/pkg/ontoexplain/owl"
	"github.com/cognicore/ontoexplain/pkg/ontoexplain/store"
)

type entry struct {
	meta     store.Entry
	ontology *owl.Ontology
}

// Store is an in-memory implementation of store.Catalogue.
type Store struct {
	mu       sync.RWMutex
	ids      *store.IDSource
	entries  map[owl.IRI]*entry
	selected owl.IRI
	closed   bool
}

var _ store.Catalogue = (*Store)(nil)

// New creates an in-memory store. A non-nil o is imported and selected.
func New(o *owl.Ontology) *Store {
	s := &Store{
		ids:     store.NewIDSource(),
		entries: make(map[owl.IRI]*entry),
	}
	if o != nil {
		s.put(o, "memory")
	}
	return s
}

// Close implements store.Store.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

func (s *Store) put(o *owl.Ontology, source string) string {
	id := s.ids.Next()
	s.entries[o.IRI()] = &entry{
		meta: store.Entry{
			ID:         id,
			IRI:        o.IRI(),
			Source:     source,
			ImportedAt: time.Now().UTC(),
			Classes:    len(o.Classes()),
			Axioms:     len(o.Axioms()),
		},
		ontology: o,
	}
	s.selected = o.IRI()
	return id
}

// Import implements store.Catalogue.
func (s *Store) Import(ctx context.Context, o *owl.Ontology, source string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return "", internalerr.ErrStoreUnavailable
	}
	return s.put(o, source), nil
}

// Use implements store.Catalogue.
func (s *Store) Use(ctx context.Context, iri owl.IRI) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[iri]; !ok {
		return fmt.Errorf("ontology %s: %w", iri, internalerr.ErrNotFound)
	}
	s.selected = iri
	return nil
}

// List implements store.Catalogue.
func (s *Store) List(ctx context.Context) ([]store.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]store.Entry, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, e.meta)
	}
	// ULIDs sort by creation time
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (s *Store) current() (*owl.Ontology, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, internalerr.ErrStoreUnavailable
	}
	e, ok := s.entries[s.selected]
	if !ok {
		return nil, fmt.Errorf("no ontology loaded: %w", internalerr.ErrNotFound)
	}
	return e.ontology, nil
}

// Ontology implements store.Store.
func (s *Store) Ontology(ctx context.Context) (*owl.Ontology, error) {
	return s.current()
}

// Classes implements store.Store.
func (s *Store) Classes(ctx context.Context) ([]owl.Class, error) {
	o, err := s.current()
	if err != nil {
		return nil, err
	}
	return o.Classes(), nil
}

// Axioms implements store.Store.
func (s *Store) Axioms(ctx context.Context) ([]owl.Axiom, error) {
	o, err := s.current()
	if err != nil {
		return nil, err
	}
	return o.Axioms(), nil
}
