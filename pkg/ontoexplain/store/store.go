package store

import (
	"context"
	"crypto/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/cognicore/ontoexplain/pkg/ontoexplain/owl"
)

// Store is the read side the explorer needs from an ontology source
type Store interface {
	Close() error

	// Classes returns the class signature of the selected ontology
	Classes(ctx context.Context) ([]owl.Class, error)
	// Axioms returns the axioms of the selected ontology in document order
	Axioms(ctx context.Context) ([]owl.Axiom, error)
	// Ontology returns the selected ontology as a whole
	Ontology(ctx context.Context) (*owl.Ontology, error)
}

// Catalogue is a Store holding several ontologies, one of which is selected
type Catalogue interface {
	Store

	// Import stores o, replacing any stored ontology with the same IRI, and
	// selects it. Returns the new entry ID.
	Import(ctx context.Context, o *owl.Ontology, source string) (string, error)
	// Use selects the stored ontology with the given IRI
	Use(ctx context.Context, iri owl.IRI) error
	// List returns every stored ontology, most recent import first
	List(ctx context.Context) ([]Entry, error)
}

// Entry describes one stored ontology
type Entry struct {
	ID         string
	IRI        owl.IRI
	Source     string
	ImportedAt time.Time
	Classes    int
	Axioms     int
}

// IDSource hands out monotonic ULIDs for catalogue entries
type IDSource struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

// NewIDSource creates an ID source
func NewIDSource() *IDSource {
	return &IDSource{entropy: ulid.Monotonic(rand.Reader, 0)}
}

// Next returns a new ID
func (s *IDSource) Next() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ulid.MustNew(ulid.Now(), s.entropy).String()
}
