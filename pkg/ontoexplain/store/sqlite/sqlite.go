package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/cognicore/ontoexplain/pkg/ontoexplain/document"
	"github.com/cognicore/ontoexplain/pkg/ontoexplain/internalerr"
	"github.com/cognicore/ontoexplain/pkg/ontoexplain/owl"
	"github.com/cognicore/ontoexplain/pkg/ontoexplain/store"
)

const (
	declClass      = "class"
	declProperty   = "objectProperty"
	declIndividual = "individual"
)

// sqliteStore implements store.Catalogue using SQLite
type sqliteStore struct {
	db  *sql.DB
	ids *store.IDSource

	mu       sync.RWMutex
	selected owl.IRI // empty: most recent import
}

// Open opens a SQLite catalogue with WAL mode enabled.
func Open(ctx context.Context, path string) (store.Catalogue, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", internalerr.ErrStoreUnavailable, err)
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %v", internalerr.ErrStoreUnavailable, err)
	}

	// Enable foreign keys
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %v", internalerr.ErrStoreUnavailable, err)
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: init schema: %v", internalerr.ErrStoreUnavailable, err)
	}

	return &sqliteStore{db: db, ids: store.NewIDSource()}, nil
}

// Close closes the database connection
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// initSchema creates tables if they don't exist
func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS ontologies (
	id TEXT PRIMARY KEY,
	iri TEXT UNIQUE NOT NULL,
	source TEXT,
	imported_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS declarations (
	ontology_id TEXT NOT NULL,
	kind TEXT NOT NULL,
	iri TEXT NOT NULL,
	position INTEGER NOT NULL,
	PRIMARY KEY(ontology_id, kind, position),
	FOREIGN KEY(ontology_id) REFERENCES ontologies(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS axioms (
	ontology_id TEXT NOT NULL,
	position INTEGER NOT NULL,
	kind TEXT NOT NULL,
	body TEXT NOT NULL,
	PRIMARY KEY(ontology_id, position),
	FOREIGN KEY(ontology_id) REFERENCES ontologies(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_axioms_kind ON axioms(ontology_id, kind);
`

	_, err := db.ExecContext(ctx, schema)
	return err
}

// axiomKind is the functional-syntax constructor name, e.g. "SubClassOf"
func axiomKind(ax owl.Axiom) string {
	kind, _, _ := strings.Cut(ax.Key(), "(")
	return kind
}

// Import stores o, replacing any ontology with the same IRI, and selects it
func (s *sqliteStore) Import(ctx context.Context, o *owl.Ontology, source string) (string, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM ontologies WHERE iri = ?`, string(o.IRI())); err != nil {
		return "", fmt.Errorf("replace %s: %w", o.IRI(), err)
	}

	id := s.ids.Next()
	_, err = tx.ExecContext(ctx,
		`INSERT INTO ontologies (id, iri, source, imported_at) VALUES (?, ?, ?, ?)`,
		id, string(o.IRI()), source, time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return "", fmt.Errorf("insert ontology: %w", err)
	}

	if err := insertDeclarations(ctx, tx, id, o); err != nil {
		return "", err
	}
	if err := insertAxioms(ctx, tx, id, o.Axioms()); err != nil {
		return "", err
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}

	s.mu.Lock()
	s.selected = o.IRI()
	s.mu.Unlock()
	return id, nil
}

func insertDeclarations(ctx context.Context, tx *sql.Tx, id string, o *owl.Ontology) error {
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO declarations (ontology_id, kind, iri, position) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	insert := func(kind string, iris []owl.IRI) error {
		for i, iri := range iris {
			if _, err := stmt.ExecContext(ctx, id, kind, string(iri), i); err != nil {
				return fmt.Errorf("insert %s %s: %w", kind, iri, err)
			}
		}
		return nil
	}

	var classes, props, indivs []owl.IRI
	for _, c := range o.Classes() {
		classes = append(classes, c.IRI)
	}
	for _, p := range o.ObjectProperties() {
		props = append(props, p.IRI)
	}
	for _, ind := range o.Individuals() {
		indivs = append(indivs, ind.IRI)
	}

	if err := insert(declClass, classes); err != nil {
		return err
	}
	if err := insert(declProperty, props); err != nil {
		return err
	}
	return insert(declIndividual, indivs)
}

func insertAxioms(ctx context.Context, tx *sql.Tx, id string, axioms []owl.Axiom) error {
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO axioms (ontology_id, position, kind, body) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, ax := range axioms {
		body, err := document.EncodeAxiom(ax)
		if err != nil {
			return fmt.Errorf("encode axiom %d: %w", i, err)
		}
		if _, err := stmt.ExecContext(ctx, id, i, axiomKind(ax), string(body)); err != nil {
			return fmt.Errorf("insert axiom %d: %w", i, err)
		}
	}
	return nil
}

// Use selects the stored ontology with the given IRI
func (s *sqliteStore) Use(ctx context.Context, iri owl.IRI) error {
	var id string
	err := s.db.QueryRowContext(ctx, `SELECT id FROM ontologies WHERE iri = ?`, string(iri)).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("ontology %s: %w", iri, internalerr.ErrNotFound)
	}
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.selected = iri
	s.mu.Unlock()
	return nil
}

// List returns every stored ontology, most recent import first
func (s *sqliteStore) List(ctx context.Context) ([]store.Entry, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT o.id, o.iri, o.source, o.imported_at,
	(SELECT COUNT(*) FROM declarations d WHERE d.ontology_id = o.id AND d.kind = ?),
	(SELECT COUNT(*) FROM axioms a WHERE a.ontology_id = o.id)
FROM ontologies o
ORDER BY o.id DESC`, declClass)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []store.Entry
	for rows.Next() {
		var (
			e          store.Entry
			iri        string
			source     sql.NullString
			importedAt string
		)
		if err := rows.Scan(&e.ID, &iri, &source, &importedAt, &e.Classes, &e.Axioms); err != nil {
			return nil, err
		}
		e.IRI = owl.IRI(iri)
		e.Source = source.String
		if t, err := time.Parse(time.RFC3339Nano, importedAt); err == nil {
			e.ImportedAt = t
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// selectedID resolves the selected ontology to its row ID
func (s *sqliteStore) selectedID(ctx context.Context) (string, owl.IRI, error) {
	s.mu.RLock()
	selected := s.selected
	s.mu.RUnlock()

	var (
		id  string
		iri string
		err error
	)
	if selected == "" {
		err = s.db.QueryRowContext(ctx, `SELECT id, iri FROM ontologies ORDER BY id DESC LIMIT 1`).Scan(&id, &iri)
	} else {
		err = s.db.QueryRowContext(ctx, `SELECT id, iri FROM ontologies WHERE iri = ?`, string(selected)).Scan(&id, &iri)
	}
	if errors.Is(err, sql.ErrNoRows) {
		return "", "", fmt.Errorf("no ontology stored: %w", internalerr.ErrNotFound)
	}
	if err != nil {
		return "", "", err
	}
	return id, owl.IRI(iri), nil
}

// Classes returns the class signature of the selected ontology
func (s *sqliteStore) Classes(ctx context.Context) ([]owl.Class, error) {
	id, _, err := s.selectedID(ctx)
	if err != nil {
		return nil, err
	}
	iris, err := s.loadDeclarations(ctx, id, declClass)
	if err != nil {
		return nil, err
	}
	out := make([]owl.Class, len(iris))
	for i, iri := range iris {
		out[i] = owl.Class{IRI: iri}
	}
	return out, nil
}

// Axioms returns the axioms of the selected ontology in document order
func (s *sqliteStore) Axioms(ctx context.Context) ([]owl.Axiom, error) {
	id, _, err := s.selectedID(ctx)
	if err != nil {
		return nil, err
	}
	return s.loadAxioms(ctx, id)
}

// Ontology rebuilds the selected ontology
func (s *sqliteStore) Ontology(ctx context.Context) (*owl.Ontology, error) {
	id, iri, err := s.selectedID(ctx)
	if err != nil {
		return nil, err
	}

	var decl owl.Declarations
	classes, err := s.loadDeclarations(ctx, id, declClass)
	if err != nil {
		return nil, err
	}
	for _, c := range classes {
		decl.Classes = append(decl.Classes, owl.Class{IRI: c})
	}
	props, err := s.loadDeclarations(ctx, id, declProperty)
	if err != nil {
		return nil, err
	}
	for _, p := range props {
		decl.ObjectProperties = append(decl.ObjectProperties, owl.ObjectProperty{IRI: p})
	}
	indivs, err := s.loadDeclarations(ctx, id, declIndividual)
	if err != nil {
		return nil, err
	}
	for _, ind := range indivs {
		decl.Individuals = append(decl.Individuals, owl.Individual{IRI: ind})
	}

	axioms, err := s.loadAxioms(ctx, id)
	if err != nil {
		return nil, err
	}
	return owl.NewOntology(iri, decl, axioms), nil
}

func (s *sqliteStore) loadDeclarations(ctx context.Context, id, kind string) ([]owl.IRI, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT iri FROM declarations WHERE ontology_id = ? AND kind = ? ORDER BY position`, id, kind)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []owl.IRI
	for rows.Next() {
		var iri string
		if err := rows.Scan(&iri); err != nil {
			return nil, err
		}
		out = append(out, owl.IRI(iri))
	}
	return out, rows.Err()
}

func (s *sqliteStore) loadAxioms(ctx context.Context, id string) ([]owl.Axiom, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT position, body FROM axioms WHERE ontology_id = ? ORDER BY position`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []owl.Axiom
	for rows.Next() {
		var (
			pos  int
			body string
		)
		if err := rows.Scan(&pos, &body); err != nil {
			return nil, err
		}
		ax, err := document.DecodeAxiom([]byte(body))
		if err != nil {
			return nil, fmt.Errorf("axiom %d: %w", pos, err)
		}
		out = append(out, ax)
	}
	return out, rows.Err()
}
