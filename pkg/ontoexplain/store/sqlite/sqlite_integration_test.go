package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/cognicore/ontoexplain/pkg/ontoexplain/document"
	"github.com/cognicore/ontoexplain/pkg/ontoexplain/internalerr"
	"github.com/cognicore/ontoexplain/pkg/ontoexplain/owl"
)

func fixture(t *testing.T, name string) *owl.Ontology {
	t.Helper()
	o, err := document.LoadFile(filepath.Join("..", "..", "..", "..", "testdata", "ontologies", name))
	if err != nil {
		t.Fatalf("LoadFile(%s): %v", name, err)
	}
	return o
}

func open(t *testing.T) (context.Context, string) {
	t.Helper()
	return context.Background(), filepath.Join(t.TempDir(), "catalogue.db")
}

// TestSQLiteImportRoundTrip stores the pizza ontology and reads it back
func TestSQLiteImportRoundTrip(t *testing.T) {
	ctx, dbPath := open(t)
	st, err := Open(ctx, dbPath)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer st.Close()

	pizza := fixture(t, "pizza.yaml")
	id, err := st.Import(ctx, pizza, "pizza.yaml")
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if len(id) != 26 {
		t.Errorf("expected a ULID, got %q", id)
	}

	back, err := st.Ontology(ctx)
	if err != nil {
		t.Fatalf("Ontology: %v", err)
	}
	if back.IRI() != pizza.IRI() {
		t.Errorf("IRI mismatch: got %s, want %s", back.IRI(), pizza.IRI())
	}

	wantAx := pizza.Axioms()
	gotAx := back.Axioms()
	if len(gotAx) != len(wantAx) {
		t.Fatalf("expected %d axioms, got %d", len(wantAx), len(gotAx))
	}
	for i := range wantAx {
		if gotAx[i].Key() != wantAx[i].Key() {
			t.Errorf("axiom %d: got %s, want %s", i, gotAx[i].Key(), wantAx[i].Key())
		}
	}

	classes, err := st.Classes(ctx)
	if err != nil {
		t.Fatalf("Classes: %v", err)
	}
	if len(classes) != len(pizza.Classes()) {
		t.Errorf("expected %d classes, got %d", len(pizza.Classes()), len(classes))
	}
	for i, c := range pizza.Classes() {
		if classes[i] != c {
			t.Errorf("class %d: got %s, want %s", i, classes[i].IRI, c.IRI)
		}
	}

	if got, want := len(back.Individuals()), len(pizza.Individuals()); got != want {
		t.Errorf("expected %d individuals, got %d", want, got)
	}
	if got, want := len(back.ObjectProperties()), len(pizza.ObjectProperties()); got != want {
		t.Errorf("expected %d properties, got %d", want, got)
	}
}

// TestSQLitePersistsAcrossOpen reopens the database file
func TestSQLitePersistsAcrossOpen(t *testing.T) {
	ctx, dbPath := open(t)
	st, err := Open(ctx, dbPath)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if _, err := st.Import(ctx, fixture(t, "tiny.yaml"), "tiny.yaml"); err != nil {
		t.Fatalf("Import: %v", err)
	}
	st.Close()

	st, err = Open(ctx, dbPath)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer st.Close()

	axioms, err := st.Axioms(ctx)
	if err != nil {
		t.Fatalf("Axioms: %v", err)
	}
	if len(axioms) != 2 {
		t.Errorf("expected 2 axioms, got %d", len(axioms))
	}
}

// TestSQLiteCatalogue covers selection, replacement and listing
func TestSQLiteCatalogue(t *testing.T) {
	ctx, dbPath := open(t)
	st, err := Open(ctx, dbPath)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer st.Close()

	tiny := fixture(t, "tiny.yaml")
	pizza := fixture(t, "pizza.yaml")
	if _, err := st.Import(ctx, tiny, "tiny.yaml"); err != nil {
		t.Fatalf("Import tiny: %v", err)
	}
	if _, err := st.Import(ctx, pizza, "pizza.yaml"); err != nil {
		t.Fatalf("Import pizza: %v", err)
	}

	o, _ := st.Ontology(ctx)
	if o.IRI() != pizza.IRI() {
		t.Errorf("latest import should be selected, got %s", o.IRI())
	}

	if err := st.Use(ctx, tiny.IRI()); err != nil {
		t.Fatalf("Use: %v", err)
	}
	classes, _ := st.Classes(ctx)
	if len(classes) != 3 {
		t.Errorf("expected tiny's 3 classes, got %d", len(classes))
	}

	if err := st.Use(ctx, "http://example.org/missing"); !errors.Is(err, internalerr.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	// Re-importing replaces the stored copy
	if _, err := st.Import(ctx, tiny, "tiny-again.yaml"); err != nil {
		t.Fatalf("re-import: %v", err)
	}
	entries, err := st.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].IRI != tiny.IRI() || entries[0].Source != "tiny-again.yaml" {
		t.Errorf("unexpected first entry %+v", entries[0])
	}
	if entries[0].Classes != 3 || entries[0].Axioms != 2 {
		t.Errorf("unexpected counts %+v", entries[0])
	}
	if entries[0].ImportedAt.IsZero() {
		t.Error("ImportedAt should be set")
	}
}

// TestSQLiteEmpty reports ErrNotFound until something is imported
func TestSQLiteEmpty(t *testing.T) {
	ctx, dbPath := open(t)
	st, err := Open(ctx, dbPath)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer st.Close()

	if _, err := st.Classes(ctx); !errors.Is(err, internalerr.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	entries, err := st.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected no entries, got %d", len(entries))
	}
}
