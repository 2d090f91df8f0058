package main

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func repoRoot(t *testing.T) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot locate test file")
	}
	return filepath.Clean(filepath.Join(filepath.Dir(file), "..", ".."))
}

func ontology(t *testing.T, name string) string {
	return filepath.Join(repoRoot(t), "testdata", "ontologies", name)
}

type result struct {
	stdout string
	stderr string
	code   int
}

func run(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := 0
	runMain(append([]string{"ontoexplain"}, args...), strings.NewReader(stdin), &stdout, &stderr, func(c int) { code = c })
	return result{stdout: stdout.String(), stderr: stderr.String(), code: code}
}

func TestVersion(t *testing.T) {
	res := run(t, "", "version")
	assert.Equal(t, 0, res.code)
	assert.Equal(t, "ontoexplain dev (commit unknown)\n", res.stdout)
}

func TestExploreTiny(t *testing.T) {
	res := run(t, "2\n1\n1\nq\n", "--no-color", "-o", ontology(t, "tiny.yaml"))
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "1. Food\n2. Margherita\n3. Pizza\n")
	assert.Contains(t, res.stdout, "Why can we say that Every Margherita is a Pizza? \nBecause:\nEvery Margherita is a Pizza\n")
	assert.Contains(t, res.stdout, "Press 'b' to go back, or 'r' to start again, or 'q' to quit\n")
}

func TestExploreSubcommandWithDatalog(t *testing.T) {
	res := run(t, "2\n1\nq\n", "explore", "--no-color", "--reasoner", "datalog", "-o", ontology(t, "tiny.yaml"))
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "Superclasses of Margherita (in alphabetical order):\n1. Pizza\n")
}

func TestExplainOneShot(t *testing.T) {
	res := run(t, "", "explain", "--no-color", "-o", ontology(t, "pizza.yaml"),
		"--sub", "Margherita", "--super", "Pizza", "--full")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "Chosen explanation: 2. Full Set of explanations\n")
	assert.Contains(t, res.stdout, "1. Every Margherita is a NamedPizza\n2. Every NamedPizza is a Pizza\n3. Every Margherita is a VegetarianPizza\n")
}

func TestExplainUnknownClass(t *testing.T) {
	res := run(t, "", "explain", "-o", ontology(t, "pizza.yaml"), "--sub", "Calzone", "--super", "Pizza")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "Calzone")
}

func TestExplainRequiresClasses(t *testing.T) {
	res := run(t, "", "explain", "-o", ontology(t, "pizza.yaml"))
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "--sub and --super are required")
}

func TestRender(t *testing.T) {
	res := run(t, "", "render", "--no-color", "-o", ontology(t, "tiny.yaml"))
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "Every Margherita is a Pizza\nEvery Pizza is a Food\n", res.stdout)
}

func TestClasses(t *testing.T) {
	res := run(t, "", "classes", "-o", ontology(t, "tiny.yaml"))
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "1. Food\n2. Margherita\n3. Pizza\n", res.stdout)

	res = run(t, "", "classes", "-o", ontology(t, "pizza.yaml"), "--superclasses-of", "Margherita")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "1. NamedPizza\n2. VegetarianPizza\n", res.stdout)
}

func TestMissingOntologyExitsOne(t *testing.T) {
	res := run(t, "", "--no-color", "-o", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "missing.yaml")
	assert.NotContains(t, res.stdout, "Classes in the ontology")
}

func TestNoSourceIsInvalidConfig(t *testing.T) {
	res := run(t, "", "classes")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "invalid configuration")
}

func TestImportThenExplainFromDatabase(t *testing.T) {
	db := filepath.Join(t.TempDir(), "onto.db")

	res := run(t, "", "import", "--db", db, ontology(t, "tiny.yaml"), ontology(t, "pizza.yaml"))
	require.Equal(t, 0, res.code, res.stderr)
	lines := strings.Split(strings.TrimSpace(res.stdout), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "http://example.org/tiny")
	assert.Contains(t, lines[1], "(18 classes, 32 axioms)")

	res = run(t, "", "explain", "--no-color", "--db", db, "--ontology-iri", "http://example.org/tiny",
		"--sub", "Margherita", "--super", "Food")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "Why can we say that Every Margherita is a Food? \nBecause:\nEvery Margherita is a Pizza\nEvery Pizza is a Food\n")
}

func TestImportRequiresDatabase(t *testing.T) {
	res := run(t, "", "import", ontology(t, "tiny.yaml"))
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "--db is required")
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "ontoexplain.yaml")
	content := "ontology: " + ontology(t, "tiny.yaml") + "\nreasoner: datalog\ncolor: false\nlog:\n  level: debug\n  format: json\n"
	require.NoError(t, os.WriteFile(cfg, []byte(content), 0644))

	res := run(t, "", "classes", "--config", cfg)
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "1. Food\n2. Margherita\n3. Pizza\n", res.stdout)
	assert.Contains(t, res.stderr, `"msg":"ontology loaded"`)
}
