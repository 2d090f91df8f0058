package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/ontoexplain/pkg/ontoexplain/explain"
	"github.com/cognicore/ontoexplain/pkg/ontoexplain/internalerr"
)

// Reasoner names
const (
	ReasonerStructural = "structural"
	ReasonerDatalog    = "datalog"
)

// File is the explorer configuration file
type File struct {
	// Ontology is a YAML ontology document
	Ontology string `yaml:"ontology"`
	// Database is a SQLite catalogue. With Ontology set the document is imported
	// into it first.
	Database string `yaml:"database"`
	// OntologyIRI selects a stored ontology; empty means the latest import
	OntologyIRI string  `yaml:"ontology_iri"`
	Reasoner    string  `yaml:"reasoner"`
	Explain     Explain `yaml:"explain"`
	Log         Log     `yaml:"log"`
	Color       bool    `yaml:"color"`
}

// Explain configures justification search
type Explain struct {
	MaxJustifications int `yaml:"max_justifications"`
}

// Log configures logging
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the configuration used when no file is given
func Default() File {
	return File{
		Reasoner: ReasonerStructural,
		Explain:  Explain{MaxJustifications: explain.DefaultMaxJustifications},
		Log:      Log{Level: "warn", Format: "console"},
		Color:    true,
	}
}

// Load reads a configuration file over the defaults. Relative paths in the
// file are resolved against the file's directory.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, err
	}

	f := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return File{}, fmt.Errorf("%w: %s: %v", internalerr.ErrInvalidConfig, path, err)
	}

	dir := filepath.Dir(path)
	f.Ontology = resolve(dir, f.Ontology)
	f.Database = resolve(dir, f.Database)
	return f, nil
}

func resolve(dir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}

// Validate checks the configuration
func (f File) Validate() error {
	if f.Ontology == "" && f.Database == "" {
		return fmt.Errorf("%w: an ontology document or a database is required", internalerr.ErrInvalidConfig)
	}
	switch f.Reasoner {
	case ReasonerStructural, ReasonerDatalog:
	default:
		return fmt.Errorf("%w: unknown reasoner %q", internalerr.ErrInvalidConfig, f.Reasoner)
	}
	if f.Explain.MaxJustifications < 0 {
		return fmt.Errorf("%w: explain.max_justifications must not be negative", internalerr.ErrInvalidConfig)
	}
	switch f.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log level %q", internalerr.ErrInvalidConfig, f.Log.Level)
	}
	switch f.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("%w: unknown log format %q", internalerr.ErrInvalidConfig, f.Log.Format)
	}
	return nil
}
