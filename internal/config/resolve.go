package config

import (
	"errors"
	"fmt"
	"log"
	"os"
)

// Result describes how the Effective Configuration was produced. It is what
// the CLI layer needs to surface warnings without re-deriving resolution
// state.
type Result struct {
	// Path is the file the configuration came from; empty when running on
	// compiled-in defaults.
	Path string
	// Migrated is true when this invocation upgraded the file's schema.
	Migrated bool
	// FromVersion is the schema the file declared before migration.
	FromVersion int
	// Report lists settings the migration could not carry forward.
	Report Report
	// PersistErr is set when the migrated document could not be written
	// back (for example a read-only system-wide file). The in-memory
	// configuration is still migrated and usable; the rewrite is retried
	// on the next run.
	PersistErr error
}

// Resolve produces the Effective Configuration for this invocation from the
// standard candidate paths.
func Resolve(logger *log.Logger) (*Config, *Result, error) {
	return ResolveFrom(CandidatePaths(), logger)
}

// ResolveFrom is Resolve with explicit candidate paths.
//
// No file anywhere: the compiled-in defaults, nothing reported. A file that
// exists but does not parse is fatal rather than a silent fallback, since
// defaults could mask what the user wrote. An old schema is migrated,
// persisted back to the same path exactly once, and reported. A schema
// newer than this build refuses to load.
func ResolveFrom(paths []string, logger *log.Logger) (*Config, *Result, error) {
	doc, result, err := ResolveDocument(paths, logger)
	if err != nil {
		return nil, nil, err
	}
	if result.Path == "" && !result.Migrated {
		cfg := Default()
		return &cfg, result, nil
	}

	cfg, err := decode(doc)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", result.Path, err)
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", result.Path, err)
	}
	return cfg, result, nil
}

// ResolveDocument runs locate → parse → migrate → persist and returns the
// raw current-schema document. The config editor works at this level so
// unknown keys in the file survive an edit round trip. When no file exists
// the returned document holds the defaults and Result.Path is empty; the
// editor decides where such a document gets written.
func ResolveDocument(paths []string, logger *log.Logger) (*Document, *Result, error) {
	path, err := Locate(paths)
	if errors.Is(err, ErrNotFound) {
		logger.Printf("no config file found, using built-in defaults")
		return DefaultDocument(), &Result{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w: %v", path, ErrParse, err)
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}

	result := &Result{Path: path, FromVersion: doc.Version}
	switch {
	case doc.Version > CurrentSchemaVersion:
		return nil, nil, fmt.Errorf("%s: %w (file has schema %d, this build understands up to %d)",
			path, ErrUnsupportedSchema, doc.Version, CurrentSchemaVersion)

	case doc.Version < CurrentSchemaVersion:
		report, err := Migrate(doc)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", path, err)
		}
		result.Migrated = true
		result.Report = report
		if err := WriteDocument(path, doc); err != nil {
			result.PersistErr = err
			logger.Printf("could not persist migrated config to %s: %v", path, err)
		} else {
			logger.Printf("migrated %s from schema %d to %d", path, result.FromVersion, doc.Version)
		}
	}
	return doc, result, nil
}
