// Package wordtable loads and persists the word-part tables that back the
// name, title and location generators.
//
// A table lives in a single JSON file. Loading never fails hard: a missing or
// unparsable file is replaced by the generator's built-in defaults, which are
// written back immediately. Saving always overwrites the whole file.
package wordtable

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

// Outcome describes how a table came to be in memory after Load.
type Outcome int

const (
	LoadedFromFile Outcome = iota
	CreatedDefault
	RecoveredDefault
)

func (o Outcome) String() string {
	switch o {
	case LoadedFromFile:
		return "loaded from file"
	case CreatedDefault:
		return "created default"
	case RecoveredDefault:
		return "recovered default"
	default:
		return "unknown"
	}
}

// Validator is implemented by tables that can report missing or empty
// categories.
type Validator interface {
	Validate() error
}

// Store reads and writes one table of type T at a fixed path.
type Store[T any] struct {
	path     string
	defaults func() T
	logger   *slog.Logger
}

// New creates a store for path. defaults must return a fresh table each call.
func New[T any](path string, defaults func() T, logger *slog.Logger) *Store[T] {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store[T]{
		path:     path,
		defaults: defaults,
		logger:   logger.With("path", path),
	}
}

// Path returns the file backing the store.
func (s *Store[T]) Path() string {
	return s.path
}

// Load reads the table from disk, falling back to defaults. The returned
// table is always usable; a non-nil error only reports that the defaults
// could not be persisted.
func (s *Store[T]) Load() (T, Outcome, error) {
	table, err := s.read()
	if err == nil {
		s.logger.Info("Loaded word table")
		if v, ok := any(table).(Validator); ok {
			if verr := v.Validate(); verr != nil {
				s.logger.Warn("Word table has gaps", "error", verr)
			}
		}
		return table, LoadedFromFile, nil
	}

	outcome := RecoveredDefault
	if errors.Is(err, fs.ErrNotExist) {
		outcome = CreatedDefault
		s.logger.Info("Word table not found, creating defaults")
	} else {
		s.logger.Warn("Failed to load word table, using defaults", "error", err)
	}

	table = s.defaults()
	if err := s.Save(table); err != nil {
		return table, outcome, err
	}
	return table, outcome, nil
}

// Save overwrites the file with the full contents of table.
func (s *Store[T]) Save(table T) error {
	data, err := json.MarshalIndent(table, "", "  ")
	if err != nil {
		s.logger.Error("Failed to marshal word table", "error", err)
		return fmt.Errorf("failed to marshal word table: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			s.logger.Error("Failed to create data directory", "error", err)
			return fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		s.logger.Error("Failed to save word table", "error", err)
		return fmt.Errorf("failed to save word table to %s: %w", s.path, err)
	}

	s.logger.Debug("Saved word table")
	return nil
}

func (s *Store[T]) read() (T, error) {
	var table T
	data, err := os.ReadFile(s.path)
	if err != nil {
		return table, err
	}
	if err := json.Unmarshal(data, &table); err != nil {
		return table, fmt.Errorf("failed to parse %s: %w", s.path, err)
	}
	return table, nil
}
