package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	errorlist "github.com/pixil98/go-errors"
)

// History is the on-disk shape of the ledger file.
type History struct {
	SavedNames []Entry `json:"saved_names"`
}

// Validate reports every entry with an empty name or a malformed timestamp.
func (h History) Validate() error {
	el := errorlist.NewErrorList()
	for i, e := range h.SavedNames {
		if strings.TrimSpace(e.Name) == "" {
			el.Add(fmt.Errorf("saved_names[%d]: %w", i, ErrEmptyName))
		}
		if !validTimestamp(e.Timestamp) {
			el.Add(fmt.Errorf("saved_names[%d]: timestamp %q is not ISO 8601", i, e.Timestamp))
		}
	}
	return el.Err()
}

// timestampLayouts accepts RFC 3339 and local times without an offset, such
// as "2025-03-01T14:22:05.123456".
var timestampLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05.999999999"}

func validTimestamp(ts string) bool {
	for _, layout := range timestampLayouts {
		if _, err := time.Parse(layout, ts); err == nil {
			return true
		}
	}
	return false
}

// FileRepository stores the ledger as a single JSON file that is rewritten in
// full on every append.
type FileRepository struct {
	path    string
	entries []Entry
	logger  *slog.Logger
}

var _ Repository = (*FileRepository)(nil)

// NewFileRepository creates a repository for the JSON file at path.
func NewFileRepository(path string, logger *slog.Logger) *FileRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileRepository{path: path, logger: logger.With("path", path)}
}

// Load reads the file. A missing or unparsable file starts an empty ledger,
// which is written back immediately.
func (r *FileRepository) Load(ctx context.Context) ([]Entry, error) {
	data, err := os.ReadFile(r.path)
	if err == nil {
		var doc History
		if err = json.Unmarshal(data, &doc); err == nil {
			r.entries = doc.SavedNames
			r.logger.Info("Loaded saved names", "count", len(r.entries))
			return append([]Entry(nil), r.entries...), nil
		}
	}

	if errors.Is(err, fs.ErrNotExist) {
		r.logger.Info("Saved names file not found, starting empty")
	} else {
		r.logger.Warn("Failed to load saved names, starting empty", "error", err)
	}
	r.entries = nil
	if err := r.write(); err != nil {
		r.logger.Error("Failed to create saved names file", "error", err)
	}
	return nil, nil
}

// Append adds entry and rewrites the file.
func (r *FileRepository) Append(ctx context.Context, entry Entry) error {
	r.entries = append(r.entries, entry)
	return r.write()
}

func (r *FileRepository) Close() error {
	return nil
}

func (r *FileRepository) write() error {
	doc := History{SavedNames: r.entries}
	if doc.SavedNames == nil {
		doc.SavedNames = []Entry{}
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal saved names: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", r.path, err)
	}
	return nil
}
