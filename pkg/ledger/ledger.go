// Package ledger keeps an append-only history of generated names that the
// user chose to save, each with a timestamp and free-form tags.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/jwebster45206/ttrpg-tools/pkg/wordtable"
)

// NoEntries is the report returned when nothing matches.
const NoEntries = "No saved names found."

var (
	ErrEmptyName = errors.New("name is required")
	ErrNoLedger  = errors.New("saving names is not configured")
)

// Entry is one saved name.
type Entry struct {
	Name      string   `json:"name"`
	Timestamp string   `json:"timestamp"` // RFC 3339
	Tags      []string `json:"tags"`
}

// HasTag reports whether tag is one of the entry's tags. Matching is exact
// and case-sensitive.
func (e Entry) HasTag(tag string) bool {
	return slices.Contains(e.Tags, tag)
}

// Repository persists ledger entries.
type Repository interface {
	// Load returns all entries in insertion order.
	Load(ctx context.Context) ([]Entry, error)
	// Append persists one new entry after the existing ones.
	Append(ctx context.Context, entry Entry) error
	Close() error
}

// Ledger is the in-memory history backed by a Repository.
type Ledger struct {
	repo    Repository
	entries []Entry
	now     func() time.Time
	logger  *slog.Logger
}

// Open loads the existing entries from repo.
func Open(ctx context.Context, repo Repository, logger *slog.Logger) (*Ledger, error) {
	if logger == nil {
		logger = slog.Default()
	}
	entries, err := repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load saved names: %w", err)
	}
	logger.Info("Ledger ready", "count", len(entries))
	return &Ledger{
		repo:    repo,
		entries: entries,
		now:     time.Now,
		logger:  logger,
	}, nil
}

// Save appends name with tags and persists it. When persisting fails the
// entry is still kept for the rest of the session.
func (l *Ledger) Save(ctx context.Context, name string, tags []string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmptyName
	}

	entry := Entry{
		Name:      name,
		Timestamp: l.now().Format(time.RFC3339),
		Tags:      wordtable.CleanItems(tags),
	}
	l.entries = append(l.entries, entry)

	if err := l.repo.Append(ctx, entry); err != nil {
		l.logger.Error("Failed to persist saved name", "name", name, "error", err)
		return "", fmt.Errorf("saved for this session only: %w", err)
	}

	l.logger.Info("Saved name", "name", name, "tags", entry.Tags)
	return "Saved location name: " + name, nil
}

// Entries returns the saved entries in insertion order, limited to those
// tagged filterTag when it is not empty.
func (l *Ledger) Entries(filterTag string) []Entry {
	if filterTag == "" {
		return slices.Clone(l.entries)
	}
	var matched []Entry
	for _, e := range l.entries {
		if e.HasTag(filterTag) {
			matched = append(matched, e)
		}
	}
	return matched
}

// List renders the entries returned by Entries as a numbered report.
func (l *Ledger) List(filterTag string) string {
	return Format(l.Entries(filterTag))
}

// Format renders entries as a numbered report.
func Format(entries []Entry) string {
	if len(entries) == 0 {
		return NoEntries
	}

	var b strings.Builder
	b.WriteString("Saved Location Names:\n")
	for i, e := range entries {
		b.WriteString(FormatLine(i+1, e))
		b.WriteString("\n")
	}
	return b.String()
}

// FormatLine renders one numbered entry.
func FormatLine(n int, e Entry) string {
	line := fmt.Sprintf("%d. %s (Saved: %s)", n, e.Name, e.Timestamp)
	if len(e.Tags) > 0 {
		line += fmt.Sprintf(" [Tags: %s]", strings.Join(e.Tags, ", "))
	}
	return line
}

// Close releases the repository.
func (l *Ledger) Close() error {
	return l.repo.Close()
}
