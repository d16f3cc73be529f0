// Package names generates fantasy character names by joining a random prefix
// and suffix from a per-race table.
package names

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jwebster45206/ttrpg-tools/pkg/random"
	"github.com/jwebster45206/ttrpg-tools/pkg/wordtable"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	MinCount     = 1
	MaxCount     = 10
	DefaultCount = 5
)

var (
	ErrRaceNotFound = errors.New("race not found")
	ErrEmptyParts   = errors.New("both prefixes and suffixes are required")
	ErrEmptyRace    = errors.New("race name is required")
)

// UnknownRaceError is returned when a name is requested for a race that is
// not in the table. The message lists the races that are.
type UnknownRaceError struct {
	Race  string
	Known []string
}

func (e *UnknownRaceError) Error() string {
	return fmt.Sprintf("Sorry, '%s' is not a recognized race. Available races: %s", e.Race, strings.Join(e.Known, ", "))
}

// Generator produces names from a race table it owns.
type Generator struct {
	store  *wordtable.Store[Races]
	races  Races
	src    random.Source
	logger *slog.Logger
}

// NewGenerator loads the race table at path, creating it with the default
// races when absent or unreadable.
func NewGenerator(path string, src random.Source, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	store := wordtable.New(path, DefaultRaces, logger)
	races, outcome, err := store.Load()
	if err != nil {
		logger.Error("Failed to persist default races", "path", path, "error", err)
	}
	if races == nil {
		races = Races{}
	}
	logger.Info("Race table ready", "path", path, "outcome", outcome.String(), "count", len(races))

	return &Generator{
		store:  store,
		races:  races,
		src:    src,
		logger: logger,
	}
}

// Races returns the known race keys in sorted order.
func (g *Generator) Races() []string {
	return random.SortedKeys(g.races)
}

// Race returns the fragments for race, matched case-insensitively.
func (g *Generator) Race(race string) (Race, bool) {
	r, ok := g.races[normalize(race)]
	return r, ok
}

// Exists reports whether race is in the table.
func (g *Generator) Exists(race string) bool {
	_, ok := g.Race(race)
	return ok
}

// GenerateName returns a random prefix joined to a random suffix for race.
func (g *Generator) GenerateName(race string) (string, error) {
	key := normalize(race)
	parts, ok := g.races[key]
	if !ok {
		return "", &UnknownRaceError{Race: key, Known: g.Races()}
	}

	prefix, err := random.Choice(g.src, parts.Prefixes)
	if err != nil {
		return "", fmt.Errorf("race '%s' has no prefixes: %w", key, err)
	}
	suffix, err := random.Choice(g.src, parts.Suffixes)
	if err != nil {
		return "", fmt.Errorf("race '%s' has no suffixes: %w", key, err)
	}
	return prefix + suffix, nil
}

// GenerateMultiple returns count independently generated names. Duplicates
// are possible. A count below one yields no names.
func (g *Generator) GenerateMultiple(race string, count int) ([]string, error) {
	names := []string{}
	for i := 0; i < count; i++ {
		name, err := g.GenerateName(race)
		if err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, nil
}

// AddRace creates or overwrites race with the given fragments and persists
// the table. Blank fragments are dropped.
func (g *Generator) AddRace(race string, prefixes, suffixes []string) error {
	key := normalize(race)
	if key == "" {
		return ErrEmptyRace
	}
	prefixes = wordtable.CleanItems(prefixes)
	suffixes = wordtable.CleanItems(suffixes)
	if len(prefixes) == 0 || len(suffixes) == 0 {
		return ErrEmptyParts
	}

	g.races[key] = Race{Prefixes: prefixes, Suffixes: suffixes}
	g.logger.Info("Added race", "race", key, "prefixes", len(prefixes), "suffixes", len(suffixes))
	return g.save()
}

// DeleteRace removes race and persists the table.
func (g *Generator) DeleteRace(race string) error {
	key := normalize(race)
	if _, ok := g.races[key]; !ok {
		return fmt.Errorf("race '%s': %w", key, ErrRaceNotFound)
	}
	delete(g.races, key)
	g.logger.Info("Deleted race", "race", key)
	return g.save()
}

// Describe renders every race with its fragments for display.
func (g *Generator) Describe() string {
	if len(g.races) == 0 {
		return "No races available."
	}

	caser := cases.Title(language.English)
	var b strings.Builder
	b.WriteString("Available Races:\n")
	b.WriteString("----------------\n")
	for _, key := range g.Races() {
		race := g.races[key]
		fmt.Fprintf(&b, "\n%s:\n", caser.String(key))
		fmt.Fprintf(&b, "  Prefixes (%d): %s\n", len(race.Prefixes), strings.Join(race.Prefixes, ", "))
		fmt.Fprintf(&b, "  Suffixes (%d): %s\n", len(race.Suffixes), strings.Join(race.Suffixes, ", "))
	}
	return b.String()
}

// DisplayName title-cases a race key for headings.
func DisplayName(race string) string {
	return cases.Title(language.English).String(normalize(race))
}

// ClampCount limits a requested name count to [MinCount, MaxCount].
func ClampCount(n int) int {
	return max(MinCount, min(MaxCount, n))
}

func (g *Generator) save() error {
	if err := g.store.Save(g.races); err != nil {
		return fmt.Errorf("changes kept for this session but not saved: %w", err)
	}
	return nil
}

func normalize(race string) string {
	return strings.ToLower(strings.TrimSpace(race))
}
