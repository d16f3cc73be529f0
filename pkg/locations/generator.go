// Package locations generates fantasy place names such as
// "Misty Peaks of the Forgotten Realm" and keeps a ledger of saved ones.
package locations

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/jwebster45206/ttrpg-tools/pkg/ledger"
	"github.com/jwebster45206/ttrpg-tools/pkg/random"
	"github.com/jwebster45206/ttrpg-tools/pkg/wordtable"
)

var (
	ErrUnknownTerrain   = errors.New("unknown terrain")
	ErrInvalidComponent = errors.New("Invalid component type. Choose 'terrain', 'prefixes', or 'suffixes'.")
	ErrInvalidTerrain   = errors.New("Invalid terrain category. Choose 'generic', 'mountain', or 'water'.")
	ErrNoItems          = errors.New("no components given")
)

// Generator produces location names from a table it owns. Saved names go
// to an optional ledger.
type Generator struct {
	store  *wordtable.Store[Table]
	table  Table
	ledger *ledger.Ledger
	src    random.Source
	logger *slog.Logger
}

// NewGenerator loads the location table at path, creating defaults if needed.
// history may be nil when saving names is not wanted.
func NewGenerator(path string, history *ledger.Ledger, src random.Source, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	store := wordtable.New(path, DefaultTable, logger)
	table, outcome, err := store.Load()
	if err != nil {
		logger.Error("Failed to persist default locations", "path", path, "error", err)
	}
	table.ensure()
	logger.Info("Location table ready", "path", path, "outcome", outcome.String())

	return &Generator{store: store, table: table, ledger: history, src: src, logger: logger}
}

// Table returns the current vocabulary. Callers must not modify it.
func (g *Generator) Table() Table {
	return g.table
}

// Terrains returns the terrain categories in sorted order.
func (g *Generator) Terrains() []string {
	return random.SortedKeys(g.table.Terrain)
}

// Generate builds a location name. An empty terrain picks a terrain category
// at random on every call.
//
// Each slot is sampled in two stages: a category uniformly, then a word
// uniformly within it. Words in small categories therefore come up more often
// than words in large ones.
func (g *Generator) Generate(terrain string) (string, error) {
	terrain = strings.ToLower(strings.TrimSpace(terrain))
	if terrain == "" {
		t, err := random.ChoiceKey(g.src, g.table.Terrain)
		if err != nil {
			return "", fmt.Errorf("no terrain categories available: %w", err)
		}
		terrain = t
	} else if _, ok := g.table.Terrain[terrain]; !ok {
		return "", fmt.Errorf("%w '%s'. Choose from: %s", ErrUnknownTerrain, terrain, strings.Join(g.Terrains(), ", "))
	}

	prefixCategory, err := random.ChoiceKey(g.src, g.table.Prefixes)
	if err != nil {
		return "", fmt.Errorf("no prefix categories available: %w", err)
	}
	suffixCategory, err := random.ChoiceKey(g.src, g.table.Suffixes)
	if err != nil {
		return "", fmt.Errorf("no suffix categories available: %w", err)
	}

	prefix, err := random.Choice(g.src, g.table.Prefixes[prefixCategory])
	if err != nil {
		return "", fmt.Errorf("prefix category '%s' is empty: %w", prefixCategory, err)
	}
	terrainWord, err := random.Choice(g.src, g.table.Terrain[terrain])
	if err != nil {
		return "", fmt.Errorf("terrain category '%s' is empty: %w", terrain, err)
	}
	suffix, err := random.Choice(g.src, g.table.Suffixes[suffixCategory])
	if err != nil {
		return "", fmt.Errorf("suffix category '%s' is empty: %w", suffixCategory, err)
	}

	if random.Chance(g.src) {
		return fmt.Sprintf("%s %s of the %s", prefix, terrainWord, suffix), nil
	}
	return fmt.Sprintf("%s of the %s %s", terrainWord, prefix, suffix), nil
}

// AddComponent appends items to a category of the given kind, creating the
// category when missing, and persists the table.
func (g *Generator) AddComponent(kind, category string, items []string) error {
	kind = strings.ToLower(strings.TrimSpace(kind))
	category = strings.ToLower(strings.TrimSpace(category))

	var target wordtable.Categories
	switch kind {
	case Terrain:
		if !slices.Contains(terrainCategories, category) {
			return ErrInvalidTerrain
		}
		target = g.table.Terrain
	case PrefixComponent, SuffixComponent:
		if !slices.Contains(affixCategories, category) {
			return fmt.Errorf("Invalid %s category. Choose from: %s.", kind, strings.Join(affixCategories, ", "))
		}
		target = g.table.Prefixes
		if kind == SuffixComponent {
			target = g.table.Suffixes
		}
	default:
		return ErrInvalidComponent
	}

	items = wordtable.CleanItems(items)
	if len(items) == 0 {
		return ErrNoItems
	}
	target.Append(category, items)

	g.logger.Info("Added location components", "kind", kind, "category", category, "count", len(items))
	if err := g.store.Save(g.table); err != nil {
		return fmt.Errorf("changes kept for this session but not saved: %w", err)
	}
	return nil
}

// Categories lists the category names AddComponent accepts for kind.
func Categories(kind string) []string {
	switch strings.ToLower(kind) {
	case Terrain:
		return slices.Clone(terrainCategories)
	case PrefixComponent, SuffixComponent:
		return slices.Clone(affixCategories)
	}
	return nil
}

// SaveName records name in the ledger with tags.
func (g *Generator) SaveName(ctx context.Context, name string, tags []string) (string, error) {
	if g.ledger == nil {
		return "", ledger.ErrNoLedger
	}
	return g.ledger.Save(ctx, name, tags)
}

// ListSaved renders saved names, optionally only those tagged filterTag.
func (g *Generator) ListSaved(filterTag string) string {
	if g.ledger == nil {
		return ledger.NoEntries
	}
	return g.ledger.List(filterTag)
}

// Ledger returns the ledger saved names are written to, or nil.
func (g *Generator) Ledger() *ledger.Ledger {
	return g.ledger
}

func (t *Table) ensure() {
	if t.Terrain == nil {
		t.Terrain = wordtable.Categories{}
	}
	if t.Prefixes == nil {
		t.Prefixes = wordtable.Categories{}
	}
	if t.Suffixes == nil {
		t.Suffixes = wordtable.Categories{}
	}
}
