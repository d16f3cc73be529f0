// Package titles generates epithets such as "the Wise" or
// "The Bane of the Fallen Knight from the Abyss".
package titles

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jwebster45206/ttrpg-tools/pkg/random"
	"github.com/jwebster45206/ttrpg-tools/pkg/wordtable"
)

// Complexity selects between ready-made and composed titles.
type Complexity string

const (
	Simple  Complexity = "simple"
	Complex Complexity = "complex"
)

// Sentiment selects between heroic and villainous titles.
type Sentiment string

const (
	Positive Sentiment = "positive"
	Negative Sentiment = "negative"
)

// Component names for complex titles.
const (
	Prefixes  = "prefixes"
	Locations = "locations"
	Creations = "creations"
	Origins   = "origins"
)

var (
	ErrInvalidComplexity = errors.New("Invalid complexity. Choose 'simple' or 'complex'.")
	ErrInvalidSentiment  = errors.New("Invalid sentiment. Choose 'positive' or 'negative'.")
	ErrInvalidComponent  = errors.New("Invalid component type for complex titles.")
	ErrNoItems           = errors.New("no components given")
)

// ParseComplexity matches s case-insensitively.
func ParseComplexity(s string) (Complexity, error) {
	switch c := Complexity(strings.ToLower(strings.TrimSpace(s))); c {
	case Simple, Complex:
		return c, nil
	}
	return "", ErrInvalidComplexity
}

// ParseSentiment matches s case-insensitively.
func ParseSentiment(s string) (Sentiment, error) {
	switch v := Sentiment(strings.ToLower(strings.TrimSpace(s))); v {
	case Positive, Negative:
		return v, nil
	}
	return "", ErrInvalidSentiment
}

// Generator produces titles from a table it owns.
type Generator struct {
	store  *wordtable.Store[Table]
	table  Table
	src    random.Source
	logger *slog.Logger
}

// NewGenerator loads the title table at path, creating defaults if needed.
func NewGenerator(path string, src random.Source, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	store := wordtable.New(path, DefaultTable, logger)
	table, outcome, err := store.Load()
	if err != nil {
		logger.Error("Failed to persist default titles", "path", path, "error", err)
	}
	logger.Info("Title table ready", "path", path, "outcome", outcome.String())

	return &Generator{store: store, table: table, src: src, logger: logger}
}

// Table returns the current vocabulary. Callers must not modify it.
func (g *Generator) Table() Table {
	return g.table
}

// Generate builds a title for the given complexity and sentiment.
func (g *Generator) Generate(complexity, sentiment string) (string, error) {
	c, err := ParseComplexity(complexity)
	if err != nil {
		return "", err
	}
	s, err := ParseSentiment(sentiment)
	if err != nil {
		return "", err
	}

	if c == Simple {
		list := g.table.Simple.Negative
		if s == Positive {
			list = g.table.Simple.Positive
		}
		return g.pick(list, "simple "+string(s))
	}

	if s == Positive {
		parts := g.table.Complex.Positive
		prefix, err := g.pick(parts.Prefixes, "positive prefixes")
		if err != nil {
			return "", err
		}
		location, err := g.pick(parts.Locations, "positive locations")
		if err != nil {
			return "", err
		}
		return prefix + " " + location, nil
	}

	parts := g.table.Complex.Negative
	prefix, err := g.pick(parts.Prefixes, "negative prefixes")
	if err != nil {
		return "", err
	}
	creation, err := g.pick(parts.Creations, "negative creations")
	if err != nil {
		return "", err
	}
	origin, err := g.pick(parts.Origins, "negative origins")
	if err != nil {
		return "", err
	}
	return prefix + " " + creation + " " + origin, nil
}

// Components lists the component names accepted by AddComponent for a
// complexity and sentiment.
func Components(c Complexity, s Sentiment) []string {
	switch {
	case c == Simple:
		return nil
	case s == Positive:
		return []string{Prefixes, Locations}
	default:
		return []string{Prefixes, Creations, Origins}
	}
}

// AddComponent appends items to one title list and persists the table.
// component is ignored for simple titles.
func (g *Generator) AddComponent(complexity, sentiment, component string, items []string) error {
	c, err := ParseComplexity(complexity)
	if err != nil {
		return err
	}
	s, err := ParseSentiment(sentiment)
	if err != nil {
		return err
	}
	items = wordtable.CleanItems(items)
	if len(items) == 0 {
		return ErrNoItems
	}

	component = strings.ToLower(strings.TrimSpace(component))
	target, err := g.list(c, s, component)
	if err != nil {
		return err
	}
	*target = append(*target, items...)

	g.logger.Info("Added title components", "complexity", c, "sentiment", s, "component", component, "count", len(items))
	if err := g.store.Save(g.table); err != nil {
		return fmt.Errorf("changes kept for this session but not saved: %w", err)
	}
	return nil
}

func (g *Generator) list(c Complexity, s Sentiment, component string) (*[]string, error) {
	if c == Simple {
		if s == Positive {
			return &g.table.Simple.Positive, nil
		}
		return &g.table.Simple.Negative, nil
	}

	switch component {
	case Prefixes, Locations, Creations, Origins:
	default:
		return nil, ErrInvalidComponent
	}
	if component == Locations && s == Negative {
		return nil, errors.New("'locations' is not a valid component for negative complex titles.")
	}
	if (component == Creations || component == Origins) && s == Positive {
		return nil, fmt.Errorf("'%s' is not a valid component for positive complex titles.", component)
	}

	switch {
	case s == Positive && component == Prefixes:
		return &g.table.Complex.Positive.Prefixes, nil
	case s == Positive:
		return &g.table.Complex.Positive.Locations, nil
	case component == Prefixes:
		return &g.table.Complex.Negative.Prefixes, nil
	case component == Creations:
		return &g.table.Complex.Negative.Creations, nil
	default:
		return &g.table.Complex.Negative.Origins, nil
	}
}

func (g *Generator) pick(list []string, slot string) (string, error) {
	v, err := random.Choice(g.src, list)
	if err != nil {
		return "", fmt.Errorf("no %s titles available: %w", slot, err)
	}
	return v, nil
}
