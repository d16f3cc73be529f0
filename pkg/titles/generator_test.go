package titles

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/jwebster45206/ttrpg-tools/pkg/random"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newTestGenerator(t *testing.T, src random.Source) (*Generator, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fantasy_titles.json")
	return NewGenerator(path, src, testLogger()), path
}

func TestGenerate_Simple(t *testing.T) {
	g, _ := newTestGenerator(t, random.New(5))
	table := DefaultTable()

	for i := 0; i < 30; i++ {
		title, err := g.Generate("simple", "positive")
		require.NoError(t, err)
		assert.Contains(t, table.Simple.Positive, title)

		title, err = g.Generate("SIMPLE", "Negative")
		require.NoError(t, err)
		assert.Contains(t, table.Simple.Negative, title)
	}
}

func TestGenerate_ComplexPositive(t *testing.T) {
	g, _ := newTestGenerator(t, random.NewScripted(0, 14))
	title, err := g.Generate("complex", "positive")
	require.NoError(t, err)
	assert.Equal(t, "The Hero of the Radiant Peaks", title)
}

func TestGenerate_ComplexNegative(t *testing.T) {
	g, _ := newTestGenerator(t, random.NewScripted(2, 6, 3))
	title, err := g.Generate("complex", "negative")
	require.NoError(t, err)
	assert.Equal(t, "The Bane of the Raging Beast from the Void", title)
}

func TestGenerate_ComplexNegativeParts(t *testing.T) {
	g, _ := newTestGenerator(t, random.New(11))
	parts := DefaultTable().Complex.Negative

	for i := 0; i < 30; i++ {
		title, err := g.Generate("complex", "negative")
		require.NoError(t, err)
		assert.True(t, matchesNegative(title, parts), "unexpected title %q", title)
	}
}

func matchesNegative(title string, p NegativeParts) bool {
	for _, a := range p.Prefixes {
		for _, b := range p.Creations {
			for _, c := range p.Origins {
				if a+" "+b+" "+c == title {
					return true
				}
			}
		}
	}
	return false
}

func TestGenerate_InvalidStyle(t *testing.T) {
	g, _ := newTestGenerator(t, random.New(1))

	_, err := g.Generate("medium", "positive")
	assert.ErrorIs(t, err, ErrInvalidComplexity)
	assert.Equal(t, "Invalid complexity. Choose 'simple' or 'complex'.", err.Error())

	_, err = g.Generate("simple", "neutral")
	assert.ErrorIs(t, err, ErrInvalidSentiment)

	_, err = g.Generate("complex", "")
	assert.ErrorIs(t, err, ErrInvalidSentiment)
}

func TestGenerate_EmptyCategory(t *testing.T) {
	g, _ := newTestGenerator(t, random.New(1))
	g.table.Complex.Positive.Locations = nil

	_, err := g.Generate("complex", "positive")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "positive locations")
	assert.ErrorIs(t, err, random.ErrEmpty)
}

func TestAddComponent(t *testing.T) {
	tests := []struct {
		name       string
		complexity string
		sentiment  string
		component  string
		list       func(Table) []string
	}{
		{"simple positive", "simple", "positive", "", func(t Table) []string { return t.Simple.Positive }},
		{"simple negative ignores component", "simple", "negative", "origins", func(t Table) []string { return t.Simple.Negative }},
		{"complex positive prefixes", "complex", "positive", "prefixes", func(t Table) []string { return t.Complex.Positive.Prefixes }},
		{"complex positive locations", "complex", "positive", "Locations", func(t Table) []string { return t.Complex.Positive.Locations }},
		{"complex negative prefixes", "complex", "negative", "prefixes", func(t Table) []string { return t.Complex.Negative.Prefixes }},
		{"complex negative creations", "complex", "negative", "creations", func(t Table) []string { return t.Complex.Negative.Creations }},
		{"complex negative origins", "complex", "negative", "origins", func(t Table) []string { return t.Complex.Negative.Origins }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, path := newTestGenerator(t, random.New(1))
			before := append([]string{}, tt.list(g.Table())...)

			require.NoError(t, g.AddComponent(tt.complexity, tt.sentiment, tt.component, []string{"X", "Y"}))
			want := append(before, "X", "Y")
			assert.Equal(t, want, tt.list(g.Table()))

			reloaded := NewGenerator(path, random.New(1), testLogger())
			assert.Equal(t, want, tt.list(reloaded.Table()), "round trip through storage")
		})
	}
}

func TestAddComponent_Rejects(t *testing.T) {
	g, _ := newTestGenerator(t, random.New(1))
	before := g.Table()

	err := g.AddComponent("complex", "negative", "locations", []string{"the Moon"})
	require.Error(t, err)
	assert.Equal(t, "'locations' is not a valid component for negative complex titles.", err.Error())

	err = g.AddComponent("complex", "positive", "creations", []string{"the Beast"})
	require.Error(t, err)
	assert.Equal(t, "'creations' is not a valid component for positive complex titles.", err.Error())

	err = g.AddComponent("complex", "positive", "origins", []string{"from Afar"})
	assert.Error(t, err)

	assert.ErrorIs(t, g.AddComponent("complex", "positive", "suffixes", []string{"x"}), ErrInvalidComponent)
	assert.ErrorIs(t, g.AddComponent("giant", "positive", "prefixes", []string{"x"}), ErrInvalidComplexity)
	assert.ErrorIs(t, g.AddComponent("simple", "meh", "", []string{"x"}), ErrInvalidSentiment)
	assert.ErrorIs(t, g.AddComponent("simple", "positive", "", []string{" "}), ErrNoItems)

	assert.Equal(t, before, g.Table())
}

func TestComponents(t *testing.T) {
	assert.Nil(t, Components(Simple, Positive))
	assert.Equal(t, []string{"prefixes", "locations"}, Components(Complex, Positive))
	assert.Equal(t, []string{"prefixes", "creations", "origins"}, Components(Complex, Negative))
}

func TestDefaultTableIsValid(t *testing.T) {
	assert.NoError(t, DefaultTable().Validate())
	assert.Error(t, Table{}.Validate())
}
