package locations

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jwebster45206/ttrpg-tools/pkg/ledger"
	"github.com/jwebster45206/ttrpg-tools/pkg/random"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newTestGenerator(t *testing.T, src random.Source) (*Generator, string) {
	t.Helper()
	dir := t.TempDir()
	history, err := ledger.Open(context.Background(), ledger.NewFileRepository(filepath.Join(dir, "history.json"), testLogger()), testLogger())
	require.NoError(t, err)
	path := filepath.Join(dir, "fantasy_locations.json")
	return NewGenerator(path, history, src, testLogger()), path
}

func TestGenerate_RandomTerrainFirstTemplate(t *testing.T) {
	src := random.NewScripted(1, 0, 1, 2, 0, 5, 0)
	g, _ := newTestGenerator(t, src)

	name, err := g.Generate("")
	require.NoError(t, err)
	assert.Equal(t, "Emerald Peak of the Legend", name)
	assert.Equal(t, []int{3, 2, 2, 10, 10, 10, 2}, src.Calls)
}

func TestGenerate_RandomTerrainSecondTemplate(t *testing.T) {
	g, _ := newTestGenerator(t, random.NewScripted(1, 0, 1, 2, 0, 5, 1))

	name, err := g.Generate("")
	require.NoError(t, err)
	assert.Equal(t, "Peak of the Emerald Legend", name)
}

func TestGenerate_FixedTerrain(t *testing.T) {
	src := random.NewScripted(1, 0, 4, 9, 0, 1)
	g, _ := newTestGenerator(t, src)

	name, err := g.Generate("Water")
	require.NoError(t, err)
	assert.Equal(t, "Inlet of the Sacred Haven", name)
	assert.Len(t, src.Calls, 6, "no terrain draw when terrain is given")
}

func TestGenerate_UnknownTerrain(t *testing.T) {
	src := random.NewScripted()
	g, _ := newTestGenerator(t, src)

	_, err := g.Generate("swamp")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownTerrain)
	assert.Contains(t, err.Error(), "generic, mountain, water")
	assert.Empty(t, src.Calls)
}

func TestGenerate_CategoryChosenUniformly(t *testing.T) {
	src := random.NewScripted()
	g, _ := newTestGenerator(t, src)

	// A tiny extra prefix category: the category draw is still one of three
	// and the word draw is over that category only.
	require.NoError(t, g.AddComponent("prefixes", "descriptive", []string{"Lone"}))

	_, err := g.Generate("generic")
	require.NoError(t, err)
	assert.Equal(t, 3, src.Calls[0], "prefix category drawn among named categories")
	assert.Equal(t, 2, src.Calls[1], "suffix category drawn among named categories")
	// "descriptive" sorts first among prefix categories and has one word.
	assert.Equal(t, 1, src.Calls[2])
}

func TestGenerate_AlwaysWellFormed(t *testing.T) {
	g, _ := newTestGenerator(t, random.New(99))
	table := DefaultTable()

	for i := 0; i < 100; i++ {
		name, err := g.Generate("")
		require.NoError(t, err)
		assert.True(t, wellFormed(name, table), "unexpected name %q", name)
	}
}

func wellFormed(name string, table Table) bool {
	for _, prefixes := range table.Prefixes {
		for _, p := range prefixes {
			for _, terrains := range table.Terrain {
				for _, tw := range terrains {
					for _, suffixes := range table.Suffixes {
						for _, s := range suffixes {
							if name == p+" "+tw+" of the "+s || name == tw+" of the "+p+" "+s {
								return true
							}
						}
					}
				}
			}
		}
	}
	return false
}

func TestGenerate_EmptyCategoryFails(t *testing.T) {
	g, _ := newTestGenerator(t, random.NewScripted())
	g.table.Terrain[Generic] = nil

	_, err := g.Generate("generic")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "terrain category 'generic' is empty")
}

func TestAddComponent(t *testing.T) {
	g, path := newTestGenerator(t, random.New(1))

	require.NoError(t, g.AddComponent("terrain", "mountain", []string{"Tor", "Fell"}))
	want := append(DefaultTable().Terrain[Mountain], "Tor", "Fell")
	assert.Equal(t, want, g.Table().Terrain[Mountain])

	// A suffix added under a prefix-style category creates it.
	require.NoError(t, g.AddComponent("Suffixes", "Mystical", []string{"Veil", "Veil"}))
	assert.Equal(t, []string{"Veil", "Veil"}, g.Table().Suffixes[Mystical])

	reloaded := NewGenerator(path, nil, random.New(1), testLogger())
	assert.Equal(t, want, reloaded.Table().Terrain[Mountain])
	assert.Equal(t, []string{"Veil", "Veil"}, reloaded.Table().Suffixes[Mystical])
}

func TestAddComponent_Rejects(t *testing.T) {
	g, _ := newTestGenerator(t, random.New(1))

	assert.ErrorIs(t, g.AddComponent("rivers", "generic", []string{"x"}), ErrInvalidComponent)
	assert.ErrorIs(t, g.AddComponent("terrain", "swamp", []string{"Bog"}), ErrInvalidTerrain)

	err := g.AddComponent("prefixes", "spooky", []string{"Eerie"})
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "Invalid prefixes category."))

	assert.ErrorIs(t, g.AddComponent("terrain", "water", []string{""}), ErrNoItems)
	assert.Equal(t, DefaultTable(), g.Table())
}

func TestCategories(t *testing.T) {
	assert.Equal(t, []string{"generic", "mountain", "water"}, Categories("terrain"))
	assert.Equal(t, []string{"mystical", "geographical", "descriptive", "mysterious"}, Categories("suffixes"))
	assert.Nil(t, Categories("unknown"))
}

func TestSaveAndListNames(t *testing.T) {
	g, _ := newTestGenerator(t, random.New(4))
	ctx := context.Background()

	assert.Equal(t, ledger.NoEntries, g.ListSaved(""))

	name, err := g.Generate("")
	require.NoError(t, err)
	msg, err := g.SaveName(ctx, name, []string{"dungeon"})
	require.NoError(t, err)
	assert.Equal(t, "Saved location name: "+name, msg)

	_, err = g.SaveName(ctx, "Other Place", []string{"town"})
	require.NoError(t, err)

	out := g.ListSaved("dungeon")
	assert.Contains(t, out, "1. "+name)
	assert.NotContains(t, out, "Other Place")
}

func TestSaveName_WithoutLedger(t *testing.T) {
	g := NewGenerator(filepath.Join(t.TempDir(), "loc.json"), nil, random.New(1), testLogger())
	_, err := g.SaveName(context.Background(), "x", nil)
	assert.ErrorIs(t, err, ledger.ErrNoLedger)
	assert.Equal(t, ledger.NoEntries, g.ListSaved(""))
}
