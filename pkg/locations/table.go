package locations

import (
	"github.com/jwebster45206/ttrpg-tools/pkg/wordtable"
	"github.com/pixil98/go-errors"
)

// Component kinds.
const (
	Terrain         = "terrain"
	PrefixComponent = "prefixes"
	SuffixComponent = "suffixes"
)

// Built-in categories.
const (
	Generic      = "generic"
	Mountain     = "mountain"
	Water        = "water"
	Mystical     = "mystical"
	Geographical = "geographical"
	Descriptive  = "descriptive"
	Mysterious   = "mysterious"
)

var (
	terrainCategories = []string{Generic, Mountain, Water}
	// Prefixes and suffixes share one set of accepted category names.
	affixCategories = []string{Mystical, Geographical, Descriptive, Mysterious}
)

// Table is the persisted location vocabulary.
type Table struct {
	Terrain  wordtable.Categories `json:"terrain"`
	Prefixes wordtable.Categories `json:"prefixes"`
	Suffixes wordtable.Categories `json:"suffixes"`
}

func (t Table) Validate() error {
	el := errors.NewErrorList()
	el.Add(wordtable.CheckNonEmpty(Terrain, t.Terrain, terrainCategories...))
	el.Add(wordtable.CheckNonEmpty(PrefixComponent, t.Prefixes, Mystical, Geographical))
	el.Add(wordtable.CheckNonEmpty(SuffixComponent, t.Suffixes, Descriptive, Mysterious))
	return el.Err()
}

// DefaultTable returns the built-in location vocabulary.
func DefaultTable() Table {
	return Table{
		Terrain: wordtable.Categories{
			Generic: {
				"Valley", "Hills", "Plains", "Plateau", "Meadows",
				"Woods", "Forest", "Glade", "Highlands", "Lowlands",
			},
			Mountain: {
				"Peak", "Mountains", "Crags", "Highlands", "Cliffs",
				"Summit", "Ranges", "Peaks", "Ridgeline", "Escarpment",
			},
			Water: {
				"Bay", "Coast", "Shore", "Islands", "Archipelago",
				"Reef", "Cove", "Delta", "Lagoon", "Inlet",
			},
		},
		Prefixes: wordtable.Categories{
			Mystical: {
				"Mystic", "Enchanted", "Eternal", "Forgotten", "Sacred",
				"Whispering", "Moonlit", "Starry", "Ethereal", "Radiant",
			},
			Geographical: {
				"Misty", "Verdant", "Emerald", "Golden", "Silver",
				"Azure", "Crimson", "Crystal", "Shadow", "Hidden",
			},
		},
		Suffixes: wordtable.Categories{
			Descriptive: {
				"Haven", "Realm", "Domain", "Kingdom", "Lands",
				"Territory", "Dominion", "Expanse", "Sanctuary", "Frontier",
			},
			Mysterious: {
				"Whisper", "Secret", "Dream", "Prophecy", "Destiny",
				"Legend", "Myth", "Wonder", "Enigma", "Harmony",
			},
		},
	}
}
