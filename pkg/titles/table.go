package titles

import (
	"github.com/jwebster45206/ttrpg-tools/pkg/wordtable"
	"github.com/pixil98/go-errors"
)

// Table is the persisted title vocabulary.
type Table struct {
	Simple  SimpleSet  `json:"simple"`
	Complex ComplexSet `json:"complex"`
}

// SimpleSet holds ready-made epithets per sentiment.
type SimpleSet struct {
	Positive []string `json:"positive"`
	Negative []string `json:"negative"`
}

// ComplexSet holds the parts combined into longer titles.
type ComplexSet struct {
	Positive PositiveParts `json:"positive"`
	Negative NegativeParts `json:"negative"`
}

// PositiveParts combine as "{prefix} {location}".
type PositiveParts struct {
	Prefixes  []string `json:"prefixes"`
	Locations []string `json:"locations"`
}

// NegativeParts combine as "{prefix} {creation} {origin}".
type NegativeParts struct {
	Prefixes  []string `json:"prefixes"`
	Creations []string `json:"creations"`
	Origins   []string `json:"origins"`
}

func (t Table) Validate() error {
	el := errors.NewErrorList()
	el.Add(wordtable.CheckList("simple.positive", t.Simple.Positive))
	el.Add(wordtable.CheckList("simple.negative", t.Simple.Negative))
	el.Add(wordtable.CheckList("complex.positive.prefixes", t.Complex.Positive.Prefixes))
	el.Add(wordtable.CheckList("complex.positive.locations", t.Complex.Positive.Locations))
	el.Add(wordtable.CheckList("complex.negative.prefixes", t.Complex.Negative.Prefixes))
	el.Add(wordtable.CheckList("complex.negative.creations", t.Complex.Negative.Creations))
	el.Add(wordtable.CheckList("complex.negative.origins", t.Complex.Negative.Origins))
	return el.Err()
}

// DefaultTable returns the built-in title vocabulary.
func DefaultTable() Table {
	return Table{
		Simple: SimpleSet{
			Positive: []string{
				"the Great", "the Wise", "the Brave", "the Mighty", "the Noble",
				"the Just", "the Merciful", "the Blessed", "the Bold", "the Brilliant",
				"the Valiant", "the Magnificent", "the Defender", "the Devoted", "the Faithful",
			},
			Negative: []string{
				"the Cursed", "the Cruel", "the Wicked", "the Terrible", "the Grim",
				"the Vile", "the Feared", "the Ruthless", "the Dark", "the Dreadful",
				"the Tyrant", "the Fallen", "the Betrayer", "the Accused", "the Malicious",
			},
		},
		Complex: ComplexSet{
			Positive: PositiveParts{
				Prefixes: []string{
					"The Hero of", "The Guardian of", "The Savior of", "The Protector of",
					"The Champion of", "The Defender of", "The Liberator of", "The Light of",
					"The Shield of", "The Sword of", "The Hope of", "The Friend of",
					"The Righteous Hand of", "The Blessed One of", "The Chosen of",
				},
				Locations: []string{
					"the Western Realms", "the Eastern Kingdoms", "the Northern Lands", "the Southern Isles",
					"the Misty Mountains", "the Golden Valley", "the Shimmering Forest", "the Sacred Grove",
					"the Crystal Shores", "the Emerald Hills", "the Sunlit Plains", "the Azure Coast",
					"the Verdant Woods", "the Peaceful Meadows", "the Radiant Peaks",
				},
			},
			Negative: NegativeParts{
				Prefixes: []string{
					"The Scourge of", "The Terror of", "The Bane of", "The Destroyer of",
					"The Nightmare of", "The Plague of", "The Doom of", "The Butcher of",
					"The Curse of", "The Ravager of", "The Shadow of", "The Defiler of",
					"The Tormentor of", "The Despoiler of", "The Devourer of",
				},
				Creations: []string{
					"the Scarred Beast", "the Twisted Creature", "the Corrupted Soul", "the Fallen Knight",
					"the Vengeful Spirit", "the Cursed Wanderer", "the Raging Beast", "the Dark Sorcerer",
					"the Bloodthirsty Monster", "the Forgotten Heretic", "the Merciless Killer", "the Faceless Horror",
					"the Wretched Abomination", "the Sinister Specter", "the Deathless Warlord",
				},
				Origins: []string{
					"from the Depths", "from the Shadows", "from the Abyss", "from the Void",
					"from the Netherworld", "from the Darkness", "from the Eternal Night", "from the Forgotten Realm",
					"from the Cursed Lands", "from the Forsaken Wastes", "from the Blighted Marsh", "from the Charred Ruins",
					"from the Howling Chasm", "from the Crushing Deep", "from the Ashen Plains",
				},
			},
		},
	}
}
