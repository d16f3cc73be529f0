package names

import (
	"fmt"

	"github.com/jwebster45206/ttrpg-tools/pkg/random"
	"github.com/jwebster45206/ttrpg-tools/pkg/wordtable"
	"github.com/pixil98/go-errors"
)

// Race holds the name fragments combined into names for one race.
type Race struct {
	Prefixes []string `json:"prefixes"`
	Suffixes []string `json:"suffixes"`
}

// Races maps a lower-case race key to its name fragments.
type Races map[string]Race

// Validate reports every race with an empty prefix or suffix list.
func (r Races) Validate() error {
	el := errors.NewErrorList()
	for _, key := range random.SortedKeys(r) {
		race := r[key]
		el.Add(wordtable.CheckList(fmt.Sprintf("%s.prefixes", key), race.Prefixes))
		el.Add(wordtable.CheckList(fmt.Sprintf("%s.suffixes", key), race.Suffixes))
	}
	return el.Err()
}

// DefaultRaces returns the built-in race table.
func DefaultRaces() Races {
	return Races{
		"elf": {
			Prefixes: []string{"Ael", "Aer", "Ara", "Cal", "Elr", "Eir", "Fae", "Gal", "Ill", "Leg", "Lor", "Mel", "Nae", "Sil", "Thar", "Vaer"},
			Suffixes: []string{"adan", "ael", "alin", "alos", "ari", "arion", "emar", "ian", "iel", "il", "inar", "ion", "orin", "olas", "ondel", "wyn"},
		},
		"dwarf": {
			Prefixes: []string{"Bal", "Bar", "Dain", "Dar", "Dor", "Dur", "Gim", "Glor", "Grun", "Kaz", "Mor", "Nal", "Thor", "Thra", "Tor", "Thrain"},
			Suffixes: []string{"adin", "ain", "ack", "ar", "ein", "dok", "fur", "grad", "grim", "heim", "il", "in", "lig", "or", "rim", "und"},
		},
		"orc": {
			Prefixes: []string{"Az", "Bol", "Dag", "Dru", "Gash", "Graz", "Grim", "Krug", "Mog", "Nar", "Rak", "Shak", "Thok", "Urag", "Vrak", "Zog"},
			Suffixes: []string{"aga", "ash", "gak", "gar", "gol", "goth", "grash", "gul", "mak", "nar", "rub", "shak", "thar", "thog", "tor", "zul"},
		},
		"human": {
			Prefixes: []string{"Al", "And", "Bran", "Cal", "Dan", "Ed", "Ger", "Joh", "Kel", "Mal", "Ric", "Rob", "Stan", "Tho", "Wal", "Wil"},
			Suffixes: []string{"an", "ard", "bert", "don", "eth", "fred", "gan", "hard", "in", "mer", "mund", "on", "rad", "son", "vin", "ward"},
		},
	}
}
