package wordtable

import (
	"fmt"
	"strings"

	"github.com/pixil98/go-errors"
)

// Categories is a set of named word lists filling the same slot, for example
// the terrain types of a location name.
type Categories map[string][]string

// Append adds items to category, creating it when missing. Existing entries
// are kept and duplicates are allowed.
func (c Categories) Append(category string, items []string) {
	c[category] = append(c[category], items...)
}

// CheckNonEmpty reports every listed category that is missing or empty.
// slot names the table location in messages.
func CheckNonEmpty(slot string, c Categories, names ...string) error {
	el := errors.NewErrorList()
	for _, name := range names {
		if len(c[name]) == 0 {
			el.Add(fmt.Errorf("%s.%s must contain at least one entry", slot, name))
		}
	}
	return el.Err()
}

// CheckList reports an empty list.
func CheckList(slot string, list []string) error {
	if len(list) == 0 {
		return fmt.Errorf("%s must contain at least one entry", slot)
	}
	return nil
}

// CleanItems trims every item and drops the empty ones, so comma-separated
// user input like "Ael, , Aer" yields [Ael Aer].
func CleanItems(items []string) []string {
	cleaned := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			cleaned = append(cleaned, item)
		}
	}
	return cleaned
}

// SplitItems splits comma-separated input into cleaned items.
func SplitItems(input string) []string {
	return CleanItems(strings.Split(input, ","))
}
