// Package random provides the randomness capability injected into every
// generator, so outcomes can be made reproducible under test.
package random

import (
	"errors"
	"math/rand"
	"slices"
	"time"
)

// ErrEmpty is returned when a choice is requested from an empty collection.
var ErrEmpty = errors.New("cannot choose from an empty list")

// Source is the randomness provider for generators and dice rolls.
// *rand.Rand satisfies it.
type Source interface {
	// Intn returns a uniform random int in [0, n). n > 0.
	Intn(n int) int
}

// New creates a seeded source. A zero seed uses the current time.
func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Choice returns a uniformly chosen element of items.
func Choice[T any](src Source, items []T) (T, error) {
	var zero T
	if len(items) == 0 {
		return zero, ErrEmpty
	}
	return items[src.Intn(len(items))], nil
}

// ChoiceKey returns a uniformly chosen key of m. Keys are sorted before the
// draw so a seeded source always maps to the same key.
func ChoiceKey[V any](src Source, m map[string]V) (string, error) {
	return Choice(src, SortedKeys(m))
}

// Chance returns true half of the time.
func Chance(src Source) bool {
	return src.Intn(2) == 0
}

// SortedKeys returns the keys of m in lexical order.
func SortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
