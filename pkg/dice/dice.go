// Package dice parses free-text dice expressions such as "1d20 + 2d8" and
// rolls them with an optional flat modifier.
package dice

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/jwebster45206/ttrpg-tools/pkg/random"
)

// MaxDice caps the number of dice in a single group.
const MaxDice = 1000

// ErrInvalidExpression indicates no XdY token was found in the input.
var ErrInvalidExpression = errors.New("Invalid input. Please use the format XdY (e.g., 1d6, 2d20, 1d20 + 2d8 + 1d4).")

// ErrInvalidDie indicates a token with an unusable count or number of sides.
var ErrInvalidDie = errors.New("dice must have at least one side and a count up to 1000")

var tokenPattern = regexp.MustCompile(`(\d*)[dD](\d+)`)

// Mode selects how the modifier is applied.
type Mode int

const (
	ModeNone Mode = iota
	ModeEach
	ModeTotal
)

func (m Mode) String() string {
	switch m {
	case ModeEach:
		return "each"
	case ModeTotal:
		return "total"
	default:
		return "none"
	}
}

// ParseMode reads "each", "total" or "none". Anything else means none.
func ParseMode(s string) Mode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "each":
		return ModeEach
	case "total":
		return ModeTotal
	default:
		return ModeNone
	}
}

// DiceSpec describes one XdY token.
type DiceSpec struct {
	Count int
	Sides int
}

func (s DiceSpec) String() string {
	return fmt.Sprintf("%dd%d", s.Count, s.Sides)
}

// DieRoll holds the results for one token. Results are the raw faces.
type DieRoll struct {
	DiceSpec
	Results []int
}

// RollResult is the outcome of a whole expression.
type RollResult struct {
	Rolls    []DieRoll
	Mode     Mode
	Modifier int
	Total    int
}

// Parse extracts the dice tokens of expr in left-to-right order. Text between
// tokens is ignored. A missing count means one die.
func Parse(expr string) ([]DiceSpec, error) {
	matches := tokenPattern.FindAllStringSubmatch(strings.TrimSpace(expr), -1)
	if len(matches) == 0 {
		return nil, ErrInvalidExpression
	}

	specs := make([]DiceSpec, 0, len(matches))
	for _, m := range matches {
		count := 1
		if m[1] != "" {
			n, err := strconv.Atoi(m[1])
			if err != nil {
				return nil, fmt.Errorf("%w: %s", ErrInvalidDie, m[0])
			}
			count = n
		}
		sides, err := strconv.Atoi(m[2])
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidDie, m[0])
		}
		if sides < 1 || count > MaxDice {
			return nil, fmt.Errorf("%w: %s", ErrInvalidDie, m[0])
		}
		specs = append(specs, DiceSpec{Count: count, Sides: sides})
	}
	return specs, nil
}

// Roll parses expr and rolls every token with src. In ModeEach the modifier
// is added to every die; in ModeTotal it is added once to the total.
func Roll(src random.Source, expr string, mode Mode, modifier int) (*RollResult, error) {
	specs, err := Parse(expr)
	if err != nil {
		return nil, err
	}
	if mode == ModeNone {
		modifier = 0
	}

	result := &RollResult{
		Rolls:    make([]DieRoll, 0, len(specs)),
		Mode:     mode,
		Modifier: modifier,
	}
	for _, spec := range specs {
		roll := DieRoll{DiceSpec: spec, Results: make([]int, spec.Count)}
		for i := range roll.Results {
			roll.Results[i] = src.Intn(spec.Sides) + 1
		}
		result.Rolls = append(result.Rolls, roll)
		result.Total += roll.Sum(mode, modifier)
	}
	if mode == ModeTotal {
		result.Total += modifier
	}
	return result, nil
}

// Values returns the faces as displayed: adjusted by the modifier in
// ModeEach, raw otherwise.
func (r DieRoll) Values(mode Mode, modifier int) []int {
	values := make([]int, len(r.Results))
	for i, v := range r.Results {
		if mode == ModeEach {
			v += modifier
		}
		values[i] = v
	}
	return values
}

// Sum adds the displayed values.
func (r DieRoll) Sum(mode Mode, modifier int) int {
	total := 0
	for _, v := range r.Values(mode, modifier) {
		total += v
	}
	return total
}

// Describe renders one token as "2d6: 3, 5", with the modifier after every
// value in ModeEach. The modifier always carries its sign: "(+2)", "(-1)".
func (r DieRoll) Describe(mode Mode, modifier int) string {
	parts := make([]string, 0, len(r.Results))
	for _, v := range r.Values(mode, modifier) {
		if mode == ModeEach {
			parts = append(parts, fmt.Sprintf("%d (%+d)", v, modifier))
		} else {
			parts = append(parts, strconv.Itoa(v))
		}
	}
	return r.DiceSpec.String() + ": " + strings.Join(parts, ", ")
}

// Terms returns the per-token descriptions followed, in ModeTotal, by the
// modifier term.
func (r *RollResult) Terms() []string {
	terms := make([]string, 0, len(r.Rolls)+1)
	for _, roll := range r.Rolls {
		terms = append(terms, roll.Describe(r.Mode, r.Modifier))
	}
	if r.Mode == ModeTotal {
		terms = append(terms, fmt.Sprintf("(%+d)", r.Modifier))
	}
	return terms
}

// String renders the full report.
func (r *RollResult) String() string {
	return fmt.Sprintf("Rolling:\n%s\nTotal: %d", strings.Join(r.Terms(), " | "), r.Total)
}
