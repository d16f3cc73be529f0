package dice

import (
	"errors"
	"testing"

	"github.com/jwebster45206/ttrpg-tools/pkg/random"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		expr string
		want []DiceSpec
	}{
		{name: "single", expr: "2d6", want: []DiceSpec{{2, 6}}},
		{name: "count defaults to one", expr: "d20", want: []DiceSpec{{1, 20}}},
		{name: "upper case", expr: "3D8", want: []DiceSpec{{3, 8}}},
		{name: "several with separators", expr: "1d20 + 2d8 + 1d4", want: []DiceSpec{{1, 20}, {2, 8}, {1, 4}}},
		{name: "embedded in text", expr: "roll 4d6 and d100 please", want: []DiceSpec{{4, 6}, {1, 100}}},
		{name: "malformed token skipped", expr: "d + 2d10", want: []DiceSpec{{2, 10}}},
		{name: "zero count", expr: "0d6", want: []DiceSpec{{0, 6}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, expr := range []string{"not dice", "", "d", "20", "xd"} {
		_, err := Parse(expr)
		assert.ErrorIs(t, err, ErrInvalidExpression, "expr %q", expr)
	}

	_, err := Parse("2d0")
	assert.ErrorIs(t, err, ErrInvalidDie)
	_, err = Parse("5000d6")
	assert.ErrorIs(t, err, ErrInvalidDie)

	// One bad token rejects the whole expression, naming that token.
	specs, err := Parse("2d0 + 1d6")
	assert.ErrorIs(t, err, ErrInvalidDie)
	assert.ErrorContains(t, err, "2d0")
	assert.Nil(t, specs)

	src := random.NewScripted(3)
	_, err = Roll(src, "1d6 + 2d0", ModeNone, 0)
	assert.ErrorIs(t, err, ErrInvalidDie)
	assert.Empty(t, src.Calls)
}

func TestRoll_TwoD6(t *testing.T) {
	src := random.New(8)
	for i := 0; i < 50; i++ {
		result, err := Roll(src, "2d6", ModeNone, 0)
		require.NoError(t, err)
		require.Len(t, result.Rolls, 1)
		faces := result.Rolls[0].Results
		require.Len(t, faces, 2)
		for _, f := range faces {
			assert.GreaterOrEqual(t, f, 1)
			assert.LessOrEqual(t, f, 6)
		}
		assert.Equal(t, faces[0]+faces[1], result.Total)
	}
}

func TestRoll_GroupsIndependent(t *testing.T) {
	src := random.NewScripted(19, 2, 7)
	result, err := Roll(src, "1d20 + 2d8", ModeNone, 0)
	require.NoError(t, err)

	require.Len(t, result.Rolls, 2)
	assert.Equal(t, DiceSpec{1, 20}, result.Rolls[0].DiceSpec)
	assert.Equal(t, []int{20}, result.Rolls[0].Results)
	assert.Equal(t, DiceSpec{2, 8}, result.Rolls[1].DiceSpec)
	assert.Equal(t, []int{3, 8}, result.Rolls[1].Results)
	assert.Equal(t, 31, result.Total)
	assert.Equal(t, []int{20, 8, 8}, src.Calls)
	assert.Equal(t, "Rolling:\n1d20: 20 | 2d8: 3, 8\nTotal: 31", result.String())
}

func TestRoll_InvalidPerformsNoRolls(t *testing.T) {
	src := random.NewScripted()
	result, err := Roll(src, "not dice", ModeTotal, 3)
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, ErrInvalidExpression))
	assert.Empty(t, src.Calls)
}

func TestRoll_EachModifier(t *testing.T) {
	result, err := Roll(random.NewScripted(3), "1d6", ModeEach, 2)
	require.NoError(t, err)

	assert.Equal(t, []int{4}, result.Rolls[0].Results, "raw face kept")
	assert.Equal(t, []int{6}, result.Rolls[0].Values(ModeEach, 2))
	assert.Equal(t, 6, result.Total)
	assert.Equal(t, "Rolling:\n1d6: 6 (+2)\nTotal: 6", result.String())
}

func TestRoll_EachModifierSeveralDice(t *testing.T) {
	result, err := Roll(random.NewScripted(0, 5, 1), "2d6 d4", ModeEach, 1)
	require.NoError(t, err)
	assert.Equal(t, 2+7+3, result.Total)
	assert.Equal(t, []string{"2d6: 2 (+1), 7 (+1)", "1d4: 3 (+1)"}, result.Terms())
}

func TestRoll_TotalModifier(t *testing.T) {
	result, err := Roll(random.NewScripted(4), "1d6", ModeTotal, -1)
	require.NoError(t, err)

	assert.Equal(t, []int{5}, result.Rolls[0].Results)
	assert.Equal(t, 4, result.Total)
	assert.Equal(t, "Rolling:\n1d6: 5 | (-1)\nTotal: 4", result.String())
}

func TestRoll_NoneIgnoresModifier(t *testing.T) {
	result, err := Roll(random.NewScripted(4), "1d6", ModeNone, 10)
	require.NoError(t, err)
	assert.Equal(t, 5, result.Total)
	assert.Equal(t, 0, result.Modifier)
	assert.Equal(t, "Rolling:\n1d6: 5\nTotal: 5", result.String())
}

func TestParseMode(t *testing.T) {
	assert.Equal(t, ModeEach, ParseMode(" Each "))
	assert.Equal(t, ModeTotal, ParseMode("TOTAL"))
	assert.Equal(t, ModeNone, ParseMode("none"))
	assert.Equal(t, ModeNone, ParseMode("sometimes"))
	assert.Equal(t, "total", ModeTotal.String())
}
