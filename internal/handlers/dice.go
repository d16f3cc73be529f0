package handlers

import (
	"context"
	"errors"
	"log/slog"
	"strconv"

	"github.com/jwebster45206/ttrpg-tools/internal/menu"
	"github.com/jwebster45206/ttrpg-tools/pkg/dice"
	"github.com/jwebster45206/ttrpg-tools/pkg/random"
)

var errModifier = errors.New("The modifier must be a whole number, e.g. 2 or -1.")

// DiceHandler serves the repeating dice roll action.
type DiceHandler struct {
	src    random.Source
	logger *slog.Logger
}

// NewDiceHandler creates a DiceHandler rolling with src.
func NewDiceHandler(src random.Source, logger *slog.Logger) *DiceHandler {
	return &DiceHandler{src: src, logger: logger}
}

// Node returns the repeating roll action. It stays on the expression prompt
// after each roll until the user returns.
func (h *DiceHandler) Node() *menu.Node {
	return &menu.Node{
		ID:     "dice",
		Label:  "Roll dice",
		Repeat: true,
		Prompts: []menu.Prompt{
			{
				Key:   "expr",
				Label: "What dice and how many would you like to roll? (r to return to main menu)",
				Validate: func(v string) error {
					_, err := dice.Parse(v)
					return err
				},
			},
			{
				Key:      "mode",
				Label:    "Would you like to add a modifier to each roll or to the total? (each/total/none)",
				Optional: true,
			},
			{
				Key:   "modifier",
				Label: "Enter the modifier value",
				When: func(a menu.Answers) bool {
					return dice.ParseMode(a.Get("mode")) != dice.ModeNone
				},
				Validate: func(v string) error {
					if _, err := strconv.Atoi(v); err != nil {
						return errModifier
					}
					return nil
				},
			},
		},
		Run: h.roll,
	}
}

func (h *DiceHandler) roll(_ context.Context, a menu.Answers) (string, error) {
	mode := dice.ParseMode(a.Get("mode"))
	modifier := 0
	if mode != dice.ModeNone {
		var err error
		if modifier, err = strconv.Atoi(a.Get("modifier")); err != nil {
			return "", errModifier
		}
	}

	result, err := dice.Roll(h.src, a.Get("expr"), mode, modifier)
	if err != nil {
		return "", err
	}
	h.logger.Debug("Rolled dice", "expr", a.Get("expr"), "mode", mode.String(), "modifier", modifier, "total", result.Total)
	return result.String(), nil
}
