package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/jwebster45206/ttrpg-tools/internal/menu"
	"github.com/jwebster45206/ttrpg-tools/pkg/names"
	"github.com/jwebster45206/ttrpg-tools/pkg/wordtable"
)

const cancelled = "Operation cancelled."

// NamesHandler serves the name generator and race editing actions.
type NamesHandler struct {
	gen    *names.Generator
	logger *slog.Logger
}

// NewNamesHandler creates a NamesHandler for gen.
func NewNamesHandler(gen *names.Generator, logger *slog.Logger) *NamesHandler {
	return &NamesHandler{gen: gen, logger: logger}
}

func (h *NamesHandler) Node() *menu.Node {
	return &menu.Node{
		ID:    "names",
		Label: "Generate a name",
		Children: []*menu.Node{
			{
				ID:    "names.generate",
				Label: "Generate names",
				Intro: h.availableRaces("No races available. Please add a race first."),
				Prompts: []menu.Prompt{
					{Key: "race", Label: "Enter a race to generate names for", Literal: true},
					{
						Key:      "count",
						Label:    "How many names would you like to generate? [1-10]",
						Optional: true,
						When:     func(a menu.Answers) bool { return h.gen.Exists(a.Get("race")) },
					},
				},
				Run: h.generate,
			},
			{
				ID:    "names.add",
				Label: "Add new race",
				Prompts: []menu.Prompt{
					{Key: "race", Label: "Enter the name of the new race", Literal: true},
					{
						Key:   "overwrite",
						Label: "Race already exists. Overwrite? (y/n)",
						When:  func(a menu.Answers) bool { return h.gen.Exists(a.Get("race")) },
					},
					{
						Key:     "prefixes",
						Label:   "Enter prefixes (comma-separated)",
						Literal: true,
						When:    func(a menu.Answers) bool { return confirmed(a, "overwrite", true) },
					},
					{
						Key:     "suffixes",
						Label:   "Enter suffixes (comma-separated)",
						Literal: true,
						When:    func(a menu.Answers) bool { return confirmed(a, "overwrite", true) },
					},
				},
				Run: h.add,
			},
			{
				ID:    "names.delete",
				Label: "Delete race",
				Intro: h.availableRaces("No races available to delete."),
				Prompts: []menu.Prompt{
					{Key: "race", Label: "Enter the race to delete", Literal: true},
					{Key: "confirm", Label: "Are you sure you want to delete this race? (y/n)"},
				},
				Run: h.delete,
			},
			{
				ID:    "names.list",
				Label: "List available races",
				Run: func(context.Context, menu.Answers) (string, error) {
					return h.gen.Describe(), nil
				},
			},
		},
	}
}

func (h *NamesHandler) availableRaces(empty string) func() string {
	return func() string {
		races := h.gen.Races()
		if len(races) == 0 {
			return empty
		}
		return "Available races: " + strings.Join(races, ", ")
	}
}

func (h *NamesHandler) generate(_ context.Context, a menu.Answers) (string, error) {
	race := a.Get("race")
	if !h.gen.Exists(race) {
		_, err := h.gen.GenerateName(race)
		return "", err
	}

	var b strings.Builder
	count, err := strconv.Atoi(a.Get("count"))
	if err != nil {
		count = names.DefaultCount
		fmt.Fprintf(&b, "Using default count of %d.\n\n", count)
	}
	count = names.ClampCount(count)

	generated, err := h.gen.GenerateMultiple(race, count)
	if err != nil {
		return "", err
	}
	fmt.Fprintf(&b, "%s names:\n", names.DisplayName(race))
	for i, name := range generated {
		fmt.Fprintf(&b, "%d. %s\n", i+1, name)
	}
	h.logger.Debug("Generated names", "race", race, "count", count)
	return strings.TrimRight(b.String(), "\n"), nil
}

func (h *NamesHandler) add(_ context.Context, a menu.Answers) (string, error) {
	if !confirmed(a, "overwrite", true) {
		return cancelled, nil
	}
	race := strings.ToLower(a.Get("race"))
	err := h.gen.AddRace(race, wordtable.SplitItems(a.Get("prefixes")), wordtable.SplitItems(a.Get("suffixes")))
	if err != nil {
		return "", err
	}
	return "Added race: " + race, nil
}

func (h *NamesHandler) delete(_ context.Context, a menu.Answers) (string, error) {
	if !confirmed(a, "confirm", false) {
		return cancelled, nil
	}
	race := strings.ToLower(a.Get("race"))
	if err := h.gen.DeleteRace(race); err != nil {
		return "", err
	}
	return "Deleted race: " + race, nil
}

// confirmed reports whether the answer for key is "y". An unanswered prompt
// counts as fallback.
func confirmed(a menu.Answers, key string, fallback bool) bool {
	v, ok := a[key]
	if !ok {
		return fallback
	}
	return strings.EqualFold(v, "y")
}
