package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jwebster45206/ttrpg-tools/internal/menu"
	"github.com/jwebster45206/ttrpg-tools/pkg/titles"
	"github.com/jwebster45206/ttrpg-tools/pkg/wordtable"
)

// TitlesHandler serves the title generator and component actions.
type TitlesHandler struct {
	gen    *titles.Generator
	logger *slog.Logger
}

// NewTitlesHandler creates a TitlesHandler for gen.
func NewTitlesHandler(gen *titles.Generator, logger *slog.Logger) *TitlesHandler {
	return &TitlesHandler{gen: gen, logger: logger}
}

func (h *TitlesHandler) Node() *menu.Node {
	complexity := menu.Prompt{
		Key:   "complexity",
		Label: "Simple or complex title? (simple/complex)",
		Validate: func(v string) error {
			_, err := titles.ParseComplexity(v)
			return err
		},
	}
	sentiment := menu.Prompt{
		Key:   "sentiment",
		Label: "Positive or negative title? (positive/negative)",
		Validate: func(v string) error {
			_, err := titles.ParseSentiment(v)
			return err
		},
	}

	return &menu.Node{
		ID:    "titles",
		Label: "Generate a title",
		Children: []*menu.Node{
			{
				ID:      "titles.generate",
				Label:   "Generate title",
				Prompts: []menu.Prompt{complexity, sentiment},
				Run: func(_ context.Context, a menu.Answers) (string, error) {
					return h.gen.Generate(a.Get("complexity"), a.Get("sentiment"))
				},
			},
			{
				ID:    "titles.add",
				Label: "Add title components",
				Prompts: []menu.Prompt{
					complexity,
					sentiment,
					{
						Key:   "component",
						Label: "Which component?",
						Hint:  componentHint,
						When: func(a menu.Answers) bool {
							c, _ := titles.ParseComplexity(a.Get("complexity"))
							return c == titles.Complex
						},
					},
					{Key: "items", Label: "Enter new entries (comma-separated)", Literal: true},
				},
				Run: h.add,
			},
		},
	}
}

func componentHint(a menu.Answers) string {
	c, _ := titles.ParseComplexity(a.Get("complexity"))
	s, _ := titles.ParseSentiment(a.Get("sentiment"))
	return strings.Join(titles.Components(c, s), "/")
}

func (h *TitlesHandler) add(_ context.Context, a menu.Answers) (string, error) {
	items := wordtable.CleanItems(wordtable.SplitItems(a.Get("items")))
	err := h.gen.AddComponent(a.Get("complexity"), a.Get("sentiment"), strings.ToLower(a.Get("component")), items)
	if err != nil {
		return "", err
	}
	target := strings.ToLower(a.Get("sentiment")) + " " + strings.ToLower(a.Get("complexity")) + " titles"
	if c := a.Get("component"); c != "" {
		target += " (" + strings.ToLower(c) + ")"
	}
	return fmt.Sprintf("Added %d entries to %s.", len(items), target), nil
}
