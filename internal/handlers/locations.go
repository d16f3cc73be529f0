package handlers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/jwebster45206/ttrpg-tools/internal/menu"
	"github.com/jwebster45206/ttrpg-tools/pkg/ledger"
	"github.com/jwebster45206/ttrpg-tools/pkg/locations"
	"github.com/jwebster45206/ttrpg-tools/pkg/wordtable"
)

const ExportTitle = "Saved Location Names"

var errNothingToSave = errors.New("Generate a location name first.")

// LocationsHandler remembers the last generated name so it can be saved.
type LocationsHandler struct {
	gen        *locations.Generator
	exportPath string
	last       string
	logger     *slog.Logger
}

// NewLocationsHandler creates a LocationsHandler exporting PDFs to exportPath.
func NewLocationsHandler(gen *locations.Generator, exportPath string, logger *slog.Logger) *LocationsHandler {
	return &LocationsHandler{gen: gen, exportPath: exportPath, logger: logger}
}

// Last returns the most recently generated name, or "".
func (h *LocationsHandler) Last() string {
	return h.last
}

func (h *LocationsHandler) Node() *menu.Node {
	kinds := []string{locations.Terrain, locations.PrefixComponent, locations.SuffixComponent}

	return &menu.Node{
		ID:    "locations",
		Label: "Generate a location name",
		Children: []*menu.Node{
			{
				ID:    "locations.generate",
				Label: "Generate location name",
				Prompts: []menu.Prompt{
					{
						Key:      "terrain",
						Label:    "Terrain type",
						Optional: true,
						Hint: func(menu.Answers) string {
							return strings.Join(h.gen.Terrains(), "/") + ", blank for random"
						},
					},
				},
				Run: h.generate,
			},
			{
				ID:    "locations.save",
				Label: "Save last generated name",
				Intro: func() string {
					if h.last == "" {
						return errNothingToSave.Error()
					}
					return "Last generated: " + h.last
				},
				Prompts: []menu.Prompt{
					{Key: "tags", Label: "Tags (comma-separated, optional)", Optional: true, Literal: true},
				},
				Run: h.save,
			},
			{
				ID:    "locations.list",
				Label: "List saved names",
				Prompts: []menu.Prompt{
					{Key: "tag", Label: "Filter by tag (blank for all)", Optional: true, Literal: true},
				},
				Run: func(_ context.Context, a menu.Answers) (string, error) {
					return h.gen.ListSaved(a.Get("tag")), nil
				},
			},
			{
				ID:    "locations.add",
				Label: "Add location components",
				Prompts: []menu.Prompt{
					{
						Key:   "kind",
						Label: "Component type (" + strings.Join(kinds, "/") + ")",
						Validate: func(v string) error {
							if !slices.Contains(kinds, strings.ToLower(v)) {
								return locations.ErrInvalidComponent
							}
							return nil
						},
					},
					{
						Key:   "category",
						Label: "Category",
						Hint: func(a menu.Answers) string {
							return strings.Join(locations.Categories(a.Get("kind")), "/")
						},
					},
					{Key: "items", Label: "Enter new entries (comma-separated)", Literal: true},
				},
				Run: h.add,
			},
			{
				ID:    "locations.export",
				Label: "Export saved names to PDF",
				Prompts: []menu.Prompt{
					{Key: "tag", Label: "Filter by tag (blank for all)", Optional: true, Literal: true},
				},
				Run: h.export,
			},
		},
	}
}

func (h *LocationsHandler) generate(_ context.Context, a menu.Answers) (string, error) {
	name, err := h.gen.Generate(a.Get("terrain"))
	if err != nil {
		return "", err
	}
	h.last = name
	return name, nil
}

func (h *LocationsHandler) save(ctx context.Context, a menu.Answers) (string, error) {
	if h.last == "" {
		return "", errNothingToSave
	}
	return h.gen.SaveName(ctx, h.last, wordtable.SplitItems(a.Get("tags")))
}

func (h *LocationsHandler) add(_ context.Context, a menu.Answers) (string, error) {
	kind := strings.ToLower(a.Get("kind"))
	category := strings.ToLower(a.Get("category"))
	items := wordtable.CleanItems(wordtable.SplitItems(a.Get("items")))
	if err := h.gen.AddComponent(kind, category, items); err != nil {
		return "", err
	}
	return fmt.Sprintf("Added %d entries to %s/%s.", len(items), kind, category), nil
}

func (h *LocationsHandler) export(_ context.Context, a menu.Answers) (string, error) {
	history := h.gen.Ledger()
	if history == nil {
		return "", ledger.ErrNoLedger
	}
	entries := history.Entries(a.Get("tag"))
	if err := ledger.ExportPDF(entries, ExportTitle, h.exportPath); err != nil {
		h.logger.Error("Failed to export saved names", "path", h.exportPath, "error", err)
		return "", err
	}
	h.logger.Info("Exported saved names", "path", h.exportPath, "count", len(entries))
	return fmt.Sprintf("Exported %d names to %s", len(entries), h.exportPath), nil
}
