package menu

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTree(calls *[]Answers) *Node {
	record := func(out string) Action {
		return func(_ context.Context, a Answers) (string, error) {
			*calls = append(*calls, a)
			return out, nil
		}
	}
	return &Node{
		ID:    "root",
		Label: "Main Menu",
		Children: []*Node{
			{
				ID:     "roll",
				Label:  "Roll dice",
				Repeat: true,
				Prompts: []Prompt{
					{Key: "expr", Label: "Dice"},
				},
				Run: record("rolled"),
			},
			{
				ID:    "names",
				Label: "Names",
				Children: []*Node{
					{
						ID:    "generate",
						Label: "Generate",
						Intro: func() string { return "Available races: elf" },
						Prompts: []Prompt{
							{Key: "race", Label: "Race", Hint: func(Answers) string { return "elf" }},
							{Key: "count", Label: "Count", Optional: true},
						},
						Run: record("Elrond"),
					},
					{
						ID:    "add",
						Label: "Add race",
						Prompts: []Prompt{
							{Key: "name", Label: "Name", Literal: true},
							{
								Key:   "overwrite",
								Label: "Overwrite?",
								When:  func(a Answers) bool { return a.Get("name") == "elf" },
							},
							{
								Key:   "size",
								Label: "Size",
								Validate: func(v string) error {
									if v != "small" && v != "large" {
										return errors.New("size must be small or large")
									}
									return nil
								},
							},
						},
						Run: func(_ context.Context, a Answers) (string, error) {
							*calls = append(*calls, a)
							return "", errors.New("disk full")
						},
					},
					{ID: "list", Label: "List races", Run: record("elf, dwarf")},
				},
			},
		},
	}
}

func TestSession_RootView(t *testing.T) {
	s := NewSession(context.Background(), testTree(&[]Answers{}))

	v := s.View()
	assert.Equal(t, []string{"Main Menu"}, v.Path)
	assert.Equal(t, []string{"Option 1: Roll dice", "Option 2: Names", "Option 3: Quit"}, v.Options)
	assert.Empty(t, v.Prompt)
	assert.False(t, s.Done())
}

func TestSession_InvalidChoice(t *testing.T) {
	s := NewSession(context.Background(), testTree(&[]Answers{}))

	for _, in := range []string{"abc", "0", "9", ""} {
		s.Submit(in)
		v := s.View()
		assert.Equal(t, InvalidChoice, v.Output, "input %q", in)
		assert.True(t, v.IsError)
		assert.Equal(t, "root", s.Current().ID)
	}
}

func TestSession_QuitFromRoot(t *testing.T) {
	s := NewSession(context.Background(), testTree(&[]Answers{}))
	s.Submit("3")
	assert.True(t, s.Done())

	s = NewSession(context.Background(), testTree(&[]Answers{}))
	s.Submit("Q")
	assert.True(t, s.Done())

	s.Resume()
	assert.False(t, s.Done())
	assert.Equal(t, "root", s.Current().ID)
}

func TestSession_SubmenuBack(t *testing.T) {
	s := NewSession(context.Background(), testTree(&[]Answers{}))
	s.Submit("2")

	v := s.View()
	assert.Equal(t, []string{"Main Menu", "Names"}, v.Path)
	assert.Equal(t, "Option 4: Back", v.Options[3])

	s.Submit("4")
	assert.Equal(t, "root", s.Current().ID)
	assert.False(t, s.Done())

	s.Submit("2")
	s.Submit("q")
	assert.Equal(t, "root", s.Current().ID)
	assert.False(t, s.Done())
}

func TestSession_ActionPrompts(t *testing.T) {
	var calls []Answers
	s := NewSession(context.Background(), testTree(&calls))
	s.Submit("2")
	s.Submit("1")

	v := s.View()
	assert.Equal(t, "Available races: elf", v.Output)
	assert.Equal(t, "Race (elf)", v.Prompt)
	assert.Equal(t, []string{"Main Menu", "Names", "Generate"}, v.Path)
	assert.Empty(t, v.Options)

	s.Submit("")
	assert.Equal(t, ValueRequired, s.View().Output)
	assert.Equal(t, "Race (elf)", s.View().Prompt)

	s.Submit("  elf ")
	assert.Equal(t, "Count", s.View().Prompt)

	s.Submit("")
	require.Len(t, calls, 1)
	assert.Equal(t, "elf", calls[0].Get("race"))
	assert.Equal(t, "", calls[0].Get("count"))

	v = s.View()
	assert.Equal(t, "Elrond", v.Output)
	assert.False(t, v.IsError)
	assert.Equal(t, "names", s.Current().ID)
}

func TestSession_ConditionalAndValidatedPrompts(t *testing.T) {
	var calls []Answers
	s := NewSession(context.Background(), testTree(&calls))
	s.Submit("2")
	s.Submit("2")

	s.Submit("gnome")
	assert.Equal(t, "Size", s.View().Prompt, "overwrite prompt is skipped for a new race")

	s.Submit("medium")
	v := s.View()
	assert.Equal(t, "size must be small or large", v.Output)
	assert.True(t, v.IsError)
	assert.Equal(t, "Size", v.Prompt)

	s.Submit("small")
	require.Len(t, calls, 1)
	_, asked := calls[0]["overwrite"]
	assert.False(t, asked)

	v = s.View()
	assert.Equal(t, "disk full", v.Output)
	assert.True(t, v.IsError)
	assert.Equal(t, "names", s.Current().ID)

	s.Submit("2")
	s.Submit("elf")
	assert.Equal(t, "Overwrite?", s.View().Prompt)
}

func TestSession_ActionWithoutPrompts(t *testing.T) {
	var calls []Answers
	s := NewSession(context.Background(), testTree(&calls))
	s.Submit("2")
	s.Submit("3")

	require.Len(t, calls, 1)
	assert.Equal(t, "elf, dwarf", s.View().Output)
	assert.Equal(t, "names", s.Current().ID)
}

func TestSession_RepeatingAction(t *testing.T) {
	var calls []Answers
	s := NewSession(context.Background(), testTree(&calls))
	s.Submit("1")

	s.Submit("2d6")
	s.Submit("1d20")
	require.Len(t, calls, 2)
	assert.Equal(t, "1d20", calls[1].Get("expr"))

	v := s.View()
	assert.Equal(t, "rolled", v.Output)
	assert.Equal(t, "Dice", v.Prompt)
	assert.Equal(t, "roll", s.Current().ID)

	s.Back()
	assert.Equal(t, "root", s.Current().ID)
	assert.False(t, s.Done())
}

func TestSession_BackAbandonsAnswers(t *testing.T) {
	var calls []Answers
	s := NewSession(context.Background(), testTree(&calls))
	s.Submit("2")
	s.Submit("1")
	s.Submit("elf")
	s.Back()

	assert.Equal(t, "names", s.Current().ID)
	assert.Empty(t, calls)

	s.Submit("1")
	assert.True(t, strings.HasPrefix(s.View().Prompt, "Race"))
}

func TestSession_ReturnFromPrompt(t *testing.T) {
	var calls []Answers
	s := NewSession(context.Background(), testTree(&calls))
	s.Submit("1")
	s.Submit("2d6")
	s.Submit("R")

	assert.Equal(t, "root", s.Current().ID)
	assert.Empty(t, s.View().Output)
	assert.Len(t, calls, 1)
}

func TestSession_LiteralPromptKeepsR(t *testing.T) {
	var calls []Answers
	s := NewSession(context.Background(), testTree(&calls))
	s.Submit("2")
	s.Submit("2")

	s.Submit("r")
	assert.Equal(t, "Size", s.View().Prompt)
	assert.Equal(t, "add", s.Current().ID)

	s.Submit("r")
	assert.Equal(t, "names", s.Current().ID, "non-literal prompt still goes back")
	assert.Empty(t, calls)
}

func TestNode_IsMenu(t *testing.T) {
	root := testTree(&[]Answers{})

	assert.True(t, root.IsMenu())
	assert.True(t, root.Children[1].IsMenu())
	assert.False(t, root.Children[0].IsMenu())
}
