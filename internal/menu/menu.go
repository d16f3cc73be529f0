// Package menu drives a declarative tree of numbered menus and prompt-based
// actions. It owns navigation state only; rendering and input collection
// belong to the caller.
package menu

import (
	"context"
	"strconv"
	"strings"
)

const (
	InvalidChoice = "Invalid input. Please try again."
	ValueRequired = "A value is required."
)

// Answers holds the values collected by an action's prompts, keyed by
// Prompt.Key.
type Answers map[string]string

// Get returns the answer for key, or "" when it was skipped.
func (a Answers) Get(key string) string {
	return a[key]
}

// Prompt asks for one value before an action runs.
type Prompt struct {
	Key      string
	Label    string
	Optional bool
	// Literal takes "r" as an answer instead of going back, for free-text
	// values such as names and tags.
	Literal bool
	// Hint, when set, is appended to the label, e.g. to list valid choices.
	Hint func(Answers) string
	// When, when set, skips the prompt unless it returns true.
	When func(Answers) bool
	// Validate, when set, rejects an answer and asks again.
	Validate func(string) error
}

// Text renders the prompt label for the current answers.
func (p Prompt) Text(a Answers) string {
	if p.Hint == nil {
		return p.Label
	}
	if hint := p.Hint(a); hint != "" {
		return p.Label + " (" + hint + ")"
	}
	return p.Label
}

// Action runs once every prompt has an answer. The returned text is shown to
// the user; so is the error message.
type Action func(ctx context.Context, a Answers) (string, error)

// Node is either a menu (Children) or an action (Run).
type Node struct {
	ID       string
	Label    string
	Children []*Node
	Prompts  []Prompt
	Run      Action
	// Intro, when set, is shown when the action starts.
	Intro func() string
	// Repeat keeps the action open after it runs so it can be used again
	// until the user goes back.
	Repeat bool
}

// IsMenu reports whether the node lists children.
func (n *Node) IsMenu() bool {
	return n.Run == nil
}

// Screen is what the caller should render.
type Screen struct {
	Path    []string // labels from the root to the current node
	Options []string // numbered menu entries, empty while prompting
	Prompt  string   // current question, empty while in a menu
	Output  string
	IsError bool
}

// Session walks a tree. It is not safe for concurrent use.
type Session struct {
	ctx     context.Context
	stack   []*Node
	action  *Node
	answers Answers
	step    int
	output  string
	isError bool
	done    bool
}

// NewSession starts at root, which must be a menu.
func NewSession(ctx context.Context, root *Node) *Session {
	return &Session{ctx: ctx, stack: []*Node{root}}
}

// Done reports whether the user quit from the root menu.
func (s *Session) Done() bool {
	return s.done
}

// Resume clears Done, e.g. when the user cancels quitting.
func (s *Session) Resume() {
	s.done = false
}

// Current returns the menu or action the user is in.
func (s *Session) Current() *Node {
	if s.action != nil {
		return s.action
	}
	return s.stack[len(s.stack)-1]
}

// View describes the current screen.
func (s *Session) View() Screen {
	screen := Screen{Output: s.output, IsError: s.isError}
	for _, n := range s.stack {
		screen.Path = append(screen.Path, n.Label)
	}

	if s.action != nil {
		screen.Path = append(screen.Path, s.action.Label)
		if s.step < len(s.action.Prompts) {
			screen.Prompt = s.action.Prompts[s.step].Text(s.answers)
		}
		return screen
	}

	menu := s.stack[len(s.stack)-1]
	for i, c := range menu.Children {
		screen.Options = append(screen.Options, "Option "+strconv.Itoa(i+1)+": "+c.Label)
	}
	back := "Back"
	if len(s.stack) == 1 {
		back = "Quit"
	}
	screen.Options = append(screen.Options, "Option "+strconv.Itoa(len(menu.Children)+1)+": "+back)
	return screen
}

// Submit feeds one line of user input to the session. "q" in a menu and
// "r" at a prompt act like Back, except at Literal prompts where "r" is
// recorded as the answer.
func (s *Session) Submit(input string) {
	input = strings.TrimSpace(input)
	if s.action != nil {
		if strings.EqualFold(input, "r") && !s.action.Prompts[s.step].Literal {
			s.clearOutput()
			s.Back()
			return
		}
		s.answer(input)
		return
	}
	s.choose(input)
}

// Back leaves the current action, or the current menu. Going back from the
// root ends the session.
func (s *Session) Back() {
	if s.action != nil {
		s.action = nil
		s.answers = nil
		s.step = 0
		return
	}
	if len(s.stack) == 1 {
		s.done = true
		return
	}
	s.stack = s.stack[:len(s.stack)-1]
}

// Select opens the n-th (1-based) entry of the current menu.
func (s *Session) Select(n int) {
	menu := s.stack[len(s.stack)-1]
	switch {
	case n == len(menu.Children)+1:
		s.clearOutput()
		s.Back()
	case n >= 1 && n <= len(menu.Children):
		s.clearOutput()
		s.open(menu.Children[n-1])
	default:
		s.setOutput(InvalidChoice, true)
	}
}

func (s *Session) choose(input string) {
	if strings.EqualFold(input, "q") {
		s.clearOutput()
		s.Back()
		return
	}
	n, err := strconv.Atoi(input)
	if err != nil {
		s.setOutput(InvalidChoice, true)
		return
	}
	s.Select(n)
}

func (s *Session) open(n *Node) {
	if n.IsMenu() {
		s.stack = append(s.stack, n)
		return
	}
	s.action = n
	if n.Intro != nil {
		s.setOutput(n.Intro(), false)
	}
	s.answers = Answers{}
	s.step = -1
	s.advance()
}

// advance moves to the next prompt that applies, running the action when
// none are left.
func (s *Session) advance() {
	if !s.nextPrompt() {
		s.run()
	}
}

// nextPrompt steps to the next applicable prompt and reports whether one
// was found.
func (s *Session) nextPrompt() bool {
	for s.step++; s.step < len(s.action.Prompts); s.step++ {
		p := s.action.Prompts[s.step]
		if p.When == nil || p.When(s.answers) {
			return true
		}
	}
	return false
}

func (s *Session) answer(input string) {
	p := s.action.Prompts[s.step]
	if input == "" && !p.Optional {
		s.setOutput(ValueRequired, true)
		return
	}
	if p.Validate != nil && input != "" {
		if err := p.Validate(input); err != nil {
			s.setOutput(err.Error(), true)
			return
		}
	}
	s.answers[p.Key] = input
	s.advance()
}

func (s *Session) run() {
	out, err := s.action.Run(s.ctx, s.answers)
	if err != nil {
		s.setOutput(err.Error(), true)
	} else {
		s.setOutput(out, false)
	}

	if s.action.Repeat {
		s.answers = Answers{}
		s.step = -1
		if s.nextPrompt() {
			return
		}
	}
	s.action = nil
	s.answers = nil
	s.step = 0
}

func (s *Session) setOutput(text string, isError bool) {
	s.output = text
	s.isError = isError
}

func (s *Session) clearOutput() {
	s.setOutput("", false)
}
