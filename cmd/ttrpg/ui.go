package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jwebster45206/ttrpg-tools/internal/menu"
	"github.com/muesli/reflow/wordwrap"
)

const (
	AppTitle        = "TTRPG TOOLS"
	MenuPrompt      = "What would you like to do? (q to quit)"
	PlaceHolderText = "Type a number or an answer..."
)

// ConsoleUI is the BubbleTea model that renders a menu session.
// https://github.com/charmbracelet/bubbletea
type ConsoleUI struct {
	session   *menu.Session
	sessionID string
	logger    *slog.Logger

	viewport viewport.Model
	input    textinput.Model
	ready    bool
	width    int
	height   int

	// Transient notice such as a clipboard result
	status string

	// Quit confirmation state
	showQuitModal bool
}

var (
	panelStyle = lipgloss.NewStyle().
			PaddingTop(1).
			PaddingLeft(3).
			PaddingRight(3)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")). // pink
			Bold(true)

	pathStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")) // purple

	optionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")) // teal

	outputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")) // green

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")) // red

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")) // yellow

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey

	separatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2).
			Background(lipgloss.Color("235")).
			Foreground(lipgloss.Color("255"))

	modalTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Align(lipgloss.Center)
)

func NewConsoleUI(session *menu.Session, sessionID string, logger *slog.Logger) ConsoleUI {
	ti := textinput.New()
	ti.Placeholder = PlaceHolderText
	ti.Prompt = promptStyle.Render(":: ")
	ti.CharLimit = 500
	ti.Focus()

	vp := viewport.New(60, 20)
	vp.MouseWheelEnabled = true

	return ConsoleUI{
		session:   session,
		sessionID: sessionID,
		logger:    logger,
		viewport:  vp,
		input:     ti,
	}
}

// writeContent renders the session screen into the viewport for the current
// width.
func (m *ConsoleUI) writeContent() {
	width := max(m.viewport.Width, 20)
	screen := m.session.View()

	var content strings.Builder
	content.WriteString(titleStyle.Render(AppTitle) + "\n")
	content.WriteString(pathStyle.Render(strings.Join(screen.Path, " > ")) + "\n\n")

	for _, opt := range screen.Options {
		content.WriteString(optionStyle.Render(wordwrap.String(opt, width)) + "\n")
	}
	if len(screen.Options) > 0 {
		content.WriteString("\n")
	}

	if screen.Output != "" {
		content.WriteString(separatorStyle.Render(strings.Repeat("─", width)) + "\n\n")
		style := outputStyle
		if screen.IsError {
			style = errorStyle
		}
		content.WriteString(style.Render(wordwrap.String(screen.Output, width)) + "\n")
	}

	m.viewport.SetContent(content.String())
	m.viewport.GotoTop()
}

func (m ConsoleUI) promptText() string {
	if p := m.session.View().Prompt; p != "" {
		return p
	}
	return MenuPrompt
}

func (m ConsoleUI) Init() tea.Cmd {
	return textinput.Blink
}

func (m ConsoleUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.showQuitModal {
		return m.updateQuitModal(msg)
	}

	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.MouseMsg:
		m.viewport, vpCmd = m.viewport.Update(msg)
		return m, vpCmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		m.viewport.Width = m.width - 6 // left(3) + right(3) padding
		m.viewport.Height = m.height - 7
		m.input.Width = m.width - 10
		m.ready = true
		m.writeContent()

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			m.showQuitModal = true
			return m, nil
		case tea.KeyEsc:
			m.status = ""
			m.session.Back()
			if m.session.Done() {
				m.showQuitModal = true
			}
			m.writeContent()
			return m, nil
		case tea.KeyCtrlY:
			m.status = m.copyOutput()
			return m, nil
		case tea.KeyEnter:
			input := m.input.Value()
			m.input.Reset()
			m.status = ""
			m.session.Submit(input)
			m.logger.Debug("Input submitted", "node", m.session.Current().ID)
			if m.session.Done() {
				m.showQuitModal = true
			}
			m.writeContent()
			return m, nil
		case tea.KeyPgUp, tea.KeyPgDown:
			m.viewport, vpCmd = m.viewport.Update(msg)
			return m, vpCmd
		}
	}

	m.input, tiCmd = m.input.Update(msg)
	return m, tiCmd
}

func (m ConsoleUI) copyOutput() string {
	out := m.session.View().Output
	if out == "" {
		return "Nothing to copy yet."
	}
	if err := clipboard.WriteAll(out); err != nil {
		m.logger.Warn("Failed to copy to clipboard", "error", err)
		return "Clipboard unavailable: " + err.Error()
	}
	return "Copied to clipboard."
}

func (m ConsoleUI) updateQuitModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEnter:
			return m, tea.Quit
		case tea.KeyEsc:
			return m.cancelQuit()
		default:
			switch msg.String() {
			case "y", "Y":
				return m, tea.Quit
			case "n", "N":
				return m.cancelQuit()
			}
		}
	}

	return m, nil
}

func (m ConsoleUI) cancelQuit() (tea.Model, tea.Cmd) {
	m.showQuitModal = false
	m.session.Resume()
	m.writeContent()
	m.input.Focus()
	return m, textinput.Blink
}

func (m ConsoleUI) renderQuitModal() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var content strings.Builder
	content.WriteString(modalTitleStyle.Render("Quit?"))
	content.WriteString("\n\n")
	content.WriteString("Are you sure you want to leave the table?")
	content.WriteString("\n\n")
	content.WriteString(promptStyle.Render("Press Y to quit, N to continue, or Ctrl+C to force quit"))

	modal := modalStyle.Width(50).Render(content.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal, lipgloss.WithWhitespaceChars(" "))
}

func (m ConsoleUI) View() string {
	if m.showQuitModal {
		return m.renderQuitModal()
	}

	if !m.ready {
		return "\n  Initializing..."
	}

	footer := promptStyle.Render(fmt.Sprintf("Enter: submit • Esc: back • Ctrl+Y: copy output • Ctrl+C: quit • session %.8s", m.sessionID))
	if m.status != "" {
		footer = statusStyle.Render(m.status)
	}

	return panelStyle.Width(m.width).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			m.viewport.View(),
			separatorStyle.Render(strings.Repeat("─", max(m.width-6, 1))),
			promptStyle.Render(wordwrap.String(m.promptText(), max(m.width-6, 20))),
			m.input.View(),
			footer,
		),
	)
}
