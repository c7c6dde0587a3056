package prompt

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	keyUp    = "up"
	keyDown  = "down"
	keyEnter = "enter"
	keyEsc   = "esc"
	keyCtrlC = "ctrl+c"
)

var (
	questionStyle = lipgloss.NewStyle().Bold(true)
	markStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	answerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// SelectModel is a single-choice list.
type SelectModel struct {
	message string
	choices []string
	cursor  int
	done    bool
	aborted bool
}

// NewSelectModel creates a list with the cursor on the first choice.
func NewSelectModel(message string, choices []string) SelectModel {
	return SelectModel{message: message, choices: choices}
}

// Init implements tea.Model.
func (m SelectModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m SelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case keyUp, "k":
		if m.cursor > 0 {
			m.cursor--
		} else {
			m.cursor = len(m.choices) - 1
		}
	case keyDown, "j":
		if m.cursor < len(m.choices)-1 {
			m.cursor++
		} else {
			m.cursor = 0
		}
	case keyEnter:
		m.done = true

		return m, tea.Quit
	case keyEsc, keyCtrlC:
		m.aborted = true

		return m, tea.Quit
	}

	return m, nil
}

// View implements tea.Model.
func (m SelectModel) View() string {
	var b strings.Builder

	b.WriteString(markStyle.Render("?") + " " + questionStyle.Render(m.message))

	if m.done {
		b.WriteString(" " + answerStyle.Render(m.Choice()) + "\n")

		return b.String()
	}

	if m.aborted {
		b.WriteString("\n")

		return b.String()
	}

	b.WriteString("\n")

	for i, choice := range m.choices {
		if i == m.cursor {
			b.WriteString(cursorStyle.Render("> "+choice) + "\n")

			continue
		}

		b.WriteString("  " + choice + "\n")
	}

	return b.String()
}

// Choice returns the item under the cursor.
func (m SelectModel) Choice() string {
	if len(m.choices) == 0 {
		return ""
	}

	return m.choices[m.cursor]
}

// Done reports whether a choice was confirmed.
func (m SelectModel) Done() bool { return m.done }

// Aborted reports whether the user cancelled the prompt.
func (m SelectModel) Aborted() bool { return m.aborted }

// InputModel is a single-line text question with inline validation.
type InputModel struct {
	message  string
	input    textinput.Model
	validate ValidateFn
	err      error
	done     bool
	aborted  bool
}

// NewInputModel creates a focused text input. A nil validate accepts anything.
func NewInputModel(message string, validate ValidateFn) InputModel {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Focus()

	return InputModel{message: message, input: ti, validate: validate}
}

// Init implements tea.Model.
func (m InputModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m InputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case keyEnter:
			if m.validate != nil {
				if err := m.validate(m.input.Value()); err != nil {
					m.err = err

					return m, nil
				}
			}

			m.err = nil
			m.done = true
			m.input.Blur()

			return m, tea.Quit
		case keyEsc, keyCtrlC:
			m.aborted = true

			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

// View implements tea.Model.
func (m InputModel) View() string {
	var b strings.Builder

	b.WriteString(markStyle.Render("?") + " " + questionStyle.Render(m.message) + " ")

	if m.done {
		b.WriteString(answerStyle.Render(m.Value()) + "\n")

		return b.String()
	}

	b.WriteString(m.input.View() + "\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render(">> "+m.err.Error()) + "\n")
	}

	return b.String()
}

// Value returns the text typed so far.
func (m InputModel) Value() string { return m.input.Value() }

// Err returns the last validation error, if any.
func (m InputModel) Err() error { return m.err }

// Done reports whether a valid answer was submitted.
func (m InputModel) Done() bool { return m.done }

// Aborted reports whether the user cancelled the prompt.
func (m InputModel) Aborted() bool { return m.aborted }
