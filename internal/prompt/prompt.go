// Package prompt handles interactive selection and text input for regsw commands.
package prompt

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

// Sentinel errors returned by prompts.
var (
	ErrAborted   = errors.New("prompt aborted")
	ErrNoChoices = errors.New("nothing to choose from")
)

// ValidateFn checks a text answer. A non-nil error is shown inline and the question is asked again.
type ValidateFn func(string) error

// Prompter asks the user questions.
type Prompter interface {
	// Select shows a single-choice list and returns the chosen item.
	Select(message string, choices []string) (string, error)
	// Input asks for a line of text until validate accepts it.
	Input(message string, validate ValidateFn) (string, error)
}

// TTY runs prompts as bubbletea programs on a terminal.
type TTY struct {
	in  io.Reader
	out io.Writer
}

// NewTTY creates a TTY prompter on stdin/stdout.
func NewTTY() *TTY {
	return &TTY{in: os.Stdin, out: os.Stdout}
}

// Select implements Prompter.
func (t *TTY) Select(message string, choices []string) (string, error) {
	if len(choices) == 0 {
		return "", ErrNoChoices
	}

	final, err := t.run(NewSelectModel(message, choices))
	if err != nil {
		return "", err
	}

	m, ok := final.(SelectModel)
	if !ok {
		return "", fmt.Errorf("unexpected select model %T", final)
	}

	if m.Aborted() {
		return "", ErrAborted
	}

	return m.Choice(), nil
}

// Input implements Prompter.
func (t *TTY) Input(message string, validate ValidateFn) (string, error) {
	final, err := t.run(NewInputModel(message, validate))
	if err != nil {
		return "", err
	}

	m, ok := final.(InputModel)
	if !ok {
		return "", fmt.Errorf("unexpected input model %T", final)
	}

	if m.Aborted() {
		return "", ErrAborted
	}

	return m.Value(), nil
}

func (t *TTY) run(model tea.Model) (tea.Model, error) {
	final, err := tea.NewProgram(model, tea.WithInput(t.in), tea.WithOutput(t.out)).Run()
	if err != nil {
		return nil, fmt.Errorf("running prompt: %w", err)
	}

	return final, nil
}
