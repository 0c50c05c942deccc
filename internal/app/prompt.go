package app

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"wthrr.klederson.com/internal/ui"
)

// ConfirmModel is a yes/no prompt.
type ConfirmModel struct {
	question string
	style    ui.BorderStyle
	yes      bool // highlighted choice

	done     bool
	accepted bool
}

// NewConfirm creates a prompt with "yes" highlighted.
func NewConfirm(question string, style ui.BorderStyle) ConfirmModel {
	return ConfirmModel{question: question, style: style, yes: true}
}

// Accepted reports whether the user answered yes.
func (m ConfirmModel) Accepted() bool {
	return m.accepted
}

func (m ConfirmModel) Init() tea.Cmd {
	return nil
}

func (m ConfirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "y", "Y":
		m.accepted = true
		m.done = true
		return m, tea.Quit

	case "n", "N", "q", "Q", "esc", "ctrl+c":
		m.accepted = false
		m.done = true
		return m, tea.Quit

	case "left", "right", "h", "l", "tab", "shift+tab":
		m.yes = !m.yes

	case "enter":
		m.accepted = m.yes
		m.done = true
		return m, tea.Quit
	}

	return m, nil
}

func (m ConfirmModel) View() string {
	if m.done {
		return ""
	}
	return ui.RenderPrompt(m.question, m.yes, m.style) + "\n"
}

// TerminalConfirm returns a Next.Confirm func that runs the prompt on the
// given terminal streams.
func TerminalConfirm(in io.Reader, out io.Writer) func(context.Context, string, ui.BorderStyle) (bool, error) {
	return func(ctx context.Context, question string, style ui.BorderStyle) (bool, error) {
		p := tea.NewProgram(
			NewConfirm(question, style),
			tea.WithContext(ctx),
			tea.WithInput(in),
			tea.WithOutput(out),
		)
		final, err := p.Run()
		if err != nil {
			return false, fmt.Errorf("run prompt: %w", err)
		}
		m, ok := final.(ConfirmModel)
		return ok && m.Accepted(), nil
	}
}
