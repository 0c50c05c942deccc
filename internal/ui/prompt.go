package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// RenderPrompt renders a yes/no question in a box drawn with the given
// border style. yes selects which choice is highlighted.
func RenderPrompt(question string, yes bool, style BorderStyle) string {
	yesLabel, noLabel := StyleChoiceInactive.Render("[ yes ]"), StyleChoiceActive.Render("[ no ]")
	if yes {
		yesLabel, noLabel = StyleChoiceActive.Render("[ yes ]"), StyleChoiceInactive.Render("[ no ]")
	}
	choices := yesLabel + "  " + noLabel

	gap := lipgloss.Width(question) - lipgloss.Width(choices)
	if gap < 0 {
		gap = 0
	}
	padding := ""
	for i := 0; i < gap; i++ {
		padding += " "
	}

	content := StylePrompt.Render(question) + "\n" + StylePrompt.Render(padding+choices)
	return lipgloss.NewStyle().
		Border(style.Lipgloss()).
		BorderForeground(ColorBorder).
		Render(content)
}
