package ui

import "github.com/charmbracelet/lipgloss"

// Report color palette
var (
	ColorBorder    = lipgloss.Color("#5F87AF")
	ColorTitle     = lipgloss.Color("#FFFFFF")
	ColorLabel     = lipgloss.Color("#8A8A8A")
	ColorValue     = lipgloss.Color("#D7D7D7")
	ColorHot       = lipgloss.Color("#FF8700")
	ColorCold      = lipgloss.Color("#5FAFFF")
	ColorMild      = lipgloss.Color("#87D787")
	ColorRain      = lipgloss.Color("#5F87FF")
	ColorHistoric  = lipgloss.Color("#AF87D7")
	ColorHighlight = lipgloss.Color("#FFD700")
)

// Pre-built styles
var (
	StyleBorder = lipgloss.NewStyle().
			Foreground(ColorBorder)

	StyleTitle = lipgloss.NewStyle().
			Foreground(ColorTitle).
			Bold(true)

	StyleLabel = lipgloss.NewStyle().
			Foreground(ColorLabel)

	StyleValue = lipgloss.NewStyle().
			Foreground(ColorValue).
			Bold(true)

	StyleIcon = lipgloss.NewStyle().
			Foreground(ColorHighlight)

	StyleRain = lipgloss.NewStyle().
			Foreground(ColorRain)

	StyleSection = lipgloss.NewStyle().
			Foreground(ColorHistoric).
			Bold(true)

	StylePrompt = lipgloss.NewStyle().
			Foreground(ColorValue).
			Padding(0, 1)

	StyleChoiceActive = lipgloss.NewStyle().
				Foreground(ColorHighlight).
				Bold(true)

	StyleChoiceInactive = lipgloss.NewStyle().
				Foreground(ColorLabel)
)

// temperatureStyle colors a temperature given in celsius.
func temperatureStyle(celsius float64) lipgloss.Style {
	switch {
	case celsius >= 25:
		return lipgloss.NewStyle().Foreground(ColorHot).Bold(true)
	case celsius <= 5:
		return lipgloss.NewStyle().Foreground(ColorCold).Bold(true)
	default:
		return lipgloss.NewStyle().Foreground(ColorMild).Bold(true)
	}
}
