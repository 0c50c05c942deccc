package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"wthrr.klederson.com/internal/weather"
)

// Product is everything one report displays.
type Product struct {
	Address    string
	Weather    weather.Weather
	Historical []weather.Day
}

// row is one panel line: either text or a separator.
type row struct {
	text  string
	sep   Separator
	isSep bool
}

func textRow(s string) row   { return row{text: s} }
func sepRow(s Separator) row { return row{sep: s, isSep: true} }
func (r row) width() int     { return lipgloss.Width(r.text) }

// painter applies styles only when color output is enabled.
type painter struct {
	color bool
}

func (p painter) paint(s lipgloss.Style, text string) string {
	if !p.color {
		return text
	}
	return s.Render(text)
}

// Render draws the report as a bordered panel. Every returned line has the
// same terminal width.
func (p Product) Render(style BorderStyle, color bool) string {
	pt := painter{color: color}
	units := p.Weather.Units

	rows := []row{
		textRow(pt.paint(StyleTitle, p.Address)),
		sepRow(SeparatorDashed),
	}
	rows = append(rows, p.currentRows(pt, units)...)

	if len(p.Weather.Daily) > 0 {
		rows = append(rows, sepRow(SeparatorSingle))
		for _, d := range p.Weather.Daily {
			rows = append(rows, textRow(dayLine(pt, d, d.Date.Format("Mon 02 Jan"), units)))
		}
	}

	if len(p.Historical) > 0 {
		rows = append(rows, sepRow(SeparatorDouble))
		rows = append(rows, textRow(pt.paint(StyleSection, "Historical")))
		for _, d := range p.Historical {
			rows = append(rows, textRow(dayLine(pt, d, d.Date.Format("2006-01-02"), units)))
		}
	}
	rows = append(rows, sepRow(SeparatorBlank))

	return panel(rows, style, pt)
}

func (p Product) currentRows(pt painter, units weather.Units) []row {
	cur := p.Weather.Current
	cond := weather.Describe(cur.Code)
	tempSym := units.TemperatureSymbol()

	headline := fmt.Sprintf("%s  %s  %s",
		pt.paint(StyleIcon, cond.Icon),
		pt.paint(StyleValue, cond.Description),
		pt.paint(temperatureStyle(toCelsius(cur.Temperature, units)), fmt.Sprintf("%.1f%s", cur.Temperature, tempSym)),
	)

	fields := []struct{ label, value string }{
		{"Feels like", fmt.Sprintf("%.1f%s", cur.ApparentTemperature, tempSym)},
		{"Humidity", fmt.Sprintf("%d%%", cur.Humidity)},
		{"Wind", fmt.Sprintf("%.1f %s %s", cur.WindSpeed, units.SpeedSymbol(), windDirection(cur.WindDirection))},
		{"Pressure", fmt.Sprintf("%.0f hPa", cur.Pressure)},
	}

	rows := []row{textRow(headline)}
	if !cur.Time.IsZero() {
		rows = append(rows, textRow(pt.paint(StyleLabel, cur.Time.Format("Mon, 02 Jan 15:04"))))
	}
	rows = append(rows, textRow(""))
	for i := 0; i < len(fields); i += 2 {
		left := pt.paint(StyleLabel, fmt.Sprintf("%-11s", fields[i].label)) + pt.paint(StyleValue, fmt.Sprintf("%-12s", fields[i].value))
		right := pt.paint(StyleLabel, fmt.Sprintf("%-9s", fields[i+1].label)) + pt.paint(StyleValue, fields[i+1].value)
		rows = append(rows, textRow(left+right))
	}
	return rows
}

func dayLine(pt painter, d weather.Day, label string, units weather.Units) string {
	cond := weather.Describe(d.Code)
	high := pt.paint(temperatureStyle(toCelsius(d.TempMax, units)), fmt.Sprintf("%5.1f°", d.TempMax))
	low := pt.paint(temperatureStyle(toCelsius(d.TempMin, units)), fmt.Sprintf("%5.1f°", d.TempMin))
	rain := pt.paint(StyleRain, fmt.Sprintf("%5.1f %s", d.Precipitation, units.PrecipitationSymbol()))

	return fmt.Sprintf("%s  %s  %s / %s  %s  %s",
		pt.paint(StyleLabel, label),
		pt.paint(StyleIcon, cond.Icon),
		high, low, rain,
		cond.Description,
	)
}

// panel wraps rows in a border of the given style. The interior width is
// the widest row plus one column of padding on each side.
func panel(rows []row, style BorderStyle, pt painter) string {
	inner := 0
	for _, r := range rows {
		if !r.isSep {
			inner = max(inner, r.width())
		}
	}
	width := inner + 2

	left := pt.paint(StyleBorder, Left.Glyph(style))
	right := pt.paint(StyleBorder, Right.Glyph(style))

	lines := make([]string, 0, len(rows)+2)
	lines = append(lines, pt.paint(StyleBorder, EdgeTop.Render(width, style)))
	for _, r := range rows {
		if r.isSep {
			lines = append(lines, pt.paint(StyleBorder, r.sep.Render(width, style)))
			continue
		}
		pad := strings.Repeat(" ", inner-r.width())
		lines = append(lines, left+" "+r.text+pad+" "+right)
	}
	lines = append(lines, pt.paint(StyleBorder, EdgeBottom.Render(width, style)))
	return strings.Join(lines, "\n")
}

func toCelsius(v float64, units weather.Units) float64 {
	if units.Temperature == weather.Fahrenheit {
		return (v - 32) * 5 / 9
	}
	return v
}

// windDirection maps degrees (0=north, clockwise) to an 8-point compass label.
func windDirection(deg int) string {
	dirs := []string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}
	a := math.Mod(float64(deg), 360)
	if a < 0 {
		a += 360
	}
	idx := int(math.Round(a/45)) % 8
	return dirs[idx]
}
