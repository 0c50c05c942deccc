package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"

	"wthrr.klederson.com/internal/weather"
)

func testProduct() Product {
	day := func(d, code int, hi, lo, rain float64) weather.Day {
		return weather.Day{Date: time.Date(2024, 3, d, 0, 0, 0, 0, time.UTC), Code: code, TempMax: hi, TempMin: lo, Precipitation: rain}
	}
	return Product{
		Address: "Berlin, Land Berlin, Germany",
		Weather: weather.Weather{
			Current: weather.Current{
				Time:                time.Date(2024, 3, 1, 14, 15, 0, 0, time.UTC),
				Temperature:         12.5,
				ApparentTemperature: 10.9,
				Humidity:            61,
				WindSpeed:           14.4,
				WindDirection:       225,
				Pressure:            1011.2,
				Code:                3,
			},
			Daily: []weather.Day{
				day(1, 3, 13.1, 4.2, 0),
				day(2, 61, 9.8, 3.0, 5.6),
				day(3, 0, 15.0, -1.5, 0),
			},
			Units: weather.DefaultUnits(),
		},
	}
}

func TestProductRenderShape(t *testing.T) {
	for _, style := range BorderStyles {
		t.Run(style.String(), func(t *testing.T) {
			lines := strings.Split(testProduct().Render(style, false), "\n")

			width := lipgloss.Width(lines[0])
			for i, l := range lines {
				if w := lipgloss.Width(l); w != width {
					t.Errorf("line %d %q: width %d, want %d", i, l, w, width)
				}
			}

			if !strings.HasPrefix(lines[0], TopLeft.Glyph(style)) || !strings.HasSuffix(lines[0], TopRight.Glyph(style)) {
				t.Errorf("top edge = %q", lines[0])
			}
			last := lines[len(lines)-1]
			if !strings.HasPrefix(last, BottomLeft.Glyph(style)) || !strings.HasSuffix(last, BottomRight.Glyph(style)) {
				t.Errorf("bottom edge = %q", last)
			}
			if want := SeparatorBlank.Render(width-2, style); lines[len(lines)-2] != want {
				t.Errorf("closing line = %q, want %q", lines[len(lines)-2], want)
			}
			if want := SeparatorDashed.Render(width-2, style); lines[2] != want {
				t.Errorf("address separator = %q, want %q", lines[2], want)
			}
		})
	}
}

func TestProductRenderContent(t *testing.T) {
	out := testProduct().Render(BorderRounded, false)
	lines := strings.Split(out, "\n")

	if want := "│ Berlin, Land Berlin, Germany"; !strings.HasPrefix(lines[1], want) {
		t.Errorf("address line = %q, want prefix %q", lines[1], want)
	}

	for _, want := range []string{
		"Overcast  12.5°C",
		"Fri, 01 Mar 14:15",
		"Feels like 10.9°C",
		"Humidity 61%",
		"14.4 km/h SW",
		"1011 hPa",
		"Sat 02 Mar",
		"9.8° /   3.0°",
		"5.6 mm",
		"Slight rain",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	if strings.Contains(out, "Historical") || strings.Contains(out, "╟") {
		t.Errorf("historical section rendered without historical data:\n%s", out)
	}
}

func TestProductRenderHistorical(t *testing.T) {
	p := testProduct()
	p.Historical = []weather.Day{
		{Date: time.Date(2020, 6, 15, 0, 0, 0, 0, time.UTC), Code: 95, TempMax: 20, TempMin: 10, Precipitation: 1.5},
	}
	out := p.Render(BorderDouble, false)

	for _, want := range []string{"╟", "Historical", "2020-06-15", "Thunderstorm"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestProductRenderFahrenheit(t *testing.T) {
	p := testProduct()
	p.Weather.Units = weather.Units{Temperature: weather.Fahrenheit, Speed: weather.MPH, Precipitation: weather.Inches}
	out := p.Render(BorderSingle, false)

	for _, want := range []string{"12.5°F", "km/h", "mph", " in "} {
		if want == "km/h" {
			if strings.Contains(out, want) {
				t.Errorf("output contains %q with mph units", want)
			}
			continue
		}
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestProductRenderColorKeepsWidth(t *testing.T) {
	lines := strings.Split(testProduct().Render(BorderSolid, true), "\n")
	width := lipgloss.Width(lines[0])
	for i, l := range lines {
		if w := lipgloss.Width(l); w != width {
			t.Errorf("line %d: width %d, want %d", i, w, width)
		}
	}
}

func TestWindDirection(t *testing.T) {
	tests := []struct {
		deg  int
		want string
	}{
		{0, "N"}, {22, "N"}, {23, "NE"}, {90, "E"}, {180, "S"}, {225, "SW"}, {315, "NW"}, {359, "N"}, {-90, "W"}, {720, "N"},
	}
	for _, tt := range tests {
		if got := windDirection(tt.deg); got != tt.want {
			t.Errorf("windDirection(%d) = %q, want %q", tt.deg, got, tt.want)
		}
	}
}
