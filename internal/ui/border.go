package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// BorderPosition selects one of the eight border slots of a panel.
type BorderPosition int

const (
	TopLeft BorderPosition = iota
	Top
	TopRight
	Right
	BottomRight
	Bottom
	BottomLeft
	Left
)

// BorderStyle selects the glyph set used to draw panel borders.
// The zero value is BorderRounded.
type BorderStyle int

const (
	BorderRounded BorderStyle = iota
	BorderSingle
	BorderSolid
	BorderDouble
)

// ErrInvalidBorderStyle is the sentinel error wrapped by InvalidBorderStyleError.
var ErrInvalidBorderStyle = errors.New("invalid border style")

// InvalidBorderStyleError is returned when a border style token is not recognized.
type InvalidBorderStyleError struct {
	Value string
}

func (e *InvalidBorderStyleError) Error() string {
	return fmt.Sprintf("invalid border style %q (valid: rounded, single, solid, double)", e.Value)
}

// Unwrap returns ErrInvalidBorderStyle for errors.Is() compatibility.
func (e *InvalidBorderStyleError) Unwrap() error { return ErrInvalidBorderStyle }

var borderStyleNames = [...]string{
	BorderRounded: "rounded",
	BorderSingle:  "single",
	BorderSolid:   "solid",
	BorderDouble:  "double",
}

// BorderStyles lists every style in declaration order.
var BorderStyles = []BorderStyle{BorderRounded, BorderSingle, BorderSolid, BorderDouble}

// ParseBorderStyle converts a configuration token into a BorderStyle.
func ParseBorderStyle(s string) (BorderStyle, error) {
	token := strings.ToLower(strings.TrimSpace(s))
	for i, name := range borderStyleNames {
		if name == token {
			return BorderStyle(i), nil
		}
	}
	return BorderRounded, &InvalidBorderStyleError{Value: s}
}

func (s BorderStyle) valid() bool {
	return s >= 0 && int(s) < len(borderStyleNames)
}

func (s BorderStyle) String() string {
	if !s.valid() {
		return borderStyleNames[BorderRounded]
	}
	return borderStyleNames[s]
}

// MarshalText implements encoding.TextMarshaler.
func (s BorderStyle) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *BorderStyle) UnmarshalText(text []byte) error {
	parsed, err := ParseBorderStyle(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// glyphSet holds one style's glyphs. Top and Bottom share horizontal,
// Left and Right share vertical.
type glyphSet struct {
	topLeft     string
	topRight    string
	bottomLeft  string
	bottomRight string
	horizontal  string
	vertical    string
}

var glyphSets = [...]glyphSet{
	BorderRounded: {
		topLeft:     "╭",
		topRight:    "╮",
		bottomLeft:  "╰",
		bottomRight: "╯",
		horizontal:  "─",
		vertical:    "│",
	},
	BorderSingle: {
		topLeft:     "┌",
		topRight:    "┐",
		bottomLeft:  "└",
		bottomRight: "┘",
		horizontal:  "─",
		vertical:    "│",
	},
	BorderSolid: {
		topLeft:     "┏",
		topRight:    "┓",
		bottomLeft:  "┗",
		bottomRight: "┛",
		horizontal:  "━",
		vertical:    "┃",
	},
	BorderDouble: {
		topLeft:     "╔",
		topRight:    "╗",
		bottomLeft:  "╚",
		bottomRight: "╝",
		horizontal:  "═",
		vertical:    "║",
	},
}

func (s BorderStyle) glyphs() glyphSet {
	if !s.valid() {
		return glyphSets[BorderRounded]
	}
	return glyphSets[s]
}

// Glyph returns the box-drawing character for position p in the given style.
// Unknown positions yield an empty string.
func (p BorderPosition) Glyph(style BorderStyle) string {
	g := style.glyphs()
	switch p {
	case TopLeft:
		return g.topLeft
	case Top, Bottom:
		return g.horizontal
	case TopRight:
		return g.topRight
	case Right, Left:
		return g.vertical
	case BottomRight:
		return g.bottomRight
	case BottomLeft:
		return g.bottomLeft
	default:
		return ""
	}
}

// Lipgloss converts the style into a lipgloss.Border so lipgloss-rendered
// boxes match hand-drawn panels.
func (s BorderStyle) Lipgloss() lipgloss.Border {
	g := s.glyphs()
	return lipgloss.Border{
		Top:         g.horizontal,
		Bottom:      g.horizontal,
		Left:        g.vertical,
		Right:       g.vertical,
		TopLeft:     g.topLeft,
		TopRight:    g.topRight,
		BottomLeft:  g.bottomLeft,
		BottomRight: g.bottomRight,
	}
}

// Edge is the top or bottom line of a panel.
type Edge int

const (
	EdgeTop Edge = iota
	EdgeBottom
)

// Render draws the edge spanning width interior columns.
func (e Edge) Render(width int, style BorderStyle) string {
	left, fill, right := TopLeft, Top, TopRight
	if e == EdgeBottom {
		left, fill, right = BottomLeft, Bottom, BottomRight
	}
	return line(left.Glyph(style), fill.Glyph(style), right.Glyph(style), width)
}

// Separator is a horizontal divider between two panel sections.
type Separator int

const (
	SeparatorBlank Separator = iota
	SeparatorSingle
	SeparatorSolid
	SeparatorDouble
	SeparatorDashed
)

// Render draws the separator spanning width interior columns. Only
// SeparatorBlank follows the style; the other kinds use fixed caps.
func (s Separator) Render(width int, style BorderStyle) string {
	switch s {
	case SeparatorSingle:
		return line("├", "─", "┤", width)
	case SeparatorSolid:
		return line("┠", "─", "┨", width)
	case SeparatorDouble:
		return line("╟", "─", "╢", width)
	case SeparatorDashed:
		return line("├", "┈", "┤", width)
	default:
		return line(Left.Glyph(style), " ", Right.Glyph(style), width)
	}
}

func line(left, fill, right string, width int) string {
	if width < 0 {
		width = 0
	}
	var sb strings.Builder
	sb.Grow(len(left) + len(fill)*width + len(right))
	sb.WriteString(left)
	sb.WriteString(strings.Repeat(fill, width))
	sb.WriteString(right)
	return sb.String()
}
