package swatch

import (
	"image/color"

	"charm.land/lipgloss/v2"

	swcolor "github.com/garrettladley/swatch/internal/color"
	"github.com/garrettladley/swatch/internal/darkmode"
	"github.com/garrettladley/swatch/internal/tui/theme"
)

const (
	defaultWidth = 18
	blockHeight  = 3
)

// Swatch shows the light and dark members of a pair side by side, each on
// the backdrop of its scheme.
type Swatch struct {
	Label string
	Pair  darkmode.Pair
	Width int // per block
}

type Option func(*Swatch)

func WithWidth(w int) Option {
	return func(s *Swatch) {
		s.Width = w
	}
}

func New(label string, pair darkmode.Pair, opts ...Option) Swatch {
	s := Swatch{
		Label: label,
		Pair:  pair,
		Width: defaultWidth,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

func (s Swatch) Render() string {
	label := lipgloss.NewStyle().
		Foreground(theme.ColorWhite).
		Bold(true).
		Render(s.Label)

	blocks := lipgloss.JoinHorizontal(
		lipgloss.Top,
		block(s.Pair.Light(), theme.ColorLight, s.Width),
		block(s.Pair.Dark(), theme.ColorDark, s.Width),
	)
	return lipgloss.JoinVertical(lipgloss.Left, label, blocks)
}

func block(v swcolor.Value, backdrop color.Color, width int) string {
	style := lipgloss.NewStyle().
		Width(width).
		Height(blockHeight).
		Align(lipgloss.Center, lipgloss.Center)

	fill, ok := theme.Terminal(v, backdrop)
	if !ok {
		return style.
			Foreground(theme.ColorDim).
			Background(backdrop).
			Render(v.String())
	}
	return style.
		Foreground(textOn(v)).
		Background(fill).
		Render(v.String())
}

func textOn(v swcolor.Value) color.Color {
	if brightness, ok := v.PerceivedBrightness(); ok && brightness <= 0.5 && v.Alpha() > 0.5 {
		return theme.ColorWhite
	}
	return theme.ColorBlack
}
