package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Theme styles the browser chrome. Swatches themselves are drawn in their
// own colors.
type Theme struct {
	background color.Color
	foreground color.Color
	base       lipgloss.Style
}

func New() Theme {
	var t Theme

	t.background = ColorBgDark
	t.foreground = ColorWhite
	t.base = lipgloss.NewStyle().Foreground(t.foreground)

	return t
}

func (t Theme) Base() lipgloss.Style {
	return t.base
}

func (t Theme) Title() lipgloss.Style {
	return t.base.Bold(true)
}

func (t Theme) Selected() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorAccent).Bold(true)
}

func (t Theme) Dim() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorDim)
}

func (t Theme) Background() color.Color {
	return t.background
}

func (t Theme) Foreground() color.Color {
	return t.foreground
}
