package tui

import (
	"strings"

	"charm.land/lipgloss/v2"

	swcolor "github.com/garrettladley/swatch/internal/color"
	"github.com/garrettladley/swatch/internal/darkmode"
	"github.com/garrettladley/swatch/internal/palette"
	"github.com/garrettladley/swatch/internal/tui/components/ramp"
	"github.com/garrettladley/swatch/internal/tui/theme"
)

const cellWidth = 2

func (m *Model) PaletteView() string {
	rows := make([]string, len(m.families))
	for i, f := range m.families {
		style := m.theme.Base()
		prefix := "  "
		if i == m.state.familyCursor {
			style = m.theme.Selected()
			prefix = "> "
		}
		rows[i] = style.Render(prefix + string(f))
	}
	list := lipgloss.NewStyle().
		Width(listWidth).
		PaddingLeft(2).
		Render(strings.Join(rows, "\n"))

	family := m.families[m.state.familyCursor]
	shades, ok := palette.Ramp(family)
	if !ok {
		return list
	}

	light, dark := brightness(shades)
	detail := lipgloss.JoinVertical(
		lipgloss.Left,
		ramp.New(string(family)+" brightness", light, dark).Render(),
		"",
		strip(shades, darkmode.Pair.Light),
		strip(shades, darkmode.Pair.Dark),
	)
	return lipgloss.JoinHorizontal(lipgloss.Top, list, detail)
}

func brightness(shades []darkmode.Pair) ([]float64, []float64) {
	light := make([]float64, len(shades))
	dark := make([]float64, len(shades))
	for i, p := range shades {
		light[i], _ = p.Light().PerceivedBrightness()
		dark[i], _ = p.Dark().PerceivedBrightness()
	}
	return light, dark
}

// strip paints one cell per shade in the member chosen by member.
func strip(shades []darkmode.Pair, member func(darkmode.Pair) swcolor.Value) string {
	var b strings.Builder
	for _, p := range shades {
		cell := lipgloss.NewStyle().Width(cellWidth)
		if c, ok := theme.Terminal(member(p), theme.ColorBlack); ok {
			cell = cell.Background(c)
		}
		b.WriteString(cell.Render(""))
	}
	return b.String()
}
