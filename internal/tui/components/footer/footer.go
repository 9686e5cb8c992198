package footer

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/garrettladley/swatch/internal/tui/theme"
	"github.com/garrettladley/swatch/internal/version"
)

var dimStyle = lipgloss.NewStyle().Foreground(theme.ColorDim)

// Footer spans the view width with the version on the left and key hints on
// the right.
type Footer struct {
	hints   []string
	width   int
	padding int
}

func New(width int, hints ...string) Footer {
	return Footer{
		hints:   hints,
		width:   width,
		padding: 2,
	}
}

func (f Footer) Render() string {
	left := dimStyle.Render(version.Get())
	right := dimStyle.Render(strings.Join(f.hints, " • "))

	spacerWidth := max(f.width-lipgloss.Width(left)-lipgloss.Width(right)-(f.padding*2), 0)

	return lipgloss.NewStyle().
		PaddingLeft(f.padding).
		PaddingRight(f.padding).
		Render(left + strings.Repeat(" ", spacerWidth) + right)
}
