package tui

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/garrettladley/swatch/internal/css"
	"github.com/garrettladley/swatch/internal/property"
	"github.com/garrettladley/swatch/internal/tui/components/swatch"
)

const listWidth = 32

func (m *Model) TokensView() string {
	if len(m.tokens) == 0 {
		return m.theme.Dim().Render("no tokens")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, m.tokenList(), m.tokenDetail())
}

func (m *Model) tokenList() string {
	start, end := window(len(m.tokens), m.state.tokenCursor, m.viewportHeight-chrome)

	rows := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		style := m.theme.Base()
		prefix := "  "
		if i == m.state.tokenCursor {
			style = m.theme.Selected()
			prefix = "> "
		}
		rows = append(rows, style.Render(prefix+m.tokens[i].Variable()))
	}
	return lipgloss.NewStyle().
		Width(listWidth).
		PaddingLeft(2).
		Render(strings.Join(rows, "\n"))
}

func (m *Model) tokenDetail() string {
	tok := m.tokens[m.state.tokenCursor]

	decls := css.Declarations(css.Name(tok.Variable()), property.Inject(tok.Pair))
	lines := make([]string, 0, len(decls))
	for _, d := range decls {
		line := d.String() + ";"
		if d.Media != css.MediaNone {
			line = d.Media.String() + " { " + line + " }"
		}
		lines = append(lines, line)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		swatch.New(tok.Variable(), tok.Pair).Render(),
		"",
		m.theme.Dim().Render(strings.Join(lines, "\n")),
	)
}
