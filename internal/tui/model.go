// Package tui is the interactive theme browser.
package tui

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/garrettladley/swatch/internal/palette"
	swtheme "github.com/garrettladley/swatch/internal/theme"
	"github.com/garrettladley/swatch/internal/tui/components/footer"
	"github.com/garrettladley/swatch/internal/tui/theme"
)

var _ tea.Model = (*Model)(nil)

type page uint

const (
	tokensPage page = iota
	palettePage
)

func (p page) String() string {
	if p == palettePage {
		return "palette"
	}
	return "tokens"
}

// chrome is the number of rows taken by the header and footer.
const chrome = 3

type state struct {
	tokenCursor  int
	familyCursor int
}

type Model struct {
	ready          bool
	page           page
	viewportWidth  int
	viewportHeight int
	theme          theme.Theme
	name           string
	tokens         []swtheme.Token
	families       []palette.Family
	state          state
}

func New(t swtheme.Theme) Model {
	return Model{
		page:     tokensPage,
		theme:    theme.New(),
		name:     t.Name,
		tokens:   t.Tokens(),
		families: palette.Families(),
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewportWidth = msg.Width
		m.viewportHeight = msg.Height
		m.ready = true

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "tab":
			m.page = (m.page + 1) % 2
		case "up", "k":
			m.move(-1)
		case "down", "j":
			m.move(1)
		case "home", "g":
			m.move(-m.length())
		case "end", "G":
			m.move(m.length())
		}
	}

	return m, nil
}

func (m *Model) length() int {
	if m.page == palettePage {
		return len(m.families)
	}
	return len(m.tokens)
}

func (m *Model) cursor() *int {
	if m.page == palettePage {
		return &m.state.familyCursor
	}
	return &m.state.tokenCursor
}

// move shifts the cursor of the current page, stopping at either end.
func (m *Model) move(delta int) {
	c := m.cursor()
	*c = min(max(*c+delta, 0), max(m.length()-1, 0))
}

func (m *Model) View() tea.View {
	view := tea.NewView("")
	view.AltScreen = true
	view.BackgroundColor = m.theme.Background()

	if !m.ready {
		return view
	}

	view.SetContent(m.content())
	return view
}

func (m *Model) content() string {
	var body string
	switch m.page {
	case tokensPage:
		body = m.TokensView()
	case palettePage:
		body = m.PaletteView()
	}

	body = lipgloss.Place(
		m.viewportWidth,
		max(m.viewportHeight-chrome, 0),
		lipgloss.Left,
		lipgloss.Top,
		body,
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.header(),
		body,
		footer.New(m.viewportWidth, "↑/↓ move", "tab page", "q quit").Render(),
	)
}

func (m *Model) header() string {
	tabs := make([]string, 0, 2)
	for _, p := range []page{tokensPage, palettePage} {
		style := m.theme.Dim()
		if p == m.page {
			style = m.theme.Selected()
		}
		tabs = append(tabs, style.Render(p.String()))
	}
	title := m.theme.Title().Render("swatch · " + m.name)
	return lipgloss.NewStyle().
		PaddingLeft(2).
		PaddingBottom(1).
		Render(lipgloss.JoinHorizontal(lipgloss.Top, title, "   ", tabs[0], "  ", tabs[1]))
}

// window returns the slice bounds of a list of n rows that keeps cursor
// visible in height rows.
func window(n, cursor, height int) (int, int) {
	if height <= 0 || n <= height {
		return 0, n
	}
	start := min(max(cursor-height/2, 0), n-height)
	return start, start + height
}
