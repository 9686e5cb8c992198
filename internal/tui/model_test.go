package tui

import (
	"regexp"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	swtheme "github.com/garrettladley/swatch/internal/theme"
)

var ansi = regexp.MustCompile("\x1b\\[[0-9;:]*m")

func key(s string) tea.KeyPressMsg {
	switch s {
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "tab":
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case "ctrl+c":
		return tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
	default:
		r := []rune(s)[0]
		return tea.KeyPressMsg{Code: r, Text: s}
	}
}

func newModel(t *testing.T) *Model {
	t.Helper()
	m := New(swtheme.Default())
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return &m
}

func TestNavigation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		keys       []string
		wantPage   page
		wantToken  int
		wantFamily int
	}{
		{name: "starts at the first token", wantPage: tokensPage},
		{name: "j and down move down", keys: []string{"j", "down"}, wantPage: tokensPage, wantToken: 2},
		{name: "up stops at the top", keys: []string{"j", "k", "up", "k"}, wantPage: tokensPage},
		{name: "G jumps to the last token", keys: []string{"G"}, wantPage: tokensPage, wantToken: 65},
		{name: "down stops at the bottom", keys: []string{"G", "j"}, wantPage: tokensPage, wantToken: 65},
		{name: "g returns to the top", keys: []string{"j", "j", "g"}, wantPage: tokensPage},
		{name: "tab switches to the palette", keys: []string{"tab"}, wantPage: palettePage},
		{name: "cursors are kept per page", keys: []string{"j", "tab", "j", "j", "j"}, wantPage: palettePage, wantToken: 1, wantFamily: 3},
		{name: "tab cycles back", keys: []string{"tab", "tab"}, wantPage: tokensPage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := newModel(t)
			for _, k := range tt.keys {
				if _, cmd := m.Update(key(k)); cmd != nil {
					t.Fatalf("key %q returned a command", k)
				}
			}
			if m.page != tt.wantPage {
				t.Errorf("page = %v, want %v", m.page, tt.wantPage)
			}
			if m.state.tokenCursor != tt.wantToken {
				t.Errorf("tokenCursor = %d, want %d", m.state.tokenCursor, tt.wantToken)
			}
			if m.state.familyCursor != tt.wantFamily {
				t.Errorf("familyCursor = %d, want %d", m.state.familyCursor, tt.wantFamily)
			}
		})
	}
}

func TestQuit(t *testing.T) {
	t.Parallel()

	for _, k := range []string{"q", "ctrl+c"} {
		m := newModel(t)
		_, cmd := m.Update(key(k))
		if cmd == nil {
			t.Fatalf("key %q returned no command", k)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("key %q did not quit", k)
		}
	}
}

func TestContent(t *testing.T) {
	t.Parallel()

	m := newModel(t)
	m.Update(key("j"))

	tokens := ansi.ReplaceAllString(m.content(), "")
	for _, want := range []string{
		"swatch · default",
		"> --color-blue",
		"@media (prefers-color-scheme: dark) { --color-blue:",
		"q quit",
	} {
		if !strings.Contains(tokens, want) {
			t.Errorf("tokens page missing %q", want)
		}
	}

	m.Update(key("tab"))
	pal := ansi.ReplaceAllString(m.content(), "")
	for _, want := range []string{"> gray", "gray brightness", "light", "dark"} {
		if !strings.Contains(pal, want) {
			t.Errorf("palette page missing %q", want)
		}
	}
}

func TestViewBeforeResize(t *testing.T) {
	t.Parallel()

	m := New(swtheme.Apple())
	view := m.View()
	if !view.AltScreen {
		t.Error("View().AltScreen = false")
	}
}

func TestWindow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name               string
		n, cursor, height  int
		wantStart, wantEnd int
	}{
		{name: "fits", n: 5, cursor: 4, height: 10, wantStart: 0, wantEnd: 5},
		{name: "cursor near the top", n: 66, cursor: 2, height: 10, wantStart: 0, wantEnd: 10},
		{name: "cursor centred", n: 66, cursor: 30, height: 10, wantStart: 25, wantEnd: 35},
		{name: "cursor near the bottom", n: 66, cursor: 65, height: 10, wantStart: 56, wantEnd: 66},
		{name: "no height shows everything", n: 66, cursor: 3, height: 0, wantStart: 0, wantEnd: 66},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			start, end := window(tt.n, tt.cursor, tt.height)
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("window(%d, %d, %d) = (%d, %d), want (%d, %d)",
					tt.n, tt.cursor, tt.height, start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}
