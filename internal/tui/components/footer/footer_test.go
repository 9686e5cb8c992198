package footer

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

func TestRender(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		width     int
		hints     []string
		wantWidth int
	}{
		{name: "fills the view width", width: 80, hints: []string{"q quit", "tab page"}, wantWidth: 80},
		{name: "never truncates hints", width: 10, hints: []string{"q quit"}, wantWidth: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			out := New(tt.width, tt.hints...).Render()
			for _, h := range tt.hints {
				if !strings.Contains(out, h) {
					t.Errorf("Render() missing hint %q", h)
				}
			}
			if tt.wantWidth > 0 {
				if got := lipgloss.Width(out); got != tt.wantWidth {
					t.Errorf("lipgloss.Width(Render()) = %d, want %d", got, tt.wantWidth)
				}
			}
		})
	}
}
