package preview

import (
	"context"
	"regexp"
	"strings"
	"testing"

	"github.com/garrettladley/swatch/internal/theme"
)

var swatchItem = regexp.MustCompile(`<span class="swatch ([^"]*)"></span><div><code>(--[a-z-]+)</code>`)

func render(t *testing.T, th theme.Theme) string {
	t.Helper()
	var b strings.Builder
	if err := Page(th).Render(context.Background(), &b); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return b.String()
}

func TestPage(t *testing.T) {
	t.Parallel()

	html := render(t, theme.Default())

	for _, want := range []string{
		"<!DOCTYPE html>",
		"<title>swatch · default</title>",
		":root{--color-gray:",
		".chip-0{background-color:",
		"@media (prefers-color-scheme: dark){",
		"<h2>color</h2>",
		"<h2>branding</h2>",
		"</body></html>",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("page missing %q", want)
		}
	}

	classes := make(map[string]string)
	for _, m := range swatchItem.FindAllStringSubmatch(html, -1) {
		classes[m[2]] = m[1]
	}
	if got := len(classes); got != len(theme.Default().Tokens()) {
		t.Fatalf("page lists %d swatches, want %d", got, len(theme.Default().Tokens()))
	}

	tests := []struct {
		name      string
		variable  string
		wantCount int
	}{
		{name: "single color gets one class", variable: "--color-black", wantCount: 1},
		{name: "adaptive pair gets light and dark classes", variable: "--text-primary", wantCount: 2},
	}
	for _, tt := range tests {
		if got := len(strings.Fields(classes[tt.variable])); got != tt.wantCount {
			t.Errorf("%s: %s has classes %q, want %d", tt.name, tt.variable, classes[tt.variable], tt.wantCount)
		}
	}

	if classes["--color-cyan"] != classes["--color-teal"] {
		t.Errorf("identical pairs do not share classes: cyan %q, teal %q", classes["--color-cyan"], classes["--color-teal"])
	}
}

func TestPageEscapesName(t *testing.T) {
	t.Parallel()

	th := theme.Default()
	th.Name = `<script>alert("x")</script>`

	html := render(t, th)
	if strings.Contains(html, "<script>") {
		t.Error("theme name rendered unescaped")
	}
	if !strings.Contains(html, "&lt;script&gt;") {
		t.Error("escaped theme name missing")
	}
}

func TestCurrent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ctx  context.Context
		want string
	}{
		{name: "theme on context", ctx: theme.WithTheme(context.Background(), theme.GitHub()), want: "<title>swatch · github</title>"},
		{name: "empty context", ctx: context.Background(), want: "<title>swatch · default</title>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var b strings.Builder
			if err := Current().Render(tt.ctx, &b); err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			if !strings.Contains(b.String(), tt.want) {
				t.Errorf("page missing %q", tt.want)
			}
		})
	}
}
