// Package ramp plots the perceived brightness of a shade ramp as a braille
// line chart, one curve per color scheme.
package ramp

import (
	"image/color"
	"math"
	"strings"

	drawille "github.com/exrook/drawille-go"

	"charm.land/lipgloss/v2"

	"github.com/garrettladley/swatch/internal/tui/theme"
)

const (
	// chart dimensions in braille dots (2 dots per char width, 4 dots per char height)
	chartDotsWidth  = 64 // 32 chars wide
	chartDotsHeight = 32 // 8 chars tall
)

// Ramp holds brightness samples in [0, 1], ordered from the lightest step
// name to the darkest.
type Ramp struct {
	Label     string
	Light     []float64
	Dark      []float64
	LightLine color.Color
	DarkLine  color.Color
}

type Option func(*Ramp)

func WithLineColors(light, dark color.Color) Option {
	return func(r *Ramp) {
		r.LightLine = light
		r.DarkLine = dark
	}
}

func New(label string, light, dark []float64, opts ...Option) Ramp {
	r := Ramp{
		Label:     label,
		Light:     light,
		Dark:      dark,
		LightLine: theme.ColorWhite,
		DarkLine:  theme.ColorAccent,
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

func (r Ramp) Render() string {
	canvas := drawille.NewCanvas()

	plot(&canvas, r.Light)
	lightStr := canvasString(&canvas, chartDotsWidth, chartDotsHeight)

	canvas.Clear()
	plot(&canvas, r.Dark)
	darkStr := canvasString(&canvas, chartDotsWidth, chartDotsHeight)

	chart := overlay(lightStr, darkStr, r.LightLine, r.DarkLine)

	legend := lipgloss.JoinHorizontal(
		lipgloss.Top,
		lipgloss.NewStyle().Foreground(r.LightLine).Render("━ light  "),
		lipgloss.NewStyle().Foreground(r.DarkLine).Render("━ dark"),
	)
	label := lipgloss.NewStyle().
		Foreground(theme.ColorWhite).
		Bold(true).
		Render(r.Label)

	return lipgloss.JoinVertical(lipgloss.Left, label, chart, legend)
}

// plot connects consecutive samples with straight segments. Brightness 1 is
// the top row of dots.
func plot(canvas *drawille.Canvas, samples []float64) {
	if len(samples) == 0 {
		return
	}
	points := make([][2]int, len(samples))
	for i, v := range samples {
		points[i] = [2]int{xFor(i, len(samples)), yFor(v)}
	}
	if len(points) == 1 {
		canvas.Set(points[0][0], points[0][1])
		return
	}
	for i := 1; i < len(points); i++ {
		line(canvas, points[i-1], points[i])
	}
}

func xFor(i, n int) int {
	if n <= 1 {
		return 0
	}
	return int(math.Round(float64(i) * float64(chartDotsWidth-1) / float64(n-1)))
}

func yFor(v float64) int {
	v = min(max(v, 0), 1)
	return int(math.Round((1 - v) * float64(chartDotsHeight-1)))
}

// line sets every dot on the segment from a to b.
func line(canvas *drawille.Canvas, a, b [2]int) {
	dx, dy := b[0]-a[0], b[1]-a[1]
	steps := max(abs(dx), abs(dy))
	if steps == 0 {
		canvas.Set(a[0], a[1])
		return
	}
	for s := 0; s <= steps; s++ {
		t := float64(s) / float64(steps)
		canvas.Set(
			a[0]+int(math.Round(t*float64(dx))),
			a[1]+int(math.Round(t*float64(dy))),
		)
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// canvasString extracts the canvas with fixed dimensions so two canvases
// overlay cell for cell.
func canvasString(canvas *drawille.Canvas, width, height int) string {
	charWidth := width / 2
	charHeight := height / 4

	rows := canvas.Rows(0, 0, width, height)

	lines := make([]string, charHeight)
	for i := range charHeight {
		var row string
		if i < len(rows) {
			row = rows[i]
		}
		runes := []rune(row)
		switch {
		case len(runes) < charWidth:
			row += strings.Repeat(" ", charWidth-len(runes))
		case len(runes) > charWidth:
			row = string(runes[:charWidth])
		}
		lines[i] = row
	}
	return strings.Join(lines, "\n")
}

const emptyBraille rune = '⠀'

// overlay merges two braille layers cell by cell. Where both have dots the
// dots are combined and the top color wins.
func overlay(bottomStr, topStr string, bottomColor, topColor color.Color) string {
	var (
		bottomLines = strings.Split(bottomStr, "\n")
		topLines    = strings.Split(topStr, "\n")
		bottomStyle = lipgloss.NewStyle().Foreground(bottomColor)
		topStyle    = lipgloss.NewStyle().Foreground(topColor)
		result      = make([]string, len(bottomLines))
	)

	for i, bl := range bottomLines {
		bottomRunes := []rune(bl)
		var topRunes []rune
		if i < len(topLines) {
			topRunes = []rune(topLines[i])
		}

		var b strings.Builder
		for j, bc := range bottomRunes {
			tc := ' '
			if j < len(topRunes) {
				tc = topRunes[j]
			}
			bottomHas := hasDots(bc)
			topHas := hasDots(tc)
			switch {
			case topHas && bottomHas:
				b.WriteString(topStyle.Render(string(combineBraille(bc, tc))))
			case topHas:
				b.WriteString(topStyle.Render(string(tc)))
			case bottomHas:
				b.WriteString(bottomStyle.Render(string(bc)))
			default:
				b.WriteRune(' ')
			}
		}
		result[i] = b.String()
	}
	return strings.Join(result, "\n")
}

func hasDots(r rune) bool {
	return r > emptyBraille && r <= 0x28FF
}

// combineBraille ORs the dot patterns of two braille characters.
func combineBraille(a, b rune) rune {
	return emptyBraille + ((a - emptyBraille) | (b - emptyBraille))
}
