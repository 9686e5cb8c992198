package theme

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	swcolor "github.com/garrettladley/swatch/internal/color"
)

// Terminal converts v into a color a terminal can paint. Translucent values
// are composited over backdrop since terminals have no alpha channel. It
// reports false for values without an RGB mapping.
func Terminal(v swcolor.Value, backdrop color.Color) (color.Color, bool) {
	c, ok := v.StdColor()
	if !ok {
		return nil, false
	}
	fg := colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
	if c.A == 255 {
		return fg, true
	}
	bg, ok := colorful.MakeColor(backdrop)
	if !ok {
		return fg, true
	}
	return bg.BlendRgb(fg, float64(c.A)/255).Clamped(), true
}

// Hex is Terminal rendered as #rrggbb.
func Hex(v swcolor.Value, backdrop color.Color) (string, bool) {
	c, ok := Terminal(v, backdrop)
	if !ok {
		return "", false
	}
	cf, _ := colorful.MakeColor(c)
	return cf.Hex(), true
}
