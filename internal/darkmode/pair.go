// Package darkmode pairs a light-scheme color with a dark-scheme color.
//
// A single color is stored as the pair (c, c), so there is exactly one
// representation of "the same color in both schemes" and IsSingleColor is a
// plain equality check.
package darkmode

import (
	"fmt"

	"github.com/samber/mo"

	"github.com/garrettladley/swatch/internal/color"
)

type Pair struct {
	light color.Value
	dark  color.Value
}

var _ fmt.Stringer = Pair{}

// Single is the diagonal embedding of c.
func Single(c color.Value) Pair {
	return Pair{light: c, dark: c}
}

// FromPair stores an explicit dark value as given. An absent dark value is
// derived by darkening light by color.DefaultAdjustment.
func FromPair(light color.Value, dark mo.Option[color.Value]) Pair {
	return Pair{
		light: light,
		dark:  dark.OrElse(light.Darker(color.DefaultAdjustment)),
	}
}

func Adaptive(light, dark color.Value) Pair {
	return FromPair(light, mo.Some(dark))
}

// Auto derives the dark member from light.
func Auto(light color.Value) Pair {
	return FromPair(light, mo.None[color.Value]())
}

func (p Pair) Light() color.Value { return p.light }
func (p Pair) Dark() color.Value { return p.dark }

func (p Pair) IsSingleColor() bool { return p.light == p.dark }

func (p Pair) Map(f func(color.Value) color.Value) Pair {
	return Pair{light: f(p.light), dark: f(p.dark)}
}

// FlatMap keeps the light member of f(light) and the dark member of f(dark).
func (p Pair) FlatMap(f func(color.Value) Pair) Pair {
	return Pair{light: f(p.light).light, dark: f(p.dark).dark}
}

func (p Pair) AdjustBrightness(percent float64) Pair {
	return p.Map(func(c color.Value) color.Value { return c.AdjustBrightness(percent) })
}

func (p Pair) Darker(percent float64) Pair {
	return p.Map(func(c color.Value) color.Value { return c.Darker(percent) })
}

func (p Pair) Lighter(percent float64) Pair {
	return p.Map(func(c color.Value) color.Value { return c.Lighter(percent) })
}

func (p Pair) Opacity(alpha float64) Pair {
	return p.Map(func(c color.Value) color.Value { return c.Opacity(alpha) })
}

func (p Pair) WithDark(dark color.Value) Pair {
	return Pair{light: p.light, dark: dark}
}

func (p Pair) Reverse() Pair {
	return Pair{light: p.dark, dark: p.light}
}

const (
	mediaLight = "@media (prefers-color-scheme: light)"
	mediaDark  = "@media (prefers-color-scheme: dark)"
)

func (p Pair) String() string {
	if p.IsSingleColor() {
		return p.light.String()
	}
	return fmt.Sprintf("%s { color:%s } %s { color:%s }", mediaLight, p.light, mediaDark, p.dark)
}

// GradientMidpoint mixes a and b member-wise. It reports false when any
// member has no RGB mapping.
func GradientMidpoint(a, b Pair) (Pair, bool) {
	light, ok := color.Mix(a.light, b.light)
	if !ok {
		return Pair{}, false
	}
	dark, ok := color.Mix(a.dark, b.dark)
	if !ok {
		return Pair{}, false
	}
	return Pair{light: light, dark: dark}, true
}

// ReadablePrimary picks black or white text for the light member of
// background. Backgrounds without an RGB mapping get black.
func ReadablePrimary(background Pair) Pair {
	black := Single(color.Hex("000000"))
	brightness, ok := background.light.PerceivedBrightness()
	if !ok || brightness > 0.5 {
		return black
	}
	return Single(color.Hex("FFFFFF"))
}
