// Package palette holds the static shade tables themes are built from.
package palette

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/garrettladley/swatch/internal/color"
	"github.com/garrettladley/swatch/internal/darkmode"
)

type Family string

const (
	Gray   Family = "gray"
	Blue   Family = "blue"
	Green  Family = "green"
	Purple Family = "purple"
	Red    Family = "red"
	Yellow Family = "yellow"
	Orange Family = "orange"
	Teal   Family = "teal"
	Cyan   Family = "cyan"
	Pink   Family = "pink"
	Brown  Family = "brown"
)

// Step is a shade index from 100 (darkest single-scheme shade) to 900 in
// increments of 50.
type Step int

const (
	minStep   Step = 100
	maxStep   Step = 900
	stepSize  Step = 50
	stepCount      = int((maxStep-minStep)/stepSize) + 1

	// DefaultStep is the shade a bare family name refers to.
	DefaultStep Step = 500
)

var (
	Black    = color.Hex("121212")
	OffBlack = color.Hex("171717")
	White    = color.Hex("FFFFFF")
	OffWhite = color.Hex("fafafa")
)

var families = []Family{Gray, Blue, Green, Purple, Red, Yellow, Orange, Teal, Cyan, Pink, Brown}

func Families() []Family {
	return append([]Family(nil), families...)
}

func Steps() []Step {
	return lo.Times(stepCount, func(i int) Step { return minStep + Step(i)*stepSize })
}

// Value returns the single-scheme shade of f at s.
func Value(f Family, s Step) (color.Value, bool) {
	i, ok := index(s)
	if !ok {
		return color.Value{}, false
	}
	shades, ok := lightShades[canonical(f)]
	if !ok {
		return color.Value{}, false
	}
	return color.Hex(shades[i]), true
}

// Pair returns the shade of f at s with its dark-scheme counterpart.
func Pair(f Family, s Step) (darkmode.Pair, bool) {
	light, ok := Value(f, s)
	if !ok {
		return darkmode.Pair{}, false
	}
	i, _ := index(s)
	return darkmode.Adaptive(light, color.Hex(darkShades[canonical(f)][i])), true
}

// MustPair is Pair for statically known families and steps.
func MustPair(f Family, s Step) darkmode.Pair {
	p, ok := Pair(f, s)
	if !ok {
		panic(fmt.Sprintf("palette: no %s shade at step %d", f, s))
	}
	return p
}

func Default(f Family) (color.Value, bool) {
	return Value(f, DefaultStep)
}

func ParseFamily(s string) (Family, bool) {
	return lo.Find(families, func(f Family) bool { return string(f) == s })
}

func canonical(f Family) Family {
	if f == Cyan {
		return Teal
	}
	return f
}

func index(s Step) (int, bool) {
	if s < minStep || s > maxStep || (s-minStep)%stepSize != 0 {
		return 0, false
	}
	return int((s - minStep) / stepSize), true
}

// Ramp lists every shade of f from the lowest step to the highest.
func Ramp(f Family) ([]darkmode.Pair, bool) {
	if _, ok := lightShades[canonical(f)]; !ok {
		return nil, false
	}
	return lo.Map(Steps(), func(s Step, _ int) darkmode.Pair { return MustPair(f, s) }), true
}
