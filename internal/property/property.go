// Package property models the value of a CSS color property: either a
// scheme-aware color pair or a CSS-wide keyword.
package property

import (
	"fmt"

	"github.com/samber/mo"

	"github.com/garrettladley/swatch/internal/color"
	"github.com/garrettladley/swatch/internal/darkmode"
)

type Tag uint8

const (
	TagAdaptive Tag = iota + 1
	TagGlobal
)

func (t Tag) String() string {
	switch t {
	case TagAdaptive:
		return "adaptive"
	case TagGlobal:
		return "global"
	default:
		return "unknown"
	}
}

// Property is exactly one of an adaptive color pair or a global keyword. The
// zero Property is an adaptive pair of zero colors.
type Property struct {
	tag    Tag
	pair   darkmode.Pair
	global color.Global
}

var _ fmt.Stringer = Property{}

// Source is anything that injects into a Property.
type Source interface {
	color.Value | darkmode.Pair | color.Global
}

// Inject lifts v into a Property. A bare color.Value always becomes a single
// adaptive pair, even when it wraps a global keyword; pass a color.Global to
// get the global tag.
func Inject[T Source](v T) Property {
	switch v := any(v).(type) {
	case color.Value:
		return Single(v)
	case darkmode.Pair:
		return Property{tag: TagAdaptive, pair: v}
	case color.Global:
		return FromGlobal(v)
	}
	panic("unreachable")
}

func Single(c color.Value) Property {
	return Property{tag: TagAdaptive, pair: darkmode.Single(c)}
}

func Adaptive(light, dark color.Value) Property {
	return Property{tag: TagAdaptive, pair: darkmode.Adaptive(light, dark)}
}

// AutoAdaptive derives the dark member from light when dark is absent.
func AutoAdaptive(light color.Value, dark mo.Option[color.Value]) Property {
	return Property{tag: TagAdaptive, pair: darkmode.FromPair(light, dark)}
}

func FromGlobal(g color.Global) Property {
	return Property{tag: TagGlobal, global: g}
}

func (p Property) Tag() Tag {
	if p.tag == 0 {
		return TagAdaptive
	}
	return p.tag
}

// Pair returns the adaptive pair, if p holds one.
func (p Property) Pair() (darkmode.Pair, bool) {
	return p.pair, p.Tag() == TagAdaptive
}

// Global returns the keyword, if p holds one.
func (p Property) Global() (color.Global, bool) {
	return p.global, p.Tag() == TagGlobal
}

// Fold is total case analysis over p.
func Fold[R any](p Property, onAdaptive func(darkmode.Pair) R, onGlobal func(color.Global) R) R {
	if p.Tag() == TagGlobal {
		return onGlobal(p.global)
	}
	return onAdaptive(p.pair)
}

func (p Property) String() string {
	return Fold(p, darkmode.Pair.String, color.Global.String)
}
