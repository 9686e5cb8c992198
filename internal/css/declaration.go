// Package css turns color properties into declarations and stylesheets.
package css

import (
	"fmt"

	"github.com/garrettladley/swatch/internal/color"
	"github.com/garrettladley/swatch/internal/darkmode"
	"github.com/garrettladley/swatch/internal/property"
)

// Media is the condition a declaration is gated by.
type Media uint8

const (
	MediaNone Media = iota
	MediaPrefersLight
	MediaPrefersDark
)

func (m Media) String() string {
	switch m {
	case MediaPrefersLight:
		return "@media (prefers-color-scheme: light)"
	case MediaPrefersDark:
		return "@media (prefers-color-scheme: dark)"
	default:
		return ""
	}
}

type Declaration struct {
	Name  Name
	Value string
	Media Media
}

var _ fmt.Stringer = Declaration{}

func (d Declaration) String() string {
	return string(d.Name) + ":" + d.Value
}

// Declarations lowers p for the property name. A global keyword and a single
// color each yield one unconditional declaration. A pair yields the light
// value unconditionally and the dark value gated by MediaPrefersDark.
func Declarations(name Name, p property.Property) []Declaration {
	return property.Fold(p,
		func(pair darkmode.Pair) []Declaration {
			return pairDeclarations(name, pair)
		},
		func(g color.Global) []Declaration {
			return []Declaration{{Name: name, Value: string(g)}}
		},
	)
}

func pairDeclarations(name Name, pair darkmode.Pair) []Declaration {
	light := Declaration{Name: name, Value: pair.Light().String()}
	if pair.IsSingleColor() {
		return []Declaration{light}
	}
	return []Declaration{
		light,
		{Name: name, Value: pair.Dark().String(), Media: MediaPrefersDark},
	}
}

// Gradient builds a bottom-to-top linear gradient background. The dark
// gradient is emitted only when either end differs between schemes.
func Gradient(bottom, top darkmode.Pair) []Declaration {
	render := func(b, t color.Value) string {
		return fmt.Sprintf("linear-gradient(0deg, %s 0%%, %s 100%%)", b, t)
	}
	light := Declaration{Name: Background, Value: render(bottom.Light(), top.Light())}
	if bottom.IsSingleColor() && top.IsSingleColor() {
		return []Declaration{light}
	}
	return []Declaration{
		light,
		{Name: Background, Value: render(bottom.Dark(), top.Dark()), Media: MediaPrefersDark},
	}
}
