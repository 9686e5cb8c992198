package theme

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
)

var ErrUnknownTheme = errors.New("unknown theme")

var presets = map[string]func() Theme{
	"default": Default,
	"apple":   Apple,
	"github":  GitHub,
}

// Names lists the built-in themes in sorted order.
func Names() []string {
	names := lo.Keys(presets)
	slices.Sort(names)
	return names
}

// Lookup resolves a built-in theme by case-insensitive name.
func Lookup(name string) (Theme, error) {
	build, ok := presets[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Theme{}, fmt.Errorf("%w %q (want one of %s)", ErrUnknownTheme, name, strings.Join(Names(), ", "))
	}
	return build(), nil
}

type themeKey struct{}

func WithTheme(ctx context.Context, t Theme) context.Context {
	return context.WithValue(ctx, themeKey{}, t)
}

// FromContext returns the theme stored by WithTheme, or Default.
func FromContext(ctx context.Context) Theme {
	if t, ok := ctx.Value(themeKey{}).(Theme); ok {
		return t
	}
	return Default()
}
