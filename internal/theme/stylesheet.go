package theme

import (
	"strings"

	"github.com/garrettladley/swatch/internal/css"
	"github.com/garrettladley/swatch/internal/property"
)

// translucentAlpha matches the 0x33 alpha byte used for chart and overlay
// fills.
const translucentAlpha = 0.2

var utilities = map[Group]struct {
	prefix string
	name   css.Name
}{
	GroupText:       {prefix: "text", name: css.Color},
	GroupBackground: {prefix: "bg", name: css.BackgroundColor},
	GroupBorder:     {prefix: "border", name: css.BorderColor},
}

// Sheet publishes every token of t as a custom property on :root, with dark
// values gated by prefers-color-scheme, and adds a utility class per text,
// background and border token.
func (t Theme) Sheet() *css.Sheet {
	tokens := t.Tokens()
	sheet := css.NewSheet()

	var root []css.Declaration
	for _, tok := range tokens {
		root = append(root, css.Declarations(css.Name(tok.Variable()), property.Inject(tok.Pair))...)
	}
	for _, tok := range tokens {
		if tok.Group != GroupColor {
			continue
		}
		name := css.Name(tok.Variable() + "-translucent")
		root = append(root, css.Declarations(name, property.Inject(tok.Pair.Opacity(translucentAlpha)))...)
	}
	sheet.Rule(":root", root...)

	for _, tok := range tokens {
		u, ok := utilities[tok.Group]
		if !ok {
			continue
		}
		sheet.Rule("."+u.prefix+"-"+tok.Name, css.Declaration{Name: u.name, Value: "var(" + tok.Variable() + ")"})
	}
	return sheet
}

// Stylesheet renders t as a standalone CSS file.
func Stylesheet(t Theme) string {
	var b strings.Builder
	b.WriteString("/* swatch theme: " + t.Name + " */\n")
	_, _ = t.Sheet().WriteTo(&b)
	return b.String()
}
