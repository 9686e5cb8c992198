// Package preview renders whole themes for people to look at: a static
// terminal palette and a standalone HTML page.
package preview

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/samber/lo"

	"github.com/garrettladley/swatch/internal/css"
	"github.com/garrettladley/swatch/internal/property"
	"github.com/garrettladley/swatch/internal/theme"
)

const chipClassPrefix = "chip"

const pageStyle = `body{margin:0;padding:2rem;font-family:system-ui,sans-serif}
h2{text-transform:capitalize;margin:2rem 0 .5rem}
ul{list-style:none;margin:0;padding:0;display:grid;grid-template-columns:repeat(auto-fill,minmax(16rem,1fr));gap:.75rem}
li{display:flex;align-items:center;gap:.75rem}
.swatch{width:3rem;height:3rem;border-radius:.5rem;border:1px solid var(--border-secondary)}
code{font-size:.8rem}
`

type row struct {
	token   theme.Token
	classes string
}

// Page is a standalone HTML document listing every token of t as a swatch.
// The page follows the viewer's color scheme.
func Page(t theme.Theme) templ.Component {
	sheet := t.Sheet()
	rows := lo.Map(t.Tokens(), func(tok theme.Token, _ int) row {
		decls := css.Declarations(css.BackgroundColor, property.Inject(tok.Pair))
		return row{token: tok, classes: sheet.Class(chipClassPrefix, decls)}
	})
	groups := lo.GroupBy(rows, func(r row) theme.Group { return r.token.Group })
	order := lo.Uniq(lo.Map(rows, func(r row, _ int) theme.Group { return r.token.Group }))

	sections := lo.Map(order, func(g theme.Group, _ int) templ.Component {
		return section(g, groups[g])
	})

	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			"<!DOCTYPE html>\n<html lang=\"en\"><head><meta charset=\"utf-8\"><meta name=\"color-scheme\" content=\"light dark\"><title>swatch · %s</title><style>\n%s%s</style></head>\n<body class=\"text-primary\" style=\"background-color:var(--background-primary)\"><h1>%s</h1>\n",
			templ.EscapeString(t.Name), pageStyle, sheet, templ.EscapeString(t.Name),
		); err != nil {
			return err
		}
		if err := templ.Join(sections...).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</body></html>\n")
		return err
	})
}

// Current renders Page for the theme carried by the render context.
func Current() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return Page(theme.FromContext(ctx)).Render(ctx, w)
	})
}

func section(g theme.Group, rows []row) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, "<section><h2>%s</h2><ul>\n", templ.EscapeString(g)); err != nil {
			return err
		}
		for _, r := range rows {
			if err := item(r).Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</ul></section>\n")
		return err
	})
}

func item(r row) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		pair := r.token.Pair
		value := pair.Light().String()
		if !pair.IsSingleColor() {
			value += " / " + pair.Dark().String()
		}
		_, err := fmt.Fprintf(w,
			"<li><span class=\"swatch %s\"></span><div><code>%s</code><br><small>%s</small></div></li>\n",
			templ.EscapeString(r.classes),
			templ.EscapeString(r.token.Variable()),
			templ.EscapeString(value),
		)
		return err
	})
}
