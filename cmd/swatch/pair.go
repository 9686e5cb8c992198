package main

import (
	"fmt"
	"io"

	"github.com/samber/mo"
	"github.com/spf13/cobra"

	"github.com/garrettladley/swatch/internal/color"
	"github.com/garrettladley/swatch/internal/css"
	"github.com/garrettladley/swatch/internal/darkmode"
	"github.com/garrettladley/swatch/internal/property"
)

func pairCmd() *cobra.Command {
	var propertyName string

	cmd := &cobra.Command{
		Use:   "pair <light> [dark]",
		Short: "Build a light/dark color pair and print its CSS",
		Long:  "When dark is omitted it is derived by darkening light by 20%.",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, ok := css.LookupName(propertyName)
			if !ok {
				return fmt.Errorf("unsupported color property: %q", propertyName)
			}

			light, err := color.Parse(args[0])
			if err != nil {
				return err
			}
			dark := mo.None[color.Value]()
			if len(args) == 2 {
				d, err := color.Parse(args[1])
				if err != nil {
					return err
				}
				dark = mo.Some(d)
			}

			pair := darkmode.FromPair(light, dark)

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "light:  %s\n", pair.Light())
			_, _ = fmt.Fprintf(out, "dark:   %s\n", pair.Dark())
			_, _ = fmt.Fprintf(out, "single: %t\n", pair.IsSingleColor())
			_, _ = fmt.Fprintf(out, "text:   %s\n", darkmode.ReadablePrimary(pair))
			_, _ = fmt.Fprintln(out)

			printDeclarations(out, css.Declarations(name, property.Inject(pair)))
			return nil
		},
	}

	cmd.Flags().StringVar(&propertyName, "property", string(css.Color), "CSS property to emit")

	return cmd
}

func printDeclarations(w io.Writer, decls []css.Declaration) {
	for _, d := range decls {
		if d.Media == css.MediaNone {
			_, _ = fmt.Fprintf(w, "%s;\n", d)
			continue
		}
		_, _ = fmt.Fprintf(w, "%s { %s; }\n", d.Media, d)
	}
}
