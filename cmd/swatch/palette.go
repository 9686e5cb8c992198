package main

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/garrettladley/swatch/internal/palette"
)

func paletteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "palette [family]",
		Short: "List shade families, or every shade of one family",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				for _, f := range palette.Families() {
					_, _ = fmt.Fprintln(out, f)
				}
				return nil
			}

			family, ok := palette.ParseFamily(strings.ToLower(args[0]))
			if !ok {
				names := lo.Map(palette.Families(), func(f palette.Family, _ int) string { return string(f) })
				return fmt.Errorf("unknown family %q (want one of %s)", args[0], strings.Join(names, ", "))
			}

			for _, step := range palette.Steps() {
				p, _ := palette.Pair(family, step)
				_, _ = fmt.Fprintf(out, "%d  %s  %s\n", step, p.Light(), p.Dark())
			}
			return nil
		},
	}
}
