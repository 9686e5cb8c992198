package main

import (
	"fmt"

	"github.com/samber/mo"
	"github.com/spf13/cobra"

	"github.com/garrettladley/swatch/internal/color"
	"github.com/garrettladley/swatch/internal/css"
	"github.com/garrettladley/swatch/internal/darkmode"
)

func gradientCmd() *cobra.Command {
	var (
		darkBottom string
		darkTop    string
	)

	cmd := &cobra.Command{
		Use:   "gradient <bottom> <top>",
		Short: "Print a bottom-to-top gradient background and its midpoint",
		Long:  "Each end keeps the same color in dark mode unless --dark-bottom or --dark-top is set.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			bottom, err := gradientEnd(args[0], darkBottom)
			if err != nil {
				return err
			}
			top, err := gradientEnd(args[1], darkTop)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if mid, ok := darkmode.GradientMidpoint(bottom, top); ok {
				_, _ = fmt.Fprintf(out, "midpoint: %s\n", mid)
			} else {
				_, _ = fmt.Fprintln(out, "midpoint: none")
			}
			_, _ = fmt.Fprintln(out)

			printDeclarations(out, css.Gradient(bottom, top))
			return nil
		},
	}

	cmd.Flags().StringVar(&darkBottom, "dark-bottom", "", "bottom color in dark mode")
	cmd.Flags().StringVar(&darkTop, "dark-top", "", "top color in dark mode")

	return cmd
}

func gradientEnd(light, dark string) (darkmode.Pair, error) {
	l, err := color.Parse(light)
	if err != nil {
		return darkmode.Pair{}, err
	}
	if dark == "" {
		return darkmode.Single(l), nil
	}
	d, err := color.Parse(dark)
	if err != nil {
		return darkmode.Pair{}, fmt.Errorf("dark color for %s: %w", light, err)
	}
	return darkmode.FromPair(l, mo.Some(d)), nil
}
