package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/garrettladley/swatch/internal/color"
	"github.com/garrettladley/swatch/internal/xslog"
)

const keyResult = "result"

func adjustCmd() *cobra.Command {
	var (
		by      float64
		opacity float64
	)

	cmd := &cobra.Command{
		Use:   "adjust <color>",
		Short: "Lighten, darken or fade a CSS color",
		Long:  "Positive --by lightens and negative darkens, as a fraction in [-1, 1]. Values outside that range leave the color unchanged.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := color.Parse(args[0])
			if err != nil {
				return err
			}

			adjusted := v.AdjustBrightness(by)
			if cmd.Flags().Changed("opacity") {
				adjusted = adjusted.Opacity(opacity)
			}

			xslog.FromContext(cmd.Context()).DebugContext(cmd.Context(), "adjusted color",
				xslog.Color(v),
				slog.String(keyResult, adjusted.String()))

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), adjusted)
			return nil
		},
	}

	cmd.Flags().Float64Var(&by, "by", 0, "brightness change in [-1, 1]")
	cmd.Flags().Float64Var(&opacity, "opacity", 1, "alpha in [0, 1]")

	return cmd
}
