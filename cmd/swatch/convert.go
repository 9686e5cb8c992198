package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/garrettladley/swatch/internal/color"
)

func convertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <color>",
		Short: "Parse a CSS color and print its sRGB forms",
		Long:  "Accepts hex, rgb(), rgba(), hsl(), hsla(), hwb(), lab(), lch(), oklab(), oklch(), named colors and global keywords.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := color.Parse(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "notation:   %s\n", v.Kind())
			_, _ = fmt.Fprintf(out, "css:        %s\n", v)

			rgb, ok := v.ToRGB()
			if !ok {
				_, _ = fmt.Fprintln(out, "rgb:        none")
				return nil
			}
			brightness, _ := v.PerceivedBrightness()
			_, _ = fmt.Fprintf(out, "rgb:        %s\n", rgb)
			_, _ = fmt.Fprintf(out, "hex:        #%s\n", color.RGBToHex(rgb))
			_, _ = fmt.Fprintf(out, "brightness: %.3f\n", brightness)
			return nil
		},
	}
}
