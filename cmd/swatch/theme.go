package main

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/garrettladley/swatch/internal/export"
	"github.com/garrettladley/swatch/internal/theme"
)

func themeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "List, render and export themes",
	}

	cmd.AddCommand(themeListCmd())
	cmd.AddCommand(themeRenderCmd(export.FormatCSS, "Print a theme as a stylesheet"))
	cmd.AddCommand(themeRenderCmd(export.FormatJSON, "Print a theme as JSON tokens"))
	cmd.AddCommand(themeExportCmd())

	return cmd
}

func themeListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List built-in themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range theme.Names() {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func themeRenderCmd(format export.Format, short string) *cobra.Command {
	return &cobra.Command{
		Use:   string(format) + " [name]",
		Short: short,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := resolveTheme(cmd, args)
			if err != nil {
				return err
			}
			data, err := export.Render(t, format)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

func themeExportCmd() *cobra.Command {
	var (
		dir    string
		format string
	)

	cmd := &cobra.Command{
		Use:   "export [names...]",
		Short: "Write themes to disk",
		Long:  "Writes each named theme, or every built-in theme when none are named, to <dir>/<name>.<format>.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := readConfig()
			if err != nil {
				return err
			}
			if dir == "" {
				if dir, err = cfg.ThemesDir(); err != nil {
					return err
				}
			}
			if format == "" {
				format = cfg.Format
			}
			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}

			names := args
			if len(names) == 0 {
				names = theme.Names()
			}

			written, err := export.NewWriter(afero.NewOsFs(), dir).WriteAll(cmd.Context(), names, f)
			if err != nil {
				return err
			}
			for _, path := range written {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), path)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "output directory (default $SWATCH_OUTPUT_DIR or ~/.config/swatch/themes)")
	cmd.Flags().StringVar(&format, "format", "", "css or json (default $SWATCH_FORMAT)")

	return cmd
}
