package main

import (
	"fmt"
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/garrettladley/swatch/internal/preview"
	"github.com/garrettladley/swatch/internal/xslog"
)

const defaultPreviewWidth = 96

func previewCmd() *cobra.Command {
	var (
		htmlPath string
		width    int
	)

	cmd := &cobra.Command{
		Use:   "preview [name]",
		Short: "Show a theme as terminal swatches or an HTML page",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := resolveTheme(cmd, args)
			if err != nil {
				return err
			}

			if htmlPath == "" {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), preview.Palette(t.Tokens(), width))
				return nil
			}

			var w io.Writer = cmd.OutOrStdout()
			if htmlPath != "-" {
				f, err := afero.NewOsFs().Create(htmlPath)
				if err != nil {
					return fmt.Errorf("failed to create %s: %w", htmlPath, err)
				}
				defer func() { _ = f.Close() }()
				w = f
			}

			if err := preview.Current().Render(cmd.Context(), w); err != nil {
				return fmt.Errorf("failed to render page: %w", err)
			}
			xslog.FromContext(cmd.Context()).InfoContext(cmd.Context(), "wrote preview",
				xslog.Theme(t.Name),
				xslog.Path(htmlPath))
			return nil
		},
	}

	cmd.Flags().StringVar(&htmlPath, "html", "", "write an HTML page to this path (- for stdout)")
	cmd.Flags().IntVar(&width, "width", defaultPreviewWidth, "terminal columns to lay swatches out in")

	return cmd
}
