package main

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/garrettladley/swatch/internal/tui"
)

func browseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse [name]",
		Short: "Browse a theme's tokens and the palette interactively",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := resolveTheme(cmd, args)
			if err != nil {
				return err
			}

			model := tui.New(t)
			p := tea.NewProgram(&model, tea.WithContext(cmd.Context()))
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("failed to run browser: %w", err)
			}
			return nil
		},
	}
}
