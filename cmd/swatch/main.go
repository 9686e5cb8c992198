package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/garrettladley/swatch/internal/config"
	"github.com/garrettladley/swatch/internal/theme"
	"github.com/garrettladley/swatch/internal/version"
	"github.com/garrettladley/swatch/internal/xslog"
)

func main() {
	_ = godotenv.Load()

	logger := xslog.NewLoggerFromEnv(os.Stderr).With(xslog.Version())
	slog.SetDefault(logger)
	ctx := xslog.WithLogger(context.Background(), logger)

	if err := fang.Execute(ctx, rootCmd(), fang.WithNotifySignal(os.Interrupt, syscall.SIGTERM)); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "swatch",
		Short:   "Scheme-aware CSS colors, palettes and themes",
		Version: version.Describe(version.Get()),
	}

	root.AddCommand(convertCmd())
	root.AddCommand(adjustCmd())
	root.AddCommand(pairCmd())
	root.AddCommand(gradientCmd())
	root.AddCommand(paletteCmd())
	root.AddCommand(themeCmd())
	root.AddCommand(previewCmd())
	root.AddCommand(browseCmd())

	return root
}

func readConfig() (config.Config, error) {
	cfg, err := config.Read()
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	return cfg, nil
}

// resolveTheme looks up the theme named in args, falling back to
// SWATCH_THEME, and carries it on the command context.
func resolveTheme(cmd *cobra.Command, args []string) (theme.Theme, error) {
	var name string
	if len(args) > 0 {
		name = args[0]
	} else {
		cfg, err := readConfig()
		if err != nil {
			return theme.Theme{}, err
		}
		name = cfg.Theme
	}

	t, err := theme.Lookup(name)
	if err != nil {
		return theme.Theme{}, err
	}
	ctx := theme.WithTheme(cmd.Context(), t)
	cmd.SetContext(ctx)
	xslog.FromContext(ctx).DebugContext(ctx, "resolved theme", xslog.Theme(t.Name))
	return t, nil
}
