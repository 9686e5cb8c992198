package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/garrettladley/swatch/internal/paths"
)

const DefaultTheme = "default"

type Config struct {
	Theme     string `env:"SWATCH_THEME"      envDefault:"default"`
	OutputDir string `env:"SWATCH_OUTPUT_DIR"`
	Format    string `env:"SWATCH_FORMAT"     envDefault:"css"`
}

func Read() (Config, error) {
	return env.ParseAs[Config]()
}

// ThemesDir is OutputDir when set, otherwise the per-user themes directory.
func (c Config) ThemesDir() (string, error) {
	if c.OutputDir != "" {
		return c.OutputDir, nil
	}
	dir, err := paths.Themes()
	if err != nil {
		return "", fmt.Errorf("failed to resolve themes directory: %w", err)
	}
	return dir, nil
}
