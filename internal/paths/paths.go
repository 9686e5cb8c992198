package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	dotConfig = ".config"
	appName   = "swatch"
	themesDir = "themes"
)

func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, dotConfig, appName), nil
}

// Themes is where exported stylesheets land by default.
func Themes() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, themesDir), nil
}
