package config

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRead(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want Config
	}{
		{
			name: "defaults",
			want: Config{Theme: DefaultTheme, Format: "css"},
		},
		{
			name: "overrides",
			env: map[string]string{
				"SWATCH_THEME":      "github",
				"SWATCH_OUTPUT_DIR": "/srv/themes",
				"SWATCH_FORMAT":     "json",
			},
			want: Config{Theme: "github", OutputDir: "/srv/themes", Format: "json"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range []string{"SWATCH_THEME", "SWATCH_OUTPUT_DIR", "SWATCH_FORMAT"} {
				t.Setenv(key, tt.env[key])
			}
			got, err := Read()
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Read() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestThemesDir(t *testing.T) {
	got, err := Config{OutputDir: "/srv/themes"}.ThemesDir()
	if err != nil {
		t.Fatalf("ThemesDir() error = %v", err)
	}
	if got != "/srv/themes" {
		t.Errorf("ThemesDir() = %q, want %q", got, "/srv/themes")
	}

	t.Setenv("HOME", "/home/swatch")
	got, err = Config{}.ThemesDir()
	if err != nil {
		t.Fatalf("ThemesDir() error = %v", err)
	}
	if want := "/home/swatch/.config/swatch/themes"; got != want {
		t.Errorf("ThemesDir() = %q, want %q", got, want)
	}
}
