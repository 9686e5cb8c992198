package css

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/garrettladley/swatch/internal/color"
	"github.com/garrettladley/swatch/internal/darkmode"
	"github.com/garrettladley/swatch/internal/property"
)

func TestDeclarations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		prop property.Property
		want []Declaration
	}{
		{
			name: "single color yields one declaration",
			prop: property.Single(color.Hex("FF0000")),
			want: []Declaration{{Name: Color, Value: "#FF0000"}},
		},
		{
			name: "equal pair collapses to one declaration",
			prop: property.Adaptive(color.FromNamed(color.Red), color.FromNamed(color.Red)),
			want: []Declaration{{Name: Color, Value: "red"}},
		},
		{
			name: "pair yields a gated dark declaration",
			prop: property.Adaptive(color.Hex("ffffff"), color.Hex("000000")),
			want: []Declaration{
				{Name: Color, Value: "#ffffff"},
				{Name: Color, Value: "#000000", Media: MediaPrefersDark},
			},
		},
		{
			name: "global keyword",
			prop: property.FromGlobal(color.Inherit),
			want: []Declaration{{Name: Color, Value: "inherit"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Declarations(Color, tt.prop)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Declarations() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDeclarationString(t *testing.T) {
	t.Parallel()

	d := Declaration{Name: BorderTopColor, Value: "rgb(1, 2, 3)", Media: MediaPrefersDark}
	if got, want := d.String(), "border-top-color:rgb(1, 2, 3)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestGradient(t *testing.T) {
	t.Parallel()

	single := Gradient(darkmode.Single(color.Hex("000")), darkmode.Single(color.Hex("fff")))
	want := []Declaration{{Name: Background, Value: "linear-gradient(0deg, #000 0%, #fff 100%)"}}
	if diff := cmp.Diff(want, single); diff != "" {
		t.Errorf("Gradient() single mismatch (-want +got):\n%s", diff)
	}

	adaptive := Gradient(
		darkmode.Adaptive(color.Hex("000"), color.Hex("111")),
		darkmode.Single(color.Hex("fff")),
	)
	want = []Declaration{
		{Name: Background, Value: "linear-gradient(0deg, #000 0%, #fff 100%)"},
		{Name: Background, Value: "linear-gradient(0deg, #111 0%, #fff 100%)", Media: MediaPrefersDark},
	}
	if diff := cmp.Diff(want, adaptive); diff != "" {
		t.Errorf("Gradient() adaptive mismatch (-want +got):\n%s", diff)
	}
}

func TestSheetClass(t *testing.T) {
	t.Parallel()

	s := NewSheet()
	red := Declarations(Color, property.Adaptive(color.Hex("cc3333"), color.FromRGB(163, 40, 40)))

	first := s.Class("color", red)
	if first != "color-0 color-1" {
		t.Errorf("Class() = %q, want %q", first, "color-0 color-1")
	}
	again := s.Class("color", red)
	if again != first {
		t.Errorf("Class() for identical declarations = %q, want %q", again, first)
	}
	single := s.Class("color", Declarations(Color, property.Single(color.Hex("cc3333"))))
	if single != "color-0" {
		t.Errorf("Class() reusing light declaration = %q, want %q", single, "color-0")
	}

	want := ".color-0{color:#cc3333}\n" +
		"@media (prefers-color-scheme: dark){\n" +
		"  .color-1{color:rgb(163, 40, 40)}\n" +
		"}\n"
	if diff := cmp.Diff(want, s.String()); diff != "" {
		t.Errorf("String() mismatch (-want +got):\n%s", diff)
	}
}

func TestSheetRule(t *testing.T) {
	t.Parallel()

	s := NewSheet()
	s.Rule(":root",
		Declaration{Name: "--text-primary", Value: "#000"},
		Declaration{Name: "--text-primary", Value: "#fff", Media: MediaPrefersDark},
		Declaration{Name: "--text-link", Value: "#00f"},
	)
	s.Rule("a", Declaration{Name: Color, Value: "var(--text-link)"})
	s.Rule(".empty")

	want := ":root{--text-primary:#000;--text-link:#00f}\n" +
		"a{color:var(--text-link)}\n" +
		"@media (prefers-color-scheme: dark){\n" +
		"  :root{--text-primary:#fff}\n" +
		"}\n"
	if diff := cmp.Diff(want, s.String()); diff != "" {
		t.Errorf("String() mismatch (-want +got):\n%s", diff)
	}
	if s.Len() != 3 {
		t.Errorf("Len() = %d, want 3", s.Len())
	}
}

func TestLookupName(t *testing.T) {
	t.Parallel()

	if n, ok := LookupName("stop-color"); !ok || n != StopColor {
		t.Errorf("LookupName(stop-color) = %q, %v", n, ok)
	}
	if _, ok := LookupName("width"); ok {
		t.Error("LookupName(width) reported ok")
	}
}
