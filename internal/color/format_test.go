package color

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestValueString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value Value
		want  string
	}{
		{name: "hex keeps stored digits", value: Hex("#FF0000"), want: "#FF0000"},
		{name: "short hex", value: Hex("abc"), want: "#abc"},
		{name: "rgb", value: FromRGB(204, 0, 0), want: "rgb(204, 0, 0)"},
		{name: "rgba", value: RGBA(255, 0, 0, 0.5), want: "rgba(255, 0, 0, 0.5)"},
		{name: "rgba opaque", value: RGBA(255, 0, 0, 1), want: "rgba(255, 0, 0, 1)"},
		{name: "hsl", value: HSL(120, 100, 30), want: "hsl(120deg, 100%, 30%)"},
		{name: "hsla", value: HSLA(210, 40.5, 12.25, 0.75), want: "hsla(210deg, 40.5%, 12.25%, 0.75)"},
		{name: "hwb", value: HWB(90, 10, 20), want: "hwb(90deg 10% 20%)"},
		{name: "lab", value: Lab(53.24, 80.09, -67.2), want: "lab(53.24% 80.09 -67.2)"},
		{name: "lch", value: LCH(50, 30, 270), want: "lch(50% 30 270deg)"},
		{name: "oklab", value: Oklab(0.62796, 0.22486, 0.12585), want: "oklab(0.628 0.2249 0.1258)"},
		{name: "oklch", value: Oklch(0.7, 0.1, 120), want: "oklch(0.7 0.1 120deg)"},
		{name: "named", value: FromNamed(RebeccaPurple), want: "rebeccapurple"},
		{name: "global", value: FromGlobal(RevertLayer), want: "revert-layer"},
		{name: "zero value", value: Value{}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if diff := cmp.Diff(tt.want, tt.value.String()); diff != "" {
				t.Errorf("String() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFormatNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input float64
		want  string
	}{
		{input: 0, want: "0"},
		{input: 1, want: "1"},
		{input: -0.00001, want: "0"},
		{input: 0.1, want: "0.1"},
		{input: 12.34567, want: "12.3457"},
		{input: -3.5, want: "-3.5"},
		{input: 100, want: "100"},
	}

	for _, tt := range tests {
		if got := formatNumber(tt.input); got != tt.want {
			t.Errorf("formatNumber(%v) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
