package color

import (
	stdcolor "image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		a, b   Value
		want   Value
		wantOK bool
	}{
		{name: "black and white", a: Hex("000000"), b: Hex("ffffff"), want: FromRGB(127, 127, 127), wantOK: true},
		{name: "mixed notations", a: FromNamed(Red), b: HSL(240, 100, 50), want: FromRGB(127, 0, 127), wantOK: true},
		{name: "same color", a: FromRGB(10, 20, 30), b: FromRGB(10, 20, 30), want: FromRGB(10, 20, 30), wantOK: true},
		{name: "left unmapped", a: FromNamed(Orange), b: Hex("fff"), wantOK: false},
		{name: "right global", a: Hex("fff"), b: FromGlobal(Initial), wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := Mix(tt.a, tt.b)
			if ok != tt.wantOK {
				t.Fatalf("Mix() ok = %v, want %v", ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("Mix() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPerceivedBrightness(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		value  Value
		want   float64
		wantOK bool
	}{
		{name: "white", value: Hex("ffffff"), want: 1, wantOK: true},
		{name: "black", value: FromNamed(Black), want: 0, wantOK: true},
		{name: "green dominates", value: FromRGB(0, 255, 0), want: 0.587, wantOK: true},
		{name: "global", value: FromGlobal(Inherit), wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := tt.value.PerceivedBrightness()
			if ok != tt.wantOK {
				t.Fatalf("PerceivedBrightness() ok = %v, want %v", ok, tt.wantOK)
			}
			if diff := got - tt.want; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("PerceivedBrightness() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStdColor(t *testing.T) {
	t.Parallel()

	got, ok := RGBA(255, 128, 0, 0.5).StdColor()
	if !ok {
		t.Fatal("StdColor() failed")
	}
	if diff := cmp.Diff(stdcolor.NRGBA{R: 255, G: 128, B: 0, A: 128}, got); diff != "" {
		t.Errorf("StdColor() mismatch (-want +got):\n%s", diff)
	}

	got, ok = Oklab(0.86644, -0.2339, 0.1794).StdColor()
	if !ok {
		t.Fatal("StdColor() failed")
	}
	if got.R != 0 || got.A != 255 {
		t.Errorf("StdColor() = %+v, want clamped red channel and opaque alpha", got)
	}

	if _, ok := FromGlobal(Revert).StdColor(); ok {
		t.Error("StdColor() on a global should fail")
	}
}

func TestNamedAndGlobalKeywords(t *testing.T) {
	t.Parallel()

	if !Magenta.IsKnown() || Named("blurple").IsKnown() {
		t.Error("Named.IsKnown mismatch")
	}
	if !RevertLayer.IsKnown() || Global("none").IsKnown() {
		t.Error("Global.IsKnown mismatch")
	}
	names := NamedColors()
	names[0] = "mutated"
	if NamedColors()[0] != Black {
		t.Error("NamedColors returned shared storage")
	}
}
