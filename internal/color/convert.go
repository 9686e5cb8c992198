package color

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// RGB is an 8-bit-per-channel sRGB triple. Channels are not clamped: the
// perceptual conversions can land slightly outside 0-255 for out-of-gamut
// inputs, and clamping is left to whoever displays the color.
type RGB struct {
	R, G, B int
}

func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// ToRGB converts v to sRGB. It reports false for global keywords, for named
// colors outside the lookup table and for malformed hex digits.
func (v Value) ToRGB() (RGB, bool) {
	switch v.kind {
	case KindHex:
		return HexToRGB(v.hex)
	case KindRGB, KindRGBA:
		return v.rgbChannels(), true
	case KindHSL, KindHSLA:
		return HSLToRGB(v.c[0], v.c[1], v.c[2]), true
	case KindHWB:
		return HWBToRGB(v.c[0], v.c[1], v.c[2]), true
	case KindLab:
		return LabToRGB(v.c[0], v.c[1], v.c[2]), true
	case KindLCH:
		return LCHToRGB(v.c[0], v.c[1], v.c[2]), true
	case KindOklab:
		return OklabToRGB(v.c[0], v.c[1], v.c[2]), true
	case KindOklch:
		return OklchToRGB(v.c[0], v.c[1], v.c[2]), true
	case KindNamed:
		return NamedToRGB(v.named)
	default:
		return RGB{}, false
	}
}

// HexToRGB parses 3 or 6 hex digits, with or without a leading '#'.
func HexToRGB(s string) (RGB, bool) {
	s = strings.TrimPrefix(s, "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return RGB{}, false
	}

	var ch [3]int
	for i := range ch {
		n, err := strconv.ParseUint(s[i*2:i*2+2], 16, 8)
		if err != nil {
			return RGB{}, false
		}
		ch[i] = int(n)
	}
	return RGB{R: ch[0], G: ch[1], B: ch[2]}, true
}

// RGBToHex formats c as six lower-case hex digits without '#'. Channels are
// clamped to 0-255 for formatting.
func RGBToHex(c RGB) string {
	return fmt.Sprintf("%02x%02x%02x", clampByte(c.R), clampByte(c.G), clampByte(c.B))
}

func NamedToRGB(n Named) (RGB, bool) {
	c, ok := namedRGB[n]
	return c, ok
}

// HSLToRGB takes hue in degrees (any real) and saturation/lightness in
// percent.
func HSLToRGB(h, s, l float64) RGB {
	h = normalizeDegrees(h) / 360
	s /= 100
	l /= 100

	if s == 0 {
		gray := round(l * 255)
		return RGB{R: gray, G: gray, B: gray}
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	return RGB{
		R: round(hueToRGB(p, q, h+1.0/3) * 255),
		G: round(hueToRGB(p, q, h) * 255),
		B: round(hueToRGB(p, q, h-1.0/3) * 255),
	}
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	default:
		return p
	}
}

// HWBToRGB mixes the fully saturated hue with white and black.
func HWBToRGB(h, w, b float64) RGB {
	base := HSLToRGB(h, 100, 50)
	white := w / 100
	factor := 1 - white - b/100

	mix := func(c int) int {
		return round(float64(c)*factor + 255*white)
	}
	return RGB{R: mix(base.R), G: mix(base.G), B: mix(base.B)}
}

// D65 reference white.
const (
	whiteX = 0.95047
	whiteY = 1.0
	whiteZ = 1.08883

	labEpsilon = 0.008856
	labKappa   = 903.3
)

// LabToRGB converts CIE L*a*b* (L in 0-100) to sRGB through D65 XYZ.
func LabToRGB(l, a, b float64) RGB {
	fy := (l + 16) / 116
	fx := a/500 + fy
	fz := fy - b/200

	x := whiteX * labInverse(fx)
	z := whiteZ * labInverse(fz)
	var y float64
	if l > labKappa*labEpsilon {
		y = whiteY * fy * fy * fy
	} else {
		y = whiteY * l / labKappa
	}

	r := 3.2404542*x - 1.5371385*y - 0.4985314*z
	g := -0.9692660*x + 1.8760108*y + 0.0415560*z
	bl := 0.0556434*x - 0.2040259*y + 1.0572252*z

	return RGB{R: encode(r), G: encode(g), B: encode(bl)}
}

func labInverse(t float64) float64 {
	if t3 := t * t * t; t3 > labEpsilon {
		return t3
	}
	return (116*t - 16) / labKappa
}

func LCHToRGB(l, c, h float64) RGB {
	a, b := polarToCartesian(c, h)
	return LabToRGB(l, a, b)
}

// OklabToRGB converts Oklab (L in 0-1) to sRGB.
func OklabToRGB(l, a, b float64) RGB {
	lp := l + 0.3963377774*a + 0.2158037573*b
	mp := l - 0.1055613458*a - 0.0638541728*b
	sp := l - 0.0894841775*a - 1.2914855480*b

	lc := lp * lp * lp
	mc := mp * mp * mp
	sc := sp * sp * sp

	r := 4.0767416621*lc - 3.3077115913*mc + 0.2309699292*sc
	g := -1.2684380046*lc + 2.6097574011*mc - 0.3413193965*sc
	bl := -0.0041960863*lc - 0.7034186147*mc + 1.7076147010*sc

	return RGB{R: encode(r), G: encode(g), B: encode(bl)}
}

func OklchToRGB(l, c, h float64) RGB {
	a, b := polarToCartesian(c, h)
	return OklabToRGB(l, a, b)
}

func polarToCartesian(c, hDeg float64) (float64, float64) {
	rad := hDeg * math.Pi / 180
	return c * math.Cos(rad), c * math.Sin(rad)
}

// encode applies the sRGB transfer function to a linear channel and scales
// it to 0-255.
func encode(c float64) int {
	if c > 0.0031308 {
		c = 1.055*math.Pow(c, 1/2.4) - 0.055
	} else {
		c = 12.92 * c
	}
	return round(c * 255)
}

func normalizeDegrees(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

func round(f float64) int {
	return int(math.Round(f))
}

func clampByte(v int) int {
	return min(255, max(0, v))
}
