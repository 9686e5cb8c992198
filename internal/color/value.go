// Package color models a single CSS color value in one of the CSS color
// notations and converts between those notations and 8-bit sRGB.
//
// Every operation on a Value is total: inputs that cannot be converted
// (malformed hex digits, named colors without an RGB mapping, global
// keywords) come back unchanged rather than as an error.
package color

import (
	"fmt"
	"strings"
)

type Kind uint8

const (
	KindInvalid Kind = iota
	KindHex
	KindRGB
	KindRGBA
	KindHSL
	KindHSLA
	KindHWB
	KindLab
	KindLCH
	KindOklab
	KindOklch
	KindNamed
	KindGlobal
)

var _ fmt.Stringer = KindInvalid

func (k Kind) String() string {
	switch k {
	case KindHex:
		return "hex"
	case KindRGB:
		return "rgb"
	case KindRGBA:
		return "rgba"
	case KindHSL:
		return "hsl"
	case KindHSLA:
		return "hsla"
	case KindHWB:
		return "hwb"
	case KindLab:
		return "lab"
	case KindLCH:
		return "lch"
	case KindOklab:
		return "oklab"
	case KindOklch:
		return "oklch"
	case KindNamed:
		return "named"
	case KindGlobal:
		return "global"
	default:
		return "invalid"
	}
}

// Value is a CSS color in exactly one notation. Values are comparable, and
// == is structural equality: Hex("fff") and Hex("ffffff") are different
// values even though they render the same color.
type Value struct {
	kind   Kind
	hex    string
	c      [3]float64
	alpha  float64
	named  Named
	global Global
}

// Hex builds a hexadecimal value. A single leading '#' is stripped; the
// digits are stored as given, without validation or case folding.
func Hex(digits string) Value {
	return Value{kind: KindHex, hex: strings.TrimPrefix(digits, "#")}
}

func FromRGB(r, g, b int) Value {
	return Value{kind: KindRGB, c: [3]float64{float64(r), float64(g), float64(b)}}
}

func RGBA(r, g, b int, a float64) Value {
	return Value{kind: KindRGBA, c: [3]float64{float64(r), float64(g), float64(b)}, alpha: a}
}

// HSL takes hue in degrees and saturation/lightness as percentages (0-100).
func HSL(h, s, l float64) Value {
	return Value{kind: KindHSL, c: [3]float64{h, s, l}}
}

func HSLA(h, s, l, a float64) Value {
	return Value{kind: KindHSLA, c: [3]float64{h, s, l}, alpha: a}
}

// HWB takes hue in degrees and whiteness/blackness as percentages (0-100).
func HWB(h, w, b float64) Value {
	return Value{kind: KindHWB, c: [3]float64{h, w, b}}
}

func Lab(l, a, b float64) Value {
	return Value{kind: KindLab, c: [3]float64{l, a, b}}
}

func LCH(l, c, h float64) Value {
	return Value{kind: KindLCH, c: [3]float64{l, c, h}}
}

func Oklab(l, a, b float64) Value {
	return Value{kind: KindOklab, c: [3]float64{l, a, b}}
}

func Oklch(l, c, h float64) Value {
	return Value{kind: KindOklch, c: [3]float64{l, c, h}}
}

func FromNamed(n Named) Value {
	return Value{kind: KindNamed, named: n}
}

func FromGlobal(g Global) Value {
	return Value{kind: KindGlobal, global: g}
}

func (v Value) Kind() Kind { return v.kind }

// HexDigits returns the stored digits of a hex value, without '#'.
func (v Value) HexDigits() (string, bool) {
	return v.hex, v.kind == KindHex
}

// Channels returns the three numeric channels of the active notation:
// r/g/b, h/s/l, h/w/b, l/a/b or l/c/h. It is all zeros for hex, named and
// global values.
func (v Value) Channels() [3]float64 { return v.c }

// Alpha returns the alpha channel of rgba and hsla values, and 1 for every
// other notation.
func (v Value) Alpha() float64 {
	if v.hasAlpha() {
		return v.alpha
	}
	return 1
}

func (v Value) NamedColor() (Named, bool) {
	return v.named, v.kind == KindNamed
}

func (v Value) GlobalKeyword() (Global, bool) {
	return v.global, v.kind == KindGlobal
}

func (v Value) IsValid() bool { return v.kind != KindInvalid }

func (v Value) hasAlpha() bool {
	return v.kind == KindRGBA || v.kind == KindHSLA
}

func (v Value) rgbChannels() RGB {
	return RGB{R: int(v.c[0]), G: int(v.c[1]), B: int(v.c[2])}
}
