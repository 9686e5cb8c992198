package color

import stdcolor "image/color"

// Mix returns the RGB midpoint of a and b using integer division. It reports
// false when either side has no RGB mapping.
func Mix(a, b Value) (Value, bool) {
	ca, ok := a.ToRGB()
	if !ok {
		return Value{}, false
	}
	cb, ok := b.ToRGB()
	if !ok {
		return Value{}, false
	}
	return FromRGB((ca.R+cb.R)/2, (ca.G+cb.G)/2, (ca.B+cb.B)/2), true
}

// PerceivedBrightness returns the ITU-R BT.601 luma of v in [0, 1].
func (v Value) PerceivedBrightness() (float64, bool) {
	c, ok := v.ToRGB()
	if !ok {
		return 0, false
	}
	return float64(299*c.R+587*c.G+114*c.B) / 255000, true
}

// StdColor bridges v to image/color. Channels are clamped and alpha is taken
// from rgba and hsla values.
func (v Value) StdColor() (stdcolor.NRGBA, bool) {
	c, ok := v.ToRGB()
	if !ok {
		return stdcolor.NRGBA{}, false
	}
	a := min(1, max(0, v.Alpha()))
	return stdcolor.NRGBA{
		R: uint8(clampByte(c.R)),
		G: uint8(clampByte(c.G)),
		B: uint8(clampByte(c.B)),
		A: uint8(round(a * 255)),
	}, true
}
