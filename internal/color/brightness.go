package color

import "math"

// DefaultAdjustment is the fraction Darker and Lighter use when callers have
// no better value, and the fraction dark variants are derived with.
const DefaultAdjustment = 0.2

// AdjustBrightness moves v toward white (percent > 0) or black (percent < 0).
// Percent must lie in [-1, 1]; any other value, NaN included, returns v
// unchanged.
//
// rgb and rgba values keep their notation and alpha. hsl and hsla values
// scale lightness. hex and named values with an RGB mapping come back as
// rgb. Every other notation is returned as is.
func (v Value) AdjustBrightness(percent float64) Value {
	if !(percent >= -1 && percent <= 1) {
		return v
	}

	switch v.kind {
	case KindRGB:
		c := adjustRGB(v.rgbChannels(), percent)
		return FromRGB(c.R, c.G, c.B)
	case KindRGBA:
		c := adjustRGB(v.rgbChannels(), percent)
		return RGBA(c.R, c.G, c.B, v.alpha)
	case KindHSL:
		return HSL(v.c[0], v.c[1], adjustLightness(v.c[2], percent))
	case KindHSLA:
		return HSLA(v.c[0], v.c[1], adjustLightness(v.c[2], percent), v.alpha)
	case KindHex, KindNamed:
		rgb, ok := v.ToRGB()
		if !ok {
			return v
		}
		c := adjustRGB(rgb, percent)
		return FromRGB(c.R, c.G, c.B)
	default:
		return v
	}
}

func (v Value) Darker(percent float64) Value {
	return v.AdjustBrightness(-percent)
}

func (v Value) Lighter(percent float64) Value {
	return v.AdjustBrightness(percent)
}

// Opacity sets the alpha channel, clamped to [0, 1] with NaN read as 0. rgb
// and hsl values gain
// an alpha channel; hex and named values are converted to rgba when they
// have an RGB mapping. Other notations are returned unchanged.
func (v Value) Opacity(alpha float64) Value {
	if math.IsNaN(alpha) {
		alpha = 0
	}
	alpha = min(1, max(0, alpha))

	switch v.kind {
	case KindRGB, KindRGBA:
		c := v.rgbChannels()
		return RGBA(c.R, c.G, c.B, alpha)
	case KindHSL, KindHSLA:
		return HSLA(v.c[0], v.c[1], v.c[2], alpha)
	case KindHex, KindNamed:
		c, ok := v.ToRGB()
		if !ok {
			return v
		}
		return RGBA(c.R, c.G, c.B, alpha)
	default:
		return v
	}
}

func adjustRGB(c RGB, percent float64) RGB {
	return RGB{
		R: adjustChannel(c.R, percent),
		G: adjustChannel(c.G, percent),
		B: adjustChannel(c.B, percent),
	}
}

func adjustChannel(v int, percent float64) int {
	f := float64(v)
	var out int
	if percent > 0 {
		out = int(f + (255-f)*percent)
	} else {
		out = int(f * (1 + percent))
	}
	return clampByte(out)
}

func adjustLightness(l, percent float64) float64 {
	if percent > 0 {
		l += (100 - l) * percent
	} else {
		l *= 1 + percent
	}
	return min(100, max(0, l))
}
