package color

import (
	"fmt"
	"strconv"
	"strings"
)

var _ fmt.Stringer = Value{}

// String renders v as CSS. Hex digits are emitted exactly as stored.
func (v Value) String() string {
	c := v.c
	switch v.kind {
	case KindHex:
		return "#" + v.hex
	case KindRGB:
		return fmt.Sprintf("rgb(%d, %d, %d)", int(c[0]), int(c[1]), int(c[2]))
	case KindRGBA:
		return fmt.Sprintf("rgba(%d, %d, %d, %s)", int(c[0]), int(c[1]), int(c[2]), formatNumber(v.alpha))
	case KindHSL:
		return fmt.Sprintf("hsl(%sdeg, %s%%, %s%%)", formatNumber(c[0]), formatNumber(c[1]), formatNumber(c[2]))
	case KindHSLA:
		return fmt.Sprintf("hsla(%sdeg, %s%%, %s%%, %s)", formatNumber(c[0]), formatNumber(c[1]), formatNumber(c[2]), formatNumber(v.alpha))
	case KindHWB:
		return fmt.Sprintf("hwb(%sdeg %s%% %s%%)", formatNumber(c[0]), formatNumber(c[1]), formatNumber(c[2]))
	case KindLab:
		return fmt.Sprintf("lab(%s%% %s %s)", formatNumber(c[0]), formatNumber(c[1]), formatNumber(c[2]))
	case KindLCH:
		return fmt.Sprintf("lch(%s%% %s %sdeg)", formatNumber(c[0]), formatNumber(c[1]), formatNumber(c[2]))
	case KindOklab:
		return fmt.Sprintf("oklab(%s %s %s)", formatNumber(c[0]), formatNumber(c[1]), formatNumber(c[2]))
	case KindOklch:
		return fmt.Sprintf("oklch(%s %s %sdeg)", formatNumber(c[0]), formatNumber(c[1]), formatNumber(c[2]))
	case KindNamed:
		return string(v.named)
	case KindGlobal:
		return string(v.global)
	default:
		return ""
	}
}

// formatNumber prints f with at most four fractional digits and no trailing
// zeros.
func formatNumber(f float64) string {
	s := strconv.FormatFloat(f, 'f', 4, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}
