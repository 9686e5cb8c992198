package color

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var ErrInvalidColor = errors.New("invalid color")

type ParseError struct {
	Input   string
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	msg := "parse color " + strconv.Quote(e.Input)
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() error { return e.Cause }

func parseErr(input, msg string) error {
	return &ParseError{Input: input, Message: msg, Cause: ErrInvalidColor}
}

// Parse reads a CSS color: "#rgb" or "#rrggbb", rgb()/rgba(), hsl()/hsla(),
// hwb(), lab(), lch(), oklab(), oklch(), a named color or a CSS-wide keyword.
// Channel lists may be separated by commas or whitespace, and rgb() and
// hsl() accept a trailing "/ alpha".
func Parse(s string) (Value, error) {
	input := s
	s = strings.TrimSpace(s)
	if s == "" {
		return Value{}, parseErr(input, "empty")
	}

	// hex digits keep their case
	if digits, ok := strings.CutPrefix(s, "#"); ok {
		if _, ok := HexToRGB(digits); !ok {
			return Value{}, parseErr(input, "hex must be 3 or 6 hex digits")
		}
		return Hex(digits), nil
	}

	s = strings.ToLower(s)
	fn, body, ok := strings.Cut(s, "(")
	if !ok {
		if g := Global(s); g.IsKnown() {
			return FromGlobal(g), nil
		}
		if n := Named(s); n.IsKnown() {
			return FromNamed(n), nil
		}
		return Value{}, parseErr(input, "unknown keyword")
	}

	body, ok = strings.CutSuffix(strings.TrimSpace(body), ")")
	if !ok {
		return Value{}, parseErr(input, "missing ')'")
	}
	args, alpha, err := splitArgs(body)
	if err != nil {
		return Value{}, &ParseError{Input: input, Cause: err}
	}

	switch strings.TrimSpace(fn) {
	case "rgb", "rgba":
		n, err := numbers(args, 3, plain)
		if err != nil {
			return Value{}, &ParseError{Input: input, Cause: err}
		}
		if alpha == nil {
			return FromRGB(round(n[0]), round(n[1]), round(n[2])), nil
		}
		return RGBA(round(n[0]), round(n[1]), round(n[2]), *alpha), nil
	case "hsl", "hsla":
		n, err := numbers(args, 3, angle, percent, percent)
		if err != nil {
			return Value{}, &ParseError{Input: input, Cause: err}
		}
		if alpha == nil {
			return HSL(n[0], n[1], n[2]), nil
		}
		return HSLA(n[0], n[1], n[2], *alpha), nil
	case "hwb":
		return build(input, args, alpha, HWB, angle, percent, percent)
	case "lab":
		return build(input, args, alpha, Lab, percent, plain, plain)
	case "lch":
		return build(input, args, alpha, LCH, percent, plain, angle)
	case "oklab":
		return build(input, args, alpha, Oklab, plain, plain, plain)
	case "oklch":
		return build(input, args, alpha, Oklch, plain, plain, angle)
	default:
		return Value{}, parseErr(input, "unknown function "+strconv.Quote(fn))
	}
}

// MustParse is like Parse but panics on error. Use it for literals.
func MustParse(s string) Value {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

func build(input string, args []string, alpha *float64, ctor func(a, b, c float64) Value, units ...unit) (Value, error) {
	if alpha != nil {
		return Value{}, parseErr(input, "alpha is only supported for rgb and hsl")
	}
	n, err := numbers(args, 3, units...)
	if err != nil {
		return Value{}, &ParseError{Input: input, Cause: err}
	}
	return ctor(n[0], n[1], n[2]), nil
}

type unit uint8

const (
	plain unit = iota
	percent
	angle
)

var suffixes = map[unit]string{
	percent: "%",
	angle:   "deg",
}

// splitArgs splits a function body into channel tokens and an optional alpha
// component, given either as a fourth comma separated value or after '/'.
func splitArgs(body string) ([]string, *float64, error) {
	var alphaTok string
	if main, a, ok := strings.Cut(body, "/"); ok {
		body, alphaTok = main, strings.TrimSpace(a)
	}

	args := strings.FieldsFunc(body, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	if len(args) == 4 && alphaTok == "" {
		args, alphaTok = args[:3], args[3]
	}
	if alphaTok == "" {
		return args, nil, nil
	}

	a, err := parseAlpha(alphaTok)
	if err != nil {
		return nil, nil, err
	}
	return args, &a, nil
}

func parseAlpha(tok string) (float64, error) {
	if p, ok := strings.CutSuffix(tok, "%"); ok {
		f, err := parseNumber(p)
		if err != nil {
			return 0, err
		}
		return f / 100, nil
	}
	return parseNumber(tok)
}

// parseNumber reads one finite channel value. strconv accepts nan and inf
// spellings, which are not CSS numbers.
func parseNumber(tok string) (float64, error) {
	f, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidColor, err)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %q is not a finite number", ErrInvalidColor, tok)
	}
	return f, nil
}

func numbers(args []string, want int, units ...unit) ([]float64, error) {
	if len(args) != want {
		return nil, fmt.Errorf("%w: expected %d channels, got %d", ErrInvalidColor, want, len(args))
	}

	out := make([]float64, len(args))
	for i, tok := range args {
		u := plain
		if i < len(units) {
			u = units[i]
		}
		if sfx, ok := suffixes[u]; ok {
			tok = strings.TrimSuffix(tok, sfx)
		}
		f, err := parseNumber(tok)
		if err != nil {
			return nil, err
		}
		out[i] = f
	}
	return out, nil
}
