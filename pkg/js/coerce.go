package js

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Hint steers which hook ToPrimitive tries first.
type Hint int

const (
	// HintDefault behaves like HintNumber (valueOf first).
	HintDefault Hint = iota
	HintNumber
	HintString
)

// ErrNoPrimitive is returned when an object has no hook that yields a
// primitive representation.
var ErrNoPrimitive = errors.New("object cannot be converted to a primitive value")

// ToPrimitive resolves a value to a primitive. Primitives pass through
// unchanged. For objects the valueOf and toString hooks are tried in
// hint order, each at most once; a hook that fails or returns a
// non-primitive falls through to the other hook.
func ToPrimitive(v Value, hint Hint) (Value, error) {
	if v.kind != KindObject {
		return v, nil
	}

	first, second := v.obj.ValueOf, v.obj.ToString
	if hint == HintString {
		first, second = second, first
	}

	for _, hook := range []Hook{first, second} {
		if hook == nil {
			continue
		}
		prim, err := hook()
		if err != nil {
			continue
		}
		if prim.IsPrimitive() {
			return prim, nil
		}
	}

	return Undefined(), ErrNoPrimitive
}

// ToNumber converts a value to a number. Unparseable strings yield NaN
// rather than an error; only a failed ToPrimitive makes this fail.
func ToNumber(v Value) (float64, error) {
	switch v.kind {
	case KindUndefined:
		return math.NaN(), nil
	case KindNull:
		return 0, nil
	case KindBoolean:
		if v.bool {
			return 1, nil
		}
		return 0, nil
	case KindNumber:
		return v.num, nil
	case KindString:
		return parseNumber(v.str), nil
	}

	prim, err := ToPrimitive(v, HintNumber)
	if err != nil {
		return math.NaN(), err
	}
	return ToNumber(prim)
}

// ToString converts a value to a string. Only a failed ToPrimitive
// makes this fail.
func ToString(v Value) (string, error) {
	switch v.kind {
	case KindUndefined:
		return "undefined", nil
	case KindNull:
		return "null", nil
	case KindBoolean:
		if v.bool {
			return "true", nil
		}
		return "false", nil
	case KindNumber:
		return formatNumber(v.num), nil
	case KindString:
		return v.str, nil
	}

	prim, err := ToPrimitive(v, HintString)
	if err != nil {
		return "", err
	}
	return ToString(prim)
}

// ToBoolean converts a value to a boolean. Total: exactly undefined, null,
// false, ±0, NaN and the empty string are false; everything else, objects
// included, is true. Objects are never reduced via ToPrimitive here.
func ToBoolean(v Value) bool {
	switch v.kind {
	case KindUndefined, KindNull:
		return false
	case KindBoolean:
		return v.bool
	case KindNumber:
		return v.num != 0 && !math.IsNaN(v.num)
	case KindString:
		return v.str != ""
	}
	return true
}

func isStrWhiteSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}

// parseNumber applies the string-to-number grammar: optional surrounding
// whitespace, Infinity, signless 0x/0o/0b integers, or a signed decimal
// with optional fraction and exponent. Anything else is NaN. A leading
// zero digit sequence is plain decimal, never octal.
func parseNumber(s string) float64 {
	s = strings.TrimFunc(s, isStrWhiteSpace)
	if s == "" {
		return 0
	}

	if len(s) > 2 && s[0] == '0' {
		switch s[1] {
		case 'x', 'X':
			return parseRadix(s[2:], 16)
		case 'o', 'O':
			return parseRadix(s[2:], 8)
		case 'b', 'B':
			return parseRadix(s[2:], 2)
		}
	}

	body := s
	sign := 1.0
	if body[0] == '+' || body[0] == '-' {
		if body[0] == '-' {
			sign = -1
		}
		body = body[1:]
	}

	if body == "Infinity" {
		return sign * math.Inf(1)
	}

	if !isDecimalLiteral(body) {
		return math.NaN()
	}

	f, err := strconv.ParseFloat(body, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}
	return sign * f
}

// isDecimalLiteral accepts digits with an optional fraction and an optional
// signed exponent; at least one digit must appear before the exponent.
// Deliberately narrower than strconv: no underscores, hex floats or inf.
func isDecimalLiteral(s string) bool {
	i := 0
	digits := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
			digits++
		}
	}
	if digits == 0 {
		return false
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		expDigits := 0
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
			expDigits++
		}
		if expDigits == 0 {
			return false
		}
	}
	return i == len(s)
}

func parseRadix(digits string, base int) float64 {
	if digits == "" {
		return math.NaN()
	}
	value := 0.0
	for i := 0; i < len(digits); i++ {
		var d int
		switch c := digits[i]; {
		case c >= '0' && c <= '9':
			d = int(c - '0')
		case c >= 'a' && c <= 'f':
			d = int(c-'a') + 10
		case c >= 'A' && c <= 'F':
			d = int(c-'A') + 10
		default:
			return math.NaN()
		}
		if d >= base {
			return math.NaN()
		}
		value = value*float64(base) + float64(d)
	}
	return value
}

// formatNumber renders a number the way string conversion does: shortest
// round-tripping decimal, exponential form at magnitudes >= 1e21 or < 1e-6,
// and "0" for negative zero.
func formatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case f == 0:
		return "0"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}

	if abs := math.Abs(f); abs >= 1e21 || abs < 1e-6 {
		out := strconv.FormatFloat(f, 'e', -1, 64)
		// strconv pads the exponent to two digits ("1.5e-07"), the
		// documented form does not ("1.5e-7").
		if i := strings.IndexByte(out, 'e'); i >= 0 {
			exp := strings.TrimLeft(out[i+2:], "0")
			if exp == "" {
				exp = "0"
			}
			out = out[:i+2] + exp
		}
		return out
	}

	return strconv.FormatFloat(f, 'f', -1, 64)
}
