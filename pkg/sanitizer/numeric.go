package sanitizer

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/dmitrymomot/valida"
)

// Numeric represents numeric types that support basic arithmetic operations.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

var leadingFloatRegex = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

type intOptions struct {
	Radix int `mapstructure:"radix"`
}

// ToInt parses the leading integer of the value in the "radix" option base
// (10 by default). Floats are truncated toward zero. Values without a leading
// integer are returned unchanged.
func ToInt(value any, opts valida.Options, _ *valida.Context) any {
	var o intOptions
	_ = opts.Decode(&o)
	if o.Radix < 2 || o.Radix > 36 {
		o.Radix = 10
	}

	if f, ok := number(value); ok {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return value
		}
		return int(math.Trunc(f))
	}

	s := leadingInt(strings.TrimSpace(toString(value)), o.Radix)
	n, err := strconv.ParseInt(s, o.Radix, 64)
	if err != nil {
		return value
	}
	return int(n)
}

// leadingInt returns the longest prefix of s that is a signed integer in radix.
func leadingInt(s string, radix int) string {
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	start := end
	for end < len(s) && digitValue(s[end]) < radix {
		end++
	}
	if end == start {
		return ""
	}
	return s[:end]
}

func digitValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10
	}
	return 36
}

type floatOptions struct {
	Precision *int `mapstructure:"precision"`
}

// ToFloat parses the leading decimal number of the value and, when the
// "precision" option is set, rounds it to that many decimal places.
func ToFloat(value any, opts valida.Options, _ *valida.Context) any {
	var o floatOptions
	_ = opts.Decode(&o)

	f, ok := number(value)
	if !ok {
		s := leadingFloatRegex.FindString(strings.TrimSpace(toString(value)))
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return value
		}
		f = parsed
	}

	if o.Precision != nil {
		f = roundTo(f, *o.Precision)
	}
	return f
}

func roundTo(value float64, places int) float64 {
	if places < 0 {
		return value
	}
	multiplier := math.Pow10(places)
	return math.Round(value*multiplier) / multiplier
}

type clampOptions struct {
	Min *float64 `mapstructure:"min"`
	Max *float64 `mapstructure:"max"`
}

// Clamp constrains a numeric value to the "min"/"max" options. Integers stay
// integers. Non-numeric values are returned unchanged.
func Clamp(value any, opts valida.Options, _ *valida.Context) any {
	var o clampOptions
	if err := opts.Decode(&o); err != nil {
		return value
	}

	lo, hi := math.Inf(-1), math.Inf(1)
	if o.Min != nil {
		lo = *o.Min
	}
	if o.Max != nil {
		hi = *o.Max
	}

	switch v := value.(type) {
	case int:
		return int(clamp(float64(v), lo, hi))
	case int64:
		return int64(clamp(float64(v), lo, hi))
	}

	f, ok := number(value)
	if !ok {
		return value
	}
	return clamp(f, lo, hi)
}

func clamp[T Numeric](value T, min T, max T) T {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// number converts Go numeric types and json.Number to float64.
func number(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}
