package validator

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/dmitrymomot/valida"
	"github.com/dmitrymomot/valida/pkg/cache"
)

// Enum passes values equal to one of the "items" option. Numbers compare by
// value, so 1 matches 1.0.
func Enum(value any, opts valida.Options, _ *valida.Context) bool {
	if isNil(value) {
		return true
	}
	items := reflect.ValueOf(opts["items"])
	switch items.Kind() {
	case reflect.Slice, reflect.Array:
	default:
		return false
	}
	for i := range items.Len() {
		if equal(items.Index(i).Interface(), value) {
			return true
		}
	}
	return false
}

type rangeOptions struct {
	Min *float64 `mapstructure:"min"`
	Max *float64 `mapstructure:"max"`
}

// Range passes numbers within the inclusive "min"/"max" bounds. Either bound may be omitted.
func Range(value any, opts valida.Options, _ *valida.Context) bool {
	if isNil(value) {
		return true
	}
	n, ok := number(value)
	if !ok {
		return false
	}
	var o rangeOptions
	if err := opts.Decode(&o); err != nil {
		return false
	}
	if o.Min != nil && n < *o.Min {
		return false
	}
	if o.Max != nil && n > *o.Max {
		return false
	}
	return true
}

var patternCache = cache.NewLRU[string, *regexp.Regexp](256)

// Regex passes values whose string form matches the "pattern" option.
// "modifiers" may hold any of i, m and s.
func Regex(value any, opts valida.Options, _ *valida.Context) bool {
	if isNil(value) {
		return true
	}
	re, err := compilePattern(opts["pattern"], opts["modifiers"])
	if err != nil {
		return false
	}
	return re.MatchString(toString(value))
}

func compilePattern(pattern, modifiers any) (*regexp.Regexp, error) {
	if re, ok := pattern.(*regexp.Regexp); ok {
		return re, nil
	}

	src, ok := pattern.(string)
	if !ok {
		return nil, fmt.Errorf("pattern must be a string, got %T", pattern)
	}

	var flags strings.Builder
	if m, ok := modifiers.(string); ok {
		for _, r := range m {
			switch r {
			case 'i', 'm', 's':
				if !strings.ContainsRune(flags.String(), r) {
					flags.WriteRune(r)
				}
			}
		}
	}
	if flags.Len() > 0 {
		src = "(?" + flags.String() + ")" + src
	}

	return patternCache.GetOrCreate(src, func() (*regexp.Regexp, error) {
		return regexp.Compile(src)
	})
}
