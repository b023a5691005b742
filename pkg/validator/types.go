package validator

import (
	"math"
	"reflect"
	"time"

	"github.com/dmitrymomot/valida"
)

// Array passes slices and arrays.
func Array(value any, _ valida.Options, _ *valida.Context) bool {
	if isNil(value) {
		return true
	}
	switch reflect.TypeOf(value).Kind() {
	case reflect.Slice, reflect.Array:
		return true
	}
	return false
}

// PlainObject passes maps and structs.
func PlainObject(value any, _ valida.Options, _ *valida.Context) bool {
	if isNil(value) {
		return true
	}
	t := reflect.TypeOf(value)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Kind() == reflect.Map || t.Kind() == reflect.Struct
}

// Integer passes Go integers and floats without a fractional part.
func Integer(value any, _ valida.Options, _ *valida.Context) bool {
	if isNil(value) {
		return true
	}
	if isIntegerKind(value) {
		return true
	}
	f, ok := number(value)
	if !ok || math.IsInf(f, 0) || math.IsNaN(f) {
		return false
	}
	return f == math.Trunc(f)
}

// Float passes numbers with a fractional part. Whole numbers fail.
func Float(value any, _ valida.Options, _ *valida.Context) bool {
	if isNil(value) {
		return true
	}
	if isIntegerKind(value) {
		return false
	}
	f, ok := number(value)
	if !ok || math.IsInf(f, 0) || math.IsNaN(f) {
		return false
	}
	return f != math.Trunc(f)
}

// Bool passes booleans.
func Bool(value any, _ valida.Options, _ *valida.Context) bool {
	if isNil(value) {
		return true
	}
	_, ok := value.(bool)
	return ok
}

// Date passes time values and strings in one of the accepted layouts.
func Date(value any, opts valida.Options, _ *valida.Context) bool {
	if isNil(value) {
		return true
	}
	switch v := value.(type) {
	case time.Time:
		return !v.IsZero()
	case *time.Time:
		return !v.IsZero()
	case string:
		_, ok := parseDate(v, opts)
		return ok
	}
	return false
}

// DateLayouts are tried in order when no "layout" option is given.
var DateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.DateOnly,
	time.RFC1123Z,
	time.RFC1123,
}

func parseDate(s string, opts valida.Options) (time.Time, bool) {
	layouts := DateLayouts
	if l, ok := opts["layout"].(string); ok && l != "" {
		layouts = []string{l}
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
