package validator

import "github.com/dmitrymomot/valida"

// Required fails when the value is absent or nil.
func Required(value any, _ valida.Options, _ *valida.Context) bool {
	return !isNil(value)
}

// NotEmpty fails for values with a zero length. Values without a length
// (numbers, booleans) never satisfy it.
func NotEmpty(value any, _ valida.Options, _ *valida.Context) bool {
	if isNil(value) {
		return true
	}
	n, ok := length(value)
	return ok && n > 0
}

// Empty fails unless the value has a zero length.
func Empty(value any, _ valida.Options, _ *valida.Context) bool {
	if isNil(value) {
		return true
	}
	n, ok := length(value)
	return ok && n == 0
}
