// Package builtin assembles a registry holding every built-in sanitizer and validator.
package builtin

import (
	"github.com/dmitrymomot/valida"
	"github.com/dmitrymomot/valida/pkg/sanitizer"
	"github.com/dmitrymomot/valida/pkg/validator"
)

// NewRegistry returns a registry with the built-in sanitizers, the built-in
// validators and the nested schema validator. Further rules can be added with
// SetSanitizer and SetValidator.
func NewRegistry(opts ...valida.Option) *valida.Registry {
	r := valida.NewRegistry(opts...)
	sanitizer.Register(r)
	validator.Register(r)
	return r
}
