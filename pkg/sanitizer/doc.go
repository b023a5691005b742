// Package sanitizer provides the built-in value transforms of the engine.
//
// Every exported sanitizer has the valida.SanitizerFunc signature and is
// registered by Register under its Name* constant:
//
//	reg := valida.NewRegistry()
//	sanitizer.Register(reg)
//
//	schema := valida.Schema{
//	    "age":   {valida.Sanitize(sanitizer.NameToInt)},
//	    "email": {valida.Sanitize(sanitizer.NameTrim), valida.Sanitize(sanitizer.NameNormalizeEmail)},
//	}
//
// The engine never calls a sanitizer with a nil value. Sanitizers do not
// fail: when a value cannot be converted (toInt on "abc") it is returned
// unchanged, leaving the decision to the validators that follow.
//
// Rule options are decoded with valida.Options.Decode into small option
// structs; malformed options fall back to the defaults.
//
// All sanitizers are stateless and safe for concurrent use.
package sanitizer
