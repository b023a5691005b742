// Package validator provides the built-in validators of the engine.
//
// Register installs them into a registry under the names listed as Name*
// constants:
//
//	reg := valida.NewRegistry()
//	validator.Register(reg)
//
//	schema := valida.Schema{
//	    "age":   {valida.Validate(validator.NameRequired), valida.Validate(validator.NameRange, valida.Options{"min": 0, "max": 120})},
//	    "email": {valida.Validate(validator.NameEmail)},
//	}
//
// # Contracts
//
// Most validators follow the boolean contract (valida.Predicate): on failure
// the engine records an error tagged with the validator name and carrying the
// rule's options, e.g. {"validator": "range", "min": 0, "max": 120}.
//
// Format validators (len, email, url, uuid, alphanumeric) follow the record
// contract (valida.Check) and return a human-readable message together with
// a translation key such as "validation.email", so callers can localize the
// output.
//
// # Absent values
//
// Except for required, every validator passes nil values. Whether a field
// must be present is decided by required alone.
//
// # Options
//
// regex requires "pattern" (string or *regexp.Regexp; optional "modifiers"
// from "i", "m", "s"), enum requires "items". Missing required options are
// reported by the engine as structural errors before any data is touched.
package validator
