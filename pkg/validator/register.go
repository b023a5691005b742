package validator

import "github.com/dmitrymomot/valida"

// Registry names of the built-in validators.
const (
	NameRequired     = "required"
	NameNotEmpty     = "notEmpty"
	NameEmpty        = "empty"
	NameRegex        = "regex"
	NameLen          = "len"
	NameArray        = "array"
	NamePlainObject  = "plainObject"
	NameDate         = "date"
	NameInteger      = "integer"
	NameEnum         = "enum"
	NameBool         = "bool"
	NameFloat        = "float"
	NameRange        = "range"
	NameEmail        = "email"
	NameUUID         = "uuid"
	NameURL          = "url"
	NameAlphanumeric = "alphanumeric"
)

// All returns the built-in validators keyed by name.
func All() map[string]valida.Validator {
	return map[string]valida.Validator{
		NameRequired:     valida.Predicate(NameRequired, Required),
		NameNotEmpty:     valida.Predicate(NameNotEmpty, NotEmpty),
		NameEmpty:        valida.Predicate(NameEmpty, Empty),
		NameRegex:        valida.Predicate(NameRegex, Regex).Requires("pattern"),
		NameLen:          valida.Check(NameLen, Len),
		NameArray:        valida.Predicate(NameArray, Array),
		NamePlainObject:  valida.Predicate(NamePlainObject, PlainObject),
		NameDate:         valida.Predicate(NameDate, Date),
		NameInteger:      valida.Predicate(NameInteger, Integer),
		NameEnum:         valida.Predicate(NameEnum, Enum).Requires("items"),
		NameBool:         valida.Predicate(NameBool, Bool),
		NameFloat:        valida.Predicate(NameFloat, Float),
		NameRange:        valida.Predicate(NameRange, Range),
		NameEmail:        valida.Check(NameEmail, Email),
		NameUUID:         valida.Check(NameUUID, UUID),
		NameURL:          valida.Check(NameURL, URL),
		NameAlphanumeric: valida.Check(NameAlphanumeric, Alphanumeric),
	}
}

// Register installs every built-in validator into r.
func Register(r *valida.Registry) {
	r.SetValidators(All())
}
