package sanitizer

import "github.com/dmitrymomot/valida"

// Registry names of the built-in sanitizers.
const (
	NameToInt              = "toInt"
	NameToFloat            = "toFloat"
	NameToDate             = "toDate"
	NameToBool             = "toBool"
	NameString             = "string"
	NameTrim               = "trim"
	NameLowerCase          = "lowerCase"
	NameUpperCase          = "upperCase"
	NameTitleCase          = "titleCase"
	NameUpperCaseFirst     = "upperCaseFirst"
	NameKebabCase          = "kebabCase"
	NameSnakeCase          = "snakeCase"
	NameCamelCase          = "camelCase"
	NameCollapseWhitespace = "collapseWhitespace"
	NameSingleLine         = "singleLine"
	NameStripHTML          = "stripHTML"
	NameDigits             = "digits"
	NameTruncate           = "truncate"
	NameClamp              = "clamp"
	NameNormalizeEmail     = "normalizeEmail"
	NameUUID               = "uuid"
	NameSlug               = "slug"
)

// All returns the built-in sanitizers keyed by registry name.
func All() map[string]valida.SanitizerFunc {
	return map[string]valida.SanitizerFunc{
		NameToInt:              ToInt,
		NameToFloat:            ToFloat,
		NameToDate:             ToDate,
		NameToBool:             ToBool,
		NameString:             String,
		NameTrim:               Trim,
		NameLowerCase:          LowerCase,
		NameUpperCase:          UpperCase,
		NameTitleCase:          TitleCase,
		NameUpperCaseFirst:     UpperCaseFirst,
		NameKebabCase:          KebabCase,
		NameSnakeCase:          SnakeCase,
		NameCamelCase:          CamelCase,
		NameCollapseWhitespace: CollapseWhitespace,
		NameSingleLine:         SingleLine,
		NameStripHTML:          StripHTML,
		NameDigits:             Digits,
		NameTruncate:           Truncate,
		NameClamp:              Clamp,
		NameNormalizeEmail:     NormalizeEmail,
		NameUUID:               UUID,
		NameSlug:               Slug,
	}
}

// Register installs every built-in sanitizer into r.
func Register(r *valida.Registry) {
	r.SetSanitizers(All())
}
