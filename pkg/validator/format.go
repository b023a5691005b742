package validator

import (
	"fmt"
	"net/mail"
	"net/url"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrymomot/valida"
)

var alphanumericRegex = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

type lenOptions struct {
	Min *int `mapstructure:"min"`
	Max *int `mapstructure:"max"`
}

// Len checks the length of strings (in characters), slices and maps against
// the "min"/"max" options. Other values are measured by their string form.
func Len(value any, opts valida.Options, _ *valida.Context) *valida.Error {
	if isNil(value) {
		return nil
	}

	var o lenOptions
	if err := opts.Decode(&o); err != nil {
		return &valida.Error{
			Message:        fmt.Sprintf("invalid length options: %v", err),
			TranslationKey: "validation.length",
			Params:         opts.Clone(),
		}
	}

	n, ok := length(value)
	if !ok {
		n = len([]rune(toString(value)))
	}

	switch {
	case o.Min != nil && n < *o.Min:
		return &valida.Error{
			Message:        fmt.Sprintf("must be at least %d characters long", *o.Min),
			TranslationKey: "validation.min_length",
			Params:         opts.Clone(),
		}
	case o.Max != nil && n > *o.Max:
		return &valida.Error{
			Message:        fmt.Sprintf("must be at most %d characters long", *o.Max),
			TranslationKey: "validation.max_length",
			Params:         opts.Clone(),
		}
	}
	return nil
}

// Email checks for a bare address with a dotted domain.
func Email(value any, _ valida.Options, _ *valida.Context) *valida.Error {
	if isNil(value) {
		return nil
	}
	if isEmail(toString(value)) {
		return nil
	}
	return &valida.Error{
		Message:        "must be a valid email address",
		TranslationKey: "validation.email",
	}
}

func isEmail(s string) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}
	addr, err := mail.ParseAddress(s)
	// Reject display-name forms like "Bob <bob@example.com>".
	if err != nil || addr.Address != s {
		return false
	}
	at := strings.LastIndex(s, "@")
	if at <= 0 || at == len(s)-1 {
		return false
	}
	domain := s[at+1:]
	if strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") || strings.Contains(domain, "..") {
		return false
	}
	return strings.Contains(domain, ".")
}

// URL checks for an absolute URL with scheme and host. The optional "schemes"
// option restricts the accepted schemes.
func URL(value any, opts valida.Options, _ *valida.Context) *valida.Error {
	if isNil(value) {
		return nil
	}
	invalid := &valida.Error{
		Message:        "must be a valid URL",
		TranslationKey: "validation.url",
	}

	u, err := url.ParseRequestURI(toString(value))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return invalid
	}

	var o struct {
		Schemes []string `mapstructure:"schemes"`
	}
	if err := opts.Decode(&o); err != nil || len(o.Schemes) == 0 {
		return nil
	}
	for _, s := range o.Schemes {
		if strings.EqualFold(s, u.Scheme) {
			return nil
		}
	}
	invalid.Params = valida.Options{"schemes": o.Schemes}
	return invalid
}

// UUID checks for a UUID in any form accepted by github.com/google/uuid.
func UUID(value any, _ valida.Options, _ *valida.Context) *valida.Error {
	if isNil(value) {
		return nil
	}
	if _, ok := value.(uuid.UUID); ok {
		return nil
	}
	if err := uuid.Validate(toString(value)); err != nil {
		return &valida.Error{
			Message:        "must be a valid UUID",
			TranslationKey: "validation.uuid",
		}
	}
	return nil
}

// Alphanumeric allows ASCII letters and digits only.
func Alphanumeric(value any, _ valida.Options, _ *valida.Context) *valida.Error {
	if isNil(value) {
		return nil
	}
	if alphanumericRegex.MatchString(toString(value)) {
		return nil
	}
	return &valida.Error{
		Message:        "must contain only letters and numbers",
		TranslationKey: "validation.alphanumeric",
	}
}
