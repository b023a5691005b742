package sanitizer

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/valida"
)

// dateLayouts are tried in order by ToDate.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	time.RFC1123Z,
	time.RFC1123,
}

// ToDate converts a string in a common layout, or a number of milliseconds
// since the Unix epoch, into a time.Time. Unparsable values are returned unchanged.
func ToDate(value any, _ valida.Options, _ *valida.Context) any {
	if t, ok := value.(time.Time); ok {
		return t
	}
	if ms, ok := number(value); ok {
		return time.UnixMilli(int64(ms)).UTC()
	}

	s := strings.TrimSpace(toString(value))
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return value
}

// ToBool returns true only for a boolean true or a case-insensitive "true".
func ToBool(value any, _ valida.Options, _ *valida.Context) any {
	if b, ok := value.(bool); ok {
		return b
	}
	return strings.ToLower(strings.TrimSpace(toString(value))) == "true"
}

// NormalizeEmail trims and lowercases an address and collapses repeated dots
// in its local part.
func NormalizeEmail(value any, _ valida.Options, _ *valida.Context) any {
	email := strings.ToLower(strings.TrimSpace(toString(value)))

	local, domain, ok := strings.Cut(email, "@")
	if !ok || strings.Contains(domain, "@") {
		return email
	}

	local = dotRegex.ReplaceAllString(local, ".")
	local = strings.Trim(local, ".")

	return local + "@" + domain
}

// UUID rewrites any accepted UUID form (braces, urn prefix, upper case) into
// the canonical lowercase hyphenated form. Invalid values are returned unchanged.
func UUID(value any, _ valida.Options, _ *valida.Context) any {
	if id, ok := value.(uuid.UUID); ok {
		return id.String()
	}
	id, err := uuid.Parse(strings.TrimSpace(toString(value)))
	if err != nil {
		return value
	}
	return id.String()
}
