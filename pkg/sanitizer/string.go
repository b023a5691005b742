package sanitizer

import (
	"fmt"
	"html"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/valida"
)

// toString renders a value the way it would be typed into a form.
func toString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case []byte:
		return string(s)
	case time.Time:
		return s.Format(time.RFC3339)
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(s), 'f', -1, 32)
	case fmt.Stringer:
		return s.String()
	}
	return fmt.Sprint(v)
}

// String converts the value to its string form.
func String(value any, _ valida.Options, _ *valida.Context) any {
	return toString(value)
}

type trimOptions struct {
	Chars string `mapstructure:"chars"`
}

// Trim removes leading and trailing whitespace, or the characters listed in
// the "chars" option.
func Trim(value any, opts valida.Options, _ *valida.Context) any {
	var o trimOptions
	_ = opts.Decode(&o)

	s := toString(value)
	if o.Chars == "" {
		return strings.TrimSpace(s)
	}
	return strings.Trim(s, o.Chars)
}

func LowerCase(value any, _ valida.Options, _ *valida.Context) any {
	return strings.ToLower(toString(value))
}

func UpperCase(value any, _ valida.Options, _ *valida.Context) any {
	return strings.ToUpper(toString(value))
}

// TitleCase capitalizes the first letter of every word and lowercases the rest.
func TitleCase(value any, _ valida.Options, _ *valida.Context) any {
	return cases.Title(language.Und).String(toString(value))
}

// UpperCaseFirst capitalizes the first letter and leaves the rest untouched.
func UpperCaseFirst(value any, _ valida.Options, _ *valida.Context) any {
	s := toString(value)
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// KebabCase converts to kebab-case by replacing non-alphanumeric runs with a hyphen.
func KebabCase(value any, _ valida.Options, _ *valida.Context) any {
	return joinWords(toString(value), '-')
}

// SnakeCase converts to snake_case by replacing non-alphanumeric runs with an underscore.
func SnakeCase(value any, _ valida.Options, _ *valida.Context) any {
	return joinWords(toString(value), '_')
}

func joinWords(s string, sep rune) string {
	s = strings.ToLower(strings.TrimSpace(s))

	var b strings.Builder
	prevSep := false
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			prevSep = false
			continue
		}
		if !prevSep {
			b.WriteRune(sep)
			prevSep = true
		}
	}

	return strings.Trim(b.String(), string(sep))
}

// CamelCase converts to camelCase. Non-alphanumeric characters start new words.
func CamelCase(value any, _ valida.Options, _ *valida.Context) any {
	s := strings.TrimSpace(toString(value))

	var b strings.Builder
	newWord := false
	first := true
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			switch {
			case first:
				b.WriteRune(unicode.ToLower(r))
				first = false
			case newWord:
				b.WriteRune(unicode.ToUpper(r))
			default:
				b.WriteRune(unicode.ToLower(r))
			}
			newWord = false
			continue
		}
		if !first {
			newWord = true
		}
	}

	return b.String()
}

// CollapseWhitespace replaces whitespace runs with a single space and trims.
func CollapseWhitespace(value any, _ valida.Options, _ *valida.Context) any {
	return collapse(toString(value))
}

func collapse(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}

// SingleLine joins a multi-line string into one line.
func SingleLine(value any, _ valida.Options, _ *valida.Context) any {
	s := strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(toString(value))
	return collapse(s)
}

// StripHTML removes tags and unescapes entities.
func StripHTML(value any, _ valida.Options, _ *valida.Context) any {
	return html.UnescapeString(htmlTagRegex.ReplaceAllString(toString(value), ""))
}

// Digits keeps only decimal digits.
func Digits(value any, _ valida.Options, _ *valida.Context) any {
	return nonDigitRegex.ReplaceAllString(toString(value), "")
}

type truncateOptions struct {
	Max int `mapstructure:"max"`
}

// Truncate cuts the string to at most "max" runes. Without a positive max the
// value is returned unchanged.
func Truncate(value any, opts valida.Options, _ *valida.Context) any {
	var o truncateOptions
	if err := opts.Decode(&o); err != nil || o.Max <= 0 {
		return value
	}

	s := toString(value)
	runes := []rune(s)
	if len(runes) <= o.Max {
		return s
	}
	return string(runes[:o.Max])
}
