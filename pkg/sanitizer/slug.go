package sanitizer

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/dmitrymomot/valida"
)

type slugOptions struct {
	Separator string `mapstructure:"separator"`
	Max       int    `mapstructure:"max"`
}

// foldings covers letters that do not decompose into a base letter and a mark.
var foldings = strings.NewReplacer(
	"ß", "ss", "æ", "ae", "Æ", "AE", "œ", "oe", "Œ", "OE",
	"ø", "o", "Ø", "O", "ł", "l", "Ł", "L", "đ", "d", "Đ", "D",
)

// Slug turns a string into a lowercase URL-safe slug: accents are folded to
// ASCII and every other run of non-alphanumeric characters becomes the
// separator ("-" by default). "max" limits the length in characters.
func Slug(value any, opts valida.Options, _ *valida.Context) any {
	var o slugOptions
	_ = opts.Decode(&o)
	if o.Separator == "" {
		o.Separator = "-"
	}

	s := foldings.Replace(toString(value))
	if folded, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), s); err == nil {
		s = folded
	}

	var b strings.Builder
	b.Grow(len(s))

	pending := false
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pending && b.Len() > 0 {
				b.WriteString(o.Separator)
			}
			pending = false
			b.WriteRune(r)
			continue
		}
		pending = true
	}

	out := b.String()
	if o.Max > 0 && len(out) > o.Max {
		out = strings.TrimRight(out[:o.Max], o.Separator)
	}
	return out
}
