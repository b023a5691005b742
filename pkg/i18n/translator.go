package i18n

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"regexp"
	"slices"
	"strings"

	"github.com/dmitrymomot/valida/pkg/logger"
)

// DefaultLanguage is used when no WithDefaultLanguage option is given.
const DefaultLanguage = "en"

// Translator looks up message templates by language and dot-separated key.
// It is read-only after construction and safe for concurrent use.
type Translator struct {
	translations   map[string]map[string]any
	defaultLang    string
	missingLogMode bool
	logger         *slog.Logger
}

// NewTranslator creates a translator over already parsed translations.
func NewTranslator(translations map[string]map[string]any, opts ...Option) (*Translator, error) {
	t := &Translator{
		translations: make(map[string]map[string]any, len(translations)),
		defaultLang:  DefaultLanguage,
		logger:       logger.Discard(),
	}
	for _, opt := range opts {
		opt(t)
	}

	for lang, m := range translations {
		if lang == "" {
			return nil, fmt.Errorf("%w: empty language code", ErrInvalidLanguage)
		}
		if m == nil {
			return nil, fmt.Errorf("%w %q: nil translations", ErrInvalidLanguage, lang)
		}
		t.translations[lang] = m
	}

	return t, nil
}

// LoadFile parses a YAML or JSON translation file.
func LoadFile(ctx context.Context, path string, opts ...Option) (*Translator, error) {
	parser := NewParserForFile(path)
	if parser == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFile, path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}

	translations, err := parser.Parse(ctx, content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return NewTranslator(translations, opts...)
}

// SupportedLanguages returns the languages with translations, sorted.
func (t *Translator) SupportedLanguages() []string {
	return slices.Sorted(maps.Keys(t.translations))
}

// Lookup returns the template for key in lang, falling back to the default language.
func (t *Translator) Lookup(lang, key string) (string, bool) {
	for _, l := range []string{lang, t.defaultLang} {
		m, ok := t.translations[l]
		if !ok {
			continue
		}
		if s, ok := getTranslation(m, key).(string); ok {
			return s, true
		}
	}

	if t.missingLogMode {
		t.logger.Debug("translation not found", slog.String("lang", lang), slog.String("key", key))
	}
	return "", false
}

// T translates key with named params given as key/value pairs.
// A missing translation yields the key itself.
//
//	tr.T("en", "validation.range", "min", "0", "max", "49")
func (t *Translator) T(lang, key string, args ...string) string {
	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}

	tmpl, ok := t.Lookup(lang, key)
	if !ok {
		return key
	}
	return namedSprintf(tmpl, params)
}

// getTranslation walks nested maps following a dot-separated key.
func getTranslation(m map[string]any, key string) any {
	var current any = m
	for part := range strings.SplitSeq(key, ".") {
		next, ok := current.(map[string]any)
		if !ok {
			return nil
		}
		current = next[part]
	}
	return current
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// namedSprintf replaces %{name} placeholders. Unknown names are kept as is.
func namedSprintf(tmpl string, params map[string]string) string {
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}
