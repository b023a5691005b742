package schemafile

import (
	"cmp"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/valida"
)

type ruleDoc struct {
	Sanitizer string         `mapstructure:"sanitizer"`
	Validator string         `mapstructure:"validator"`
	Groups    []string       `mapstructure:"groups"`
	Msg       string         `mapstructure:"msg"`
	Message   string         `mapstructure:"message"`
	Options   map[string]any `mapstructure:",remain"`
}

// Load reads and parses the schema file at path.
func Load(path string) (valida.Schema, error) {
	if !SupportsFileExtension(filepath.Ext(path)) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedExt, path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrReadSchema, err)
	}

	s, err := Parse(content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse parses a schema document.
func Parse(content []byte) (valida.Schema, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, errors.Join(ErrParseSchema, err)
	}
	if len(doc) == 0 {
		return nil, fmt.Errorf("%w: document is empty", ErrParseSchema)
	}
	return decodeSchema(doc, "")
}

// SupportsFileExtension reports whether Load accepts files with ext.
func SupportsFileExtension(ext string) bool {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "yaml", "yml", "json":
		return true
	}
	return false
}

func decodeSchema(doc map[string]any, path string) (valida.Schema, error) {
	s := make(valida.Schema, len(doc))

	for field, raw := range doc {
		fieldPath := field
		if path != "" {
			fieldPath = path + "." + field
		}

		list, ok := raw.([]any)
		if !ok {
			return nil, fmt.Errorf("%w %s: expected a list of rules, got %T", ErrInvalidField, fieldPath, raw)
		}

		rules := make([]valida.Rule, 0, len(list))
		for i, item := range list {
			rule, err := decodeRule(item, fmt.Sprintf("%s[%d]", fieldPath, i))
			if err != nil {
				return nil, err
			}
			rules = append(rules, rule)
		}
		s[field] = rules
	}

	return s, nil
}

func decodeRule(item any, path string) (valida.Rule, error) {
	m, ok := item.(map[string]any)
	if !ok {
		return valida.Rule{}, fmt.Errorf("%w %s: expected a mapping, got %T", ErrInvalidRule, path, item)
	}

	var rd ruleDoc
	if err := mapstructure.Decode(m, &rd); err != nil {
		return valida.Rule{}, fmt.Errorf("%w %s: %w", ErrInvalidRule, path, err)
	}
	if rd.Sanitizer == "" && rd.Validator == "" {
		return valida.Rule{}, fmt.Errorf("%w %s: sanitizer or validator is required", ErrInvalidRule, path)
	}

	rule := valida.Rule{
		Sanitizer: rd.Sanitizer,
		Validator: rd.Validator,
		Groups:    rd.Groups,
		Message:   cmp.Or(rd.Msg, rd.Message),
	}
	if len(rd.Options) > 0 {
		rule.Options = valida.Options(rd.Options)
	}

	if rd.Validator == valida.SchemaValidator {
		nested, ok := rule.Options["schema"].(map[string]any)
		if !ok {
			return valida.Rule{}, fmt.Errorf("%w %s: schema option must be a mapping", ErrInvalidRule, path)
		}
		s, err := decodeSchema(nested, path)
		if err != nil {
			return valida.Rule{}, err
		}
		rule.Options["schema"] = s
	}

	return rule, nil
}
