package valida_test

import (
	"context"
	"strconv"
	"strings"

	"github.com/dmitrymomot/valida"
	"github.com/dmitrymomot/valida/pkg/logger"
)

func toInt(value any, _ valida.Options, _ *valida.Context) any {
	switch v := value.(type) {
	case int:
		return v
	case float64:
		return int(v)
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n
		}
	}
	return value
}

func trim(value any, _ valida.Options, _ *valida.Context) any {
	if s, ok := value.(string); ok {
		return strings.TrimSpace(s)
	}
	return value
}

func double(value any, _ valida.Options, _ *valida.Context) any {
	if n, ok := value.(int); ok {
		return n * 2
	}
	return value
}

func required(value any, _ valida.Options, _ *valida.Context) bool {
	return value != nil
}

func inRange(value any, opts valida.Options, _ *valida.Context) bool {
	if value == nil {
		return true
	}
	var o struct {
		Min *int `mapstructure:"min"`
		Max *int `mapstructure:"max"`
	}
	if err := opts.Decode(&o); err != nil {
		return false
	}
	n, ok := value.(int)
	if !ok {
		return false
	}
	return (o.Min == nil || n >= *o.Min) && (o.Max == nil || n <= *o.Max)
}

func isInt(value any, _ valida.Options, _ *valida.Context) bool {
	if value == nil {
		return true
	}
	_, ok := value.(int)
	return ok
}

func minLen(value any, opts valida.Options, _ *valida.Context) *valida.Error {
	s, ok := value.(string)
	if !ok {
		return nil
	}
	var o struct {
		Min int `mapstructure:"min"`
	}
	_ = opts.Decode(&o)
	if len(s) >= o.Min {
		return nil
	}
	return &valida.Error{
		Message:        "too short",
		TranslationKey: "validation.min_length",
		Params:         valida.Options{"min": o.Min},
	}
}

// unique pretends to look the value up in a store.
func unique(taken ...string) valida.AsyncCheckFunc {
	return func(ctx context.Context, value any, _ valida.Options, _ *valida.Context) (*valida.Error, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		s, _ := value.(string)
		for _, t := range taken {
			if s == t {
				return &valida.Error{Message: "already taken"}, nil
			}
		}
		return nil, nil
	}
}

func newTestRegistry(opts ...valida.Option) *valida.Registry {
	opts = append([]valida.Option{valida.WithLogger(logger.Discard())}, opts...)
	r := valida.NewRegistry(opts...)
	r.SetSanitizers(map[string]valida.SanitizerFunc{
		"toInt":  toInt,
		"trim":   trim,
		"double": double,
	})
	r.SetValidators(map[string]valida.Validator{
		"required": valida.Predicate("", required),
		"range":    valida.Predicate("", inRange),
		"integer":  valida.Predicate("", isInt),
		"minLen":   valida.Check("", minLen),
		"unique":   valida.AsyncCheck("", unique("admin", "root")),
	})
	return r
}
