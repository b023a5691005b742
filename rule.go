package valida

import (
	"context"
	"maps"

	"github.com/mitchellh/mapstructure"
)

// Options holds the named options of a rule (min, max, pattern, schema, ...).
type Options map[string]any

// MsgOption is the rule option carrying a custom failure message. It is
// equivalent to Rule.Message, which wins when both are set.
const MsgOption = "msg"

// Has reports whether the option is present and not nil.
func (o Options) Has(key string) bool {
	v, ok := o[key]
	return ok && v != nil
}

// Clone returns a shallow copy of the options.
func (o Options) Clone() Options {
	if o == nil {
		return nil
	}
	return maps.Clone(o)
}

// Decode copies the options into the struct pointed to by out, matching
// `mapstructure` tags and converting weakly typed values ("5" into 5).
func (o Options) Decode(out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	return dec.Decode(map[string]any(o))
}

// SanitizerFunc transforms a value. It is never called with a nil value.
type SanitizerFunc func(value any, opts Options, rc *Context) any

// PredicateFunc is a validator following the boolean contract: false means failure.
type PredicateFunc func(value any, opts Options, rc *Context) bool

// CheckFunc is a validator following the record contract: a non-nil error record means failure.
type CheckFunc func(value any, opts Options, rc *Context) *Error

// AsyncCheckFunc is an asynchronous validator. A non-nil record is a field failure,
// a non-nil error is a structural failure of the whole run.
type AsyncCheckFunc func(ctx context.Context, value any, opts Options, rc *Context) (*Error, error)

type validatorKind uint8

const (
	kindNone validatorKind = iota
	kindPredicate
	kindCheck
	kindAsync
)

// Validator is a named validation function in one of the three calling conventions.
// Build it with Predicate, Check or AsyncCheck.
type Validator struct {
	name     string
	kind     validatorKind
	pred     PredicateFunc
	check    CheckFunc
	async    AsyncCheckFunc
	requires []string
	// resolve runs extra structural checks on a rule during schema resolution.
	resolve func(r *Registry, rule Rule, path string) error
}

// Predicate wraps a boolean-contract validator.
func Predicate(name string, fn PredicateFunc) Validator {
	return Validator{name: name, kind: kindPredicate, pred: fn}
}

// Check wraps a record-contract validator.
func Check(name string, fn CheckFunc) Validator {
	return Validator{name: name, kind: kindCheck, check: fn}
}

// AsyncCheck wraps an asynchronous validator. Its calls are collected during
// the validate pass and driven concurrently before the run completes.
func AsyncCheck(name string, fn AsyncCheckFunc) Validator {
	return Validator{name: name, kind: kindAsync, async: fn}
}

// Requires declares options that every rule using this validator must carry.
func (v Validator) Requires(opts ...string) Validator {
	v.requires = append(append([]string(nil), v.requires...), opts...)
	return v
}

func (v Validator) Name() string { return v.name }

func (v Validator) IsAsync() bool { return v.kind == kindAsync }

// IsZero reports whether the validator holds no function.
func (v Validator) IsZero() bool { return v.kind == kindNone }

func (v Validator) named(name string) Validator {
	if v.name == "" {
		v.name = name
	}
	return v
}

// Rule is one entry of a field's rule list.
// A rule may carry a sanitizer half, a validator half, or both; each half is
// applied in its own pass. Direct references take precedence over names.
type Rule struct {
	Sanitizer  string
	SanitizeFn SanitizerFunc
	Validator  string
	ValidateFn Validator
	Groups     []string
	Message    string
	Options    Options
}

// Sanitize builds a rule referencing a registered sanitizer.
func Sanitize(name string, opts ...Options) Rule {
	return Rule{Sanitizer: name, Options: mergeOptions(opts)}
}

// SanitizeWith builds a rule with a direct sanitizer reference.
func SanitizeWith(fn SanitizerFunc, opts ...Options) Rule {
	return Rule{SanitizeFn: fn, Options: mergeOptions(opts)}
}

// Validate builds a rule referencing a registered validator.
func Validate(name string, opts ...Options) Rule {
	return Rule{Validator: name, Options: mergeOptions(opts)}
}

// ValidateWith builds a rule with a direct validator reference.
func ValidateWith(v Validator, opts ...Options) Rule {
	return Rule{ValidateFn: v, Options: mergeOptions(opts)}
}

// In scopes the rule to the given groups.
func (r Rule) In(groups ...string) Rule {
	r.Groups = append(append([]string(nil), r.Groups...), groups...)
	return r
}

// WithMessage sets the message reported when the rule's validator fails.
func (r Rule) WithMessage(msg string) Rule {
	r.Message = msg
	return r
}

func (r Rule) message() string {
	if r.Message != "" {
		return r.Message
	}
	msg, _ := r.Options[MsgOption].(string)
	return msg
}

// params returns the options reported with a failure, without the message option.
func (r Rule) params() Options {
	p := r.Options.Clone()
	delete(p, MsgOption)
	if len(p) == 0 {
		return nil
	}
	return p
}

func (r Rule) hasSanitizer() bool { return r.Sanitizer != "" || r.SanitizeFn != nil }

func (r Rule) hasValidator() bool { return r.Validator != "" || !r.ValidateFn.IsZero() }

func mergeOptions(opts []Options) Options {
	if len(opts) == 0 {
		return nil
	}
	out := make(Options)
	for _, o := range opts {
		maps.Copy(out, o)
	}
	return out
}
