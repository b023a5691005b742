package valida

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"sync"
	"time"
)

// Outcome classifies a finished top-level run.
type Outcome string

const (
	OutcomeValid   Outcome = "valid"
	OutcomeInvalid Outcome = "invalid"
	OutcomeError   Outcome = "error"
)

// RunReport describes a finished top-level run for an Observer.
type RunReport struct {
	Outcome  Outcome
	Duration time.Duration
	Errors   Errors
	Groups   []string
}

// Observer receives a report after every top-level run. Nested schema runs are not reported.
type Observer interface {
	ObserveRun(report RunReport)
}

// Registry owns the named sanitizers and validators used to resolve schemas.
// It is populated at startup and may be shared by concurrent runs.
type Registry struct {
	mu          sync.RWMutex
	sanitizers  map[string]SanitizerFunc
	validators  map[string]Validator
	logger      *slog.Logger
	observer    Observer
	concurrency int
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used for run diagnostics. Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithObserver registers an observer for finished runs.
func WithObserver(o Observer) Option {
	return func(r *Registry) { r.observer = o }
}

// WithConcurrency limits how many asynchronous units of one join run at once.
// Zero or negative means no limit.
func WithConcurrency(n int) Option {
	return func(r *Registry) {
		if n > 0 {
			r.concurrency = n
		}
	}
}

// NewRegistry creates a registry holding only the nested "schema" validator.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		sanitizers: make(map[string]SanitizerFunc),
		validators: make(map[string]Validator),
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.SetValidator(SchemaValidator, schemaValidator())
	return r
}

func (r *Registry) SetSanitizer(name string, fn SanitizerFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sanitizers[name] = fn
}

func (r *Registry) SetSanitizers(set map[string]SanitizerFunc) {
	for name, fn := range set {
		r.SetSanitizer(name, fn)
	}
}

// SetValidator registers v under name. A validator without its own name takes the key.
func (r *Registry) SetValidator(name string, v Validator) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.validators[name] = v.named(name)
}

func (r *Registry) SetValidators(set map[string]Validator) {
	for name, v := range set {
		r.SetValidator(name, v)
	}
}

func (r *Registry) Sanitizer(name string) (SanitizerFunc, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.sanitizers[name]
	return fn, ok && fn != nil
}

func (r *Registry) Validator(name string) (Validator, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.validators[name]
	return v, ok && !v.IsZero()
}

// SanitizerNames returns registered sanitizer names in sorted order.
func (r *Registry) SanitizerNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.sanitizers))
}

// ValidatorNames returns registered validator names in sorted order.
func (r *Registry) ValidatorNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.validators))
}

type resolvedRule struct {
	rule      Rule
	sanitize  SanitizerFunc
	validator Validator
}

type plan struct {
	fields []string
	rules  map[string][]resolvedRule
}

// resolve looks up every reference of the schema. It fails on the first
// unresolvable rule, before any data is touched.
func (r *Registry) resolve(s Schema, path string) (*plan, error) {
	p := &plan{
		fields: s.Fields(),
		rules:  make(map[string][]resolvedRule, len(s)),
	}

	for _, field := range p.fields {
		fieldPath := joinPath(path, field)
		rules := s[field]
		resolved := make([]resolvedRule, 0, len(rules))
		for _, rule := range rules {
			rr, err := r.resolveRule(rule, fieldPath)
			if err != nil {
				return nil, err
			}
			resolved = append(resolved, rr)
		}
		p.rules[field] = resolved
	}

	return p, nil
}

func (r *Registry) resolveRule(rule Rule, path string) (resolvedRule, error) {
	rr := resolvedRule{rule: rule}

	if !rule.hasSanitizer() && !rule.hasValidator() {
		return rr, fmt.Errorf("%w on field %s", ErrEmptyRule, path)
	}

	if rule.hasSanitizer() {
		rr.sanitize = rule.SanitizeFn
		if rr.sanitize == nil {
			fn, ok := r.Sanitizer(rule.Sanitizer)
			if !ok {
				return rr, fmt.Errorf("%w %s on field %s", ErrUnknownSanitizer, rule.Sanitizer, path)
			}
			rr.sanitize = fn
		}
	}

	if rule.hasValidator() {
		v := rule.ValidateFn
		if v.IsZero() {
			var ok bool
			v, ok = r.Validator(rule.Validator)
			if !ok {
				return rr, fmt.Errorf("%w %s on field %s", ErrUnknownValidator, rule.Validator, path)
			}
		}
		v = v.named(rule.Validator)

		for _, opt := range v.requires {
			if !rule.Options.Has(opt) {
				return rr, fmt.Errorf("%w %q for validator %s on field %s", ErrMissingOption, opt, v.name, path)
			}
		}
		if v.resolve != nil {
			if err := v.resolve(r, rule, path); err != nil {
				return rr, err
			}
		}
		rr.validator = v
	}

	return rr, nil
}

func joinPath(parent, field string) string {
	if parent == "" {
		return field
	}
	return parent + "." + field
}
