package valida

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"
	"slices"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/valida/pkg/logger"
)

type runState uint8

const (
	stateCreated runState = iota
	stateResolving
	stateSanitizing
	stateValidating
	stateAwaiting
	stateDone
	stateFailed
)

func (s runState) String() string {
	switch s {
	case stateCreated:
		return "created"
	case stateResolving:
		return "resolving"
	case stateSanitizing:
		return "sanitizing"
	case stateValidating:
		return "validating"
	case stateAwaiting:
		return "awaiting"
	case stateDone:
		return "done"
	case stateFailed:
		return "failed"
	}
	return "unknown"
}

type status struct {
	errors Errors
	valid  bool
}

// Context is a single sanitize-then-validate run over one data object.
//
// The data map is owned by the run and mutated in place: sanitized values
// replace the originals and remain visible to the caller after the run.
// A Context must not be shared between concurrent runs.
type Context struct {
	registry *Registry
	data     map[string]any
	schema   Schema
	groups   []string
	nested   bool

	mu     sync.Mutex
	state  runState
	status status
}

// NewContext prepares a run. Groups are deduplicated; none means every rule applies.
func NewContext(r *Registry, data map[string]any, schema Schema, groups ...string) *Context {
	return &Context{
		registry: r,
		data:     data,
		schema:   schema,
		groups:   normalizeGroups(groups),
		status: status{
			errors: make(Errors),
			valid:  true,
		},
	}
}

// child creates a nested run sharing the registry and active groups.
func (c *Context) child(data map[string]any, schema Schema) *Context {
	nc := NewContext(c.registry, data, schema, c.groups...)
	nc.nested = true
	return nc
}

// Data returns the (sanitized) data object.
func (c *Context) Data() map[string]any { return c.data }

func (c *Context) Schema() Schema { return c.schema }

// Groups returns the active groups of the run.
func (c *Context) Groups() []string { return c.groups }

func (c *Context) Registry() *Registry { return c.registry }

// GroupsValid reports whether a rule tagged with ruleGroups applies to this run.
func (c *Context) GroupsValid(ruleGroups []string) bool {
	return GroupsValid(c.groups, ruleGroups)
}

// IsValid reports whether the run completed without field errors.
// It is false until the run is done.
func (c *Context) IsValid() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state == stateDone && c.status.valid
}

// Errors returns a copy of the recorded field errors, or an empty map when valid.
func (c *Context) Errors() Errors {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(Errors, len(c.status.errors))
	if c.status.valid {
		return out
	}
	for field, list := range c.status.errors {
		out[field] = slices.Clone(list)
	}
	return out
}

// Err returns the field errors as an error, or nil when the run is valid.
func (c *Context) Err() error {
	if c.IsValid() {
		return nil
	}
	return c.Errors()
}

// AddError records a failure for field. Safe for concurrent use by asynchronous validators.
func (c *Context) AddError(field string, err Error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.status.errors.Add(field, err)
	c.status.valid = false
}

func (c *Context) setState(s runState) {
	c.mu.Lock()
	c.state = s
	c.mu.Unlock()
}

// Run resolves the schema, sanitizes the data, validates it and waits for
// asynchronous validators. Field failures are reported through IsValid and
// Errors; the returned error is reserved for structural failures.
func (c *Context) Run(ctx context.Context) error {
	c.mu.Lock()
	if c.state != stateCreated {
		c.mu.Unlock()
		return ErrAlreadyRun
	}
	c.state = stateResolving
	c.mu.Unlock()

	start := time.Now()

	if c.data == nil {
		return c.fail(ctx, start, ErrNilData)
	}

	p, err := c.registry.resolve(c.schema, "")
	if err != nil {
		return c.fail(ctx, start, err)
	}

	c.setState(stateSanitizing)
	c.sanitize(p)

	c.setState(stateValidating)
	pending := c.validate(p)

	if len(pending) > 0 {
		c.setState(stateAwaiting)
		if err := c.await(ctx, pending); err != nil {
			return c.fail(ctx, start, err)
		}
	}

	c.setState(stateDone)
	c.finish(ctx, start)
	return nil
}

func (c *Context) sanitize(p *plan) {
	for _, field := range p.fields {
		for _, rr := range p.rules[field] {
			if rr.sanitize == nil {
				continue
			}
			value, ok := c.data[field]
			if !ok || isNil(value) {
				continue
			}
			if !c.GroupsValid(rr.rule.Groups) {
				continue
			}
			c.data[field] = rr.sanitize(value, rr.rule.Options, c)
		}
	}
}

type asyncUnit struct {
	field string
	rr    resolvedRule
	value any
}

func (c *Context) validate(p *plan) []asyncUnit {
	var pending []asyncUnit

	for _, field := range p.fields {
		for _, rr := range p.rules[field] {
			v := rr.validator
			if v.IsZero() {
				continue
			}
			if !c.GroupsValid(rr.rule.Groups) {
				continue
			}

			value := c.data[field]
			switch v.kind {
			case kindPredicate:
				if !v.pred(value, rr.rule.Options, c) {
					c.AddError(field, failure(rr))
				}
			case kindCheck:
				if e := v.check(value, rr.rule.Options, c); e != nil {
					c.AddError(field, record(rr, *e))
				}
			case kindAsync:
				pending = append(pending, asyncUnit{field: field, rr: rr, value: value})
			}
		}
	}

	return pending
}

// await drives the collected asynchronous validators. Units of one field run
// sequentially in rule order, since they may share the field's value (nested
// schemas sanitize element maps in place); distinct fields run concurrently.
// Results are merged in collection order once every unit has finished.
func (c *Context) await(ctx context.Context, pending []asyncUnit) error {
	results := make([]*Error, len(pending))

	g, gctx := errgroup.WithContext(ctx)
	if n := c.registry.concurrency; n > 0 {
		g.SetLimit(n)
	}

	for _, idx := range unitsByField(pending) {
		g.Go(func() error {
			for _, i := range idx {
				if err := gctx.Err(); err != nil {
					return err
				}
				e, err := c.runUnit(gctx, pending[i])
				if err != nil {
					return err
				}
				results[i] = e
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	for i, e := range results {
		if e != nil {
			c.AddError(pending[i].field, record(pending[i].rr, *e))
		}
	}

	return nil
}

func (c *Context) runUnit(ctx context.Context, u asyncUnit) (e *Error, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%w: %s on field %s: panic: %v", ErrAsyncValidator, u.rr.validator.name, u.field, p)
		}
	}()

	e, err = u.rr.validator.async(ctx, u.value, u.rr.rule.Options, c)
	if err != nil {
		c.registry.logger.DebugContext(ctx, "async validator failed",
			logger.Field(u.field),
			logger.Validator(u.rr.validator.name),
			logger.Error(err),
		)
		return nil, fmt.Errorf("%w: %s on field %s: %w", ErrAsyncValidator, u.rr.validator.name, u.field, err)
	}
	return e, nil
}

// unitsByField groups unit indexes by field, keeping collection order.
func unitsByField(pending []asyncUnit) [][]int {
	var (
		groups [][]int
		pos    = make(map[string]int)
	)
	for i, u := range pending {
		j, ok := pos[u.field]
		if !ok {
			j = len(groups)
			pos[u.field] = j
			groups = append(groups, nil)
		}
		groups[j] = append(groups[j], i)
	}
	return groups
}

func (c *Context) fail(ctx context.Context, start time.Time, err error) error {
	c.mu.Lock()
	c.state = stateFailed
	c.status.valid = false
	c.mu.Unlock()

	if !c.nested {
		c.registry.logger.WarnContext(ctx, "validation run aborted",
			logger.Component("valida"),
			logger.Groups(c.groups),
			logger.Error(err),
		)
		c.observe(OutcomeError, start)
	}
	return err
}

func (c *Context) finish(ctx context.Context, start time.Time) {
	if c.nested {
		return
	}

	outcome := OutcomeValid
	if !c.IsValid() {
		outcome = OutcomeInvalid
	}

	c.registry.logger.DebugContext(ctx, "validation run completed",
		logger.Component("valida"),
		logger.Groups(c.groups),
		slog.String("outcome", string(outcome)),
		logger.Fields(c.Errors().Fields()),
		logger.Duration(time.Since(start)),
	)
	c.observe(outcome, start)
}

func (c *Context) observe(outcome Outcome, start time.Time) {
	if c.registry.observer == nil {
		return
	}
	report := RunReport{
		Outcome:  outcome,
		Duration: time.Since(start),
		Groups:   c.groups,
	}
	if outcome == OutcomeInvalid {
		report.Errors = c.Errors()
	}
	c.registry.observer.ObserveRun(report)
}

// failure normalizes a boolean false into an error record tagged with the
// validator name and carrying the rule's options.
func failure(rr resolvedRule) Error {
	return Error{
		Validator: rr.validator.name,
		Message:   rr.rule.message(),
		Params:    rr.rule.params(),
	}
}

// record normalizes a returned error record. The rule's message wins over the record's.
func record(rr resolvedRule, e Error) Error {
	if e.Validator == "" {
		e.Validator = rr.validator.name
	}
	if msg := rr.rule.message(); msg != "" {
		e.Message = msg
	}
	return e
}

// isNil reports whether v is nil or a typed nil pointer, map, slice or interface.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
