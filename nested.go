package valida

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
)

// SchemaValidator is the registry name of the nested schema validator.
const SchemaValidator = "schema"

// NestedSchema builds a rule validating a field's object, or each object of
// an array value, against a nested schema.
func NestedSchema(schema Schema) Rule {
	return Validate(SchemaValidator, Options{"schema": schema})
}

func schemaValidator() Validator {
	v := AsyncCheck(SchemaValidator, validateSchema).Requires("schema")
	v.resolve = func(r *Registry, rule Rule, path string) error {
		nested, ok := asSchema(rule.Options["schema"])
		if !ok {
			return fmt.Errorf("%w %q for validator %s on field %s: got %T",
				ErrMissingOption, "schema", SchemaValidator, path, rule.Options["schema"])
		}
		_, err := r.resolve(nested, path)
		return err
	}
	return v
}

// validateSchema runs every element in its own Context. Element maps are
// sanitized in place, so sanitization composes through nesting.
func validateSchema(ctx context.Context, value any, opts Options, rc *Context) (*Error, error) {
	if isNil(value) {
		return nil, nil
	}

	nested, ok := asSchema(opts["schema"])
	if !ok {
		return nil, fmt.Errorf("%w %q for validator %s", ErrMissingOption, "schema", SchemaValidator)
	}

	var (
		mu       sync.Mutex
		children = make(map[int]Errors)
	)

	g, gctx := errgroup.WithContext(ctx)
	if n := rc.registry.concurrency; n > 0 {
		g.SetLimit(n)
	}

	for i, elem := range elements(value) {
		g.Go(func() (err error) {
			// a panicking element run fails the whole validator
			defer func() {
				if p := recover(); p != nil {
					err = fmt.Errorf("element %d: panic: %v", i, p)
				}
			}()

			// a sibling already failed; leave this element untouched
			if err := gctx.Err(); err != nil {
				return err
			}

			data, ok := elem.(map[string]any)
			if !ok || data == nil {
				data = map[string]any{}
			}

			child := rc.child(data, nested)
			if err := child.Run(gctx); err != nil {
				return fmt.Errorf("element %d: %w", i, err)
			}
			if !child.IsValid() {
				mu.Lock()
				children[i] = child.Errors()
				mu.Unlock()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if len(children) == 0 {
		return nil, nil
	}

	return &Error{
		Validator:      SchemaValidator,
		TranslationKey: "validation.schema",
		Children:       children,
	}, nil
}

// elements wraps a non-array value as a single element.
func elements(value any) []any {
	switch v := value.(type) {
	case []any:
		return v
	case []map[string]any:
		out := make([]any, len(v))
		for i, m := range v {
			out[i] = m
		}
		return out
	}
	return []any{value}
}
