package valida

import (
	"context"

	"github.com/dmitrymomot/valida/pkg/async"
)

// Process sanitizes and validates data against schema for the given groups.
//
// data is modified in place. A nil error with an invalid Context means the
// data failed validation; a non-nil error means the schema itself is broken
// or an asynchronous validator failed.
func (r *Registry) Process(ctx context.Context, data map[string]any, schema Schema, groups ...string) (*Context, error) {
	rc := NewContext(r, data, schema, groups...)
	if err := rc.Run(ctx); err != nil {
		return nil, err
	}
	return rc, nil
}

// ProcessFunc runs Process and hands the outcome to cb.
func (r *Registry) ProcessFunc(ctx context.Context, data map[string]any, schema Schema, cb func(error, *Context), groups ...string) {
	rc, err := r.Process(ctx, data, schema, groups...)
	cb(err, rc)
}

// ProcessAsync starts Process in its own goroutine and returns a future for the result.
func (r *Registry) ProcessAsync(ctx context.Context, data map[string]any, schema Schema, groups ...string) *async.Future[*Context] {
	return async.Async(ctx, NewContext(r, data, schema, groups...), func(ctx context.Context, rc *Context) (*Context, error) {
		if err := rc.Run(ctx); err != nil {
			return nil, err
		}
		return rc, nil
	})
}
