// Package valida sanitizes and validates loosely typed data objects against
// declarative schemas.
//
// A Schema maps field names to ordered rule lists. A rule references a
// sanitizer, a validator or both, by registry name or directly, and may carry
// options, a custom message and group labels:
//
//	schema := valida.Schema{
//		"age": {
//			valida.Sanitize("toInt"),
//			valida.Validate("range", valida.Options{"min": 0, "max": 49}),
//		},
//		"items": {valida.NestedSchema(itemSchema)},
//		"id":    {valida.Validate("required").In("update")},
//	}
//
// # Runs
//
// A run processes one data object in three phases:
//
//  1. Every rule reference is resolved against the Registry. An unknown name
//     or a missing required option aborts the run before the data is touched.
//  2. Sanitizers rewrite the data in place, field by field in sorted order and
//     rule by rule in declaration order. Absent and nil values are skipped.
//  3. Validators check the fully sanitized data. Failures are collected per
//     field; asynchronous validators run concurrently and are joined before
//     the run completes.
//
// Field failures never return an error: check Context.IsValid and
// Context.Errors. A non-nil error from Process means the schema is broken or
// an asynchronous validator failed.
//
//	reg := builtin.NewRegistry()
//	rc, err := reg.Process(ctx, data, schema, "create")
//	if err != nil {
//		return err
//	}
//	if !rc.IsValid() {
//		return rc.Err()
//	}
//
// # Validators
//
// Validators come in three conventions: Predicate (false is a failure tagged
// with the validator name and the rule options), Check (returns an error
// record with its own message and translation key) and AsyncCheck (may block
// on I/O, honours context cancellation).
//
// # Groups
//
// Rules tagged with groups apply only when at least one of them is active.
// Untagged rules always apply, and a run without active groups applies every
// rule.
package valida
