package valida

import (
	"maps"
	"slices"
)

// Schema maps a field name to its ordered rule list.
// Fields are always processed in sorted name order so that runs and error
// reports are reproducible.
type Schema map[string][]Rule

// Fields returns the schema's field names in processing order.
func (s Schema) Fields() []string {
	return slices.Sorted(maps.Keys(s))
}

// Validate resolves every rule reference of the schema, including nested
// schemas, against the registry without touching any data.
func (s Schema) Validate(r *Registry) error {
	_, err := r.resolve(s, "")
	return err
}

// asSchema accepts the forms a nested schema option may take.
func asSchema(v any) (Schema, bool) {
	switch s := v.(type) {
	case Schema:
		return s, true
	case map[string][]Rule:
		return Schema(s), true
	case *Schema:
		if s == nil {
			return nil, false
		}
		return *s, true
	}
	return nil, false
}
