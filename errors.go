package valida

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Structural errors. They abort a run and are never recorded as field errors.
var (
	// ErrUnknownSanitizer is returned when a rule names a sanitizer the registry does not know.
	ErrUnknownSanitizer = errors.New("invalid sanitizer")

	// ErrUnknownValidator is returned when a rule names a validator the registry does not know.
	ErrUnknownValidator = errors.New("invalid validator")

	// ErrMissingOption is returned when a validator requires an option the rule does not carry.
	ErrMissingOption = errors.New("missing required option")

	// ErrEmptyRule is returned for a rule that references neither a sanitizer nor a validator.
	ErrEmptyRule = errors.New("rule has no sanitizer or validator")

	// ErrAsyncValidator is returned when an asynchronous validator fails or panics.
	ErrAsyncValidator = errors.New("asynchronous validator failed")

	// ErrNilData is returned when a run is started without a data object.
	ErrNilData = errors.New("data object is nil")

	// ErrAlreadyRun is returned when Run is called twice on the same context.
	ErrAlreadyRun = errors.New("context has already been run")
)

// Error is a single field validation failure.
// Params carries validator specific context (min, max, pattern, ...) and is
// flattened next to validator and msg when encoded as JSON.
type Error struct {
	Validator      string
	Message        string
	TranslationKey string
	Params         Options
	Children       map[int]Errors
}

func (e Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "failed " + e.Validator + " validation"
}

// MarshalJSON encodes the error as {"validator": ..., "msg": ..., <params>, "errors": {...}}.
func (e Error) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(e.Params)+4)
	maps.Copy(out, e.Params)
	out["validator"] = e.Validator
	if e.Message != "" {
		out["msg"] = e.Message
	}
	if e.TranslationKey != "" {
		out["translation_key"] = e.TranslationKey
	}
	if len(e.Children) > 0 {
		out["errors"] = e.Children
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes the flattened form written by MarshalJSON.
// Unknown keys become params; JSON numbers decode as float64.
func (e *Error) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*e = Error{}
	for key, value := range raw {
		var err error
		switch key {
		case "validator":
			err = json.Unmarshal(value, &e.Validator)
		case "msg":
			err = json.Unmarshal(value, &e.Message)
		case "translation_key":
			err = json.Unmarshal(value, &e.TranslationKey)
		case "errors":
			err = json.Unmarshal(value, &e.Children)
		default:
			var v any
			if err = json.Unmarshal(value, &v); err == nil {
				if e.Params == nil {
					e.Params = make(Options)
				}
				e.Params[key] = v
			}
		}
		if err != nil {
			return fmt.Errorf("decode %s: %w", key, err)
		}
	}
	return nil
}

// Errors maps a field name to the ordered list of failures recorded for it.
type Errors map[string][]Error

func (ve Errors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	var parts []string
	for _, field := range ve.Fields() {
		for _, err := range ve[field] {
			parts = append(parts, fmt.Sprintf("%s: %s", field, err.Error()))
		}
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Add appends err to the field's list, creating it if absent.
func (ve Errors) Add(field string, err Error) {
	ve[field] = append(ve[field], err)
}

func (ve Errors) Has(field string) bool {
	return len(ve[field]) > 0
}

// Get returns the messages recorded for field, in rule order.
func (ve Errors) Get(field string) []string {
	var messages []string
	for _, err := range ve[field] {
		messages = append(messages, err.Error())
	}
	return messages
}

// Validators returns the validator tags recorded for field, in rule order.
func (ve Errors) Validators(field string) []string {
	var names []string
	for _, err := range ve[field] {
		names = append(names, err.Validator)
	}
	return names
}

// Fields returns the failing field names in sorted order.
func (ve Errors) Fields() []string {
	return slices.Sorted(maps.Keys(ve))
}

func (ve Errors) IsEmpty() bool {
	return len(ve) == 0
}

// ExtractErrors extracts Errors from an error chain.
func ExtractErrors(err error) Errors {
	if err == nil {
		return nil
	}

	var verrs Errors
	if errors.As(err, &verrs) {
		return verrs
	}

	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var verrs Errors
	return errors.As(err, &verrs)
}
