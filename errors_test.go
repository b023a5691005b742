package valida_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/valida"
)

func TestErrorMessage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "failed range validation", valida.Error{Validator: "range"}.Error())
	assert.Equal(t, "too big", valida.Error{Validator: "range", Message: "too big"}.Error())
}

func TestErrorMarshalJSON(t *testing.T) {
	t.Parallel()

	out, err := json.Marshal(valida.Error{
		Validator:      "len",
		Message:        "too short",
		TranslationKey: "validation.min_length",
		Params:         valida.Options{"min": 3},
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"validator":"len","msg":"too short","translation_key":"validation.min_length","min":3}`, string(out))

	// reserved keys win over params
	out, err = json.Marshal(valida.Error{Validator: "x", Params: valida.Options{"validator": "y"}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"validator":"x"}`, string(out))
}

func TestErrorUnmarshalJSON(t *testing.T) {
	t.Parallel()

	var errs valida.Errors
	require.NoError(t, json.Unmarshal([]byte(`{
		"items": [{
			"validator": "schema",
			"translation_key": "validation.schema",
			"errors": {"3": {"qty": [{"validator": "range", "msg": "too many", "max": 10}]}}
		}]
	}`), &errs))

	require.Len(t, errs["items"], 1)
	e := errs["items"][0]
	assert.Equal(t, "schema", e.Validator)
	assert.Equal(t, "validation.schema", e.TranslationKey)
	assert.Nil(t, e.Params)
	assert.Equal(t, valida.Error{
		Validator: "range",
		Message:   "too many",
		Params:    valida.Options{"max": 10.0},
	}, e.Children[3]["qty"][0])

	var bad valida.Error
	assert.Error(t, json.Unmarshal([]byte(`{"validator": 5}`), &bad))
}

func TestErrors(t *testing.T) {
	t.Parallel()

	errs := valida.Errors{}
	assert.True(t, errs.IsEmpty())
	assert.Equal(t, "validation failed", errs.Error())

	errs.Add("name", valida.Error{Validator: "required"})
	errs.Add("age", valida.Error{Validator: "range", Message: "out of range"})
	errs.Add("age", valida.Error{Validator: "integer"})

	assert.False(t, errs.IsEmpty())
	assert.True(t, errs.Has("age"))
	assert.False(t, errs.Has("email"))
	assert.Equal(t, []string{"age", "name"}, errs.Fields())
	assert.Equal(t, []string{"range", "integer"}, errs.Validators("age"))
	assert.Equal(t, []string{"out of range", "failed integer validation"}, errs.Get("age"))
	assert.Equal(t,
		"validation failed: age: out of range; age: failed integer validation; name: failed required validation",
		errs.Error())
}

func TestExtractErrors(t *testing.T) {
	t.Parallel()

	errs := valida.Errors{"a": {{Validator: "required"}}}
	wrapped := fmt.Errorf("create user: %w", errs)

	assert.True(t, valida.IsValidationError(wrapped))
	assert.Equal(t, errs, valida.ExtractErrors(wrapped))

	assert.False(t, valida.IsValidationError(errors.New("other")))
	assert.Nil(t, valida.ExtractErrors(errors.New("other")))
	assert.Nil(t, valida.ExtractErrors(nil))
	assert.False(t, valida.IsValidationError(nil))
}

func TestOptions(t *testing.T) {
	t.Parallel()

	opts := valida.Options{"min": "5", "max": nil}
	assert.True(t, opts.Has("min"))
	assert.False(t, opts.Has("max"))
	assert.False(t, opts.Has("other"))

	clone := opts.Clone()
	clone["min"] = 1
	assert.Equal(t, "5", opts["min"])

	var o struct {
		Min int `mapstructure:"min"`
	}
	require.NoError(t, opts.Decode(&o))
	assert.Equal(t, 5, o.Min)

	assert.Nil(t, valida.Options(nil).Clone())
}

func TestRuleBuilders(t *testing.T) {
	t.Parallel()

	r := valida.Validate("range", valida.Options{"min": 1}, valida.Options{"max": 2}).In("a").In("b").WithMessage("nope")
	assert.Equal(t, valida.Rule{
		Validator: "range",
		Options:   valida.Options{"min": 1, "max": 2},
		Groups:    []string{"a", "b"},
		Message:   "nope",
	}, r)

	assert.Equal(t, valida.Rule{Sanitizer: "trim"}, valida.Sanitize("trim"))

	nested := valida.NestedSchema(valida.Schema{"a": nil})
	assert.Equal(t, valida.SchemaValidator, nested.Validator)
	assert.IsType(t, valida.Schema{}, nested.Options["schema"])
}
