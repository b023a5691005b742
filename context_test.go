package valida_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/valida"
)

func TestRunSanitizesThenValidates(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry()
	data := map[string]any{"age": "50", "name": "  Jane  "}
	schema := valida.Schema{
		"age":  {valida.Sanitize("toInt"), valida.Validate("range", valida.Options{"min": 0, "max": 49})},
		"name": {valida.Sanitize("trim"), valida.Validate("required")},
	}

	rc := valida.NewContext(reg, data, schema)
	assert.False(t, rc.IsValid(), "not valid before the run")

	require.NoError(t, rc.Run(t.Context()))

	assert.Equal(t, 50, data["age"])
	assert.Equal(t, "Jane", data["name"])
	assert.Equal(t, data, rc.Data())

	assert.False(t, rc.IsValid())
	assert.Equal(t, valida.Errors{
		"age": {{Validator: "range", Params: valida.Options{"min": 0, "max": 49}}},
	}, rc.Errors())

	var verrs valida.Errors
	require.ErrorAs(t, rc.Err(), &verrs)
	assert.True(t, verrs.Has("age"))
}

func TestRunValid(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry()
	rc := valida.NewContext(reg, map[string]any{"age": 20}, valida.Schema{
		"age": {valida.Validate("range", valida.Options{"min": 0, "max": 49})},
	})

	require.NoError(t, rc.Run(t.Context()))
	assert.True(t, rc.IsValid())
	assert.Empty(t, rc.Errors())
	assert.NoError(t, rc.Err())
}

func TestRunTwice(t *testing.T) {
	t.Parallel()

	rc := valida.NewContext(newTestRegistry(), map[string]any{}, valida.Schema{})
	require.NoError(t, rc.Run(t.Context()))
	assert.ErrorIs(t, rc.Run(t.Context()), valida.ErrAlreadyRun)
}

func TestRunNilData(t *testing.T) {
	t.Parallel()

	rc := valida.NewContext(newTestRegistry(), nil, valida.Schema{"a": {valida.Validate("required")}})
	assert.ErrorIs(t, rc.Run(t.Context()), valida.ErrNilData)
	assert.False(t, rc.IsValid())
}

func TestSanitizerSkipsAbsentValues(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	reg := newTestRegistry()
	reg.SetSanitizer("count", func(value any, _ valida.Options, _ *valida.Context) any {
		calls.Add(1)
		return value
	})

	data := map[string]any{"null": nil}
	rc, err := reg.Process(t.Context(), data, valida.Schema{
		"missing": {valida.Sanitize("count")},
		"null":    {valida.Sanitize("count")},
	})
	require.NoError(t, err)
	assert.True(t, rc.IsValid())
	assert.Zero(t, calls.Load())
	assert.NotContains(t, data, "missing")
	assert.Contains(t, data, "null")
}

func TestSanitizersComposeInOrder(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry()

	data := map[string]any{"n": " 4 "}
	_, err := reg.Process(t.Context(), data, valida.Schema{
		"n": {valida.Sanitize("trim"), valida.Sanitize("toInt"), valida.Sanitize("double")},
	})
	require.NoError(t, err)
	assert.Equal(t, 8, data["n"])

	// double before toInt sees a string and leaves it alone
	data = map[string]any{"n": " 4 "}
	_, err = reg.Process(t.Context(), data, valida.Schema{
		"n": {valida.Sanitize("double"), valida.Sanitize("trim"), valida.Sanitize("toInt")},
	})
	require.NoError(t, err)
	assert.Equal(t, 4, data["n"])
}

func TestValidatorsSeeFullySanitizedData(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry()
	var seen any
	reg.SetValidator("spy", valida.Predicate("", func(_ any, _ valida.Options, rc *valida.Context) bool {
		seen = rc.Data()["b"]
		return true
	}))

	data := map[string]any{"a": "x", "b": "5"}
	_, err := reg.Process(t.Context(), data, valida.Schema{
		"a": {valida.Validate("spy")},
		"b": {valida.Sanitize("toInt")},
	})
	require.NoError(t, err)
	assert.Equal(t, 5, seen)
}

func TestErrorAggregation(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry()
	data := map[string]any{"age": "abc", "name": "ab"}
	rc, err := reg.Process(t.Context(), data, valida.Schema{
		"age": {
			valida.Validate("required"),
			valida.Validate("integer").WithMessage("must be a whole number"),
			valida.Validate("range", valida.Options{"min": 1}),
		},
		"name": {
			valida.Validate("minLen", valida.Options{"min": 3}),
			valida.Validate("minLen", valida.Options{"min": 5}).WithMessage("way too short"),
		},
	})
	require.NoError(t, err)

	errs := rc.Errors()
	assert.Equal(t, []string{"integer", "range"}, errs.Validators("age"))
	assert.Equal(t, []string{"must be a whole number", "failed range validation"}, errs.Get("age"))
	assert.Equal(t, valida.Options{"min": 1}, errs["age"][1].Params)

	require.Len(t, errs["name"], 2)
	assert.Equal(t, valida.Error{
		Validator:      "minLen",
		Message:        "too short",
		TranslationKey: "validation.min_length",
		Params:         valida.Options{"min": 3},
	}, errs["name"][0])
	assert.Equal(t, "way too short", errs["name"][1].Message)
	assert.Equal(t, "validation.min_length", errs["name"][1].TranslationKey)
}

func TestStructuralFailureLeavesDataUntouched(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry()
	data := map[string]any{"a": " x ", "z": " y "}
	rc, err := reg.Process(t.Context(), data, valida.Schema{
		"a": {valida.Sanitize("trim")},
		"z": {valida.Sanitize("trim"), valida.Validate("nope")},
	})

	assert.Nil(t, rc)
	assert.ErrorIs(t, err, valida.ErrUnknownValidator)
	assert.Equal(t, map[string]any{"a": " x ", "z": " y "}, data)
}

func TestSanitizerIdempotence(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry()
	schema := valida.Schema{"n": {valida.Sanitize("trim"), valida.Sanitize("toInt")}}

	data := map[string]any{"n": " 7 "}
	_, err := reg.Process(t.Context(), data, schema)
	require.NoError(t, err)
	first := data["n"]

	_, err = reg.Process(t.Context(), data, schema)
	require.NoError(t, err)
	assert.Equal(t, first, data["n"])
}

func TestDeterministicErrors(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry()
	schema := valida.Schema{
		"a": {valida.Validate("required"), valida.Validate("unique")},
		"b": {valida.Validate("unique"), valida.Validate("integer")},
		"c": {valida.Validate("required")},
	}

	var first valida.Errors
	for i := range 20 {
		rc, err := reg.Process(t.Context(), map[string]any{"a": "admin", "b": "root"}, schema)
		require.NoError(t, err)
		if i == 0 {
			first = rc.Errors()
			continue
		}
		assert.Equal(t, first, rc.Errors())
	}
	// sync results come first, async results are merged after the validate pass
	assert.Equal(t, []string{"integer", "unique"}, first.Validators("b"))
}

func TestAsyncValidators(t *testing.T) {
	t.Parallel()

	t.Run("field failures", func(t *testing.T) {
		reg := newTestRegistry()
		rc, err := reg.Process(t.Context(), map[string]any{"user": "admin", "other": "bob"}, valida.Schema{
			"user":  {valida.Validate("unique")},
			"other": {valida.Validate("unique")},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"user"}, rc.Errors().Fields())
		assert.Equal(t, valida.Error{Validator: "unique", Message: "already taken"}, rc.Errors()["user"][0])
	})

	t.Run("error aborts the run", func(t *testing.T) {
		reg := newTestRegistry()
		boom := errors.New("store unavailable")
		reg.SetValidator("broken", valida.AsyncCheck("", func(context.Context, any, valida.Options, *valida.Context) (*valida.Error, error) {
			return nil, boom
		}))

		rc, err := reg.Process(t.Context(), map[string]any{"a": 1}, valida.Schema{"a": {valida.Validate("broken")}})
		assert.Nil(t, rc)
		assert.ErrorIs(t, err, valida.ErrAsyncValidator)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("panic aborts the run", func(t *testing.T) {
		reg := newTestRegistry()
		reg.SetValidator("panics", valida.AsyncCheck("", func(context.Context, any, valida.Options, *valida.Context) (*valida.Error, error) {
			panic("oops")
		}))

		_, err := reg.Process(t.Context(), map[string]any{"a": 1}, valida.Schema{"a": {valida.Validate("panics")}})
		require.ErrorIs(t, err, valida.ErrAsyncValidator)
		assert.Contains(t, err.Error(), "oops")
	})

	t.Run("canceled context", func(t *testing.T) {
		reg := newTestRegistry()
		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		_, err := reg.Process(ctx, map[string]any{"a": "x"}, valida.Schema{"a": {valida.Validate("unique")}})
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("units of one field run in rule order", func(t *testing.T) {
		var (
			mu    sync.Mutex
			calls []string
		)
		track := func(name string, delay time.Duration) valida.Validator {
			return valida.AsyncCheck(name, func(context.Context, any, valida.Options, *valida.Context) (*valida.Error, error) {
				time.Sleep(delay)
				mu.Lock()
				calls = append(calls, name)
				mu.Unlock()
				return &valida.Error{Message: name + " failed"}, nil
			})
		}

		reg := newTestRegistry()
		reg.SetValidator("slowFirst", track("slowFirst", 20*time.Millisecond))
		reg.SetValidator("fastSecond", track("fastSecond", 0))

		rc, err := reg.Process(t.Context(), map[string]any{"a": 1}, valida.Schema{
			"a": {valida.Validate("slowFirst"), valida.Validate("fastSecond")},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"slowFirst", "fastSecond"}, calls)
		assert.Equal(t, []string{"slowFirst", "fastSecond"}, rc.Errors().Validators("a"))
	})

	t.Run("concurrency limit", func(t *testing.T) {
		var running, peak atomic.Int32
		reg := newTestRegistry(valida.WithConcurrency(1))
		reg.SetValidator("slow", valida.AsyncCheck("", func(context.Context, any, valida.Options, *valida.Context) (*valida.Error, error) {
			n := running.Add(1)
			if n > peak.Load() {
				peak.Store(n)
			}
			running.Add(-1)
			return nil, nil
		}))

		schema := valida.Schema{}
		for _, f := range []string{"a", "b", "c", "d"} {
			schema[f] = []valida.Rule{valida.Validate("slow")}
		}
		rc, err := reg.Process(t.Context(), map[string]any{}, schema)
		require.NoError(t, err)
		assert.True(t, rc.IsValid())
		assert.Equal(t, int32(1), peak.Load())
	})
}

func TestMsgOption(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry()
	rc, err := reg.Process(t.Context(), map[string]any{"age": 50, "name": "ab", "nick": "x"}, valida.Schema{
		"age":  {valida.Validate("range", valida.Options{"min": 0, "max": 49, "msg": "too old"})},
		"name": {valida.Validate("minLen", valida.Options{"min": 3, "msg": "name too short"})},
		"nick": {valida.Validate("minLen", valida.Options{"min": 2, "msg": "ignored"}).WithMessage("nick too short")},
	})
	require.NoError(t, err)

	errs := rc.Errors()
	assert.Equal(t, valida.Error{
		Validator: "range",
		Message:   "too old",
		Params:    valida.Options{"min": 0, "max": 49},
	}, errs["age"][0])
	assert.Equal(t, "name too short", errs["name"][0].Message)
	assert.Equal(t, "validation.min_length", errs["name"][0].TranslationKey)
	assert.Equal(t, "nick too short", errs["nick"][0].Message)
}

func TestErrorsReturnsCopy(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry()
	rc, err := reg.Process(t.Context(), map[string]any{"age": 50}, valida.Schema{
		"age": {valida.Validate("range", valida.Options{"max": 49})},
	})
	require.NoError(t, err)

	errs := rc.Errors()
	errs["age"][0].Message = "changed"
	delete(errs, "age")
	errs["other"] = []valida.Error{{Validator: "x"}}

	assert.False(t, rc.IsValid())
	assert.Equal(t, []string{"age"}, rc.Errors().Fields())
	assert.Empty(t, rc.Errors()["age"][0].Message)
}

type recorder struct {
	reports []valida.RunReport
}

func (r *recorder) ObserveRun(report valida.RunReport) {
	r.reports = append(r.reports, report)
}

func TestObserver(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	reg := newTestRegistry(valida.WithObserver(rec))

	_, err := reg.Process(t.Context(), map[string]any{"a": 1}, valida.Schema{"a": {valida.Validate("required")}})
	require.NoError(t, err)
	_, err = reg.Process(t.Context(), map[string]any{}, valida.Schema{"a": {valida.Validate("required")}}, "g")
	require.NoError(t, err)
	_, err = reg.Process(t.Context(), map[string]any{}, valida.Schema{"a": {valida.Validate("nope")}})
	require.Error(t, err)

	require.Len(t, rec.reports, 3)
	assert.Equal(t, valida.OutcomeValid, rec.reports[0].Outcome)
	assert.Empty(t, rec.reports[0].Errors)

	assert.Equal(t, valida.OutcomeInvalid, rec.reports[1].Outcome)
	assert.Equal(t, []string{"g"}, rec.reports[1].Groups)
	assert.True(t, rec.reports[1].Errors.Has("a"))

	assert.Equal(t, valida.OutcomeError, rec.reports[2].Outcome)
}
