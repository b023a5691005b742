package validator_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/valida"
	"github.com/dmitrymomot/valida/pkg/validator"
)

func TestLen(t *testing.T) {
	t.Parallel()

	opts := valida.Options{"min": 2, "max": 4}

	assert.Nil(t, validator.Len(nil, opts, nil))
	assert.Nil(t, validator.Len("abc", opts, nil))
	assert.Nil(t, validator.Len("héé", opts, nil))
	assert.Nil(t, validator.Len([]any{1, 2}, opts, nil))
	assert.Nil(t, validator.Len(123, opts, nil))

	e := validator.Len("a", opts, nil)
	require.NotNil(t, e)
	assert.Equal(t, "must be at least 2 characters long", e.Message)
	assert.Equal(t, "validation.min_length", e.TranslationKey)
	assert.Equal(t, valida.Options{"min": 2, "max": 4}, e.Params)

	e = validator.Len("abcde", opts, nil)
	require.NotNil(t, e)
	assert.Equal(t, "must be at most 4 characters long", e.Message)
	assert.Equal(t, "validation.max_length", e.TranslationKey)

	e = validator.Len("abc", valida.Options{"min": "many"}, nil)
	require.NotNil(t, e)
	assert.Equal(t, "validation.length", e.TranslationKey)
}

func TestEmail(t *testing.T) {
	t.Parallel()

	valid := []string{"user@example.com", "first.last+tag@sub.example.org"}
	for _, v := range valid {
		assert.Nil(t, validator.Email(v, nil, nil), v)
	}

	invalid := []string{"", "user", "user@", "@example.com", "user@localhost", "user@example..com", "Bob <bob@example.com>"}
	for _, v := range invalid {
		e := validator.Email(v, nil, nil)
		require.NotNil(t, e, v)
		assert.Equal(t, "must be a valid email address", e.Message)
		assert.Equal(t, "validation.email", e.TranslationKey)
	}

	assert.Nil(t, validator.Email(nil, nil, nil))
}

func TestURL(t *testing.T) {
	t.Parallel()

	assert.Nil(t, validator.URL(nil, nil, nil))
	assert.Nil(t, validator.URL("https://example.com/path?q=1", nil, nil))
	assert.NotNil(t, validator.URL("example.com", nil, nil))
	assert.NotNil(t, validator.URL("/relative", nil, nil))

	opts := valida.Options{"schemes": []any{"https"}}
	assert.Nil(t, validator.URL("HTTPS://example.com", opts, nil))

	e := validator.URL("ftp://example.com", opts, nil)
	require.NotNil(t, e)
	assert.Equal(t, "validation.url", e.TranslationKey)
	assert.Equal(t, []string{"https"}, e.Params["schemes"])
}

func TestUUID(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	assert.Nil(t, validator.UUID(nil, nil, nil))
	assert.Nil(t, validator.UUID(id, nil, nil))
	assert.Nil(t, validator.UUID(id.String(), nil, nil))

	e := validator.UUID("not-a-uuid", nil, nil)
	require.NotNil(t, e)
	assert.Equal(t, "validation.uuid", e.TranslationKey)
}

func TestAlphanumeric(t *testing.T) {
	t.Parallel()

	assert.Nil(t, validator.Alphanumeric(nil, nil, nil))
	assert.Nil(t, validator.Alphanumeric("abc123", nil, nil))
	assert.Nil(t, validator.Alphanumeric(42, nil, nil))
	assert.NotNil(t, validator.Alphanumeric("abc-123", nil, nil))
	assert.NotNil(t, validator.Alphanumeric("", nil, nil))
}
