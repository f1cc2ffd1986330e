package schemakit_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/schemakit"
	"github.com/dmitrymomot/schemakit/pkg/message"
	"github.com/dmitrymomot/schemakit/pkg/rule"
)

func TestValidationError(t *testing.T) {
	t.Run("empty error message", func(t *testing.T) {
		assert.Equal(t, "validation failed", schemakit.ValidationError{}.Error())
	})

	t.Run("add and read", func(t *testing.T) {
		verr := make(schemakit.ValidationError)
		verr.Add("password", "too short")
		verr.Add("password", "missing digit")
		verr.Add("email", "is invalid")

		assert.True(t, verr.Has("password"))
		assert.False(t, verr.Has("name"))
		assert.Equal(t, "too short", verr.Get("password"))
		assert.False(t, verr.IsEmpty())
		assert.Equal(t, "validation error: email: is invalid, password: too short", verr.Error())
	})
}

func TestResult_ValidationError(t *testing.T) {
	t.Run("successful result", func(t *testing.T) {
		result := schemakit.New(map[string]any{"age": 20}, nil, nil)
		assert.Nil(t, result.ValidationError())
		assert.NoError(t, result.Err())
	})

	t.Run("flattens nested failures by dotted path", func(t *testing.T) {
		address := schemakit.New(nil, nil, func(b *schemakit.Builder) {
			b.Concat(rule.Evaluate(rule.NewPath("street"), rule.Filled(""), rule.MinSize("", 3))...)
		})
		result := schemakit.New(nil, nil, func(b *schemakit.Builder) {
			b.Concat(ageRecords(3)...)
			b.Nest("address", address)
		})

		verr := result.ValidationError()
		require.NotNil(t, verr)
		assert.Equal(t, []string{"must be greater than 18"}, verr["age"])
		assert.Equal(t, []string{"must be filled"}, verr["address.street"])
		assert.Len(t, verr, 2)

		err := result.Err()
		var target schemakit.ValidationError
		require.True(t, errors.As(err, &target))
		assert.True(t, target.Has("address.street"))
	})

	t.Run("respects render options", func(t *testing.T) {
		result := schemakit.New(nil, nil, func(b *schemakit.Builder) { b.Concat(ageRecords(3)...) })
		verr := result.ValidationError(message.WithLocale("de"))
		assert.Equal(t, "muss größer als 18 sein", verr.Get("age"))
	})

	t.Run("hints alone are not an error", func(t *testing.T) {
		result := schemakit.New(nil, nil, func(b *schemakit.Builder) {
			b.Concat(rule.Hint(rule.NewPath("title"), rule.PredicateFilled, "must be filled", nil))
		})
		assert.NoError(t, result.Err())
	})
}
