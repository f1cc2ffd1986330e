package message_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/schemakit/pkg/message"
)

func TestFlag(t *testing.T) {
	assert.Equal(t, message.Yes, message.FlagOf(true))
	assert.Equal(t, message.No, message.FlagOf(false))

	assert.True(t, message.Yes.IsTrue())
	assert.False(t, message.Unset.IsTrue())
	assert.True(t, message.No.IsFalse())
	assert.False(t, message.Unset.IsFalse())

	assert.True(t, message.Unset.Or(true))
	assert.False(t, message.No.Or(true))
	assert.True(t, message.Yes.Or(false))

	assert.Equal(t, "unset", message.Unset.String())
	assert.Equal(t, "true", message.Yes.String())
	assert.Equal(t, "false", message.No.String())
}

func TestOptions_Apply(t *testing.T) {
	t.Run("later options win", func(t *testing.T) {
		opts := message.NewOptions(message.WithHints(true), message.WithHints(false))
		assert.Equal(t, message.No, opts.Hints)
		assert.Equal(t, message.Unset, opts.Failures)
	})

	t.Run("apply does not touch the receiver", func(t *testing.T) {
		base := message.NewOptions(message.WithLocale("en"))
		next := base.Apply(message.WithLocale("de"), nil, message.WithFullMessages(true))

		assert.Equal(t, "en", base.Locale)
		assert.Equal(t, message.Unset, base.Full)
		assert.Equal(t, "de", next.Locale)
		assert.Equal(t, message.Yes, next.Full)
	})
}
