package fieldschema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/fieldschema"
)

func TestAssert(t *testing.T) {
	t.Parallel()

	t.Run("does nothing when the condition holds", func(t *testing.T) {
		assert.NotPanics(t, func() { fieldschema.Assert(true, "never seen") })
	})

	t.Run("panics with the given message", func(t *testing.T) {
		assert.PanicsWithValue(t, "boom", func() { fieldschema.Assert(false, "boom") })
	})

	t.Run("panics with a generic message when none is given", func(t *testing.T) {
		assert.PanicsWithValue(t, "assertion failed", func() { fieldschema.Assert(false) })
	})
}
