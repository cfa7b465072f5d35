package fieldschema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/fieldschema"
)

func TestArrayMinItems(t *testing.T) {
	t.Parallel()

	f := fieldschema.Field("tags").Array().MinItems(2)

	t.Run("passes at and above the minimum", func(t *testing.T) {
		assert.Empty(t, f.Validate([]string{"a", "b"}))
		assert.Empty(t, f.Validate([]int{1, 2, 3}))
	})

	t.Run("fails below the minimum with default message", func(t *testing.T) {
		assert.Equal(t, []string{"Tags must have at least 2 items"}, f.Validate([]string{"a"}))
	})

	t.Run("skips absent and empty containers", func(t *testing.T) {
		assert.Empty(t, f.Validate(nil))
		assert.Empty(t, f.Validate([]string{}))
	})

	t.Run("counts map elements for set containers", func(t *testing.T) {
		assert.Empty(t, f.Validate(map[string]struct{}{"a": {}, "b": {}}))
		assert.NotEmpty(t, f.Validate(map[string]struct{}{"a": {}}))
	})
}

func TestArrayMaxItems(t *testing.T) {
	t.Parallel()

	f := fieldschema.Field("attachments").Array().MaxItems(2)
	assert.Empty(t, f.Validate([]string{"a", "b"}))
	assert.Equal(t, []string{"Attachments must have at most 2 items"}, f.Validate([]string{"a", "b", "c"}))
}

func TestArrayTypeMismatch(t *testing.T) {
	t.Parallel()

	f := fieldschema.Field("tags").Array().MinItems(1)
	assert.Equal(t, []string{"Tags must be a list"}, f.Validate("not a list"))
}
