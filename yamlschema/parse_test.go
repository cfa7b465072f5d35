package yamlschema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldschema"
	"github.com/dmitrymomot/fieldschema/yamlschema"
)

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("builds a working nested schema", func(t *testing.T) {
		schema, err := yamlschema.Parse([]byte(`
name:
  type: string
  required: true
address:
  city:
    type: string
    required: true
`))
		require.NoError(t, err)

		errs := fieldschema.Validate(schema, map[string]any{
			"name":    "",
			"address": map[string]any{"city": ""},
		})
		assert.Equal(t, []string{"Name is required"}, errs.Get("name"))
		assert.Equal(t, []string{"City is required"}, errs.Nested("address").Get("city"))

		errs = fieldschema.Validate(schema, map[string]any{
			"name":    "Ann",
			"address": map[string]any{"city": "Rome"},
		})
		assert.True(t, errs.IsEmpty())
	})

	t.Run("applies string rules and message overrides", func(t *testing.T) {
		schema, err := yamlschema.Parse([]byte(`
email:
  type: string
  required: true
  email: true
  messages:
    required: we need your email
username:
  type: string
  min_len: 3
  max_len: 10
  pattern: "^[a-z]+$"
  pattern_name: lowercase
`))
		require.NoError(t, err)

		errs := fieldschema.Validate(schema, map[string]any{
			"email":    "",
			"username": "AB",
		})
		assert.Equal(t, []string{"we need your email"}, errs.Get("email"))
		assert.Equal(t, []string{
			"Username must be at least 3 characters long",
			"Username must match lowercase pattern",
		}, errs.Get("username"))
	})

	t.Run("applies array, file and date rules", func(t *testing.T) {
		schema, err := yamlschema.Parse([]byte(`
tags:
  type: array
  min_items: 2
avatar:
  type: file
  max_size: 1024
  extensions: [png, jpg]
starts_at:
  type: date
  only_future: true
ends_at:
  type: date
  before: 2031-01-01
`))
		require.NoError(t, err)

		errs := fieldschema.Validate(schema, map[string]any{
			"tags":   []string{"one"},
			"avatar": fieldschema.FileInfo{Name: "me.gif", Size: 2048},
		})
		assert.Equal(t, []string{"Tags must have at least 2 items"}, errs.Get("tags"))
		assert.Equal(t, []string{
			"Avatar must be at most 1024 bytes",
			"Avatar must be one of the file types: .png, .jpg",
		}, errs.Get("avatar"))
		assert.False(t, errs.Has("starts_at"))
		assert.False(t, errs.Has("ends_at"))
	})

	t.Run("returns an empty schema for an empty document", func(t *testing.T) {
		schema, err := yamlschema.Parse(nil)
		require.NoError(t, err)
		assert.Empty(t, schema)
	})

	t.Run("rejects a non-mapping document", func(t *testing.T) {
		_, err := yamlschema.Parse([]byte(`- a`))
		assert.ErrorContains(t, err, "must be a mapping")
	})

	t.Run("rejects a scalar field definition", func(t *testing.T) {
		_, err := yamlschema.Parse([]byte(`name: string`))
		assert.ErrorContains(t, err, "name: definition must be a mapping")
	})

	t.Run("rejects keys from another kind", func(t *testing.T) {
		_, err := yamlschema.Parse([]byte(`
starts_at:
  type: date
  min_len: 3
`))
		assert.ErrorContains(t, err, `key "min_len" is not valid for a date field`)
	})

	t.Run("rejects an invalid pattern", func(t *testing.T) {
		_, err := yamlschema.Parse([]byte(`
slug:
  type: string
  pattern: "(["
`))
		assert.ErrorContains(t, err, "slug: invalid pattern")
	})

	t.Run("rejects an invalid rule date", func(t *testing.T) {
		_, err := yamlschema.Parse([]byte(`
ends_at:
  type: date
  before: soon
`))
		assert.ErrorContains(t, err, "ends_at: invalid before date")
	})

	t.Run("names the full path of a nested problem", func(t *testing.T) {
		_, err := yamlschema.Parse([]byte(`
address:
  city:
    type: string
    max_size: 2
`))
		assert.ErrorContains(t, err, "address.city")
	})

	t.Run("treats a mapping with a non-kind type as nested", func(t *testing.T) {
		schema, err := yamlschema.Parse([]byte(`
settings:
  type:
    type: string
    required: true
`))
		require.NoError(t, err)

		errs := fieldschema.Validate(schema, map[string]any{"settings": map[string]any{}})
		assert.Equal(t, []string{"Type is required"}, errs.Nested("settings").Get("type"))
	})
}
