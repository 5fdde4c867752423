package swagger

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validDocument = `{
  "swagger": "2.0",
  "info": {"title": "API", "version": "1.0.0"},
  "paths": {
    "/users/{id}": {
      "get": {
        "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}],
        "responses": {"500": {"description": "Internal Server Error"}}
      }
    }
  },
  "definitions": {}
}`

func TestKinValidator(t *testing.T) {
	ctx := context.Background()
	v := KinValidator{}

	t.Run("valid document", func(t *testing.T) {
		report, err := v.Validate(ctx, []byte(validDocument))
		require.NoError(t, err)
		assert.Empty(t, report.Errors)
	})

	t.Run("missing version is an error", func(t *testing.T) {
		report, err := v.Validate(ctx, []byte(`{
  "swagger": "2.0",
  "info": {"title": "API", "version": ""},
  "paths": {}
}`))
		require.NoError(t, err)
		require.NotEmpty(t, report.Errors)
		assert.Contains(t, report.Errors[0], "version")
	})

	t.Run("legacy float type is a warning", func(t *testing.T) {
		report, err := v.Validate(ctx, []byte(`{
  "swagger": "2.0",
  "info": {"title": "API", "version": "1.0.0"},
  "paths": {
    "/prices": {
      "get": {
        "parameters": [{"name": "max", "in": "query", "type": "float"}],
        "responses": {"500": {"description": "Internal Server Error"}}
      }
    }
  }
}`))
		require.NoError(t, err)
		assert.Empty(t, report.Errors)
		require.NotEmpty(t, report.Warnings)
		assert.Contains(t, report.Warnings[0], "float")
	})

	t.Run("array items referencing type tags are inlined", func(t *testing.T) {
		report, err := v.Validate(ctx, []byte(`{
  "swagger": "2.0",
  "info": {"title": "API", "version": "1.0.0"},
  "paths": {
    "/search": {
      "get": {
        "parameters": [
          {"name": "tags", "in": "query", "type": "array", "items": {"$ref": "string"}},
          {"name": "ids", "in": "query", "type": "array", "items": {"$ref": "integer"}},
          {"name": "since", "in": "query", "type": "array", "items": {"$ref": "dateTime"}},
          {"name": "owners", "in": "query", "type": "array", "items": {"$ref": "User"}}
        ],
        "responses": {"500": {"description": "Internal Server Error"}}
      }
    }
  },
  "definitions": {"User": {"type": "object"}}
}`))
		require.NoError(t, err)
		assert.Empty(t, report.Errors)
		require.Len(t, report.Warnings, 4)
		assert.Contains(t, report.Warnings[0], `GET /search: items of parameter "tags" reference type "string"`)
		assert.Contains(t, report.Warnings[3], `"owners"`)
	})

	t.Run("document pointers in items are left alone", func(t *testing.T) {
		report, err := v.Validate(ctx, []byte(`{
  "swagger": "2.0",
  "info": {"title": "API", "version": "1.0.0"},
  "paths": {
    "/search": {
      "get": {
        "parameters": [{"name": "owners", "in": "query", "type": "array", "items": {"$ref": "#/definitions/User"}}],
        "responses": {"500": {"description": "Internal Server Error"}}
      }
    }
  },
  "definitions": {"User": {"type": "object"}}
}`))
		require.NoError(t, err)
		assert.Empty(t, report.Errors)
		assert.Empty(t, report.Warnings)
	})

	t.Run("malformed json fails validation itself", func(t *testing.T) {
		report, err := v.Validate(ctx, []byte(`{"swagger":`))
		assert.Error(t, err)
		assert.Nil(t, report)
	})
}

func TestDowngradable(t *testing.T) {
	tests := []struct {
		msg  string
		want bool
	}{
		{`found unresolved ref: "#/definitions/Missing"`, true},
		{`invalid paths: unsupported 'type' value "dateTime"`, true},
		{`unsupported 'type' value "float"`, true},
		{`schema 'items' must be non-null`, true},
		{`value of version must be a non-empty string`, false},
		{`unsupported 'type' value "banana"`, false},
	}

	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			assert.Equal(t, tt.want, downgradable(errors.New(tt.msg)))
		})
	}
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{Errors: []string{"a", "b"}}
	assert.Equal(t, "swagger: invalid document: a; b", err.Error())
}
