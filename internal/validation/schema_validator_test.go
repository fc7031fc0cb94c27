package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"properties": {
		"name": {"type": "string"},
		"age": {"type": "integer", "minimum": 0}
	},
	"required": ["name"],
	"additionalProperties": false
}`

func newTestSchema(t *testing.T) SchemaValidator {
	t.Helper()
	v, err := NewSchemaValidator("test.schema.json", []byte(testSchema))
	require.NoError(t, err)
	return v
}

func TestSchemaValidator_ValidateJSON(t *testing.T) {
	v := newTestSchema(t)

	tests := []struct {
		name     string
		data     string
		errorMsg string
	}{
		{name: "valid data", data: `{"name": "John", "age": 30}`},
		{name: "valid data without optional field", data: `{"name": "Jane"}`},
		{name: "missing required field", data: `{"age": 25}`, errorMsg: "required"},
		{name: "wrong type for field", data: `{"name": "John", "age": "thirty"}`, errorMsg: "/age"},
		{name: "constraint violation", data: `{"name": "John", "age": -5}`, errorMsg: "minimum"},
		{name: "unknown field", data: `{"name": "John", "colour": "red"}`, errorMsg: "additionalProperties"},
		{name: "invalid JSON", data: `{"name": "John", "age": }`, errorMsg: "parse JSON"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateJSON([]byte(tt.data))
			if tt.errorMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestSchemaValidator_ValidateYAML(t *testing.T) {
	v := newTestSchema(t)

	assert.NoError(t, v.ValidateYAML([]byte("name: John\nage: 30\n")))

	err := v.ValidateYAML([]byte("name: John\nage: -1\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/age")

	err = v.ValidateYAML(nil)
	require.Error(t, err, "empty documents still need required fields")
	assert.Contains(t, err.Error(), "required")

	err = v.ValidateYAML([]byte("name: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse YAML")
}

func TestNewSchemaValidator_BadSchema(t *testing.T) {
	_, err := NewSchemaValidator("bad.json", []byte(`{"type": `))
	assert.Error(t, err)

	_, err = NewSchemaValidator("bad-type.json", []byte(`{"type": 12}`))
	assert.Error(t, err)
}
