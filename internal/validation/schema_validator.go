// Package validation checks user-supplied documents and structs before
// they reach the rename machinery.
package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

// SchemaValidator validates documents against one compiled JSON schema
type SchemaValidator interface {
	ValidateJSON(data []byte) error
	ValidateYAML(data []byte) error
}

type schemaValidator struct {
	schema *jsonschema.Schema
}

// NewSchemaValidator compiles schema, registered under name.
func NewSchemaValidator(name string, schema []byte) (SchemaValidator, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schema))
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema %s: %w", name, err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(name, doc); err != nil {
		return nil, fmt.Errorf("failed to add schema resource: %w", err)
	}
	compiled, err := compiler.Compile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}
	return &schemaValidator{schema: compiled}, nil
}

// ValidateJSON validates JSON data bytes
func (v *schemaValidator) ValidateJSON(data []byte) error {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to parse JSON data: %w", err)
	}
	return v.validate(doc)
}

// ValidateYAML validates a YAML document. An empty document counts as an
// empty mapping.
func (v *schemaValidator) ValidateYAML(data []byte) error {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to parse YAML data: %w", err)
	}
	if raw == nil {
		raw = map[string]any{}
	}

	// Round-trip through JSON so numbers reach the validator as json.Number.
	b, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("failed to convert YAML data: %w", err)
	}
	return v.ValidateJSON(b)
}

func (v *schemaValidator) validate(doc any) error {
	if err := v.schema.Validate(doc); err != nil {
		return formatSchemaError(err)
	}
	return nil
}

// formatSchemaError flattens a validation error tree into one line per
// failing location.
func formatSchemaError(err error) error {
	var verr *jsonschema.ValidationError
	if !errors.As(err, &verr) {
		return fmt.Errorf("validation error: %w", err)
	}
	var lines []string
	collectErrors(verr, &lines)
	return fmt.Errorf("schema validation failed:\n%s", strings.Join(lines, "\n"))
}

func collectErrors(err *jsonschema.ValidationError, lines *[]string) {
	if len(err.Causes) == 0 {
		*lines = append(*lines, formatError(err))
		return
	}
	for _, cause := range err.Causes {
		collectErrors(cause, lines)
	}
}

func formatError(err *jsonschema.ValidationError) string {
	location := "(root)"
	if len(err.InstanceLocation) > 0 {
		location = "/" + strings.Join(err.InstanceLocation, "/")
	}
	if err.ErrorKind != nil {
		if kw := err.ErrorKind.KeywordPath(); len(kw) > 0 {
			return fmt.Sprintf("  - at %s: %s validation failed", location, strings.Join(kw, "."))
		}
	}
	return fmt.Sprintf("  - at %s: validation failed", location)
}
