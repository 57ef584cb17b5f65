package schema

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// ValidationError reports schema violations in a terminal record.
type ValidationError struct {
	Errors []FieldError
}

// FieldError is a single violation at a specific field path.
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("record validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// JSONSchema builds a JSON Schema document for the category's terminal
// record. Boolean fields are strictly typed so "Yes"/"No" strings fail
// validation; number and duration fields must be numeric.
func (t Table) JSONSchema() map[string]any {
	properties := make(map[string]any)
	required := make([]string, 0)

	for _, f := range t.TextFields {
		properties[f] = map[string]any{"type": "string"}
		required = append(required, f)
	}
	for _, f := range t.BoolFields {
		properties[f] = map[string]any{"type": "boolean"}
		required = append(required, f)
	}
	for _, f := range append(append([]string{}, t.NumberFields...), t.DurationFields...) {
		properties[f] = map[string]any{"type": "number"}
		required = append(required, f)
	}
	for _, g := range t.Groups {
		nestedProps := make(map[string]any, len(g.Fields))
		for _, f := range g.Fields {
			nestedProps[f] = map[string]any{"type": "boolean"}
		}
		properties[g.Name] = map[string]any{
			"type":       "object",
			"properties": nestedProps,
			"required":   g.Fields,
		}
		required = append(required, g.Name)
	}

	return map[string]any{
		"$schema":    "http://json-schema.org/draft-07/schema#",
		"type":       "object",
		"properties": properties,
		"required":   required,
	}
}

// ValidateRecord checks a terminal record against the category's JSON
// Schema. Extra keys (merged place fields) are permitted; required keys
// must be present with the strict type the schema demands.
func (t Table) ValidateRecord(rec map[string]any) error {
	schemaLoader := gojsonschema.NewGoLoader(t.JSONSchema())
	documentLoader := gojsonschema.NewGoLoader(rec)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("schema validation failed to run: %w", err)
	}
	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return validationErr
}
