package predict

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// resultSchema describes the response shape the prediction service must
// return. Anything else is a schema error, not a silent zero value.
var resultSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"prediction": map[string]any{
			"type": "integer",
		},
		"probability_positive": map[string]any{
			"type":    "number",
			"minimum": 0,
			"maximum": 1,
		},
		"probability_negative": map[string]any{
			"type":    "number",
			"minimum": 0,
			"maximum": 1,
		},
	},
	"required": []any{"prediction", "probability_positive", "probability_negative"},
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// validateResult checks raw against the response schema.
// Returns *ErrSchema on any failure.
func validateResult(raw json.RawMessage) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return &ErrSchema{
			Body: raw,
			Err:  fmt.Errorf("invalid JSON: %w", err),
		}
	}

	schema, err := compiledResultSchema()
	if err != nil {
		return &ErrSchema{
			Body: raw,
			Err:  fmt.Errorf("compile response schema: %w", err),
		}
	}

	if err := schema.Validate(parsed); err != nil {
		return &ErrSchema{
			Body: raw,
			Err:  fmt.Errorf("schema validation failed: %w", err),
		}
	}

	return nil
}

// compiledResultSchema compiles the response schema once and caches it.
func compiledResultSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value, not raw
		// bytes. Marshal then unmarshal for a clean any representation.
		defBytes, err := json.Marshal(resultSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://prediction-result.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}
