package scorer

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// responseSchema is the JSON Schema every vendor payload must satisfy
// before it is decoded. Score ranges are enforced here so out-of-range
// vendor data is rejected at the boundary.
var responseSchema = map[string]any{
	"type":     "object",
	"required": []any{"utterance_score", "words"},
	"properties": map[string]any{
		"utterance_score": map[string]any{
			"type": "number",
		},
		"fluency_score": map[string]any{
			"type":    "number",
			"minimum": 0,
			"maximum": 100,
		},
		"words": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":     "object",
				"required": []any{"text", "score"},
				"properties": map[string]any{
					"text": map[string]any{
						"type":      "string",
						"minLength": 1,
					},
					"score": map[string]any{
						"type":    "number",
						"minimum": 0,
						"maximum": 100,
					},
					"phonemes": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type":     "object",
							"required": []any{"phoneme", "score"},
							"properties": map[string]any{
								"phoneme": map[string]any{
									"type":      "string",
									"minLength": 1,
								},
								"score": map[string]any{
									"type":    "number",
									"minimum": 0,
									"maximum": 100,
								},
							},
						},
					},
				},
			},
		},
	},
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// validatePayload checks raw vendor JSON against responseSchema.
// Returns *ErrInvalidResponse on any failure.
func validatePayload(raw json.RawMessage) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return &ErrInvalidResponse{
			Content: raw,
			Err:     fmt.Errorf("invalid JSON: %w", err),
		}
	}

	compiled, err := compiledResponseSchema()
	if err != nil {
		return &ErrInvalidResponse{
			Content: raw,
			Err:     fmt.Errorf("compile response schema: %w", err),
		}
	}

	if err := compiled.Validate(parsed); err != nil {
		return &ErrInvalidResponse{
			Content: raw,
			Err:     fmt.Errorf("schema validation failed: %w", err),
		}
	}
	return nil
}

// compiledResponseSchema compiles responseSchema once and caches it.
func compiledResponseSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value (any), not
		// raw bytes. Marshal then unmarshal to get a clean representation.
		defBytes, err := json.Marshal(responseSchema)
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
		const schemaURL = "schema://scoring-response.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}
