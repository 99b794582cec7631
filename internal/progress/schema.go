package progress

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// exportSchema constrains the top-level shape of a progress document.
// Fields are individually optional (missing means default) but must
// have the right type when present.
const exportSchema = `{
	"type": "object",
	"properties": {
		"version": {"type": "integer", "minimum": 1},
		"attempts": {
			"type": "array",
			"items": {
				"type": "object",
				"properties": {
					"id": {"type": "string"},
					"category": {"type": "string"},
					"difficulty": {"type": "string"},
					"totalQuestions": {"type": "integer", "minimum": 0},
					"correctAnswers": {"type": "integer", "minimum": 0},
					"score": {"type": "number"},
					"timeSpent": {"type": "integer", "minimum": 0}
				},
				"required": ["id", "category", "score"]
			}
		},
		"categoryProgress": {"type": "array", "items": {"type": "object"}},
		"learningGoals": {"type": "array", "items": {"type": "object"}},
		"achievements": {"type": "array", "items": {"type": "object"}},
		"userStats": {"type": "object"}
	}
}`

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func compiledExportSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		parsed, err := jsonschema.UnmarshalJSON(strings.NewReader(exportSchema))
		if err != nil {
			compileErr = fmt.Errorf("parse export schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://progress-export.json", parsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("schema://progress-export.json")
	})
	return compiledSchema, compileErr
}

// validateExport checks a raw progress document against the export
// schema. Any failure maps to ErrInvalidImport.
func validateExport(data []byte) error {
	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidImport, err)
	}

	schema, err := compiledExportSchema()
	if err != nil {
		return fmt.Errorf("compile export schema: %w", err)
	}

	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidImport, err)
	}
	return nil
}
