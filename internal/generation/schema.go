package generation

import (
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const itemSchemaURL = "schema://jusmind/question-item.json"

// itemSchema checks only the discriminator. Every other field is optional
// and read leniently, so a partially filled item stays usable.
var itemSchema = map[string]any{
	"$schema":  "https://json-schema.org/draft/2020-12/schema",
	"type":     "object",
	"required": []any{"type"},
	"properties": map[string]any{
		"type": map[string]any{
			"type":    "string",
			"pattern": `^\s*(?i:objective|discursive)\s*$`,
		},
	},
}

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

func itemValidator() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		c := jsonschema.NewCompiler()
		if err := c.AddResource(itemSchemaURL, itemSchema); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(itemSchemaURL)
	})
	return compiled, compileErr
}

// validateItem checks one decoded array element against the item schema.
func validateItem(doc any) error {
	sch, err := itemValidator()
	if err != nil {
		return fmt.Errorf("compile item schema: %w", err)
	}
	if err := sch.Validate(doc); err != nil {
		return fmt.Errorf("item schema: %w", err)
	}
	return nil
}
