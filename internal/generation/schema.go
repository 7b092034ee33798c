package generation

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const cardSchemaURL = "studycard.schema.json"

// cardSchemaMap is the JSON Schema a single card element must satisfy.
var cardSchemaMap = map[string]any{
	"$schema":  "https://json-schema.org/draft/2020-12/schema",
	"type":     "object",
	"required": []string{"title", "content", "emoji"},
	"properties": map[string]any{
		"title":   map[string]any{"type": "string", "pattern": `\S`},
		"content": map[string]any{"type": "string", "pattern": `\S`},
		"emoji":   map[string]any{"type": "string", "pattern": `\S`},
		"pageNumber": map[string]any{
			"type":    []string{"integer", "null"},
			"minimum": 1,
		},
	},
}

var cardSchema = sync.OnceValues(compileCardSchema)

func compileCardSchema() (*jsonschema.Schema, error) {
	b, err := json.Marshal(cardSchemaMap)
	if err != nil {
		return nil, fmt.Errorf("marshal card schema: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(cardSchemaURL, bytes.NewReader(b)); err != nil {
		return nil, fmt.Errorf("add card schema: %w", err)
	}

	schema, err := compiler.Compile(cardSchemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile card schema: %w", err)
	}
	return schema, nil
}
