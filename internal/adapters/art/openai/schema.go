package openai

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/invopop/jsonschema"
)

type conceptResponse struct {
	Title       string `json:"title" jsonschema:"required,description=Poetic memorable artwork title"`
	Description string `json:"description" jsonschema:"required,description=Two or three sentence description for NFT metadata"`
	ImagePrompt string `json:"imagePrompt" jsonschema:"required,description=Detailed image generation prompt"`
}

var conceptSchema = generateSchema[conceptResponse]()

func generateSchema[T any]() map[string]any {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties:  false,
		DoNotReference:             true,
		RequiredFromJSONSchemaTags: true,
	}
	var v T
	schema, err := schemaToMap(reflector.Reflect(v))
	if err != nil {
		panic(err)
	}
	ensureStrict(schema)
	return schema
}

func schemaToMap(schema *jsonschema.Schema) (map[string]any, error) {
	b, err := schema.MarshalJSON()
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// ensureStrict applies the strict structured-output rules: closed objects with every
// property required.
func ensureStrict(schema map[string]any) {
	delete(schema, "$schema")
	delete(schema, "$id")
	if schemaType, ok := schema["type"].(string); !ok || schemaType != "object" {
		return
	}

	schema["additionalProperties"] = false
	properties, ok := schema["properties"].(map[string]any)
	if !ok {
		return
	}

	required := make([]string, 0, len(properties))
	for name, property := range properties {
		required = append(required, name)
		if nested, ok := property.(map[string]any); ok {
			ensureStrict(nested)
		}
	}
	schema["required"] = required
}

// decodeModelJSON accepts a bare JSON object or one wrapped in prose or code fences.
func decodeModelJSON(outputText string, v any) error {
	s := strings.TrimSpace(outputText)
	if s == "" {
		return io.ErrUnexpectedEOF
	}
	if err := json.Unmarshal([]byte(s), v); err == nil {
		return nil
	}

	start := strings.IndexByte(s, '{')
	end := strings.LastIndexByte(s, '}')
	if start == -1 || end <= start {
		return errors.New("no JSON object found in model output")
	}
	if err := json.Unmarshal([]byte(s[start:end+1]), v); err != nil {
		return fmt.Errorf("unmarshal extracted JSON: %w", err)
	}
	return nil
}
