package goopenai

import (
	"fmt"
	"slices"

	"github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"
	"github.com/spetersoncode/toolspec"
	"github.com/spetersoncode/toolspec/schema"
)

// Tool converts a function definition to a go-openai function tool.
// Parameters are set to the encoded schema so property order survives;
// use Definition for a typed view.
func Tool(def *toolspec.FunctionDefinition) (openai.Tool, error) {
	params, err := def.Schema()
	if err != nil {
		return openai.Tool{}, fmt.Errorf("goopenai: tool %q: %w", def.Name, err)
	}
	return openai.Tool{
		Type: openai.ToolTypeFunction,
		Function: &openai.FunctionDefinition{
			Name:        def.Name,
			Description: def.Description,
			Parameters:  params,
		},
	}, nil
}

// Tools converts a list of function definitions. It returns nil for an
// empty list.
func Tools(defs []*toolspec.FunctionDefinition) ([]openai.Tool, error) {
	if len(defs) == 0 {
		return nil, nil
	}
	result := make([]openai.Tool, len(defs))
	for i, def := range defs {
		t, err := Tool(def)
		if err != nil {
			return nil, err
		}
		result[i] = t
	}
	return result, nil
}

// Definition converts a property definition to a go-openai jsonschema.Definition.
// Nil child properties are skipped.
func Definition(p *schema.PropertyDefinition) (jsonschema.Definition, error) {
	def := jsonschema.Definition{
		Description: p.Description,
		Enum:        slices.Clone(p.Enum),
		Required:    slices.Clone(p.Required),
	}

	switch p.Type {
	case schema.TypeObject:
		def.Type = jsonschema.Object
	case schema.TypeString:
		def.Type = jsonschema.String
	case schema.TypeInteger:
		def.Type = jsonschema.Integer
	case schema.TypeNumber:
		def.Type = jsonschema.Number
	case schema.TypeArray:
		def.Type = jsonschema.Array
	case schema.TypeBoolean:
		def.Type = jsonschema.Boolean
	case schema.TypeNull:
		def.Type = jsonschema.Null
	default:
		return jsonschema.Definition{}, fmt.Errorf("%w: %d", schema.ErrUnsupportedType, int(p.Type))
	}

	if p.AdditionalProperties != nil {
		def.AdditionalProperties = *p.AdditionalProperties
	}

	if p.Properties != nil {
		def.Properties = make(map[string]jsonschema.Definition, p.Properties.Len())
		for pair := p.Properties.Oldest(); pair != nil; pair = pair.Next() {
			if pair.Value == nil {
				continue
			}
			child, err := Definition(pair.Value)
			if err != nil {
				return jsonschema.Definition{}, fmt.Errorf("property %q: %w", pair.Key, err)
			}
			def.Properties[pair.Key] = child
		}
	}

	if p.Items != nil {
		items, err := Definition(p.Items)
		if err != nil {
			return jsonschema.Definition{}, fmt.Errorf("items: %w", err)
		}
		def.Items = &items
	}

	return def, nil
}
