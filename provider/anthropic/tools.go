package anthropic

import (
	"fmt"
	"slices"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/spetersoncode/toolspec"
)

// ToolParam converts a function definition to an Anthropic tool.
// Properties are passed pre-encoded so their order is kept. The remaining
// keywords of the parameters object, such as additionalProperties, travel
// as extra fields of the input schema.
func ToolParam(def *toolspec.FunctionDefinition) (anthropic.ToolUnionParam, error) {
	fields, err := def.SchemaFields()
	if err != nil {
		return anthropic.ToolUnionParam{}, fmt.Errorf("anthropic: tool %q: %w", def.Name, err)
	}

	inputSchema := anthropic.ToolInputSchemaParam{}
	if props, ok := fields["properties"]; ok {
		inputSchema.Properties = props
	}
	if def.Parameters != nil {
		inputSchema.Required = slices.Clone(def.Parameters.Required)
	}
	for k, v := range fields {
		switch k {
		case "type", "properties", "required":
			continue
		}
		if inputSchema.ExtraFields == nil {
			inputSchema.ExtraFields = make(map[string]any)
		}
		inputSchema.ExtraFields[k] = v
	}

	toolParam := anthropic.ToolParam{
		Name:        def.Name,
		InputSchema: inputSchema,
	}
	if def.Description != "" {
		toolParam.Description = anthropic.String(def.Description)
	}

	return anthropic.ToolUnionParam{OfTool: &toolParam}, nil
}

// ToolParams converts a list of function definitions. It returns nil for
// an empty list.
func ToolParams(defs []*toolspec.FunctionDefinition) ([]anthropic.ToolUnionParam, error) {
	if len(defs) == 0 {
		return nil, nil
	}
	result := make([]anthropic.ToolUnionParam, len(defs))
	for i, def := range defs {
		p, err := ToolParam(def)
		if err != nil {
			return nil, err
		}
		result[i] = p
	}
	return result, nil
}

// ToolChoice converts a tool choice to the Anthropic union parameter.
func ToolChoice(choice toolspec.ToolChoice) anthropic.ToolChoiceUnionParam {
	switch choice {
	case toolspec.ToolChoiceNone:
		return anthropic.ToolChoiceUnionParam{
			OfNone: &anthropic.ToolChoiceNoneParam{},
		}
	case toolspec.ToolChoiceRequired:
		return anthropic.ToolChoiceUnionParam{
			OfAny: &anthropic.ToolChoiceAnyParam{},
		}
	default:
		return anthropic.ToolChoiceUnionParam{
			OfAuto: &anthropic.ToolChoiceAutoParam{},
		}
	}
}
