package openai

import (
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/shared"
	"github.com/spetersoncode/toolspec"
)

// ToolParam converts a function definition to an OpenAI tool parameter.
func ToolParam(def *toolspec.FunctionDefinition) (openai.ChatCompletionToolParam, error) {
	fields, err := def.SchemaFields()
	if err != nil {
		return openai.ChatCompletionToolParam{}, fmt.Errorf("openai: tool %q: %w", def.Name, err)
	}

	// Top-level keys encode sorted; each value keeps its own order.
	params := make(shared.FunctionParameters, len(fields))
	for k, v := range fields {
		params[k] = v
	}

	fn := shared.FunctionDefinitionParam{
		Name:       def.Name,
		Parameters: params,
	}
	if def.Description != "" {
		fn.Description = openai.String(def.Description)
	}
	return openai.ChatCompletionToolParam{Function: fn}, nil
}

// ToolParams converts a list of function definitions. It returns nil for
// an empty list.
func ToolParams(defs []*toolspec.FunctionDefinition) ([]openai.ChatCompletionToolParam, error) {
	if len(defs) == 0 {
		return nil, nil
	}
	result := make([]openai.ChatCompletionToolParam, len(defs))
	for i, def := range defs {
		p, err := ToolParam(def)
		if err != nil {
			return nil, err
		}
		result[i] = p
	}
	return result, nil
}

// ToolChoice converts a tool choice to the OpenAI union parameter.
func ToolChoice(choice toolspec.ToolChoice) openai.ChatCompletionToolChoiceOptionUnionParam {
	switch choice {
	case toolspec.ToolChoiceNone:
		return openai.ChatCompletionToolChoiceOptionUnionParam{
			OfAuto: openai.String("none"),
		}
	case toolspec.ToolChoiceRequired:
		return openai.ChatCompletionToolChoiceOptionUnionParam{
			OfAuto: openai.String("required"),
		}
	default:
		return openai.ChatCompletionToolChoiceOptionUnionParam{
			OfAuto: openai.String("auto"),
		}
	}
}
