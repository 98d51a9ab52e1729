package google

import (
	"fmt"

	"github.com/spetersoncode/toolspec"
	"google.golang.org/genai"
)

// FunctionDeclaration converts a function definition to a genai function declaration.
func FunctionDeclaration(def *toolspec.FunctionDefinition) (*genai.FunctionDeclaration, error) {
	params, err := Schema(def.Parameters)
	if err != nil {
		return nil, fmt.Errorf("google: function %q: %w", def.Name, err)
	}
	return &genai.FunctionDeclaration{
		Name:        def.Name,
		Description: def.Description,
		Parameters:  params,
	}, nil
}

// Tools converts function definitions to a single genai Tool holding all
// declarations. It returns nil for an empty list.
func Tools(defs []*toolspec.FunctionDefinition) ([]*genai.Tool, error) {
	if len(defs) == 0 {
		return nil, nil
	}

	funcs := make([]*genai.FunctionDeclaration, len(defs))
	for i, def := range defs {
		fd, err := FunctionDeclaration(def)
		if err != nil {
			return nil, err
		}
		funcs[i] = fd
	}

	return []*genai.Tool{{FunctionDeclarations: funcs}}, nil
}

// ToolConfig converts a tool choice to a genai ToolConfig.
func ToolConfig(choice toolspec.ToolChoice) *genai.ToolConfig {
	switch choice {
	case toolspec.ToolChoiceNone:
		return &genai.ToolConfig{
			FunctionCallingConfig: &genai.FunctionCallingConfig{
				Mode: genai.FunctionCallingConfigModeNone,
			},
		}
	case toolspec.ToolChoiceRequired:
		return &genai.ToolConfig{
			FunctionCallingConfig: &genai.FunctionCallingConfig{
				Mode: genai.FunctionCallingConfigModeAny,
			},
		}
	default:
		return &genai.ToolConfig{
			FunctionCallingConfig: &genai.FunctionCallingConfig{
				Mode: genai.FunctionCallingConfigModeAuto,
			},
		}
	}
}
