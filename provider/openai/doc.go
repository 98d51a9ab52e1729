// Package openai converts function definitions into request parameters for
// the official OpenAI Go SDK (github.com/openai/openai-go).
//
//	tools, err := openai.ToolParams(defs)
//	if err != nil {
//		return err
//	}
//	params := sdk.ChatCompletionNewParams{
//		Model:      sdk.ChatModelGPT4o,
//		Messages:   messages,
//		Tools:      tools,
//		ToolChoice: openai.ToolChoice(toolspec.ToolChoiceAuto),
//	}
//
// Parameters are handed to the SDK as pre-encoded keywords, so property
// order survives the SDK's map-based FunctionParameters. The top-level
// keywords themselves are map keys and encode in alphabetical order
// (additionalProperties, properties, required, type).
package openai
