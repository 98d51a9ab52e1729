// Package toolspec authors function definitions for tool-calling APIs.
//
// A [FunctionDefinition] pairs a name and description with a parameter
// schema built from the [github.com/spetersoncode/toolspec/schema] package.
// The [FunctionDefinitionBuilder] assembles one parameter at a time:
//
//	def := toolspec.NewFunctionDefinitionBuilder("get_weather", "Get the current weather").
//		AddParameter("location", schema.DefineString("City name"), true).
//		AddParameter("unit", schema.DefineEnum([]string{"celsius", "fahrenheit"}, ""), false).
//		MustValidate().
//		Build()
//
//	data, err := json.Marshal(def)
//
// produces
//
//	{"name":"get_weather","description":"Get the current weather",
//	 "parameters":{"type":"object","properties":{
//	   "location":{"type":"string","description":"City name"},
//	   "unit":{"type":"string","enum":["celsius","fahrenheit"]}},
//	 "required":["location"]}}
//
// # Validation
//
// Names are only checked when asked. [ValidateName] and
// [FunctionDefinitionBuilder.Validate] return a [*NameError] wrapping
// [ErrInvalidName]; MustValidate panics instead so it can sit in a chain.
// Build never validates.
//
// # Definition Files
//
// [LoadDefinitions] reads a YAML or JSON list of definitions, keeping
// property order and validating every name.
//
// # Providers
//
// The provider subpackages convert definitions to the request types of
// each SDK:
//
//   - [github.com/spetersoncode/toolspec/provider/openai]: openai-go
//   - [github.com/spetersoncode/toolspec/provider/anthropic]: anthropic-sdk-go
//   - [github.com/spetersoncode/toolspec/provider/google]: genai
//   - [github.com/spetersoncode/toolspec/provider/goopenai]: sashabaranov/go-openai
//   - [github.com/spetersoncode/toolspec/mcp]: mark3labs/mcp-go
package toolspec
