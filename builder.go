package toolspec

import (
	"slices"

	"github.com/spetersoncode/toolspec/schema"
)

// FunctionDefinitionBuilder assembles a FunctionDefinition one parameter
// at a time. It is not safe for concurrent use.
type FunctionDefinitionBuilder struct {
	def *FunctionDefinition
}

// NewFunctionDefinitionBuilder starts a definition with an empty object
// as its parameters. The name is not checked until Validate is called.
func NewFunctionDefinitionBuilder(name, description string) *FunctionDefinitionBuilder {
	return &FunctionDefinitionBuilder{
		def: &FunctionDefinition{
			Name:        name,
			Description: description,
			Parameters:  emptyParameters(),
		},
	}
}

// AddParameter sets the schema for the named parameter, replacing any
// earlier schema under the same name while keeping its position.
//
// The most recent call decides whether the parameter is required: true
// adds name to the required list once, false removes it.
func (b *FunctionDefinitionBuilder) AddParameter(name string, def *schema.PropertyDefinition, required bool) *FunctionDefinitionBuilder {
	params := b.def.Parameters
	if params.Properties == nil {
		params.Properties = schema.NewProperties()
	}
	params.Properties.Set(name, def)

	if required {
		if !slices.Contains(params.Required, name) {
			params.Required = append(params.Required, name)
		}
	} else {
		params.Required = slices.DeleteFunc(params.Required, func(r string) bool { return r == name })
		if len(params.Required) == 0 {
			params.Required = nil
		}
	}
	return b
}

// StrictMode disallows additional properties on the parameters object,
// as OpenAI strict function calling requires.
func (b *FunctionDefinitionBuilder) StrictMode() *FunctionDefinitionBuilder {
	b.def.Parameters.AdditionalProperties = schema.Ptr(false)
	return b
}

// Validate checks the function name. Parameter names and nested schemas
// are not checked.
func (b *FunctionDefinitionBuilder) Validate() error {
	return ValidateName(b.def.Name)
}

// MustValidate is like Validate but panics on error.
func (b *FunctionDefinitionBuilder) MustValidate() *FunctionDefinitionBuilder {
	if err := b.Validate(); err != nil {
		panic(err)
	}
	return b
}

// Build returns the definition being assembled. It does not validate,
// and later calls on the builder keep modifying the returned value.
func (b *FunctionDefinitionBuilder) Build() *FunctionDefinition {
	return b.def
}
