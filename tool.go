package toolspec

import (
	"encoding/json"

	"github.com/spetersoncode/toolspec/schema"
)

// FunctionDefinition describes a function that can be called by the model.
type FunctionDefinition struct {
	// Name is the unique identifier for the function. See ValidateName.
	Name string `json:"name" yaml:"name"`
	// Description explains what the function does (helps the model decide when to use it).
	Description string `json:"description,omitempty" yaml:"description"`
	// Parameters describes the call arguments, conventionally as an object schema.
	Parameters *schema.PropertyDefinition `json:"parameters" yaml:"parameters"`
}

// Schema encodes Parameters as JSON. A nil Parameters encodes as an
// object schema with no properties.
func (f *FunctionDefinition) Schema() (json.RawMessage, error) {
	params := f.Parameters
	if params == nil {
		params = emptyParameters()
	}
	return json.Marshal(params)
}

func emptyParameters() *schema.PropertyDefinition {
	return schema.DefineObject(schema.NewProperties(), nil, nil, "", nil)
}

// SchemaFields encodes Parameters and splits the result into its top-level
// keywords. SDKs that accept the schema as a map keep the nested property
// order this way.
func (f *FunctionDefinition) SchemaFields() (map[string]json.RawMessage, error) {
	data, err := f.Schema()
	if err != nil {
		return nil, err
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}

// ToolChoice controls how the model uses the defined functions.
type ToolChoice string

const (
	// ToolChoiceAuto lets the model decide when to call a function (default).
	ToolChoiceAuto ToolChoice = "auto"
	// ToolChoiceNone disables function calls for the request.
	ToolChoiceNone ToolChoice = "none"
	// ToolChoiceRequired forces the model to call a function.
	ToolChoiceRequired ToolChoice = "required"
)
