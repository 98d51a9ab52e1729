package toolspec

import (
	"testing"

	"github.com/spetersoncode/toolspec/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToolChoiceConstants(t *testing.T) {
	assert.Equal(t, ToolChoice("auto"), ToolChoiceAuto)
	assert.Equal(t, ToolChoice("none"), ToolChoiceNone)
	assert.Equal(t, ToolChoice("required"), ToolChoiceRequired)
}

func TestFunctionDefinitionSchema(t *testing.T) {
	t.Run("nil parameters", func(t *testing.T) {
		def := &FunctionDefinition{Name: "ping"}

		data, err := def.Schema()
		require.NoError(t, err)
		assert.Equal(t, `{"type":"object","properties":{}}`, string(data))
	})

	t.Run("encodes parameters", func(t *testing.T) {
		def := NewFunctionDefinitionBuilder("f", "").
			AddParameter("b", schema.DefineString(""), true).
			AddParameter("a", schema.DefineString(""), false).
			Build()

		data, err := def.Schema()
		require.NoError(t, err)
		assert.Equal(t, `{"type":"object","properties":{"b":{"type":"string"},"a":{"type":"string"}},"required":["b"]}`, string(data))
	})

	t.Run("unsupported type", func(t *testing.T) {
		def := &FunctionDefinition{Name: "f", Parameters: &schema.PropertyDefinition{Type: schema.DataType(9)}}

		_, err := def.Schema()
		assert.ErrorIs(t, err, schema.ErrUnsupportedType)
	})
}

func TestFunctionDefinitionSchemaFields(t *testing.T) {
	def := NewFunctionDefinitionBuilder("f", "").
		StrictMode().
		AddParameter("z", schema.DefineString(""), true).
		AddParameter("y", schema.DefineString(""), true).
		Build()

	fields, err := def.SchemaFields()
	require.NoError(t, err)

	assert.Len(t, fields, 4)
	assert.Equal(t, `"object"`, string(fields["type"]))
	assert.Equal(t, `{"z":{"type":"string"},"y":{"type":"string"}}`, string(fields["properties"]))
	assert.Equal(t, `["z","y"]`, string(fields["required"]))
	assert.Equal(t, `false`, string(fields["additionalProperties"]))
}
