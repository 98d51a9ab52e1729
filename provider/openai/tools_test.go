package openai

import (
	"encoding/json"
	"testing"

	"github.com/openai/openai-go"
	"github.com/spetersoncode/toolspec"
	"github.com/spetersoncode/toolspec/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func weatherDefinition() *toolspec.FunctionDefinition {
	return toolspec.NewFunctionDefinitionBuilder("get_weather", "Get the current weather").
		AddParameter("location", schema.DefineString("City name"), true).
		AddParameter("unit", schema.DefineEnum([]string{"celsius", "fahrenheit"}, ""), false).
		Build()
}

func TestToolParam(t *testing.T) {
	t.Run("converts definition", func(t *testing.T) {
		p, err := ToolParam(weatherDefinition())
		require.NoError(t, err)

		assert.Equal(t, "get_weather", p.Function.Name)
		assert.Equal(t, openai.String("Get the current weather"), p.Function.Description)

		data, err := json.Marshal(p.Function.Parameters)
		require.NoError(t, err)
		assert.Equal(t,
			`{"properties":{"location":{"type":"string","description":"City name"},"unit":{"type":"string","enum":["celsius","fahrenheit"]}},"required":["location"],"type":"object"}`,
			string(data))
	})

	t.Run("keeps property order", func(t *testing.T) {
		def := toolspec.NewFunctionDefinitionBuilder("f", "").
			AddParameter("zeta", schema.DefineString(""), false).
			AddParameter("alpha", schema.DefineString(""), false).
			Build()

		p, err := ToolParam(def)
		require.NoError(t, err)

		props, ok := p.Function.Parameters["properties"].(json.RawMessage)
		require.True(t, ok)
		assert.Equal(t, `{"zeta":{"type":"string"},"alpha":{"type":"string"}}`, string(props))
	})

	t.Run("omits empty description", func(t *testing.T) {
		p, err := ToolParam(&toolspec.FunctionDefinition{Name: "ping"})
		require.NoError(t, err)

		assert.Zero(t, p.Function.Description)
		assert.Equal(t, json.RawMessage(`"object"`), p.Function.Parameters["type"])
	})

	t.Run("carries strict mode", func(t *testing.T) {
		def := toolspec.NewFunctionDefinitionBuilder("f", "").StrictMode().Build()

		p, err := ToolParam(def)
		require.NoError(t, err)
		assert.Equal(t, json.RawMessage(`false`), p.Function.Parameters["additionalProperties"])
	})

	t.Run("sorts top-level keywords", func(t *testing.T) {
		def := toolspec.NewFunctionDefinitionBuilder("f", "").
			StrictMode().
			AddParameter("b", schema.DefineString(""), true).
			AddParameter("a", schema.DefineString(""), true).
			Build()

		p, err := ToolParam(def)
		require.NoError(t, err)

		data, err := json.Marshal(p.Function.Parameters)
		require.NoError(t, err)
		assert.Equal(t,
			`{"additionalProperties":false,"properties":{"b":{"type":"string"},"a":{"type":"string"}},"required":["b","a"],"type":"object"}`,
			string(data))
	})

	t.Run("rejects unsupported types", func(t *testing.T) {
		def := toolspec.NewFunctionDefinitionBuilder("f", "").
			AddParameter("x", &schema.PropertyDefinition{Type: schema.DataType(99)}, true).
			Build()

		_, err := ToolParam(def)
		assert.ErrorIs(t, err, schema.ErrUnsupportedType)
		assert.Contains(t, err.Error(), `openai: tool "f"`)
	})
}

func TestToolParams(t *testing.T) {
	t.Run("returns nil for no definitions", func(t *testing.T) {
		params, err := ToolParams(nil)
		require.NoError(t, err)
		assert.Nil(t, params)
	})

	t.Run("keeps definition order", func(t *testing.T) {
		params, err := ToolParams([]*toolspec.FunctionDefinition{
			weatherDefinition(),
			{Name: "ping"},
		})
		require.NoError(t, err)
		require.Len(t, params, 2)
		assert.Equal(t, "get_weather", params[0].Function.Name)
		assert.Equal(t, "ping", params[1].Function.Name)
	})
}

func TestToolChoice(t *testing.T) {
	tests := []struct {
		choice toolspec.ToolChoice
		want   string
	}{
		{toolspec.ToolChoiceAuto, "auto"},
		{toolspec.ToolChoiceNone, "none"},
		{toolspec.ToolChoiceRequired, "required"},
		{"", "auto"},
	}

	for _, tt := range tests {
		t.Run(string(tt.choice), func(t *testing.T) {
			assert.Equal(t, openai.String(tt.want), ToolChoice(tt.choice).OfAuto)
		})
	}
}
