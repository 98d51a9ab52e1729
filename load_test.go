package toolspec

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spetersoncode/toolspec/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const weatherYAML = `
- name: get_weather
  description: Get the current weather
  parameters:
    type: object
    properties:
      location:
        type: string
        description: City name
      unit:
        type: string
        enum: [celsius, fahrenheit]
    required: [location]
- name: ping
`

func TestLoadDefinitions(t *testing.T) {
	defs, err := LoadDefinitions(strings.NewReader(weatherYAML))
	require.NoError(t, err)
	require.Len(t, defs, 2)

	weather := defs[0]
	assert.Equal(t, "get_weather", weather.Name)
	assert.Equal(t, "Get the current weather", weather.Description)
	assert.Equal(t, []string{"location", "unit"}, weather.Parameters.PropertyNames())
	assert.Equal(t, []string{"location"}, weather.Parameters.Required)

	unit, ok := weather.Parameters.Property("unit")
	require.True(t, ok)
	assert.Equal(t, []string{"celsius", "fahrenheit"}, unit.Enum)

	ping := defs[1]
	require.NotNil(t, ping.Parameters, "missing parameters get an empty object")
	assert.Equal(t, schema.TypeObject, ping.Parameters.Type)
	data, err := ping.Schema()
	require.NoError(t, err)
	assert.Equal(t, `{"type":"object","properties":{}}`, string(data))
}

func TestLoadDefinitionsMatchesBuilder(t *testing.T) {
	defs, err := LoadDefinitions(strings.NewReader(weatherYAML))
	require.NoError(t, err)

	built := NewFunctionDefinitionBuilder("get_weather", "Get the current weather").
		AddParameter("location", schema.DefineString("City name"), true).
		AddParameter("unit", schema.DefineEnum([]string{"celsius", "fahrenheit"}, ""), false).
		Build()

	want, err := built.Schema()
	require.NoError(t, err)
	got, err := defs[0].Schema()
	require.NoError(t, err)
	assert.Equal(t, string(want), string(got))
}

func TestLoadDefinitionsJSON(t *testing.T) {
	input := `[{"name":"search","parameters":{"type":"object","properties":{"q":{"type":"string"},"limit":{"type":"integer"},"cursor":{"type":"null"}},"additionalProperties":false}}]`

	defs, err := LoadDefinitions(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, defs, 1)

	params := defs[0].Parameters
	assert.Equal(t, []string{"q", "limit", "cursor"}, params.PropertyNames())
	require.NotNil(t, params.AdditionalProperties)
	assert.False(t, *params.AdditionalProperties)
	cursor, _ := params.Property("cursor")
	assert.Equal(t, schema.TypeNull, cursor.Type)
}

func TestLoadDefinitionsEmpty(t *testing.T) {
	for _, input := range []string{"", "# no definitions\n"} {
		defs, err := LoadDefinitions(strings.NewReader(input))
		require.NoError(t, err)
		assert.Nil(t, defs)
	}
}

func TestLoadDefinitionsErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
		wantMsg string
	}{
		{
			name:    "invalid name",
			input:   "- name: get weather\n",
			wantErr: ErrInvalidName,
			wantMsg: "definition 0:",
		},
		{
			name:    "duplicate name",
			input:   "- name: ping\n- name: pong\n- name: ping\n",
			wantErr: ErrDuplicateName,
			wantMsg: `definition 2: toolspec: duplicate function name: "ping"`,
		},
		{
			name:    "empty entry",
			input:   "- name: ping\n-\n",
			wantErr: ErrNilDefinition,
			wantMsg: "definition 1:",
		},
		{
			name:    "unsupported type",
			input:   "- name: f\n  parameters:\n    type: tuple\n",
			wantErr: schema.ErrUnsupportedType,
			wantMsg: "toolspec: decode definitions:",
		},
		{
			name:    "not a list",
			input:   "name: f\n",
			wantMsg: "toolspec: decode definitions:",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defs, err := LoadDefinitions(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Nil(t, defs)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestLoadDefinitionsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tools.yaml")
	require.NoError(t, os.WriteFile(path, []byte(weatherYAML), 0o600))

	defs, err := LoadDefinitionsFile(path)
	require.NoError(t, err)
	assert.Len(t, defs, 2)

	_, err = LoadDefinitionsFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
