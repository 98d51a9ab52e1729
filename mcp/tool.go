// Package mcp converts function definitions to and from Model Context
// Protocol tools (github.com/mark3labs/mcp-go).
//
// MCP clients such as Claude Desktop discover tools through their input
// schema; [ToMCPTool] hands the definition's parameters over as a raw
// schema so property order and every set keyword survive. [FromMCPTool]
// goes the other way for tools listed by an MCP server.
package mcp

import (
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/spetersoncode/toolspec"
	"github.com/spetersoncode/toolspec/schema"
)

// ToMCPTool converts a function definition to an MCP Tool whose
// RawInputSchema is the encoded parameters. A nil definition fails with
// toolspec.ErrNilDefinition.
func ToMCPTool(def *toolspec.FunctionDefinition) (mcp.Tool, error) {
	if def == nil {
		return mcp.Tool{}, fmt.Errorf("mcp: %w", toolspec.ErrNilDefinition)
	}
	raw, err := def.Schema()
	if err != nil {
		return mcp.Tool{}, fmt.Errorf("mcp: tool %q: %w", def.Name, err)
	}
	return mcp.NewToolWithRawSchema(def.Name, def.Description, raw), nil
}

// ToMCPTools converts a slice of function definitions to MCP Tools.
func ToMCPTools(defs []*toolspec.FunctionDefinition) ([]mcp.Tool, error) {
	result := make([]mcp.Tool, len(defs))
	for i, def := range defs {
		t, err := ToMCPTool(def)
		if err != nil {
			return nil, err
		}
		result[i] = t
	}
	return result, nil
}

// FromMCPTool converts an MCP Tool to a function definition.
// It decodes RawInputSchema when present and the structured InputSchema
// otherwise; keywords outside the supported subset are dropped. The name
// is not validated.
func FromMCPTool(t mcp.Tool) (*toolspec.FunctionDefinition, error) {
	raw := t.RawInputSchema
	if len(raw) == 0 {
		data, err := json.Marshal(t.InputSchema)
		if err != nil {
			return nil, fmt.Errorf("mcp: tool %q: %w", t.Name, err)
		}
		raw = data
	}

	params := &schema.PropertyDefinition{}
	if err := json.Unmarshal(raw, params); err != nil {
		return nil, fmt.Errorf("mcp: tool %q: decode input schema: %w", t.Name, err)
	}

	return &toolspec.FunctionDefinition{
		Name:        t.Name,
		Description: t.Description,
		Parameters:  params,
	}, nil
}

// FromMCPTools converts a slice of MCP Tools to function definitions.
func FromMCPTools(tools []mcp.Tool) ([]*toolspec.FunctionDefinition, error) {
	result := make([]*toolspec.FunctionDefinition, len(tools))
	for i, t := range tools {
		def, err := FromMCPTool(t)
		if err != nil {
			return nil, err
		}
		result[i] = def
	}
	return result, nil
}
