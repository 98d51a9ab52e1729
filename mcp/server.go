package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spetersoncode/toolspec"
)

// Handler executes a call to one of the served definitions. Arguments
// holds the JSON object sent by the client.
type Handler func(ctx context.Context, name string, arguments json.RawMessage) (string, error)

// ServerOption configures a Server.
type ServerOption func(*serverConfig)

type serverConfig struct {
	name    string
	version string
}

// WithName sets the server name reported to MCP clients.
func WithName(name string) ServerOption {
	return func(c *serverConfig) {
		c.name = name
	}
}

// WithVersion sets the server version reported to MCP clients.
func WithVersion(version string) ServerOption {
	return func(c *serverConfig) {
		c.version = version
	}
}

// NewServer creates an MCP server that lists each definition as a tool and
// routes calls to handler. With a nil handler every call returns an error
// result, which is enough for clients that only inspect the schemas.
//
// Entries must be non-nil and names valid and unique.
//
// Example:
//
//	defs, err := toolspec.LoadDefinitionsFile("tools.yaml")
//	...
//	s, err := mcp.NewServer(defs, handle,
//	    mcp.WithName("weather-tools"),
//	    mcp.WithVersion("1.0.0"),
//	)
//	...
//	server.ServeStdio(s)
func NewServer(defs []*toolspec.FunctionDefinition, handler Handler, opts ...ServerOption) (*server.MCPServer, error) {
	cfg := &serverConfig{
		name:    "toolspec-mcp-server",
		version: "1.0.0",
	}
	for _, opt := range opts {
		opt(cfg)
	}

	s := server.NewMCPServer(
		cfg.name,
		cfg.version,
		server.WithToolCapabilities(true),
	)

	seen := make(map[string]bool, len(defs))
	for i, def := range defs {
		if def == nil {
			return nil, fmt.Errorf("definition %d: %w", i, toolspec.ErrNilDefinition)
		}
		if err := toolspec.ValidateName(def.Name); err != nil {
			return nil, err
		}
		if seen[def.Name] {
			return nil, fmt.Errorf("%w: %q", toolspec.ErrDuplicateName, def.Name)
		}
		seen[def.Name] = true

		t, err := ToMCPTool(def)
		if err != nil {
			return nil, err
		}
		s.AddTool(t, createMCPHandler(def.Name, handler))
	}

	return s, nil
}

// createMCPHandler adapts a Handler to an MCP tool handler for one tool.
func createMCPHandler(name string, handler Handler) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if handler == nil {
			return mcp.NewToolResultError(fmt.Sprintf("tool %q has no handler", name)), nil
		}

		args := json.RawMessage("{}")
		if req.Params.Arguments != nil {
			data, err := json.Marshal(req.Params.Arguments)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("failed to marshal arguments: %v", err)), nil
			}
			args = data
		}

		result, err := handler(ctx, name, args)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(result), nil
	}
}

// ServeStdio serves defs over stdin/stdout, the transport MCP clients use
// for servers they launch as subprocesses.
func ServeStdio(defs []*toolspec.FunctionDefinition, handler Handler, opts ...ServerOption) error {
	s, err := NewServer(defs, handler, opts...)
	if err != nil {
		return err
	}
	return server.ServeStdio(s)
}
