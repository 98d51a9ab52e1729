package mcp

import (
	"context"
	"fmt"
	"sync"

	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/spetersoncode/toolspec"
)

// Catalog holds the function definitions listed by a remote MCP server.
//
// Catalog is safe for concurrent use. The list is cached locally and can
// be refreshed with [Catalog.Refresh].
type Catalog struct {
	client *client.Client

	mu     sync.RWMutex
	defs   []*toolspec.FunctionDefinition
	byName map[string]*toolspec.FunctionDefinition
}

// NewCatalog starts the MCP server at command over stdio and lists its tools.
//
// Example:
//
//	catalog, err := mcp.NewCatalog(ctx, "./weather-server", nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer catalog.Close()
//
//	params, err := openai.ToolParams(catalog.Definitions())
func NewCatalog(ctx context.Context, command string, env []string, args ...string) (*Catalog, error) {
	c, err := client.NewStdioMCPClient(command, env, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to create MCP client: %w", err)
	}

	return newCatalogFromClient(ctx, c)
}

// NewCatalogSSE connects to an MCP server over SSE and lists its tools.
func NewCatalogSSE(ctx context.Context, baseURL string) (*Catalog, error) {
	c, err := client.NewSSEMCPClient(baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create SSE MCP client: %w", err)
	}

	return newCatalogFromClient(ctx, c)
}

// NewCatalogFromClient creates a Catalog from an existing MCP client.
// The client is started and initialized here.
func NewCatalogFromClient(ctx context.Context, c *client.Client) (*Catalog, error) {
	return newCatalogFromClient(ctx, c)
}

func newCatalogFromClient(ctx context.Context, c *client.Client) (*Catalog, error) {
	if err := c.Start(ctx); err != nil {
		return nil, fmt.Errorf("failed to start MCP client: %w", err)
	}

	_, err := c.Initialize(ctx, mcp.InitializeRequest{
		Params: mcp.InitializeParams{
			ProtocolVersion: mcp.LATEST_PROTOCOL_VERSION,
			Capabilities:    mcp.ClientCapabilities{},
			ClientInfo: mcp.Implementation{
				Name:    "toolspec-mcp-client",
				Version: "1.0.0",
			},
		},
	})
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("failed to initialize MCP session: %w", err)
	}

	cat := &Catalog{client: c}
	if err := cat.Refresh(ctx); err != nil {
		c.Close()
		return nil, fmt.Errorf("failed to list tools: %w", err)
	}

	return cat, nil
}

// Close closes the connection to the MCP server.
func (c *Catalog) Close() error {
	return c.client.Close()
}

// Refresh fetches the current tool list from the MCP server. Names are
// kept as the server reports them and are not validated.
func (c *Catalog) Refresh(ctx context.Context) error {
	result, err := c.client.ListTools(ctx, mcp.ListToolsRequest{})
	if err != nil {
		return err
	}

	defs, err := FromMCPTools(result.Tools)
	if err != nil {
		return err
	}

	byName := make(map[string]*toolspec.FunctionDefinition, len(defs))
	for _, def := range defs {
		byName[def.Name] = def
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.defs = defs
	c.byName = byName
	return nil
}

// Definitions returns the definitions in the order the server listed them.
func (c *Catalog) Definitions() []*toolspec.FunctionDefinition {
	c.mu.RLock()
	defer c.mu.RUnlock()

	defs := make([]*toolspec.FunctionDefinition, len(c.defs))
	copy(defs, c.defs)
	return defs
}

// Definition returns the named definition.
func (c *Catalog) Definition(name string) (*toolspec.FunctionDefinition, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	def, ok := c.byName[name]
	return def, ok
}

// Names returns the tool names in listing order.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, len(c.defs))
	for i, def := range c.defs {
		names[i] = def.Name
	}
	return names
}

// Len returns the number of definitions.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.defs)
}

// Has reports whether the catalog has a definition with the given name.
func (c *Catalog) Has(name string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.byName[name]
	return ok
}
