// Command toolspec loads function definitions from a YAML or JSON file,
// validates them, and prints them in the request shape of a provider SDK.
//
// Usage:
//
//	toolspec [-format json|openai|anthropic|google|goopenai|mcp] [-strict] [-log-level level] FILE
//	toolspec -serve [-strict] FILE
//
// With -serve the definitions are exposed as tools of an MCP server on
// stdin/stdout instead of being printed. Calls echo their arguments back,
// which lets MCP clients and inspectors exercise the schemas.
//
// TOOLSPEC_FORMAT and TOOLSPEC_LOG_LEVEL (also read from .env) set the
// defaults for -format and -log-level.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spetersoncode/toolspec"
	"github.com/spetersoncode/toolspec/mcp"
	"github.com/spetersoncode/toolspec/provider/anthropic"
	"github.com/spetersoncode/toolspec/provider/google"
	"github.com/spetersoncode/toolspec/provider/goopenai"
	"github.com/spetersoncode/toolspec/provider/openai"
	"github.com/spetersoncode/toolspec/schema"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		slog.Error("toolspec failed", "error", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	cfg := LoadConfig()

	fs := flag.NewFlagSet("toolspec", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.Format, "format", cfg.Format, "output format: json, openai, anthropic, google, goopenai, mcp")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")
	fs.BoolVar(&cfg.Strict, "strict", false, "disallow additional properties on every parameters object")
	fs.BoolVar(&cfg.Serve, "serve", false, "serve the definitions as MCP tools over stdio")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("expected exactly one definitions file, got %d arguments", fs.NArg())
	}

	level, _ := cfg.Level()
	slog.SetDefault(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))

	path := fs.Arg(0)
	defs, err := toolspec.LoadDefinitionsFile(path)
	if err != nil {
		return err
	}
	slog.Debug("loaded definitions", "path", path, "count", len(defs))

	if cfg.Strict {
		for _, def := range defs {
			def.Parameters.AdditionalProperties = schema.Ptr(false)
		}
	}

	if cfg.Serve {
		slog.Info("serving definitions over MCP stdio", "count", len(defs))
		return mcp.ServeStdio(defs, echoArguments, mcp.WithName("toolspec"))
	}

	payload, err := render(cfg.Format, defs)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(payload); err != nil {
		return fmt.Errorf("encode %s output: %w", cfg.Format, err)
	}
	slog.Info("rendered definitions", "format", cfg.Format, "count", len(defs))
	return nil
}

func render(format string, defs []*toolspec.FunctionDefinition) (any, error) {
	switch format {
	case FormatOpenAI:
		return openai.ToolParams(defs)
	case FormatAnthropic:
		return anthropic.ToolParams(defs)
	case FormatGoogle:
		return google.Tools(defs)
	case FormatGoOpenAI:
		return goopenai.Tools(defs)
	case FormatMCP:
		return mcp.ToMCPTools(defs)
	default:
		return defs, nil
	}
}

// echoArguments answers a served tool call with the arguments it received.
func echoArguments(ctx context.Context, name string, arguments json.RawMessage) (string, error) {
	slog.Debug("tool called", "name", name, "arguments", string(arguments))
	return string(arguments), nil
}
