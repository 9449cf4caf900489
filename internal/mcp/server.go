// Package mcp implements the Model Context Protocol server, exposing
// ownership queries to LLMs. This enables AI assistants to resolve owners,
// enumerate pattern sets, and search owned files through a standardised
// protocol.
package mcp

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/jpl-au/codeowner/extension"
	"github.com/jpl-au/codeowner/internal/watch"
)

// Version is advertised to clients for capability negotiation.
const Version = "1.0.0"

// ErrNoRules is returned by tools when no rule file was found.
// The LLM should ask the user to run codeowner init or point at a rule file.
const ErrNoRules = "no CODEOWNERS file found - every path resolves as unowned"

// Serve starts the MCP server over stdio, enabling LLM integration.
// Uses stdio transport for compatibility with Claude Desktop and other MCP clients.
//
// Design: The server starts successfully even if no rule file exists. Tools
// still answer (every path resolves as unowned) and report the missing file,
// rather than failing with an opaque startup error. Tool definitions come
// from the registered extensions.
func Serve(extCtx extension.Context, watchRules bool) error {
	// Log to stderr; stdout is reserved for MCP JSON-RPC messages
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	ws := extCtx.Workspace()
	if !ws.Found() {
		slog.Info("no rule file found, serving in unowned mode")
	}

	s := server.NewMCPServer(
		"codeowner",
		Version,
		server.WithResourceCapabilities(true, false),
		server.WithToolCapabilities(true),
	)

	registerResources(s, extCtx)

	for _, ext := range extension.All() {
		for _, t := range ext.MCPTools() {
			s.AddTool(t.Tool, bind(t.Handler, extCtx))
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if watchRules && ws.Found() {
		w, err := watch.New(ws.RulePath, 0, func() error {
			content, err := ws.ReadRules()
			if err != nil {
				return err
			}
			extCtx.Engine().Load(content, ws.RelRulePath())
			snap := extCtx.Engine().Snapshot()
			return extension.Dispatch(extCtx, extension.RulesReloadEvent{
				Path:   ws.RulePath,
				Rules:  len(snap.Rules),
				Owners: len(snap.Owners),
			})
		})
		if err != nil {
			return err
		}
		go func() {
			if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				slog.Error("rule file watcher stopped", "error", err)
			}
		}()
	}

	slog.Info("codeowner MCP server ready", "version", Version, "transport", "stdio")

	err := server.ServeStdio(s)
	if errors.Is(err, context.Canceled) {
		slog.Info("server stopped")
		return nil
	}
	return err
}

// bind adapts an extension MCP handler to the mcp-go handler signature,
// injecting the shared extension context.
func bind(h extension.MCPHandler, extCtx extension.Context) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return h(ctx, extCtx, req)
	}
}

// RequireRules returns an error result if no rule file was found.
// Tools that need real rules (as opposed to unowned defaults) call this first.
func RequireRules(extCtx extension.Context) *mcp.CallToolResult {
	if !extCtx.Engine().HasRuleFile() {
		return mcp.NewToolResultError(ErrNoRules)
	}
	return nil
}
