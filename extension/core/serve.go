// serve.go implements the "codeowner serve" command for MCP server operation.
//
// Separated from extension.go because serve has unique lifecycle
// requirements. Unlike other commands that run and exit, serve blocks
// indefinitely handling MCP requests over stdio.
//
// Design: Serve is a NoRulesCommand - it initialises the engine itself via
// cmd.Context() so that a missing rule file starts the server in unowned
// mode instead of failing, and so --watch can re-load rules on its own
// schedule.

package core

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jpl-au/codeowner/cmd"
	"github.com/jpl-au/codeowner/extension"
	"github.com/jpl-au/codeowner/internal/mcp"
)

func newServeCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "serve",
		Short: "Start MCP server",
		Long: `Start an MCP (Model Context Protocol) server over stdio for LLM
integration. The server exposes the query commands as tools and the
rule file as a resource.

Use --watch to reload rules when the CODEOWNERS file changes:
  codeowner serve --watch`,
		RunE: runServe,
	}
	c.Flags().BoolP(extension.FlagWatch, "w", false, "Reload rules when the rule file changes")
	return c
}

func runServe(c *cobra.Command, _ []string) error {
	watch, _ := c.Flags().GetBool(extension.FlagWatch)

	extCtx, err := cmd.Context()
	if err != nil {
		return fmt.Errorf("serve: %w", err)
	}
	return mcp.Serve(extCtx, watch)
}
