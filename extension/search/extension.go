// Package search provides file discovery and content searching over the
// workspace, scoped by ownership.
// Registers commands: files, search.
//
// Where the owners extension answers questions about the rules themselves,
// this extension evaluates them against the working tree: which files does
// an owner hold, and what do those files contain.
package search

import (
	"github.com/spf13/cobra"

	"github.com/jpl-au/codeowner/extension"
	"github.com/jpl-au/codeowner/internal/codeowners"
	"github.com/jpl-au/codeowner/internal/config"
	"github.com/jpl-au/codeowner/internal/repo"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the search extension.
type Extension struct {
	eng *codeowners.Engine
	ws  repo.Workspace
	cfg *config.Config
}

// Compile-time interface compliance. Catches missing methods at build time
// rather than runtime, making interface changes safer to refactor.
var (
	_ extension.Extension     = (*Extension)(nil)
	_ extension.Initializable = (*Extension)(nil)
)

// Name returns "search" - this extension provides workspace search commands.
func (e *Extension) Name() string { return "search" }

// Init connects to the shared rule engine and configuration.
func (e *Extension) Init(ctx extension.Context) error {
	e.eng = ctx.Engine()
	e.ws = ctx.Workspace()
	e.cfg = ctx.Config()
	return nil
}

// Commands returns the files and search commands.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		e.newFilesCmd(),
		e.newSearchCmd(),
	}
}

// MCPTools returns the MCP equivalents of the search commands.
func (e *Extension) MCPTools() []extension.MCPTool {
	return []extension.MCPTool{
		filesTool(),
		searchTool(),
	}
}
