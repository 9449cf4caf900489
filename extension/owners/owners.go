// Package owners provides the core ownership query commands.
// Registers commands: resolve, owners, patterns.
//
// These are the read side of the rule engine: given the loaded CODEOWNERS
// rules, answer who owns a path, who the owners are, and which patterns an
// owner's files fall under. Each command file is separated to isolate its
// specific flag handling and output formatting logic.
package owners

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

// Extension implements the owners extension.
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

// Name returns "owners" - this extension provides ownership query commands.
func (e *Extension) Name() string { return "owners" }

// Init connects to the shared rule engine.
func (e *Extension) Init(ctx extension.Context) error {
	e.eng = ctx.Engine()
	e.ws = ctx.Workspace()
	e.cfg = ctx.Config()
	return nil
}

// Commands returns the ownership query commands.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		e.newResolveCmd(),
		e.newOwnersCmd(),
		e.newPatternsCmd(),
	}
}

// MCPTools returns the MCP equivalents of the query commands.
func (e *Extension) MCPTools() []extension.MCPTool {
	return []extension.MCPTool{
		resolveTool(),
		ownersTool(),
		patternsTool(),
	}
}
