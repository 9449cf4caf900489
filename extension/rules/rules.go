// Package rules provides commands that operate on the rule file itself.
// Registers commands: check, cat, diff, init.
//
// Where the owners and search extensions consume the parsed rules, this
// extension manages their source: scaffolding a starter file, printing the
// effective one, linting it, and comparing revisions.
package rules

import (
	"github.com/spf13/cobra"

	"github.com/jpl-au/codeowner/extension"
	"github.com/jpl-au/codeowner/internal/codeowners"
	"github.com/jpl-au/codeowner/internal/repo"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the rules extension.
type Extension struct {
	eng *codeowners.Engine
	ws  repo.Workspace
}

// Compile-time interface compliance. Catches missing methods at build time
// rather than runtime, making interface changes safer to refactor.
var (
	_ extension.Extension     = (*Extension)(nil)
	_ extension.Initializable = (*Extension)(nil)
	_ extension.RulesFree     = (*Extension)(nil)
)

// Name returns "rules" - this extension provides rule file management commands.
func (e *Extension) Name() string { return "rules" }

// Init connects to the shared rule engine and workspace.
func (e *Extension) Init(ctx extension.Context) error {
	e.eng = ctx.Engine()
	e.ws = ctx.Workspace()
	return nil
}

// Commands returns the rule file management commands.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		e.newCheckCmd(),
		e.newCatCmd(),
		e.newDiffCmd(),
		newInitCmd(),
	}
}

// MCPTools returns the rule file inspection tools.
func (e *Extension) MCPTools() []extension.MCPTool {
	return []extension.MCPTool{
		checkTool(),
	}
}

// NoRulesCommands returns the commands that work without a loaded engine.
// Diff can compare two explicit files with no workspace at all; it
// initialises the engine itself when it needs the workspace rule file.
func (e *Extension) NoRulesCommands() []string {
	return []string{"diff"}
}
