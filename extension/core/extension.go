// Package core provides the core extension for codeowner.
// It registers commands: config, guide, serve, version.
package core

import (
	"github.com/spf13/cobra"

	"github.com/jpl-au/codeowner/extension"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the core extension.
type Extension struct{}

// Compile-time interface compliance. Catches missing methods at build time
// rather than runtime, making interface changes safer to refactor.
var (
	_ extension.Extension = (*Extension)(nil)
	_ extension.RulesFree = (*Extension)(nil)
)

// Name returns "core" - this extension provides fundamental codeowner commands.
func (e *Extension) Name() string { return "core" }

// Commands returns the core CLI commands.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		newConfigCmd(),
		newGuideCmd(),
		newServeCmd(),
		newVersionCmd(),
	}
}

// MCPTools returns nil - core commands have no MCP tool equivalents.
// MCP tools are provided by the query extensions (owners, search, rules).
func (e *Extension) MCPTools() []extension.MCPTool {
	return nil
}

// NoRulesCommands returns commands that manage their own engine lifecycle.
// serve: long-running MCP server controls load and reload timing itself.
func (e *Extension) NoRulesCommands() []string {
	return []string{"serve"}
}
