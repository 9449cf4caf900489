// Package extension provides the plugin architecture for codeowner. Extensions
// encapsulate related functionality (commands, MCP tools) and register at
// init time, enabling modular feature development without touching core code.
package extension

import (
	"github.com/spf13/cobra"
)

// Extension defines the contract for codeowner extensions.
type Extension interface {
	// Name returns a unique identifier for this extension.
	Name() string

	// Commands returns CLI commands to register with the root command.
	Commands() []*cobra.Command

	// MCPTools returns MCP tools to register with the server.
	MCPTools() []MCPTool
}

// Initializable extensions can perform setup once the rule engine is ready.
type Initializable interface {
	Extension
	Init(ctx Context) error
}

// RulesFree is an optional interface for extensions with commands that
// don't require a loaded rule engine. Commands returned by
// NoRulesCommands() will not trigger engine initialisation in
// PersistentPreRunE.
//
// Use cases:
// 1. Bootstrap commands (like init) that run before a rule file exists
// 2. Commands operating on explicit file arguments rather than the workspace
// 3. Utility commands that don't touch ownership at all
type RulesFree interface {
	NoRulesCommands() []string
}
