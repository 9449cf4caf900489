// context.go defines the Context interface for extension access to codeowner internals.
//
// Separated from extension.go to isolate dependency injection concerns.
// The Context provides a controlled surface area for extensions - they can
// access what they need without reaching into arbitrary internals.
//
// Design: Context uses an interface to enable testing with mock implementations.
// Extensions receive Context during Init(), not at construction, to support
// the two-phase initialization pattern where extensions register before
// the rule engine is available.

package extension

import (
	"github.com/jpl-au/codeowner/internal/codeowners"
	"github.com/jpl-au/codeowner/internal/config"
	"github.com/jpl-au/codeowner/internal/repo"
)

// Context provides extensions controlled access to codeowner internals.
// Extensions receive this during initialisation to access shared resources.
type Context interface {
	// Engine returns the rule engine for ownership queries.
	Engine() *codeowners.Engine

	// Workspace returns the discovered workspace and rule file location.
	Workspace() repo.Workspace

	// Config returns user configuration for respecting user preferences.
	Config() *config.Config
}

// extContext implements Context.
type extContext struct {
	eng *codeowners.Engine
	ws  repo.Workspace
	cfg *config.Config
}

// NewContext creates a new extension context.
func NewContext(eng *codeowners.Engine, ws repo.Workspace, cfg *config.Config) Context {
	return &extContext{
		eng: eng,
		ws:  ws,
		cfg: cfg,
	}
}

// Engine returns the rule engine, the primary interface for ownership queries.
func (c *extContext) Engine() *codeowners.Engine {
	return c.eng
}

// Workspace returns the discovered workspace.
func (c *extContext) Workspace() repo.Workspace {
	return c.ws
}

// Config returns the loaded user configuration for respecting preferences.
func (c *extContext) Config() *config.Config {
	return c.cfg
}
