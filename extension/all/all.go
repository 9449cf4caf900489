// Package all imports all core codeowner extensions.
// Import this package to register all built-in commands.
package all

import (
	// Core extensions - each registers itself via init()
	_ "github.com/jpl-au/codeowner/extension/core"
	_ "github.com/jpl-au/codeowner/extension/owners"
	_ "github.com/jpl-au/codeowner/extension/rules"
	_ "github.com/jpl-au/codeowner/extension/search"
)
