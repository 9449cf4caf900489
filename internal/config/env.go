// env.go reads process environment overrides.
//
// Environment variables sit above config files and below command line
// flags: a flag always wins, an env var beats both config scopes. This
// matches the usual CLI layering and keeps CI overrides simple.

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds the environment overrides recognised by every command.
type Env struct {
	// RuleFile names the rule file directly, bypassing location probing.
	RuleFile string `env:"CODEOWNER_RULE_FILE"`
	// Root pins the workspace root, bypassing upward discovery.
	Root string `env:"CODEOWNER_ROOT"`
	// NoColor disables coloured output regardless of config.
	NoColor bool `env:"CODEOWNER_NO_COLOR"`
}

// ReadEnv parses the process environment.
func ReadEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("parse environment: %w", err)
	}
	return e, nil
}
