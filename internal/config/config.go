// Package config provides reading and writing of codeowner configuration.
// Supports both global (~/.codeowner/config.yaml) and local (.codeowner/config.yaml).
// Reading: uses local if it exists, otherwise global.
// Writing: defaults to global, use --local for local.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

var (
	// ErrNoConfigPath is returned when the config path cannot be determined.
	ErrNoConfigPath = errors.New("cannot determine config path")
	// ErrUnknownKey is returned when getting/setting an unknown config key.
	ErrUnknownKey = errors.New("unknown config key")
	// ErrInvalidValue is returned when a config value is invalid.
	ErrInvalidValue = errors.New("invalid config value")
)

// Scope represents the configuration scope (global or local).
type Scope int

const (
	// ScopeGlobal is user-wide config in ~/.codeowner/config.yaml (default)
	ScopeGlobal Scope = iota
	// ScopeLocal is workspace-specific config in .codeowner/config.yaml
	ScopeLocal
)

// Rules holds rule file discovery configuration.
type Rules struct {
	// Locations overrides the candidate rule file paths probed under the
	// workspace root, in precedence order.
	Locations []string `yaml:"locations,omitempty"`
}

// Search holds search-related configuration options.
type Search struct {
	// Ignore lists directory names skipped while walking the workspace.
	Ignore []string `yaml:"ignore,omitempty"`
	// Context is the number of context lines shown around content matches.
	Context *int `yaml:"context,omitempty"`
}

// Output holds output formatting options.
type Output struct {
	Color *bool `yaml:"color,omitempty"`
}

// Defaults applied when not configured.
var defaultIgnoreDirs = []string{".git", "node_modules", "vendor", "dist", "build", ".codeowner"}

// Validation bounds for configuration values.
const (
	MinContext = 0
	MaxContext = 100 // more context than this stops being context
)

// Config contains configuration for codeowner.
type Config struct {
	Rules  Rules  `yaml:"rules,omitempty"`
	Search Search `yaml:"search,omitempty"`
	Output Output `yaml:"output,omitempty"`

	// path is the file this config was loaded from (for Save)
	path  string
	scope Scope
}

// Validate checks that all configured values are within acceptable bounds.
// Returns nil if all values are valid or not set (defaults will be used).
func (c *Config) Validate() error {
	if c.Search.Context != nil {
		v := *c.Search.Context
		if v < MinContext || v > MaxContext {
			return fmt.Errorf("%w: search.context must be between %d and %d, got %d",
				ErrInvalidValue, MinContext, MaxContext, v)
		}
	}
	for _, loc := range c.Rules.Locations {
		if loc == "" || filepath.IsAbs(loc) {
			return fmt.Errorf("%w: rules.locations entries must be non-empty workspace-relative paths", ErrInvalidValue)
		}
	}
	return nil
}

// RuleLocations returns the candidate rule file locations, or nil when the
// builtin defaults should apply.
func (c *Config) RuleLocations() []string {
	return c.Rules.Locations
}

// IgnoreDirs returns the directory names skipped during workspace walks.
func (c *Config) IgnoreDirs() []string {
	if len(c.Search.Ignore) == 0 {
		return defaultIgnoreDirs
	}
	return c.Search.Ignore
}

// ContextLines returns the number of context lines for search output
// (defaults to 0).
func (c *Config) ContextLines() int {
	if c.Search.Context == nil {
		return 0
	}
	return *c.Search.Context
}

// ColorEnabled returns whether coloured output is enabled (defaults to true).
func (c *Config) ColorEnabled() bool {
	if c.Output.Color == nil {
		return true
	}
	return *c.Output.Color
}

// LocalPath returns the path to the local (workspace) config file.
func LocalPath() string {
	return filepath.Join(".codeowner", "config.yaml")
}

// GlobalPath returns the path to the global (user) config file: ~/.codeowner/config.yaml
func GlobalPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".codeowner", "config.yaml")
}

// Load reads configuration: uses local if it exists, otherwise global.
func Load() (*Config, error) {
	if _, err := os.Stat(LocalPath()); err == nil {
		return LoadScope(ScopeLocal)
	}
	return LoadScope(ScopeGlobal)
}

// LoadScope reads configuration from a specific scope.
func LoadScope(scope Scope) (*Config, error) {
	path := pathForScope(scope)
	if path == "" {
		return &Config{scope: scope}, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{path: path, scope: scope}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("malformed config file %s: %w\n\nTo fix: edit the file to correct the YAML syntax, or delete it to use defaults", path, err)
	}
	cfg.path = path
	cfg.scope = scope

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return &cfg, nil
}

// Scope returns which scope this config was loaded from.
func (c *Config) Scope() Scope {
	return c.scope
}

// Save writes the configuration to its original location.
func (c *Config) Save() error {
	if c.path == "" {
		c.path = pathForScope(c.scope)
	}
	if c.path == "" {
		return ErrNoConfigPath
	}
	return c.saveToPath(c.path)
}

// SaveScope writes the configuration to the specified scope.
func (c *Config) SaveScope(scope Scope) error {
	path := pathForScope(scope)
	if path == "" {
		return ErrNoConfigPath
	}
	return c.saveToPath(path)
}

// saveToPath writes configuration to a specific filesystem path.
// Creates parent directories as needed with mode 0755.
func (c *Config) saveToPath(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// pathForScope returns the filesystem path for a given scope.
func pathForScope(scope Scope) string {
	switch scope {
	case ScopeLocal:
		return LocalPath()
	case ScopeGlobal:
		return GlobalPath()
	default:
		return ""
	}
}
