// config_keys.go provides key-value access to configuration settings.
//
// Separated from config.go to isolate the key enumeration and string-based
// get/set logic. This separation allows config.go to focus on YAML structure
// and loading, while this file handles the MCP and CLI interface where config
// is accessed by string keys (e.g., "search.context").
//
// Design: Pointers are used for optional fields so we can distinguish between
// "not set" (nil) and "explicitly set to zero/false". This enables proper
// defaulting - we only apply defaults when the user hasn't set a value.

package config

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// ValidKeys returns all valid configuration keys.
func ValidKeys() []string {
	return []string{
		"rules.locations",
		"search.ignore", "search.context",
		"output.color",
	}
}

// IsValidKey returns true if the key is a valid configuration key.
func IsValidKey(key string) bool {
	return slices.Contains(ValidKeys(), key)
}

// Get returns the value of a configuration key as a string.
// List-valued keys render as comma-separated values.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "rules.locations":
		return strings.Join(c.Rules.Locations, ","), nil
	case "search.ignore":
		return strings.Join(c.IgnoreDirs(), ","), nil
	case "search.context":
		return strconv.Itoa(c.ContextLines()), nil
	case "output.color":
		return strconv.FormatBool(c.ColorEnabled()), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
}

// Set sets the value of a configuration key.
// List-valued keys accept comma-separated values.
func (c *Config) Set(key, value string) error {
	switch key {
	case "rules.locations":
		locs := splitList(value)
		probe := Config{Rules: Rules{Locations: locs}}
		if err := probe.Validate(); err != nil {
			return err
		}
		c.Rules.Locations = locs
	case "search.ignore":
		c.Search.Ignore = splitList(value)
	case "search.context":
		n, err := strconv.Atoi(value)
		if err != nil || n < MinContext || n > MaxContext {
			return fmt.Errorf("%w: search.context must be an integer between %d and %d", ErrInvalidValue, MinContext, MaxContext)
		}
		c.Search.Context = &n
	case "output.color":
		v := strings.ToLower(value)
		if v != "true" && v != "false" {
			return fmt.Errorf("%w: output.color must be true or false", ErrInvalidValue)
		}
		b := v == "true"
		c.Output.Color = &b
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return nil
}

// All returns all configuration values as a map.
func (c *Config) All() map[string]string {
	return map[string]string{
		"rules.locations": strings.Join(c.Rules.Locations, ","),
		"search.ignore":   strings.Join(c.IgnoreDirs(), ","),
		"search.context":  strconv.Itoa(c.ContextLines()),
		"output.color":    strconv.FormatBool(c.ColorEnabled()),
	}
}

// IsSet returns true if the key has an explicit value (not just defaults).
func (c *Config) IsSet(key string) bool {
	switch key {
	case "rules.locations":
		return len(c.Rules.Locations) > 0
	case "search.ignore":
		return len(c.Search.Ignore) > 0
	case "search.context":
		return c.Search.Context != nil
	case "output.color":
		return c.Output.Color != nil
	default:
		return false
	}
}

// splitList parses a comma-separated list, trimming whitespace and dropping
// empty entries.
func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
