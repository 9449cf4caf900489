/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// flags.go defines global CLI flags and accessors for shared state.
//
// Separated from root.go to isolate flag definitions from command logic.
// Extensions access these via exported accessor functions rather than
// directly accessing the variables.
//
// Design: Flags are defined as package-level variables and bound to the
// root command. Accessors are provided so extensions can read flag values
// without coupling to cobra internals. The JSON() helper simplifies output
// format detection across all commands.

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/spf13/cobra"

	"github.com/jpl-au/codeowner/internal/config"
)

var validOutputFormats = []string{"json"}

var (
	output   string
	root     string
	ruleFile string
	noColor  bool
)

// out is the output writer for commands. Defaults to os.Stdout.
// Tests can replace this to capture output.
var out io.Writer = os.Stdout

// Exported accessors for extensions.
// Extensions use these to access shared CLI state.

// Out returns the output writer.
func Out() io.Writer { return out }

// Output returns the output format flag value.
func Output() string { return output }

// Environment overrides, read once per process.
var (
	envOnce sync.Once
	envVals config.Env
)

func envVars() config.Env {
	envOnce.Do(func() {
		e, err := config.ReadEnv()
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
			return
		}
		envVals = e
	})
	return envVals
}

// Root returns the explicit workspace root if set.
// Priority: --root flag > CODEOWNER_ROOT env var > empty (use discovery).
func Root() string {
	if root != "" {
		return root
	}
	return envVars().Root
}

// RuleFile returns the explicit rule file path if set.
// Priority: --rule-file flag > CODEOWNER_RULE_FILE env var > empty (probe locations).
func RuleFile() string {
	if ruleFile != "" {
		return ruleFile
	}
	return envVars().RuleFile
}

// NoColor returns true if coloured output is disabled.
// Priority: --no-color flag > CODEOWNER_NO_COLOR env var > config output.color.
func NoColor() bool {
	if noColor || envVars().NoColor {
		return true
	}
	if extContext != nil {
		return !extContext.Config().ColorEnabled()
	}
	return false
}

// SetOut sets the output writer (for testing).
func SetOut(w io.Writer) { out = w }

// JSON returns true if JSON output is requested.
func JSON() bool { return output == "json" }

// PrintJSON marshals v to JSON and writes it to the output writer.
// Returns nil if output format is not JSON.
func PrintJSON(v any) error {
	if output != "json" {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	fmt.Fprintln(out, string(b))
	return nil
}

// PrintJSONError prints an error in JSON format if output is JSON.
// Returns nil if error was printed (suppressing Cobra error), or the original error if not.
func PrintJSONError(err error) error {
	if output != "json" || err == nil {
		return err
	}
	// We ignore the error from PrintJSON here because if we can't print the error,
	// checking it is futile. We just return nil to suppress Cobra's duplicate printing.
	_ = PrintJSON(map[string]string{"error": err.Error()})
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "", "Output format: json")
	rootCmd.PersistentFlags().StringVar(&root, "root", "", "Workspace root (skip discovery, use explicit path)")
	rootCmd.PersistentFlags().StringVar(&ruleFile, "rule-file", "", "Rule file path (skip location probing)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable coloured output")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return validOutputFormats, cobra.ShellCompDirectiveNoFileComp
	})
}
