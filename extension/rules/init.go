// init.go implements the "codeowner init" command.
//
// Separated from rules.go to isolate scaffolding logic. Init is special
// because it runs before a rule file exists, so it never touches the
// engine; it writes the starter file and lets the next invocation discover
// it.

package rules

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jpl-au/codeowner/cmd"
	"github.com/jpl-au/codeowner/extension"
	"github.com/jpl-au/codeowner/internal/log"
	"github.com/jpl-au/codeowner/internal/repo"
)

func newInitCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "init",
		Short: "Scaffold a starter CODEOWNERS file",
		Long: `Create a commented starter CODEOWNERS file in the workspace.

Use --location to pick one of the conventional locations:
  codeowner init --location .github/CODEOWNERS

Refuses to overwrite an existing file unless --force is given.`,
		Args: cobra.NoArgs,
		RunE: runInit,
	}
	c.Flags().String(extension.FlagLocation, repo.RuleFile, "Rule file location relative to the workspace root")
	c.Flags().BoolP(extension.FlagForce, "f", false, "Overwrite an existing rule file")
	return c
}

func runInit(c *cobra.Command, _ []string) error {
	location, _ := c.Flags().GetString(extension.FlagLocation)
	force, _ := c.Flags().GetBool(extension.FlagForce)

	dir := cmd.Root()
	if dir == "" {
		var err error
		dir, err = os.Getwd()
		if err != nil {
			return cmd.PrintJSONError(fmt.Errorf("init: %w", err))
		}
	}

	path, err := repo.Init(dir, location, force)

	log.Event("rules:init", "init").
		Path(path).
		Detail("location", location).
		Detail("force", force).
		Write(err)

	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("init: %w", err))
	}

	// Let interested extensions see the new file. Engine initialisation is
	// deferred until here so discovery picks up what we just wrote.
	if extCtx, cerr := cmd.Context(); cerr == nil {
		_ = extension.Dispatch(extCtx, extension.RulesInitEvent{Path: path})
	}

	if cmd.JSON() {
		return cmd.PrintJSON(map[string]string{"path": path})
	}
	fmt.Fprintf(cmd.Out(), "Initialised rule file at %s\n", path)
	return nil
}
