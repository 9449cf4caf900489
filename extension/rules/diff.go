// diff.go implements the "codeowner diff" command.
//
// Separated from rules.go to isolate the comparison flow. Diff reads its
// inputs directly from disk rather than via the engine so that proposed
// rule files can be compared before they are ever loaded. With a single
// argument the workspace rule file is the old side, which is the common
// "what would this change do" review flow.

package rules

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jpl-au/codeowner/cmd"
	"github.com/jpl-au/codeowner/internal/diff"
	"github.com/jpl-au/codeowner/internal/log"
)

func (e *Extension) newDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff [old] <new>",
		Short: "Compare two rule file revisions",
		Long: `Show what changed between two CODEOWNERS revisions: a text diff
plus the ownership-level summary (owners and rules added or removed).

With one argument the workspace rule file is the old side:

  codeowner diff proposed-CODEOWNERS
  codeowner diff v1/CODEOWNERS v2/CODEOWNERS`,
		Args: cobra.RangeArgs(1, 2),
		RunE: e.runDiff,
	}
}

func (e *Extension) runDiff(c *cobra.Command, args []string) error {
	var oldContent, oldLabel string

	if len(args) == 2 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return cmd.PrintJSONError(fmt.Errorf("diff: %w", err))
		}
		oldContent, oldLabel = string(data), args[0]
		args = args[1:]
	} else {
		// Single-argument mode needs the workspace; diff is otherwise
		// rules-free, so initialise on demand.
		extCtx, err := cmd.Context()
		if err != nil {
			return cmd.PrintJSONError(fmt.Errorf("diff: %w", err))
		}
		ws := extCtx.Workspace()
		oldContent, err = ws.ReadRules()
		if err != nil {
			return cmd.PrintJSONError(fmt.Errorf("diff: %w", err))
		}
		oldLabel = ws.RelRulePath()
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("diff: %w", err))
	}

	var result diff.Result
	if cmd.JSON() {
		result = diff.Compute(oldContent, string(data), oldLabel, args[0])
	} else {
		result = diff.Run(cmd.Out(), oldContent, string(data), oldLabel, args[0], !cmd.NoColor())
	}

	log.Event("rules:diff", "compare").
		Path(oldLabel).
		Detail("new", args[0]).
		Detail("owners_added", len(result.Semantic.OwnersAdded)).
		Detail("owners_removed", len(result.Semantic.OwnersRemoved)).
		Write(nil)

	if cmd.JSON() {
		return cmd.PrintJSON(result)
	}
	return nil
}
