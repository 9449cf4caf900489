// patterns.go implements the "codeowner patterns" command.
//
// Separated from owners.go to isolate pattern set computation and the glob
// rendering used when patterns are handed to external search tools.
//
// Two synthetic owners extend the catalog: "unowned" selects files no rule
// covers, and "owned-by-all" selects everything under explicit ownership
// (the union of every owned rule's pattern).

package owners

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/spf13/cobra"

	"github.com/jpl-au/codeowner/cmd"
	"github.com/jpl-au/codeowner/extension"
	"github.com/jpl-au/codeowner/internal/codeowners"
	"github.com/jpl-au/codeowner/internal/format"
	"github.com/jpl-au/codeowner/internal/log"
	imcp "github.com/jpl-au/codeowner/internal/mcp"
)

// patternsJSON is the JSON shape for an owner's pattern set.
type patternsJSON struct {
	Owner   string   `json:"owner"`
	Include []string `json:"include"`
	Exclude []string `json:"exclude"`
}

func (e *Extension) newPatternsCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "patterns <owner>",
		Short: "Show the include/exclude patterns for an owner",
		Long: `Compute the pattern set selecting an owner's files: the patterns of
rules naming the owner (include), minus patterns of later rules that
override them in favour of someone else (exclude).

Synthetic owners:
  unowned       files not covered by any rule
  owned-by-all  files under explicit ownership (union of owned patterns)

  codeowner patterns @org/frontend
  codeowner patterns --globs @org/frontend   # render as search-tool globs
  codeowner patterns --join @org/frontend    # comma-joined globs for search tools
  codeowner patterns unowned`,
		Args: cobra.ExactArgs(1),
		RunE: e.runPatterns,
	}
	c.Flags().BoolP(extension.FlagGlobs, "g", false, "Render patterns as search-tool globs")
	c.Flags().BoolP(extension.FlagJoin, "j", false, "Print rendered globs comma-joined, one line per set")
	return c
}

func (e *Extension) runPatterns(c *cobra.Command, args []string) error {
	globs, _ := c.Flags().GetBool(extension.FlagGlobs)
	join, _ := c.Flags().GetBool(extension.FlagJoin)
	owner := args[0]

	set := e.eng.Snapshot().PatternsForOwner(owner)

	log.Event("owners:patterns", "list").
		Owner(owner).
		Detail("include", len(set.Include)).
		Detail("exclude", len(set.Exclude)).
		Write(nil)

	if cmd.JSON() {
		if globs || join {
			set = set.Rendered()
		}
		return cmd.PrintJSON(patternsJSON{
			Owner:   owner,
			Include: set.Include,
			Exclude: set.Exclude,
		})
	}

	if join {
		if set.Empty() {
			fmt.Fprintf(cmd.Out(), "%s: no files\n", owner)
			return nil
		}
		fmt.Fprintf(cmd.Out(), "include  %s\n", codeowners.JoinGlobs(set.Include))
		if len(set.Exclude) > 0 {
			fmt.Fprintf(cmd.Out(), "exclude  %s\n", codeowners.JoinGlobs(set.Exclude))
		}
		return nil
	}
	return format.Patterns(cmd.Out(), owner, set, globs)
}

// patternsTool defines the codeowner_patterns MCP tool.
func patternsTool() extension.MCPTool {
	return extension.MCPTool{
		Tool: mcp.NewTool("codeowner_patterns",
			mcp.WithDescription("Compute the include/exclude pattern set for an owner's files. Synthetic owners 'unowned' and 'owned-by-all' are supported."),
			mcp.WithString("owner", mcp.Required(), mcp.Description("Owner token (e.g. @org/frontend), or 'unowned'/'owned-by-all'")),
			mcp.WithBoolean("globs", mcp.Description("Render patterns as search-tool globs")),
		),
		Handler: handlePatterns,
	}
}

func handlePatterns(_ context.Context, extCtx extension.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	owner, err := req.RequireString("owner")
	if err != nil {
		return mcp.NewToolResultError("owner is required"), nil //nolint:nilerr
	}

	set := extCtx.Engine().Snapshot().PatternsForOwner(owner)
	if imcp.GetBool(req, "globs", false) {
		set = set.Rendered()
	}

	log.Event("mcp:codeowner_patterns", "list").
		Owner(owner).
		Detail("include", len(set.Include)).
		Detail("exclude", len(set.Exclude)).
		Write(nil)

	return imcp.JSONResult(patternsJSON{
		Owner:   owner,
		Include: set.Include,
		Exclude: set.Exclude,
	})
}
