// files.go implements the "codeowner files" command.
//
// Separated from extension.go to isolate the workspace walk. Files turns an
// owner's pattern set into an actual file listing by evaluating the rendered
// include/exclude globs against the working tree.

package search

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
	"github.com/jpl-au/codeowner/internal/search"
)

func (e *Extension) newFilesCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "files [owner]",
		Short: "List the files an owner holds",
		Long: `Walk the workspace and list the files selected by an owner's
include/exclude pattern set. Directories named in search.ignore are skipped.

  codeowner files @org/frontend
  codeowner files --tree @org/frontend   # render as a directory tree
  codeowner files --unowned              # files no rule covers
  codeowner files owned-by-all`,
		Args: cobra.MaximumNArgs(1),
		RunE: e.runFiles,
	}
	c.Flags().BoolP(extension.FlagTree, "t", false, "Render the listing as a directory tree")
	c.Flags().BoolP(extension.FlagUnowned, "u", false, "List files no rule covers")
	return c
}

func (e *Extension) runFiles(c *cobra.Command, args []string) error {
	tree, _ := c.Flags().GetBool(extension.FlagTree)
	unowned, _ := c.Flags().GetBool(extension.FlagUnowned)

	owner, err := pickOwner(args, unowned)
	if err != nil {
		return cmd.PrintJSONError(err)
	}

	set := e.eng.Snapshot().PatternsForOwner(owner)
	paths, err := search.Files(c.Context(), e.ws.Root, set, e.cfg.IgnoreDirs())

	log.Event("search:files", "list").
		Owner(owner).
		Detail("count", len(paths)).
		Write(err)

	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("files for %q: %w", owner, err))
	}

	if cmd.JSON() {
		return cmd.PrintJSON(paths)
	}
	if tree {
		return format.Tree(cmd.Out(), paths)
	}
	return format.Paths(cmd.Out(), paths)
}

// pickOwner resolves the owner argument against the --unowned shorthand.
// Exactly one of the two must be given.
func pickOwner(args []string, unowned bool) (string, error) {
	switch {
	case unowned && len(args) > 0:
		return "", fmt.Errorf("cannot combine --unowned with an owner argument")
	case unowned:
		return codeowners.OwnerUnowned, nil
	case len(args) == 0:
		return "", fmt.Errorf("an owner argument or --unowned is required")
	default:
		return args[0], nil
	}
}

// filesTool defines the codeowner_files MCP tool.
func filesTool() extension.MCPTool {
	return extension.MCPTool{
		Tool: mcp.NewTool("codeowner_files",
			mcp.WithDescription("List the workspace files an owner holds, by evaluating the owner's include/exclude pattern set against the working tree. Synthetic owners 'unowned' and 'owned-by-all' are supported."),
			mcp.WithString("owner", mcp.Required(), mcp.Description("Owner token (e.g. @org/frontend), or 'unowned'/'owned-by-all'")),
		),
		Handler: handleFiles,
	}
}

func handleFiles(ctx context.Context, extCtx extension.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if res := imcp.RequireRules(extCtx); res != nil {
		return res, nil
	}

	owner, err := req.RequireString("owner")
	if err != nil {
		return mcp.NewToolResultError("owner is required"), nil //nolint:nilerr
	}

	set := extCtx.Engine().Snapshot().PatternsForOwner(owner)
	paths, err := search.Files(ctx, extCtx.Workspace().Root, set, extCtx.Config().IgnoreDirs())

	log.Event("mcp:codeowner_files", "list").
		Owner(owner).
		Detail("count", len(paths)).
		Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return imcp.JSONResult(paths)
}
