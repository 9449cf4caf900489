// search.go implements the "codeowner search" command for regex content
// searching scoped by ownership.
//
// Separated from extension.go to isolate regex-specific logic. The command
// composes the pattern-set computation with the workspace grep: restrict the
// walk to an owner's files (or the unowned remainder), then match content
// with Go's regexp package using familiar Unix grep semantics (-i, -v, -l,
// -c flags).

package search

import (
	"context"
	"fmt"
	"io"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/spf13/cobra"

	"github.com/jpl-au/codeowner/cmd"
	"github.com/jpl-au/codeowner/extension"
	"github.com/jpl-au/codeowner/internal/codeowners"
	"github.com/jpl-au/codeowner/internal/log"
	imcp "github.com/jpl-au/codeowner/internal/mcp"
	"github.com/jpl-au/codeowner/internal/search"
)

func (e *Extension) newSearchCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "search <pattern>",
		Short: "Search file content using regex, scoped by owner",
		Long: `Search workspace files using regular expressions, like Unix grep.
By default every file is searched; --owner or --unowned restricts the
walk to the files an owner's pattern set selects.

  codeowner search "TODO"                          # search all files
  codeowner search --owner @org/backend "panic\("  # one owner's files
  codeowner search --unowned "TODO"                # files no rule covers
  codeowner search -l -i "deprecated"              # matching paths only`,
		Args: cobra.ExactArgs(1),
		RunE: e.runSearch,
	}
	c.Flags().String(extension.FlagOwner, "", "Restrict the search to an owner's files")
	c.Flags().BoolP(extension.FlagUnowned, "u", false, "Restrict the search to files no rule covers")
	c.Flags().BoolP(extension.FlagPathsOnly, "l", false, "Only output paths of matching files")
	c.Flags().BoolP(extension.FlagIgnoreCase, "i", false, "Ignore case distinctions")
	c.Flags().BoolP(extension.FlagInvertMatch, "v", false, "Select non-matching lines")
	c.Flags().BoolP(extension.FlagCount, "c", false, "Only print count of matches per file")
	c.Flags().IntP(extension.FlagContext, "C", 0, "Print N lines of context around matches")
	return c
}

func (e *Extension) runSearch(c *cobra.Command, args []string) error {
	pattern := args[0]

	owner, _ := c.Flags().GetString(extension.FlagOwner)
	unowned, _ := c.Flags().GetBool(extension.FlagUnowned)
	pathsOnly, _ := c.Flags().GetBool(extension.FlagPathsOnly)
	ignoreCase, _ := c.Flags().GetBool(extension.FlagIgnoreCase)
	invert, _ := c.Flags().GetBool(extension.FlagInvertMatch)
	countOnly, _ := c.Flags().GetBool(extension.FlagCount)
	context, _ := c.Flags().GetInt(extension.FlagContext)

	if owner != "" && unowned {
		return cmd.PrintJSONError(fmt.Errorf("cannot combine --owner with --unowned"))
	}
	if unowned {
		owner = codeowners.OwnerUnowned
	}
	if context < 0 {
		return cmd.PrintJSONError(fmt.Errorf("context lines (-C) must be >= 0, got %d", context))
	}
	if !c.Flags().Changed(extension.FlagContext) {
		context = e.cfg.ContextLines()
	}

	opts := search.Options{
		PathsOnly:  pathsOnly,
		IgnoreCase: ignoreCase,
		Invert:     invert,
		CountOnly:  countOnly,
		Context:    context,
		IgnoreDirs: e.cfg.IgnoreDirs(),
	}

	result, err := search.Run(c.Context(), cmd.Out(), e.ws.Root, e.scope(owner), pattern, opts)

	log.Event("search:search", "search").
		Owner(owner).
		Detail("pattern", pattern).
		Detail("files", len(result.Paths)).
		Detail("hits", len(result.Hits)).
		Write(err)

	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("search %q: %w", pattern, err))
	}

	if cmd.JSON() {
		return cmd.PrintJSON(result.Hits)
	}
	return nil
}

// scope returns the pattern set bounding a search. An empty owner means the
// whole workspace.
func (e *Extension) scope(owner string) codeowners.PatternSet {
	if owner == "" {
		return codeowners.PatternSet{Include: []string{"*"}}
	}
	return e.eng.Snapshot().PatternsForOwner(owner)
}

// searchTool defines the codeowner_search MCP tool.
func searchTool() extension.MCPTool {
	return extension.MCPTool{
		Tool: mcp.NewTool("codeowner_search",
			mcp.WithDescription("Search workspace file content with a regex, optionally restricted to one owner's files. Returns matches as {path, matches: [{line, content}]}."),
			mcp.WithString("pattern", mcp.Required(), mcp.Description("Go regular expression to search for")),
			mcp.WithString("owner", mcp.Description("Restrict to an owner's files (e.g. @org/frontend, or 'unowned')")),
			mcp.WithBoolean("ignore_case", mcp.Description("Ignore case distinctions")),
			mcp.WithBoolean("invert", mcp.Description("Select non-matching lines")),
		),
		Handler: handleSearch,
	}
}

func handleSearch(ctx context.Context, extCtx extension.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pattern, err := req.RequireString("pattern")
	if err != nil {
		return mcp.NewToolResultError("pattern is required"), nil //nolint:nilerr
	}
	owner := imcp.GetString(req, "owner", "")

	set := codeowners.PatternSet{Include: []string{"*"}}
	if owner != "" {
		if res := imcp.RequireRules(extCtx); res != nil {
			return res, nil
		}
		set = extCtx.Engine().Snapshot().PatternsForOwner(owner)
	}

	opts := search.Options{
		IgnoreCase: imcp.GetBool(req, "ignore_case", false),
		Invert:     imcp.GetBool(req, "invert", false),
		IgnoreDirs: extCtx.Config().IgnoreDirs(),
	}

	result, err := search.Run(ctx, io.Discard, extCtx.Workspace().Root, set, pattern, opts)

	log.Event("mcp:codeowner_search", "search").
		Owner(owner).
		Detail("pattern", pattern).
		Detail("hits", len(result.Hits)).
		Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return imcp.JSONResult(result.Hits)
}
