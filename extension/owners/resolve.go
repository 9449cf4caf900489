// resolve.go implements the "codeowner resolve" command.
//
// Separated from owners.go to isolate path normalisation and per-path
// output. Resolve accepts multiple paths so scripted callers can batch
// queries in one process start.

package owners

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/spf13/cobra"

	"github.com/jpl-au/codeowner/cmd"
	"github.com/jpl-au/codeowner/extension"
	"github.com/jpl-au/codeowner/internal/codeowners"
	"github.com/jpl-au/codeowner/internal/format"
	"github.com/jpl-au/codeowner/internal/log"
	imcp "github.com/jpl-au/codeowner/internal/mcp"
	"github.com/jpl-au/codeowner/internal/path"
)

// resolutionJSON is the JSON shape for a single resolution.
type resolutionJSON struct {
	Path    string   `json:"path"`
	Owners  []string `json:"owners"`
	Unowned bool     `json:"unowned"`
	Pattern string   `json:"pattern,omitempty"`
}

func (e *Extension) newResolveCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "resolve <path>...",
		Short: "Resolve the owners of one or more paths",
		Long: `Resolve file ownership using the loaded CODEOWNERS rules.

The last rule whose pattern matches a path wins. A path matching no rule,
or matching a rule with no owners, is unowned.

  codeowner resolve src/app.ts
  codeowner resolve src/app.ts api/server.js
  codeowner resolve --long src/app.ts    # show the deciding pattern`,
		Args: cobra.MinimumNArgs(1),
		RunE: e.runResolve,
	}
	c.Flags().BoolP(extension.FlagLong, "l", false, "Show the pattern that decided ownership")
	return c
}

func (e *Extension) runResolve(c *cobra.Command, args []string) error {
	long, _ := c.Flags().GetBool(extension.FlagLong)
	snap := e.eng.Snapshot()

	var results []resolutionJSON
	for _, arg := range args {
		var info codeowners.OwnershipInfo
		rel, err := path.Relative(e.ws.Root, arg)
		if err != nil {
			// A path that cannot be mapped into the workspace resolves
			// to the unowned default, not an error.
			rel, info = arg, codeowners.OwnershipInfo{Unowned: true}
			log.Event("owners:resolve", "resolve").Path(arg).Write(err)
		} else {
			info = snap.Resolve(rel)
			log.Event("owners:resolve", "resolve").Path(rel).Pattern(info.MatchingPattern).Write(nil)
		}

		if cmd.JSON() {
			results = append(results, resolutionJSON{
				Path:    rel,
				Owners:  info.Owners,
				Unowned: info.Unowned,
				Pattern: info.MatchingPattern,
			})
			continue
		}

		if long {
			_ = format.ResolutionLong(cmd.Out(), rel, info)
		} else {
			_ = format.Resolution(cmd.Out(), rel, info)
		}
	}

	if cmd.JSON() {
		return cmd.PrintJSON(results)
	}
	return nil
}

// resolveTool defines the codeowner_resolve MCP tool.
func resolveTool() extension.MCPTool {
	return extension.MCPTool{
		Tool: mcp.NewTool("codeowner_resolve",
			mcp.WithDescription("Resolve the owners of a file path using CODEOWNERS rules. The last matching rule wins; paths matching no rule are unowned."),
			mcp.WithString("path", mcp.Required(), mcp.Description("Workspace-relative file path")),
		),
		Handler: handleResolve,
	}
}

func handleResolve(_ context.Context, extCtx extension.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	p, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError("path is required"), nil //nolint:nilerr
	}

	var info codeowners.OwnershipInfo
	rel, err := path.Relative(extCtx.Workspace().Root, p)
	if err != nil {
		// Unmappable paths get the unowned default rather than an error.
		rel, info = p, codeowners.OwnershipInfo{Unowned: true}
		log.Event("mcp:codeowner_resolve", "resolve").Path(p).Write(err)
	} else {
		info = extCtx.Engine().Snapshot().Resolve(rel)
		log.Event("mcp:codeowner_resolve", "resolve").Path(rel).Pattern(info.MatchingPattern).Write(nil)
	}

	return imcp.JSONResult(resolutionJSON{
		Path:    rel,
		Owners:  info.Owners,
		Unowned: info.Unowned,
		Pattern: info.MatchingPattern,
	})
}
