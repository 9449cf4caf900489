// list.go implements the "codeowner owners" command.
//
// Separated from owners.go to keep the catalog listing and its synthetic
// owner handling apart from the extension wiring.

package owners

import (
	"context"
	"fmt"
	"slices"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/spf13/cobra"

	"github.com/jpl-au/codeowner/cmd"
	"github.com/jpl-au/codeowner/extension"
	"github.com/jpl-au/codeowner/internal/codeowners"
	"github.com/jpl-au/codeowner/internal/format"
	"github.com/jpl-au/codeowner/internal/log"
	imcp "github.com/jpl-au/codeowner/internal/mcp"
)

func (e *Extension) newOwnersCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "owners",
		Short: "List all owners named in the rule file",
		Long: `List the distinct owners appearing in the CODEOWNERS rules,
sorted and deduplicated.

  codeowner owners
  codeowner owners --all     # include the synthetic unowned/owned-by-all owners
  codeowner owners --long    # show how many rules name each owner`,
		Args: cobra.NoArgs,
		RunE: e.runOwners,
	}
	c.Flags().BoolP(extension.FlagAll, "a", false, "Include synthetic owners (unowned, owned-by-all)")
	c.Flags().BoolP(extension.FlagLong, "l", false, "Show the rule count per owner")
	return c
}

// ownerJSON is the JSON shape for one catalog entry in long mode.
type ownerJSON struct {
	Owner string `json:"owner"`
	Rules int    `json:"rules"`
}

func (e *Extension) runOwners(c *cobra.Command, _ []string) error {
	all, _ := c.Flags().GetBool(extension.FlagAll)
	long, _ := c.Flags().GetBool(extension.FlagLong)

	owners := e.eng.Owners()
	if all {
		owners = append(owners, codeowners.OwnerUnowned, codeowners.OwnerAll)
	}

	log.Event("owners:owners", "list").Detail("count", len(owners)).Write(nil)

	if long {
		counts := e.ruleCounts(owners)
		if cmd.JSON() {
			return cmd.PrintJSON(counts)
		}
		for _, oc := range counts {
			fmt.Fprintf(cmd.Out(), "%-4d %s\n", oc.Rules, oc.Owner)
		}
		return nil
	}

	if cmd.JSON() {
		return cmd.PrintJSON(owners)
	}
	return format.Owners(cmd.Out(), owners)
}

// ruleCounts pairs each owner with the number of rules naming it. Synthetic
// owners count the rules their pattern sets derive from: owner-less rules
// for unowned, owned rules for owned-by-all.
func (e *Extension) ruleCounts(owners []string) []ownerJSON {
	rules := e.eng.Rules()
	counts := make([]ownerJSON, len(owners))

	for i, o := range owners {
		counts[i].Owner = o
		for _, r := range rules {
			switch o {
			case codeowners.OwnerUnowned:
				if len(r.Owners) == 0 {
					counts[i].Rules++
				}
			case codeowners.OwnerAll:
				if len(r.Owners) > 0 {
					counts[i].Rules++
				}
			default:
				if slices.Contains(r.Owners, o) {
					counts[i].Rules++
				}
			}
		}
	}
	return counts
}

// ownersTool defines the codeowner_owners MCP tool.
func ownersTool() extension.MCPTool {
	return extension.MCPTool{
		Tool: mcp.NewTool("codeowner_owners",
			mcp.WithDescription("List the distinct owners named in the CODEOWNERS rules, sorted and deduplicated."),
			mcp.WithBoolean("all", mcp.Description("Include the synthetic owners 'unowned' and 'owned-by-all'")),
		),
		Handler: handleOwners,
	}
}

func handleOwners(_ context.Context, extCtx extension.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	owners := extCtx.Engine().Owners()
	if imcp.GetBool(req, "all", false) {
		owners = append(owners, codeowners.OwnerUnowned, codeowners.OwnerAll)
	}

	log.Event("mcp:codeowner_owners", "list").Detail("count", len(owners)).Write(nil)

	return imcp.JSONResult(owners)
}
