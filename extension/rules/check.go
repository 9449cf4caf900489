// check.go implements the "codeowner check" command.
//
// Separated from rules.go to isolate lint output. Check is the strict
// counterpart to the forgiving parse: it reports everything resolution
// silently tolerates, so rule file authors can see what their file
// actually does before relying on it.

package rules

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/spf13/cobra"

	"github.com/jpl-au/codeowner/cmd"
	"github.com/jpl-au/codeowner/extension"
	"github.com/jpl-au/codeowner/internal/log"
	imcp "github.com/jpl-au/codeowner/internal/mcp"
	"github.com/jpl-au/codeowner/internal/validate"
)

func (e *Extension) newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Lint the rule file",
		Long: `Parse the CODEOWNERS file strictly and report what the forgiving
parse would drop: owner tokens without '@', wildcard patterns that can
never match, and rules shadowed by an identical later pattern.

Exits non-zero when the file has findings.`,
		Args: cobra.NoArgs,
		RunE: e.runCheck,
	}
}

func (e *Extension) runCheck(c *cobra.Command, _ []string) error {
	content, err := e.ws.ReadRules()
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("check: %w", err))
	}

	report := validate.RuleFile(content)

	log.Event("rules:check", "check").
		Path(e.ws.RelRulePath()).
		Detail("rules", report.Rules).
		Detail("findings", len(report.Findings)).
		Write(nil)

	if cmd.JSON() {
		if err := cmd.PrintJSON(report); err != nil {
			return err
		}
		if !report.Clean() {
			// The report is the output; keep cobra from appending an
			// Error: line after the JSON document.
			c.SilenceErrors = true
			c.SilenceUsage = true
			return fmt.Errorf("%d finding(s)", len(report.Findings))
		}
		return nil
	}

	fmt.Fprintf(cmd.Out(), "%s: %d rules, %d owners, %d unowned\n",
		e.ws.RelRulePath(), report.Rules, report.Owners, report.Unowned)
	for _, f := range report.Findings {
		fmt.Fprintf(cmd.Out(), "line %d: %s\n", f.Line, f.Message)
	}
	if !report.Clean() {
		// Findings are already listed; usage output would bury them.
		c.SilenceUsage = true
		return fmt.Errorf("%d finding(s)", len(report.Findings))
	}
	fmt.Fprintln(cmd.Out(), "ok")
	return nil
}

// checkTool defines the codeowner_check MCP tool.
func checkTool() extension.MCPTool {
	return extension.MCPTool{
		Tool: mcp.NewTool("codeowner_check",
			mcp.WithDescription("Lint the CODEOWNERS file: report dropped owner tokens, invalid wildcard patterns, and shadowed rules as {line, message} findings."),
		),
		Handler: handleCheck,
	}
}

func handleCheck(_ context.Context, extCtx extension.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if res := imcp.RequireRules(extCtx); res != nil {
		return res, nil
	}

	content, err := extCtx.Workspace().ReadRules()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	report := validate.RuleFile(content)

	log.Event("mcp:codeowner_check", "check").
		Path(extCtx.Workspace().RelRulePath()).
		Detail("findings", len(report.Findings)).
		Write(nil)

	return imcp.JSONResult(report)
}
