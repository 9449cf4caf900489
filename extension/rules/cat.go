// cat.go implements the "codeowner cat" command.
//
// Separated from rules.go to isolate output modes. Cat answers "which rule
// file is in effect and what does it say" - raw text by default, or the
// parsed rule table with --long.

package rules

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jpl-au/codeowner/cmd"
	"github.com/jpl-au/codeowner/extension"
	"github.com/jpl-au/codeowner/internal/format"
	"github.com/jpl-au/codeowner/internal/log"
)

// catJSON is the JSON shape for the effective rule file.
type catJSON struct {
	Path    string `json:"path"`
	Content string `json:"content"`
}

func (e *Extension) newCatCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "cat",
		Short: "Print the effective rule file",
		Long: `Print the CODEOWNERS file resolution is using, with its
workspace-relative location.

  codeowner cat          # raw file content
  codeowner cat --long   # parsed rules as an aligned table`,
		Args: cobra.NoArgs,
		RunE: e.runCat,
	}
	c.Flags().BoolP(extension.FlagLong, "l", false, "Print the parsed rule table instead of raw text")
	return c
}

func (e *Extension) runCat(c *cobra.Command, _ []string) error {
	long, _ := c.Flags().GetBool(extension.FlagLong)

	content, err := e.ws.ReadRules()

	log.Event("rules:cat", "read").
		Path(e.ws.RelRulePath()).
		Write(err)

	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("cat: %w", err))
	}

	if cmd.JSON() {
		return cmd.PrintJSON(catJSON{Path: e.ws.RelRulePath(), Content: content})
	}

	fmt.Fprintf(cmd.Out(), "# %s\n", e.ws.RelRulePath())
	if long {
		return format.Rules(cmd.Out(), e.eng.Rules())
	}
	fmt.Fprint(cmd.Out(), content)
	return nil
}
