// parse.go implements the CODEOWNERS line grammar.
//
// The grammar is deliberately forgiving: parsing never fails. Malformed
// lines degrade to owner-less rules or are skipped, so one bad line cannot
// take down resolution for the rest of the file.

package codeowners

import (
	"sort"
	"strings"
)

// ParseRules parses raw CODEOWNERS text into an ordered rule list and the
// sorted catalog of owner tokens found across all owned rules.
//
// Line grammar: `<pattern> <owner1> <owner2> ...`
//   - blank lines and lines starting with "#" are skipped
//   - fields are split on runs of whitespace; the first field is the pattern
//   - a field counts as an owner only if it contains "@" (@user, @org/team,
//     or an email address); anything else is dropped silently, which
//     tolerates trailing comments and malformed entries
//   - a pattern line with no surviving owners becomes an owners-empty rule,
//     an explicit "unowned" declaration - not a parse error
func ParseRules(content string) ([]Rule, []string) {
	lines := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")

	rules := make([]Rule, 0, len(lines))
	catalog := make(map[string]struct{})

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		pattern := fields[0]

		var owners []string
		for _, tok := range fields[1:] {
			if !strings.Contains(tok, "@") {
				continue
			}
			owners = append(owners, tok)
			catalog[tok] = struct{}{}
		}

		rules = append(rules, Rule{Pattern: pattern, Owners: owners})
	}

	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)

	return rules, names
}
