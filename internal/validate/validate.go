// Package validate lints CODEOWNERS rule files.
//
// The parser in internal/codeowners is deliberately forgiving: malformed
// owner tokens are dropped and bad wildcards degrade to non-matches, so a
// broken line never takes down resolution. This package is the strict
// counterpart, surfacing everything the forgiving parse swallowed so that
// `codeowner check` can report it.
//
// Findings carry the 1-indexed line number of the offending rule line and a
// human-readable message. An empty finding list means the file is clean.
package validate

import (
	"fmt"
	"strings"

	"github.com/jpl-au/codeowner/internal/codeowners"
)

// Finding is a single lint result.
type Finding struct {
	Line    int    `json:"line"`
	Message string `json:"message"`
}

// Report summarises a linted rule file.
type Report struct {
	Rules    int       `json:"rules"`
	Owners   int       `json:"owners"`
	Unowned  int       `json:"unowned"`
	Findings []Finding `json:"findings"`
}

// Clean reports whether the lint produced no findings.
func (r Report) Clean() bool { return len(r.Findings) == 0 }

// RuleFile lints raw CODEOWNERS text. It re-walks the line grammar rather
// than using the parsed rules because findings need the details the parse
// throws away: dropped tokens and line numbers.
//
// Checks:
//   - owner tokens without "@" (dropped silently at parse time)
//   - wildcard patterns that cannot translate to a valid matcher
//   - rules shadowed by an identical later pattern (the earlier rule can
//     never win under last-match ordering)
func RuleFile(content string) Report {
	rules, owners := codeowners.ParseRules(content)

	report := Report{
		Rules:  len(rules),
		Owners: len(owners),
	}
	for _, r := range rules {
		if len(r.Owners) == 0 {
			report.Unowned++
		}
	}

	lastLine := map[string]int{} // pattern -> last rule line seen
	lines := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")

	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		n := i + 1

		fields := strings.Fields(line)
		pattern := fields[0]

		for _, tok := range fields[1:] {
			if !strings.Contains(tok, "@") {
				report.Findings = append(report.Findings, Finding{
					Line:    n,
					Message: fmt.Sprintf("owner token %q has no '@' and is ignored", tok),
				})
			}
		}

		if err := codeowners.CheckPattern(pattern); err != nil {
			report.Findings = append(report.Findings, Finding{
				Line:    n,
				Message: fmt.Sprintf("wildcard pattern %q never matches: %v", pattern, err),
			})
		}

		if prev, ok := lastLine[pattern]; ok {
			report.Findings = append(report.Findings, Finding{
				Line:    prev,
				Message: fmt.Sprintf("rule for %q is shadowed by the identical pattern on line %d", pattern, n),
			})
		}
		lastLine[pattern] = n
	}

	return report
}
