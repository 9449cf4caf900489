// Package diff computes and formats differences between rule files.
//
// Two layers: a plain text diff of the rule file contents, and a semantic
// summary of what the change means for ownership (owners gained or lost,
// rules added or removed). The text layer tells you what changed; the
// semantic layer tells you who is affected.
package diff

import (
	"fmt"
	"io"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/jpl-au/codeowner/internal/codeowners"
)

// contextLines is the number of unchanged lines shown before/after changes.
// When equal sections exceed 2*contextLines, they're collapsed with "...".
const contextLines = 3

// Result holds diff output.
type Result struct {
	Old  string // old label
	New  string // new label
	Diff string // plain diff text

	Semantic Semantic // ownership-level summary
}

// Semantic summarises what a rule file change means for ownership.
type Semantic struct {
	OwnersAdded   []string // owners present only in the new file
	OwnersRemoved []string // owners present only in the old file
	RulesAdded    []string // rule lines present only in the new file
	RulesRemoved  []string // rule lines present only in the old file
}

// Empty reports whether the change has no ownership effect.
func (s Semantic) Empty() bool {
	return len(s.OwnersAdded) == 0 && len(s.OwnersRemoved) == 0 &&
		len(s.RulesAdded) == 0 && len(s.RulesRemoved) == 0
}

// Compute returns a diff between old and new rule file contents.
func Compute(oldContent, newContent, oldLabel, newLabel string) Result {
	dmp := diffmatchpatch.New()
	d := dmp.DiffMain(oldContent, newContent, false)
	d = dmp.DiffCleanupSemantic(d)

	return Result{
		Old:      oldLabel,
		New:      newLabel,
		Diff:     format(d),
		Semantic: semantic(oldContent, newContent),
	}
}

// Run computes a diff and writes the formatted output to w.
func Run(w io.Writer, oldContent, newContent, oldLabel, newLabel string, colour bool) Result {
	r := Compute(oldContent, newContent, oldLabel, newLabel)
	fmt.Fprint(w, r.Format(colour))
	return r
}

// semantic parses both contents and compares the resulting rule sets.
func semantic(oldContent, newContent string) Semantic {
	oldRules, oldOwners := codeowners.ParseRules(oldContent)
	newRules, newOwners := codeowners.ParseRules(newContent)

	return Semantic{
		OwnersAdded:   missingFrom(newOwners, oldOwners),
		OwnersRemoved: missingFrom(oldOwners, newOwners),
		RulesAdded:    missingFrom(ruleKeys(newRules), ruleKeys(oldRules)),
		RulesRemoved:  missingFrom(ruleKeys(oldRules), ruleKeys(newRules)),
	}
}

// ruleKeys renders rules in canonical "pattern owner..." form for comparison.
// Two rules differing only in whitespace compare equal.
func ruleKeys(rules []codeowners.Rule) []string {
	keys := make([]string, len(rules))
	for i, r := range rules {
		keys[i] = strings.TrimSpace(r.Pattern + " " + strings.Join(r.Owners, " "))
	}
	return keys
}

// missingFrom returns the elements of a that do not appear in b,
// preserving a's order and dropping duplicates.
func missingFrom(a, b []string) []string {
	in := make(map[string]bool, len(b))
	for _, s := range b {
		in[s] = true
	}
	var out []string
	seen := make(map[string]bool)
	for _, s := range a {
		if !in[s] && !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}

// format converts diffs to unified-style text.
func format(diffs []diffmatchpatch.Diff) string {
	var b strings.Builder
	for _, d := range diffs {
		// Trim trailing newline to avoid artefact empty string from Split
		text := strings.TrimSuffix(d.Text, "\n")
		if text == "" {
			continue
		}
		lines := strings.Split(text, "\n")
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			for _, l := range lines {
				b.WriteString("- " + l + "\n")
			}
		case diffmatchpatch.DiffInsert:
			for _, l := range lines {
				b.WriteString("+ " + l + "\n")
			}
		case diffmatchpatch.DiffEqual:
			if len(lines) > 2*contextLines {
				for i := range contextLines {
					b.WriteString("  " + lines[i] + "\n")
				}
				b.WriteString("  ...\n")
				for i := len(lines) - contextLines; i < len(lines); i++ {
					b.WriteString("  " + lines[i] + "\n")
				}
			} else {
				for _, l := range lines {
					b.WriteString("  " + l + "\n")
				}
			}
		}
	}
	return b.String()
}

// Colourise adds ANSI colours to diff output.
func Colourise(d string) string {
	const (
		red   = "\033[31m"
		green = "\033[32m"
		reset = "\033[0m"
	)

	var b strings.Builder
	for _, line := range strings.Split(d, "\n") {
		if line == "" {
			continue
		}
		switch {
		case strings.HasPrefix(line, "- "):
			b.WriteString(red + line + reset + "\n")
		case strings.HasPrefix(line, "+ "):
			b.WriteString(green + line + reset + "\n")
		default:
			b.WriteString(line + "\n")
		}
	}
	return b.String()
}

// Format returns the full diff with header and semantic summary.
func (r Result) Format(colour bool) string {
	header := fmt.Sprintf("--- %s\n+++ %s\n", r.Old, r.New)
	body := r.Diff
	if colour {
		body = Colourise(body)
	}
	return header + body + r.Semantic.Format()
}

// Format renders the semantic summary, or the empty string when the change
// has no ownership effect.
func (s Semantic) Format() string {
	if s.Empty() {
		return ""
	}
	var b strings.Builder
	b.WriteString("\nownership changes:\n")
	writeList := func(label string, items []string) {
		for _, item := range items {
			fmt.Fprintf(&b, "  %s %s\n", label, item)
		}
	}
	writeList("owner added:  ", s.OwnersAdded)
	writeList("owner removed:", s.OwnersRemoved)
	writeList("rule added:   ", s.RulesAdded)
	writeList("rule removed: ", s.RulesRemoved)
	return b.String()
}
