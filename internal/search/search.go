// Package search provides ownership-scoped file listing and content search.
//
// Files are selected by matching workspace paths against an owner's rendered
// glob set (include minus exclude), then optionally filtered by a regex over
// their content with familiar Unix semantics (-i, -v, -l, -c, -C flags).
// This is the consumer of the pattern set machinery: the same globs handed
// to external tools drive the built-in walker.
package search

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar"

	"github.com/jpl-au/codeowner/internal/codeowners"
)

// Options configures a search operation.
type Options struct {
	PathsOnly  bool // Only output paths (-l flag)
	IgnoreCase bool // Case insensitive search (-i flag)

	// Invert returns non-matching lines. Useful for filtering out noise
	// (e.g., "show me everything except import statements").
	Invert bool // Invert match (-v flag)

	// Context shows N lines around each match, enough to understand a hit
	// without opening the file.
	Context int // Lines of context around matches (-C flag)

	// CountOnly outputs just the match count per file. Quick scope check
	// ("how many TODOs in @org/backend's files?") before diving deeper.
	CountOnly bool // Only show count of matches (-c flag)

	// IgnoreDirs lists directory names skipped during the walk.
	IgnoreDirs []string

	// MaxLineLength is the maximum line length for scanning (0 = default 10MB).
	MaxLineLength int
}

// Match represents a single line match within a file.
type Match struct {
	Line    int    // 1-indexed line number
	Content string // The matching line content
}

// FileMatch represents all matches within a single file.
type FileMatch struct {
	Path    string // Workspace-relative path
	Matches []Match
}

// Result contains the outcome of a search operation.
type Result struct {
	Paths []string    // Files in scope (files listing)
	Hits  []FileMatch // Detailed match info (content search)
}

// Files walks the workspace rooted at root and returns the paths selected
// by the glob set: matching at least one include and no exclude. Paths are
// workspace-relative with forward slashes, in walk order.
func Files(ctx context.Context, root string, set codeowners.PatternSet, ignoreDirs []string) ([]string, error) {
	include := set.Rendered().Include
	exclude := set.Rendered().Exclude

	var paths []string
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if d.IsDir() {
			if p != root && slices.Contains(ignoreDirs, d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if matchesAny(include, rel) && !matchesAny(exclude, rel) {
			paths = append(paths, rel)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return paths, nil
}

// matchesAny reports whether the path matches at least one glob. Globs that
// fail to parse are skipped rather than failing the walk.
//
// A glob with a trailing slash (the rendering of an anchored directory
// pattern like "/api/") selects the directory's contents: the walk only
// ever sees file paths, so the bare form would match nothing.
func matchesAny(globs []string, path string) bool {
	for _, g := range globs {
		if strings.HasSuffix(g, "/") {
			g += "**/*"
		}
		if ok, err := doublestar.Match(g, path); err == nil && ok {
			return true
		}
	}
	return false
}

// Run searches the glob-selected files under root for a regex pattern and
// writes output to w.
func Run(ctx context.Context, w io.Writer, root string, set codeowners.PatternSet, pattern string, opts Options) (Result, error) {
	var result Result

	flags := ""
	if opts.IgnoreCase {
		flags = "(?i)"
	}
	re, err := regexp.Compile(flags + pattern)
	if err != nil {
		return result, fmt.Errorf("invalid regex: %w", err)
	}

	paths, err := Files(ctx, root, set, opts.IgnoreDirs)
	if err != nil {
		return result, err
	}
	result.Paths = paths

	for _, rel := range paths {
		content, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
		if err != nil {
			return result, fmt.Errorf("read %s: %w", rel, err)
		}
		if isBinary(content) {
			continue
		}

		matches, err := matchLines(re, string(content), opts.Invert, opts.MaxLineLength)
		if err != nil {
			return result, fmt.Errorf("scanning %s: %w", rel, err)
		}
		if len(matches) > 0 {
			result.Hits = append(result.Hits, FileMatch{
				Path:    rel,
				Matches: matches,
			})
		}
	}

	// Format output
	if opts.PathsOnly {
		for _, hit := range result.Hits {
			fmt.Fprintln(w, hit.Path)
		}
	} else if opts.CountOnly {
		for _, hit := range result.Hits {
			fmt.Fprintf(w, "%s:%d\n", hit.Path, len(hit.Matches))
		}
	} else if opts.Context > 0 {
		// Context output follows grep convention:
		// - ":" separates path:line:content for matching lines
		// - "-" separates path-line-content for context lines
		// - "--" separates non-contiguous match groups
		for _, hit := range result.Hits {
			content, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(hit.Path)))
			if err != nil {
				return result, fmt.Errorf("read %s: %w", hit.Path, err)
			}
			lines := strings.Split(string(content), "\n")
			printed := make(map[int]bool) // avoid duplicates when match windows overlap
			needSep := false

			for _, m := range hit.Matches {
				start := m.Line - opts.Context - 1 // convert to 0-indexed
				if start < 0 {
					start = 0
				}
				end := m.Line + opts.Context // exclusive upper bound for 0-indexed loop
				if end > len(lines) {
					end = len(lines)
				}

				if needSep && !printed[start] {
					fmt.Fprintln(w, "--")
				}

				for i := start; i < end; i++ {
					if printed[i] {
						continue
					}
					printed[i] = true
					lineNum := i + 1
					sep := "-" // context line
					if lineNum == m.Line {
						sep = ":" // matching line
					}
					fmt.Fprintf(w, "%s%s%d%s%s\n", hit.Path, sep, lineNum, sep, lines[i])
				}
				needSep = true
			}
		}
	} else {
		for _, hit := range result.Hits {
			for _, m := range hit.Matches {
				fmt.Fprintf(w, "%s:%d:%s\n", hit.Path, m.Line, m.Content)
			}
		}
	}

	return result, nil
}

// matchLines finds all lines matching the regex and returns Match structs.
// If invert is true, returns lines that do NOT match.
// Uses bufio.Scanner for memory efficiency - avoids allocating a slice of all
// lines upfront. Important when searching many large files where most won't match.
func matchLines(re *regexp.Regexp, content string, invert bool, maxLineLength int) ([]Match, error) {
	var matches []Match
	if maxLineLength <= 0 {
		maxLineLength = 10 * 1024 * 1024 // 10MB default
	}
	scanner := bufio.NewScanner(strings.NewReader(content))
	scanner.Buffer(make([]byte, 64*1024), maxLineLength)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if re.MatchString(line) != invert {
			matches = append(matches, Match{
				Line:    lineNum,
				Content: line,
			})
		}
	}
	if err := scanner.Err(); err != nil {
		return matches, err
	}
	return matches, nil
}

// isBinary reports whether content looks like binary data. A NUL byte in
// the first 8KB is the same heuristic git uses.
func isBinary(content []byte) bool {
	probe := content
	if len(probe) > 8192 {
		probe = probe[:8192]
	}
	for _, b := range probe {
		if b == 0 {
			return true
		}
	}
	return false
}
