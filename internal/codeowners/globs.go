// globs.go renders CODEOWNERS patterns as search-tool globs.
//
// The rendering is intentionally lossy relative to the matcher in match.go:
// a directory pattern like "docs/" matches "a/docs/b.txt" during
// resolution, but renders to the root-relative glob "docs/**/*". Downstream
// consumers (filesToInclude/filesToExclude style search parameters) expect
// exactly this glob shape; do not "fix" the asymmetry.

package codeowners

import "strings"

// CatchAllGlob selects every file in the workspace.
const CatchAllGlob = "**/*"

// RenderGlob maps one CODEOWNERS pattern to a search-tool glob. The first
// applicable mapping wins:
//
//	"*"        -> "**/*"               everything
//	"/src/x"   -> "src/x"              root-relative, no "**/" prefix
//	"docs/"    -> "docs/**/*"          directory contents, recursive
//	"*.go"     -> "**/*.go"            extension at any depth
//	anything   -> "**/" + pattern      match at any depth
func RenderGlob(pattern string) string {
	switch {
	case pattern == "*" || pattern == CatchAllGlob:
		return CatchAllGlob
	case strings.HasPrefix(pattern, "/"):
		return strings.TrimPrefix(pattern, "/")
	case strings.HasSuffix(pattern, "/"):
		return pattern + CatchAllGlob
	default:
		return "**/" + pattern
	}
}

// RenderGlobs maps each pattern through RenderGlob, preserving order.
func RenderGlobs(patterns []string) []string {
	if len(patterns) == 0 {
		return nil
	}
	globs := make([]string, len(patterns))
	for i, p := range patterns {
		globs[i] = RenderGlob(p)
	}
	return globs
}

// Rendered returns the pattern set converted to search-tool globs.
func (ps PatternSet) Rendered() PatternSet {
	return PatternSet{
		Include: RenderGlobs(ps.Include),
		Exclude: RenderGlobs(ps.Exclude),
	}
}

// JoinGlobs renders patterns and joins them with commas, the form expected
// by "find in files" style search commands.
func JoinGlobs(patterns []string) string {
	return strings.Join(RenderGlobs(patterns), ",")
}
