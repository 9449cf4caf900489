// match.go implements single-pattern matching against normalised paths.
//
// The classifier below is a precedence ladder, not a grammar: each pattern
// is classified by the first rung that applies, and later components depend
// on the exact boundary behaviour of that ordering. A pattern with a dot
// but no slash and no wildcard ("README.md") is NOT a directory pattern and
// falls through to the exact/suffix rung. Do not reorder the rungs.

package codeowners

import (
	"log/slog"
	"regexp"
	"strings"
)

// Matches reports whether pattern matches the normalised, workspace-relative
// path. Paths must already be forward-slash separated with no leading slash;
// matching never re-normalises.
func Matches(path, pattern string) bool {
	if pattern == "" || path == "" {
		return false
	}

	// 1. Bare star matches everything.
	if pattern == "*" {
		return true
	}

	// 2. Directory pattern: trailing slash, or no wildcard and no dot
	// (a dotless bare token reads as a directory name, not a filename).
	if isDirectoryPattern(pattern) {
		return matchDirectory(path, pattern)
	}

	// 3. Extension pattern: *.ext matches any path with that suffix.
	if strings.HasPrefix(pattern, "*.") {
		return strings.HasSuffix(path, pattern[1:])
	}

	hasWildcard := strings.ContainsAny(pattern, "*?")

	// 4. Root-anchored literal: prefix match from the workspace root
	// (prefix, not full-segment - "/src/app.t" matches "src/app.ts").
	// Dotless patterns never reach here; rung 2 claims them.
	if strings.HasPrefix(pattern, "/") && !hasWildcard {
		return strings.HasPrefix(path, pattern[1:])
	}

	// 5. Wildcard pattern: translate to an anchored regexp.
	if hasWildcard {
		return matchWildcard(path, pattern)
	}

	// 6. Fallback: exact path, or bare filename at any depth.
	return path == pattern || strings.HasSuffix(path, "/"+pattern)
}

// isDirectoryPattern applies the directory heuristic: an explicit trailing
// slash, or a token with no "*" and no "." anywhere.
func isDirectoryPattern(pattern string) bool {
	if strings.HasSuffix(pattern, "/") {
		return true
	}
	return !strings.Contains(pattern, "*") && !strings.Contains(pattern, ".")
}

// matchDirectory matches a directory pattern. Anchored tokens (leading "/")
// match only at the workspace root; unanchored tokens match the directory
// name at any depth.
func matchDirectory(path, pattern string) bool {
	tok := strings.TrimSuffix(pattern, "/")
	if tok == "" {
		return false
	}

	if strings.HasPrefix(tok, "/") {
		tok = strings.TrimPrefix(tok, "/")
		return path == tok || strings.HasPrefix(path, tok+"/")
	}

	return path == tok ||
		strings.HasPrefix(path, tok+"/") ||
		strings.Contains(path, "/"+tok+"/")
}

// matchWildcard matches a pattern containing "*" or "?" by translating it
// to an anchored regexp. A pattern that fails to compile matches nothing;
// it never aborts evaluation of other rules.
func matchWildcard(path, pattern string) bool {
	re, err := wildcardRegexp(pattern)
	if err != nil {
		slog.Warn("invalid wildcard pattern", "pattern", pattern, "error", err)
		return false
	}
	return re.MatchString(path)
}

// wildcardRegexp translates a wildcard pattern to an anchored regexp.
// Translation runs in two distinct passes - literal escaping first, wildcard
// substitution second - so escaping never touches the synthesised regex
// tokens.
func wildcardRegexp(pattern string) (*regexp.Regexp, error) {
	expr := strings.TrimPrefix(pattern, "/")
	expr = regexp.QuoteMeta(expr)
	expr = strings.ReplaceAll(expr, `\*`, `.*`)
	expr = strings.ReplaceAll(expr, `\?`, `.`)
	return regexp.Compile("^" + expr + "$")
}

// CheckPattern reports whether a pattern would match at runtime. Only
// wildcard patterns can fail; every other classification rung matches by
// string comparison and cannot be invalid.
func CheckPattern(pattern string) error {
	if !strings.ContainsAny(pattern, "*?") {
		return nil
	}
	_, err := wildcardRegexp(pattern)
	return err
}
