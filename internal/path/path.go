// Package path normalises file paths for ownership matching.
//
// Every path entering the rule engine passes through this package first:
// matching assumes workspace-root-relative, forward-slash-separated paths
// and never re-derives that invariant. Absolute paths and platform
// separators are converted here, once.
package path

import (
	"errors"
	"path/filepath"
	"strings"

	stdpath "path"
)

// ErrInvalid indicates the path is empty or escapes the workspace root.
var ErrInvalid = errors.New("invalid path")

// ErrOutsideRoot indicates an absolute path not under the workspace root.
var ErrOutsideRoot = errors.New("path outside workspace root")

// Normalise cleans a workspace-relative path: forward slashes, no leading
// "./" or "/", no trailing slash, no traversal components. Backslashes are
// converted unconditionally - they arrive in editor-supplied paths on any
// platform.
func Normalise(p string) (string, error) {
	if p == "" {
		return "", ErrInvalid
	}

	p = strings.ReplaceAll(p, "\\", "/")
	p = strings.TrimPrefix(p, "./")

	// A path that still reaches above the root after cleaning cannot be
	// mapped to any workspace file. Checked before anchoring to the
	// synthetic root, which would silently fold "../x" into "x".
	clean := stdpath.Clean(strings.TrimPrefix(p, "/"))
	if clean == ".." || strings.HasPrefix(clean, "../") {
		return "", ErrInvalid
	}

	p = strings.TrimPrefix(stdpath.Clean("/"+p), "/")

	if p == "" || p == "." || strings.Contains(p, "..") {
		return "", ErrInvalid
	}

	return p, nil
}

// Relative maps p into the workspace rooted at root, returning the
// normalised relative path. Relative inputs are assumed to already be
// workspace-relative; absolute inputs must live under root.
func Relative(root, p string) (string, error) {
	if p == "" {
		return "", ErrInvalid
	}

	slashed := strings.ReplaceAll(p, "\\", "/")
	if !filepath.IsAbs(p) && !strings.HasPrefix(slashed, "/") {
		return Normalise(slashed)
	}

	rootSlash := strings.TrimSuffix(filepath.ToSlash(root), "/")
	if slashed == rootSlash {
		return "", ErrInvalid
	}
	if !strings.HasPrefix(slashed, rootSlash+"/") {
		return "", ErrOutsideRoot
	}

	return Normalise(slashed[len(rootSlash)+1:])
}
