// Package repo provides workspace discovery and rule file location for codeowner.
//
// A codeowner workspace is any directory tree carrying a CODEOWNERS rule file
// in one of the conventional locations. This package handles:
//   - Discovering the workspace root by walking up the directory tree
//   - Probing the candidate rule file locations in precedence order
//   - Reading the rule file contents
//   - Scaffolding a starter rule file via "codeowner init"
//
// The discovery algorithm mirrors git's approach: starting from the current
// directory, walk up until a directory containing .git or a rule file is
// found, or the filesystem root is reached.
package repo

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// RuleFile is the canonical rule file name.
const RuleFile = "CODEOWNERS"

// ErrNoWorkspace is returned when no workspace root can be found.
var ErrNoWorkspace = errors.New("no workspace found (run 'codeowner init' or pass --root)")

// ErrNoRuleFile is returned when a workspace has no rule file in any
// candidate location.
var ErrNoRuleFile = errors.New("no CODEOWNERS file found (run 'codeowner init')")

// DefaultLocations returns the candidate rule file paths relative to the
// workspace root, in probing order. The first location that exists wins;
// the rest are ignored even if present.
func DefaultLocations() []string {
	return []string{
		RuleFile,
		filepath.Join(".github", RuleFile),
		filepath.Join(".gitlab", RuleFile),
		filepath.Join("docs", RuleFile),
	}
}

// Workspace describes a discovered workspace and its rule file.
type Workspace struct {
	Root     string // Absolute workspace root
	RulePath string // Absolute rule file path, empty if none found
}

// Found reports whether the workspace has a rule file.
func (w Workspace) Found() bool {
	return w.RulePath != ""
}

// RelRulePath returns the rule file path relative to the workspace root,
// or the empty string if no rule file was found.
func (w Workspace) RelRulePath() string {
	if w.RulePath == "" {
		return ""
	}
	rel, err := filepath.Rel(w.Root, w.RulePath)
	if err != nil {
		return w.RulePath
	}
	return filepath.ToSlash(rel)
}

// FindRoot walks up from dir looking for a workspace root: the first
// directory containing .git or a rule file in any candidate location.
// Empty dir means the current working directory.
func FindRoot(dir string, locations []string) (string, error) {
	if dir == "" {
		var err error
		dir, err = os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
	}
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve directory: %w", err)
	}
	if len(locations) == 0 {
		locations = DefaultLocations()
	}

	for {
		if info, err := os.Stat(filepath.Join(dir, ".git")); err == nil && info.IsDir() {
			return dir, nil
		}
		for _, loc := range locations {
			if info, err := os.Stat(filepath.Join(dir, loc)); err == nil && !info.IsDir() {
				return dir, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNoWorkspace
		}
		dir = parent
	}
}

// Discover locates the workspace rooted at or above dir and probes the
// candidate locations for a rule file. A missing rule file is not an
// error: the returned workspace simply has Found() == false, and commands
// degrade to unowned semantics.
//
// explicit overrides probing entirely: it names the rule file directly
// (absolute, or relative to the workspace root) and must exist.
func Discover(dir, explicit string, locations []string) (Workspace, error) {
	root, err := FindRoot(dir, locations)
	if err != nil {
		// Without a root there is still a workspace: the starting
		// directory itself, with no rule file. Callers that require
		// rules check Found().
		if dir == "" {
			dir, _ = os.Getwd()
		}
		abs, absErr := filepath.Abs(dir)
		if absErr != nil {
			return Workspace{}, absErr
		}
		root = abs
	}

	w := Workspace{Root: root}

	if explicit != "" {
		p := explicit
		if !filepath.IsAbs(p) {
			p = filepath.Join(root, p)
		}
		info, err := os.Stat(p)
		if err != nil || info.IsDir() {
			return w, fmt.Errorf("rule file %s: %w", explicit, ErrNoRuleFile)
		}
		w.RulePath = p
		return w, nil
	}

	if len(locations) == 0 {
		locations = DefaultLocations()
	}
	for _, loc := range locations {
		p := filepath.Join(root, loc)
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			w.RulePath = p
			break
		}
	}

	return w, nil
}

// ReadRules returns the rule file contents. Returns ErrNoRuleFile if the
// workspace has none.
func (w Workspace) ReadRules() (string, error) {
	if w.RulePath == "" {
		return "", ErrNoRuleFile
	}
	content, err := os.ReadFile(w.RulePath)
	if err != nil {
		return "", fmt.Errorf("read rule file: %w", err)
	}
	return string(content), nil
}

// starterRules is the scaffold written by Init. It documents the grammar
// by example rather than prose.
const starterRules = `# CODEOWNERS
#
# Later rules take precedence over earlier ones: the last pattern that
# matches a path determines its owners.
#
# Examples:
#   *               @org/everyone     default owner for everything
#   *.go            @org/backend      all Go files
#   /docs/          @org/docs         the docs directory at the root
#   /api/*.js       @org/api          JS files anywhere under /api

*       @org/everyone
`

// Init scaffolds a starter rule file at the given location (relative to
// dir, empty for the default location). Refuses to overwrite an existing
// file unless force is set.
//
// Why init writes only the rule file: following the git model, init
// creates the one artefact the engine needs. Config is a separate concern
// managed via "codeowner config".
func Init(dir, location string, force bool) (string, error) {
	if dir == "" {
		dir = "."
	}
	if location == "" {
		location = RuleFile
	}
	p := filepath.Join(dir, location)

	if _, err := os.Stat(p); err == nil && !force {
		return "", fmt.Errorf("%s already exists (use --force to overwrite)", location)
	}

	if parent := filepath.Dir(p); parent != "." {
		if err := os.MkdirAll(parent, 0755); err != nil {
			return "", fmt.Errorf("create directory: %w", err)
		}
	}

	if err := os.WriteFile(p, []byte(starterRules), 0644); err != nil {
		return "", fmt.Errorf("write rule file: %w", err)
	}

	abs, err := filepath.Abs(p)
	if err != nil {
		return p, nil
	}
	return abs, nil
}
