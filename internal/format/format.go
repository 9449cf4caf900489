// Package format provides output formatting utilities for CLI display.
//
// Centralises formatting logic so that command implementations focus on
// business logic while this package handles presentation concerns like
// column alignment, tree rendering, and colourised output.
package format

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jpl-au/codeowner/internal/codeowners"
)

// Resolution prints the ownership of a single path.
func Resolution(w io.Writer, path string, info codeowners.OwnershipInfo) error {
	if info.Unowned {
		fmt.Fprintf(w, "%s  (unowned)\n", path)
		return nil
	}
	fmt.Fprintf(w, "%s  %s\n", path, strings.Join(info.Owners, " "))
	return nil
}

// ResolutionLong prints ownership with the pattern that decided it.
func ResolutionLong(w io.Writer, path string, info codeowners.OwnershipInfo) error {
	owners := "(unowned)"
	if !info.Unowned {
		owners = strings.Join(info.Owners, " ")
	}
	pattern := "-"
	if info.MatchingPattern != "" {
		pattern = info.MatchingPattern
	}
	fmt.Fprintf(w, "%s\n  owners:  %s\n  pattern: %s\n", path, owners, pattern)
	return nil
}

// Rules prints rules as an aligned table, in file order.
func Rules(w io.Writer, rules []codeowners.Rule) error {
	if len(rules) == 0 {
		return nil
	}

	// Find max pattern length for alignment
	maxPattern := 7 // minimum "PATTERN"
	for _, r := range rules {
		if len(r.Pattern) > maxPattern {
			maxPattern = len(r.Pattern)
		}
	}

	fmt.Fprintf(w, "%-*s  %s\n", maxPattern, "PATTERN", "OWNERS")
	for _, r := range rules {
		owners := strings.Join(r.Owners, " ")
		if owners == "" {
			owners = "(unowned)"
		}
		fmt.Fprintf(w, "%-*s  %s\n", maxPattern, r.Pattern, owners)
	}
	return nil
}

// Owners prints the owner catalog, one per line.
func Owners(w io.Writer, owners []string) error {
	for _, o := range owners {
		fmt.Fprintln(w, o)
	}
	return nil
}

// Patterns prints a pattern set for an owner. When rendered is true the
// patterns are shown as search-tool globs instead of raw rule patterns.
func Patterns(w io.Writer, owner string, set codeowners.PatternSet, rendered bool) error {
	if rendered {
		set = set.Rendered()
	}
	if set.Empty() {
		fmt.Fprintf(w, "%s: no files\n", owner)
		return nil
	}
	for _, p := range set.Include {
		fmt.Fprintf(w, "include  %s\n", p)
	}
	for _, p := range set.Exclude {
		fmt.Fprintf(w, "exclude  %s\n", p)
	}
	return nil
}

// Tree prints paths as a directory tree.
func Tree(w io.Writer, paths []string) error {
	if len(paths) == 0 {
		return nil
	}

	// Build tree structure
	type node struct {
		name     string
		children map[string]*node
		isFile   bool
	}

	root := &node{children: make(map[string]*node)}

	for _, p := range paths {
		parts := strings.Split(p, "/")
		current := root

		for i, part := range parts {
			if current.children[part] == nil {
				current.children[part] = &node{
					name:     part,
					children: make(map[string]*node),
				}
			}
			current = current.children[part]
			if i == len(parts)-1 {
				current.isFile = true
			}
		}
	}

	// Print tree
	var printNode func(n *node, prefix string)
	printNode = func(n *node, prefix string) {
		// Get sorted children
		names := make([]string, 0, len(n.children))
		for name := range n.children {
			names = append(names, name)
		}
		sort.Strings(names)

		for i, name := range names {
			child := n.children[name]
			last := i == len(names)-1

			connector := "├── "
			if last {
				connector = "└── "
			}

			suffix := ""
			if !child.isFile && len(child.children) > 0 {
				suffix = "/"
			}

			fmt.Fprintf(w, "%s%s%s%s\n", prefix, connector, name, suffix)

			pfx := prefix
			if last {
				pfx += "    "
			} else {
				pfx += "│   "
			}

			if len(child.children) > 0 {
				printNode(child, pfx)
			}
		}
	}

	printNode(root, "")
	return nil
}

// Paths prints paths, one per line.
func Paths(w io.Writer, paths []string) error {
	for _, p := range paths {
		fmt.Fprintln(w, p)
	}
	return nil
}
