// patterns.go implements per-owner pattern-set generation and the override
// heuristic between rules.
//
// This is the inverse of Resolve: instead of "who owns this path", it
// answers "which patterns select everything owner O owns". Because later
// rules reassign files, the include set alone over-matches; the exclude set
// carries the patterns of later rules that take files away from O.

package codeowners

import "strings"

// PatternsForOwner returns the include/exclude pattern sets characterising
// all files owned by owner. The synthetic owners OwnerUnowned and OwnerAll
// are handled here; any other value is treated as a literal owner token.
//
// Patterns are returned in CODEOWNERS form, deduplicated, first-appearance
// order. An all-empty result means the owner has no files - callers should
// say so instead of defaulting to match-everything.
func (s *Snapshot) PatternsForOwner(owner string) PatternSet {
	switch owner {
	case OwnerUnowned:
		return s.unownedPatterns()
	case OwnerAll:
		return s.ownedByAllPatterns()
	}
	return s.ownerPatterns(owner)
}

// unownedPatterns selects files not owned by anyone: the explicit
// owner-less rules when present, otherwise everything minus every owned
// pattern.
func (s *Snapshot) unownedPatterns() PatternSet {
	include := s.collectPatterns(func(r Rule) bool { return len(r.Owners) == 0 })
	if len(include) > 0 {
		return PatternSet{Include: include}
	}
	return PatternSet{
		Include: []string{CatchAllGlob},
		Exclude: s.collectPatterns(func(r Rule) bool { return len(r.Owners) > 0 }),
	}
}

// ownedByAllPatterns selects the union of every owned pattern, falling back
// to everything minus the explicit unowned patterns.
func (s *Snapshot) ownedByAllPatterns() PatternSet {
	include := s.collectPatterns(func(r Rule) bool { return len(r.Owners) > 0 })
	if len(include) > 0 {
		return PatternSet{Include: include}
	}
	return PatternSet{
		Include: []string{CatchAllGlob},
		Exclude: s.collectPatterns(func(r Rule) bool { return len(r.Owners) == 0 }),
	}
}

// ownerPatterns builds the include set from every rule listing owner, then
// scans strictly-later rules for overrides that hand matching files to
// somebody else. A pattern can never be both an include and an exclude for
// the same owner: includes win, which resolves the case where the same
// pattern appears twice for the same owner elsewhere in the file.
func (s *Snapshot) ownerPatterns(owner string) PatternSet {
	var include []string
	includeSeen := make(map[string]struct{})
	ownedIdx := make([]int, 0, len(s.Rules))

	for i, r := range s.Rules {
		if !containsOwner(r.Owners, owner) {
			continue
		}
		ownedIdx = append(ownedIdx, i)
		if _, dup := includeSeen[r.Pattern]; !dup {
			includeSeen[r.Pattern] = struct{}{}
			include = append(include, r.Pattern)
		}
	}

	if len(include) == 0 {
		return PatternSet{}
	}

	var exclude []string
	excludeSeen := make(map[string]struct{})

	for _, i := range ownedIdx {
		for j := i + 1; j < len(s.Rules); j++ {
			later := s.Rules[j]
			if containsOwner(later.Owners, owner) {
				continue
			}
			if !wouldOverride(s.Rules[i].Pattern, later.Pattern) {
				continue
			}
			if _, isInclude := includeSeen[later.Pattern]; isInclude {
				continue
			}
			if _, dup := excludeSeen[later.Pattern]; !dup {
				excludeSeen[later.Pattern] = struct{}{}
				exclude = append(exclude, later.Pattern)
			}
		}
	}

	return PatternSet{Include: include, Exclude: exclude}
}

// wouldOverride reports whether a later rule with pattern `later` would
// take files away from an earlier rule with pattern `earlier`.
//
// This is a small set of directional heuristics, not a specificity lattice:
//   - identical patterns always override
//   - a path-qualified pattern ending in the same extension overrides a
//     bare extension pattern (this covers both wildcarded paths like
//     "/api/*.js" and exact file paths like "/api/server.js")
//   - between two path patterns, a strictly deeper base directory overrides
//     a shallower one
//
// Pattern shapes outside these cases (two directory patterns where neither
// base prefixes the other, for instance) detect no override, which can
// under-exclude. That is intentional current behaviour; generalising the
// heuristic would change observable results on ambiguous inputs.
func wouldOverride(earlier, later string) bool {
	if earlier == later {
		return true
	}

	if strings.HasPrefix(earlier, "*.") {
		ext := earlier[1:] // ".js"
		if strings.Contains(later, "/") && strings.HasSuffix(later, ext) {
			return true
		}
	}

	if strings.Contains(earlier, "/") && strings.Contains(later, "/") {
		earlierBase := baseDir(earlier)
		laterBase := baseDir(later)
		if strings.HasPrefix(laterBase, earlierBase) && len(laterBase) > len(earlierBase) {
			return true
		}
	}

	return false
}

// baseDir strips a pattern's trailing wildcard tail, leaving the literal
// base directory: "/api/*.js" -> "/api", "src/**" -> "src".
func baseDir(pattern string) string {
	p := strings.TrimSuffix(pattern, "/")
	for {
		i := strings.LastIndex(p, "/")
		if i < 0 {
			return p
		}
		if !strings.ContainsAny(p[i+1:], "*?") {
			return p
		}
		p = p[:i]
	}
}

// collectPatterns returns the distinct patterns of rules passing keep,
// first-appearance order.
func (s *Snapshot) collectPatterns(keep func(Rule) bool) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, r := range s.Rules {
		if !keep(r) {
			continue
		}
		if _, dup := seen[r.Pattern]; dup {
			continue
		}
		seen[r.Pattern] = struct{}{}
		out = append(out, r.Pattern)
	}
	return out
}

// containsOwner reports whether owners lists owner.
func containsOwner(owners []string, owner string) bool {
	for _, o := range owners {
		if o == owner {
			return true
		}
	}
	return false
}
