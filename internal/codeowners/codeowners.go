// Package codeowners implements CODEOWNERS rule parsing, ownership
// resolution, and per-owner pattern-set generation.
//
// The engine answers two questions:
//   - "who owns path P" - last-match-wins over the ordered rule list,
//     following the standard CODEOWNERS convention
//   - "which include/exclude globs characterise everything owner O owns" -
//     including exclusions for files a later, more specific rule reassigns
//     to somebody else
//
// All queries run against an immutable Snapshot. Reload builds a complete
// new snapshot and swaps it atomically, so concurrent readers observe
// either the old or the new rule set in full, never a partial mix.
package codeowners

import (
	"sync/atomic"
)

// Synthetic owners recognised by the query layer. They never appear in the
// parsed owner catalog.
const (
	// OwnerUnowned selects files matched only by owner-less rules, or
	// matched by no rule at all.
	OwnerUnowned = "unowned"
	// OwnerAll selects the union of every owned pattern.
	OwnerAll = "owned-by-all"
)

// Rule is one parsed CODEOWNERS line: a pattern and its ordered owner list.
// An empty owner list marks matching paths as explicitly unowned.
type Rule struct {
	Pattern string   `json:"pattern" yaml:"pattern"`
	Owners  []string `json:"owners" yaml:"owners"`
}

// OwnershipInfo is the result of resolving a single path.
type OwnershipInfo struct {
	// Owners is the owner list of the last matching rule, file order
	// preserved. Empty when the path is unowned.
	Owners []string `json:"owners"`
	// Unowned reports that no rule matched, or the last matching rule had
	// no owners.
	Unowned bool `json:"unowned"`
	// MatchingPattern is the pattern of the rule that decided ownership.
	// Empty when no rule matched.
	MatchingPattern string `json:"matching_pattern,omitempty"`
}

// PatternSet characterises all files of one owner as include patterns plus
// the exclusions needed where later rules reassign files to other owners.
// Patterns are in CODEOWNERS form; use RenderGlobs to convert them for a
// search tool.
type PatternSet struct {
	Include []string `json:"include"`
	Exclude []string `json:"exclude"`
}

// Empty reports whether the set selects no files at all (owner has no
// rules). Callers should report "no files" rather than falling back to a
// match-everything glob.
func (ps PatternSet) Empty() bool {
	return len(ps.Include) == 0
}

// Snapshot is one immutable parse result. It is never mutated after
// construction; a reload installs a whole new snapshot.
type Snapshot struct {
	// Rules in file order. Order is semantically load-bearing: later rules
	// take precedence.
	Rules []Rule
	// Owners is the deduplicated, sorted catalog of owner tokens across
	// all owned rules.
	Owners []string
	// RulePath is the workspace-relative location the rule file was loaded
	// from. Empty when no file was found.
	RulePath string
	// Found reports whether a rule file was located at all. "Not found" is
	// a valid steady state, not an error.
	Found bool
}

// Engine holds the current snapshot and answers ownership queries.
// The zero value is unusable; use New.
type Engine struct {
	snap atomic.Pointer[Snapshot]
}

// New creates an engine with an empty "no rule file" snapshot.
func New() *Engine {
	e := &Engine{}
	e.snap.Store(&Snapshot{})
	return e
}

// Load parses content and installs the resulting snapshot.
// rulePath records where the content came from, for display only.
func (e *Engine) Load(content, rulePath string) {
	rules, owners := ParseRules(content)
	e.snap.Store(&Snapshot{
		Rules:    rules,
		Owners:   owners,
		RulePath: rulePath,
		Found:    true,
	})
}

// Clear installs an empty snapshot, returning the engine to the
// "no rule file" state.
func (e *Engine) Clear() {
	e.snap.Store(&Snapshot{})
}

// Snapshot returns the current snapshot. The returned value must be
// treated as read-only.
func (e *Engine) Snapshot() *Snapshot {
	return e.snap.Load()
}

// HasRuleFile reports whether a rule file was found and loaded.
func (e *Engine) HasRuleFile() bool {
	return e.Snapshot().Found
}

// RulePath returns the location the current rules were loaded from.
func (e *Engine) RulePath() string {
	return e.Snapshot().RulePath
}

// Owners returns the sorted owner catalog of the current snapshot.
func (e *Engine) Owners() []string {
	return e.Snapshot().Owners
}

// Rules returns the ordered rule list of the current snapshot.
func (e *Engine) Rules() []Rule {
	return e.Snapshot().Rules
}

// Resolve reports who owns path, per the current snapshot.
func (e *Engine) Resolve(path string) OwnershipInfo {
	return e.Snapshot().Resolve(path)
}

// PatternsForOwner returns the include/exclude pattern sets for owner,
// per the current snapshot.
func (e *Engine) PatternsForOwner(owner string) PatternSet {
	return e.Snapshot().PatternsForOwner(owner)
}
