package cmd

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOwnersSortedCatalog(t *testing.T) {
	env := newTestEnv(t)

	env.equals(env.run("owners"), `@org/backend
@org/everyone
@org/frontend
@org/writers`)
}

func TestOwnersAll(t *testing.T) {
	env := newTestEnv(t)

	out := env.run("owners", "--all")
	env.contains(out, "unowned")
	env.contains(out, "owned-by-all")
}

func TestOwnersLongCounts(t *testing.T) {
	env := newTestEnv(t)

	env.equals(env.run("owners", "--long"), `2    @org/backend
1    @org/everyone
2    @org/frontend
1    @org/writers`)
}

func TestOwnersLongJSON(t *testing.T) {
	env := newTestEnv(t)

	var counts []struct {
		Owner string `json:"owner"`
		Rules int    `json:"rules"`
	}
	require.NoError(t, json.Unmarshal([]byte(env.run("owners", "-l", "-o", "json")), &counts))
	require.Len(t, counts, 4)
	assert.Equal(t, "@org/backend", counts[0].Owner)
	assert.Equal(t, 2, counts[0].Rules)
}

func TestOwnersEmptyWorkspace(t *testing.T) {
	env := newEmptyEnv(t)

	env.equals(env.run("owners"), "")
}

func TestPatternsIncludeExclude(t *testing.T) {
	env := newTestEnv(t)

	out := env.run("patterns", "@org/backend")
	env.contains(out, "include  /api/")
	env.contains(out, "include  /api/*.js")

	// the override heuristic is directional: a bare catch-all detects no
	// overriding later rules, so the exclude set stays empty
	env.equals(env.run("patterns", "@org/everyone"), "include  *")
}

func TestPatternsOverrideDetection(t *testing.T) {
	env := newEmptyEnv(t)
	env.write("CODEOWNERS", "*.js @frontend\n/api/*.js @backend\n")

	// a later path-qualified rule for the same extension takes files away
	out := env.run("patterns", "@frontend")
	env.contains(out, "include  *.js")
	env.contains(out, "exclude  /api/*.js")

	// nothing after the backend rule, so nothing to exclude
	env.equals(env.run("patterns", "@backend"), "include  /api/*.js")
}

func TestPatternsUnknownOwner(t *testing.T) {
	env := newTestEnv(t)

	env.contains(env.run("patterns", "@org/nobody"), "@org/nobody: no files")
}

func TestPatternsSyntheticUnowned(t *testing.T) {
	env := newTestEnv(t)

	// explicit owner-less rules become the unowned include set
	out := env.run("patterns", "unowned")
	env.contains(out, "include  generated/")
}

func TestPatternsGlobs(t *testing.T) {
	env := newTestEnv(t)

	out := env.run("patterns", "--globs", "@org/writers")
	env.contains(out, "include  docs/**/*")
}

func TestPatternsJoin(t *testing.T) {
	env := newTestEnv(t)

	// leading-slash rendering wins before the trailing-slash rule, so
	// "/api/" becomes "api/" rather than "api/**/*"
	out := env.run("patterns", "--join", "@org/backend")
	env.contains(out, "include  api/,api/*.js")
}

func TestPatternsJSON(t *testing.T) {
	env := newTestEnv(t)

	out := env.run("-o", "json", "patterns", "@org/frontend")

	var result struct {
		Owner   string   `json:"owner"`
		Include []string `json:"include"`
		Exclude []string `json:"exclude"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "@org/frontend", result.Owner)
	assert.Contains(t, result.Include, "*.js")
}
