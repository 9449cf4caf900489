package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckCleanFile(t *testing.T) {
	env := newTestEnv(t)

	out := env.run("check")
	env.contains(out, "CODEOWNERS: 6 rules, 4 owners, 1 unowned")
	env.contains(out, "ok")
}

func TestCheckReportsDroppedToken(t *testing.T) {
	env := newEmptyEnv(t)
	env.write("CODEOWNERS", "*.go @org/backend backend-team\n")

	out, err := env.runErr("check")
	require.Error(t, err, "findings should exit non-zero")
	env.contains(out, `owner token "backend-team" has no '@' and is ignored`)
	env.contains(out, "line 1")
}

func TestCheckReportsShadowedRule(t *testing.T) {
	env := newEmptyEnv(t)
	env.write("CODEOWNERS", "*.go @org/backend\n*.go @org/platform\n")

	out, err := env.runErr("check")
	require.Error(t, err)
	env.contains(out, "shadowed by the identical pattern on line 2")
}

func TestCheckJSON(t *testing.T) {
	env := newEmptyEnv(t)
	env.write("CODEOWNERS", "*.go @org/backend trailing-comment\n")

	out, _ := env.runErr("-o", "json", "check")

	var report struct {
		Rules    int `json:"rules"`
		Owners   int `json:"owners"`
		Findings []struct {
			Line    int    `json:"line"`
			Message string `json:"message"`
		} `json:"findings"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, 1, report.Rules)
	require.Len(t, report.Findings, 1)
	assert.Equal(t, 1, report.Findings[0].Line)
}

func TestCheckNoRuleFile(t *testing.T) {
	env := newEmptyEnv(t)

	out, err := env.runErr("check")
	require.Error(t, err)
	env.contains(out, "no CODEOWNERS file found")
}

func TestCatRawContent(t *testing.T) {
	env := newTestEnv(t)

	out := env.run("cat")
	env.contains(out, "# CODEOWNERS")
	env.contains(out, "*.js        @org/frontend")
}

func TestCatLongTable(t *testing.T) {
	env := newTestEnv(t)

	out := env.run("cat", "--long")
	env.contains(out, "PATTERN")
	env.contains(out, "OWNERS")
	env.contains(out, "(unowned)")
}

func TestCatReportsLocation(t *testing.T) {
	env := newEmptyEnv(t)
	env.write(".github/CODEOWNERS", "* @org/everyone\n")

	out := env.run("cat")
	env.contains(out, "# .github/CODEOWNERS")
}

func TestDiffTwoFiles(t *testing.T) {
	env := newTestEnv(t)
	env.write("old.txt", "*.go @org/backend\n")
	env.write("new.txt", "*.go @org/platform\n")

	out := env.run("diff", "old.txt", "new.txt")
	env.contains(out, "--- old.txt")
	env.contains(out, "+++ new.txt")
	env.contains(out, "ownership changes:")
	env.contains(out, "owner added:   @org/platform")
	env.contains(out, "owner removed: @org/backend")
}

func TestDiffAgainstWorkspaceRules(t *testing.T) {
	env := newTestEnv(t)
	env.write("proposed", testRules+"/infra/ @org/sre\n")

	out := env.run("diff", "proposed")
	env.contains(out, "--- CODEOWNERS")
	env.contains(out, "owner added:   @org/sre")
}

func TestDiffCommentOnlyChangeHasNoSemantics(t *testing.T) {
	env := newTestEnv(t)
	env.write("old.txt", "*.go @org/backend\n")
	env.write("new.txt", "# comment\n*.go @org/backend\n")

	out := env.run("diff", "old.txt", "new.txt")
	assert.NotContains(t, out, "ownership changes:")
}

func TestDiffMissingFileFails(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.runErr("diff", "no-such-file")
	require.Error(t, err)
}

func TestInitScaffoldsRuleFile(t *testing.T) {
	env := newEmptyEnv(t)

	out := env.run("init")
	env.contains(out, "Initialised rule file")

	data, err := os.ReadFile(filepath.Join(env.dir, "CODEOWNERS"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "@org/everyone")

	// the scaffold is immediately usable
	env.contains(env.run("resolve", "anything.go"), "@org/everyone")
}

func TestInitRefusesOverwrite(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.runErr("init")
	require.Error(t, err)
	env.contains(out, "already exists")

	// --force replaces it
	env.run("init", "--force")
}

func TestInitCustomLocation(t *testing.T) {
	env := newEmptyEnv(t)

	env.run("init", "--location", ".github/CODEOWNERS")

	_, err := os.Stat(filepath.Join(env.dir, ".github", "CODEOWNERS"))
	require.NoError(t, err)
}
