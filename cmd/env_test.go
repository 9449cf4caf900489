// Testing Strategy Design Decision:
//
// The cmd/ package contains CLI integration tests that exercise the full
// stack: command parsing -> workspace discovery -> rule engine -> output.
//
// Some internal packages show "[no test files]" - this is intentional.
// These packages are covered by the CLI integration tests:
//   - internal/format: covered by every command's output assertions
//   - internal/mcp helpers: covered by the extension tool handler paths
//
// Unit tests for these packages would duplicate coverage without adding
// value. If underlying functionality breaks, the CLI tests fail - proving
// the stack works.

package cmd

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	binaryPath string
	buildOnce  sync.Once
	buildErr   error
)

// buildBinary compiles the codeowner binary once for all tests.
func buildBinary(t *testing.T) string {
	t.Helper()

	buildOnce.Do(func() {
		tmpDir, err := os.MkdirTemp("", "codeowner-test-bin-*")
		if err != nil {
			buildErr = err
			return
		}

		binaryName := "codeowner"
		if os.PathSeparator == '\\' {
			binaryName = "codeowner.exe"
		}
		binaryPath = filepath.Join(tmpDir, binaryName)

		// Find project root (parent of cmd/)
		wd := mustGetwd()
		projectRoot := filepath.Dir(wd)

		cmd := exec.Command("go", "build", "-o", binaryPath, ".")
		cmd.Dir = projectRoot
		if out, err := cmd.CombinedOutput(); err != nil {
			buildErr = &buildError{err: err, output: string(out)}
			return
		}
	})

	if buildErr != nil {
		t.Fatalf("failed to build binary: %v", buildErr)
	}
	return binaryPath
}

type buildError struct {
	err    error
	output string
}

func (e *buildError) Error() string {
	return e.err.Error() + "\n" + e.output
}

func mustGetwd() string {
	dir, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	return dir
}

// testRules is the fixture rule file shared by most tests. It exercises
// every pattern classification: catch-all, extension, anchored directory,
// anchored wildcard, bare directory, and an explicit unowned rule.
const testRules = `# ownership fixture
*           @org/everyone
*.js        @org/frontend
/api/       @org/backend
/api/*.js   @org/frontend @org/backend
docs/       @org/writers
generated/
`

// testEnv holds test environment state.
type testEnv struct {
	t      *testing.T
	dir    string
	home   string
	binary string
}

// newTestEnv creates a temporary workspace with the fixture CODEOWNERS file
// and a small working tree. HOME is pointed at a second temp directory so
// the audit log and global config never touch the developer's real home.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		t:      t,
		dir:    t.TempDir(),
		home:   t.TempDir(),
		binary: buildBinary(t),
	}

	env.write("CODEOWNERS", testRules)
	env.write("src/app.js", "console.log('app');\n// TODO: tidy\n")
	env.write("api/server.go", "package api\n")
	env.write("api/client.js", "fetch('/api');\n")
	env.write("docs/readme.md", "# docs\n")
	env.write("generated/code.go", "package generated\n")

	return env
}

// newEmptyEnv creates a temporary directory with no rule file at all.
func newEmptyEnv(t *testing.T) *testEnv {
	t.Helper()
	return &testEnv{
		t:      t,
		dir:    t.TempDir(),
		home:   t.TempDir(),
		binary: buildBinary(t),
	}
}

// write creates a file under the workspace, creating parent directories.
func (e *testEnv) write(rel, content string) {
	e.t.Helper()
	full := filepath.Join(e.dir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		e.t.Fatal(err)
	}
	if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
		e.t.Fatal(err)
	}
}

// run executes codeowner with the given args and returns stdout.
func (e *testEnv) run(args ...string) string {
	e.t.Helper()
	out, err := e.runErr(args...)
	if err != nil {
		e.t.Fatalf("codeowner %v failed: %v\noutput: %s", args, err, out)
	}
	return out
}

// runErr executes codeowner and returns combined output and any error.
func (e *testEnv) runErr(args ...string) (string, error) {
	e.t.Helper()

	cmd := e.command(args...)
	out, err := cmd.CombinedOutput()
	return string(out), err
}

// command builds an exec.Cmd for tests that need to adjust the environment
// before running.
func (e *testEnv) command(args ...string) *exec.Cmd {
	cmd := exec.Command(e.binary, args...)
	cmd.Dir = e.dir
	cmd.Env = append(os.Environ(), "HOME="+e.home)
	return cmd
}

// contains checks if output contains expected string.
func (e *testEnv) contains(output, expected string) {
	e.t.Helper()
	assert.Contains(e.t, output, expected)
}

// equals checks if output equals expected string (trimmed).
func (e *testEnv) equals(output, expected string) {
	e.t.Helper()
	assert.Equal(e.t, strings.TrimSpace(expected), strings.TrimSpace(output))
}
