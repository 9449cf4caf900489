package diff

import (
	"bytes"
	"slices"
	"strings"
	"testing"
)

func TestCompute_TextDiff(t *testing.T) {
	old := "*.go @org/backend\n"
	new := "*.go @org/platform\n"

	r := Compute(old, new, "CODEOWNERS (old)", "CODEOWNERS (new)")

	out := r.Format(false)
	if !strings.Contains(out, "--- CODEOWNERS (old)") {
		t.Errorf("missing old label:\n%s", out)
	}
	if !strings.Contains(out, "+++ CODEOWNERS (new)") {
		t.Errorf("missing new label:\n%s", out)
	}
	if !strings.Contains(out, "backend") || !strings.Contains(out, "platform") {
		t.Errorf("diff missing changed content:\n%s", out)
	}
}

func TestCompute_Semantic(t *testing.T) {
	old := "*.go @org/backend\n/docs/ @org/docs\n"
	new := "*.go @org/backend\n/docs/ @org/writers\n*.sql @org/data\n"

	r := Compute(old, new, "a", "b")
	s := r.Semantic

	if !slices.Equal(s.OwnersAdded, []string{"@org/data", "@org/writers"}) {
		t.Errorf("OwnersAdded = %v", s.OwnersAdded)
	}
	if !slices.Equal(s.OwnersRemoved, []string{"@org/docs"}) {
		t.Errorf("OwnersRemoved = %v", s.OwnersRemoved)
	}
	if !slices.Equal(s.RulesAdded, []string{"/docs/ @org/writers", "*.sql @org/data"}) {
		t.Errorf("RulesAdded = %v", s.RulesAdded)
	}
	if !slices.Equal(s.RulesRemoved, []string{"/docs/ @org/docs"}) {
		t.Errorf("RulesRemoved = %v", s.RulesRemoved)
	}
}

func TestCompute_SemanticIgnoresWhitespace(t *testing.T) {
	old := "*.go   @org/backend\n"
	new := "*.go @org/backend\n"

	r := Compute(old, new, "a", "b")
	if !r.Semantic.Empty() {
		t.Errorf("whitespace-only change should have no semantic effect: %+v", r.Semantic)
	}
}

func TestCompute_SemanticIgnoresComments(t *testing.T) {
	old := "*.go @org/backend\n"
	new := "# owners for go code\n*.go @org/backend\n"

	r := Compute(old, new, "a", "b")
	if !r.Semantic.Empty() {
		t.Errorf("comment-only change should have no semantic effect: %+v", r.Semantic)
	}
	// The text layer still reports the change.
	if r.Diff == "" {
		t.Error("expected non-empty text diff")
	}
}

func TestRun_WritesOutput(t *testing.T) {
	var buf bytes.Buffer
	Run(&buf, "*.go @a\n", "*.go @b\n", "old", "new", false)

	out := buf.String()
	if !strings.Contains(out, "ownership changes:") {
		t.Errorf("missing semantic summary:\n%s", out)
	}
	if !strings.Contains(out, "owner added:") || !strings.Contains(out, "@b") {
		t.Errorf("missing owner change:\n%s", out)
	}
}

func TestColourise(t *testing.T) {
	d := "- old line\n+ new line\n  same\n"
	out := Colourise(d)

	if !strings.Contains(out, "\033[31m- old line\033[0m") {
		t.Errorf("deletions not coloured red:\n%q", out)
	}
	if !strings.Contains(out, "\033[32m+ new line\033[0m") {
		t.Errorf("insertions not coloured green:\n%q", out)
	}
	if strings.Contains(out, "\033[31m  same") || strings.Contains(out, "\033[32m  same") {
		t.Errorf("context lines should not be coloured:\n%q", out)
	}
}

func TestFormat_CollapsesLongEqualRuns(t *testing.T) {
	var oldLines, newLines []string
	for i := 0; i < 20; i++ {
		oldLines = append(oldLines, "line")
		newLines = append(newLines, "line")
	}
	old := strings.Join(oldLines, "\n") + "\nend-old\n"
	new := strings.Join(newLines, "\n") + "\nend-new\n"

	r := Compute(old, new, "a", "b")
	if !strings.Contains(r.Diff, "...") {
		t.Errorf("long equal run not collapsed:\n%s", r.Diff)
	}
}
