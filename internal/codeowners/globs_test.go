package codeowners

import (
	"reflect"
	"testing"
)

func TestRenderGlob(t *testing.T) {
	tests := []struct {
		pattern string
		want    string
	}{
		{"*", "**/*"},
		{"**/*", "**/*"},
		{"/src/app.ts", "src/app.ts"},
		{"/api/*.js", "api/*.js"},
		// Directory patterns render root-relative only, even though the
		// matcher accepts them at any depth. Deliberate.
		{"docs/", "docs/**/*"},
		{"*.go", "**/*.go"},
		{"README.md", "**/README.md"},
		{"vendor", "**/vendor"},
	}

	for _, tc := range tests {
		if got := RenderGlob(tc.pattern); got != tc.want {
			t.Errorf("RenderGlob(%q) = %q, want %q", tc.pattern, got, tc.want)
		}
	}
}

func TestRenderGlobs_Empty(t *testing.T) {
	if got := RenderGlobs(nil); got != nil {
		t.Fatalf("RenderGlobs(nil) = %v, want nil", got)
	}
}

func TestPatternSetRendered(t *testing.T) {
	ps := PatternSet{
		Include: []string{"*.js"},
		Exclude: []string{"/api/*.js"},
	}

	r := ps.Rendered()
	if !reflect.DeepEqual(r.Include, []string{"**/*.js"}) {
		t.Fatalf("include = %v, want [**/*.js]", r.Include)
	}
	if !reflect.DeepEqual(r.Exclude, []string{"api/*.js"}) {
		t.Fatalf("exclude = %v, want [api/*.js]", r.Exclude)
	}
}

func TestJoinGlobs(t *testing.T) {
	got := JoinGlobs([]string{"*.go", "docs/"})
	if got != "**/*.go,docs/**/*" {
		t.Fatalf("JoinGlobs = %q", got)
	}
}
