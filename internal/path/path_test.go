package path

import (
	"errors"
	"testing"
)

func TestNormalise(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
		err  error
	}{
		{"plain", "src/app.go", "src/app.go", nil},
		{"dot slash prefix", "./docs/guide.md", "docs/guide.md", nil},
		{"leading slash stripped", "/src/app.go", "src/app.go", nil},
		{"backslashes converted", `src\win\app.go`, "src/win/app.go", nil},
		{"trailing slash removed", "docs/", "docs", nil},
		{"inner dot segments", "src/./lib/app.go", "src/lib/app.go", nil},
		{"traversal collapsed", "src/../docs/guide.md", "docs/guide.md", nil},
		{"traversal escape", "../outside.go", "", ErrInvalid},
		{"deep traversal escape", "a/../../b", "", ErrInvalid},
		{"bare dotdot", "..", "", ErrInvalid},
		{"dotted filename kept", "src/app.v2.go", "src/app.v2.go", nil},
		{"empty", "", "", ErrInvalid},
		{"dot only", ".", "", ErrInvalid},
		{"slash only", "/", "", ErrInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalise(tt.in)
			if !errors.Is(err, tt.err) {
				t.Fatalf("Normalise(%q) error = %v, want %v", tt.in, err, tt.err)
			}
			if got != tt.want {
				t.Errorf("Normalise(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestRelative(t *testing.T) {
	const root = "/home/dev/project"

	tests := []struct {
		name string
		in   string
		want string
		err  error
	}{
		{"already relative", "src/app.go", "src/app.go", nil},
		{"relative with dot", "./src/app.go", "src/app.go", nil},
		{"absolute under root", "/home/dev/project/src/app.go", "src/app.go", nil},
		{"absolute deep", "/home/dev/project/a/b/c.ts", "a/b/c.ts", nil},
		{"absolute outside root", "/home/dev/other/app.go", "", ErrOutsideRoot},
		{"sibling prefix not inside", "/home/dev/project2/app.go", "", ErrOutsideRoot},
		{"root itself", "/home/dev/project", "", ErrInvalid},
		{"empty", "", "", ErrInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Relative(root, tt.in)
			if !errors.Is(err, tt.err) {
				t.Fatalf("Relative(%q) error = %v, want %v", tt.in, err, tt.err)
			}
			if got != tt.want {
				t.Errorf("Relative(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
