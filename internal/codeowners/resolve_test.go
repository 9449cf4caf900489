package codeowners

import (
	"reflect"
	"testing"
)

func snapshotOf(t *testing.T, content string) *Snapshot {
	t.Helper()
	rules, owners := ParseRules(content)
	return &Snapshot{Rules: rules, Owners: owners, RulePath: "CODEOWNERS", Found: true}
}

func TestResolve_LastMatchWins(t *testing.T) {
	s := snapshotOf(t, `
*.js    @frontend
/api/*.js @backend
`)

	info := s.Resolve("api/server.js")

	if info.Unowned {
		t.Fatal("api/server.js resolved unowned, want @backend")
	}
	if !reflect.DeepEqual(info.Owners, []string{"@backend"}) {
		t.Fatalf("owners = %v, want [@backend]", info.Owners)
	}
	if info.MatchingPattern != "/api/*.js" {
		t.Fatalf("matching pattern = %q, want /api/*.js", info.MatchingPattern)
	}

	// Paths outside api/ stay with the earlier, broader rule.
	info = s.Resolve("web/app.js")
	if !reflect.DeepEqual(info.Owners, []string{"@frontend"}) {
		t.Fatalf("owners = %v, want [@frontend]", info.Owners)
	}
}

func TestResolve_SingleRuleOwners(t *testing.T) {
	// Owners come only from the single last-matching rule, never merged
	// across matches.
	s := snapshotOf(t, `
*       @org/all
*.go    @backend
src/    @core
`)

	info := s.Resolve("src/main.go")
	if !reflect.DeepEqual(info.Owners, []string{"@core"}) {
		t.Fatalf("owners = %v, want [@core] only", info.Owners)
	}
}

func TestResolve_OwnerlessRule(t *testing.T) {
	s := snapshotOf(t, `
*       @org/all
build/
`)

	info := s.Resolve("build/output.bin")
	if !info.Unowned {
		t.Fatal("build/output.bin must be unowned")
	}
	if len(info.Owners) != 0 {
		t.Fatalf("owners = %v, want empty", info.Owners)
	}
	if info.MatchingPattern != "build/" {
		t.Fatalf("matching pattern = %q, want build/", info.MatchingPattern)
	}
}

func TestResolve_NoMatch(t *testing.T) {
	s := snapshotOf(t, "*.go @backend")

	info := s.Resolve("README.md")
	if !info.Unowned || len(info.Owners) != 0 || info.MatchingPattern != "" {
		t.Fatalf("unexpected resolution %+v, want unowned default", info)
	}
}

func TestResolve_Defaults(t *testing.T) {
	// No rule file, empty rule list, and empty path are all steady states
	// resolving to unowned, not errors.
	cases := map[string]*Snapshot{
		"no rule file": {},
		"empty rules":  {Found: true},
	}
	for name, s := range cases {
		if info := s.Resolve("a/b.txt"); !info.Unowned || len(info.Owners) != 0 {
			t.Errorf("%s: got %+v, want unowned default", name, info)
		}
	}

	s := snapshotOf(t, "* @org/all")
	if info := s.Resolve(""); !info.Unowned {
		t.Error("empty path must resolve unowned")
	}
}

func TestResolve_OwnerOrderPreserved(t *testing.T) {
	s := snapshotOf(t, "*.go @zeta @alpha @mid")

	info := s.Resolve("main.go")
	if !reflect.DeepEqual(info.Owners, []string{"@zeta", "@alpha", "@mid"}) {
		t.Fatalf("owners = %v, want file order preserved", info.Owners)
	}
}
