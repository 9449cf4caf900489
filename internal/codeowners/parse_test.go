package codeowners

import (
	"reflect"
	"testing"
)

func TestParseRules(t *testing.T) {
	content := `
# Default owners
*       @org/maintainers

*.go    @backend @org/go-reviewers
docs/   @writers
/build  @devops trailing-comment-without-at
vendor/
`

	rules, owners := ParseRules(content)

	want := []Rule{
		{Pattern: "*", Owners: []string{"@org/maintainers"}},
		{Pattern: "*.go", Owners: []string{"@backend", "@org/go-reviewers"}},
		{Pattern: "docs/", Owners: []string{"@writers"}},
		{Pattern: "/build", Owners: []string{"@devops"}},
		{Pattern: "vendor/", Owners: nil},
	}
	if !reflect.DeepEqual(rules, want) {
		t.Fatalf("ParseRules rules = %+v, want %+v", rules, want)
	}

	wantOwners := []string{"@backend", "@devops", "@org/go-reviewers", "@org/maintainers", "@writers"}
	if !reflect.DeepEqual(owners, wantOwners) {
		t.Fatalf("ParseRules owners = %v, want %v", owners, wantOwners)
	}
}

func TestParseRules_OwnerTokenFilter(t *testing.T) {
	// Tokens without "@" are dropped; email addresses count as owners.
	rules, owners := ParseRules("*.md docs-team dev@example.com @writers")

	if len(rules) != 1 {
		t.Fatalf("got %d rules, want 1", len(rules))
	}
	want := []string{"dev@example.com", "@writers"}
	if !reflect.DeepEqual(rules[0].Owners, want) {
		t.Fatalf("owners = %v, want %v", rules[0].Owners, want)
	}
	if len(owners) != 2 {
		t.Fatalf("catalog = %v, want 2 entries", owners)
	}
}

func TestParseRules_OwnerlessRuleKept(t *testing.T) {
	// A pattern with no owner tokens is an explicit unowned declaration,
	// not a parse error.
	rules, owners := ParseRules("build/\ntmp/ not-an-owner")

	if len(rules) != 2 {
		t.Fatalf("got %d rules, want 2", len(rules))
	}
	for _, r := range rules {
		if len(r.Owners) != 0 {
			t.Errorf("rule %q has owners %v, want none", r.Pattern, r.Owners)
		}
	}
	if len(owners) != 0 {
		t.Fatalf("catalog = %v, want empty", owners)
	}
}

func TestParseRules_WindowsLineEndings(t *testing.T) {
	rules, _ := ParseRules("*.go @backend\r\n*.js @frontend\r\n")

	if len(rules) != 2 {
		t.Fatalf("got %d rules, want 2", len(rules))
	}
	if rules[1].Pattern != "*.js" {
		t.Fatalf("pattern = %q, want *.js", rules[1].Pattern)
	}
}

func TestParseRules_Idempotent(t *testing.T) {
	content := "*.go @backend\ndocs/ @writers\nbuild/\n"

	r1, o1 := ParseRules(content)
	r2, o2 := ParseRules(content)

	if !reflect.DeepEqual(r1, r2) {
		t.Fatalf("rule lists differ across identical parses:\n%+v\n%+v", r1, r2)
	}
	if !reflect.DeepEqual(o1, o2) {
		t.Fatalf("catalogs differ across identical parses: %v vs %v", o1, o2)
	}
}

func TestParseRules_Empty(t *testing.T) {
	rules, owners := ParseRules("")
	if len(rules) != 0 || len(owners) != 0 {
		t.Fatalf("empty content parsed to rules=%v owners=%v", rules, owners)
	}
}
