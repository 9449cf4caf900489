package codeowners

import (
	"fmt"
	"sync"
	"testing"
)

func TestEngine_EmptyState(t *testing.T) {
	e := New()

	if e.HasRuleFile() {
		t.Fatal("fresh engine reports a rule file")
	}
	if info := e.Resolve("a.go"); !info.Unowned {
		t.Fatal("fresh engine must resolve everything unowned")
	}
	if owners := e.Owners(); len(owners) != 0 {
		t.Fatalf("fresh engine owners = %v, want empty", owners)
	}
}

func TestEngine_LoadAndClear(t *testing.T) {
	e := New()
	e.Load("*.go @backend", "CODEOWNERS")

	if !e.HasRuleFile() {
		t.Fatal("engine lost the loaded rule file")
	}
	if e.RulePath() != "CODEOWNERS" {
		t.Fatalf("rule path = %q", e.RulePath())
	}
	if info := e.Resolve("main.go"); info.Unowned {
		t.Fatal("main.go must resolve to @backend")
	}

	e.Clear()
	if e.HasRuleFile() {
		t.Fatal("Clear did not reset the engine")
	}
}

// Reload must swap whole snapshots: a reader never sees rules from one
// generation with the catalog of another.
func TestEngine_SnapshotSwapIsAtomic(t *testing.T) {
	e := New()
	e.Load("*.v0 @gen0", "CODEOWNERS")

	var wg sync.WaitGroup
	stop := make(chan struct{})

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 1; ; i++ {
			select {
			case <-stop:
				return
			default:
			}
			gen := fmt.Sprintf("*.v%d @gen%d", i, i)
			e.Load(gen, "CODEOWNERS")
		}
	}()

	for i := 0; i < 1000; i++ {
		s := e.Snapshot()
		if len(s.Rules) != 1 || len(s.Owners) != 1 {
			t.Fatalf("torn snapshot: %+v", s)
		}
		// The rule generation and catalog generation must agree.
		wantOwner := "@gen" + s.Rules[0].Pattern[len("*.v"):]
		if s.Owners[0] != wantOwner {
			t.Fatalf("snapshot mixes generations: rules=%v owners=%v", s.Rules, s.Owners)
		}
	}

	close(stop)
	wg.Wait()
}
