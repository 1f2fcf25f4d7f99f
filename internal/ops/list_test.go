package ops

import (
	"testing"

	"github.com/hpungsan/sift/internal/config"
	"github.com/hpungsan/sift/internal/filter"
	"github.com/hpungsan/sift/internal/store"
)

func seedStore(t *testing.T, values ...string) *store.Store {
	t.Helper()
	st := store.New()
	cfg := config.DefaultConfig()
	for _, v := range values {
		if _, err := Store(st, cfg, StoreInput{Value: strPtr(v)}); err != nil {
			t.Fatalf("Store(%q) failed: %v", v, err)
		}
	}
	return st
}

func TestList_NoFilters(t *testing.T) {
	st := seedStore(t, "aa", "ab", "abc")

	result := List(st, ListInput{})

	if result.Count != 3 {
		t.Errorf("Count = %d, want 3", result.Count)
	}
	if len(result.Items) != 3 {
		t.Errorf("len(Items) = %d, want 3", len(result.Items))
	}
	if result.Filters == nil || !result.Filters.IsEmpty() {
		t.Errorf("Filters = %+v, want empty set", result.Filters)
	}
}

func TestList_EmptyStore(t *testing.T) {
	st := store.New()

	result := List(st, ListInput{})

	if result.Count != 0 {
		t.Errorf("Count = %d, want 0", result.Count)
	}
	if result.Items == nil {
		t.Error("Items is nil, want empty slice")
	}
}

func TestList_FilterConjunction(t *testing.T) {
	st := seedStore(t, "aa", "ab", "abc")

	two := 2
	result := List(st, ListInput{Filters: &filter.Set{MinLength: &two, MaxLength: &two}})

	if result.Count != 2 {
		t.Fatalf("Count = %d, want 2", result.Count)
	}
	if result.Items[0].Value != "aa" || result.Items[1].Value != "ab" {
		t.Errorf("Items = [%q, %q], want [aa, ab]", result.Items[0].Value, result.Items[1].Value)
	}
	if result.Filters.MinLength == nil || *result.Filters.MinLength != 2 {
		t.Error("applied filter set not echoed back")
	}
}
