package ops

import (
	"testing"

	"github.com/hpungsan/sift/internal/analyze"
	"github.com/hpungsan/sift/internal/config"
	"github.com/hpungsan/sift/internal/errors"
	"github.com/hpungsan/sift/internal/store"
)

func TestDelete(t *testing.T) {
	st := store.New()
	cfg := config.DefaultConfig()

	if _, err := Store(st, cfg, StoreInput{Value: strPtr("doomed")}); err != nil {
		t.Fatalf("Store failed: %v", err)
	}

	result, err := Delete(st, DeleteInput{Value: strPtr("doomed")})
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if !result.Deleted {
		t.Error("Deleted = false, want true")
	}
	if result.ID != analyze.Hash("doomed") {
		t.Errorf("ID = %q, want digest of the deleted value", result.ID)
	}
	if st.Len() != 0 {
		t.Errorf("Len() = %d, want 0", st.Len())
	}
}

func TestDelete_NotFound(t *testing.T) {
	st := store.New()

	_, err := Delete(st, DeleteInput{Value: strPtr("missing")})
	if !errors.Is(err, errors.ErrNotFound) {
		t.Errorf("Delete should return ErrNotFound, got: %v", err)
	}
}

func TestDelete_MissingValue(t *testing.T) {
	st := store.New()

	_, err := Delete(st, DeleteInput{})
	if !errors.Is(err, errors.ErrInvalidRequest) {
		t.Errorf("Delete should return ErrInvalidRequest, got: %v", err)
	}
}
