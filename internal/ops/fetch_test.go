package ops

import (
	"testing"

	"github.com/hpungsan/sift/internal/config"
	"github.com/hpungsan/sift/internal/errors"
	"github.com/hpungsan/sift/internal/store"
)

func TestFetch(t *testing.T) {
	st := store.New()
	cfg := config.DefaultConfig()

	stored, err := Store(st, cfg, StoreInput{Value: strPtr("fetch me")})
	if err != nil {
		t.Fatalf("Store failed: %v", err)
	}

	got, err := Fetch(st, FetchInput{Value: strPtr("fetch me")})
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if got.ID != stored.ID {
		t.Errorf("ID = %q, want %q", got.ID, stored.ID)
	}
}

func TestFetch_NotFound(t *testing.T) {
	st := store.New()

	_, err := Fetch(st, FetchInput{Value: strPtr("missing")})
	if !errors.Is(err, errors.ErrNotFound) {
		t.Errorf("Fetch should return ErrNotFound, got: %v", err)
	}
}

func TestFetch_MissingValue(t *testing.T) {
	st := store.New()

	_, err := Fetch(st, FetchInput{})
	if !errors.Is(err, errors.ErrInvalidRequest) {
		t.Errorf("Fetch should return ErrInvalidRequest, got: %v", err)
	}
}
