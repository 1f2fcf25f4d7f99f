package ops

import (
	"github.com/hpungsan/sift/internal/analyze"
	"github.com/hpungsan/sift/internal/config"
	"github.com/hpungsan/sift/internal/store"
)

// StoreInput contains parameters for the Store operation.
type StoreInput struct {
	Value *string // required; empty string is valid
}

// Store analyzes value and inserts it into the store, keyed by its content
// digest. Duplicate content fails with DUPLICATE_CONTENT and leaves the
// existing record untouched.
func Store(st *store.Store, cfg *config.Config, input StoreInput) (*analyze.Analysis, error) {
	value, err := requireValue(input.Value)
	if err != nil {
		return nil, err
	}
	if err := checkSize(cfg, value); err != nil {
		return nil, err
	}
	return st.Put(value)
}
