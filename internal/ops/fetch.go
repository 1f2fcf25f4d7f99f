package ops

import (
	"github.com/hpungsan/sift/internal/analyze"
	"github.com/hpungsan/sift/internal/errors"
	"github.com/hpungsan/sift/internal/store"
)

// FetchInput contains parameters for the Fetch operation.
type FetchInput struct {
	Value *string // required; looked up by recomputed digest
}

// Fetch retrieves the analysis record for value.
func Fetch(st *store.Store, input FetchInput) (*analyze.Analysis, error) {
	value, err := requireValue(input.Value)
	if err != nil {
		return nil, err
	}

	record, ok := st.Get(value)
	if !ok {
		return nil, errors.NewNotFound(analyze.Hash(value))
	}
	return record, nil
}
