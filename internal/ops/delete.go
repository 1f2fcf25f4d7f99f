package ops

import (
	"github.com/hpungsan/sift/internal/analyze"
	"github.com/hpungsan/sift/internal/errors"
	"github.com/hpungsan/sift/internal/store"
)

// DeleteInput contains parameters for the Delete operation.
type DeleteInput struct {
	Value *string // required; addressed by recomputed digest
}

// DeleteOutput contains the result of the Delete operation.
type DeleteOutput struct {
	Deleted bool   `json:"deleted"`
	ID      string `json:"id"`
}

// Delete removes the analysis record for value. Absent content is NOT_FOUND.
func Delete(st *store.Store, input DeleteInput) (*DeleteOutput, error) {
	value, err := requireValue(input.Value)
	if err != nil {
		return nil, err
	}

	digest := analyze.Hash(value)
	if !st.Delete(value) {
		return nil, errors.NewNotFound(digest)
	}

	return &DeleteOutput{
		Deleted: true,
		ID:      digest,
	}, nil
}
