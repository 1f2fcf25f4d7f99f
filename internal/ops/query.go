package ops

import (
	"strings"

	"github.com/hpungsan/sift/internal/analyze"
	"github.com/hpungsan/sift/internal/errors"
	"github.com/hpungsan/sift/internal/filter"
	"github.com/hpungsan/sift/internal/query"
	"github.com/hpungsan/sift/internal/store"
)

// QueryInput contains parameters for the Query operation.
type QueryInput struct {
	Phrase string // required
}

// QueryOutput contains the result of the Query operation. It echoes the
// original phrase alongside the filter set that was derived from it.
type QueryOutput struct {
	Phrase  string              `json:"phrase"`
	Filters *filter.Set         `json:"interpreted_filters"`
	Items   []*analyze.Analysis `json:"items"`
	Count   int                 `json:"count"`
}

// Query interprets a natural-language phrase into a filter set and applies it
// to the store. A phrase matching none of the recognized patterns fails with
// UNPARSEABLE_QUERY. Interpreted sets are already valid and are applied
// without re-validation.
func Query(st *store.Store, input QueryInput) (*QueryOutput, error) {
	phrase := strings.TrimSpace(input.Phrase)
	if phrase == "" {
		return nil, errors.NewInvalidRequest("query phrase is required")
	}

	set, ok := query.Interpret(phrase)
	if !ok {
		return nil, errors.NewUnparseableQuery(phrase)
	}

	result := List(st, ListInput{Filters: set})

	return &QueryOutput{
		Phrase:  phrase,
		Filters: set,
		Items:   result.Items,
		Count:   result.Count,
	}, nil
}
