package ops

import (
	"github.com/hpungsan/sift/internal/analyze"
	"github.com/hpungsan/sift/internal/filter"
	"github.com/hpungsan/sift/internal/store"
)

// ListInput contains parameters for the List operation.
type ListInput struct {
	Filters *filter.Set // optional; nil or empty returns every record
}

// ListOutput contains the result of the List operation.
type ListOutput struct {
	Items   []*analyze.Analysis `json:"items"`
	Count   int                 `json:"count"`
	Filters *filter.Set         `json:"filters_applied"`
}

// List returns the stored records matching the given filter set, in insertion
// order. Callers validate raw parameters with filter.Validate first; List
// assumes the set is already well-formed.
func List(st *store.Store, input ListInput) *ListOutput {
	set := input.Filters
	if set == nil {
		set = &filter.Set{}
	}

	items := filter.Apply(set, st.List())
	if items == nil {
		items = []*analyze.Analysis{}
	}

	return &ListOutput{
		Items:   items,
		Count:   len(items),
		Filters: set,
	}
}
