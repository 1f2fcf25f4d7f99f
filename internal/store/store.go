package store

import (
	"sync"

	"github.com/hpungsan/sift/internal/analyze"
	"github.com/hpungsan/sift/internal/errors"
)

// Store is a content-addressed, in-memory mapping from digest to analysis
// record. Keys are always derived by recomputing the digest of the raw value;
// callers never supply an identity, so identity and content cannot diverge.
// State lives for the process lifetime only.
type Store struct {
	mu      sync.RWMutex
	records map[string]*analyze.Analysis
	order   []string // digests in insertion order
}

// New creates an empty store.
func New() *Store {
	return &Store{
		records: make(map[string]*analyze.Analysis),
	}
}

// Put analyzes value and inserts the record, keyed by its digest. If a record
// with the same digest already exists, Put fails with a duplicate-content
// error and the existing record is untouched; analysis is skipped on
// duplicates since the result would be identical except for the timestamp.
// The existence check and insert happen under one lock, so two concurrent
// Put calls for the same new value cannot both succeed.
func (s *Store) Put(value string) (*analyze.Analysis, error) {
	digest := analyze.Hash(value)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.records[digest]; exists {
		return nil, errors.NewDuplicateContent(digest)
	}

	record := analyze.Analyze(value)
	s.records[digest] = record
	s.order = append(s.order, digest)
	return record, nil
}

// Get recomputes the digest of value and looks the record up directly; no
// scanning. The second return reports whether the record was present.
func (s *Store) Get(value string) (*analyze.Analysis, bool) {
	digest := analyze.Hash(value)

	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.records[digest]
	return record, ok
}

// Delete removes the record for value if present and reports whether a
// removal occurred. A deleted value may be stored again as a fresh record.
func (s *Store) Delete(value string) bool {
	digest := analyze.Hash(value)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.records[digest]; !exists {
		return false
	}

	delete(s.records, digest)
	for i, d := range s.order {
		if d == digest {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// List returns a snapshot of all current records in insertion order.
func (s *Store) List() []*analyze.Analysis {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]*analyze.Analysis, 0, len(s.order))
	for _, digest := range s.order {
		records = append(records, s.records[digest])
	}
	return records
}

// Len returns the number of stored records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
