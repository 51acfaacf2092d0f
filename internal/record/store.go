package record

import (
	"slices"
	"sync"
)

// Dataset is a full set of records grouped by kind, in source order.
type Dataset struct {
	Records map[Kind][]Record
}

// Len returns the total number of records across all kinds.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	n := 0
	for _, recs := range d.Records {
		n += len(recs)
	}
	return n
}

// Store holds the ordered, read-only record sequences the views render.
// It is populated once at startup and may be swapped wholesale by a dataset
// reload; views never mutate it.
type Store struct {
	mu      sync.RWMutex
	records map[Kind][]Record
	loadErr error
}

// NewStore creates a store populated from ds. A nil dataset yields an empty
// store.
func NewStore(ds *Dataset) *Store {
	s := &Store{records: make(map[Kind][]Record)}
	s.Replace(ds)
	return s
}

// Records returns a copy of the ordered records of a kind.
func (s *Store) Records(kind Kind) []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.records[kind])
}

// Count returns the number of records of a kind.
func (s *Store) Count(kind Kind) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records[kind])
}

// Replace swaps the store contents for ds and clears any load error.
func (s *Store) Replace(ds *Dataset) {
	next := make(map[Kind][]Record)
	if ds != nil {
		for k, recs := range ds.Records {
			next[k] = slices.Clone(recs)
		}
	}
	s.mu.Lock()
	s.records = next
	s.loadErr = nil
	s.mu.Unlock()
}

// Prepend inserts rec at the front of its kind's sequence. New campaigns
// are listed first.
func (s *Store) Prepend(rec Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[rec.Kind()] = append([]Record{rec}, s.records[rec.Kind()]...)
}

// SetLoadError records a fetch failure so views can surface it in their
// empty state. The existing records are kept.
func (s *Store) SetLoadError(err error) {
	s.mu.Lock()
	s.loadErr = err
	s.mu.Unlock()
}

// LoadError returns the last fetch failure, if any.
func (s *Store) LoadError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadErr
}
