// store.go implements the keyed store owned by the collector goroutine.

package errreport

import (
	"iter"
	"time"

	"github.com/google/uuid"
)

// Store maps keys to records.
//
// While a collector is running its store is touched only by the collector
// goroutine, so the store has no locks. Stop hands the store to the caller,
// after which it is read-only history: the exported methods never mutate.
//
// Records are kept in insertion order and never removed, which makes a key's
// sequence number its index.
type Store[E any] struct {
	collector uuid.UUID
	records   []Record[E]
}

func newStore[E any](collector uuid.UUID, capacity int) *Store[E] {
	return &Store[E]{
		collector: collector,
		records:   make([]Record[E], 0, capacity),
	}
}

// insert appends a record with no extra and returns its fresh key.
func (s *Store[E]) insert(err error, at time.Time) Key {
	key := Key{collector: s.collector, seq: uint64(len(s.records)) + 1}
	s.records = append(s.records, Record[E]{key: key, err: err, reportedAt: at})
	return key
}

// getMut returns the record for key, or nil if the key was not issued by
// this store.
func (s *Store[E]) getMut(key Key) *Record[E] {
	if key.collector != s.collector || key.seq == 0 || key.seq > uint64(len(s.records)) {
		return nil
	}
	return &s.records[key.seq-1]
}

func (s *Store[E]) forEach(fn func(Record[E])) {
	for _, rec := range s.records {
		fn(rec)
	}
}

func (s *Store[E]) forEachMut(fn func(*Record[E])) {
	for i := range s.records {
		fn(&s.records[i])
	}
}

// Len returns the number of records.
func (s *Store[E]) Len() int {
	return len(s.records)
}

// Get returns a copy of the record for key.
// Returns the zero Record and false if key is unknown.
func (s *Store[E]) Get(key Key) (Record[E], bool) {
	rec := s.getMut(key)
	if rec == nil {
		return Record[E]{}, false
	}
	return *rec, true
}

// All iterates over every record in insertion order.
func (s *Store[E]) All() iter.Seq2[Key, Record[E]] {
	return func(yield func(Key, Record[E]) bool) {
		for _, rec := range s.records {
			if !yield(rec.key, rec) {
				return
			}
		}
	}
}

// Keys returns every key in insertion order.
func (s *Store[E]) Keys() []Key {
	keys := make([]Key, len(s.records))
	for i, rec := range s.records {
		keys[i] = rec.key
	}
	return keys
}

// Map copies the store into a map.
func (s *Store[E]) Map() map[Key]Record[E] {
	m := make(map[Key]Record[E], len(s.records))
	for _, rec := range s.records {
		m[rec.key] = rec
	}
	return m
}
