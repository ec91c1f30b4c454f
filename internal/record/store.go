package record

import (
	"strconv"
	"sync"
)

// Store owns the in-memory record collection and the id counter. Go's HTTP
// server handles requests concurrently, so every read-modify-write sequence
// is serialized behind a mutex. The store lives for the process lifetime;
// nothing is persisted.
type Store struct {
	mu      sync.RWMutex
	records []Record
	nextID  int
}

// Update carries a partial change set for UpdateByID. A nil field means
// "leave untouched"; presence is the pointer.
type Update struct {
	Name      *string
	Disease   *Disease
	DateAdded *string
}

// NewStore creates a store seeded with the given records. The id counter
// starts above the highest numeric seed id so ids are never reused.
func NewStore(seed []Record) *Store {
	next := 1
	for _, rec := range seed {
		if n, err := strconv.Atoi(rec.ID); err == nil && n >= next {
			next = n + 1
		}
	}
	return &Store{
		records: append([]Record(nil), seed...),
		nextID:  next,
	}
}

// List returns a copy of the collection in insertion order
func (s *Store) List() []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Record(nil), s.records...)
}

// FindByID returns the record with the matching id
func (s *Store) FindByID(id string) (Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, rec := range s.records {
		if rec.ID == id {
			return rec, true
		}
	}
	return Record{}, false
}

// Insert appends the record and returns the stored value
func (s *Store) Insert(rec Record) Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, rec)
	return rec
}

// RemoveByID splices out and returns the record with the matching id
func (s *Store) RemoveByID(id string) (Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, rec := range s.records {
		if rec.ID == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return rec, true
		}
	}
	return Record{}, false
}

// UpdateByID applies the change set to the record with the matching id in
// one critical section. Callers validate before calling, so a miss here
// leaves the collection untouched.
func (s *Store) UpdateByID(id string, upd Update) (Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.records {
		if s.records[i].ID != id {
			continue
		}
		if upd.Name != nil {
			s.records[i].Name = *upd.Name
		}
		if upd.Disease != nil {
			s.records[i].Disease = *upd.Disease
		}
		if upd.DateAdded != nil {
			s.records[i].DateAdded = *upd.DateAdded
		}
		return s.records[i], true
	}
	return Record{}, false
}

// NextID returns a fresh identifier, strictly increasing and never reused
func (s *Store) NextID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := strconv.Itoa(s.nextID)
	s.nextID++
	return id
}

// Len returns the current collection size
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
