// Package collectibles tracks which collectible items have been found.
//
// The store is populated once from the kingdom catalog and lives for the
// whole process. Nothing is persisted.
package collectibles

import (
	"errors"
	"fmt"

	"nusantara/internal/engine"
)

// ErrNotFound is returned when an id is not in the registry.
var ErrNotFound = errors.New("collectible not found")

// Record is one collectible item.
type Record struct {
	ID    string
	Name  string
	Icon  string
	Found bool
}

// Stats is the global progress across all zones.
type Stats struct {
	Found int
	Total int
}

// Store is the in-memory collectible registry. It is not safe for
// concurrent use; the frame loop owns it.
type Store struct {
	zones   []string
	byZone  map[string][]*Record
	byID    map[string]*Record
	OnFound engine.Event[Record]
}

func NewStore() *Store {
	return &Store{
		byZone: make(map[string][]*Record),
		byID:   make(map[string]*Record),
	}
}

// Add registers records for a zone in declaration order. Duplicate ids are
// rejected.
func (s *Store) Add(zoneID string, records ...Record) error {
	if _, ok := s.byZone[zoneID]; !ok {
		s.zones = append(s.zones, zoneID)
		s.byZone[zoneID] = nil
	}
	for _, r := range records {
		if _, dup := s.byID[r.ID]; dup {
			return fmt.Errorf("add %q to %s: duplicate id", r.ID, zoneID)
		}
		rec := r
		s.byID[rec.ID] = &rec
		s.byZone[zoneID] = append(s.byZone[zoneID], &rec)
	}
	return nil
}

// ListForZone returns copies of the zone's records in declaration order.
// Unknown zones yield an empty list.
func (s *Store) ListForZone(zoneID string) []Record {
	recs := s.byZone[zoneID]
	out := make([]Record, 0, len(recs))
	for _, r := range recs {
		out = append(out, *r)
	}
	return out
}

// MarkFound flags the item as found. Marking an already found item returns
// it unchanged and does not notify listeners.
func (s *Store) MarkFound(id string) (Record, error) {
	r, ok := s.byID[id]
	if !ok {
		return Record{}, fmt.Errorf("mark %q: %w", id, ErrNotFound)
	}
	if r.Found {
		return *r, nil
	}
	r.Found = true
	s.OnFound.Invoke(*r)
	return *r, nil
}

// IsFound reports whether id has been found. Unknown ids are not found.
func (s *Store) IsFound(id string) bool {
	r, ok := s.byID[id]
	return ok && r.Found
}

// Get returns the record for id.
func (s *Store) Get(id string) (Record, bool) {
	r, ok := s.byID[id]
	if !ok {
		return Record{}, false
	}
	return *r, true
}

// Stats counts found and total items over every zone.
func (s *Store) Stats() Stats {
	var st Stats
	for _, r := range s.byID {
		st.Total++
		if r.Found {
			st.Found++
		}
	}
	return st
}

// Zones returns zone ids in the order they were first added.
func (s *Store) Zones() []string {
	return append([]string(nil), s.zones...)
}
