package region

import "border-blur/internal/geometry"

// Boundary holds a borough's canonical ring at full and simplified
// resolution.
type Boundary struct {
	Full       geometry.Ring
	Simplified geometry.Ring
}

// Store is an immutable mapping from borough to boundary rings. It is built
// once per boundary-data load and shared read-only across any number of
// concurrent classification calls; no locking is needed because nothing ever
// mutates it. Boroughs always iterate in the canonical All order.
type Store struct {
	boundaries map[Borough]Boundary
	order      []Borough
}

// NewStore builds a store from the given boundaries. Entries for boroughs
// absent from the map are skipped; the input map is copied so later mutation
// by the caller cannot leak in.
func NewStore(boundaries map[Borough]Boundary) *Store {
	s := &Store{boundaries: make(map[Borough]Boundary, len(boundaries))}
	for _, b := range All {
		bd, ok := boundaries[b]
		if !ok {
			continue
		}
		s.boundaries[b] = bd
		s.order = append(s.order, b)
	}
	return s
}

// Boundary returns the rings for a borough, if loaded.
func (s *Store) Boundary(b Borough) (Boundary, bool) {
	bd, ok := s.boundaries[b]
	return bd, ok
}

// Boroughs returns the loaded boroughs in canonical order.
func (s *Store) Boroughs() []Borough {
	out := make([]Borough, len(s.order))
	copy(out, s.order)
	return out
}

// Len returns the number of loaded boroughs.
func (s *Store) Len() int { return len(s.order) }
