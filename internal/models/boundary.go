package models

// BoundaryRecord is the persisted form of one borough boundary. Rings are
// stored as ordered longitude-first pairs, the provider's native order;
// conversion from canonical order happens at this serialization boundary.
type BoundaryRecord struct {
	Name           string       `json:"name"`
	FullRing       [][2]float64 `json:"full_ring"`
	SimplifiedRing [][2]float64 `json:"simplified_ring"`
}
