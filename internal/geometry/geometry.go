// Package geometry implements the boundary assembly pipeline: raw boundary
// ways become segments, segments are chained into components, one component
// per region is selected and closed into a ring, and rings are sampled down
// for fast repeated containment tests.
//
// Every coordinate inside this package is latitude-first. Map-data providers
// deliver longitude-first pairs, so callers must go through FromNative /
// ToNative at the boundary; nothing in here ever sees provider order.
package geometry

import (
	"errors"
	"math"
)

// Coordinate is a geographic position in the canonical latitude-first order.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Segment is one ordered polyline sourced from a single raw boundary way.
// Segments are never mutated after construction.
type Segment struct {
	coords []Coordinate
}

// Component is a maximal chain of segments joined by shared endpoints.
// It may be open or closed.
type Component []Coordinate

// Ring is a closed component with at least 4 coordinates (3 distinct
// vertices plus the closing repeat). It is the only shape the classifier
// accepts for containment testing.
type Ring []Coordinate

var (
	// ErrEmptySegment reports an attempt to build a segment with no coordinates.
	ErrEmptySegment = errors.New("geometry: segment must contain at least one coordinate")
	// ErrMalformedCoordinate reports a non-finite coordinate in raw input.
	ErrMalformedCoordinate = errors.New("geometry: coordinate is not finite")
	// ErrNoBoundary reports that no component survived canonical selection.
	ErrNoBoundary = errors.New("geometry: no usable boundary component")
	// ErrShortRing reports a ring that lost closure validity, fewer than
	// 4 coordinates after sampling and re-closing.
	ErrShortRing = errors.New("geometry: ring has fewer than 4 coordinates")
	// ErrBadStride reports a non-positive simplification stride.
	ErrBadStride = errors.New("geometry: stride must be positive")
)

// NewSegment builds an immutable segment from canonical-order coordinates.
// The input slice is copied.
func NewSegment(coords []Coordinate) (Segment, error) {
	if len(coords) == 0 {
		return Segment{}, ErrEmptySegment
	}
	for _, c := range coords {
		if !isFinite(c) {
			return Segment{}, ErrMalformedCoordinate
		}
	}
	cp := make([]Coordinate, len(coords))
	copy(cp, coords)
	return Segment{coords: cp}, nil
}

// SegmentFromNative builds a segment from provider-order (longitude-first)
// pairs, converting each pair to canonical order.
func SegmentFromNative(pairs [][2]float64) (Segment, error) {
	return NewSegment(FromNative(pairs))
}

// Start returns the first coordinate of the segment.
func (s Segment) Start() Coordinate { return s.coords[0] }

// End returns the last coordinate of the segment.
func (s Segment) End() Coordinate { return s.coords[len(s.coords)-1] }

// Len returns the number of coordinates in the segment.
func (s Segment) Len() int { return len(s.coords) }

// Coords returns a copy of the segment's coordinates.
func (s Segment) Coords() []Coordinate {
	cp := make([]Coordinate, len(s.coords))
	copy(cp, s.coords)
	return cp
}

// FromNative converts provider-order pairs ([lon, lat]) to canonical
// coordinates.
func FromNative(pairs [][2]float64) []Coordinate {
	coords := make([]Coordinate, len(pairs))
	for i, p := range pairs {
		coords[i] = Coordinate{Lat: p[1], Lon: p[0]}
	}
	return coords
}

// ToNative converts a ring back to provider-order pairs ([lon, lat]) for
// serialization. Canonical order never leaves the process.
func (r Ring) ToNative() [][2]float64 {
	pairs := make([][2]float64, len(r))
	for i, c := range r {
		pairs[i] = [2]float64{c.Lon, c.Lat}
	}
	return pairs
}

// Valid reports whether the ring is closed and carries at least 4
// coordinates. Rings restored from storage must pass this before entering
// a store; rings produced by SelectCanonical and Simplify always do.
func (r Ring) Valid() bool {
	return len(r) >= 4 && r[0] == r[len(r)-1]
}

// Closed reports whether the first and last coordinates coincide.
func (c Component) Closed() bool {
	return len(c) > 1 && c[0] == c[len(c)-1]
}

// DistinctVertices counts the distinct coordinates in the component.
func (c Component) DistinctVertices() int {
	seen := make(map[Coordinate]struct{}, len(c))
	for _, pt := range c {
		seen[pt] = struct{}{}
	}
	return len(seen)
}

func isFinite(c Coordinate) bool {
	return !math.IsNaN(c.Lat) && !math.IsInf(c.Lat, 0) &&
		!math.IsNaN(c.Lon) && !math.IsInf(c.Lon, 0)
}
