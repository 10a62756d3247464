// Package classify decides which borough, if any, contains a query point,
// with a graded confidence when containment is ambiguous.
package classify

import (
	"errors"

	"border-blur/internal/geometry"
	"border-blur/internal/region"
)

// Confidence grades how certain a classification is.
type Confidence string

const (
	// High means the point was inside (or on) a borough ring.
	High Confidence = "high"
	// Medium means the point was outside every ring but within
	// mediumThreshold of the nearest one (roughly 111 m at NYC's latitude).
	Medium Confidence = "medium"
	// Low means the point was within lowThreshold of the nearest ring
	// (roughly 555 m).
	Low Confidence = "low"
	// None means no borough is anywhere near the point.
	None Confidence = "none"
)

// Distance thresholds in raw angular degrees. The meter figures above are
// approximations at NYC's latitude only; the degree cutoffs are the source
// of truth and are deliberately not converted to ground distance.
const (
	mediumThreshold = 0.001
	lowThreshold    = 0.005
)

// Result is the outcome of classifying one point.
type Result struct {
	Borough    region.Borough `json:"borough"`
	Confidence Confidence     `json:"confidence"`
	// Distance to the assigned borough's boundary in angular degrees;
	// zero when contained.
	Distance float64 `json:"distance"`
}

// ErrEmptyStore reports classification against a store with no boundaries.
var ErrEmptyStore = errors.New("classify: region store is empty")

// Classify tests pt against every borough in the store and returns the
// containing borough, or the nearest one with a confidence tier, or
// Unclassified/None when nothing is close. The simplified rings are used
// when useSimplified is set (the default for callers on the hot path); the
// full rings otherwise.
//
// pt must already be in canonical latitude-first order; the HTTP layer
// converts query input exactly once before calling in here.
//
// When more than one borough contains the point (possible with overlapping
// simplified rings) the first one in region.All order wins; that tie-break
// is a documented rule, not an accident of iteration.
func Classify(pt geometry.Coordinate, store *region.Store, useSimplified bool) (Result, error) {
	if store.Len() == 0 {
		return Result{Borough: region.Unclassified, Confidence: None}, ErrEmptyStore
	}

	for _, b := range store.Boroughs() {
		bd, _ := store.Boundary(b)
		if geometry.PointInRing(pt, pick(bd, useSimplified)) {
			return Result{Borough: b, Confidence: High, Distance: 0}, nil
		}
	}

	nearest := region.Unclassified
	minDist := 0.0
	for i, b := range store.Boroughs() {
		bd, _ := store.Boundary(b)
		d := geometry.DistanceToRing(pt, pick(bd, useSimplified))
		if i == 0 || d < minDist {
			nearest = b
			minDist = d
		}
	}

	switch {
	case minDist < mediumThreshold:
		return Result{Borough: nearest, Confidence: Medium, Distance: minDist}, nil
	case minDist < lowThreshold:
		return Result{Borough: nearest, Confidence: Low, Distance: minDist}, nil
	default:
		return Result{Borough: region.Unclassified, Confidence: None, Distance: minDist}, nil
	}
}

func pick(bd region.Boundary, simplified bool) geometry.Ring {
	if simplified {
		return bd.Simplified
	}
	return bd.Full
}
