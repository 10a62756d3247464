package service

import (
	"context"
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"border-blur/internal/classify"
	"border-blur/internal/geometry"
	"border-blur/internal/metrics"
	"border-blur/internal/models"
	"border-blur/internal/region"
)

// ClassifyService answers point-classification queries against a loaded
// region store. The store is immutable, so the service is safe for
// concurrent use without locking.
type ClassifyService struct {
	store   *region.Store
	workers int
	metrics *metrics.Metrics
	log     zerolog.Logger
}

// NewClassifyService creates a new classify service over the given store.
func NewClassifyService(store *region.Store, workers int, m *metrics.Metrics, logger zerolog.Logger) *ClassifyService {
	return &ClassifyService{store: store, workers: workers, metrics: m, log: logger}
}

// Classify converts the query point to canonical order and classifies it
// against the simplified rings.
func (s *ClassifyService) Classify(_ context.Context, lat, lon float64) (classify.Result, error) {
	// NaN compares false against everything, so the range checks alone
	// would let it through; the geometry layer assumes finite input.
	if math.IsNaN(lat) || lat < -90 || lat > 90 {
		return classify.Result{}, fmt.Errorf("service: invalid latitude: %f", lat)
	}
	if math.IsNaN(lon) || lon < -180 || lon > 180 {
		return classify.Result{}, fmt.Errorf("service: invalid longitude: %f", lon)
	}

	result, err := classify.Classify(geometry.Coordinate{Lat: lat, Lon: lon}, s.store, true)
	if err != nil {
		return classify.Result{}, err
	}
	s.metrics.ClassificationsTotal.WithLabelValues(string(result.Borough), string(result.Confidence)).Inc()
	return result, nil
}

// ClassifyBatch classifies every point independently across the configured
// worker count. Points must already be in canonical order; the handler
// converts them once at the API boundary.
func (s *ClassifyService) ClassifyBatch(_ context.Context, points []geometry.Coordinate) classify.BatchResult {
	batch := classify.ClassifyBatch(points, s.store, s.workers)
	for _, r := range batch.Results {
		s.metrics.ClassificationsTotal.WithLabelValues(string(r.Borough), string(r.Confidence)).Inc()
	}
	return batch
}

// Boundaries returns every loaded boundary in the provider's native order,
// for rendering.
func (s *ClassifyService) Boundaries(_ context.Context) []models.BoundaryRecord {
	records := make([]models.BoundaryRecord, 0, s.store.Len())
	for _, b := range s.store.Boroughs() {
		bd, _ := s.store.Boundary(b)
		records = append(records, models.BoundaryRecord{
			Name:           string(b),
			FullRing:       bd.Full.ToNative(),
			SimplifiedRing: bd.Simplified.ToNative(),
		})
	}
	return records
}
