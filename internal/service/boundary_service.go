package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"border-blur/internal/geometry"
	"border-blur/internal/metrics"
	"border-blur/internal/models"
	"border-blur/internal/overpass"
	"border-blur/internal/region"
)

// BoundarySource supplies raw boundary data for one borough.
type BoundarySource interface {
	FetchBoundary(ctx context.Context, b region.Borough) (*overpass.RawBoundary, error)
}

// BoundaryRepository persists and restores assembled boundaries.
type BoundaryRepository interface {
	SaveBoundaries(ctx context.Context, records []models.BoundaryRecord) error
	LoadBoundaries(ctx context.Context) ([]models.BoundaryRecord, error)
}

// BoundaryService runs the boundary pipeline: fetch raw ways, convert to
// canonical order, assemble components, select and close the canonical ring,
// simplify, and build the immutable region store.
type BoundaryService struct {
	source  BoundarySource
	repo    BoundaryRepository
	stride  int
	metrics *metrics.Metrics
	log     zerolog.Logger
}

// NewBoundaryService creates a new boundary service.
func NewBoundaryService(source BoundarySource, repo BoundaryRepository, stride int, m *metrics.Metrics, logger zerolog.Logger) *BoundaryService {
	return &BoundaryService{source: source, repo: repo, stride: stride, metrics: m, log: logger}
}

// Refresh fetches and assembles every borough boundary, persists the result,
// and returns the new store. A borough whose boundary cannot be fetched,
// assembled, or simplified is skipped with a log line rather than failing
// the whole refresh; the worst outcome is a borough being unavailable.
func (s *BoundaryService) Refresh(ctx context.Context) (*region.Store, error) {
	start := time.Now()
	boundaries := make(map[region.Borough]region.Boundary)
	var records []models.BoundaryRecord

	for _, b := range region.All {
		raw, err := s.source.FetchBoundary(ctx, b)
		if err != nil {
			s.log.Error().Err(err).Str("borough", string(b)).Msg("failed to fetch boundary")
			continue
		}
		bd, err := s.assembleBoundary(b, raw)
		if err != nil {
			s.log.Error().Err(err).Str("borough", string(b)).Msg("failed to assemble boundary")
			continue
		}
		boundaries[b] = bd
		records = append(records, models.BoundaryRecord{
			Name:           string(b),
			FullRing:       bd.Full.ToNative(),
			SimplifiedRing: bd.Simplified.ToNative(),
		})
		s.metrics.BoundaryVertices.WithLabelValues(string(b), "full").Set(float64(len(bd.Full)))
		s.metrics.BoundaryVertices.WithLabelValues(string(b), "simplified").Set(float64(len(bd.Simplified)))
	}

	if len(boundaries) == 0 {
		return nil, fmt.Errorf("service: no borough boundary could be assembled")
	}

	if s.repo != nil {
		if err := s.repo.SaveBoundaries(ctx, records); err != nil {
			return nil, fmt.Errorf("service: failed to persist boundaries: %w", err)
		}
	}

	s.metrics.BoundaryRefreshSeconds.Observe(time.Since(start).Seconds())
	s.log.Info().Int("boroughs", len(boundaries)).Dur("took", time.Since(start)).Msg("boundary refresh complete")
	return region.NewStore(boundaries), nil
}

// Load rebuilds the store from previously persisted boundaries. A record
// with an unknown borough name or a ring that is no longer closed and
// at least 4 coordinates is skipped with a warning; storage contents are
// not trusted to satisfy the ring contract.
func (s *BoundaryService) Load(ctx context.Context) (*region.Store, error) {
	records, err := s.repo.LoadBoundaries(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load boundaries: %w", err)
	}

	boundaries := make(map[region.Borough]region.Boundary, len(records))
	for _, rec := range records {
		b := region.Borough(rec.Name)
		if !b.Valid() {
			s.log.Warn().Str("name", rec.Name).Msg("skipping persisted boundary with unknown borough name")
			continue
		}
		full := geometry.Ring(geometry.FromNative(rec.FullRing))
		simplified := geometry.Ring(geometry.FromNative(rec.SimplifiedRing))
		if !full.Valid() || !simplified.Valid() {
			s.log.Warn().Str("name", rec.Name).Msg("skipping persisted boundary with degenerate ring")
			continue
		}
		boundaries[b] = region.Boundary{Full: full, Simplified: simplified}
	}
	return region.NewStore(boundaries), nil
}

// assembleBoundary turns one borough's raw ways into a full and simplified
// ring. Only ways carrying the outer role participate; a way with malformed
// coordinates is dropped and logged, and assembly proceeds with the rest.
func (s *BoundaryService) assembleBoundary(b region.Borough, raw *overpass.RawBoundary) (region.Boundary, error) {
	var segments []geometry.Segment
	for _, id := range raw.OuterWayIDs {
		pairs, ok := raw.Ways[id]
		if !ok {
			s.log.Warn().Str("borough", string(b)).Int64("way", id).Msg("outer way has no geometry")
			continue
		}
		seg, err := geometry.SegmentFromNative(pairs)
		if err != nil {
			s.log.Warn().Err(err).Str("borough", string(b)).Int64("way", id).Msg("dropping malformed way")
			continue
		}
		segments = append(segments, seg)
	}

	components := geometry.Assemble(segments)
	full, err := geometry.SelectCanonical(components)
	if err != nil {
		return region.Boundary{}, fmt.Errorf("service: no boundary available for %s: %w", b, err)
	}
	simplified, err := geometry.Simplify(full, s.stride)
	if err != nil {
		return region.Boundary{}, fmt.Errorf("service: failed to simplify boundary for %s: %w", b, err)
	}
	return region.Boundary{Full: full, Simplified: simplified}, nil
}
