package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"border-blur/internal/geometry"
	"border-blur/internal/region"
)

func square(lat, lon, size float64) geometry.Ring {
	return geometry.Ring{
		{Lat: lat, Lon: lon},
		{Lat: lat, Lon: lon + size},
		{Lat: lat + size, Lon: lon + size},
		{Lat: lat + size, Lon: lon},
		{Lat: lat, Lon: lon},
	}
}

func storeWith(boundaries map[region.Borough]geometry.Ring) *region.Store {
	m := make(map[region.Borough]region.Boundary, len(boundaries))
	for b, ring := range boundaries {
		m[b] = region.Boundary{Full: ring, Simplified: ring}
	}
	return region.NewStore(m)
}

// unitSquareStore loads a single borough backed by the unit square.
func unitSquareStore() *region.Store {
	return storeWith(map[region.Borough]geometry.Ring{
		region.Manhattan: square(0, 0, 1),
	})
}

func TestClassify_Contained(t *testing.T) {
	result, err := Classify(geometry.Coordinate{Lat: 0.5, Lon: 0.5}, unitSquareStore(), true)

	require.NoError(t, err)
	assert.Equal(t, Result{Borough: region.Manhattan, Confidence: High, Distance: 0}, result)

	// A high-confidence result must agree with an independent containment test.
	bd, _ := unitSquareStore().Boundary(region.Manhattan)
	assert.True(t, geometry.PointInRing(geometry.Coordinate{Lat: 0.5, Lon: 0.5}, bd.Simplified))
}

func TestClassify_OnBoundaryIsContained(t *testing.T) {
	result, err := Classify(geometry.Coordinate{Lat: 0, Lon: 0.5}, unitSquareStore(), true)

	require.NoError(t, err)
	assert.Equal(t, High, result.Confidence)
	assert.Equal(t, region.Manhattan, result.Borough)
	assert.Zero(t, result.Distance)
}

func TestClassify_ConfidenceTiers(t *testing.T) {
	tests := []struct {
		name           string
		pt             geometry.Coordinate
		wantBorough    region.Borough
		wantConfidence Confidence
		wantDistance   float64
	}{
		{
			name:           "medium just outside",
			pt:             geometry.Coordinate{Lat: -0.0005, Lon: 0.5},
			wantBorough:    region.Manhattan,
			wantConfidence: Medium,
			wantDistance:   0.0005,
		},
		{
			name:           "low a bit further out",
			pt:             geometry.Coordinate{Lat: -0.003, Lon: 0.5},
			wantBorough:    region.Manhattan,
			wantConfidence: Low,
			wantDistance:   0.003,
		},
		{
			name:           "none far away",
			pt:             geometry.Coordinate{Lat: -0.01, Lon: 0.5},
			wantBorough:    region.Unclassified,
			wantConfidence: None,
			wantDistance:   0.01,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Classify(tt.pt, unitSquareStore(), true)

			require.NoError(t, err)
			assert.Equal(t, tt.wantBorough, result.Borough)
			assert.Equal(t, tt.wantConfidence, result.Confidence)
			assert.InDelta(t, tt.wantDistance, result.Distance, 1e-12)
		})
	}
}

func TestClassify_ThresholdEdges(t *testing.T) {
	store := unitSquareStore()

	// Exactly 0.001 away is past the medium band.
	result, err := Classify(geometry.Coordinate{Lat: -0.001, Lon: 0.5}, store, true)
	require.NoError(t, err)
	assert.Equal(t, Low, result.Confidence)

	// Exactly 0.005 away is past the low band.
	result, err = Classify(geometry.Coordinate{Lat: -0.005, Lon: 0.5}, store, true)
	require.NoError(t, err)
	assert.Equal(t, None, result.Confidence)
	assert.Equal(t, region.Unclassified, result.Borough)
}

func TestClassify_TieBreakFollowsRegionOrder(t *testing.T) {
	// Two overlapping rings both contain the point; the borough earlier in
	// region.All order must win, regardless of map iteration order.
	store := storeWith(map[region.Borough]geometry.Ring{
		region.Queens:   square(0, 0, 1),
		region.Brooklyn: square(0, 0, 1),
	})

	for i := 0; i < 20; i++ {
		result, err := Classify(geometry.Coordinate{Lat: 0.5, Lon: 0.5}, store, true)
		require.NoError(t, err)
		assert.Equal(t, region.Brooklyn, result.Borough)
	}
}

func TestClassify_NearestRegionWins(t *testing.T) {
	store := storeWith(map[region.Borough]geometry.Ring{
		region.Manhattan: square(0, 0, 1),
		region.Queens:    square(0, 1.001, 1), // a thin gap east of Manhattan
	})

	// The point sits in the gap, slightly closer to Queens.
	result, err := Classify(geometry.Coordinate{Lat: 0.5, Lon: 1.0008}, store, true)

	require.NoError(t, err)
	assert.Equal(t, region.Queens, result.Borough)
	assert.Equal(t, Medium, result.Confidence)
	assert.InDelta(t, 0.0002, result.Distance, 1e-9)
}

func TestClassify_FullVersusSimplified(t *testing.T) {
	full := square(0, 0, 1)
	// A deliberately bogus simplified ring far from the full one.
	simplified := square(10, 10, 1)
	store := region.NewStore(map[region.Borough]region.Boundary{
		region.Bronx: {Full: full, Simplified: simplified},
	})

	result, err := Classify(geometry.Coordinate{Lat: 0.5, Lon: 0.5}, store, false)
	require.NoError(t, err)
	assert.Equal(t, High, result.Confidence)

	result, err = Classify(geometry.Coordinate{Lat: 0.5, Lon: 0.5}, store, true)
	require.NoError(t, err)
	assert.Equal(t, None, result.Confidence)
}

func TestClassify_EmptyStore(t *testing.T) {
	result, err := Classify(geometry.Coordinate{Lat: 0.5, Lon: 0.5}, region.NewStore(nil), true)

	assert.ErrorIs(t, err, ErrEmptyStore)
	assert.Equal(t, region.Unclassified, result.Borough)
	assert.Equal(t, None, result.Confidence)
}
