package classify

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"border-blur/internal/geometry"
	"border-blur/internal/region"
)

func fiveBoroughStore() *region.Store {
	// Five disjoint unit squares laid out along the longitude axis.
	boundaries := make(map[region.Borough]geometry.Ring, len(region.All))
	for i, b := range region.All {
		boundaries[b] = square(0, float64(i)*2, 1)
	}
	return storeWith(boundaries)
}

func TestClassifyBatch_CountsSumToInput(t *testing.T) {
	store := fiveBoroughStore()
	rng := rand.New(rand.NewSource(7))

	points := make([]geometry.Coordinate, 1000)
	for i := range points {
		points[i] = geometry.Coordinate{
			Lat: rng.Float64()*3 - 1,
			Lon: rng.Float64()*12 - 1,
		}
	}

	batch := ClassifyBatch(points, store, 8)

	require.Len(t, batch.Results, 1000)
	tierSum := 0
	for _, n := range batch.ByConfidence {
		tierSum += n
	}
	assert.Equal(t, 1000, tierSum)

	boroughSum := 0
	for _, n := range batch.ByBorough {
		boroughSum += n
	}
	assert.Equal(t, 1000, boroughSum)
}

func TestClassifyBatch_PreservesInputOrder(t *testing.T) {
	store := fiveBoroughStore()

	// One point inside each borough square, in canonical order.
	points := make([]geometry.Coordinate, 0, len(region.All))
	for i := range region.All {
		points = append(points, geometry.Coordinate{Lat: 0.5, Lon: float64(i)*2 + 0.5})
	}

	for workers := 1; workers <= 4; workers++ {
		batch := ClassifyBatch(points, store, workers)
		require.Len(t, batch.Results, len(points))
		for i, b := range region.All {
			assert.Equal(t, b, batch.Results[i].Borough, "workers=%d index=%d", workers, i)
			assert.Equal(t, High, batch.Results[i].Confidence)
		}
	}
}

func TestClassifyBatch_MatchesSingleClassify(t *testing.T) {
	store := fiveBoroughStore()
	rng := rand.New(rand.NewSource(11))

	points := make([]geometry.Coordinate, 100)
	for i := range points {
		points[i] = geometry.Coordinate{
			Lat: rng.Float64() * 2,
			Lon: rng.Float64() * 10,
		}
	}

	batch := ClassifyBatch(points, store, 4)
	for i, pt := range points {
		want, err := Classify(pt, store, true)
		require.NoError(t, err)
		assert.Equal(t, want, batch.Results[i], "index %d", i)
	}
}

func TestClassifyBatch_EmptyStoreDegradesGracefully(t *testing.T) {
	points := []geometry.Coordinate{{Lat: 0.5, Lon: 0.5}, {Lat: 1, Lon: 1}}

	batch := ClassifyBatch(points, region.NewStore(nil), 2)

	require.Len(t, batch.Results, 2)
	for _, r := range batch.Results {
		assert.Equal(t, region.Unclassified, r.Borough)
		assert.Equal(t, None, r.Confidence)
	}
	assert.Equal(t, 2, batch.ByConfidence[None])
}

func TestClassifyBatch_ZeroWorkersClamps(t *testing.T) {
	batch := ClassifyBatch([]geometry.Coordinate{{Lat: 0.5, Lon: 0.5}}, fiveBoroughStore(), 0)
	require.Len(t, batch.Results, 1)
	assert.Equal(t, region.Manhattan, batch.Results[0].Borough)
}
