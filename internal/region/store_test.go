package region

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"border-blur/internal/geometry"
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

func TestBoroughValid(t *testing.T) {
	for _, b := range All {
		assert.True(t, b.Valid(), string(b))
	}
	assert.False(t, Unclassified.Valid())
	assert.False(t, Borough("jersey-city").Valid())
}

func TestStore_CanonicalOrder(t *testing.T) {
	ring := square(0, 0, 1)
	store := NewStore(map[Borough]Boundary{
		StatenIsland: {Full: ring, Simplified: ring},
		Manhattan:    {Full: ring, Simplified: ring},
		Queens:       {Full: ring, Simplified: ring},
	})

	// Iteration follows the fixed All order, not map order.
	assert.Equal(t, []Borough{Manhattan, Queens, StatenIsland}, store.Boroughs())
	assert.Equal(t, 3, store.Len())
}

func TestStore_Boundary(t *testing.T) {
	full := square(0, 0, 1)
	simplified := square(0, 0, 1)
	store := NewStore(map[Borough]Boundary{
		Brooklyn: {Full: full, Simplified: simplified},
	})

	bd, ok := store.Boundary(Brooklyn)
	require.True(t, ok)
	assert.Equal(t, full, bd.Full)

	_, ok = store.Boundary(Bronx)
	assert.False(t, ok)
}

func TestStore_CopiesInput(t *testing.T) {
	input := map[Borough]Boundary{
		Manhattan: {Full: square(0, 0, 1), Simplified: square(0, 0, 1)},
	}
	store := NewStore(input)

	// Mutating the caller's map after construction must not leak in.
	delete(input, Manhattan)
	input[Queens] = Boundary{}

	_, ok := store.Boundary(Manhattan)
	assert.True(t, ok)
	_, ok = store.Boundary(Queens)
	assert.False(t, ok)
}

func TestStore_Empty(t *testing.T) {
	store := NewStore(nil)
	assert.Zero(t, store.Len())
	assert.Empty(t, store.Boroughs())
}
