package geometry

import "math"

// PointInRing reports whether pt lies inside or exactly on the boundary of
// the ring, using ray casting. The boundary convention is inclusive: a point
// on an edge or vertex counts as contained. That is a deliberate choice, not
// a law of geometry, and it is pinned down by tests.
func PointInRing(pt Coordinate, ring Ring) bool {
	if len(ring) < 4 {
		return false
	}
	if pointOnBoundary(pt, ring) {
		return true
	}

	// Ray casting, grounded on the usual even-odd rule. The tiny divisor
	// guard keeps horizontal edges from producing NaN.
	inside := false
	for i, j := 0, len(ring)-1; i < len(ring); j, i = i, i+1 {
		yi, yj := ring[i].Lat, ring[j].Lat
		xi, xj := ring[i].Lon, ring[j].Lon
		intersects := ((yi > pt.Lat) != (yj > pt.Lat)) &&
			(pt.Lon < (xj-xi)*(pt.Lat-yi)/(yj-yi+1e-12)+xi)
		if intersects {
			inside = !inside
		}
	}
	return inside
}

// DistanceToRing returns the minimum distance from pt to any edge of the
// ring, in raw angular units. The unit is anisotropic relative to ground
// meters (it varies with latitude); callers compare against thresholds in
// the same unit rather than converting.
func DistanceToRing(pt Coordinate, ring Ring) float64 {
	min := math.Inf(1)
	for i := 0; i+1 < len(ring); i++ {
		if d := distanceToEdge(pt, ring[i], ring[i+1]); d < min {
			min = d
		}
	}
	return min
}

// pointOnBoundary reports whether pt lies exactly on some edge of the ring:
// collinear with the edge and within its bounding box.
func pointOnBoundary(pt Coordinate, ring Ring) bool {
	for i := 0; i+1 < len(ring); i++ {
		a, b := ring[i], ring[i+1]
		cross := (b.Lon-a.Lon)*(pt.Lat-a.Lat) - (b.Lat-a.Lat)*(pt.Lon-a.Lon)
		if cross != 0 {
			continue
		}
		if pt.Lat >= math.Min(a.Lat, b.Lat) && pt.Lat <= math.Max(a.Lat, b.Lat) &&
			pt.Lon >= math.Min(a.Lon, b.Lon) && pt.Lon <= math.Max(a.Lon, b.Lon) {
			return true
		}
	}
	return false
}

// distanceToEdge is the distance from pt to the segment a-b, clamping the
// projection to the segment's extent.
func distanceToEdge(pt, a, b Coordinate) float64 {
	dLat := b.Lat - a.Lat
	dLon := b.Lon - a.Lon
	lenSq := dLat*dLat + dLon*dLon
	if lenSq == 0 {
		return math.Hypot(pt.Lat-a.Lat, pt.Lon-a.Lon)
	}
	t := ((pt.Lat-a.Lat)*dLat + (pt.Lon-a.Lon)*dLon) / lenSq
	t = math.Max(0, math.Min(1, t))
	return math.Hypot(pt.Lat-(a.Lat+t*dLat), pt.Lon-(a.Lon+t*dLon))
}
