// Package region defines the closed set of New York City boroughs and the
// immutable store mapping each borough to its boundary rings.
package region

// Borough identifies one of the five NYC boroughs. The zero-value sentinel
// Unclassified is used for points no borough claims.
type Borough string

const (
	Unclassified Borough = "unclassified"
	Manhattan    Borough = "manhattan"
	Brooklyn     Borough = "brooklyn"
	Queens       Borough = "queens"
	Bronx        Borough = "bronx"
	StatenIsland Borough = "staten-island"
)

// All lists the real boroughs in their fixed canonical order. The order is
// load-bearing: it is the tie-break when more than one simplified ring claims
// a point, and the iteration order of every store.
var All = []Borough{Manhattan, Brooklyn, Queens, Bronx, StatenIsland}

// Valid reports whether b names a real borough (Unclassified is not one).
func (b Borough) Valid() bool {
	switch b {
	case Manhattan, Brooklyn, Queens, Bronx, StatenIsland:
		return true
	case Unclassified:
		return false
	}
	return false
}

// DisplayName returns the human-readable borough name.
func (b Borough) DisplayName() string {
	switch b {
	case Manhattan:
		return "Manhattan"
	case Brooklyn:
		return "Brooklyn"
	case Queens:
		return "Queens"
	case Bronx:
		return "The Bronx"
	case StatenIsland:
		return "Staten Island"
	case Unclassified:
		return "Unclassified"
	}
	return string(b)
}

// OSMName returns the name tag the map-data provider uses for the borough's
// administrative boundary relation.
func (b Borough) OSMName() string {
	switch b {
	case Bronx:
		return "The Bronx"
	default:
		return b.DisplayName()
	}
}
