package models

// GeoJSON response types for the visualization layer. Coordinates follow the
// GeoJSON convention: longitude first.

type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

type Feature struct {
	Type       string         `json:"type"`
	Properties map[string]any `json:"properties"`
	Geometry   Geometry       `json:"geometry"`
}

type Geometry struct {
	Type        string         `json:"type"`
	Coordinates [][][2]float64 `json:"coordinates"`
}

// NewPolygonFeature wraps a single ring (native longitude-first pairs) as a
// GeoJSON Polygon feature.
func NewPolygonFeature(ring [][2]float64, properties map[string]any) Feature {
	return Feature{
		Type:       "Feature",
		Properties: properties,
		Geometry: Geometry{
			Type:        "Polygon",
			Coordinates: [][][2]float64{ring},
		},
	}
}
