// Package overpass fetches raw administrative boundary data for the NYC
// boroughs from an Overpass API endpoint.
package overpass

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"border-blur/internal/region"
)

// HTTPClient is the part of http.Client the Overpass client needs; it allows
// mocking in tests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// RawBoundary is the provider-native view of one borough boundary: every
// member way's geometry as ordered longitude-first pairs, plus the IDs of
// ways carrying the "outer" role in the boundary relation. Coordinate-order
// conversion to canonical form is the ingestion step's job, not this
// package's.
type RawBoundary struct {
	Ways        map[int64][][2]float64
	OuterWayIDs []int64
}

// Common errors for the Overpass client.
var (
	ErrNoRelation = errors.New("overpass: no boundary relation in response")
	ErrNoGeometry = errors.New("overpass: relation has no way geometry")
)

// Client talks to an Overpass API endpoint.
type Client struct {
	client    HTTPClient
	baseURL   string
	userAgent string
	log       zerolog.Logger
}

// NYC bounding box keeps Overpass from matching identically-named relations
// elsewhere in the world.
const nycBBox = "40.45,-74.30,41.00,-73.65"

// NewClient creates an Overpass client against the given endpoint (e.g.
// https://overpass-api.de/api/interpreter).
func NewClient(baseURL string, logger zerolog.Logger) *Client {
	const timeout = 60 * time.Second
	return &Client{
		client:    &http.Client{Timeout: timeout},
		baseURL:   baseURL,
		userAgent: "border-blur/1.0",
		log:       logger,
	}
}

// NewClientWithHTTP creates a client with a custom HTTP client, for tests.
func NewClientWithHTTP(baseURL string, httpClient HTTPClient, logger zerolog.Logger) *Client {
	c := NewClient(baseURL, logger)
	c.client = httpClient
	return c
}

// FetchBoundary downloads the administrative boundary relation for one
// borough along with the geometry of its member ways.
func (c *Client) FetchBoundary(ctx context.Context, b region.Borough) (*RawBoundary, error) {
	query := fmt.Sprintf(`[out:json][timeout:60];
relation["boundary"="administrative"]["admin_level"="7"]["name"=%q](%s);
out body;
way(r);
out geom;`, b.OSMName(), nycBBox)

	c.log.Debug().Str("borough", string(b)).Msg("fetching boundary relation")

	form := url.Values{}
	form.Set("data", query)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("overpass: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("overpass: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("overpass: API returned status %d: %s", resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("overpass: failed to read response body: %w", err)
	}

	var parsed overpassResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("overpass: failed to decode response: %w", err)
	}

	raw, err := collectBoundary(parsed)
	if err != nil {
		return nil, err
	}
	c.log.Debug().
		Str("borough", string(b)).
		Int("ways", len(raw.Ways)).
		Int("outer", len(raw.OuterWayIDs)).
		Msg("boundary relation fetched")
	return raw, nil
}

type overpassResponse struct {
	Elements []overpassElement `json:"elements"`
}

type overpassElement struct {
	Type     string           `json:"type"`
	ID       int64            `json:"id"`
	Members  []overpassMember `json:"members"`
	Geometry []overpassPoint  `json:"geometry"`
}

type overpassMember struct {
	Type string `json:"type"`
	Ref  int64  `json:"ref"`
	Role string `json:"role"`
}

type overpassPoint struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// collectBoundary splits the flat element list into the relation's outer way
// IDs and each way's native-order geometry.
func collectBoundary(resp overpassResponse) (*RawBoundary, error) {
	raw := &RawBoundary{Ways: make(map[int64][][2]float64)}
	sawRelation := false

	for _, el := range resp.Elements {
		switch el.Type {
		case "relation":
			sawRelation = true
			for _, m := range el.Members {
				if m.Type == "way" && m.Role == "outer" {
					raw.OuterWayIDs = append(raw.OuterWayIDs, m.Ref)
				}
			}
		case "way":
			if len(el.Geometry) == 0 {
				continue
			}
			pairs := make([][2]float64, len(el.Geometry))
			for i, pt := range el.Geometry {
				pairs[i] = [2]float64{pt.Lon, pt.Lat}
			}
			raw.Ways[el.ID] = pairs
		}
	}

	if !sawRelation {
		return nil, ErrNoRelation
	}
	if len(raw.Ways) == 0 {
		return nil, ErrNoGeometry
	}
	return raw, nil
}
