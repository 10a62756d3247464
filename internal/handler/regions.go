package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"border-blur/internal/models"
	"border-blur/internal/region"
)

// RegionsHandler serves the loaded borough boundaries for rendering.
type RegionsHandler struct {
	service BoundaryProvider
}

// BoundaryProvider is the part of the service layer this handler depends on.
type BoundaryProvider interface {
	Boundaries(ctx context.Context) []models.BoundaryRecord
}

// NewRegionsHandler creates a new regions handler.
func NewRegionsHandler(svc BoundaryProvider) *RegionsHandler {
	return &RegionsHandler{service: svc}
}

// Regions handles GET /regions requests, returning the boundaries as a
// GeoJSON FeatureCollection. The simplified rings are served by default;
// ?resolution=full switches to the full rings.
//
//	@Summary	Borough boundary polygons as GeoJSON
//	@Param		resolution	query		string	false	"simplified (default) or full"
//	@Success	200	{object}	models.FeatureCollection
//	@Router		/regions [get]
func (h *RegionsHandler) Regions(c *gin.Context) {
	full := c.Query("resolution") == "full"

	records := h.service.Boundaries(c.Request.Context())
	fc := models.FeatureCollection{Type: "FeatureCollection", Features: []models.Feature{}}
	for _, rec := range records {
		ring := rec.SimplifiedRing
		if full {
			ring = rec.FullRing
		}
		fc.Features = append(fc.Features, models.NewPolygonFeature(ring, map[string]any{
			"borough": rec.Name,
			"name":    region.Borough(rec.Name).DisplayName(),
		}))
	}

	c.JSON(http.StatusOK, fc)
}
