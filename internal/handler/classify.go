package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"border-blur/internal/classify"
	"border-blur/internal/geometry"
)

// ClassifyHandler handles point-classification requests.
type ClassifyHandler struct {
	service ClassifyService
}

// ClassifyService is the part of the service layer this handler depends on.
type ClassifyService interface {
	Classify(ctx context.Context, lat, lon float64) (classify.Result, error)
	ClassifyBatch(ctx context.Context, points []geometry.Coordinate) classify.BatchResult
}

// NewClassifyHandler creates a new classify handler.
func NewClassifyHandler(svc ClassifyService) *ClassifyHandler {
	return &ClassifyHandler{service: svc}
}

// BatchRequest is the body of a batch classification request.
type BatchRequest struct {
	Points []PointRequest `json:"points" binding:"required"`
}

// PointRequest is one query point with explicit axis names, so callers never
// have to guess a pair ordering.
type PointRequest struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Classify handles GET /classify requests.
//
//	@Summary	Classify a point against the borough boundaries
//	@Param		lat	query		number	true	"latitude"
//	@Param		lon	query		number	true	"longitude"
//	@Success	200	{object}	classify.Result
//	@Router		/classify [get]
func (h *ClassifyHandler) Classify(c *gin.Context) {
	latStr := c.Query("lat")
	lonStr := c.Query("lon")
	if latStr == "" || lonStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameters 'lat' and 'lon'"})
		return
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid latitude format"})
		return
	}
	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid longitude format"})
		return
	}

	result, err := h.service.Classify(c.Request.Context(), lat, lon)
	if err != nil {
		if errors.Is(err, classify.ErrEmptyStore) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no boundary data loaded"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// ClassifyBatch handles POST /classify/batch requests.
//
//	@Summary	Classify a batch of points
//	@Accept		json
//	@Param		request	body		BatchRequest	true	"points to classify"
//	@Success	200	{object}	classify.BatchResult
//	@Router		/classify/batch [post]
func (h *ClassifyHandler) ClassifyBatch(c *gin.Context) {
	var req BatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	points := make([]geometry.Coordinate, len(req.Points))
	for i, p := range req.Points {
		points[i] = geometry.Coordinate{Lat: p.Lat, Lon: p.Lon}
	}

	c.JSON(http.StatusOK, h.service.ClassifyBatch(c.Request.Context(), points))
}
