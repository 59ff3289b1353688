package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/restaurant-discovery-go/internal/models"
	"github.com/jengzang/restaurant-discovery-go/internal/service"
	"github.com/jengzang/restaurant-discovery-go/pkg/response"
)

// SearchHandler handles HTTP requests for the discovery pipeline
type SearchHandler struct {
	locations       *service.LocationService
	search          *service.SearchService
	sessions        *service.SessionService
	pipelineTimeout time.Duration
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(locations *service.LocationService, search *service.SearchService, sessions *service.SessionService, pipelineTimeout time.Duration) *SearchHandler {
	return &SearchHandler{
		locations:       locations,
		search:          search,
		sessions:        sessions,
		pipelineTimeout: pipelineTimeout,
	}
}

// searchRequest is the body for a fresh search. Either a device
// coordinate or a city name must be present.
type searchRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	City      string   `json:"city"`
	RadiusKm  int      `json:"radius_km"`
	Filter    string   `json:"filter"`
}

// Search starts a fresh search session
// POST /api/v1/search
func (h *SearchHandler) Search(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	radius := req.RadiusKm
	if radius == 0 {
		radius = models.DefaultSearchRadiusKm
	}
	if !models.ValidRadius(radius) {
		response.BadRequest(c, service.ErrInvalidRadius.Error())
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.pipelineTimeout)
	defer cancel()

	var (
		resolved service.ResolvedLocation
		err      error
	)
	switch {
	case req.City != "":
		resolved, err = h.locations.FromPlaceName(ctx, req.City)
	case req.Latitude != nil && req.Longitude != nil:
		resolved, err = h.locations.FromCoordinates(*req.Latitude, *req.Longitude)
	default:
		response.BadRequest(c, "Either a coordinate or a city name is required. Try searching a city instead.")
		return
	}
	if err != nil {
		respondServiceError(c, err)
		return
	}

	records := h.search.Search(ctx, resolved.Coordinate, radius)
	if ctx.Err() != nil {
		response.Timeout(c, service.ErrPipelineTimeout.Error())
		return
	}

	// Fallback guarantee: the result set shown to the user is never empty
	mock := false
	if len(records) == 0 {
		records = service.GenerateMockPlaces(resolved.Coordinate)
		mock = true
	}

	result := h.sessions.Create(resolved.Coordinate, records, req.Filter, mock)
	result.DisplayName = resolved.DisplayName
	response.Success(c, result)
}

// LoadMore returns the next pagination batch for a session
// POST /api/v1/search/:session_id/more
func (h *SearchHandler) LoadMore(c *gin.Context) {
	result, err := h.sessions.LoadMore(c.Param("session_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, result)
}

// filterRequest is the body for a filter change
type filterRequest struct {
	Filter string `json:"filter"`
}

// SetFilter changes a session's active category filter
// PUT /api/v1/search/:session_id/filter
func (h *SearchHandler) SetFilter(c *gin.Context) {
	var req filterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.sessions.SetFilter(c.Param("session_id"), req.Filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, result)
}

// respondServiceError maps service errors to HTTP responses
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidCoordinate), errors.Is(err, service.ErrInvalidRadius):
		response.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrGeocodeNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrSessionNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrProviderUnavailable):
		response.Error(c, http.StatusBadGateway, err.Error())
	case errors.Is(err, service.ErrPipelineTimeout), errors.Is(err, context.DeadlineExceeded):
		response.Timeout(c, service.ErrPipelineTimeout.Error())
	default:
		response.InternalError(c, err.Error())
	}
}
