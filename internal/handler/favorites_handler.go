package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/jengzang/restaurant-discovery-go/internal/models"
	"github.com/jengzang/restaurant-discovery-go/internal/service"
	"github.com/jengzang/restaurant-discovery-go/pkg/response"
)

// FavoritesHandler handles HTTP requests for the favorites list
type FavoritesHandler struct {
	favorites *service.FavoritesService
}

// NewFavoritesHandler creates a new favorites handler
func NewFavoritesHandler(favorites *service.FavoritesService) *FavoritesHandler {
	return &FavoritesHandler{favorites: favorites}
}

// List returns the persisted favorites
// GET /api/v1/favorites
func (h *FavoritesHandler) List(c *gin.Context) {
	favorites, err := h.favorites.List()
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, gin.H{
		"favorites": favorites,
		"count":     len(favorites),
	})
}

// Toggle adds or removes a favorite, keyed by place ID
// PUT /api/v1/favorites/:id
func (h *FavoritesHandler) Toggle(c *gin.Context) {
	id := c.Param("id")

	var record models.PlaceRecord
	if err := c.ShouldBindJSON(&record); err != nil {
		response.BadRequest(c, "Invalid place record")
		return
	}
	if record.ID == "" {
		record.ID = id
	}
	if record.ID != id {
		response.BadRequest(c, "Place ID in path and body do not match")
		return
	}

	added, favorites, err := h.favorites.Toggle(record)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, gin.H{
		"favorite":  added,
		"favorites": favorites,
		"count":     len(favorites),
	})
}
