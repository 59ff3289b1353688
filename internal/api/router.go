package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/restaurant-discovery-go/internal/config"
	"github.com/jengzang/restaurant-discovery-go/internal/database"
	"github.com/jengzang/restaurant-discovery-go/internal/handler"
	"github.com/jengzang/restaurant-discovery-go/internal/middleware"
	"github.com/jengzang/restaurant-discovery-go/internal/places"
	"github.com/jengzang/restaurant-discovery-go/internal/repository"
	"github.com/jengzang/restaurant-discovery-go/internal/service"
)

// SetupRouter wires services, handlers and routes
func SetupRouter(cfg *config.Config) *gin.Engine {
	r := gin.Default()

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})
	r.Use(middleware.Logger())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Restaurant Discovery API is running",
		})
	})

	placesClient := places.NewClient(cfg.PlacesBaseURL, cfg.GeocodingBaseURL, cfg.GoogleAPIKey, nil)

	locationService := service.NewLocationService(placesClient)
	searchService := service.NewSearchService(placesClient, cfg.SearchTimeout, cfg.DetailsTimeout)
	sessionService := service.NewSessionService(cfg.SessionTTL)
	favoritesService := service.NewFavoritesService(
		repository.NewFavoritesRepository(database.GetDB()))

	searchHandler := handler.NewSearchHandler(locationService, searchService, sessionService, cfg.PipelineTimeout)
	favoritesHandler := handler.NewFavoritesHandler(favoritesService)
	proxyHandler := handler.NewProxyHandler(placesClient)

	// Discovery API
	api := r.Group("/api/v1")
	api.Use(middleware.RateLimit(60, time.Minute))
	{
		api.POST("/search", searchHandler.Search)
		api.POST("/search/:session_id/more", searchHandler.LoadMore)
		api.PUT("/search/:session_id/filter", searchHandler.SetFilter)

		api.GET("/favorites", favoritesHandler.List)
		api.PUT("/favorites/:id", favoritesHandler.Toggle)
	}

	// Stateless provider proxy, deliberately unauthenticated and unlimited
	proxy := r.Group("/api/places")
	{
		proxy.GET("/nearby", proxyHandler.Nearby)
		proxy.GET("/details", proxyHandler.Details)
		proxy.GET("/photo", proxyHandler.Photo)
	}

	return r
}
