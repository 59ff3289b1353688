package handler

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/restaurant-discovery-go/internal/places"
)

// ProxyHandler is a stateless relay for the three provider endpoints.
// It injects the server-side API key and forwards bodies verbatim,
// with no validation beyond parameter passthrough.
type ProxyHandler struct {
	client *places.Client
}

// NewProxyHandler creates a new proxy handler
func NewProxyHandler(client *places.Client) *ProxyHandler {
	return &ProxyHandler{client: client}
}

// Nearby forwards a nearby-search request
// GET /api/places/nearby?lat&lng&radius&type
func (h *ProxyHandler) Nearby(c *gin.Context) {
	params := url.Values{}
	params.Set("location", fmt.Sprintf("%s,%s", c.Query("lat"), c.Query("lng")))
	params.Set("radius", c.Query("radius"))
	params.Set("type", c.Query("type"))

	h.forwardJSON(c, "/nearbysearch/json", params, "Failed to fetch places data")
}

// Details forwards a place-details request
// GET /api/places/details?place_id&fields
func (h *ProxyHandler) Details(c *gin.Context) {
	params := url.Values{}
	params.Set("place_id", c.Query("place_id"))
	params.Set("fields", c.Query("fields"))

	h.forwardJSON(c, "/details/json", params, "Failed to fetch place details")
}

// Photo streams a place photo through with the upstream content type
// GET /api/places/photo?photoreference&maxwidth
func (h *ProxyHandler) Photo(c *gin.Context) {
	params := url.Values{}
	params.Set("photoreference", c.Query("photoreference"))
	params.Set("maxwidth", c.Query("maxwidth"))

	resp, err := h.client.Forward(c.Request.Context(), "/photo", params)
	if err != nil {
		log.Printf("Photo proxy request failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch place photo"})
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch place photo"})
		return
	}

	c.Header("Content-Type", resp.Header.Get("Content-Type"))
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, resp.Body); err != nil {
		log.Printf("Photo proxy stream interrupted: %v", err)
	}
}

// forwardJSON relays a JSON endpoint verbatim
func (h *ProxyHandler) forwardJSON(c *gin.Context, endpoint string, params url.Values, errorMessage string) {
	resp, err := h.client.Forward(c.Request.Context(), endpoint, params)
	if err != nil {
		log.Printf("Proxy request to %s failed: %v", endpoint, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errorMessage})
		return
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil || resp.StatusCode != http.StatusOK {
		c.JSON(http.StatusInternalServerError, gin.H{"error": errorMessage})
		return
	}

	c.Data(http.StatusOK, "application/json", body)
}
