package handler

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	_ "modernc.org/sqlite"

	"github.com/jengzang/restaurant-discovery-go/internal/database"
	"github.com/jengzang/restaurant-discovery-go/internal/models"
	"github.com/jengzang/restaurant-discovery-go/internal/places"
	"github.com/jengzang/restaurant-discovery-go/internal/repository"
	"github.com/jengzang/restaurant-discovery-go/internal/service"
)

type stubGeocoder struct {
	lat, lng float64
	display  string
	err      error
}

func (s *stubGeocoder) Geocode(ctx context.Context, name string) (float64, float64, string, error) {
	return s.lat, s.lng, s.display, s.err
}

type downProvider struct{}

func (downProvider) NearbySearch(ctx context.Context, lat, lng float64, radiusM int, placeType string) ([]places.Candidate, error) {
	return nil, errors.New("provider unreachable")
}

func (downProvider) Details(ctx context.Context, placeID string) (*places.Details, error) {
	return nil, errors.New("provider unreachable")
}

type envelope struct {
	Code    int                 `json:"code"`
	Message string              `json:"message"`
	Data    models.SearchResult `json:"data"`
}

func newTestRouter(t *testing.T, geocoder service.Geocoder, provider service.PlacesProvider) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	locations := service.NewLocationService(geocoder)
	search := service.NewSearchService(provider, time.Second, time.Second)
	sessions := service.NewSessionService(time.Hour)
	searchHandler := NewSearchHandler(locations, search, sessions, 5*time.Second)

	r := gin.New()
	api := r.Group("/api/v1")
	api.POST("/search", searchHandler.Search)
	api.POST("/search/:session_id/more", searchHandler.LoadMore)
	api.PUT("/search/:session_id/filter", searchHandler.SetFilter)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSearchFallsBackToMock(t *testing.T) {
	r := newTestRouter(t, &stubGeocoder{lat: 48.85, lng: 2.35, display: "Paris, France"}, downProvider{})

	w := doJSON(t, r, http.MethodPost, "/api/v1/search", gin.H{"city": "Paris", "radius_km": 5})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}

	var resp envelope
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if !resp.Data.Mock {
		t.Error("expected mock fallback result when the provider is down")
	}
	if len(resp.Data.Places) == 0 {
		t.Fatal("fallback result must never be empty")
	}
	if resp.Data.DisplayName != "Paris, France" {
		t.Errorf("DisplayName = %q", resp.Data.DisplayName)
	}
	if resp.Data.SessionID == "" {
		t.Error("missing session id")
	}
}

func TestSearchPaginationOverHTTP(t *testing.T) {
	r := newTestRouter(t, &stubGeocoder{display: "Null Island"}, downProvider{})

	w := doJSON(t, r, http.MethodPost, "/api/v1/search", gin.H{"city": "Null Island"})
	var resp envelope
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}

	// Mock catalog has 8 entries: first batch 5, then 3
	if len(resp.Data.Places) != 5 {
		t.Fatalf("first batch = %d, want 5", len(resp.Data.Places))
	}
	if !resp.Data.HasMore {
		t.Fatal("expected more after first batch")
	}

	w = doJSON(t, r, http.MethodPost, "/api/v1/search/"+resp.Data.SessionID+"/more", gin.H{})
	var more envelope
	if err := json.Unmarshal(w.Body.Bytes(), &more); err != nil {
		t.Fatal(err)
	}
	if len(more.Data.Places) != 3 {
		t.Errorf("second batch = %d, want 3", len(more.Data.Places))
	}
	if more.Data.HasMore {
		t.Error("HasMore should be false after the catalog is exhausted")
	}
}

func TestSearchValidation(t *testing.T) {
	r := newTestRouter(t, &stubGeocoder{}, downProvider{})

	tests := []struct {
		name string
		body gin.H
		want int
	}{
		{"missing location", gin.H{"radius_km": 5}, http.StatusBadRequest},
		{"bad radius", gin.H{"city": "Paris", "radius_km": 7}, http.StatusBadRequest},
		{"coordinate out of range", gin.H{"latitude": 91.0, "longitude": 0.0}, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, r, http.MethodPost, "/api/v1/search", tt.body)
			if w.Code != tt.want {
				t.Errorf("status = %d, want %d: %s", w.Code, tt.want, w.Body.String())
			}
		})
	}
}

func TestGeocodeNotFoundSurfaced(t *testing.T) {
	r := newTestRouter(t, &stubGeocoder{err: places.ErrZeroResults}, downProvider{})

	w := doJSON(t, r, http.MethodPost, "/api/v1/search", gin.H{"city": "nowhereville-xyz"})
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404: %s", w.Code, w.Body.String())
	}
}

func TestLoadMoreUnknownSession(t *testing.T) {
	r := newTestRouter(t, &stubGeocoder{}, downProvider{})

	w := doJSON(t, r, http.MethodPost, "/api/v1/search/not-a-session/more", gin.H{})
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestFavoritesToggleOverHTTP(t *testing.T) {
	gin.SetMode(gin.TestMode)

	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	if err := database.Migrate(db); err != nil {
		t.Fatal(err)
	}

	favorites := NewFavoritesHandler(
		service.NewFavoritesService(repository.NewFavoritesRepository(db)))

	r := gin.New()
	r.GET("/api/v1/favorites", favorites.List)
	r.PUT("/api/v1/favorites/:id", favorites.Toggle)

	record := models.PlaceRecord{ID: "p1", Name: "Zuni Cafe", Categories: []string{"restaurant"}}

	w := doJSON(t, r, http.MethodPut, "/api/v1/favorites/p1", record)
	if w.Code != http.StatusOK {
		t.Fatalf("toggle status = %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data struct {
			Favorite bool                 `json:"favorite"`
			Count    int                  `json:"count"`
			List     []models.PlaceRecord `json:"favorites"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if !resp.Data.Favorite || resp.Data.Count != 1 {
		t.Errorf("after add: favorite=%v count=%d", resp.Data.Favorite, resp.Data.Count)
	}

	w = doJSON(t, r, http.MethodPut, "/api/v1/favorites/p1", record)
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Data.Favorite || resp.Data.Count != 0 {
		t.Errorf("after remove: favorite=%v count=%d", resp.Data.Favorite, resp.Data.Count)
	}

	// Mismatched path and body IDs are rejected
	w = doJSON(t, r, http.MethodPut, "/api/v1/favorites/other", record)
	if w.Code != http.StatusBadRequest {
		t.Errorf("mismatched id status = %d, want 400", w.Code)
	}
}
