package handler

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/restaurant-discovery-go/internal/places"
)

func newProxyRouter(upstream *httptest.Server) *gin.Engine {
	gin.SetMode(gin.TestMode)
	client := places.NewClient(upstream.URL, upstream.URL, "secret-key", upstream.Client())
	proxy := NewProxyHandler(client)

	r := gin.New()
	r.GET("/api/places/nearby", proxy.Nearby)
	r.GET("/api/places/details", proxy.Details)
	r.GET("/api/places/photo", proxy.Photo)
	return r
}

func TestProxyNearbyPassthrough(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/nearbysearch/json" {
			t.Errorf("unexpected upstream path %s", r.URL.Path)
		}
		if r.URL.Query().Get("key") != "secret-key" {
			t.Error("server-side key not injected")
		}
		if r.URL.Query().Get("location") != "1.5,2.5" {
			t.Errorf("location = %q", r.URL.Query().Get("location"))
		}
		w.Write([]byte(`{"status":"OK","results":[]}`))
	}))
	defer upstream.Close()

	r := newProxyRouter(upstream)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/places/nearby?lat=1.5&lng=2.5&radius=5000&type=restaurant", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if w.Body.String() != `{"status":"OK","results":[]}` {
		t.Errorf("body not passed through verbatim: %s", w.Body.String())
	}
}

func TestProxyKeyNeverTakenFromClient(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("key"); got != "secret-key" {
			t.Errorf("upstream key = %q, want server-side key", got)
		}
		w.Write([]byte(`{}`))
	}))
	defer upstream.Close()

	r := newProxyRouter(upstream)
	w := httptest.NewRecorder()
	// A client-supplied key parameter must not override the configured one
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/places/details?place_id=p1&key=attacker-key", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestProxyUpstreamFailure(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer upstream.Close()

	r := newProxyRouter(upstream)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/places/nearby?lat=1&lng=2", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	if w.Body.String() != `{"error":"Failed to fetch places data"}` {
		t.Errorf("error body = %s", w.Body.String())
	}
}

func TestProxyPhotoStreamsContentType(t *testing.T) {
	imageBytes := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10}
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/photo" {
			t.Errorf("unexpected upstream path %s", r.URL.Path)
		}
		if r.URL.Query().Get("photoreference") != "ref-1" {
			t.Errorf("photoreference = %q", r.URL.Query().Get("photoreference"))
		}
		w.Header().Set("Content-Type", "image/jpeg")
		w.Write(imageBytes)
	}))
	defer upstream.Close()

	r := newProxyRouter(upstream)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/places/photo?photoreference=ref-1&maxwidth=800", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "image/jpeg" {
		t.Errorf("Content-Type = %q, want image/jpeg", ct)
	}
	if !bytes.Equal(w.Body.Bytes(), imageBytes) {
		t.Error("image bytes not streamed through intact")
	}
}
