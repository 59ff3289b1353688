package service

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jengzang/restaurant-discovery-go/internal/models"
	"github.com/jengzang/restaurant-discovery-go/internal/places"
	"github.com/jengzang/restaurant-discovery-go/internal/spatial"
)

// PlacesProvider is the subset of the places client the fetcher needs
type PlacesProvider interface {
	NearbySearch(ctx context.Context, lat, lng float64, radiusM int, placeType string) ([]places.Candidate, error)
	Details(ctx context.Context, placeID string) (*places.Details, error)
}

const (
	// maxDetailLookups bounds the per-search detail enrichment fan-out
	maxDetailLookups = 15

	searchCacheTTL = 10 * time.Minute
	photoMaxWidth  = 800

	// introductionLimit truncates review snippets used as descriptions
	introductionLimit = 150
)

// nearbyPlaceTypes are the venue categories searched for each origin
var nearbyPlaceTypes = []string{"restaurant", "cafe", "bar"}

// genericTags are provider taxonomy tags too broad to filter on
var genericTags = map[string]bool{
	"establishment":     true,
	"food":              true,
	"point_of_interest": true,
}

// SearchService fetches and enriches venues near an origin. It never
// returns an error: every failure degrades to an empty result and the
// caller falls back to mock data.
type SearchService struct {
	provider       PlacesProvider
	searchTimeout  time.Duration
	detailsTimeout time.Duration

	mu    sync.Mutex
	cache map[string]searchCacheEntry
}

type searchCacheEntry struct {
	records []models.PlaceRecord
	fetched time.Time
}

// NewSearchService creates a new search service
func NewSearchService(provider PlacesProvider, searchTimeout, detailsTimeout time.Duration) *SearchService {
	return &SearchService{
		provider:       provider,
		searchTimeout:  searchTimeout,
		detailsTimeout: detailsTimeout,
		cache:          make(map[string]searchCacheEntry),
	}
}

// Search returns enriched, shuffled places near origin within radiusKm.
// The whole operation is bounded by the search timeout; whatever subset
// of candidates resolved in time is returned. An empty result means the
// caller should use GenerateMockPlaces.
func (s *SearchService) Search(ctx context.Context, origin models.Coordinate, radiusKm int) []models.PlaceRecord {
	cacheKey := fmt.Sprintf("%s:%d", spatial.EncodeGeohash(origin.Latitude, origin.Longitude, 5), radiusKm)
	if cached := s.cachedResults(cacheKey); cached != nil {
		return shuffled(cached)
	}

	ctx, cancel := context.WithTimeout(ctx, s.searchTimeout)
	defer cancel()

	candidates := s.nearbyCandidates(ctx, origin, radiusKm)
	if len(candidates) == 0 {
		return nil
	}
	if len(candidates) > maxDetailLookups {
		candidates = candidates[:maxDetailLookups]
	}

	records := s.enrich(ctx, origin, candidates)
	if len(records) == 0 {
		return nil
	}

	s.storeResults(cacheKey, records)
	return shuffled(records)
}

// nearbyCandidates runs one nearby search per place type concurrently
// and merges the results, deduplicated by place ID
func (s *SearchService) nearbyCandidates(ctx context.Context, origin models.Coordinate, radiusKm int) []places.Candidate {
	perType := make([][]places.Candidate, len(nearbyPlaceTypes))

	var g errgroup.Group
	for i, placeType := range nearbyPlaceTypes {
		i, placeType := i, placeType
		g.Go(func() error {
			found, err := s.provider.NearbySearch(ctx, origin.Latitude, origin.Longitude, radiusKm*1000, placeType)
			if err != nil {
				log.Printf("Nearby search for type %s failed: %v", placeType, err)
				return nil
			}
			perType[i] = found
			return nil
		})
	}
	g.Wait()

	seen := make(map[string]bool)
	var merged []places.Candidate
	for _, found := range perType {
		for _, c := range found {
			if seen[c.PlaceID] {
				continue
			}
			seen[c.PlaceID] = true
			merged = append(merged, c)
		}
	}
	return merged
}

// enrich issues concurrent details lookups, each with its own timeout,
// and assembles records for the candidates that resolved in time.
// Lookups still pending when the outer context expires are abandoned.
func (s *SearchService) enrich(ctx context.Context, origin models.Coordinate, candidates []places.Candidate) []models.PlaceRecord {
	resolved := make([]*models.PlaceRecord, len(candidates))

	var g errgroup.Group
	for i, cand := range candidates {
		i, cand := i, cand
		g.Go(func() error {
			dctx, cancel := context.WithTimeout(ctx, s.detailsTimeout)
			defer cancel()

			details, err := s.provider.Details(dctx, cand.PlaceID)
			if err != nil {
				log.Printf("Details lookup for %s failed: %v", cand.PlaceID, err)
				return nil
			}
			record := s.assemble(origin, cand, details)
			resolved[i] = &record
			return nil
		})
	}
	g.Wait()

	records := make([]models.PlaceRecord, 0, len(candidates))
	for _, r := range resolved {
		if r != nil {
			records = append(records, *r)
		}
	}
	return records
}

// assemble builds a PlaceRecord from a candidate and its details
func (s *SearchService) assemble(origin models.Coordinate, cand places.Candidate, details *places.Details) models.PlaceRecord {
	name := details.Name
	if name == "" {
		name = cand.Name
	}

	rating := details.Rating
	if rating == 0 {
		rating = cand.Rating
	}

	tags := details.Types
	if len(tags) == 0 {
		tags = cand.Types
	}
	categories := make([]string, 0, len(tags))
	for _, tag := range tags {
		if !genericTags[tag] {
			categories = append(categories, tag)
		}
	}

	image := placeholderNoImage
	if details.PhotoReference != "" {
		image = photoProxyURL(details.PhotoReference)
	}

	detailURL := details.URL
	if detailURL == "" {
		detailURL = "https://www.google.com/maps/place/?q=place_id:" + cand.PlaceID
	}

	point := models.Coordinate{Latitude: cand.Lat, Longitude: cand.Lng}

	return models.PlaceRecord{
		ID:           cand.PlaceID,
		Name:         name,
		Introduction: introduction(name, categories, details),
		Rating:       models.Rating(rating),
		Image:        image,
		Categories:   categories,
		DistanceKm:   spatial.RoundKm(spatial.DistanceKm(origin, point)),
		DetailURL:    detailURL,
	}
}

// introduction picks a description by priority: editorial summary, then
// a truncated review snippet, then synthetic text
func introduction(name string, categories []string, details *places.Details) string {
	if details.EditorialSummary != "" {
		return details.EditorialSummary
	}
	if details.FirstReview != "" {
		text := details.FirstReview
		if len(text) > introductionLimit {
			text = text[:introductionLimit] + "..."
		}
		return text
	}
	if len(categories) > 0 {
		return fmt.Sprintf("%s is a %s in the area.", name, strings.ReplaceAll(categories[0], "_", " "))
	}
	return "A popular place in the area."
}

// photoProxyURL builds a photo URL routed through the proxy so the API
// key stays server-side
func photoProxyURL(photoReference string) string {
	return fmt.Sprintf("/api/places/photo?photoreference=%s&maxwidth=%d",
		url.QueryEscape(photoReference), photoMaxWidth)
}

// cachedResults returns a cached result set if it is still fresh
func (s *SearchService) cachedResults(key string) []models.PlaceRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.cache[key]
	if !ok || time.Since(entry.fetched) > searchCacheTTL {
		return nil
	}
	return entry.records
}

// storeResults caches a result set for nearby repeat searches
func (s *SearchService) storeResults(key string, records []models.PlaceRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache[key] = searchCacheEntry{records: records, fetched: time.Now()}
}

// shuffled returns a randomly ordered copy so repeat searches spread
// visual variety instead of privileging provider ranking
func shuffled(records []models.PlaceRecord) []models.PlaceRecord {
	out := make([]models.PlaceRecord, len(records))
	copy(out, records)
	rand.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
