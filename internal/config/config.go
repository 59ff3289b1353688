package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the application configuration
type Config struct {
	Port   string
	DBPath string

	// Google Places / Geocoding credential. Server-side only; the key is
	// never echoed back to clients or accepted from request parameters.
	GoogleAPIKey string

	// Provider base URLs, overridable for testing
	PlacesBaseURL    string
	GeocodingBaseURL string

	// Timeout bounds for the fetch pipeline
	SearchTimeout   time.Duration // nearby search + all detail lookups
	DetailsTimeout  time.Duration // single detail lookup
	PipelineTimeout time.Duration // full resolve+search per user action

	SessionTTL time.Duration
}

// Load reads configuration from the environment with sane defaults
func Load() *Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./data/discovery.db"
	}

	placesBase := os.Getenv("PLACES_BASE_URL")
	if placesBase == "" {
		placesBase = "https://maps.googleapis.com/maps/api/place"
	}

	geocodeBase := os.Getenv("GEOCODING_BASE_URL")
	if geocodeBase == "" {
		geocodeBase = "https://maps.googleapis.com/maps/api/geocode"
	}

	return &Config{
		Port:             port,
		DBPath:           dbPath,
		GoogleAPIKey:     os.Getenv("GOOGLE_API_KEY"),
		PlacesBaseURL:    placesBase,
		GeocodingBaseURL: geocodeBase,
		SearchTimeout:    durationEnv("SEARCH_TIMEOUT_SECONDS", 8*time.Second),
		DetailsTimeout:   durationEnv("DETAILS_TIMEOUT_SECONDS", 3*time.Second),
		PipelineTimeout:  durationEnv("PIPELINE_TIMEOUT_SECONDS", 15*time.Second),
		SessionTTL:       durationEnv("SESSION_TTL_SECONDS", 30*time.Minute),
	}
}

// durationEnv reads a seconds value from the environment
func durationEnv(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	secs, err := strconv.Atoi(raw)
	if err != nil || secs <= 0 {
		return fallback
	}
	return time.Duration(secs) * time.Second
}
