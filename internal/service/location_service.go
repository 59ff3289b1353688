package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jengzang/restaurant-discovery-go/internal/models"
	"github.com/jengzang/restaurant-discovery-go/internal/places"
)

// Geocoder resolves a free-text place name to a coordinate
type Geocoder interface {
	Geocode(ctx context.Context, name string) (lat, lng float64, displayName string, err error)
}

// ResolvedLocation is a search origin plus its human-readable name
type ResolvedLocation struct {
	Coordinate  models.Coordinate
	DisplayName string
}

// LocationService resolves search origins. Both operations are
// single-shot and non-retrying; the caller decides what to do on failure.
type LocationService struct {
	geocoder Geocoder
}

// NewLocationService creates a new location service
func NewLocationService(geocoder Geocoder) *LocationService {
	return &LocationService{geocoder: geocoder}
}

// FromCoordinates accepts a device-reported position. The geolocation
// capability itself lives in the client; this validates its output.
func (s *LocationService) FromCoordinates(lat, lng float64) (ResolvedLocation, error) {
	coord := models.Coordinate{Latitude: lat, Longitude: lng}
	if !coord.Valid() {
		return ResolvedLocation{}, fmt.Errorf("%w: %f,%f", ErrInvalidCoordinate, lat, lng)
	}
	return ResolvedLocation{
		Coordinate:  coord,
		DisplayName: "Your Current Location",
	}, nil
}

// FromPlaceName geocodes a city or place name into a coordinate
func (s *LocationService) FromPlaceName(ctx context.Context, name string) (ResolvedLocation, error) {
	lat, lng, display, err := s.geocoder.Geocode(ctx, name)
	if err != nil {
		if errors.Is(err, places.ErrZeroResults) {
			return ResolvedLocation{}, fmt.Errorf("%w for %q", ErrGeocodeNotFound, name)
		}
		return ResolvedLocation{}, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}
	if display == "" {
		display = name
	}
	return ResolvedLocation{
		Coordinate:  models.Coordinate{Latitude: lat, Longitude: lng},
		DisplayName: display,
	}, nil
}
