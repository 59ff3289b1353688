package models

import (
	"encoding/json"
	"fmt"
)

// Coordinate represents a geographic point in degrees
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Valid reports whether the coordinate is within the WGS84 range
func (c Coordinate) Valid() bool {
	return c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180
}

// SearchRadius values selectable by the client, in kilometers
var SearchRadiusOptions = []int{1, 5, 10, 25}

// DefaultSearchRadiusKm is used when the client sends no radius
const DefaultSearchRadiusKm = 5

// ValidRadius reports whether the radius is one of the selectable options
func ValidRadius(km int) bool {
	for _, r := range SearchRadiusOptions {
		if km == r {
			return true
		}
	}
	return false
}

// Rating is a place rating that serializes as a number, or the string
// "Not rated" when the provider reported none (zero value).
type Rating float64

// NotRated is the zero rating
const NotRated Rating = 0

// MarshalJSON implements json.Marshaler
func (r Rating) MarshalJSON() ([]byte, error) {
	if r <= 0 {
		return json.Marshal("Not rated")
	}
	return json.Marshal(float64(r))
}

// UnmarshalJSON implements json.Unmarshaler, accepting both forms
func (r *Rating) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*r = Rating(f)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*r = NotRated
		return nil
	}
	return fmt.Errorf("invalid rating value: %s", string(data))
}

// PlaceRecord represents a single venue shown to the user.
// ID is the stable identity key: two records with the same ID are the
// same place regardless of other field differences. Synthetic records
// carry the "mock-" prefix.
type PlaceRecord struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Introduction string   `json:"introduction"`
	Rating       Rating   `json:"rating"`
	Image        string   `json:"image"`
	Categories   []string `json:"categories"`
	DistanceKm   float64  `json:"distance_km"`
	DetailURL    string   `json:"url"`
}

// HasCategory reports whether the record carries the given taxonomy tag
func (p PlaceRecord) HasCategory(category string) bool {
	for _, c := range p.Categories {
		if c == category {
			return true
		}
	}
	return false
}

// MockIDPrefix marks synthetic fallback records
const MockIDPrefix = "mock-"

// FilterAll is the filter value that matches every record
const FilterAll = "all"

// FilterPlaces returns the records matching the given category filter.
// The "all" filter (or empty string) keeps every record.
func FilterPlaces(places []PlaceRecord, filter string) []PlaceRecord {
	if filter == "" || filter == FilterAll {
		return places
	}
	filtered := make([]PlaceRecord, 0, len(places))
	for _, p := range places {
		if p.HasCategory(filter) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
