package spatial

import (
	"math"

	"github.com/golang/geo/s2"

	"github.com/jengzang/restaurant-discovery-go/internal/models"
)

// Constants
const (
	EarthRadiusMeters = 6371000.0 // Earth's mean radius in meters
	EarthRadiusKm     = 6371.0    // Earth's mean radius in kilometers
)

// DistanceKm calculates the great-circle distance between two coordinates
// in kilometers using the haversine formula
func DistanceKm(a, b models.Coordinate) float64 {
	return HaversineDistance(a.Latitude, a.Longitude, b.Latitude, b.Longitude) / 1000
}

// HaversineDistance calculates the great-circle distance between two points in meters
// using the Haversine formula
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	p1 := s2.LatLngFromDegrees(lat1, lon1)
	p2 := s2.LatLngFromDegrees(lat2, lon2)
	return p1.Distance(p2).Radians() * EarthRadiusMeters
}

// RoundKm rounds a distance to two decimals for display
func RoundKm(km float64) float64 {
	return math.Round(km*100) / 100
}
