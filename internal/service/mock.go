package service

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/jengzang/restaurant-discovery-go/internal/models"
	"github.com/jengzang/restaurant-discovery-go/internal/spatial"
)

// Embedded SVG placeholders shown when no photo is available. One per
// venue type plus a generic fallback.
const (
	placeholderRestaurant = "data:image/svg+xml;base64,PHN2ZyB3aWR0aD0iODAwIiBoZWlnaHQ9IjQwMCIgeG1sbnM9Imh0dHA6Ly93d3cudzMub3JnLzIwMDAvc3ZnIj48cmVjdCB3aWR0aD0iODAwIiBoZWlnaHQ9IjQwMCIgZmlsbD0iI2YyZjJmMiIvPjx0ZXh0IHg9IjQwMCIgeT0iMjAwIiBmb250LWZhbWlseT0iQXJpYWwsIHNhbnMtc2VyaWYiIGZvbnQtc2l6ZT0iMzAiIHRleHQtYW5jaG9yPSJtaWRkbGUiIGZpbGw9IiM2NjY2NjYiPlJlc3RhdXJhbnQ8L3RleHQ+PC9zdmc+"
	placeholderCafe       = "data:image/svg+xml;base64,PHN2ZyB3aWR0aD0iODAwIiBoZWlnaHQ9IjQwMCIgeG1sbnM9Imh0dHA6Ly93d3cudzMub3JnLzIwMDAvc3ZnIj48cmVjdCB3aWR0aD0iODAwIiBoZWlnaHQ9IjQwMCIgZmlsbD0iI2YyZjJmMiIvPjx0ZXh0IHg9IjQwMCIgeT0iMjAwIiBmb250LWZhbWlseT0iQXJpYWwsIHNhbnMtc2VyaWYiIGZvbnQtc2l6ZT0iMzAiIHRleHQtYW5jaG9yPSJtaWRkbGUiIGZpbGw9IiM2NjY2NjYiPkNhZmU8L3RleHQ+PC9zdmc+"
	placeholderBar        = "data:image/svg+xml;base64,PHN2ZyB3aWR0aD0iODAwIiBoZWlnaHQ9IjQwMCIgeG1sbnM9Imh0dHA6Ly93d3cudzMub3JnLzIwMDAvc3ZnIj48cmVjdCB3aWR0aD0iODAwIiBoZWlnaHQ9IjQwMCIgZmlsbD0iI2YyZjJmMiIvPjx0ZXh0IHg9IjQwMCIgeT0iMjAwIiBmb250LWZhbWlseT0iQXJpYWwsIHNhbnMtc2VyaWYiIGZvbnQtc2l6ZT0iMzAiIHRleHQtYW5jaG9yPSJtaWRkbGUiIGZpbGw9IiM2NjY2NjYiPkJhcjwvdGV4dD48L3N2Zz4="
	placeholderNoImage    = "data:image/svg+xml;base64,PHN2ZyB3aWR0aD0iODAwIiBoZWlnaHQ9IjQwMCIgeG1sbnM9Imh0dHA6Ly93d3cudzMub3JnLzIwMDAvc3ZnIj48cmVjdCB3aWR0aD0iODAwIiBoZWlnaHQ9IjQwMCIgZmlsbD0iI2YyZjJmMiIvPjx0ZXh0IHg9IjQwMCIgeT0iMjAwIiBmb250LWZhbWlseT0iQXJpYWwsIHNhbnMtc2VyaWYiIGZvbnQtc2l6ZT0iMzAiIHRleHQtYW5jaG9yPSJtaWRkbGUiIGZpbGw9IiM2NjY2NjYiPk5vIEltYWdlIEF2YWlsYWJsZTwvdGV4dD48L3N2Zz4="
)

// placeholderForType returns the placeholder image for a venue type
func placeholderForType(venueType string) string {
	switch venueType {
	case "restaurant":
		return placeholderRestaurant
	case "cafe":
		return placeholderCafe
	case "bar":
		return placeholderBar
	default:
		return placeholderNoImage
	}
}

// mockVenue is a catalog entry for synthetic fallback results
type mockVenue struct {
	name        string
	categories  []string
	description string
	venueType   string
}

// mockCatalog is the fixed set of synthetic venues used when the
// provider is unreachable or slow. The UI is never empty because of it.
var mockCatalog = []mockVenue{
	{
		name:        "Delicious Bistro",
		categories:  []string{"restaurant", "french"},
		description: "A cozy spot with a variety of delicious dishes. Their signature dish is the coq au vin, and they offer an extensive wine list featuring local and imported selections.",
		venueType:   "restaurant",
	},
	{
		name:        "Tasty Corner",
		categories:  []string{"restaurant", "american"},
		description: "Family-friendly restaurant with something for everyone. Known for their generous portions and friendly service. Don't miss their famous apple pie for dessert!",
		venueType:   "restaurant",
	},
	{
		name:        "Espresso Express",
		categories:  []string{"cafe", "coffee"},
		description: "Great coffee and pastries in a relaxed atmosphere. They roast their beans in-house and offer a variety of brewing methods. The outdoor seating area is perfect on sunny days.",
		venueType:   "cafe",
	},
	{
		name:        "Pub & Grub",
		categories:  []string{"bar", "pub"},
		description: "Classic pub fare and a wide selection of beers. Their trivia nights on Thursdays are popular with locals. The fish and chips are a customer favorite.",
		venueType:   "bar",
	},
	{
		name:        "Sushi Spot",
		categories:  []string{"restaurant", "japanese"},
		description: "Fresh sushi and Japanese specialties. The chef's omakase menu offers a unique dining experience with the freshest seasonal ingredients.",
		venueType:   "restaurant",
	},
	{
		name:        "Morning Brew",
		categories:  []string{"cafe", "breakfast"},
		description: "Perfect spot for your morning coffee and pastry. They roast their own beans and offer a variety of brewing methods. Try their famous cinnamon rolls!",
		venueType:   "cafe",
	},
	{
		name:        "Culinary Delight",
		categories:  []string{"restaurant", "italian"},
		description: "Fresh ingredients and creative Italian recipes await you. Their homemade pasta and wood-fired pizzas are customer favorites. Family-owned for over 20 years.",
		venueType:   "restaurant",
	},
	{
		name:        "Cocktail Lounge",
		categories:  []string{"bar", "lounge"},
		description: "Sophisticated cocktails in an elegant setting. Their mixologists create both classic and innovative drinks. Enjoy the relaxed ambiance and occasional jazz performances.",
		venueType:   "bar",
	},
}

// mockJitterDegrees bounds the synthetic coordinate offset (~0.5 km)
const mockJitterDegrees = 0.005

// GenerateMockPlaces produces randomized synthetic places near the
// origin. Never empty, never fails: this is the availability guarantee
// when the provider is down.
func GenerateMockPlaces(origin models.Coordinate) []models.PlaceRecord {
	shuffled := make([]mockVenue, len(mockCatalog))
	copy(shuffled, mockCatalog)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	records := make([]models.PlaceRecord, 0, len(shuffled))
	for i, venue := range shuffled {
		point := models.Coordinate{
			Latitude:  origin.Latitude + (rand.Float64()*2-1)*mockJitterDegrees,
			Longitude: origin.Longitude + (rand.Float64()*2-1)*mockJitterDegrees,
		}

		// Uniform in [3.0, 5.0], one decimal
		rating := math.Round((3+rand.Float64()*2)*10) / 10

		records = append(records, models.PlaceRecord{
			ID:           fmt.Sprintf("%s%d", models.MockIDPrefix, i),
			Name:         venue.name,
			Introduction: venue.description,
			Rating:       models.Rating(rating),
			Image:        placeholderForType(venue.venueType),
			Categories:   venue.categories,
			DistanceKm:   spatial.RoundKm(spatial.DistanceKm(origin, point)),
			DetailURL:    "#",
		})
	}
	return records
}
