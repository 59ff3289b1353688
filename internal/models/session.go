package models

import "time"

// FetchSession holds the per-search pagination state. It is reset
// whenever the origin coordinate or radius changes and never persisted.
type FetchSession struct {
	ID     string     `json:"id"`
	Origin Coordinate `json:"origin"`

	// AllFetched holds every record already promoted by pagination,
	// in promotion order. Filtering only ever looks at this slice.
	AllFetched []PlaceRecord `json:"all_fetched"`

	// Remaining holds records not yet handed out by a load-more call
	Remaining []PlaceRecord `json:"remaining"`

	// Filter is the active category filter ("all" for no filter)
	Filter string `json:"filter"`

	// Mock marks a session backed by fallback data
	Mock bool `json:"mock"`

	CreatedAt    time.Time `json:"created_at"`
	LastAccessed time.Time `json:"last_accessed"`
}

// SearchResult is the response body for search and pagination calls
type SearchResult struct {
	SessionID   string        `json:"session_id"`
	DisplayName string        `json:"display_name,omitempty"`
	Places      []PlaceRecord `json:"places"`
	HasMore     bool          `json:"has_more"`
	Mock        bool          `json:"mock"`
}
