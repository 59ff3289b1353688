package service

import "errors"

// Sentinel errors surfaced to the HTTP layer. Failures inside the fetch
// pipeline are never surfaced; they degrade to mock fallback data.
var (
	ErrInvalidCoordinate   = errors.New("coordinate out of range")
	ErrInvalidRadius       = errors.New("radius is not a selectable option")
	ErrGeocodeNotFound     = errors.New("could not find location")
	ErrProviderUnavailable = errors.New("geocoding provider unavailable")
	ErrSessionNotFound     = errors.New("search session not found or expired")
	ErrPipelineTimeout     = errors.New("search pipeline timed out")
)
