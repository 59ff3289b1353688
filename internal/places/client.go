package places

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// ErrZeroResults is returned when the provider answers with an empty
// result set for a well-formed request.
var ErrZeroResults = errors.New("provider returned zero results")

// Client talks to the Google Places and Geocoding APIs. The API key is
// injected server-side and never appears in URLs handed back to clients.
type Client struct {
	placesBaseURL    string
	geocodingBaseURL string
	apiKey           string
	httpClient       *http.Client
}

// NewClient creates a places client. httpClient may be nil, in which
// case a client with a 15s timeout is used.
func NewClient(placesBaseURL, geocodingBaseURL, apiKey string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{
		placesBaseURL:    placesBaseURL,
		geocodingBaseURL: geocodingBaseURL,
		apiKey:           apiKey,
		httpClient:       httpClient,
	}
}

// NearbySearch fetches venues of the given type near a location.
// radiusM is in meters.
func (c *Client) NearbySearch(ctx context.Context, lat, lng float64, radiusM int, placeType string) ([]Candidate, error) {
	params := url.Values{}
	params.Set("location", fmt.Sprintf("%f,%f", lat, lng))
	params.Set("radius", fmt.Sprintf("%d", radiusM))
	params.Set("type", placeType)

	var parsed nearbyResponse
	if err := c.getJSON(ctx, c.placesBaseURL+"/nearbysearch/json", params, &parsed); err != nil {
		return nil, err
	}
	if parsed.Status != "OK" && parsed.Status != "ZERO_RESULTS" {
		return nil, fmt.Errorf("nearby search status %s", parsed.Status)
	}

	candidates := make([]Candidate, 0, len(parsed.Results))
	for _, r := range parsed.Results {
		if r.PlaceID == "" || r.Name == "" {
			continue
		}
		candidates = append(candidates, Candidate{
			PlaceID: r.PlaceID,
			Name:    r.Name,
			Types:   r.Types,
			Rating:  r.Rating,
			Lat:     r.Geometry.Location.Lat,
			Lng:     r.Geometry.Location.Lng,
		})
	}
	return candidates, nil
}

// detailsFields is the field mask requested for every details lookup
const detailsFields = "name,rating,types,url,photos,editorial_summary,reviews"

// Details fetches the enrichment fields for a single place
func (c *Client) Details(ctx context.Context, placeID string) (*Details, error) {
	params := url.Values{}
	params.Set("place_id", placeID)
	params.Set("fields", detailsFields)

	var parsed detailsResponse
	if err := c.getJSON(ctx, c.placesBaseURL+"/details/json", params, &parsed); err != nil {
		return nil, err
	}
	if parsed.Status != "OK" {
		return nil, fmt.Errorf("details status %s for place %s", parsed.Status, placeID)
	}

	r := parsed.Result
	d := &Details{
		Name:   r.Name,
		Rating: r.Rating,
		Types:  r.Types,
		URL:    r.URL,
	}
	if len(r.Photos) > 0 {
		d.PhotoReference = r.Photos[0].PhotoReference
	}
	if r.EditorialSummary != nil {
		d.EditorialSummary = r.EditorialSummary.Overview
	}
	if len(r.Reviews) > 0 {
		d.FirstReview = r.Reviews[0].Text
	}
	return d, nil
}

// Geocode resolves a free-text place name to a coordinate and a display
// address. Returns ErrZeroResults when the provider finds nothing.
func (c *Client) Geocode(ctx context.Context, name string) (lat, lng float64, displayName string, err error) {
	params := url.Values{}
	params.Set("address", name)

	var parsed geocodeResponse
	if err = c.getJSON(ctx, c.geocodingBaseURL+"/json", params, &parsed); err != nil {
		return 0, 0, "", err
	}
	if parsed.Status == "ZERO_RESULTS" || len(parsed.Results) == 0 {
		return 0, 0, "", ErrZeroResults
	}
	if parsed.Status != "OK" {
		return 0, 0, "", fmt.Errorf("geocode status %s", parsed.Status)
	}

	first := parsed.Results[0]
	return first.Geometry.Location.Lat, first.Geometry.Location.Lng, first.FormattedAddress, nil
}

// Forward issues a raw GET against a provider endpoint with the API key
// injected, returning the unread response for passthrough. The caller
// owns the response body. Used by the proxy handlers.
func (c *Client) Forward(ctx context.Context, endpoint string, params url.Values) (*http.Response, error) {
	params.Set("key", c.apiKey)
	apiURL := c.placesBaseURL + endpoint + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("provider request failed: %w", err)
	}
	return resp, nil
}

// getJSON executes a provider GET request and decodes the JSON body
func (c *Client) getJSON(ctx context.Context, baseURL string, params url.Values, out interface{}) error {
	params.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("provider request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("provider returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, out)
}
