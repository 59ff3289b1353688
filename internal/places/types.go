package places

// Google Places API wire types. Only the fields the service reads are
// declared; everything else in the provider payload is ignored.

type nearbyResponse struct {
	Results []nearbyResult `json:"results"`
	Status  string         `json:"status"`
}

type nearbyResult struct {
	PlaceID  string   `json:"place_id"`
	Name     string   `json:"name"`
	Types    []string `json:"types"`
	Vicinity string   `json:"vicinity"`
	Rating   float64  `json:"rating,omitempty"`
	Geometry geometry `json:"geometry"`
}

type geometry struct {
	Location location `json:"location"`
}

type location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type detailsResponse struct {
	Result detailsResult `json:"result"`
	Status string        `json:"status"`
}

type detailsResult struct {
	Name             string   `json:"name"`
	Rating           float64  `json:"rating,omitempty"`
	Types            []string `json:"types"`
	URL              string   `json:"url"`
	Photos           []photo  `json:"photos,omitempty"`
	Reviews          []review `json:"reviews,omitempty"`
	EditorialSummary *struct {
		Overview string `json:"overview"`
	} `json:"editorial_summary,omitempty"`
}

type photo struct {
	PhotoReference string `json:"photo_reference"`
	Width          int    `json:"width"`
	Height         int    `json:"height"`
}

type review struct {
	Text   string  `json:"text"`
	Rating float64 `json:"rating"`
}

type geocodeResponse struct {
	Results []geocodeResult `json:"results"`
	Status  string          `json:"status"`
}

type geocodeResult struct {
	FormattedAddress string   `json:"formatted_address"`
	Geometry         geometry `json:"geometry"`
}

// Candidate is a venue returned by a nearby search, before details
// enrichment
type Candidate struct {
	PlaceID string
	Name    string
	Types   []string
	Rating  float64
	Lat     float64
	Lng     float64
}

// Details holds the enriched fields for a single place
type Details struct {
	Name             string
	Rating           float64
	Types            []string
	URL              string
	PhotoReference   string
	EditorialSummary string
	FirstReview      string
}
