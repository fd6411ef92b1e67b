package models

// SearchResult is one forward-geocoding match. Latitude and longitude are
// strings because the upstream search service sends them that way.
type SearchResult struct {
	PlaceID     int64  `json:"place_id"`
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
}

// ReverseResult is a reverse-geocoding lookup: the display name nearest to
// the queried coordinates.
type ReverseResult struct {
	DisplayName string `json:"display_name"`
}

// POIElement is one point of interest returned by the geographic data API.
type POIElement struct {
	ID   int64             `json:"id"`
	Lat  float64           `json:"lat"`
	Lon  float64           `json:"lon"`
	Tags map[string]string `json:"tags,omitempty"`
}

// POIResult wraps the elements array of a points-of-interest query.
type POIResult struct {
	Elements []POIElement `json:"elements"`
}
