package models

// MarkedLocation represents a single location saved by the user, containing
// its resolved display address and its precise geographic coordinates.
type MarkedLocation struct {
	ID        int64   `json:"id"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
}
