package models

// MarkerConfig describes one points-of-interest overlay: the tag filter
// sent to the POI query service, the marker color, the hover tooltip, and
// whether the overlay is currently shown.
type MarkerConfig struct {
	POI     string `json:"poi"`
	Color   string `json:"color"`
	Tooltip string `json:"tooltip"`
	Visible bool   `json:"visible"`
}

// Preferences holds the user's overlay definitions and assistant flags.
type Preferences struct {
	Markers    map[string]MarkerConfig `json:"markers"`
	EnableTTS  bool                    `json:"enableTTS"`
	AutoLocate bool                    `json:"autoLocate"`
}

// PreferenceFlags is the body for updating the assistant flags.
type PreferenceFlags struct {
	EnableTTS  bool `json:"enableTTS"`
	AutoLocate bool `json:"autoLocate"`
}

// DefaultPreferences returns the overlay set a fresh user starts with.
func DefaultPreferences() Preferences {
	return Preferences{
		Markers: map[string]MarkerConfig{
			"wheelchairs": {POI: "wheelchair=yes", Color: "blue", Tooltip: "Wheelchair accessible", Visible: false},
			"elevators":   {POI: "elevator=yes", Color: "yellow", Tooltip: "Elevator accessible", Visible: false},
			"washrooms":   {POI: "amenity=toilets", Color: "green", Tooltip: "Washroom accessible", Visible: false},
		},
		EnableTTS:  true,
		AutoLocate: true,
	}
}
