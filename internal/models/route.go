package models

// Position is a single [longitude, latitude] point, optionally carrying a
// third elevation element when the provider returns elevation data.
// The longitude-first ordering matches the routing provider; map display
// layers expect [lat, lon] and must swap at their own boundary.
type Position []float64

// RouteGeometry is the ordered path of a computed route, start to end.
type RouteGeometry struct {
	Type        string     `json:"type"`
	Coordinates []Position `json:"coordinates"`
}

// RouteInstruction is one turn-by-turn step. Field naming follows the
// established wire contract: Text carries the human-readable instruction
// and Instruction carries the road name.
type RouteInstruction struct {
	Text        string  `json:"text"`
	Distance    float64 `json:"distance"`
	Time        float64 `json:"time"`
	Instruction string  `json:"instruction"`
}

// RouteInfo summarizes a computed route: total distance in the provider's
// configured units, duration in seconds, and the per-step instructions.
type RouteInfo struct {
	Distance     float64            `json:"distance"`
	Duration     float64            `json:"duration"`
	Geometry     RouteGeometry      `json:"geometry"`
	Instructions []RouteInstruction `json:"instructions,omitempty"`
}

// RouteRequest is the body of a route computation request. Both coordinate
// pairs are [longitude, latitude]; a nil slice means the field was absent.
type RouteRequest struct {
	FromCoords []float64 `json:"fromCoords"`
	ToCoords   []float64 `json:"toCoords"`
}

// RouteResponse is the normalized shape returned to clients.
type RouteResponse struct {
	Geometry  RouteGeometry `json:"geometry"`
	RouteInfo RouteInfo     `json:"routeInfo"`
}
