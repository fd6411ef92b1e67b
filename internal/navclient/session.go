package navclient

import (
	"context"
	"errors"
	"sync"

	"wayfinder-api/internal/models"
)

// State is the phase of one navigation interaction.
type State int

const (
	StateIdle State = iota
	StateAwaitingFrom
	StateAwaitingTo
	StateReadyToRoute
	StateRouteDisplayed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAwaitingFrom:
		return "awaiting-from"
	case StateAwaitingTo:
		return "awaiting-to"
	case StateReadyToRoute:
		return "ready-to-route"
	case StateRouteDisplayed:
		return "route-displayed"
	default:
		return "unknown"
	}
}

var (
	// ErrEndpointsNotSet means route computation was invoked before both
	// endpoints were selected.
	ErrEndpointsNotSet = errors.New("navclient: both starting and destination points are required")

	// ErrSuperseded means a newer route request was issued while this one
	// was in flight; its result was discarded.
	ErrSuperseded = errors.New("navclient: route request superseded")
)

// RoutePlanner computes a route between two coordinate pairs.
type RoutePlanner interface {
	CalculateRoute(ctx context.Context, fromCoords, toCoords []float64) (*models.RouteResponse, error)
}

// Session tracks one navigation interaction: endpoint selection, route
// computation, and the currently displayed route. Each computation carries
// a sequence number; a result arriving after a newer request was issued is
// discarded, so only the most recent user-initiated request is ever
// committed.
type Session struct {
	planner RoutePlanner

	mu        sync.Mutex
	state     State
	from      []float64
	to        []float64
	route     *models.RouteGeometry
	routeInfo *models.RouteInfo
	seq       uint64
}

// NewSession creates an idle session using planner for route computation.
func NewSession(planner RoutePlanner) *Session {
	return &Session{planner: planner, state: StateIdle}
}

// BeginFromSearch marks the start of editing the starting point. Any
// displayed route stays until an endpoint actually changes.
func (s *Session) BeginFromSearch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateAwaitingFrom
}

// BeginToSearch marks the start of editing the destination.
func (s *Session) BeginToSearch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateAwaitingTo
}

// SelectFrom commits a geocoded starting point ([longitude, latitude]).
func (s *Session) SelectFrom(coords []float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.from = coords
	s.invalidateRoute()
	if s.to != nil {
		s.state = StateReadyToRoute
	} else {
		s.state = StateAwaitingTo
	}
}

// SelectTo commits a geocoded destination ([longitude, latitude]).
func (s *Session) SelectTo(coords []float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.to = coords
	s.invalidateRoute()
	if s.from != nil {
		s.state = StateReadyToRoute
	} else {
		s.state = StateAwaitingFrom
	}
}

// ClearFrom drops the starting point and any displayed route.
func (s *Session) ClearFrom() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.from = nil
	s.invalidateRoute()
	s.state = StateAwaitingFrom
}

// ClearTo drops the destination and any displayed route.
func (s *Session) ClearTo() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.to = nil
	s.invalidateRoute()
	s.state = StateAwaitingTo
}

// Clear resets the session to idle.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.from = nil
	s.to = nil
	s.invalidateRoute()
	s.state = StateIdle
}

// CanRoute reports whether both endpoints are set; the UI's "Get
// Directions" guard.
func (s *Session) CanRoute() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.from != nil && s.to != nil
}

// CalculateRoute runs one route computation. On success the session moves
// to route-displayed; on failure it keeps its endpoints so the user can
// retry. A result superseded by a newer call returns ErrSuperseded and
// leaves the session untouched.
func (s *Session) CalculateRoute(ctx context.Context) (*models.RouteResponse, error) {
	s.mu.Lock()
	if s.from == nil || s.to == nil {
		s.mu.Unlock()
		return nil, ErrEndpointsNotSet
	}
	s.seq++
	seq := s.seq
	from, to := s.from, s.to
	s.mu.Unlock()

	route, err := s.planner.CalculateRoute(ctx, from, to)

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.seq {
		return nil, ErrSuperseded
	}
	if err != nil {
		return nil, err
	}

	s.route = &route.Geometry
	s.routeInfo = &route.RouteInfo
	s.state = StateRouteDisplayed
	return route, nil
}

// State returns the current phase.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Route returns the displayed route geometry, or nil.
func (s *Session) Route() *models.RouteGeometry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.route
}

// RouteInfo returns the displayed route info, or nil.
func (s *Session) RouteInfo() *models.RouteInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.routeInfo
}

// invalidateRoute drops the displayed route; callers hold the lock.
func (s *Session) invalidateRoute() {
	s.route = nil
	s.routeInfo = nil
}
