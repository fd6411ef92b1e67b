package navclient

import (
	"context"
	"errors"
	"sync"
	"time"

	"wayfinder-api/internal/models"
)

const (
	// searchDebounce is the quiet period after the last keystroke before a
	// search request is issued.
	searchDebounce = 500 * time.Millisecond

	// minQueryLength is the shortest query worth sending; anything shorter
	// just clears the result list.
	minQueryLength = 3
)

// SearchFunc performs one geocoding search.
type SearchFunc func(ctx context.Context, query string) ([]models.SearchResult, error)

// Searcher debounces search-as-you-type queries and cancels any in-flight
// request superseded by a newer keystroke. Results (or failures, delivered
// as an empty list) reach the caller through the onResults callback; a
// stale response never does.
type Searcher struct {
	search    SearchFunc
	onResults func([]models.SearchResult)
	delay     time.Duration

	mu     sync.Mutex
	timer  *time.Timer
	cancel context.CancelFunc
	seq    uint64
	closed bool
}

// NewSearcher creates a searcher delivering results to onResults.
func NewSearcher(search SearchFunc, onResults func([]models.SearchResult)) *Searcher {
	return &Searcher{
		search:    search,
		onResults: onResults,
		delay:     searchDebounce,
	}
}

// Update registers a keystroke. The pending request, if any, is rescheduled
// for one quiet period from now; queries shorter than the minimum clear the
// results immediately.
func (s *Searcher) Update(query string) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.seq++

	if len(query) < minQueryLength {
		s.abortInFlight()
		s.mu.Unlock()
		s.onResults([]models.SearchResult{})
		return
	}

	s.timer = time.AfterFunc(s.delay, func() { s.run(query) })
	s.mu.Unlock()
}

// Close cancels any pending or in-flight search.
func (s *Searcher) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.abortInFlight()
}

func (s *Searcher) run(query string) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.abortInFlight()
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	seq := s.seq
	s.mu.Unlock()

	results, err := s.search(ctx, query)

	s.mu.Lock()
	if s.closed || seq != s.seq {
		s.mu.Unlock()
		return
	}
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.mu.Unlock()

	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		s.onResults([]models.SearchResult{})
		return
	}
	s.onResults(results)
}

// abortInFlight cancels the active request; callers hold the lock.
func (s *Searcher) abortInFlight() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}
