package navclient

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"wayfinder-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearcher_DebouncesKeystrokes(t *testing.T) {
	var calls atomic.Int64
	var lastQuery atomic.Value

	results := make(chan []models.SearchResult, 1)
	s := NewSearcher(func(_ context.Context, query string) ([]models.SearchResult, error) {
		calls.Add(1)
		lastQuery.Store(query)
		return []models.SearchResult{{DisplayName: query}}, nil
	}, func(r []models.SearchResult) {
		results <- r
	})
	s.delay = 20 * time.Millisecond
	defer s.Close()

	// Three quick keystrokes collapse into one request for the last query.
	s.Update("uni")
	s.Update("unio")
	s.Update("union")

	select {
	case got := <-results:
		require.Len(t, got, 1)
		assert.Equal(t, "union", got[0].DisplayName)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for search results")
	}

	assert.Equal(t, int64(1), calls.Load())
	assert.Equal(t, "union", lastQuery.Load())
}

func TestSearcher_ShortQueryClearsWithoutSearching(t *testing.T) {
	var calls atomic.Int64

	results := make(chan []models.SearchResult, 1)
	s := NewSearcher(func(_ context.Context, query string) ([]models.SearchResult, error) {
		calls.Add(1)
		return nil, nil
	}, func(r []models.SearchResult) {
		results <- r
	})
	s.delay = 10 * time.Millisecond
	defer s.Close()

	s.Update("un")

	select {
	case got := <-results:
		assert.Empty(t, got)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for cleared results")
	}

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int64(0), calls.Load(), "queries under the minimum length never hit the network")
}

func TestSearcher_SupersededRequestIsAborted(t *testing.T) {
	firstStarted := make(chan struct{})
	var calls atomic.Int64

	results := make(chan []models.SearchResult, 2)
	s := NewSearcher(func(ctx context.Context, query string) ([]models.SearchResult, error) {
		if calls.Add(1) == 1 {
			close(firstStarted)
			// Block until the supersede cancels this request.
			<-ctx.Done()
			return nil, ctx.Err()
		}
		return []models.SearchResult{{DisplayName: query}}, nil
	}, func(r []models.SearchResult) {
		results <- r
	})
	s.delay = 10 * time.Millisecond
	defer s.Close()

	s.Update("first query")
	<-firstStarted

	s.Update("second query")

	select {
	case got := <-results:
		require.Len(t, got, 1)
		assert.Equal(t, "second query", got[0].DisplayName, "only the newest request's results are delivered")
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for search results")
	}

	// The canceled first request must not deliver anything afterwards.
	select {
	case extra := <-results:
		t.Fatalf("unexpected extra delivery: %v", extra)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestSearcher_FailureDeliversEmptyResults(t *testing.T) {
	results := make(chan []models.SearchResult, 1)
	s := NewSearcher(func(_ context.Context, _ string) ([]models.SearchResult, error) {
		return nil, assert.AnError
	}, func(r []models.SearchResult) {
		results <- r
	})
	s.delay = 10 * time.Millisecond
	defer s.Close()

	s.Update("somewhere")

	select {
	case got := <-results:
		assert.Empty(t, got)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for results")
	}
}
