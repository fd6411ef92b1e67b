package offline

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	// shellKey is the cache key for the app-shell root document.
	shellKey = "/"

	fetchTimeout = 30 * time.Second
)

// Manager owns the cache lifecycle for the app shell and map tiles: one
// live generation named by the version tag, install/activate transitions,
// and a per-resource-class fetch strategy.
//
// Policy: navigation documents are network-first with cache fallback (the
// shell should stay fresh); tiles are cache-first (immutable by URL, so
// offline availability wins); everything else passes through uncached,
// falling back to any existing entry only on network failure.
type Manager struct {
	version        string
	tileHostSuffix string
	shellURL       string
	store          Store
	httpClient     *http.Client
}

// NewManager creates a cache manager for the given version tag. shellURL is
// where the app-shell document is fetched from; tileHostSuffix classifies
// tile requests by host.
func NewManager(version, tileHostSuffix, shellURL string, store Store) *Manager {
	return &Manager{
		version:        version,
		tileHostSuffix: tileHostSuffix,
		shellURL:       shellURL,
		store:          store,
		httpClient:     &http.Client{Timeout: fetchTimeout},
	}
}

// Install opens the cache generation for the current version tag and seeds
// it with the app-shell root. A failed seed is logged, not fatal; the shell
// is re-cached on the next successful navigation fetch.
func (m *Manager) Install(ctx context.Context) error {
	if err := m.store.Open(ctx, m.version); err != nil {
		return fmt.Errorf("offline: open generation %q: %w", m.version, err)
	}

	entry, err := m.fetch(ctx, http.MethodGet, m.shellURL)
	if err != nil {
		log.Warn().Err(err).Str("shell", m.shellURL).Msg("offline: app shell seed failed")
		return nil
	}
	if err := m.store.Put(ctx, m.version, shellKey, entry); err != nil {
		log.Warn().Err(err).Msg("offline: app shell store failed")
	}
	return nil
}

// Activate deletes every generation whose tag does not match the current
// version. Repeated activation with the same tag is idempotent: the
// surviving entry set is the same as after one activation.
func (m *Manager) Activate(ctx context.Context) error {
	tags, err := m.store.Generations(ctx)
	if err != nil {
		return fmt.Errorf("offline: list generations: %w", err)
	}

	for _, tag := range tags {
		if tag == m.version {
			continue
		}
		if err := m.store.Delete(ctx, tag); err != nil {
			return fmt.Errorf("offline: delete generation %q: %w", tag, err)
		}
	}
	return nil
}

// Fetch resolves one intercepted request according to its resource class
// and the caching policy. The returned entry is always a snapshot safe to
// hand to the response writer.
func (m *Manager) Fetch(ctx context.Context, req *http.Request) (Entry, error) {
	switch {
	case isNavigation(req):
		return m.fetchNavigation(ctx)
	case strings.HasSuffix(req.URL.Host, m.tileHostSuffix):
		return m.fetchTile(ctx, req.URL.String())
	default:
		return m.fetchPassthrough(ctx, req.URL.String())
	}
}

// fetchNavigation is network-first: a fresh shell replaces the cached one,
// and the cached one answers when the network does not.
func (m *Manager) fetchNavigation(ctx context.Context) (Entry, error) {
	entry, err := m.fetch(ctx, http.MethodGet, m.shellURL)
	if err == nil {
		if putErr := m.store.Put(ctx, m.version, shellKey, entry); putErr != nil {
			log.Warn().Err(putErr).Msg("offline: shell cache write failed")
		}
		return entry, nil
	}

	cached, found, getErr := m.store.Get(ctx, m.version, shellKey)
	if getErr != nil {
		log.Warn().Err(getErr).Msg("offline: shell cache read failed")
	}
	if found {
		return cached, nil
	}
	return Entry{}, fmt.Errorf("offline: navigation fetch: %w", err)
}

// fetchTile is cache-first: tiles are immutable by URL.
func (m *Manager) fetchTile(ctx context.Context, url string) (Entry, error) {
	cached, found, err := m.store.Get(ctx, m.version, url)
	if err != nil {
		log.Warn().Err(err).Str("tile", url).Msg("offline: tile cache read failed")
	}
	if found {
		return cached, nil
	}

	entry, err := m.fetch(ctx, http.MethodGet, url)
	if err != nil {
		return Entry{}, fmt.Errorf("offline: tile fetch: %w", err)
	}
	if putErr := m.store.Put(ctx, m.version, url, entry); putErr != nil {
		log.Warn().Err(putErr).Str("tile", url).Msg("offline: tile cache write failed")
	}
	return entry, nil
}

// fetchPassthrough never writes the cache; it only reads it when the
// network fails.
func (m *Manager) fetchPassthrough(ctx context.Context, url string) (Entry, error) {
	entry, err := m.fetch(ctx, http.MethodGet, url)
	if err == nil {
		return entry, nil
	}

	cached, found, getErr := m.store.Get(ctx, m.version, url)
	if getErr != nil {
		log.Warn().Err(getErr).Str("url", url).Msg("offline: cache read failed")
	}
	if found {
		return cached, nil
	}
	return Entry{}, fmt.Errorf("offline: fetch: %w", err)
}

func (m *Manager) fetch(ctx context.Context, method, url string) (Entry, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return Entry{}, err
	}

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return Entry{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Entry{}, err
	}

	return Entry{
		StatusCode: resp.StatusCode,
		Header:     resp.Header.Clone(),
		Body:       body,
	}, nil
}

// isNavigation reports whether the request is a full-page document load.
func isNavigation(req *http.Request) bool {
	return req.Header.Get("Sec-Fetch-Mode") == "navigate"
}
