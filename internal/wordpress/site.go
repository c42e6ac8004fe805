package wordpress

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
)

// SiteSlot is the local slot mirroring the configured site.
const SiteSlot = "aiva_wordpress_site"

// ErrNoSite is returned when no WordPress site URL has been configured.
var ErrNoSite = errors.New("wordpress site not configured")

// SiteConfig identifies a WordPress site and the application password used
// to write to it.
type SiteConfig struct {
	URL         string `json:"url"`
	Username    string `json:"username,omitempty"`
	AppPassword string `json:"appPassword,omitempty"`
}

func (s SiteConfig) endpoint(path string) string {
	return strings.TrimRight(s.URL, "/") + path
}

// Cache is the durable storage SiteStore mirrors its value into.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
}

// SiteStore holds the configured site. Reads fall through to the cache on
// first use; writes go to the cache before the in-memory value changes.
type SiteStore struct {
	mu     sync.RWMutex
	cache  Cache
	site   SiteConfig
	loaded bool
}

// NewSiteStore creates a store seeded with fallback, which is used until
// the cache holds a value.
func NewSiteStore(cache Cache, fallback SiteConfig) *SiteStore {
	return &SiteStore{cache: cache, site: fallback}
}

// Site returns the current site, refreshing from the cache on first call.
func (s *SiteStore) Site(ctx context.Context) (SiteConfig, error) {
	s.mu.RLock()
	if s.loaded {
		site := s.site
		s.mu.RUnlock()
		return site, nil
	}
	s.mu.RUnlock()

	return s.Refresh(ctx)
}

// Refresh reloads the site from the cache. A missing or unreadable cached
// value keeps the current site.
func (s *SiteStore) Refresh(ctx context.Context) (SiteConfig, error) {
	raw, err := s.cache.Get(ctx, SiteSlot)
	if err != nil {
		return SiteConfig{}, fmt.Errorf("read site config: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(raw) > 0 {
		var cached SiteConfig
		if err := json.Unmarshal(raw, &cached); err == nil && cached.URL != "" {
			s.site = cached
		}
	}
	s.loaded = true
	return s.site, nil
}

// Save writes site through to the cache, then makes it current.
func (s *SiteStore) Save(ctx context.Context, site SiteConfig) error {
	raw, err := json.Marshal(site)
	if err != nil {
		return fmt.Errorf("marshal site config: %w", err)
	}
	if err := s.cache.Put(ctx, SiteSlot, raw); err != nil {
		return fmt.Errorf("write site config: %w", err)
	}

	s.mu.Lock()
	s.site = site
	s.loaded = true
	s.mu.Unlock()
	return nil
}

// Client builds a client for the current site.
func (s *SiteStore) Client(ctx context.Context, cfg Config, logger *slog.Logger) (*Client, error) {
	site, err := s.Site(ctx)
	if err != nil {
		return nil, err
	}
	return New(site, cfg, logger)
}
