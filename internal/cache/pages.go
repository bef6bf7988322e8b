// Package cache holds the path-keyed page cache used by read handlers.
// Mutation actions invalidate the marketplace and dashboard entries so stale
// listings are not served after a product save or profile edit.
package cache

import (
	"sync"
	"time"
)

// Paths the read handlers cache under and the mutation actions evict.
const (
	MarketplacePath       = "/marketplace"
	DashboardProductsPath = "/dashboard-artisan/products"
	DashboardProfilePath  = "/dashboard-artisan/profile"
)

// ArtisanPath is the cache key for one artisan's public page.
func ArtisanPath(id string) string {
	return "/artisans/" + id
}

type entry struct {
	value   any
	savedAt time.Time
}

// Pages is a process-wide cache keyed by request path.
type Pages struct {
	mu      sync.RWMutex
	entries map[string]entry
}

func NewPages() *Pages {
	return &Pages{
		entries: make(map[string]entry),
	}
}

func (p *Pages) Get(path string) (any, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	e, ok := p.entries[path]
	if !ok {
		return nil, false
	}
	return e.value, true
}

func (p *Pages) Put(path string, value any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.entries[path] = entry{value: value, savedAt: time.Now()}
}

// Invalidate drops the cached entry for a path. Unknown paths are a no-op.
func (p *Pages) Invalidate(paths ...string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, path := range paths {
		delete(p.entries, path)
	}
}
