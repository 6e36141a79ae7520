package list_cache

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/Modeva-Ecommerce/modeva-cms-admin/listfilter"
	"github.com/Modeva-Ecommerce/modeva-cms-admin/models"
)

const DefaultTTL = 30 * time.Second

// ── List page cache ──────────────────────────────────────────────────────────
// Keyed on screen + effective filter state + page. A new filter state is a
// new key, so a page fetched for a superseded state is never served for
// the current one.

// Page is one cached list response.
type Page struct {
	Rows  any
	Total int64
}

type entry struct {
	page      Page
	fetchedAt time.Time
}

type Cache struct {
	ttl     time.Duration
	now     func() time.Time
	mu      sync.RWMutex
	entries map[string]entry
}

func New(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{ttl: ttl, now: time.Now, entries: map[string]entry{}}
}

// Key builds the cache key. encoding/json writes map keys sorted, so equal
// states give equal keys.
func Key(screen string, effective listfilter.State, p models.PageRequest) (string, error) {
	raw, err := json.Marshal(effective)
	if err != nil {
		return "", fmt.Errorf("list cache key: %w", err)
	}
	return fmt.Sprintf("%s|%s|%d:%d", screen, raw, p.Page, p.Limit), nil
}

func (c *Cache) Get(key string) (Page, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[key]
	if ok && c.now().Sub(e.fetchedAt) < c.ttl {
		return e.page, true
	}
	return Page{}, false
}

func (c *Cache) Set(key string, page Page) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{page: page, fetchedAt: c.now()}
	c.evictExpiredLocked()
}

// ── Invalidation (call when a screen's rows may have changed) ────────────────

// InvalidateScreen drops every page of screen, including pages scoped by
// pathname params ("order-items;id=42").
func (c *Cache) InvalidateScreen(screen string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k := range c.entries {
		if strings.HasPrefix(k, screen+"|") || strings.HasPrefix(k, screen+";") {
			delete(c.entries, k)
		}
	}
}

func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *Cache) evictExpiredLocked() {
	now := c.now()
	for k, e := range c.entries {
		if now.Sub(e.fetchedAt) >= c.ttl {
			delete(c.entries, k)
		}
	}
}
