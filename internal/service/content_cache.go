package service

import (
	"errors"
	"sync"
	"time"

	"github.com/linque-cms/internal/catalog"
	"github.com/linque-cms/internal/content"
	"github.com/linque-cms/internal/logger"

	"golang.org/x/sync/singleflight"
)

const (
	keyPostsPrefix = "posts"
	keyJobsPrefix  = "jobs"
)

type cacheEntry struct {
	value     any
	err       error
	fetchedAt time.Time
}

// ContentCache wraps the resolver with keyed in-memory caching. Entries are
// fresh for a bounded window; stale entries are served immediately while a
// deduplicated background refresh reconciles with the store. Public queries
// are seeded from the catalog so the first request never waits on the store.
type ContentCache struct {
	resolver *ContentService
	ttl      time.Duration
	group    singleflight.Group

	mu      sync.RWMutex
	entries map[string]*cacheEntry
}

// NewContentCache creates a cache over the resolver. ttl values of zero or
// below disable reuse entirely; every read then refreshes.
func NewContentCache(resolver *ContentService, ttl time.Duration) *ContentCache {
	return &ContentCache{
		resolver: resolver,
		ttl:      ttl,
		entries:  make(map[string]*cacheEntry),
	}
}

// ListPosts serves the post listing for the requested visibility.
func (c *ContentCache) ListPosts(includeDrafts bool) []content.Post {
	key := listKey(keyPostsPrefix, includeDrafts)
	seed := func() (any, bool) {
		if includeDrafts {
			return nil, false
		}
		return content.CatalogPosts(), true
	}
	fetch := func() (any, error) {
		return c.resolver.ListPosts(includeDrafts), nil
	}
	value, _ := c.resolve(key, seed, fetch)
	return value.([]content.Post)
}

// GetPostBySlug serves one post, cached per slug and visibility.
func (c *ContentCache) GetPostBySlug(slug string, includeDrafts bool) (content.Post, error) {
	key := slugKey(keyPostsPrefix, slug, includeDrafts)
	seed := func() (any, bool) {
		if includeDrafts {
			return nil, false
		}
		if record, ok := catalog.PostBySlug(slug); ok {
			return content.FromCatalogPost(record), true
		}
		return nil, false
	}
	fetch := func() (any, error) {
		return c.resolver.GetPostBySlug(slug, includeDrafts)
	}
	value, err := c.resolve(key, seed, fetch)
	if err != nil {
		return content.Post{}, err
	}
	return value.(content.Post), nil
}

// ListJobs serves the job listing for the requested visibility.
func (c *ContentCache) ListJobs(includeDrafts bool) []content.Job {
	key := listKey(keyJobsPrefix, includeDrafts)
	seed := func() (any, bool) {
		if includeDrafts {
			return nil, false
		}
		return content.CatalogJobs(), true
	}
	fetch := func() (any, error) {
		return c.resolver.ListJobs(includeDrafts), nil
	}
	value, _ := c.resolve(key, seed, fetch)
	return value.([]content.Job)
}

// GetJobBySlug serves one job posting, cached per slug and visibility.
func (c *ContentCache) GetJobBySlug(slug string, includeDrafts bool) (content.Job, error) {
	key := slugKey(keyJobsPrefix, slug, includeDrafts)
	seed := func() (any, bool) {
		if includeDrafts {
			return nil, false
		}
		if record, ok := catalog.JobBySlug(slug); ok {
			return content.FromCatalogJob(record), true
		}
		return nil, false
	}
	fetch := func() (any, error) {
		return c.resolver.GetJobBySlug(slug, includeDrafts)
	}
	value, err := c.resolve(key, seed, fetch)
	if err != nil {
		return content.Job{}, err
	}
	return value.(content.Job), nil
}

// InvalidatePosts drops every post entry, both visibility variants and all
// slug entries. Called after a successful post write.
func (c *ContentCache) InvalidatePosts() {
	c.invalidate(keyPostsPrefix)
}

// InvalidateJobs drops every job entry.
func (c *ContentCache) InvalidateJobs() {
	c.invalidate(keyJobsPrefix)
}

// resolve is the shared read path. Fresh entries are returned as is. Stale
// entries and available seeds are returned immediately while one background
// refresh per key runs. Keys with neither block on a single shared fetch;
// concurrent callers for the same key are coalesced into one resolver call.
func (c *ContentCache) resolve(key string, seed func() (any, bool), fetch func() (any, error)) (any, error) {
	c.mu.RLock()
	entry := c.entries[key]
	c.mu.RUnlock()

	if entry != nil {
		if time.Since(entry.fetchedAt) < c.ttl {
			return entry.value, entry.err
		}
		c.refresh(key, fetch)
		return entry.value, entry.err
	}

	if value, ok := seed(); ok {
		c.storeStale(key, value)
		c.refresh(key, fetch)
		return value, nil
	}

	value, err, _ := c.group.Do(key, func() (any, error) {
		v, err := fetch()
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				c.storeNotFound(key)
			}
			return nil, err
		}
		c.store(key, v)
		return v, nil
	})
	if err != nil {
		return nil, err
	}
	return value, nil
}

// refresh runs fetch at most once per in-flight key and applies the result
// when it lands. Store errors leave the previous entry in place; a not-found
// is authoritative and recorded as a negative entry, so a catalog seed
// cannot outlive a slug the resolver no longer serves. A key that turned
// fresh while the refresh was queued is left alone.
func (c *ContentCache) refresh(key string, fetch func() (any, error)) {
	c.group.DoChan(key, func() (any, error) {
		c.mu.RLock()
		entry := c.entries[key]
		c.mu.RUnlock()
		if entry != nil && time.Since(entry.fetchedAt) < c.ttl {
			return entry.value, entry.err
		}
		v, err := fetch()
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				c.storeNotFound(key)
				return nil, err
			}
			logger.Warnw("cache_refresh_failed", "key", key, "error", err)
			return nil, err
		}
		c.store(key, v)
		return v, nil
	})
}

func (c *ContentCache) store(key string, value any) {
	c.mu.Lock()
	c.entries[key] = &cacheEntry{value: value, fetchedAt: time.Now()}
	c.mu.Unlock()
}

// storeStale records a value with a zero fetch time so the next read after
// the current one still triggers a refresh.
func (c *ContentCache) storeStale(key string, value any) {
	c.mu.Lock()
	if _, exists := c.entries[key]; !exists {
		c.entries[key] = &cacheEntry{value: value}
	}
	c.mu.Unlock()
}

// storeNotFound records a negative entry: the resolver answered not-found
// and that answer is cached like any other until the next write or expiry.
func (c *ContentCache) storeNotFound(key string) {
	c.mu.Lock()
	c.entries[key] = &cacheEntry{err: ErrNotFound, fetchedAt: time.Now()}
	c.mu.Unlock()
}

func (c *ContentCache) invalidate(prefix string) {
	c.mu.Lock()
	for key := range c.entries {
		if len(key) >= len(prefix) && key[:len(prefix)] == prefix {
			delete(c.entries, key)
		}
	}
	c.mu.Unlock()
}

func listKey(prefix string, includeDrafts bool) string {
	if includeDrafts {
		return prefix + "|list|all"
	}
	return prefix + "|list|public"
}

func slugKey(prefix, slug string, includeDrafts bool) string {
	if includeDrafts {
		return prefix + "|slug|all|" + slug
	}
	return prefix + "|slug|public|" + slug
}
