// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cache

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"confsite/internal/routes"
)

const (
	// pageKeyPrefix is the Valkey key prefix for cached pages.
	pageKeyPrefix = "confsite:page:"

	// DefaultPageTTL is how long a rendered page stays cached.
	DefaultPageTTL = 5 * time.Minute
)

// PageCache keeps rendered page HTML in Valkey. A nil *PageCache is a
// valid, always-missing cache, so the site runs unchanged without Valkey.
type PageCache struct {
	client  *redis.Client
	ttl     time.Duration
	version string
	routes  string
}

// NewPageCache creates a page cache backed by the given Valkey client.
// version is folded into every key; a new build never reads pages
// rendered by an older one. The fingerprint of table is folded in too, so
// switching the extended routes on or off starts from an empty cache.
// table may be nil when only InvalidateAll is needed.
func NewPageCache(client *redis.Client, ttl time.Duration, version string, table *routes.Table) *PageCache {
	if ttl == 0 {
		ttl = DefaultPageTTL
	}
	pc := &PageCache{client: client, ttl: ttl, version: version}
	if table != nil {
		pc.routes = table.Fingerprint()
	}
	return pc
}

// Variant distinguishes renderings of the same page.
type Variant struct {
	Partial  bool // content fragment only
	MenuOpen bool
}

func (v Variant) String() string {
	s := "full"
	if v.Partial {
		s = "partial"
	}
	if v.MenuOpen {
		s += "+menu"
	}
	return s
}

// Key returns the cache key for one rendering of a page.
func (pc *PageCache) Key(id routes.PageID, v Variant) string {
	return pageKeyPrefix + pc.version + ":" + pc.routes + ":" + string(id) + ":" + v.String()
}

// Get retrieves cached HTML. Errors are logged and reported as a miss.
func (pc *PageCache) Get(ctx context.Context, key string) ([]byte, bool) {
	if pc == nil {
		return nil, false
	}
	val, err := pc.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		slog.Warn("page cache get error", "key", key, "error", err)
		return nil, false
	}
	slog.Debug("page cache hit", "key", key)
	return val, true
}

// Set stores rendered HTML with the configured TTL.
func (pc *PageCache) Set(ctx context.Context, key string, html []byte) {
	if pc == nil {
		return
	}
	if err := pc.client.Set(ctx, key, html, pc.ttl).Err(); err != nil {
		slog.Warn("page cache set error", "key", key, "error", err)
	}
}

// InvalidateAll removes every cached page of every version and returns
// how many keys were deleted.
func (pc *PageCache) InvalidateAll(ctx context.Context) (int, error) {
	if pc == nil {
		return 0, nil
	}
	var cursor uint64
	var deleted int
	for {
		keys, next, err := pc.client.Scan(ctx, cursor, pageKeyPrefix+"*", 100).Result()
		if err != nil {
			return deleted, err
		}
		if len(keys) > 0 {
			if err := pc.client.Del(ctx, keys...).Err(); err != nil {
				return deleted, err
			}
			deleted += len(keys)
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}
	if deleted > 0 {
		slog.Info("page cache cleared", "deleted", deleted)
	}
	return deleted, nil
}
