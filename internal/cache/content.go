// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// content.go provides a Valkey-backed cache for page content documents.
// The public content endpoints serve the cached JSON document so most
// requests skip the database entirely; a successful admin save
// invalidates the page's entry.
package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// contentKeyPrefix is the Valkey key prefix for cached documents.
	contentKeyPrefix = "content:"

	// DefaultContentTTL is how long a content document stays cached.
	DefaultContentTTL = 5 * time.Minute
)

// ContentCache manages page content document caching in Valkey.
type ContentCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewContentCache creates a new content cache backed by the given Valkey client.
func NewContentCache(client *redis.Client, ttl time.Duration) *ContentCache {
	if ttl == 0 {
		ttl = DefaultContentTTL
	}
	return &ContentCache{client: client, ttl: ttl}
}

// Get retrieves the cached JSON document for a page. Returns false on miss.
func (cc *ContentCache) Get(ctx context.Context, page string) ([]byte, bool) {
	val, err := cc.client.Get(ctx, contentKeyPrefix+page).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("content cache get error", "page", page, "error", err)
		return nil, false
	}
	slog.Debug("content cache hit", "page", page)
	return val, true
}

// Set stores the JSON document for a page with the configured TTL.
func (cc *ContentCache) Set(ctx context.Context, page string, doc []byte) {
	if err := cc.client.Set(ctx, contentKeyPrefix+page, doc, cc.ttl).Err(); err != nil {
		slog.Warn("content cache set error", "page", page, "error", err)
	}
}

// Invalidate removes a single page's cached document.
func (cc *ContentCache) Invalidate(ctx context.Context, page string) {
	if err := cc.client.Del(ctx, contentKeyPrefix+page).Err(); err != nil {
		slog.Warn("content cache invalidate error", "page", page, "error", err)
	}
	slog.Debug("content cache invalidated", "page", page)
}

// InvalidateAll removes all cached documents by scanning for the prefix.
func (cc *ContentCache) InvalidateAll(ctx context.Context) {
	var cursor uint64
	var deleted int
	for {
		keys, nextCursor, err := cc.client.Scan(ctx, cursor, contentKeyPrefix+"*", 100).Result()
		if err != nil {
			slog.Warn("content cache scan error", "error", err)
			return
		}
		if len(keys) > 0 {
			if err := cc.client.Del(ctx, keys...).Err(); err != nil {
				slog.Warn("content cache bulk delete error", "error", err)
			}
			deleted += len(keys)
		}
		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}
	if deleted > 0 {
		slog.Info("content cache fully cleared", "deleted", deleted)
	}
}
