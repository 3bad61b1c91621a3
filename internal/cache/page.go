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
)

const (
	pageKeyPrefix = "hatrek:page:"

	// DefaultPageTTL keeps CMS edits visible within a minute.
	DefaultPageTTL = time.Minute
)

// PageCache stores rendered public pages so repeated requests skip the CMS
// round trips. Only pages built from CMS content are cached; fallback
// renders are retried on the next request.
type PageCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewPageCache creates a page cache. A zero ttl uses DefaultPageTTL.
func NewPageCache(client *redis.Client, ttl time.Duration) *PageCache {
	if ttl <= 0 {
		ttl = DefaultPageTTL
	}
	return &PageCache{client: client, ttl: ttl}
}

// Get returns the cached page for key.
func (pc *PageCache) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := pc.client.Get(ctx, pageKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		slog.Warn("page cache get failed", "key", key, "error", err)
		return nil, false
	}
	return val, true
}

// Set stores a rendered page.
func (pc *PageCache) Set(ctx context.Context, key string, page []byte) {
	if err := pc.client.Set(ctx, pageKeyPrefix+key, page, pc.ttl).Err(); err != nil {
		slog.Warn("page cache set failed", "key", key, "error", err)
	}
}

// Flush removes every cached page and returns how many were deleted.
func (pc *PageCache) Flush(ctx context.Context) (int, error) {
	var (
		cursor  uint64
		deleted int
	)
	for {
		keys, next, err := pc.client.Scan(ctx, cursor, pageKeyPrefix+"*", 100).Result()
		if err != nil {
			return deleted, err
		}
		if len(keys) > 0 {
			n, err := pc.client.Del(ctx, keys...).Result()
			if err != nil {
				return deleted, err
			}
			deleted += int(n)
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}
	slog.Info("page cache flushed", "deleted", deleted)
	return deleted, nil
}
