// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cache

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	lockKeyPrefix = "hatrek:assistant:conversation:"

	// DefaultLockTTL outlives the default assistant timeout so a crashed
	// holder cannot block a conversation forever.
	DefaultLockTTL = 90 * time.Second
)

// releaseScript deletes the lock only if it still holds our token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// ConversationLock allows one outstanding assistant request per
// conversation across every server instance.
type ConversationLock struct {
	client *redis.Client
	ttl    time.Duration
}

// NewConversationLock creates a lock. A zero ttl uses DefaultLockTTL.
func NewConversationLock(client *redis.Client, ttl time.Duration) *ConversationLock {
	if ttl <= 0 {
		ttl = DefaultLockTTL
	}
	return &ConversationLock{client: client, ttl: ttl}
}

// Acquire takes the lock for a conversation. ok is false when another
// request holds it.
func (l *ConversationLock) Acquire(ctx context.Context, conversationID string) (func(), bool, error) {
	key := lockKeyPrefix + conversationID
	token := uuid.NewString()

	ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
	if err != nil {
		return nil, false, fmt.Errorf("conversation lock: %w", err)
	}
	if !ok {
		return nil, false, nil
	}

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := releaseScript.Run(ctx, l.client, []string{key}, token).Err(); err != nil {
			slog.Warn("conversation lock release failed", "conversation_id", conversationID, "error", err)
		}
	}, true, nil
}
