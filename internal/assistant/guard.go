// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package assistant

import (
	"context"
	"sync"
)

// Guard allows at most one outstanding request per conversation. Acquire
// reports ok=false when the conversation is busy; release must be called
// once the request finishes.
type Guard interface {
	Acquire(ctx context.Context, conversationID string) (release func(), ok bool, err error)
}

// MemoryGuard is a process-local Guard.
type MemoryGuard struct {
	mu     sync.Mutex
	active map[string]struct{}
}

// NewMemoryGuard creates an empty in-memory guard.
func NewMemoryGuard() *MemoryGuard {
	return &MemoryGuard{active: make(map[string]struct{})}
}

func (g *MemoryGuard) Acquire(_ context.Context, conversationID string) (func(), bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, busy := g.active[conversationID]; busy {
		return nil, false, nil
	}
	g.active[conversationID] = struct{}{}

	var once sync.Once
	return func() {
		once.Do(func() {
			g.mu.Lock()
			delete(g.active, conversationID)
			g.mu.Unlock()
		})
	}, true, nil
}
