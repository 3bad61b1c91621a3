// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package resolve implements fetch-with-fallback content resolution. Every
// resolver, whatever it fetches, goes through Run: the caller's fallback is
// the floor, and remote data replaces it wholesale only when the fetch
// reports a usable result.
package resolve

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// DefaultTimeout bounds a single resolution so Loading cannot stay true
// forever when the upstream hangs.
const DefaultTimeout = 20 * time.Second

// Fetcher retrieves remote data. The bool reports whether the result is
// usable; false keeps the fallback. A nil Fetcher means there is nothing to
// fetch and resolution settles on the fallback immediately.
type Fetcher[T any] func(ctx context.Context) (T, bool)

// Result is the data/loading/error tri-state seen by consumers.
type Result[T any] struct {
	Data    T
	Loading bool
	Err     error
	FromCMS bool // Data came from the remote source rather than the fallback
}

// Run resolves synchronously. It never panics and never returns fallback
// data merged with remote data.
func Run[T any](ctx context.Context, fetch Fetcher[T], fallback T) (res Result[T]) {
	res = Result[T]{Data: fallback}
	if fetch == nil {
		return res
	}

	defer func() {
		if r := recover(); r != nil {
			slog.Error("content fetch panicked", "panic", r)
			res = Result[T]{Data: fallback, Err: fmt.Errorf("resolve: fetch panicked: %v", r)}
		}
	}()

	data, ok := fetch(ctx)
	if err := ctx.Err(); err != nil {
		return Result[T]{Data: fallback, Err: fmt.Errorf("resolve: %w", err)}
	}
	if ok {
		res.Data = data
		res.FromCMS = true
	}
	return res
}

type options struct {
	timeout time.Duration
}

// Option configures a Hook.
type Option func(*options)

// WithTimeout overrides DefaultTimeout for a hook.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.timeout = d
		}
	}
}
