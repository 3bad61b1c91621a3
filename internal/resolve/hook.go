// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package resolve

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"
)

// Hook is the asynchronous lifecycle of one consumer of a resolver. Each
// Start or Reset begins a new generation; results from older generations,
// or arriving after Close, are dropped.
type Hook[T any] struct {
	mu       sync.Mutex
	fallback T
	fetch    Fetcher[T]
	timeout  time.Duration

	state  Result[T]
	gen    uint64
	closed bool
	cancel context.CancelFunc
	done   chan struct{}

	nextSub    int
	subs       []subscriber[T]
	queue      []event[T]
	delivering bool
}

type subscriber[T any] struct {
	id int
	fn func(Result[T])
}

// event is a state change waiting to be delivered, tagged with the
// generation that produced it.
type event[T any] struct {
	gen   uint64
	state Result[T]
}

// NewHook creates a hook whose initial Data is fallback. Loading starts
// true only when there is something to fetch.
func NewHook[T any](fetch Fetcher[T], fallback T, opts ...Option) *Hook[T] {
	o := options{timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(&o)
	}
	return &Hook[T]{
		fallback: fallback,
		fetch:    fetch,
		timeout:  o.timeout,
		state:    Result[T]{Data: fallback, Loading: fetch != nil},
	}
}

// State returns the current tri-state.
func (h *Hook[T]) State() Result[T] {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state
}

// Start runs the resolution sequence from scratch. Calling Start again
// supersedes any outstanding fetch.
func (h *Hook[T]) Start(ctx context.Context) {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return
	}
	h.gen++
	gen := h.gen
	if h.cancel != nil {
		h.cancel()
		h.cancel = nil
	}

	done := make(chan struct{})
	h.done = done

	if h.fetch == nil {
		h.state = Result[T]{Data: h.fallback}
		close(done)
		h.enqueueLocked(gen)
		h.mu.Unlock()
		h.deliver()
		return
	}

	fctx, cancel := context.WithTimeout(ctx, h.timeout)
	h.cancel = cancel
	h.state = Result[T]{Data: h.fallback, Loading: true}
	fetch, fallback := h.fetch, h.fallback
	h.enqueueLocked(gen)
	h.mu.Unlock()
	h.deliver()

	go func() {
		defer close(done)
		defer cancel()
		h.settle(gen, Run(fctx, fetch, fallback))
	}()
}

// Reset swaps the fetch (because the identifying parameters changed) and
// starts over.
func (h *Hook[T]) Reset(ctx context.Context, fetch Fetcher[T]) {
	h.mu.Lock()
	h.fetch = fetch
	h.mu.Unlock()
	h.Start(ctx)
}

// Wait blocks until the current generation settles and returns its state.
func (h *Hook[T]) Wait() Result[T] {
	h.mu.Lock()
	done := h.done
	h.mu.Unlock()
	if done != nil {
		<-done
	}
	return h.State()
}

// Close detaches the hook. An outstanding fetch is cancelled and its
// result ignored; subscribers are not called again.
func (h *Hook[T]) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	if h.cancel != nil {
		h.cancel()
		h.cancel = nil
	}
	h.subs = nil
	h.queue = nil
}

// Subscribe registers fn to be called on every state change. The returned
// func removes the subscription.
func (h *Hook[T]) Subscribe(fn func(Result[T])) func() {
	h.mu.Lock()
	defer h.mu.Unlock()
	id := h.nextSub
	h.nextSub++
	h.subs = append(h.subs, subscriber[T]{id: id, fn: fn})
	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		h.subs = slices.DeleteFunc(h.subs, func(s subscriber[T]) bool { return s.id == id })
	}
}

func (h *Hook[T]) settle(gen uint64, res Result[T]) {
	h.mu.Lock()
	if h.closed || gen != h.gen {
		h.mu.Unlock()
		slog.Debug("discarding stale content resolution", "generation", gen)
		return
	}
	h.state = res
	h.enqueueLocked(gen)
	h.mu.Unlock()
	h.deliver()
}

// enqueueLocked queues the current state for subscribers. h.mu must be
// held, so queue order matches the order of state changes.
func (h *Hook[T]) enqueueLocked(gen uint64) {
	if len(h.subs) == 0 {
		return
	}
	h.queue = append(h.queue, event[T]{gen: gen, state: h.state})
}

// deliver drains the queue unless another goroutine already is. Only one
// goroutine calls subscribers at a time; a subscriber that calls Start
// queues its events behind the one being delivered. Events from a
// superseded generation are dropped.
func (h *Hook[T]) deliver() {
	h.mu.Lock()
	if h.delivering {
		h.mu.Unlock()
		return
	}
	h.delivering = true
	for len(h.queue) > 0 {
		ev := h.queue[0]
		h.queue = h.queue[1:]
		if h.closed || ev.gen != h.gen {
			continue
		}
		subs := slices.Clone(h.subs)
		h.mu.Unlock()
		for _, s := range subs {
			s.fn(ev.state)
		}
		h.mu.Lock()
	}
	h.delivering = false
	h.mu.Unlock()
}
