// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"
)

// window holds the request times of one client, oldest first.
type window struct {
	mu    sync.Mutex
	times []time.Time
}

// RateLimiter is a per-client sliding-window limiter.
type RateLimiter struct {
	mu      sync.Mutex
	clients map[string]*window
	limit   int
	period  time.Duration
	now     func() time.Time
	stopCh  chan struct{}
	stop    sync.Once
}

// NewRateLimiter allows limit requests per period per client. It runs a
// cleanup goroutine until Stop is called.
func NewRateLimiter(limit int, period time.Duration) *RateLimiter {
	rl := &RateLimiter{
		clients: make(map[string]*window),
		limit:   limit,
		period:  period,
		now:     time.Now,
		stopCh:  make(chan struct{}),
	}

	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				rl.cleanup()
			case <-rl.stopCh:
				return
			}
		}
	}()
	return rl
}

// Stop ends the cleanup goroutine. It is safe to call more than once.
func (rl *RateLimiter) Stop() {
	rl.stop.Do(func() { close(rl.stopCh) })
}

// allow records a request for key. When the key is over the limit it
// returns false and how long until the oldest request leaves the window.
func (rl *RateLimiter) allow(key string) (bool, time.Duration) {
	rl.mu.Lock()
	w, ok := rl.clients[key]
	if !ok {
		w = &window{}
		rl.clients[key] = w
	}
	rl.mu.Unlock()

	now := rl.now()
	cutoff := now.Add(-rl.period)

	w.mu.Lock()
	defer w.mu.Unlock()

	i := 0
	for i < len(w.times) && !w.times[i].After(cutoff) {
		i++
	}
	w.times = w.times[i:]

	if len(w.times) >= rl.limit {
		return false, w.times[0].Sub(cutoff)
	}
	w.times = append(w.times, now)
	return true, 0
}

// cleanup drops clients with no request inside the window.
func (rl *RateLimiter) cleanup() {
	cutoff := rl.now().Add(-rl.period)

	rl.mu.Lock()
	defer rl.mu.Unlock()
	for key, w := range rl.clients {
		w.mu.Lock()
		idle := len(w.times) == 0 || !w.times[len(w.times)-1].After(cutoff)
		w.mu.Unlock()
		if idle {
			delete(rl.clients, key)
		}
	}
}

// Middleware rejects over-limit clients with 429 and a Retry-After header.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ok, wait := rl.allow(ClientIP(r))
		if !ok {
			secs := int(wait.Round(time.Second) / time.Second)
			if secs < 1 {
				secs = 1
			}
			w.Header().Set("Retry-After", strconv.Itoa(secs))
			http.Error(w, "Too Many Requests", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ClientIP returns the connection address without its port. Forwarding
// headers are ignored here; behind a trusted proxy the router mounts
// chi's RealIP, which rewrites RemoteAddr before this runs.
func ClientIP(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
