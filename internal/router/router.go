// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up all HTTP routes and middleware chains for the
// site. Pages and the JSON API share the global middleware; the assistant
// endpoint is additionally rate limited per client.
package router

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"hatrek/internal/handlers"
	"hatrek/internal/middleware"
)

// New creates the configured Chi router. limiter may be nil to leave the
// assistant endpoint unlimited. trustProxy makes the client address come
// from the forwarding headers set by a reverse proxy in front of the site.
func New(public *handlers.Public, api *handlers.API, limiter *middleware.RateLimiter, trustProxy bool) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	if trustProxy {
		r.Use(chimw.RealIP)
	}
	r.Use(chimw.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)

	r.Get("/health", healthHandler)

	r.Get("/", public.Home)
	r.Get("/treks", public.Treks)
	r.Get("/treks/{slug}", public.Trek)

	r.Route("/api", func(r chi.Router) {
		r.Get("/treks", api.Treks)
		r.Get("/treks/{slug}", api.Trek)
		r.Get("/assistant/greeting", api.Greeting)
		r.Group(func(r chi.Router) {
			if limiter != nil {
				r.Use(limiter.Middleware)
			}
			r.Post("/assistant", api.Ask)
		})
		r.NotFound(api.NotFound)
	})

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		if strings.HasPrefix(req.URL.Path, "/api/") {
			api.NotFound(w, req)
			return
		}
		public.NotFound(w, req)
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
