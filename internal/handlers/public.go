// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers implements the HTTP handlers of the site: server
// rendered pages and the JSON API.
package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hatrek/internal/catalog"
	"hatrek/internal/content"
	"hatrek/internal/render"
)

// PageStore caches rendered pages. *cache.PageCache satisfies it.
type PageStore interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, page []byte)
}

// Public groups handlers for the public-facing pages. Trek pages whose
// content came from the CMS are kept in the page cache; pages built from
// the compiled-in defaults are not, so they are retried on the next visit.
type Public struct {
	content  *content.Service
	renderer *render.Renderer
	pages    PageStore
}

// NewPublic creates the public handler group. pages may be nil when no
// page cache is configured.
func NewPublic(svc *content.Service, renderer *render.Renderer, pages PageStore) *Public {
	return &Public{content: svc, renderer: renderer, pages: pages}
}

// Home renders the landing page.
func (p *Public) Home(w http.ResponseWriter, r *http.Request) {
	page, err := p.content.Home(r.Context())
	if err != nil {
		slog.Warn("home page aborted", "error", err)
		http.Error(w, "Service Unavailable", http.StatusServiceUnavailable)
		return
	}

	p.renderer.Page(w, http.StatusOK, "home", &render.PageData{
		Description: page.Hero.BadgeText,
		Layout:      page.Layout,
		Data:        page,
	})
}

// Treks renders the catalog listing. Query parameters drive the filters
// and sort order.
func (p *Public) Treks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	criteria, key := catalog.CriteriaFromQuery(r.URL.Query())
	criteria.Search = clipSearch(criteria.Search)

	all := p.content.Catalog(ctx)
	p.renderer.Page(w, http.StatusOK, "treks", &render.PageData{
		Title:  "All Treks",
		Layout: p.content.Layout(ctx),
		Data: render.TreksView{
			Treks:    catalog.FilterAndSort(all, criteria, key),
			Total:    len(all),
			Criteria: criteria,
			Sort:     key,
		},
	})
}

// Trek renders a trek detail page, or the not-found page for an unknown
// slug.
func (p *Public) Trek(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	trekSlug := chi.URLParam(r, "slug")
	key := trekPageKey(trekSlug)

	if p.pages != nil {
		if cached, ok := p.pages.Get(ctx, key); ok {
			render.Write(w, http.StatusOK, cached)
			return
		}
	}

	trek := p.content.Trek(ctx, trekSlug)
	if trek == nil {
		p.NotFound(w, r)
		return
	}

	page, err := p.renderer.Render("trek", &render.PageData{
		Title:       trek.Name,
		Description: trek.ShortDescription,
		Layout:      p.content.Layout(ctx),
		Data:        trek,
	})
	if err != nil {
		slog.Error("render trek page failed", "slug", trekSlug, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if trek.FromCMS && p.pages != nil {
		p.pages.Set(ctx, key, page)
	}
	render.Write(w, http.StatusOK, page)
}

// NotFound renders the not-found page with a 404 status.
func (p *Public) NotFound(w http.ResponseWriter, r *http.Request) {
	p.renderer.Page(w, http.StatusNotFound, "not_found", &render.PageData{
		Title:  "Not Found",
		Layout: p.content.Layout(r.Context()),
		Data:   render.NotFoundView{Path: r.URL.Path},
	})
}

func trekPageKey(trekSlug string) string {
	return "trek:" + trekSlug
}
