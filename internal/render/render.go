// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package render provides HTML template rendering for the public site.
// Every page template is paired with the shared base layout, which draws
// the header navigation and footer from the resolved models.Layout.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"hatrek/internal/catalog"
	"hatrek/internal/models"
)

//go:embed templates/*.html
var templateFS embed.FS

// PageData holds everything passed to a page template.
type PageData struct {
	Title       string        // Page title for <title> tag
	Description string        // Meta description
	Layout      models.Layout // Header and footer chrome
	Data        any           // Page-specific view
}

// Renderer holds the parsed page templates.
type Renderer struct {
	templates map[string]*template.Template
}

var funcMap = template.FuncMap{
	"rupees":          Rupees,
	"stars":           Stars,
	"facetURL":        catalog.FacetURL,
	"join":            strings.Join,
	"year":            func() int { return time.Now().Year() },
	"difficulties":    func() []models.Difficulty { return models.Difficulties },
	"regions":         func() []string { return catalog.Regions },
	"durationBuckets": func() []catalog.Bucket { return catalog.DurationBuckets },
	"months":          func() []string { return models.Months },
	"sortKeys":        func() []catalog.SortKey { return catalog.SortKeys },
	// difficultyClass picks the badge color for a grade.
	"difficultyClass": func(d models.Difficulty) string {
		switch d {
		case models.DifficultyEasy:
			return "badge-easy"
		case models.DifficultyEasyModerate, models.DifficultyModerate:
			return "badge-moderate"
		case models.DifficultyModerateDifficult, models.DifficultyDifficult:
			return "badge-difficult"
		}
		return "badge"
	},
}

// New parses every page template from the embedded filesystem.
func New() (*Renderer, error) {
	entries, err := templateFS.ReadDir("templates")
	if err != nil {
		return nil, fmt.Errorf("read embedded templates: %w", err)
	}

	r := &Renderer{templates: make(map[string]*template.Template)}
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || name == "base.html" {
			continue
		}
		tmpl, err := template.New("base.html").Funcs(funcMap).ParseFS(
			templateFS, "templates/base.html", "templates/"+name,
		)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		r.templates[strings.TrimSuffix(name, ".html")] = tmpl
	}
	return r, nil
}

// Render executes a page into a buffer so a failed template never sends a
// half-written page.
func (rn *Renderer) Render(name string, data *PageData) ([]byte, error) {
	tmpl, ok := rn.templates[name]
	if !ok {
		return nil, fmt.Errorf("template %q not found", name)
	}
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "base.html", data); err != nil {
		return nil, fmt.Errorf("execute template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

// Page renders a page and writes it with the given status.
func (rn *Renderer) Page(w http.ResponseWriter, status int, name string, data *PageData) {
	page, err := rn.Render(name, data)
	if err != nil {
		slog.Error("render page failed", "template", name, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	Write(w, status, page)
}

// Write sends an already rendered page.
func Write(w http.ResponseWriter, status int, page []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(page)
}

// Rupees formats whole rupees with Indian digit grouping ("₹1,25,000").
func Rupees(n int) string {
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	s := strconv.Itoa(n)
	if len(s) <= 3 {
		return sign + "₹" + s
	}
	head, tail := s[:len(s)-3], s[len(s)-3:]
	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	groups = append([]string{head}, groups...)
	return sign + "₹" + strings.Join(groups, ",") + "," + tail
}

// Stars renders a 0-5 rating as filled and empty stars.
func Stars(rating float64) string {
	full := int(math.Round(rating))
	full = max(0, min(5, full))
	return strings.Repeat("★", full) + strings.Repeat("☆", 5-full)
}

// TreksView is the catalog page model.
type TreksView struct {
	Treks    []models.TrekSummary
	Total    int
	Criteria catalog.Criteria
	Sort     catalog.SortKey
}

// SortURL links the current filters under another sort key.
func (v TreksView) SortURL(key catalog.SortKey) string {
	return listingURL(v.Criteria.Query(key).Encode())
}

// ClearURL links the listing with the search kept and every facet cleared.
func (v TreksView) ClearURL() string {
	return listingURL(catalog.Criteria{Search: v.Criteria.Search}.Query(v.Sort).Encode())
}

func listingURL(query string) string {
	if query == "" {
		return "/treks"
	}
	return "/treks?" + query
}

// NotFoundView is the model of the not-found page.
type NotFoundView struct {
	Path string
}
