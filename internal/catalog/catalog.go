// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package catalog filters and orders trek summaries for the listing page.
// Everything here is pure: no I/O, no shared state, and no panics on
// malformed upstream data.
package catalog

import (
	"cmp"
	"slices"
	"strings"

	"hatrek/internal/models"
)

// SortKey selects the listing order.
type SortKey string

const (
	SortPopular   SortKey = "popular"
	SortRating    SortKey = "rating"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortDuration  SortKey = "duration"
)

// SortKeys lists every sort key in menu order.
var SortKeys = []SortKey{SortPopular, SortRating, SortPriceLow, SortPriceHigh, SortDuration}

// ParseSortKey maps a query value to a SortKey. Anything unknown sorts by
// popularity.
func ParseSortKey(s string) SortKey {
	k := SortKey(strings.ToLower(strings.TrimSpace(s)))
	if slices.Contains(SortKeys, k) {
		return k
	}
	return SortPopular
}

// Label is the human-readable menu text.
func (k SortKey) Label() string {
	switch k {
	case SortRating:
		return "Highest Rated"
	case SortPriceLow:
		return "Price: Low to High"
	case SortPriceHigh:
		return "Price: High to Low"
	case SortDuration:
		return "Duration"
	}
	return "Most Popular"
}

// Regions are the regions offered as filter options.
var Regions = []string{"Uttarakhand", "Himachal Pradesh", "Kashmir", "Ladakh", "Sikkim"}

// FilterAndSort returns the treks matching every set criterion, ordered by
// key. Ties keep their input order. The input slice is never modified.
func FilterAndSort(treks []models.TrekSummary, c Criteria, key SortKey) []models.TrekSummary {
	out := make([]models.TrekSummary, 0, len(treks))
	for _, t := range treks {
		if c.Match(t) {
			out = append(out, t)
		}
	}

	switch ParseSortKey(string(key)) {
	case SortRating:
		slices.SortStableFunc(out, func(a, b models.TrekSummary) int {
			return cmp.Compare(b.Rating, a.Rating)
		})
	case SortPriceLow:
		slices.SortStableFunc(out, func(a, b models.TrekSummary) int {
			return cmp.Compare(a.Price, b.Price)
		})
	case SortPriceHigh:
		slices.SortStableFunc(out, func(a, b models.TrekSummary) int {
			return cmp.Compare(b.Price, a.Price)
		})
	case SortDuration:
		slices.SortStableFunc(out, compareDuration)
	default:
		slices.SortStableFunc(out, func(a, b models.TrekSummary) int {
			return cmp.Compare(b.ReviewCount, a.ReviewCount)
		})
	}
	return out
}

// compareDuration orders by leading day count; unparseable durations go
// last.
func compareDuration(a, b models.TrekSummary) int {
	da, okA := ParseDays(a.Duration)
	db, okB := ParseDays(b.Duration)
	switch {
	case okA && okB:
		return cmp.Compare(da, db)
	case okA:
		return -1
	case okB:
		return 1
	}
	return 0
}

// Match reports whether a trek satisfies every set criterion.
func (c Criteria) Match(t models.TrekSummary) bool {
	if q := strings.ToLower(strings.TrimSpace(c.Search)); q != "" {
		if !strings.Contains(strings.ToLower(t.Name), q) &&
			!strings.Contains(strings.ToLower(t.Region), q) &&
			!strings.Contains(strings.ToLower(t.ShortDescription), q) {
			return false
		}
	}
	if c.Difficulty != "" &&
		models.CanonicalDifficulty(c.Difficulty) != models.CanonicalDifficulty(string(t.Difficulty)) {
		return false
	}
	if c.Region != "" && t.Region != c.Region {
		return false
	}
	if c.Duration != "" {
		if b, ok := BucketByLabel(c.Duration); ok {
			days, ok := ParseDays(t.Duration)
			if !ok || !b.Contains(days) {
				return false
			}
		}
	}
	if c.Month != "" && !t.HasMonth(c.Month) {
		return false
	}
	return true
}
