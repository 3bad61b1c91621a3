// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package catalog

import (
	"net/url"
	"strconv"
	"strings"
	"unicode"

	"hatrek/internal/models"
)

// Criteria are the listing filters. Empty fields are unset; set fields are
// AND-combined.
type Criteria struct {
	Search     string `json:"search,omitempty"`
	Difficulty string `json:"difficulty,omitempty"`
	Region     string `json:"region,omitempty"`
	Duration   string `json:"duration,omitempty"` // a Bucket label
	Month      string `json:"month,omitempty"`
}

// ActiveCount is the number of set facet filters. Free-text search is not
// counted.
func (c Criteria) ActiveCount() int {
	n := 0
	for _, v := range []string{c.Difficulty, c.Region, c.Duration, c.Month} {
		if v != "" {
			n++
		}
	}
	return n
}

// CriteriaFromQuery reads filters and the sort key from URL query
// parameters (search, difficulty, region, duration, month, sort).
func CriteriaFromQuery(q url.Values) (Criteria, SortKey) {
	c := Criteria{
		Search:     strings.TrimSpace(q.Get("search")),
		Difficulty: strings.TrimSpace(q.Get("difficulty")),
		Region:     strings.TrimSpace(q.Get("region")),
		Duration:   strings.TrimSpace(q.Get("duration")),
		Month:      strings.TrimSpace(q.Get("month")),
	}
	return c, ParseSortKey(q.Get("sort"))
}

// Query encodes the criteria and sort key back into URL parameters. Unset
// filters and the default sort are omitted.
func (c Criteria) Query(key SortKey) url.Values {
	q := url.Values{}
	set := func(name, v string) {
		if v != "" {
			q.Set(name, v)
		}
	}
	set("search", c.Search)
	set("difficulty", c.Difficulty)
	set("region", c.Region)
	set("duration", c.Duration)
	set("month", c.Month)
	if k := ParseSortKey(string(key)); k != SortPopular {
		q.Set("sort", string(k))
	}
	return q
}

// Bucket is an inclusive day range. Max 0 means open-ended.
type Bucket struct {
	Label string
	Min   int
	Max   int
}

// DurationBuckets are the duration filter options.
var DurationBuckets = []Bucket{
	{Label: "3-4 Days", Min: 3, Max: 4},
	{Label: "5-6 Days", Min: 5, Max: 6},
	{Label: "7-8 Days", Min: 7, Max: 8},
	{Label: "9+ Days", Min: 9},
}

// Contains reports whether days falls inside the bucket.
func (b Bucket) Contains(days int) bool {
	if days < b.Min {
		return false
	}
	return b.Max == 0 || days <= b.Max
}

// BucketByLabel finds a duration bucket by its label.
func BucketByLabel(label string) (Bucket, bool) {
	for _, b := range DurationBuckets {
		if b.Label == label {
			return b, true
		}
	}
	return Bucket{}, false
}

// ParseDurationBucket finds the bucket a free-text duration ("8 Days")
// belongs to.
func ParseDurationBucket(duration string) (Bucket, bool) {
	days, ok := ParseDays(duration)
	if !ok {
		return Bucket{}, false
	}
	for _, b := range DurationBuckets {
		if b.Contains(days) {
			return b, true
		}
	}
	return Bucket{}, false
}

// ParseDays extracts the leading integer of a duration string, skipping
// leading whitespace and allowing a sign. "6 Days" → 6, "N/A" → false.
func ParseDays(s string) (int, bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

// FacetURL links a home page category facet (a tab ID and facet name such
// as "difficulty" / "Easy - Moderate") to the filtered listing. Facets that
// do not map onto a filter link to the unfiltered listing.
func FacetURL(tab, name string) string {
	var c Criteria
	switch tab {
	case "month":
		c.Month = name
	case "difficulty":
		c.Difficulty = string(models.CanonicalDifficulty(name))
	case "region":
		c.Region = name
	case "duration":
		if b, ok := ParseDurationBucket(name); ok {
			c.Duration = b.Label
		}
	}
	if q := c.Query(SortPopular).Encode(); q != "" {
		return "/treks?" + q
	}
	return "/treks"
}
