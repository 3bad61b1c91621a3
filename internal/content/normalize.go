// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package content

import (
	"math"
	"strconv"
	"strings"

	"hatrek/internal/contentstack"
	"hatrek/internal/markdown"
	"hatrek/internal/models"
	"hatrek/internal/slug"
)

// TrekFromDetail maps a trek_detail entry, the canonical trek shape, to a
// summary.
func TrekFromDetail(e contentstack.Entry) models.TrekSummary {
	name := firstNonEmpty(e.String("name"), e.Title())
	reviews, ok := e.Int("reviews_count")
	if !ok || reviews == 0 {
		reviews, _ = e.Int("reviews")
	}
	rating, _ := e.Float("rating")

	return models.TrekSummary{
		Slug:             firstNonEmpty(e.String("slug"), slug.Generate(name)),
		Name:             name,
		Image:            firstNonEmpty(e.String("hero_image"), e.String("image_url"), e.String("image")),
		Difficulty:       models.CanonicalDifficulty(e.String("difficulty")),
		Duration:         e.String("duration"),
		Altitude:         e.String("altitude"),
		Price:            priceOf(e, "price"),
		Rating:           rating,
		ReviewCount:      reviews,
		Region:           e.String("region"),
		BestMonths:       contentstack.DecodeField(e, "best_months", []string{}),
		ShortDescription: firstNonEmpty(e.String("short_description"), e.String("tagline")),
	}
}

// TrekFromFeatured maps a featured_trek entry to a summary. Featured treks
// carry no slug, a display price ("₹11,850"), and a month range
// ("Dec - Apr") instead of a month list.
func TrekFromFeatured(e contentstack.Entry) models.TrekSummary {
	name := firstNonEmpty(e.String("name"), e.Title())
	reviews, ok := e.Int("reviews")
	if !ok || reviews == 0 {
		reviews, _ = e.Int("reviews_count")
	}
	rating, _ := e.Float("rating")

	months := ExpandMonthRange(e.String("best_time"))
	if len(months) == 0 {
		months = contentstack.DecodeField(e, "best_months", []string{})
	}

	return models.TrekSummary{
		Slug:             firstNonEmpty(e.String("slug"), slug.Generate(name)),
		Name:             name,
		Image:            firstNonEmpty(e.String("image_url"), e.String("hero_image"), e.String("image")),
		Difficulty:       models.CanonicalDifficulty(e.String("difficulty")),
		Duration:         e.String("duration"),
		Altitude:         e.String("altitude"),
		Price:            priceOf(e, "price"),
		Rating:           rating,
		ReviewCount:      reviews,
		Region:           e.String("region"),
		BestMonths:       months,
		ShortDescription: e.String("short_description"),
	}
}

// DetailFromEntry builds a full trek page record. Structured fields that
// are missing or malformed come back empty rather than failing the page.
func DetailFromEntry(e contentstack.Entry) *models.TrekDetail {
	if e == nil {
		return nil
	}

	d := &models.TrekDetail{
		TrekSummary:   TrekFromDetail(e),
		Tagline:       e.String("tagline"),
		OriginalPrice: priceOf(e, "original_price"),
		State:         e.String("state"),
		Distance:      e.String("trek_distance"),
		BaseCamp:      e.String("base_camp"),
		GroupSize:     e.String("group_size"),
		PickupPoint:   e.String("pickup_point"),
		Overview:      e.String("overview"),

		Gallery:         contentstack.DecodeField(e, "gallery", []string{}),
		Highlights:      contentstack.DecodeField(e, "highlights", []string{}),
		Itinerary:       contentstack.DecodeField(e, "itinerary", []models.ItineraryDay{}),
		Inclusions:      contentstack.DecodeField(e, "inclusions", []string{}),
		Exclusions:      contentstack.DecodeField(e, "exclusions", []string{}),
		ThingsToCarry:   contentstack.DecodeField(e, "things_to_carry", []string{}),
		UpcomingBatches: contentstack.DecodeField(e, "upcoming_batches", []models.Batch{}),
		Reviews:         contentstack.DecodeField(e, "reviews", []models.Review{}),
		FAQs:            contentstack.DecodeField(e, "faqs", []models.FAQ{}),
		TrekLeader:      contentstack.DecodeField[*models.TrekLeader](e, "trek_leader", nil),
	}

	weather := contentstack.DecodeField(e, "weather", map[string]models.MonthlyWeather{})
	d.Weather = make(map[string]models.MonthlyWeather, len(weather))
	for month, w := range weather {
		d.Weather[strings.ToLower(month)] = w
	}

	if len(d.Gallery) == 0 && d.Image != "" {
		d.Gallery = []string{d.Image}
	}
	d.OverviewHTML = markdown.Render(d.Overview)
	return d
}

// ParsePrice extracts whole rupees from display text such as "₹11,850" or
// "Rs. 9,850/-".
func ParsePrice(s string) (int, bool) {
	var b strings.Builder
	seenDot := false
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' && b.Len() > 0 && !seenDot:
			seenDot = true
			b.WriteRune(r)
		}
	}
	digits := strings.TrimSuffix(b.String(), ".")
	if digits == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(digits, 64)
	if err != nil {
		return 0, false
	}
	return int(math.Round(f)), true
}

func priceOf(e contentstack.Entry, key string) int {
	if f, ok := e.Float(key); ok {
		return int(math.Round(f))
	}
	p, _ := ParsePrice(e.String(key))
	return p
}

// ExpandMonthRange turns a month range ("Dec - Apr") into full month names
// in order, wrapping across the year end. A comma-separated list
// ("Dec, Jan") or a single month is also accepted. Unrecognized input
// yields nil.
func ExpandMonthRange(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	if strings.Contains(s, ",") {
		var out []string
		for _, part := range strings.Split(s, ",") {
			i, ok := monthIndex(part)
			if !ok {
				return nil
			}
			out = append(out, models.Months[i])
		}
		return out
	}

	s = strings.NewReplacer("–", "-", "—", "-", " to ", "-").Replace(s)
	bounds := strings.Split(s, "-")
	switch len(bounds) {
	case 1:
		i, ok := monthIndex(bounds[0])
		if !ok {
			return nil
		}
		return []string{models.Months[i]}
	case 2:
		start, okStart := monthIndex(bounds[0])
		end, okEnd := monthIndex(bounds[1])
		if !okStart || !okEnd {
			return nil
		}
		var out []string
		for i := start; ; i = (i + 1) % 12 {
			out = append(out, models.Months[i])
			if i == end {
				break
			}
		}
		return out
	}
	return nil
}

// monthIndex matches a full or abbreviated month name.
func monthIndex(s string) (int, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) < 3 {
		return 0, false
	}
	for i, m := range models.Months {
		if strings.HasPrefix(strings.ToLower(m), s) {
			return i, true
		}
	}
	return 0, false
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
