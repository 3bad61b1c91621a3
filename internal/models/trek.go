// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"html/template"
	"strings"
)

// Difficulty is the grade of a trek. The CMS and older copy write compound
// grades with spaced hyphens ("Easy - Moderate"); the canonical form has
// none.
type Difficulty string

const (
	DifficultyEasy              Difficulty = "Easy"
	DifficultyEasyModerate      Difficulty = "Easy-Moderate"
	DifficultyModerate          Difficulty = "Moderate"
	DifficultyModerateDifficult Difficulty = "Moderate-Difficult"
	DifficultyDifficult         Difficulty = "Difficult"
)

// Difficulties lists every grade from easiest to hardest.
var Difficulties = []Difficulty{
	DifficultyEasy,
	DifficultyEasyModerate,
	DifficultyModerate,
	DifficultyModerateDifficult,
	DifficultyDifficult,
}

// CanonicalDifficulty normalizes spacing and case of a grade. Unknown
// grades are returned trimmed but otherwise unchanged.
func CanonicalDifficulty(s string) Difficulty {
	parts := strings.Split(s, "-")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	joined := strings.Join(parts, "-")
	for _, d := range Difficulties {
		if strings.EqualFold(joined, string(d)) {
			return d
		}
	}
	return Difficulty(strings.TrimSpace(s))
}

// Label renders the grade the way the site displays it ("Easy - Moderate").
func (d Difficulty) Label() string {
	return strings.ReplaceAll(string(d), "-", " - ")
}

// TrekSummary is the one shape the catalog works on, whichever content
// type it was built from.
type TrekSummary struct {
	Slug             string     `json:"slug"`
	Name             string     `json:"name"`
	Image            string     `json:"image"`
	Difficulty       Difficulty `json:"difficulty"`
	Duration         string     `json:"duration"`
	Altitude         string     `json:"altitude"`
	Price            int        `json:"price"` // whole rupees
	Rating           float64    `json:"rating"`
	ReviewCount      int        `json:"review_count"`
	Region           string     `json:"region"`
	BestMonths       []string   `json:"best_months"`
	ShortDescription string     `json:"short_description"`
}

// HasMonth reports whether month is one of the trek's best months.
func (t TrekSummary) HasMonth(month string) bool {
	for _, m := range t.BestMonths {
		if m == month {
			return true
		}
	}
	return false
}

// TrekDetail is the full record behind a trek page.
type TrekDetail struct {
	TrekSummary

	Tagline       string `json:"tagline,omitempty"`
	OriginalPrice int    `json:"original_price,omitempty"`
	State         string `json:"state,omitempty"`
	Distance      string `json:"trek_distance,omitempty"`
	BaseCamp      string `json:"base_camp,omitempty"`
	GroupSize     string `json:"group_size,omitempty"`
	PickupPoint   string `json:"pickup_point,omitempty"`

	Overview     string        `json:"overview,omitempty"`
	OverviewHTML template.HTML `json:"-"`

	Gallery         []string                  `json:"gallery"`
	Highlights      []string                  `json:"highlights"`
	Itinerary       []ItineraryDay            `json:"itinerary"`
	Inclusions      []string                  `json:"inclusions"`
	Exclusions      []string                  `json:"exclusions"`
	ThingsToCarry   []string                  `json:"things_to_carry"`
	Weather         map[string]MonthlyWeather `json:"weather"`
	UpcomingBatches []Batch                   `json:"upcoming_batches"`
	Reviews         []Review                  `json:"reviews"`
	FAQs            []FAQ                     `json:"faqs"`
	TrekLeader      *TrekLeader               `json:"trek_leader,omitempty"`

	FromCMS bool `json:"-"`
}

// Discount returns how many rupees the current price is below the
// original, or 0.
func (t *TrekDetail) Discount() int {
	if t.OriginalPrice > t.Price {
		return t.OriginalPrice - t.Price
	}
	return 0
}

// WeatherMonths returns the weather table in calendar order, limited to
// months that have an entry.
func (t *TrekDetail) WeatherMonths() []MonthWeather {
	var out []MonthWeather
	for _, m := range Months {
		if w, ok := t.Weather[strings.ToLower(m)]; ok {
			out = append(out, MonthWeather{Month: m, MonthlyWeather: w})
		}
	}
	return out
}

// ItineraryDay is one day of a trek itinerary.
type ItineraryDay struct {
	Day         int      `json:"day"`
	Title       string   `json:"title"`
	Altitude    string   `json:"altitude"`
	Distance    string   `json:"distance"`
	Time        string   `json:"time"`
	Description string   `json:"description"`
	Meals       []string `json:"meals"`
	Stay        string   `json:"stay"`
}

// MonthlyWeather is the typical weather for one month on the trail.
type MonthlyWeather struct {
	High      string `json:"high"`
	Low       string `json:"low"`
	Condition string `json:"condition"`
}

// MonthWeather pairs a month name with its weather for ordered display.
type MonthWeather struct {
	Month string
	MonthlyWeather
}

// Batch is a scheduled departure.
type Batch struct {
	Date  string `json:"date"`
	Slots int    `json:"slots"`
	Price int    `json:"price"`
}

// Review is a trekker review shown on a trek page.
type Review struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Location string  `json:"location"`
	Date     string  `json:"date"`
	Rating   float64 `json:"rating"`
	Title    string  `json:"title"`
	Review   string  `json:"review"`
	Avatar   string  `json:"avatar"`
}

// TrekLeader describes the guide assigned to a trek.
type TrekLeader struct {
	Name       string `json:"name"`
	Experience string `json:"experience"`
	TreksLed   int    `json:"treks_led"`
	Image      string `json:"image"`
	Bio        string `json:"bio"`
}

// Months are the calendar month names used by best-month lists.
var Months = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}
