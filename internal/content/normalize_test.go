package content

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"hatrek/internal/contentstack"
	"hatrek/internal/models"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"₹11,850", 11850, true},
		{"11850", 11850, true},
		{"Rs. 9,850/-", 9850, true},
		{"₹ 12,450.60", 12451, true},
		{"18950.", 18950, true},
		{"", 0, false},
		{"Price on request", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParsePrice(tt.in)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ParsePrice(%q) = %d, %v; want %d, %v", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestExpandMonthRange(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"Dec - Apr", []string{"December", "January", "February", "March", "April"}},
		{"Jul - Sep", []string{"July", "August", "September"}},
		{"May–Jun", []string{"May", "June"}},
		{"March to May", []string{"March", "April", "May"}},
		{"Sept - Oct", []string{"September", "October"}},
		{"Jan, Feb", []string{"January", "February"}},
		{"October", []string{"October"}},
		{"Apr - Apr", []string{"April"}},
		{"", nil},
		{"All year", nil},
		{"Ju - Aug", nil},
		{"Jan - Feb - Mar", nil},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, ExpandMonthRange(tt.in)); diff != "" {
				t.Errorf("ExpandMonthRange(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestTrekFromDetail(t *testing.T) {
	e := contentstack.Entry{
		"title":             "Hampta Pass",
		"hero_image":        "https://example.com/hampta.jpg",
		"difficulty":        "moderate",
		"duration":          "5 Days",
		"altitude":          "14,100 ft",
		"price":             float64(12450),
		"rating":            4.8,
		"reviews_count":     float64(1780),
		"region":            "Himachal Pradesh",
		"best_months":       `["June","July"]`,
		"short_description": "Dramatic crossover.",
	}

	want := models.TrekSummary{
		Slug:             "hampta-pass",
		Name:             "Hampta Pass",
		Image:            "https://example.com/hampta.jpg",
		Difficulty:       models.DifficultyModerate,
		Duration:         "5 Days",
		Altitude:         "14,100 ft",
		Price:            12450,
		Rating:           4.8,
		ReviewCount:      1780,
		Region:           "Himachal Pradesh",
		BestMonths:       []string{"June", "July"},
		ShortDescription: "Dramatic crossover.",
	}
	if diff := cmp.Diff(want, TrekFromDetail(e)); diff != "" {
		t.Errorf("TrekFromDetail mismatch (-want +got):\n%s", diff)
	}
}

func TestTrekFromDetailFallsBackToReviewsAndTagline(t *testing.T) {
	e := contentstack.Entry{
		"name":    "Brahmatal",
		"slug":    "brahmatal",
		"reviews": float64(2100),
		"tagline": "Frozen lake views",
		"price":   "₹11,850",
	}
	got := TrekFromDetail(e)
	if got.ReviewCount != 2100 {
		t.Errorf("ReviewCount = %d, want 2100", got.ReviewCount)
	}
	if got.ShortDescription != "Frozen lake views" {
		t.Errorf("ShortDescription = %q", got.ShortDescription)
	}
	if got.Price != 11850 {
		t.Errorf("Price = %d, want 11850", got.Price)
	}
	if got.BestMonths == nil || len(got.BestMonths) != 0 {
		t.Errorf("BestMonths = %#v, want empty non-nil", got.BestMonths)
	}
}

func TestTrekFromFeatured(t *testing.T) {
	e := contentstack.Entry{
		"title":      "Kedarkantha Trek",
		"name":       "Kedarkantha",
		"image_url":  "https://example.com/k.jpg",
		"difficulty": "Easy - Moderate",
		"duration":   "6 Days",
		"price":      "₹11,850",
		"rating":     4.9,
		"reviews":    float64(2450),
		"region":     "Uttarakhand",
		"best_time":  "Dec - Apr",
	}
	got := TrekFromFeatured(e)

	if got.Slug != "kedarkantha" {
		t.Errorf("Slug = %q, want kedarkantha", got.Slug)
	}
	if got.Difficulty != models.DifficultyEasyModerate {
		t.Errorf("Difficulty = %q", got.Difficulty)
	}
	if got.Price != 11850 || got.ReviewCount != 2450 {
		t.Errorf("Price, ReviewCount = %d, %d", got.Price, got.ReviewCount)
	}
	if !got.HasMonth("January") || got.HasMonth("June") {
		t.Errorf("BestMonths = %v", got.BestMonths)
	}
}

func TestDetailFromEntryNil(t *testing.T) {
	if d := DetailFromEntry(nil); d != nil {
		t.Errorf("DetailFromEntry(nil) = %+v, want nil", d)
	}
}

func TestDetailFromEntryDecodesJSONText(t *testing.T) {
	e := contentstack.Entry{
		"title":            "Kedarkantha",
		"slug":             "kedarkantha",
		"price":            float64(11850),
		"original_price":   float64(13500),
		"overview":         "First paragraph.\n\nSee **Swargarohini**.",
		"gallery":          `["a.jpg","b.jpg"]`,
		"highlights":       `["Summit views"]`,
		"itinerary":        `[{"day":1,"title":"Dehradun to Sankri","meals":["Lunch","Dinner"],"stay":"Guesthouse"}]`,
		"weather":          `{"December":{"high":"5°C","low":"-8°C","condition":"Heavy Snow"},"april":{"high":"15°C","low":"2°C","condition":"Clear Skies"}}`,
		"upcoming_batches": `[{"date":"Feb 15-20, 2026","slots":8,"price":11850}]`,
		"trek_leader":      `{"name":"Vikash Kumar","experience":"8 years","treks_led":150}`,
	}
	d := DetailFromEntry(e)

	if diff := cmp.Diff([]string{"a.jpg", "b.jpg"}, d.Gallery); diff != "" {
		t.Errorf("Gallery mismatch (-want +got):\n%s", diff)
	}
	wantDay := models.ItineraryDay{Day: 1, Title: "Dehradun to Sankri", Meals: []string{"Lunch", "Dinner"}, Stay: "Guesthouse"}
	if diff := cmp.Diff([]models.ItineraryDay{wantDay}, d.Itinerary); diff != "" {
		t.Errorf("Itinerary mismatch (-want +got):\n%s", diff)
	}
	months := d.WeatherMonths()
	if len(months) != 2 || months[0].Month != "April" || months[1].Month != "December" {
		t.Errorf("WeatherMonths = %+v", months)
	}
	if d.TrekLeader == nil || d.TrekLeader.TreksLed != 150 {
		t.Errorf("TrekLeader = %+v", d.TrekLeader)
	}
	if d.Discount() != 1650 {
		t.Errorf("Discount = %d, want 1650", d.Discount())
	}
	if !strings.Contains(string(d.OverviewHTML), "<strong>Swargarohini</strong>") {
		t.Errorf("OverviewHTML = %q", d.OverviewHTML)
	}
}

func TestDetailFromEntryMalformedFieldsDegrade(t *testing.T) {
	e := contentstack.Entry{
		"title":       "Roopkund",
		"hero_image":  "https://example.com/roopkund.jpg",
		"itinerary":   `[{"day":1,`,
		"weather":     "not json",
		"faqs":        float64(3),
		"trek_leader": `["wrong shape"]`,
	}
	d := DetailFromEntry(e)
	if d == nil {
		t.Fatal("DetailFromEntry returned nil")
	}
	if len(d.Itinerary) != 0 || len(d.Weather) != 0 || len(d.FAQs) != 0 {
		t.Errorf("malformed fields not empty: itinerary=%v weather=%v faqs=%v", d.Itinerary, d.Weather, d.FAQs)
	}
	if d.TrekLeader != nil {
		t.Errorf("TrekLeader = %+v, want nil", d.TrekLeader)
	}
	if diff := cmp.Diff([]string{"https://example.com/roopkund.jpg"}, d.Gallery); diff != "" {
		t.Errorf("Gallery mismatch (-want +got):\n%s", diff)
	}
	if d.Slug != "roopkund" {
		t.Errorf("Slug = %q", d.Slug)
	}
}
