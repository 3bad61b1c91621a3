package content

import (
	"testing"

	"hatrek/internal/contentstack"
	"hatrek/internal/slug"
)

func TestLoadDefaults(t *testing.T) {
	d, err := LoadDefaults()
	if err != nil {
		t.Fatalf("LoadDefaults: %v", err)
	}

	counts := map[string]int{
		TypeNavigation:      5,
		TypeHeroSlide:       4,
		TypeHeroStat:        4,
		TypeTestimonial:     6,
		TypeFeature:         5,
		TypeAdvantage:       6,
		TypeCategoryTab:     4,
		TypeFeaturedTrek:    4,
		TypeFAQ:             8,
		TypeFooterLinkGroup: 3,
		TypeSocialLink:      4,
		TypeOffice:          2,
		TypeTrustedBy:       6,
		TypeLegalLink:       3,
		TypeTrekDetail:      12,
	}
	for contentType, want := range counts {
		if got := len(d.List(contentType)); got != want {
			t.Errorf("len(List(%q)) = %d, want %d", contentType, got, want)
		}
	}

	for _, contentType := range []string{
		TypeSiteSettings, TypeHeroSettings, TypeTestimonialsSection, TypeFeaturesSection,
		TypeFilterData, TypeTrekCategoriesSection, TypeFAQSection, TypeFooterSettings,
	} {
		if d.Single(contentType) == nil {
			t.Errorf("Single(%q) = nil", contentType)
		}
	}
}

func TestDefaultsListOrdered(t *testing.T) {
	d := MustLoadDefaults()

	treks := d.List(TypeTrekDetail)
	if first, last := treks[0].String("slug"), treks[len(treks)-1].String("slug"); first != "kedarkantha" || last != "kuari-pass" {
		t.Errorf("trek order = %s..%s, want kedarkantha..kuari-pass", first, last)
	}

	tabs := d.List(TypeCategoryTab)
	if got := tabs[0].String("tab_id"); got != "month" {
		t.Errorf("first tab = %q, want month", got)
	}
}

func TestDefaultsListIsCopy(t *testing.T) {
	d := MustLoadDefaults()
	list := d.List(TypeTestimonial)
	list[0] = contentstack.Entry{"title": "replaced"}

	if got := d.List(TypeTestimonial)[0].String("name"); got != "Arjun Mehta" {
		t.Errorf("first testimonial after caller mutation = %q", got)
	}
}

func TestDefaultsUnknownType(t *testing.T) {
	d := MustLoadDefaults()
	if got := d.List("blog_post"); got == nil || len(got) != 0 {
		t.Errorf("List(unknown) = %#v, want empty non-nil", got)
	}
	if got := d.Single("blog_post"); got != nil {
		t.Errorf("Single(unknown) = %v, want nil", got)
	}
}

func TestDefaultTrekSlugs(t *testing.T) {
	d := MustLoadDefaults()
	for _, e := range d.List(TypeTrekDetail) {
		s := TrekFromDetail(e)
		if !slug.Valid(s.Slug) {
			t.Errorf("invalid slug %q", s.Slug)
		}
		if got := slug.Generate(s.Name); got != s.Slug {
			t.Errorf("slug for %q = %q, generated %q", s.Name, s.Slug, got)
		}
		if d.Trek(s.Slug) == nil {
			t.Errorf("Trek(%q) = nil", s.Slug)
		}
	}
	if d.Trek("everest-base-camp") != nil {
		t.Error("Trek(unknown) should be nil")
	}
}

func TestDefaultKedarkanthaDetail(t *testing.T) {
	d := DetailFromEntry(MustLoadDefaults().Trek("kedarkantha"))
	if d == nil {
		t.Fatal("no default kedarkantha detail")
	}

	checks := []struct {
		name      string
		got, want int
	}{
		{"gallery", len(d.Gallery), 4},
		{"highlights", len(d.Highlights), 6},
		{"itinerary", len(d.Itinerary), 6},
		{"inclusions", len(d.Inclusions), 8},
		{"exclusions", len(d.Exclusions), 6},
		{"things to carry", len(d.ThingsToCarry), 9},
		{"weather months", len(d.WeatherMonths()), 5},
		{"batches", len(d.UpcomingBatches), 6},
		{"reviews", len(d.Reviews), 3},
		{"faqs", len(d.FAQs), 5},
		{"price", d.Price, 11850},
		{"original price", d.OriginalPrice, 13500},
		{"review count", d.ReviewCount, 2450},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %d, want %d", c.name, c.got, c.want)
		}
	}

	if d.TrekLeader == nil || d.TrekLeader.Name != "Vikash Kumar" {
		t.Errorf("TrekLeader = %+v", d.TrekLeader)
	}
	if d.Itinerary[3].Altitude != "12,500 ft (summit)" {
		t.Errorf("summit day altitude = %q", d.Itinerary[3].Altitude)
	}
	if w := d.WeatherMonths(); w[0].Month != "January" || w[len(w)-1].Month != "December" {
		t.Errorf("weather order = %v..%v", w[0].Month, w[len(w)-1].Month)
	}
	if d.OverviewHTML == "" {
		t.Error("OverviewHTML is empty")
	}
}

func TestDefaultSummaryOnlyDetail(t *testing.T) {
	d := DetailFromEntry(MustLoadDefaults().Trek("goechala"))
	if d == nil {
		t.Fatal("no default goechala detail")
	}
	if len(d.Gallery) != 1 || d.Gallery[0] != d.Image {
		t.Errorf("Gallery = %v, want [hero image]", d.Gallery)
	}
	if len(d.Itinerary) != 0 || d.TrekLeader != nil {
		t.Errorf("unexpected structured content: itinerary=%v leader=%v", d.Itinerary, d.TrekLeader)
	}
	if d.Region != "Sikkim" || d.Duration != "10 Days" {
		t.Errorf("Region, Duration = %q, %q", d.Region, d.Duration)
	}
}

func TestParseDefaults(t *testing.T) {
	d, err := ParseDefaults([]byte(`
faq:
  - {question: Second, order: 2}
  - {question: First, order: 1}
  - {question: Unordered}
faq_section:
  label: FAQs
`))
	if err != nil {
		t.Fatalf("ParseDefaults: %v", err)
	}
	list := d.List(TypeFAQ)
	var got []string
	for _, e := range list {
		got = append(got, e.String("question"))
	}
	if len(got) != 3 || got[0] != "First" || got[1] != "Second" || got[2] != "Unordered" {
		t.Errorf("order = %v", got)
	}
	if d.Single(TypeFAQSection).String("label") != "FAQs" {
		t.Errorf("faq_section = %v", d.Single(TypeFAQSection))
	}
}

func TestParseDefaultsErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"invalid yaml", "faq: [unclosed"},
		{"scalar type", "faq: 42"},
		{"scalar item", "faq:\n  - just text\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseDefaults([]byte(tt.doc)); err == nil {
				t.Error("expected error")
			}
		})
	}
}
