// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package content

import (
	"strings"

	"hatrek/internal/contentstack"
	"hatrek/internal/models"
)

// One mapper per content type. Each declares the canonical field names
// once; views never look at raw entries.

func SiteSettingsFrom(e contentstack.Entry) models.SiteSettings {
	return models.SiteSettings{
		LogoMainText: e.String("logo_main_text"),
		LogoSubText:  e.String("logo_sub_text"),
		ContactLabel: e.String("contact_label"),
		ShopLabel:    e.String("shop_label"),
	}
}

func NavItemsFrom(entries []contentstack.Entry) []models.NavItem {
	items := make([]models.NavItem, 0, len(entries))
	for _, e := range entries {
		item := models.NavItem{NavLink: models.NavLink{Title: e.Title(), URL: e.String("url")}}
		// has_dropdown=false hides items even if the group is populated.
		if !e.Has("has_dropdown") || e.Bool("has_dropdown") {
			item.Dropdown = navLinksFrom(e.Group("dropdown_items"))
		}
		items = append(items, item)
	}
	return items
}

func navLinksFrom(entries []contentstack.Entry) []models.NavLink {
	links := make([]models.NavLink, 0, len(entries))
	for _, e := range entries {
		links = append(links, models.NavLink{Title: e.Title(), URL: e.String("url")})
	}
	return links
}

func HeroSlidesFrom(entries []contentstack.Entry) []models.HeroSlide {
	out := make([]models.HeroSlide, 0, len(entries))
	for _, e := range entries {
		out = append(out, models.HeroSlide{
			Title:    e.Title(),
			Subtitle: e.String("subtitle"),
			StatText: e.String("stat_text"),
			ImageURL: e.String("image_url"),
		})
	}
	return out
}

func HeroStatsFrom(entries []contentstack.Entry) []models.HeroStat {
	out := make([]models.HeroStat, 0, len(entries))
	for _, e := range entries {
		out = append(out, models.HeroStat{
			Icon:  e.String("icon"),
			Value: e.String("value"),
			Label: e.String("label"),
		})
	}
	return out
}

func HeroSettingsFrom(e contentstack.Entry) models.HeroSettings {
	return models.HeroSettings{
		BadgeText:        e.String("badge_text"),
		CTAPrimaryText:   e.String("cta_primary_text"),
		CTASecondaryText: e.String("cta_secondary_text"),
		ScrollText:       e.String("scroll_text"),
	}
}

func TestimonialsFrom(entries []contentstack.Entry) []models.Testimonial {
	out := make([]models.Testimonial, 0, len(entries))
	for _, e := range entries {
		rating, ok := e.Float("rating")
		if !ok {
			rating = 5
		}
		out = append(out, models.Testimonial{
			Name:      firstNonEmpty(e.String("name"), e.Title()),
			Role:      e.String("role"),
			Location:  e.String("location"),
			ImageURL:  e.String("image_url"),
			Quote:     e.String("quote"),
			Highlight: e.String("highlight"),
			Rating:    rating,
		})
	}
	return out
}

func SectionHeadingFrom(e contentstack.Entry) models.SectionHeading {
	return models.SectionHeading{
		Label:    e.String("label"),
		Subtitle: e.String("subtitle"),
	}
}

// FeaturesFrom splits the comma-separated highlights text. A highlights
// list is accepted as well.
func FeaturesFrom(entries []contentstack.Entry) []models.Feature {
	out := make([]models.Feature, 0, len(entries))
	for _, e := range entries {
		var highlights []string
		if text := e.String("highlights"); text != "" && !strings.HasPrefix(strings.TrimSpace(text), "[") {
			for _, h := range strings.Split(text, ",") {
				if h = strings.TrimSpace(h); h != "" {
					highlights = append(highlights, h)
				}
			}
		} else {
			highlights = e.Strings("highlights")
		}
		out = append(out, models.Feature{
			Title:       e.Title(),
			Description: e.String("description"),
			Icon:        e.String("icon"),
			Color:       e.String("color"),
			Highlights:  highlights,
		})
	}
	return out
}

func AdvantagesFrom(entries []contentstack.Entry) []models.Advantage {
	out := make([]models.Advantage, 0, len(entries))
	for _, e := range entries {
		out = append(out, models.Advantage{Title: e.Title(), Description: e.String("description")})
	}
	return out
}

func FeaturesSectionFrom(e contentstack.Entry) models.FeaturesSection {
	return models.FeaturesSection{
		Label:           e.String("label"),
		AdvantagesTitle: e.String("advantages_title"),
	}
}

func CategoryTabsFrom(entries []contentstack.Entry) []models.CategoryTab {
	out := make([]models.CategoryTab, 0, len(entries))
	for _, e := range entries {
		out = append(out, models.CategoryTab{
			ID:    e.String("tab_id"),
			Label: e.String("label"),
			Icon:  e.String("icon_name"),
		})
	}
	return out
}

// FilterDataFrom decodes the facet counts, each stored as JSON text.
func FilterDataFrom(e contentstack.Entry) models.TrekFilterData {
	return models.TrekFilterData{
		ByMonth:      contentstack.DecodeField(e, "by_month", []models.FilterCount{}),
		ByDifficulty: contentstack.DecodeField(e, "by_difficulty", []models.FilterCount{}),
		ByDuration:   contentstack.DecodeField(e, "by_duration", []models.FilterCount{}),
		ByRegion:     contentstack.DecodeField(e, "by_region", []models.FilterCount{}),
	}
}

func FeaturedTreksFrom(entries []contentstack.Entry) []models.TrekSummary {
	out := make([]models.TrekSummary, 0, len(entries))
	for _, e := range entries {
		out = append(out, TrekFromFeatured(e))
	}
	return out
}

func TrekCategoriesSectionFrom(e contentstack.Entry) models.TrekCategoriesSection {
	return models.TrekCategoriesSection{
		Label:         e.String("label"),
		Subtitle:      e.String("subtitle"),
		FeaturedTitle: e.String("featured_title"),
		ViewAllText:   e.String("view_all_text"),
	}
}

func FAQsFrom(entries []contentstack.Entry) []models.FAQ {
	out := make([]models.FAQ, 0, len(entries))
	for _, e := range entries {
		out = append(out, models.FAQ{Question: e.String("question"), Answer: e.String("answer")})
	}
	return out
}

func FAQSectionFrom(e contentstack.Entry) models.FAQSection {
	return models.FAQSection{
		Label:               e.String("label"),
		Subtitle:            e.String("subtitle"),
		ContactTitle:        e.String("contact_title"),
		ContactDescription:  e.String("contact_description"),
		ContactCTAPrimary:   e.String("contact_cta_primary"),
		ContactCTASecondary: e.String("contact_cta_secondary"),
		PhoneNumber:         e.String("phone_number"),
		HoursWeekday:        e.String("hours_weekday"),
		HoursWeekend:        e.String("hours_weekend"),
	}
}

// FooterParts are the resolved entries that make up the footer.
type FooterParts struct {
	Settings   contentstack.Entry
	LinkGroups []contentstack.Entry
	Social     []contentstack.Entry
	Offices    []contentstack.Entry
	TrustedBy  []contentstack.Entry
	Legal      []contentstack.Entry
}

func FooterFrom(p FooterParts) models.Footer {
	s := p.Settings
	f := models.Footer{
		Settings: models.FooterSettings{
			LogoMainText:          s.String("logo_main_text"),
			LogoSubText:           s.String("logo_sub_text"),
			Description:           s.String("description"),
			Phone:                 s.String("phone"),
			Email:                 s.String("email"),
			HoursWeekday:          s.String("hours_weekday"),
			HoursWeekend:          s.String("hours_weekend"),
			TrustedByLabel:        s.String("trusted_by_label"),
			NewsletterTitle:       s.String("newsletter_title"),
			NewsletterSubtitle:    s.String("newsletter_subtitle"),
			NewsletterPlaceholder: s.String("newsletter_placeholder"),
			NewsletterButton:      s.String("newsletter_button"),
			CopyrightText:         s.String("copyright_text"),
			CopyrightSuffix:       s.String("copyright_suffix"),
		},
		Legal: navLinksFrom(p.Legal),
	}
	for _, e := range p.LinkGroups {
		f.LinkGroups = append(f.LinkGroups, models.LinkGroup{Title: e.Title(), Links: navLinksFrom(e.Group("links"))})
	}
	for _, e := range p.Social {
		f.Social = append(f.Social, models.SocialLink{
			Icon:  e.String("icon"),
			Label: firstNonEmpty(e.String("label"), e.Title()),
			URL:   e.String("url"),
		})
	}
	for _, e := range p.Offices {
		f.Offices = append(f.Offices, models.Office{City: e.String("city"), Address: e.String("address")})
	}
	for _, e := range p.TrustedBy {
		f.TrustedBy = append(f.TrustedBy, firstNonEmpty(e.String("name"), e.Title()))
	}
	return f
}
