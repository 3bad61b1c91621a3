// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// SiteSettings holds the site-wide branding shown in the header.
type SiteSettings struct {
	LogoMainText string `json:"logo_main_text"`
	LogoSubText  string `json:"logo_sub_text"`
	ContactLabel string `json:"contact_label"`
	ShopLabel    string `json:"shop_label"`
}

// NavLink is a titled URL.
type NavLink struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// NavItem is a top-level header menu entry, optionally with a dropdown.
type NavItem struct {
	NavLink
	Dropdown []NavLink `json:"dropdown_items,omitempty"`
}

// HasDropdown reports whether the item opens a submenu.
func (n NavItem) HasDropdown() bool {
	return len(n.Dropdown) > 0
}

// Layout is the chrome shared by every page.
type Layout struct {
	Site   SiteSettings `json:"site"`
	Nav    []NavItem    `json:"nav"`
	Footer Footer       `json:"footer"`
}

// HeroSlide is one rotating hero banner.
type HeroSlide struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	StatText string `json:"stat_text"`
	ImageURL string `json:"image_url"`
}

// HeroStat is one headline number under the hero.
type HeroStat struct {
	Icon  string `json:"icon"`
	Value string `json:"value"`
	Label string `json:"label"`
}

// HeroSettings holds the hero's fixed copy.
type HeroSettings struct {
	BadgeText        string `json:"badge_text"`
	CTAPrimaryText   string `json:"cta_primary_text"`
	CTASecondaryText string `json:"cta_secondary_text"`
	ScrollText       string `json:"scroll_text"`
}

// Testimonial is a trekker quote on the home page.
type Testimonial struct {
	Name      string  `json:"name"`
	Role      string  `json:"role"`
	Location  string  `json:"location"`
	ImageURL  string  `json:"image_url"`
	Quote     string  `json:"quote"`
	Highlight string  `json:"highlight"`
	Rating    float64 `json:"rating"`
}

// SectionHeading is the label/subtitle pair above a home page section.
type SectionHeading struct {
	Label    string `json:"label"`
	Subtitle string `json:"subtitle"`
}

// Feature is a "why choose us" pillar.
type Feature struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Icon        string   `json:"icon"`
	Color       string   `json:"color"`
	Highlights  []string `json:"highlights"`
}

// Advantage is a short selling point.
type Advantage struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// FeaturesSection holds the features block copy.
type FeaturesSection struct {
	Label           string `json:"label"`
	AdvantagesTitle string `json:"advantages_title"`
}

// CategoryTab is one "browse by" tab of the trek categories block.
type CategoryTab struct {
	ID    string `json:"tab_id"`
	Label string `json:"label"`
	Icon  string `json:"icon_name"`
}

// FilterCount is a facet value with the number of treks behind it.
type FilterCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
	Color string `json:"color,omitempty"`
}

// TrekFilterData holds the facet counts shown per category tab.
type TrekFilterData struct {
	ByMonth      []FilterCount `json:"by_month"`
	ByDifficulty []FilterCount `json:"by_difficulty"`
	ByDuration   []FilterCount `json:"by_duration"`
	ByRegion     []FilterCount `json:"by_region"`
}

// ForTab returns the facet counts for a category tab ID.
func (d TrekFilterData) ForTab(id string) []FilterCount {
	switch id {
	case "month":
		return d.ByMonth
	case "difficulty":
		return d.ByDifficulty
	case "duration":
		return d.ByDuration
	case "region":
		return d.ByRegion
	}
	return nil
}

// TrekCategoriesSection holds the trek categories block copy.
type TrekCategoriesSection struct {
	Label         string `json:"label"`
	Subtitle      string `json:"subtitle"`
	FeaturedTitle string `json:"featured_title"`
	ViewAllText   string `json:"view_all_text"`
}

// FAQ is a question and answer pair.
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// FAQSection holds the FAQ block copy and contact box.
type FAQSection struct {
	Label               string `json:"label"`
	Subtitle            string `json:"subtitle"`
	ContactTitle        string `json:"contact_title"`
	ContactDescription  string `json:"contact_description"`
	ContactCTAPrimary   string `json:"contact_cta_primary"`
	ContactCTASecondary string `json:"contact_cta_secondary"`
	PhoneNumber         string `json:"phone_number"`
	HoursWeekday        string `json:"hours_weekday"`
	HoursWeekend        string `json:"hours_weekend"`
}

// FooterSettings holds the footer's fixed copy.
type FooterSettings struct {
	LogoMainText          string `json:"logo_main_text"`
	LogoSubText           string `json:"logo_sub_text"`
	Description           string `json:"description"`
	Phone                 string `json:"phone"`
	Email                 string `json:"email"`
	HoursWeekday          string `json:"hours_weekday"`
	HoursWeekend          string `json:"hours_weekend"`
	TrustedByLabel        string `json:"trusted_by_label"`
	NewsletterTitle       string `json:"newsletter_title"`
	NewsletterSubtitle    string `json:"newsletter_subtitle"`
	NewsletterPlaceholder string `json:"newsletter_placeholder"`
	NewsletterButton      string `json:"newsletter_button"`
	CopyrightText         string `json:"copyright_text"`
	CopyrightSuffix       string `json:"copyright_suffix"`
}

// LinkGroup is a titled column of footer links.
type LinkGroup struct {
	Title string    `json:"title"`
	Links []NavLink `json:"links"`
}

// SocialLink points at one of the operator's social profiles.
type SocialLink struct {
	Icon  string `json:"icon"`
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Office is a physical office address.
type Office struct {
	City    string `json:"city"`
	Address string `json:"address"`
}

// Footer aggregates everything rendered in the page footer.
type Footer struct {
	Settings   FooterSettings `json:"settings"`
	LinkGroups []LinkGroup    `json:"link_groups"`
	Social     []SocialLink   `json:"social"`
	Offices    []Office       `json:"offices"`
	TrustedBy  []string       `json:"trusted_by"`
	Legal      []NavLink      `json:"legal"`
}

// HomePage is everything the home page renders.
type HomePage struct {
	Layout

	HeroSlides []HeroSlide  `json:"hero_slides"`
	HeroStats  []HeroStat   `json:"hero_stats"`
	Hero       HeroSettings `json:"hero"`

	Testimonials        []Testimonial  `json:"testimonials"`
	TestimonialsSection SectionHeading `json:"testimonials_section"`

	Features        []Feature       `json:"features"`
	Advantages      []Advantage     `json:"advantages"`
	FeaturesSection FeaturesSection `json:"features_section"`

	CategoryTabs      []CategoryTab         `json:"category_tabs"`
	FilterData        TrekFilterData        `json:"filter_data"`
	FeaturedTreks     []TrekSummary         `json:"featured_treks"`
	CategoriesSection TrekCategoriesSection `json:"categories_section"`

	FAQs       []FAQ      `json:"faqs"`
	FAQSection FAQSection `json:"faq_section"`
}
