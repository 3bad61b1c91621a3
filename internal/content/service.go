// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package content assembles typed page models from CMS entries, falling
// back to compiled-in defaults section by section.
package content

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"hatrek/internal/contentstack"
	"hatrek/internal/models"
	"hatrek/internal/resolve"
	"hatrek/internal/slug"
)

// Content type UIDs.
const (
	TypeSiteSettings          = "site_settings"
	TypeNavigation            = "navigation"
	TypeHeroSlide             = "hero_slide"
	TypeHeroStat              = "hero_stat"
	TypeHeroSettings          = "hero_settings"
	TypeTestimonial           = "testimonial"
	TypeTestimonialsSection   = "testimonials_section"
	TypeFeature               = "feature"
	TypeAdvantage             = "advantage"
	TypeFeaturesSection       = "features_section"
	TypeCategoryTab           = "trek_category_tab"
	TypeFilterData            = "trek_filter_data"
	TypeFeaturedTrek          = "featured_trek"
	TypeTrekCategoriesSection = "trek_categories_section"
	TypeFAQ                   = "faq"
	TypeFAQSection            = "faq_section"
	TypeFooterSettings        = "footer_settings"
	TypeFooterLinkGroup       = "footer_link_group"
	TypeSocialLink            = "social_link"
	TypeOffice                = "office"
	TypeTrustedBy             = "trusted_by"
	TypeLegalLink             = "legal_link"
	TypeTrekDetail            = "trek_detail"
)

// Service resolves pages. It is safe for concurrent use.
type Service struct {
	src      resolve.Source
	defaults *Defaults
}

// NewService creates a page service over a content source.
func NewService(src resolve.Source, defaults *Defaults) *Service {
	return &Service{src: src, defaults: defaults}
}

func (s *Service) entries(ctx context.Context, contentType string) []contentstack.Entry {
	opts := contentstack.QueryOptions{OrderByAscending: orderField(contentType)}
	return resolve.Entries(ctx, s.src, contentType, s.defaults.List(contentType), opts).Data
}

func (s *Service) single(ctx context.Context, contentType string) contentstack.Entry {
	return resolve.SingleEntry(ctx, s.src, contentType, s.defaults.Single(contentType)).Data
}

// Layout resolves the header and footer shared by every page.
func (s *Service) Layout(ctx context.Context) models.Layout {
	var (
		layout models.Layout
		parts  FooterParts
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { layout.Site = SiteSettingsFrom(s.single(gctx, TypeSiteSettings)); return nil })
	g.Go(func() error { layout.Nav = NavItemsFrom(s.entries(gctx, TypeNavigation)); return nil })
	g.Go(func() error { parts.Settings = s.single(gctx, TypeFooterSettings); return nil })
	g.Go(func() error { parts.LinkGroups = s.entries(gctx, TypeFooterLinkGroup); return nil })
	g.Go(func() error { parts.Social = s.entries(gctx, TypeSocialLink); return nil })
	g.Go(func() error { parts.Offices = s.entries(gctx, TypeOffice); return nil })
	g.Go(func() error { parts.TrustedBy = s.entries(gctx, TypeTrustedBy); return nil })
	g.Go(func() error { parts.Legal = s.entries(gctx, TypeLegalLink); return nil })
	_ = g.Wait()

	layout.Footer = FooterFrom(parts)
	return layout
}

// Home resolves every home page section concurrently. Each section falls
// back independently; the only error is a cancelled context.
func (s *Service) Home(ctx context.Context) (*models.HomePage, error) {
	page := &models.HomePage{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { page.Layout = s.Layout(gctx); return nil })
	g.Go(func() error { page.HeroSlides = HeroSlidesFrom(s.entries(gctx, TypeHeroSlide)); return nil })
	g.Go(func() error { page.HeroStats = HeroStatsFrom(s.entries(gctx, TypeHeroStat)); return nil })
	g.Go(func() error { page.Hero = HeroSettingsFrom(s.single(gctx, TypeHeroSettings)); return nil })
	g.Go(func() error { page.Testimonials = TestimonialsFrom(s.entries(gctx, TypeTestimonial)); return nil })
	g.Go(func() error {
		page.TestimonialsSection = SectionHeadingFrom(s.single(gctx, TypeTestimonialsSection))
		return nil
	})
	g.Go(func() error { page.Features = FeaturesFrom(s.entries(gctx, TypeFeature)); return nil })
	g.Go(func() error { page.Advantages = AdvantagesFrom(s.entries(gctx, TypeAdvantage)); return nil })
	g.Go(func() error {
		page.FeaturesSection = FeaturesSectionFrom(s.single(gctx, TypeFeaturesSection))
		return nil
	})
	g.Go(func() error { page.CategoryTabs = CategoryTabsFrom(s.entries(gctx, TypeCategoryTab)); return nil })
	g.Go(func() error { page.FilterData = FilterDataFrom(s.single(gctx, TypeFilterData)); return nil })
	g.Go(func() error { page.FeaturedTreks = FeaturedTreksFrom(s.entries(gctx, TypeFeaturedTrek)); return nil })
	g.Go(func() error {
		page.CategoriesSection = TrekCategoriesSectionFrom(s.single(gctx, TypeTrekCategoriesSection))
		return nil
	})
	g.Go(func() error { page.FAQs = FAQsFrom(s.entries(gctx, TypeFAQ)); return nil })
	g.Go(func() error { page.FAQSection = FAQSectionFrom(s.single(gctx, TypeFAQSection)); return nil })
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("assembling home page: %w", err)
	}
	return page, nil
}

// Catalog resolves the trek listing, ordered by the CMS order field.
func (s *Service) Catalog(ctx context.Context) []models.TrekSummary {
	return summaries(s.entries(ctx, TypeTrekDetail))
}

// Trek resolves a trek page by slug. The compiled-in entry for the slug is
// the fallback. Returns nil when no trek has that slug.
func (s *Service) Trek(ctx context.Context, trekSlug string) *models.TrekDetail {
	if !slug.Valid(trekSlug) {
		return nil
	}

	res := resolve.EntryByField(ctx, s.src, TypeTrekDetail, "slug", trekSlug, s.defaults.Trek(trekSlug))
	d := DetailFromEntry(res.Data)
	if d == nil {
		return nil
	}
	d.FromCMS = res.FromCMS
	return d
}

// WarmCatalog resolves the catalog in the background and logs its source
// once settled. The caller closes the returned hook on shutdown.
func (s *Service) WarmCatalog(ctx context.Context) *resolve.Hook[[]contentstack.Entry] {
	hook := resolve.UseEntries(s.src, TypeTrekDetail, s.defaults.List(TypeTrekDetail),
		contentstack.QueryOptions{OrderByAscending: "order"})
	hook.Subscribe(func(r resolve.Result[[]contentstack.Entry]) {
		if r.Loading {
			return
		}
		slog.Info("catalog resolved", "treks", len(r.Data), "from_cms", r.FromCMS, "error", r.Err)
	})
	hook.Start(ctx)
	return hook
}

func summaries(entries []contentstack.Entry) []models.TrekSummary {
	out := make([]models.TrekSummary, 0, len(entries))
	for _, e := range entries {
		out = append(out, TrekFromDetail(e))
	}
	return out
}
