// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"fmt"
	"io"
	"net/url"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"hatrek/internal/catalog"
	"hatrek/internal/content"
	"hatrek/internal/contentstack"
	"hatrek/internal/models"
	"hatrek/internal/render"
)

func newTreksCmd() *cobra.Command {
	var search, difficulty, region, duration, month, sort string

	cmd := &cobra.Command{
		Use:   "treks",
		Short: "List the trek catalog with the site's filters",
		Example: `  hatrek treks --region Uttarakhand --sort price-low
  hatrek treks --duration "5-6 Days" --month October`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			defaults, err := content.LoadDefaults()
			if err != nil {
				return fmt.Errorf("loading default content: %w", err)
			}
			svc := content.NewService(contentstack.New(cfg.Contentstack), defaults)

			criteria, key := catalog.CriteriaFromQuery(url.Values{
				"search":     {search},
				"difficulty": {difficulty},
				"region":     {region},
				"duration":   {duration},
				"month":      {month},
				"sort":       {sort},
			})
			if criteria.Duration != "" {
				if _, ok := catalog.BucketByLabel(criteria.Duration); !ok {
					return fmt.Errorf("unknown duration %q", criteria.Duration)
				}
			}

			all := svc.Catalog(cmd.Context())
			return printTreks(cmd.OutOrStdout(), catalog.FilterAndSort(all, criteria, key), len(all))
		},
	}

	f := cmd.Flags()
	f.StringVar(&search, "search", "", "Match name, region or description")
	f.StringVar(&difficulty, "difficulty", "", "Easy, Easy-Moderate, Moderate, Moderate-Difficult or Difficult")
	f.StringVar(&region, "region", "", "Region, e.g. Uttarakhand")
	f.StringVar(&duration, "duration", "", `Duration bucket: "3-4 Days", "5-6 Days", "7-8 Days" or "9+ Days"`)
	f.StringVar(&month, "month", "", "Best month, e.g. October")
	f.StringVar(&sort, "sort", "popular", "popular, rating, price-low, price-high or duration")
	return cmd
}

// printTreks writes the listing as an aligned table.
func printTreks(w io.Writer, treks []models.TrekSummary, total int) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SLUG\tNAME\tREGION\tDIFFICULTY\tDURATION\tPRICE\tRATING")
	for _, t := range treks {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%.1f\n",
			t.Slug, t.Name, t.Region, t.Difficulty.Label(), t.Duration, render.Rupees(t.Price), t.Rating)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\n%d of %d treks\n", len(treks), total)
	return err
}
