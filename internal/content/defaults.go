// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package content

import (
	_ "embed"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"

	"hatrek/internal/contentstack"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Defaults is the compiled-in content set, shaped exactly like CMS entries
// so the same mappers serve both.
type Defaults struct {
	singles map[string]contentstack.Entry
	lists   map[string][]contentstack.Entry
}

// LoadDefaults parses the embedded default content.
func LoadDefaults() (*Defaults, error) {
	return ParseDefaults(defaultsYAML)
}

// MustLoadDefaults is LoadDefaults for program startup and tests.
func MustLoadDefaults() *Defaults {
	d, err := LoadDefaults()
	if err != nil {
		panic(err)
	}
	return d
}

// ParseDefaults reads a defaults document: top-level keys are content type
// UIDs, a mapping is a singleton and a sequence is an entry list. Lists are
// ordered by their "order" (or "sort_order") field.
func ParseDefaults(data []byte) (*Defaults, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing default content: %w", err)
	}

	d := &Defaults{
		singles: make(map[string]contentstack.Entry),
		lists:   make(map[string][]contentstack.Entry),
	}
	for contentType, v := range raw {
		switch t := v.(type) {
		case map[string]any:
			d.singles[contentType] = contentstack.Entry(t)
		case []any:
			entries := make([]contentstack.Entry, 0, len(t))
			for i, item := range t {
				m, ok := item.(map[string]any)
				if !ok {
					return nil, fmt.Errorf("default content %s[%d]: expected a mapping, got %T", contentType, i, item)
				}
				entries = append(entries, contentstack.Entry(m))
			}
			contentstack.SortByOrder(entries, orderField(contentType))
			d.lists[contentType] = entries
		default:
			return nil, fmt.Errorf("default content %s: expected a mapping or a sequence, got %T", contentType, v)
		}
	}
	return d, nil
}

// Single returns the default singleton for a content type, nil if none.
func (d *Defaults) Single(contentType string) contentstack.Entry {
	return d.singles[contentType]
}

// List returns a copy of the default entries for a content type. The
// result is never nil.
func (d *Defaults) List(contentType string) []contentstack.Entry {
	entries := d.lists[contentType]
	if entries == nil {
		return []contentstack.Entry{}
	}
	return slices.Clone(entries)
}

// Trek returns the default trek_detail entry for a slug, nil if the slug
// is not in the default catalog.
func (d *Defaults) Trek(trekSlug string) contentstack.Entry {
	for _, e := range d.lists[TypeTrekDetail] {
		if TrekFromDetail(e).Slug == trekSlug {
			return e
		}
	}
	return nil
}

// orderField is the ordering field of a list content type.
func orderField(contentType string) string {
	if contentType == TypeCategoryTab {
		return "sort_order"
	}
	return "order"
}
