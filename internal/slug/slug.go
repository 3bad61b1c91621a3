// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug derives and validates the URL identifiers used to route
// trek detail pages.
package slug

import (
	"regexp"
	"strings"
)

var (
	// separators are runs of whitespace, underscores, or hyphens.
	separators = regexp.MustCompile(`[\s_-]+`)
	// disallowed is anything left that isn't a lowercase letter, digit, or hyphen.
	disallowed = regexp.MustCompile(`[^a-z0-9-]`)
	// valid is the shape Generate produces.
	valid = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

// Generate creates a slug from a display name.
// Example: "Valley of Flowers" → "valley-of-flowers"
func Generate(s string) string {
	result := strings.ToLower(strings.TrimSpace(s))
	result = strings.ReplaceAll(result, "&", " and ")
	result = separators.ReplaceAllString(result, "-")
	result = disallowed.ReplaceAllString(result, "")
	result = separators.ReplaceAllString(result, "-")
	return strings.Trim(result, "-")
}

// Valid reports whether s is a well-formed slug. Route handlers use it to
// reject lookups that could never match before touching the CMS.
func Valid(s string) bool {
	return len(s) <= 128 && valid.MatchString(s)
}
