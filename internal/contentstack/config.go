// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package contentstack

import (
	"strings"
	"time"
)

// Region selects which delivery host serves the stack.
type Region string

const (
	RegionUS Region = "us"
	RegionEU Region = "eu"
)

const (
	usDeliveryHost = "https://cdn.contentstack.io"
	euDeliveryHost = "https://eu-cdn.contentstack.com"

	// DefaultTimeout bounds every delivery request.
	DefaultTimeout = 15 * time.Second
)

// Config identifies the content namespace and how to reach it. It is built
// once at startup and never mutated.
type Config struct {
	APIKey        string
	DeliveryToken string
	Environment   string
	Region        Region
	BaseURL       string // overrides the region host when set
	Timeout       time.Duration
}

// Configured reports whether both required credentials are present.
func (c Config) Configured() bool {
	return c.APIKey != "" && c.DeliveryToken != ""
}

// Host returns the delivery API base URL for the configured region.
func (c Config) Host() string {
	if c.BaseURL != "" {
		return strings.TrimRight(c.BaseURL, "/")
	}
	if c.Region == RegionEU {
		return euDeliveryHost
	}
	return usDeliveryHost
}

// ParseRegion maps a region selector to a Region. The second result is
// false for anything other than "us" or "eu" (case-insensitive); empty
// input defaults to us.
func ParseRegion(s string) (Region, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "us":
		return RegionUS, true
	case "eu":
		return RegionEU, true
	}
	return RegionUS, false
}
