// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package contentstack is a read-only client for the Contentstack Content
// Delivery API. It never returns errors to its callers: transport, status,
// and decode failures are logged and surface as an empty or nil result, so
// every caller can fall back to compiled-in content the same way it does
// when the stack is not configured at all.
package contentstack

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"

	"github.com/go-resty/resty/v2"
)

// QueryOptions shapes an entry list query.
type QueryOptions struct {
	OrderByAscending  string
	OrderByDescending string
	Limit             int
	IncludeReferences []string
}

// values encodes the options as delivery API query parameters.
func (o QueryOptions) values() url.Values {
	v := url.Values{}
	if o.OrderByAscending != "" {
		v.Set("asc", o.OrderByAscending)
	}
	if o.OrderByDescending != "" {
		v.Set("desc", o.OrderByDescending)
	}
	if o.Limit > 0 {
		v.Set("limit", strconv.Itoa(o.Limit))
	}
	for _, ref := range o.IncludeReferences {
		v.Add("include[]", ref)
	}
	return v
}

// Client issues queries against one stack. A Client built from an
// unconfigured Config performs no network I/O at all.
type Client struct {
	cfg  Config
	rest *resty.Client
}

// New creates a delivery client. When cfg lacks credentials the client is
// still usable; every query short-circuits to an empty result.
func New(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Environment == "" {
		cfg.Environment = "production"
	}

	c := &Client{cfg: cfg}
	if !cfg.Configured() {
		slog.Info("contentstack not configured, serving fallback content")
		return c
	}

	c.rest = resty.New().
		SetBaseURL(cfg.Host()+"/v3").
		SetTimeout(cfg.Timeout).
		SetHeader("api_key", cfg.APIKey).
		SetHeader("access_token", cfg.DeliveryToken).
		SetHeader("Accept", "application/json")

	slog.Info("contentstack client ready",
		"host", cfg.Host(),
		"environment", cfg.Environment,
	)
	return c
}

// Configured reports whether the client has credentials.
func (c *Client) Configured() bool {
	return c.cfg.Configured()
}

// Entries returns the entries of a content type, or an empty slice on any
// failure.
func (c *Client) Entries(ctx context.Context, contentType string, opts QueryOptions) []Entry {
	if !c.Configured() {
		return []Entry{}
	}

	entries, err := c.find(ctx, contentType, opts.values())
	if err != nil {
		slog.Warn("contentstack fetch entries failed", "content_type", contentType, "error", err)
		return []Entry{}
	}
	return entries
}

// SingleEntry returns the first entry of a content type, or nil.
func (c *Client) SingleEntry(ctx context.Context, contentType string) Entry {
	if !c.Configured() {
		return nil
	}

	entries, err := c.find(ctx, contentType, QueryOptions{Limit: 1}.values())
	if err != nil {
		slog.Warn("contentstack fetch single entry failed", "content_type", contentType, "error", err)
		return nil
	}
	if len(entries) == 0 {
		return nil
	}
	return entries[0]
}

// EntryByField returns the first entry whose field equals value, or nil.
func (c *Client) EntryByField(ctx context.Context, contentType, field, value string) Entry {
	if !c.Configured() {
		return nil
	}

	where, err := json.Marshal(map[string]string{field: value})
	if err != nil {
		slog.Warn("contentstack build query failed", "content_type", contentType, "field", field, "error", err)
		return nil
	}
	params := QueryOptions{Limit: 1}.values()
	params.Set("query", string(where))

	entries, err := c.find(ctx, contentType, params)
	if err != nil {
		slog.Warn("contentstack fetch entry by field failed",
			"content_type", contentType,
			"field", field,
			"value", value,
			"error", err,
		)
		return nil
	}
	if len(entries) == 0 {
		slog.Debug("contentstack entry not found", "content_type", contentType, "field", field, "value", value)
		return nil
	}
	return entries[0]
}

// find runs an entry query and decodes the result list.
func (c *Client) find(ctx context.Context, contentType string, params url.Values) ([]Entry, error) {
	params.Set("environment", c.cfg.Environment)

	resp, err := c.rest.R().
		SetContext(ctx).
		SetPathParam("contentType", contentType).
		SetQueryParamsFromValues(params).
		Get("/content_types/{contentType}/entries")
	if err != nil {
		return nil, fmt.Errorf("contentstack http: %w", err)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("contentstack API error (status %d): %s", resp.StatusCode(), truncate(resp.String(), 200))
	}

	var body entriesResponse
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return nil, fmt.Errorf("contentstack unmarshal: %w", err)
	}
	if body.Entries == nil {
		return []Entry{}, nil
	}
	return body.Entries, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

// --- Delivery API types ---

type entriesResponse struct {
	Entries []Entry `json:"entries"`
}
