// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package assistant proxies visitor questions to the trek assistant API.
// The upstream answers with an HTML fragment, which is sanitized before it
// reaches a page.
package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/microcosm-cc/bluemonday"
)

// DefaultTimeout bounds one upstream call.
const DefaultTimeout = 60 * time.Second

var (
	ErrNotConfigured = errors.New("assistant: API URL not configured")
	ErrEmptyQuery    = errors.New("assistant: empty query")
)

// Config holds the upstream endpoint. The auth header is sent only when
// both key and value are set.
type Config struct {
	URL             string
	AuthHeaderKey   string
	AuthHeaderValue string
	Timeout         time.Duration
}

// Client calls the assistant API.
type Client struct {
	cfg    Config
	rest   *resty.Client
	policy *bluemonday.Policy
}

// New creates an assistant client.
func New(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	rest := resty.New().
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "application/json")
	if cfg.AuthHeaderKey != "" && cfg.AuthHeaderValue != "" {
		rest.SetHeader(cfg.AuthHeaderKey, cfg.AuthHeaderValue)
	}
	return &Client{
		cfg:    cfg,
		rest:   rest,
		policy: bluemonday.UGCPolicy(),
	}
}

// Configured reports whether an upstream URL is set.
func (c *Client) Configured() bool {
	return c.cfg.URL != ""
}

// Ask sends one question and returns the sanitized HTML answer.
func (c *Client) Ask(ctx context.Context, query, conversationID string) (string, error) {
	if !c.Configured() {
		return "", ErrNotConfigured
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return "", ErrEmptyQuery
	}

	resp, err := c.rest.R().
		SetContext(ctx).
		SetBody(askRequest{Query: query, ConversationID: conversationID}).
		Post(c.cfg.URL)
	if err != nil {
		return "", fmt.Errorf("assistant http: %w", err)
	}
	if !resp.IsSuccess() {
		return "", fmt.Errorf("assistant API error (status %d)", resp.StatusCode())
	}

	answer := strings.TrimSpace(c.policy.Sanitize(resp.String()))
	if answer == "" {
		return "", fmt.Errorf("assistant: empty response")
	}
	return answer, nil
}

// --- Assistant API types ---

type askRequest struct {
	Query          string `json:"query"`
	ConversationID string `json:"conversation_id"`
}
