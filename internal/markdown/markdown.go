// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package markdown renders the long-form trek copy authored in the CMS
// (overviews, itinerary day notes) from Markdown to HTML using goldmark.
// Raw HTML in the source is dropped; the CMS is not a trusted HTML source.
package markdown

import (
	"bytes"
	"html/template"
	"log/slog"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// md is the configured goldmark instance, reused across calls.
var md = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,         // tables, strikethrough, autolinks
		extension.Typographer, // smart quotes and dashes
	),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(),
	),
)

// ToHTML converts Markdown source into HTML.
func ToHTML(source string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(source), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Render converts source for direct use in templates. A conversion failure
// is logged and yields the source escaped as plain text.
func Render(source string) template.HTML {
	if source == "" {
		return ""
	}
	out, err := ToHTML(source)
	if err != nil {
		slog.Warn("markdown render failed", "error", err)
		return template.HTML(template.HTMLEscapeString(source))
	}
	return template.HTML(out)
}
