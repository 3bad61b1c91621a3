// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"strings"
	"unicode/utf8"
)

// Input limits for visitor-supplied fields.
const (
	maxQueryLen          = 2_000
	maxConversationIDLen = 100
	maxSearchLen         = 100
)

// validateAsk checks an assistant request and returns the first error found.
func validateAsk(query, conversationID string) string {
	query = strings.TrimSpace(query)
	if query == "" {
		return "Query is required."
	}
	if utf8.RuneCountInString(query) > maxQueryLen {
		return "Query is too long (max 2,000 characters)."
	}
	if len(conversationID) > maxConversationIDLen {
		return "Conversation ID is too long (max 100 characters)."
	}
	for _, r := range conversationID {
		if !isIDRune(r) {
			return "Conversation ID may only contain letters, digits, '-' and '_'."
		}
	}
	return ""
}

func isIDRune(r rune) bool {
	return r == '-' || r == '_' ||
		(r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

// clipSearch bounds the free-text catalog search to maxSearchLen runes.
func clipSearch(s string) string {
	if utf8.RuneCountInString(s) <= maxSearchLen {
		return s
	}
	return string([]rune(s)[:maxSearchLen])
}
