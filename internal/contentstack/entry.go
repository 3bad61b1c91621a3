// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package contentstack

import (
	"encoding/json"
	"log/slog"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Entry is one schema-less record of a content type as returned by the
// delivery API (or loaded from compiled-in defaults). Accessors never panic
// on unexpected shapes; they return the zero value instead.
type Entry map[string]any

// UID returns the CMS-assigned entry identifier, empty for fallback entries.
func (e Entry) UID() string {
	return e.String("uid")
}

// Title returns the entry title, which is unique within a content type.
func (e Entry) Title() string {
	return e.String("title")
}

// Has reports whether key is present with a non-nil value.
func (e Entry) Has(key string) bool {
	if e == nil {
		return false
	}
	v, ok := e[key]
	return ok && v != nil
}

// String returns the value of key as a string. Numbers and booleans are
// formatted; anything else yields "".
func (e Entry) String(key string) string {
	if e == nil {
		return ""
	}
	switch v := e[key].(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		return strconv.FormatBool(v)
	}
	return ""
}

// Float returns the value of key as a float64. Numeric strings are parsed;
// the second result is false when no number could be extracted.
func (e Entry) Float(key string) (float64, bool) {
	if e == nil {
		return 0, false
	}
	switch v := e[key].(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f, err == nil
	}
	return 0, false
}

// Int returns the value of key truncated to an int.
func (e Entry) Int(key string) (int, bool) {
	f, ok := e.Float(key)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return int(f), true
}

// Bool returns the value of key as a bool. "true"/"false" strings are accepted.
func (e Entry) Bool(key string) bool {
	if e == nil {
		return false
	}
	switch v := e[key].(type) {
	case bool:
		return v
	case string:
		b, _ := strconv.ParseBool(v)
		return b
	}
	return false
}

// Group returns a repeatable group field (an ordered sequence of
// sub-records). Non-object items are skipped.
func (e Entry) Group(key string) []Entry {
	if e == nil {
		return nil
	}
	var items []any
	switch v := e[key].(type) {
	case []any:
		items = v
	case []map[string]any:
		for _, m := range v {
			items = append(items, m)
		}
	case []Entry:
		return v
	default:
		return nil
	}

	group := make([]Entry, 0, len(items))
	for _, item := range items {
		switch m := item.(type) {
		case map[string]any:
			group = append(group, Entry(m))
		case Entry:
			group = append(group, m)
		}
	}
	return group
}

// Strings returns a list-of-strings field, decoding a JSON-encoded string
// if necessary.
func (e Entry) Strings(key string) []string {
	if e == nil {
		return nil
	}
	return DecodeJSON(e[key], []string{})
}

// DecodeField decodes a structured field that the CMS stores as
// JSON-encoded text. See DecodeJSON.
func DecodeField[T any](e Entry, key string, fallback T) T {
	if e == nil {
		return fallback
	}
	return DecodeJSON(e[key], fallback)
}

// DecodeJSON converts a structured value into T. A string is decoded as
// JSON; a value that already is a T is returned unchanged; any other
// already-decoded value (e.g. []any from a JSON response) is converted via
// a JSON round trip. Absent, null, empty, or malformed input returns the
// fallback.
func DecodeJSON[T any](value any, fallback T) T {
	switch v := value.(type) {
	case nil:
		return fallback
	case T:
		return v
	case string:
		if strings.TrimSpace(v) == "" {
			return fallback
		}
		var out T
		if err := json.Unmarshal([]byte(v), &out); err != nil {
			slog.Warn("structured field decode failed", "error", err)
			return fallback
		}
		return out
	}

	raw, err := json.Marshal(normalizeYAML(value))
	if err != nil {
		slog.Warn("structured field encode failed", "error", err)
		return fallback
	}
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		slog.Warn("structured field convert failed", "error", err)
		return fallback
	}
	return out
}

// normalizeYAML rewrites map[any]any (yaml.v2-style) maps into
// map[string]any so they can be JSON-encoded.
func normalizeYAML(v any) any {
	switch t := v.(type) {
	case map[any]any:
		m := make(map[string]any, len(t))
		for k, val := range t {
			m[toKey(k)] = normalizeYAML(val)
		}
		return m
	case map[string]any:
		m := make(map[string]any, len(t))
		for k, val := range t {
			m[k] = normalizeYAML(val)
		}
		return m
	case Entry:
		return normalizeYAML(map[string]any(t))
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = normalizeYAML(val)
		}
		return out
	}
	return v
}

func toKey(k any) string {
	if s, ok := k.(string); ok {
		return s
	}
	b, _ := json.Marshal(k)
	return strings.Trim(string(b), `"`)
}

// SortByOrder stably sorts entries ascending by a numeric order field.
// Entries without the field keep their relative position after all
// ordered entries.
func SortByOrder(entries []Entry, key string) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, okA := entries[i].Float(key)
		b, okB := entries[j].Float(key)
		switch {
		case okA && okB:
			return a < b
		case okA:
			return true
		default:
			return false
		}
	})
}
