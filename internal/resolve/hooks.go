// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package resolve

import (
	"context"
	"sync"

	"hatrek/internal/contentstack"
)

// Source is the part of the content client the resolvers depend on.
// *contentstack.Client satisfies it.
type Source interface {
	Configured() bool
	Entries(ctx context.Context, contentType string, opts contentstack.QueryOptions) []contentstack.Entry
	SingleEntry(ctx context.Context, contentType string) contentstack.Entry
	EntryByField(ctx context.Context, contentType, field, value string) contentstack.Entry
}

// EntriesFetcher returns the list fetch for a content type, or nil when
// the source is unconfigured. Only a non-empty list counts as usable.
func EntriesFetcher(src Source, contentType string, opts contentstack.QueryOptions) Fetcher[[]contentstack.Entry] {
	if !src.Configured() {
		return nil
	}
	return func(ctx context.Context) ([]contentstack.Entry, bool) {
		entries := src.Entries(ctx, contentType, opts)
		return entries, len(entries) > 0
	}
}

// SingleEntryFetcher returns the singleton fetch for a content type, or nil
// when the source is unconfigured.
func SingleEntryFetcher(src Source, contentType string) Fetcher[contentstack.Entry] {
	if !src.Configured() {
		return nil
	}
	return func(ctx context.Context) (contentstack.Entry, bool) {
		e := src.SingleEntry(ctx, contentType)
		return e, e != nil
	}
}

// EntryByFieldFetcher returns the lookup fetch, or nil when value is empty
// or the source is unconfigured (checked in that order).
func EntryByFieldFetcher(src Source, contentType, field, value string) Fetcher[contentstack.Entry] {
	if value == "" {
		return nil
	}
	if !src.Configured() {
		return nil
	}
	return func(ctx context.Context) (contentstack.Entry, bool) {
		e := src.EntryByField(ctx, contentType, field, value)
		return e, e != nil
	}
}

// Entries resolves a list synchronously.
func Entries(ctx context.Context, src Source, contentType string, fallback []contentstack.Entry, opts contentstack.QueryOptions) Result[[]contentstack.Entry] {
	return Run(ctx, EntriesFetcher(src, contentType, opts), fallback)
}

// SingleEntry resolves a singleton synchronously.
func SingleEntry(ctx context.Context, src Source, contentType string, fallback contentstack.Entry) Result[contentstack.Entry] {
	return Run(ctx, SingleEntryFetcher(src, contentType), fallback)
}

// EntryByField resolves a field lookup synchronously.
func EntryByField(ctx context.Context, src Source, contentType, field, value string, fallback contentstack.Entry) Result[contentstack.Entry] {
	return Run(ctx, EntryByFieldFetcher(src, contentType, field, value), fallback)
}

// UseEntries creates a list hook. Call Start to begin resolving.
func UseEntries(src Source, contentType string, fallback []contentstack.Entry, opts contentstack.QueryOptions, hookOpts ...Option) *Hook[[]contentstack.Entry] {
	return NewHook(EntriesFetcher(src, contentType, opts), fallback, hookOpts...)
}

// UseSingleEntry creates a singleton hook.
func UseSingleEntry(src Source, contentType string, fallback contentstack.Entry, hookOpts ...Option) *Hook[contentstack.Entry] {
	return NewHook(SingleEntryFetcher(src, contentType), fallback, hookOpts...)
}

// FieldHook is a field-lookup hook whose lookup value can change, e.g.
// when a route parameter becomes available.
type FieldHook struct {
	*Hook[contentstack.Entry]

	src         Source
	contentType string
	field       string

	mu    sync.Mutex
	value string
}

// UseEntryByField creates a field-lookup hook.
func UseEntryByField(src Source, contentType, field, value string, fallback contentstack.Entry, hookOpts ...Option) *FieldHook {
	return &FieldHook{
		Hook:        NewHook(EntryByFieldFetcher(src, contentType, field, value), fallback, hookOpts...),
		src:         src,
		contentType: contentType,
		field:       field,
		value:       value,
	}
}

// Value returns the current lookup value.
func (f *FieldHook) Value() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.value
}

// SetValue re-runs the whole resolution when value differs from the
// current one.
func (f *FieldHook) SetValue(ctx context.Context, value string) {
	f.mu.Lock()
	if value == f.value {
		f.mu.Unlock()
		return
	}
	f.value = value
	f.mu.Unlock()
	f.Reset(ctx, EntryByFieldFetcher(f.src, f.contentType, f.field, value))
}
