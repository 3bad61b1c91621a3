// handler_test.go provides shared test infrastructure for the handler
// tests: an in-memory content source and a map-backed page store.
package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"

	"hatrek/internal/content"
	"hatrek/internal/contentstack"
	"hatrek/internal/render"
)

// stubSource is a configured content source holding only trek_detail
// entries. Every other content type falls back to the defaults.
type stubSource struct {
	treks []contentstack.Entry
}

func (s *stubSource) Configured() bool { return true }

func (s *stubSource) Entries(_ context.Context, contentType string, _ contentstack.QueryOptions) []contentstack.Entry {
	if contentType == content.TypeTrekDetail {
		return s.treks
	}
	return nil
}

func (s *stubSource) SingleEntry(context.Context, string) contentstack.Entry { return nil }

func (s *stubSource) EntryByField(_ context.Context, contentType, field, value string) contentstack.Entry {
	if contentType != content.TypeTrekDetail {
		return nil
	}
	for _, e := range s.treks {
		if e.String(field) == value {
			return e
		}
	}
	return nil
}

// cmsTrek is a trek that only exists in the CMS.
var cmsTrek = contentstack.Entry{
	"slug":              "sandakphu",
	"name":              "Sandakphu Phalut",
	"difficulty":        "Moderate",
	"duration":          "6 Days",
	"altitude":          "11,930 ft",
	"price":             14500,
	"rating":            4.7,
	"reviews_count":     640,
	"region":            "Sikkim",
	"best_months":       []any{"October", "November"},
	"short_description": "Walk the ridge facing four of the five highest peaks.",
}

// memPages is a PageStore backed by a map.
type memPages struct {
	mu    sync.Mutex
	pages map[string][]byte
	gets  int
}

func newMemPages() *memPages {
	return &memPages{pages: make(map[string][]byte)}
}

func (m *memPages) Get(_ context.Context, key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gets++
	p, ok := m.pages[key]
	return p, ok
}

func (m *memPages) Set(_ context.Context, key string, page []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pages[key] = page
}

func (m *memPages) has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.pages[key]
	return ok
}

func defaultContent() *content.Service {
	return content.NewService(contentstack.New(contentstack.Config{}), content.MustLoadDefaults())
}

func cmsContent() *content.Service {
	return content.NewService(&stubSource{treks: []contentstack.Entry{cmsTrek}}, content.MustLoadDefaults())
}

func testRenderer(t *testing.T) *render.Renderer {
	t.Helper()
	rn, err := render.New()
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}
	return rn
}

// serve routes a single request through chi so URL params resolve.
func serve(pattern string, h http.HandlerFunc, method, target string) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	r.MethodFunc(method, pattern, h)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}
