// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hatrek/internal/assistant"
	"hatrek/internal/catalog"
	"hatrek/internal/content"
	"hatrek/internal/models"
)

// maxAssistantBody caps the assistant request body.
const maxAssistantBody = 16 << 10

// API groups the JSON endpoints.
type API struct {
	content   *content.Service
	assistant *assistant.Service
}

// NewAPI creates the JSON handler group.
func NewAPI(svc *content.Service, asst *assistant.Service) *API {
	return &API{content: svc, assistant: asst}
}

// catalogResponse is the body of GET /api/treks.
type catalogResponse struct {
	Treks    []models.TrekSummary `json:"treks"`
	Total    int                  `json:"total"`
	Criteria catalog.Criteria     `json:"criteria"`
	Sort     catalog.SortKey      `json:"sort"`
}

// Treks returns the filtered, sorted catalog.
func (a *API) Treks(w http.ResponseWriter, r *http.Request) {
	criteria, key := catalog.CriteriaFromQuery(r.URL.Query())
	criteria.Search = clipSearch(criteria.Search)

	all := a.content.Catalog(r.Context())
	writeJSON(w, http.StatusOK, catalogResponse{
		Treks:    catalog.FilterAndSort(all, criteria, key),
		Total:    len(all),
		Criteria: criteria,
		Sort:     key,
	})
}

// Trek returns one trek's full record.
func (a *API) Trek(w http.ResponseWriter, r *http.Request) {
	trek := a.content.Trek(r.Context(), chi.URLParam(r, "slug"))
	if trek == nil {
		writeError(w, http.StatusNotFound, "trek not found")
		return
	}
	writeJSON(w, http.StatusOK, trek)
}

// askRequest is the body of POST /api/assistant.
type askRequest struct {
	Query          string `json:"query"`
	ConversationID string `json:"conversation_id"`
}

// Ask forwards a visitor message to the assistant.
func (a *API) Ask(w http.ResponseWriter, r *http.Request) {
	if a.assistant == nil {
		writeError(w, http.StatusServiceUnavailable, "assistant unavailable")
		return
	}

	var req askRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxAssistantBody)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if msg := validateAsk(req.Query, req.ConversationID); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	reply, err := a.assistant.Reply(r.Context(), req.Query, req.ConversationID)
	switch {
	case errors.Is(err, assistant.ErrEmptyQuery):
		writeError(w, http.StatusBadRequest, "query is required")
	case errors.Is(err, assistant.ErrBusy):
		writeError(w, http.StatusConflict, "a reply to this conversation is still pending")
	case err != nil:
		slog.Error("assistant reply failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	default:
		writeJSON(w, http.StatusOK, reply)
	}
}

// Greeting returns the assistant's opening message.
func (a *API) Greeting(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"html": assistant.Greeting})
}

// NotFound answers unknown API routes.
func (a *API) NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, "not found")
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
