// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package assistant

import (
	"context"
	"errors"
	"fmt"
	"html"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"hatrek/internal/models"
)

// ErrBusy is returned when the conversation already has a request in flight.
var ErrBusy = errors.New("assistant: conversation busy")

// Greeting is the assistant's opening message.
const Greeting = `<p>Hello! 👋 I'm your High Altitude Trekkers assistant. I can help you with:</p>
<ul>
<li>Finding the perfect trek for you</li>
<li>Trek details, itineraries &amp; pricing</li>
<li>Best time to visit</li>
<li>Fitness requirements</li>
<li>Booking queries</li>
</ul>
<p>How can I assist you today?</p>`

// Contact is where visitors are pointed when the assistant is unavailable.
type Contact struct {
	Phone string
	Email string
}

// Apology is the fragment shown in place of an answer.
func (c Contact) Apology() string {
	return fmt.Sprintf(`<p>I apologize, but I'm having trouble connecting right now. Please try again in a moment, or contact us directly:</p>
<p><strong>📞 Phone:</strong> %s</p>
<p><strong>📧 Email:</strong> %s</p>`, html.EscapeString(c.Phone), html.EscapeString(c.Email))
}

// Recorder persists exchanges. Recording is best-effort.
type Recorder interface {
	Record(ctx context.Context, ex *models.ChatExchange) error
}

// Reply is the answer to one visitor message.
type Reply struct {
	ConversationID string `json:"conversation_id"`
	HTML           string `json:"html"`
	IsError        bool   `json:"is_error"`
}

// Service answers visitor messages: one request per conversation at a
// time, with the apology fragment standing in for any upstream failure.
type Service struct {
	client   *Client
	guard    Guard
	recorder Recorder
	contact  Contact
}

// NewService wires the assistant. recorder may be nil.
func NewService(client *Client, guard Guard, recorder Recorder, contact Contact) *Service {
	if guard == nil {
		guard = NewMemoryGuard()
	}
	return &Service{client: client, guard: guard, recorder: recorder, contact: contact}
}

// Reply answers query. An empty conversationID starts a new conversation.
// The only errors are ErrEmptyQuery, ErrBusy and guard failures; upstream
// failures produce an error reply instead.
func (s *Service) Reply(ctx context.Context, query, conversationID string) (Reply, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return Reply{}, ErrEmptyQuery
	}
	if conversationID == "" {
		conversationID = uuid.NewString()
	}

	release, ok, err := s.guard.Acquire(ctx, conversationID)
	if err != nil {
		return Reply{}, fmt.Errorf("acquiring conversation: %w", err)
	}
	if !ok {
		return Reply{}, ErrBusy
	}
	defer release()

	start := time.Now()
	reply := Reply{ConversationID: conversationID}
	answer, err := s.client.Ask(ctx, query, conversationID)
	if err != nil {
		slog.Warn("assistant request failed", "conversation_id", conversationID, "error", err)
		reply.HTML = s.contact.Apology()
		reply.IsError = true
	} else {
		reply.HTML = answer
	}
	elapsed := time.Since(start)

	slog.Info("assistant reply",
		"conversation_id", conversationID,
		"is_error", reply.IsError,
		"duration_ms", elapsed.Milliseconds(),
	)
	s.record(ctx, query, reply, elapsed)
	return reply, nil
}

func (s *Service) record(ctx context.Context, query string, reply Reply, elapsed time.Duration) {
	if s.recorder == nil {
		return
	}
	ex := &models.ChatExchange{
		ConversationID: reply.ConversationID,
		Query:          query,
		Response:       reply.HTML,
		IsError:        reply.IsError,
		DurationMs:     int(elapsed.Milliseconds()),
	}
	if err := s.recorder.Record(context.WithoutCancel(ctx), ex); err != nil {
		slog.Warn("recording assistant exchange failed", "conversation_id", reply.ConversationID, "error", err)
	}
}
