package store

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"hatrek/internal/models"
)

func TestChatLogRecord(t *testing.T) {
	db := testDB(t)
	s := NewChatLogStore(db)
	ctx := context.Background()

	conv := "test-" + uuid.NewString()
	t.Cleanup(func() { cleanConversations(db, conv) })

	ex := &models.ChatExchange{
		ConversationID: conv,
		Query:          "best winter trek?",
		Response:       "<p>Kedarkantha</p>",
		DurationMs:     420,
	}
	if err := s.Record(ctx, ex); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if ex.ID == uuid.Nil || ex.CreatedAt.IsZero() {
		t.Errorf("Record did not fill ID/CreatedAt: %+v", ex)
	}

	got, err := s.Conversation(ctx, conv)
	if err != nil {
		t.Fatalf("Conversation: %v", err)
	}
	if len(got) != 1 || got[0].Query != ex.Query || got[0].DurationMs != 420 {
		t.Errorf("Conversation = %+v", got)
	}
}

func TestChatLogConversationOrder(t *testing.T) {
	db := testDB(t)
	s := NewChatLogStore(db)
	ctx := context.Background()

	conv := "test-" + uuid.NewString()
	t.Cleanup(func() { cleanConversations(db, conv) })

	for _, q := range []string{"first", "second", "third"} {
		if err := s.Record(ctx, &models.ChatExchange{ConversationID: conv, Query: q, Response: "ok"}); err != nil {
			t.Fatalf("Record %s: %v", q, err)
		}
	}

	got, err := s.Conversation(ctx, conv)
	if err != nil {
		t.Fatalf("Conversation: %v", err)
	}
	if len(got) != 3 || got[0].Query != "first" || got[2].Query != "third" {
		t.Errorf("order = %+v", got)
	}
}

func TestChatLogUnknownConversation(t *testing.T) {
	s := NewChatLogStore(testDB(t))
	got, err := s.Conversation(context.Background(), "missing-"+uuid.NewString())
	if err != nil {
		t.Fatalf("Conversation: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %d exchanges, want 0", len(got))
	}
}

func TestChatLogRecentAndErrorRate(t *testing.T) {
	db := testDB(t)
	s := NewChatLogStore(db)
	ctx := context.Background()

	conv := "test-" + uuid.NewString()
	t.Cleanup(func() { cleanConversations(db, conv) })

	failedBefore, totalBefore, err := s.ErrorRate(ctx)
	if err != nil {
		t.Fatalf("ErrorRate: %v", err)
	}

	s.Record(ctx, &models.ChatExchange{ConversationID: conv, Query: "a", Response: "ok"})
	s.Record(ctx, &models.ChatExchange{ConversationID: conv, Query: "b", Response: "sorry", IsError: true})

	failed, total, err := s.ErrorRate(ctx)
	if err != nil {
		t.Fatalf("ErrorRate: %v", err)
	}
	if failed-failedBefore != 1 || total-totalBefore != 2 {
		t.Errorf("ErrorRate delta = %d/%d, want 1/2", failed-failedBefore, total-totalBefore)
	}

	recent, err := s.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(recent) != 2 {
		t.Errorf("Recent(2) = %d entries", len(recent))
	}
}
