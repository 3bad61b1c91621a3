// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store holds the PostgreSQL persistence for assistant exchanges.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"hatrek/internal/models"
)

// ChatLogStore records assistant exchanges.
type ChatLogStore struct {
	db *sql.DB
}

// NewChatLogStore creates a new ChatLogStore.
func NewChatLogStore(db *sql.DB) *ChatLogStore {
	return &ChatLogStore{db: db}
}

// Record inserts an exchange and fills in its ID and CreatedAt.
func (s *ChatLogStore) Record(ctx context.Context, ex *models.ChatExchange) error {
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO chat_exchanges (conversation_id, query, response, is_error, duration_ms)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, ex.ConversationID, ex.Query, ex.Response, ex.IsError, ex.DurationMs).Scan(&ex.ID, &ex.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert chat exchange: %w", err)
	}
	slog.Debug("chat exchange recorded", "id", ex.ID, "conversation_id", ex.ConversationID)
	return nil
}

// Conversation returns the exchanges of one conversation, oldest first.
func (s *ChatLogStore) Conversation(ctx context.Context, conversationID string) ([]models.ChatExchange, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, conversation_id, query, response, is_error, duration_ms, created_at
		FROM chat_exchanges
		WHERE conversation_id = $1
		ORDER BY created_at, id
	`, conversationID)
	if err != nil {
		return nil, fmt.Errorf("query conversation: %w", err)
	}
	return scanExchanges(rows)
}

// Recent returns the latest exchanges across all conversations.
func (s *ChatLogStore) Recent(ctx context.Context, limit int) ([]models.ChatExchange, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, conversation_id, query, response, is_error, duration_ms, created_at
		FROM chat_exchanges
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query recent exchanges: %w", err)
	}
	return scanExchanges(rows)
}

// ErrorRate returns how many exchanges failed out of the total.
func (s *ChatLogStore) ErrorRate(ctx context.Context) (failed, total int, err error) {
	err = s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FILTER (WHERE is_error), COUNT(*)
		FROM chat_exchanges
	`).Scan(&failed, &total)
	if err != nil {
		return 0, 0, fmt.Errorf("count exchanges: %w", err)
	}
	return failed, total, nil
}

func scanExchanges(rows *sql.Rows) ([]models.ChatExchange, error) {
	defer rows.Close()

	var out []models.ChatExchange
	for rows.Next() {
		var ex models.ChatExchange
		if err := rows.Scan(&ex.ID, &ex.ConversationID, &ex.Query, &ex.Response,
			&ex.IsError, &ex.DurationMs, &ex.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan chat exchange: %w", err)
		}
		out = append(out, ex)
	}
	return out, rows.Err()
}
