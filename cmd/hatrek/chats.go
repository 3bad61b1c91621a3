// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"hatrek/internal/database"
	"hatrek/internal/models"
	"hatrek/internal/store"
)

func newChatsCmd() *cobra.Command {
	var (
		limit        int
		conversation string
	)

	cmd := &cobra.Command{
		Use:   "chats",
		Short: "Show recent assistant exchanges from the chat log",
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit < 1 {
				return fmt.Errorf("--limit must be at least 1, got %d", limit)
			}
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if !cfg.DatabaseEnabled() {
				return errors.New("DATABASE_URL is not set; the chat log is disabled")
			}
			ctx := cmd.Context()
			db, err := database.Connect(ctx, cfg.DatabaseURL)
			if err != nil {
				return err
			}
			defer db.Close()
			if err := database.Migrate(ctx, db); err != nil {
				return err
			}

			chats := store.NewChatLogStore(db)
			var exchanges []models.ChatExchange
			if conversation != "" {
				exchanges, err = chats.Conversation(ctx, conversation)
			} else {
				exchanges, err = chats.Recent(ctx, limit)
			}
			if err != nil {
				return err
			}
			failed, total, err := chats.ErrorRate(ctx)
			if err != nil {
				return err
			}
			return printExchanges(cmd.OutOrStdout(), exchanges, failed, total)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "Number of exchanges to show")
	cmd.Flags().StringVar(&conversation, "conversation", "", "Show one conversation in full")
	return cmd
}

func printExchanges(w io.Writer, exchanges []models.ChatExchange, failed, total int) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TIME\tCONVERSATION\tMS\tERROR\tQUERY")
	for _, ex := range exchanges {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%t\t%s\n",
			ex.CreatedAt.Format(time.DateTime), ex.ConversationID, ex.DurationMs, ex.IsError, oneLine(ex.Query, 60))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	rate := 0.0
	if total > 0 {
		rate = 100 * float64(failed) / float64(total)
	}
	_, err := fmt.Fprintf(w, "\n%d of %d exchanges failed (%.1f%%)\n", failed, total, rate)
	return err
}

// oneLine flattens s to a single line of at most n runes.
func oneLine(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	if r := []rune(s); len(r) > n {
		return string(r[:n-1]) + "…"
	}
	return s
}
