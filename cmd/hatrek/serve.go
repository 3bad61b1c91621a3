// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"hatrek/internal/assistant"
	"hatrek/internal/cache"
	"hatrek/internal/config"
	"hatrek/internal/content"
	"hatrek/internal/contentstack"
	"hatrek/internal/database"
	"hatrek/internal/handlers"
	"hatrek/internal/middleware"
	"hatrek/internal/render"
	"hatrek/internal/router"
	"hatrek/internal/store"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the web server",
		Long: `Run the web server until SIGINT or SIGTERM.

Valkey (VALKEY_HOST) enables the page cache and a conversation lock shared
between instances. PostgreSQL (DATABASE_URL) enables the assistant chat log.
Both are optional.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg)
		},
	}
}

func serve(ctx context.Context, cfg *config.Config) error {
	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"region", cfg.Contentstack.Region,
		"valkey", cfg.ValkeyEnabled(),
		"database", cfg.DatabaseEnabled(),
		"trust_proxy", cfg.TrustProxy,
	)

	defaults, err := content.LoadDefaults()
	if err != nil {
		return fmt.Errorf("loading default content: %w", err)
	}
	svc := content.NewService(contentstack.New(cfg.Contentstack), defaults)

	renderer, err := render.New()
	if err != nil {
		return fmt.Errorf("initializing template renderer: %w", err)
	}

	var (
		pages    handlers.PageStore
		guard    assistant.Guard
		recorder assistant.Recorder
	)

	if cfg.ValkeyEnabled() {
		client, err := cache.ConnectValkey(ctx, cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
		if err != nil {
			return err
		}
		defer client.Close()
		pages = cache.NewPageCache(client, cfg.PageCacheTTL)
		guard = cache.NewConversationLock(client, cfg.ConversationLockTTL())
		slog.Info("valkey connected", "host", cfg.ValkeyHost)
	}

	if cfg.DatabaseEnabled() {
		db, err := database.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer db.Close()
		if err := database.Migrate(ctx, db); err != nil {
			return err
		}
		recorder = store.NewChatLogStore(db)
		slog.Info("chat log enabled")
	}

	footer := svc.Layout(ctx).Footer.Settings
	asst := assistant.NewService(
		assistant.New(assistant.Config{
			URL:             cfg.AssistantURL,
			AuthHeaderKey:   cfg.AssistantAuthHeaderKey,
			AuthHeaderValue: cfg.AssistantAuthHeaderValue,
			Timeout:         cfg.AssistantTimeout,
		}),
		guard, recorder,
		assistant.Contact{Phone: footer.Phone, Email: footer.Email},
	)

	limiter := middleware.NewRateLimiter(cfg.AssistantRateLimit, time.Minute)
	defer limiter.Stop()

	warm := svc.WarmCatalog(ctx)
	defer warm.Close()

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router.New(handlers.NewPublic(svc, renderer, pages), handlers.NewAPI(svc, asst), limiter, cfg.TrustProxy),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: cfg.AssistantTimeout + 30*time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
		slog.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	slog.Info("server stopped gracefully")
	return nil
}
