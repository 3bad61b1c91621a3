// Shared PostgreSQL helper for store integration tests. Tests skip when
// the database is not available.
package store

import (
	"context"
	"database/sql"
	"os"
	"testing"

	"hatrek/internal/database"
)

func testDSN() string {
	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "hatrek")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "hatrek")
	return "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB connects, migrates, and registers cleanup.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	ctx := context.Background()
	db, err := database.Connect(ctx, testDSN())
	if err != nil {
		t.Skipf("skipping integration test: %v", err)
	}
	if err := database.Migrate(ctx, db); err != nil {
		db.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	t.Cleanup(func() { db.Close() })
	return db
}

// cleanConversations removes test exchanges. Call in t.Cleanup().
func cleanConversations(db *sql.DB, ids ...string) {
	for _, id := range ids {
		db.Exec("DELETE FROM chat_exchanges WHERE conversation_id = $1", id)
	}
}
