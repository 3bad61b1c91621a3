package cache

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

// testValkeyClient returns a client on DB 15. Skips if Valkey is unavailable.
func testValkeyClient(t *testing.T) *redis.Client {
	t.Helper()

	client := redis.NewClient(&redis.Options{
		Addr:     envOr("VALKEY_HOST", "localhost") + ":" + envOr("VALKEY_PORT", "6379"),
		Password: os.Getenv("VALKEY_PASSWORD"),
		DB:       15,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("skipping integration test: Valkey not reachable: %v", err)
	}

	t.Cleanup(func() {
		keys, _ := client.Keys(ctx, "hatrek:*").Result()
		if len(keys) > 0 {
			client.Del(ctx, keys...)
		}
		client.Close()
	})
	return client
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func TestConnectValkey(t *testing.T) {
	client, err := ConnectValkey(context.Background(), envOr("VALKEY_HOST", "localhost"), envOr("VALKEY_PORT", "6379"), os.Getenv("VALKEY_PASSWORD"))
	if err != nil {
		t.Skipf("skipping: Valkey not available: %v", err)
	}
	defer client.Close()

	if pong, err := client.Ping(context.Background()).Result(); err != nil || pong != "PONG" {
		t.Errorf("Ping = %q, %v", pong, err)
	}
}

func TestConnectValkeyUnreachable(t *testing.T) {
	if _, err := ConnectValkey(context.Background(), "127.0.0.1", "1", ""); err == nil {
		t.Error("expected error for unreachable Valkey")
	}
}

func TestPageCacheSetGet(t *testing.T) {
	pc := NewPageCache(testValkeyClient(t), time.Minute)
	ctx := context.Background()

	if _, ok := pc.Get(ctx, "/treks/kedarkantha"); ok {
		t.Fatal("expected miss on empty cache")
	}
	pc.Set(ctx, "/treks/kedarkantha", []byte("<h1>Kedarkantha</h1>"))

	got, ok := pc.Get(ctx, "/treks/kedarkantha")
	if !ok || string(got) != "<h1>Kedarkantha</h1>" {
		t.Errorf("Get = %q, %v", got, ok)
	}
}

func TestPageCacheTTL(t *testing.T) {
	pc := NewPageCache(testValkeyClient(t), 100*time.Millisecond)
	ctx := context.Background()

	pc.Set(ctx, "/", []byte("home"))
	time.Sleep(250 * time.Millisecond)
	if _, ok := pc.Get(ctx, "/"); ok {
		t.Error("page still cached after TTL")
	}
}

func TestPageCacheFlush(t *testing.T) {
	client := testValkeyClient(t)
	pc := NewPageCache(client, time.Minute)
	ctx := context.Background()

	pc.Set(ctx, "/", []byte("home"))
	pc.Set(ctx, "/treks?region=Kashmir", []byte("list"))
	client.Set(ctx, "unrelated", "keep", time.Minute)
	defer client.Del(ctx, "unrelated")

	n, err := pc.Flush(ctx)
	if err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if n != 2 {
		t.Errorf("Flush deleted %d, want 2", n)
	}
	if _, ok := pc.Get(ctx, "/"); ok {
		t.Error("home still cached after flush")
	}
	if v, _ := client.Get(ctx, "unrelated").Result(); v != "keep" {
		t.Error("flush removed a key outside the page prefix")
	}
}

func TestConversationLock(t *testing.T) {
	lock := NewConversationLock(testValkeyClient(t), time.Minute)
	ctx := context.Background()

	release, ok, err := lock.Acquire(ctx, "conv-1")
	if err != nil || !ok {
		t.Fatalf("Acquire = %v, %v", ok, err)
	}
	if _, ok, _ := lock.Acquire(ctx, "conv-1"); ok {
		t.Error("second Acquire succeeded while held")
	}
	if rel, ok, _ := lock.Acquire(ctx, "conv-2"); !ok {
		t.Error("independent conversation blocked")
	} else {
		rel()
	}

	release()
	rel, ok, err := lock.Acquire(ctx, "conv-1")
	if err != nil || !ok {
		t.Fatalf("Acquire after release = %v, %v", ok, err)
	}
	rel()
}

func TestConversationLockExpires(t *testing.T) {
	lock := NewConversationLock(testValkeyClient(t), 100*time.Millisecond)
	ctx := context.Background()

	if _, ok, _ := lock.Acquire(ctx, "stuck"); !ok {
		t.Fatal("Acquire failed")
	}
	time.Sleep(250 * time.Millisecond)
	rel, ok, _ := lock.Acquire(ctx, "stuck")
	if !ok {
		t.Fatal("lock did not expire")
	}
	rel()
}

func TestConversationLockStaleReleaseKeepsNewHolder(t *testing.T) {
	client := testValkeyClient(t)
	lock := NewConversationLock(client, 100*time.Millisecond)
	ctx := context.Background()

	stale, ok, _ := lock.Acquire(ctx, "conv-3")
	if !ok {
		t.Fatal("Acquire failed")
	}
	time.Sleep(250 * time.Millisecond)

	current, ok, _ := lock.Acquire(ctx, "conv-3")
	if !ok {
		t.Fatal("Acquire after expiry failed")
	}
	defer current()

	stale()
	if _, ok, _ := lock.Acquire(ctx, "conv-3"); ok {
		t.Error("stale release removed the current holder's lock")
	}
}

func TestConversationLockConcurrent(t *testing.T) {
	lock := NewConversationLock(testValkeyClient(t), time.Minute)
	ctx := context.Background()

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		winners  int
		releases []func()
	)
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rel, ok, err := lock.Acquire(ctx, "race")
			if err != nil || !ok {
				return
			}
			mu.Lock()
			winners++
			releases = append(releases, rel)
			mu.Unlock()
		}()
	}
	wg.Wait()
	for _, rel := range releases {
		rel()
	}
	if winners != 1 {
		t.Errorf("winners = %d, want 1", winners)
	}
}
