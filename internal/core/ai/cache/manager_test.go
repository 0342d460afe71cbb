package cache

import (
	"context"
	"testing"
	"time"

	"fridge-planner/internal/infrastructure/config"
)

func newTestConfig(maxSize int, ttl time.Duration) *config.Config {
	return &config.Config{
		Cache: config.CacheConfig{
			Enabled:         true,
			MaxSize:         maxSize,
			TTL:             ttl,
			CleanupInterval: time.Minute,
		},
	}
}

func TestManagerDisabled(t *testing.T) {
	cfg := &config.Config{}
	if m := NewManager(cfg); m != nil {
		t.Error("NewManager() with cache disabled should return nil")
	}
}

func TestManagerSetAndGet(t *testing.T) {
	m := NewManager(newTestConfig(10, time.Hour))
	defer m.Close()

	ctx := context.Background()

	if err := m.Set(ctx, "献立を作って", "", "カレーです"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	got, err := m.Get(ctx, "献立を作って", "")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != "カレーです" {
		t.Errorf("Get() = %q, want カレーです", got)
	}

	// 未登録キーは未命中
	if _, err := m.Get(ctx, "別のプロンプト", ""); err == nil {
		t.Error("Get() with unknown key should return error")
	}
}

func TestManagerExpiration(t *testing.T) {
	m := NewManager(newTestConfig(10, 10*time.Millisecond))
	defer m.Close()

	ctx := context.Background()

	if err := m.Set(ctx, "prompt", "", "value"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	time.Sleep(20 * time.Millisecond)

	if _, err := m.Get(ctx, "prompt", ""); err == nil {
		t.Error("Get() after TTL should return error")
	}
}

func TestManagerImageKeySeparation(t *testing.T) {
	m := NewManager(newTestConfig(10, time.Hour))
	defer m.Close()

	ctx := context.Background()

	if err := m.Set(ctx, "prompt", "image-a", "応答A"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	// 同じプロンプトでも画像が違えば別キー
	if _, err := m.Get(ctx, "prompt", "image-b"); err == nil {
		t.Error("Get() with different image should miss")
	}

	got, err := m.Get(ctx, "prompt", "image-a")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != "応答A" {
		t.Errorf("Get() = %q, want 応答A", got)
	}
}

func TestManagerLRUEviction(t *testing.T) {
	m := NewManager(newTestConfig(2, time.Hour))
	defer m.Close()

	ctx := context.Background()

	if err := m.Set(ctx, "a", "", "1"); err != nil {
		t.Fatalf("Set(a) error = %v", err)
	}
	if err := m.Set(ctx, "b", "", "2"); err != nil {
		t.Fatalf("Set(b) error = %v", err)
	}

	// a にアクセスしてアクセス回数を増やす
	if _, err := m.Get(ctx, "a", ""); err != nil {
		t.Fatalf("Get(a) error = %v", err)
	}

	// 満杯なので b が淘汰されるはず
	if err := m.Set(ctx, "c", "", "3"); err != nil {
		t.Fatalf("Set(c) error = %v", err)
	}

	if _, err := m.Get(ctx, "b", ""); err == nil {
		t.Error("b should have been evicted")
	}
	if _, err := m.Get(ctx, "a", ""); err != nil {
		t.Error("a should survive eviction")
	}
	if _, err := m.Get(ctx, "c", ""); err != nil {
		t.Error("c should be present")
	}
}

func TestManagerStats(t *testing.T) {
	m := NewManager(newTestConfig(10, time.Hour))
	defer m.Close()

	ctx := context.Background()

	_ = m.Set(ctx, "a", "", "1")
	_, _ = m.Get(ctx, "a", "")
	_, _ = m.Get(ctx, "missing", "")

	stats := m.GetStats()
	if stats["hits"].(int64) != 1 {
		t.Errorf("hits = %v, want 1", stats["hits"])
	}
	if stats["misses"].(int64) != 1 {
		t.Errorf("misses = %v, want 1", stats["misses"])
	}
	if stats["size"].(int) != 1 {
		t.Errorf("size = %v, want 1", stats["size"])
	}
}
