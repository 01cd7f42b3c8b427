package services

import (
	"context"
	"testing"
	"time"

	"github.com/textplane/langdetect/app/models"
)

func TestMemoryCacheServiceSetGet(t *testing.T) {
	c := NewMemoryCacheService()
	ctx := context.Background()
	result := &models.DetectionResult{Fingerprint: "abc", ProfileVariant: "default"}

	if err := c.Set(ctx, result, time.Minute); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, ok := c.Get(ctx, "abc")
	if !ok {
		t.Fatal("expected a cache hit")
	}
	if got.Fingerprint != "abc" {
		t.Errorf("Fingerprint = %q, want %q", got.Fingerprint, "abc")
	}
	stats := c.GetStats()
	if stats.Hits != 1 || stats.Misses != 0 {
		t.Errorf("stats = %+v, want 1 hit 0 misses", stats)
	}
}

func TestMemoryCacheServiceExpiresEntries(t *testing.T) {
	c := NewMemoryCacheService()
	ctx := context.Background()
	result := &models.DetectionResult{Fingerprint: "abc"}
	if err := c.Set(ctx, result, -time.Second); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := c.Get(ctx, "abc"); ok {
		t.Error("expected an already-expired entry to miss")
	}
}

func TestMemoryCacheServiceInvalidateByProfileVersion(t *testing.T) {
	c := NewMemoryCacheService()
	ctx := context.Background()
	c.Set(ctx, &models.DetectionResult{Fingerprint: "a", ProfileVariant: "default"}, time.Minute)
	c.Set(ctx, &models.DetectionResult{Fingerprint: "b", ProfileVariant: "merged-average"}, time.Minute)

	if err := c.InvalidateByProfileVersion(ctx, "default"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := c.Get(ctx, "a"); ok {
		t.Error("expected entry under the invalidated variant to be gone")
	}
	if _, ok := c.Get(ctx, "b"); !ok {
		t.Error("expected entry under a different variant to survive")
	}
}
