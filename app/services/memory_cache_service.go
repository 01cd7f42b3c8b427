package services

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/textplane/langdetect/app/models"
)

type memoryEntry struct {
	result    *models.DetectionResult
	expiresAt time.Time
}

// MemoryCacheService is a bare map+mutex+TTL cache, used in tests and
// as the bottom tier when neither Redis nor Mongo is configured.
type MemoryCacheService struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	hits    int64
	misses  int64
}

func NewMemoryCacheService() *MemoryCacheService {
	return &MemoryCacheService{entries: make(map[string]memoryEntry)}
}

func (c *MemoryCacheService) Get(_ context.Context, fingerprint string) (*models.DetectionResult, bool) {
	c.mu.RLock()
	e, ok := c.entries[fingerprint]
	c.mu.RUnlock()
	if !ok || time.Now().After(e.expiresAt) {
		atomic.AddInt64(&c.misses, 1)
		return nil, false
	}
	atomic.AddInt64(&c.hits, 1)
	return e.result, true
}

func (c *MemoryCacheService) Set(_ context.Context, result *models.DetectionResult, ttl time.Duration) error {
	c.mu.Lock()
	c.entries[result.Fingerprint] = memoryEntry{result: result, expiresAt: time.Now().Add(ttl)}
	c.mu.Unlock()
	return nil
}

func (c *MemoryCacheService) Delete(_ context.Context, fingerprint string) error {
	c.mu.Lock()
	delete(c.entries, fingerprint)
	c.mu.Unlock()
	return nil
}

func (c *MemoryCacheService) Clear(_ context.Context) error {
	c.mu.Lock()
	c.entries = make(map[string]memoryEntry)
	c.mu.Unlock()
	return nil
}

func (c *MemoryCacheService) InvalidateByProfileVersion(ctx context.Context, variant string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k, e := range c.entries {
		if e.result.ProfileVariant == variant {
			delete(c.entries, k)
		}
	}
	return nil
}

func (c *MemoryCacheService) GetStats() CacheStats {
	c.mu.RLock()
	size := len(c.entries)
	c.mu.RUnlock()
	return CacheStats{
		Hits:   atomic.LoadInt64(&c.hits),
		Misses: atomic.LoadInt64(&c.misses),
		Size:   size,
	}
}

func (c *MemoryCacheService) Close() error { return nil }
