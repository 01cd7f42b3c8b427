package services

import (
	"context"
	"time"

	"github.com/textplane/langdetect/app/models"
)

// HybridCacheService layers a fast tier (Redis) in front of a durable
// tier (Mongo): Get checks fast first and repopulates it from durable
// on a miss; Set and the invalidation operations go to both so they
// never disagree for long.
type HybridCacheService struct {
	fast    ICacheService
	durable ICacheService
}

func NewHybridCacheService(fast, durable ICacheService) *HybridCacheService {
	return &HybridCacheService{fast: fast, durable: durable}
}

func (h *HybridCacheService) Get(ctx context.Context, fingerprint string) (*models.DetectionResult, bool) {
	if result, ok := h.fast.Get(ctx, fingerprint); ok {
		return result, true
	}
	result, ok := h.durable.Get(ctx, fingerprint)
	if !ok {
		return nil, false
	}
	_ = h.fast.Set(ctx, result, time.Hour)
	return result, true
}

func (h *HybridCacheService) Set(ctx context.Context, result *models.DetectionResult, ttl time.Duration) error {
	if err := h.durable.Set(ctx, result, ttl); err != nil {
		return err
	}
	return h.fast.Set(ctx, result, ttl)
}

func (h *HybridCacheService) Delete(ctx context.Context, fingerprint string) error {
	if err := h.durable.Delete(ctx, fingerprint); err != nil {
		return err
	}
	return h.fast.Delete(ctx, fingerprint)
}

func (h *HybridCacheService) Clear(ctx context.Context) error {
	if err := h.durable.Clear(ctx); err != nil {
		return err
	}
	return h.fast.Clear(ctx)
}

func (h *HybridCacheService) InvalidateByProfileVersion(ctx context.Context, variant string) error {
	if err := h.durable.InvalidateByProfileVersion(ctx, variant); err != nil {
		return err
	}
	return h.fast.InvalidateByProfileVersion(ctx, variant)
}

func (h *HybridCacheService) GetStats() CacheStats {
	fast := h.fast.GetStats()
	durable := h.durable.GetStats()
	return CacheStats{
		Hits:   fast.Hits + durable.Hits,
		Misses: fast.Misses + durable.Misses,
		Size:   fast.Size + durable.Size,
	}
}

func (h *HybridCacheService) Close() error {
	if err := h.fast.Close(); err != nil {
		return err
	}
	return h.durable.Close()
}
