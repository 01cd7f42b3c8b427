// Package services wires the core detection engine to the ambient
// stack: caching, persistence, batch job tracking, and admin
// operations.
package services

import (
	"context"
	"time"

	"github.com/textplane/langdetect/app/models"
)

// CacheStats reports hit/miss counters for a cache tier.
type CacheStats struct {
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
	Size   int   `json:"size"`
}

// ICacheService is the interface every cache tier (and their blend)
// satisfies, keyed by the text fingerprint a DetectionService computes
// once per request.
type ICacheService interface {
	Get(ctx context.Context, fingerprint string) (*models.DetectionResult, bool)
	Set(ctx context.Context, result *models.DetectionResult, ttl time.Duration) error
	Delete(ctx context.Context, fingerprint string) error
	Clear(ctx context.Context) error
	InvalidateByProfileVersion(ctx context.Context, variant string) error
	GetStats() CacheStats
	Close() error
}
