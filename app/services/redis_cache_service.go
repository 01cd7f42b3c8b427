package services

import (
	"context"
	"encoding/json"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/textplane/langdetect/app/models"
)

const redisKeyPrefix = "langdetect:"

// RedisCacheService stores detection results as JSON in Redis, keyed
// by the request's text fingerprint.
type RedisCacheService struct {
	client *redis.Client
	hits   int64
	misses int64
}

// NewRedisCacheService parses url (e.g. "redis://localhost:6379/0")
// and connects.
func NewRedisCacheService(url string) (*RedisCacheService, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return &RedisCacheService{client: redis.NewClient(opts)}, nil
}

func (c *RedisCacheService) key(fingerprint string) string {
	return redisKeyPrefix + fingerprint
}

func (c *RedisCacheService) Get(ctx context.Context, fingerprint string) (*models.DetectionResult, bool) {
	data, err := c.client.Get(ctx, c.key(fingerprint)).Bytes()
	if err != nil {
		atomic.AddInt64(&c.misses, 1)
		return nil, false
	}
	var result models.DetectionResult
	if err := json.Unmarshal(data, &result); err != nil {
		atomic.AddInt64(&c.misses, 1)
		return nil, false
	}
	atomic.AddInt64(&c.hits, 1)
	return &result, true
}

func (c *RedisCacheService) Set(ctx context.Context, result *models.DetectionResult, ttl time.Duration) error {
	data, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(result.Fingerprint), data, ttl).Err()
}

func (c *RedisCacheService) Delete(ctx context.Context, fingerprint string) error {
	return c.client.Del(ctx, c.key(fingerprint)).Err()
}

func (c *RedisCacheService) Clear(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, redisKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

// InvalidateByProfileVersion has no targeted Redis index to scan by
// variant, so it falls back to a full scan-and-filter, same cost
// profile as Clear but checking each entry's stored variant first.
func (c *RedisCacheService) InvalidateByProfileVersion(ctx context.Context, variant string) error {
	iter := c.client.Scan(ctx, 0, redisKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		data, err := c.client.Get(ctx, key).Bytes()
		if err != nil {
			continue
		}
		var result models.DetectionResult
		if err := json.Unmarshal(data, &result); err != nil {
			continue
		}
		if result.ProfileVariant == variant {
			if err := c.client.Del(ctx, key).Err(); err != nil {
				return err
			}
		}
	}
	return iter.Err()
}

func (c *RedisCacheService) GetStats() CacheStats {
	return CacheStats{
		Hits:   atomic.LoadInt64(&c.hits),
		Misses: atomic.LoadInt64(&c.misses),
	}
}

func (c *RedisCacheService) Close() error {
	return c.client.Close()
}
