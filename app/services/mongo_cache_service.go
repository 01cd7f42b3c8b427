package services

import (
	"context"
	"sync/atomic"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/textplane/langdetect/app/models"
)

// MongoCacheService combines an in-process LRU L1 with a Mongo-backed
// L2: an L1 hit returns immediately, an L1 miss falls through to
// Mongo and repopulates the LRU on the way back, and writes go to
// both tiers.
type MongoCacheService struct {
	collection *mongo.Collection
	l1         *lru.Cache[string, *models.DetectionResult]
	hits       int64
	misses     int64
}

// NewMongoCacheService creates the result collection's indexes
// (unique fingerprint, profile_variant, created_at, and a TTL index
// on expires_at so L2 entries expire the same way the Redis tier's
// keys do) and returns a MongoCacheService backed by it.
func NewMongoCacheService(ctx context.Context, db *mongo.Database, l1Size int) (*MongoCacheService, error) {
	collection := db.Collection("detection_results")
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "fingerprint", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "profile_variant", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: 1}}},
		{Keys: bson.D{{Key: "expires_at", Value: 1}}, Options: options.Index().SetExpireAfterSeconds(0)},
	}
	if _, err := collection.Indexes().CreateMany(ctx, indexes); err != nil {
		return nil, err
	}
	l1, err := lru.New[string, *models.DetectionResult](l1Size)
	if err != nil {
		return nil, err
	}
	return &MongoCacheService{collection: collection, l1: l1}, nil
}

func (c *MongoCacheService) Get(ctx context.Context, fingerprint string) (*models.DetectionResult, bool) {
	if result, ok := c.l1.Get(fingerprint); ok {
		atomic.AddInt64(&c.hits, 1)
		return result, true
	}

	var result models.DetectionResult
	err := c.collection.FindOne(ctx, bson.M{"fingerprint": fingerprint}).Decode(&result)
	if err != nil {
		atomic.AddInt64(&c.misses, 1)
		return nil, false
	}
	c.l1.Add(fingerprint, &result)
	atomic.AddInt64(&c.hits, 1)
	return &result, true
}

func (c *MongoCacheService) Set(ctx context.Context, result *models.DetectionResult, ttl time.Duration) error {
	result.ExpiresAt = time.Now().Add(ttl)
	c.l1.Add(result.Fingerprint, result)
	_, err := c.collection.ReplaceOne(
		ctx,
		bson.M{"fingerprint": result.Fingerprint},
		result,
		options.Replace().SetUpsert(true),
	)
	return err
}

func (c *MongoCacheService) Delete(ctx context.Context, fingerprint string) error {
	c.l1.Remove(fingerprint)
	_, err := c.collection.DeleteOne(ctx, bson.M{"fingerprint": fingerprint})
	return err
}

func (c *MongoCacheService) Clear(ctx context.Context) error {
	c.l1.Purge()
	_, err := c.collection.DeleteMany(ctx, bson.M{})
	return err
}

func (c *MongoCacheService) InvalidateByProfileVersion(ctx context.Context, variant string) error {
	c.l1.Purge()
	_, err := c.collection.DeleteMany(ctx, bson.M{"profile_variant": variant})
	return err
}

func (c *MongoCacheService) GetStats() CacheStats {
	return CacheStats{
		Hits:   atomic.LoadInt64(&c.hits),
		Misses: atomic.LoadInt64(&c.misses),
		Size:   c.l1.Len(),
	}
}

func (c *MongoCacheService) Close() error { return nil }
