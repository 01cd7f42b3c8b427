package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/textplane/langdetect/app/models"
	"github.com/textplane/langdetect/internal/detect"
)

type stubEngine struct {
	calls   int
	results []detect.LanguageResult
	err     error
}

func (s *stubEngine) DetectAll(text string) ([]detect.LanguageResult, error) {
	s.calls++
	return s.results, s.err
}

func TestDetectionServiceCachesAfterFirstMiss(t *testing.T) {
	engine := &stubEngine{results: []detect.LanguageResult{{Code: "en", Probability: 0.9}}}
	cache := NewMemoryCacheService()
	svc := NewDetectionService(engine, cache, zap.NewNop(), "default", "settings-hash-1")

	langs, cached, err := svc.Detect(context.Background(), "hello world")
	require.NoError(t, err)
	assert.False(t, cached)
	assert.Len(t, langs, 1)
	assert.Equal(t, "en", langs[0].Code)

	langs2, cached2, err := svc.Detect(context.Background(), "hello world")
	require.NoError(t, err)
	assert.True(t, cached2)
	assert.Equal(t, langs, langs2)
	assert.Equal(t, 1, engine.calls, "second call should be served from cache, not the engine")
}

func TestFingerprintChangesWithProfileVariantOrSettingsHash(t *testing.T) {
	base := Fingerprint("hello world", "default", "hash-a")
	assert.NotEqual(t, base, Fingerprint("hello world", "merged-average", "hash-a"),
		"switching profile variant must change the cache key")
	assert.NotEqual(t, base, Fingerprint("hello world", "default", "hash-b"),
		"changing the settings hash must change the cache key")
	assert.Equal(t, base, Fingerprint("hello world", "default", "hash-a"))
}

func TestDetectionServiceUpdateEngineConfigInvalidatesOldCacheEntries(t *testing.T) {
	engine := &stubEngine{results: []detect.LanguageResult{{Code: "en", Probability: 0.9}}}
	cache := NewMemoryCacheService()
	svc := NewDetectionService(engine, cache, zap.NewNop(), "default", "hash-a")

	_, cached, err := svc.Detect(context.Background(), "hello world")
	require.NoError(t, err)
	assert.False(t, cached)

	svc.UpdateEngineConfig("default", "hash-b")

	_, cached, err = svc.Detect(context.Background(), "hello world")
	require.NoError(t, err)
	assert.False(t, cached, "a settings change must miss the cache entry written under the old hash")
	assert.Equal(t, 2, engine.calls)
}

func TestDetectionServiceBatchJobLifecycle(t *testing.T) {
	engine := &stubEngine{}
	svc := NewDetectionService(engine, nil, zap.NewNop(), "default", "settings-hash-1")

	jobID := svc.SubmitBatch([]string{"a", "b"})
	status, ok := svc.JobStatus(jobID)
	require.True(t, ok)
	assert.Equal(t, 2, status.TotalTexts)
	assert.Equal(t, 0, status.Completed)

	svc.RecordBatchResult(jobID, models.BatchJobResult{Index: 0, Languages: []models.LanguageResult{{Code: "en", Probability: 0.9}}})
	svc.RecordBatchResult(jobID, models.BatchJobResult{Index: 1, Languages: []models.LanguageResult{{Code: "vi", Probability: 0.8}}})

	status, ok = svc.JobStatus(jobID)
	require.True(t, ok)
	assert.Equal(t, 2, status.Completed)
	results, ok := svc.JobResults(jobID)
	require.True(t, ok)
	assert.Len(t, results, 2)
}
