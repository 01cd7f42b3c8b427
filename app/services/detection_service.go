package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/textplane/langdetect/app/models"
	"github.com/textplane/langdetect/helpers/utils"
	"github.com/textplane/langdetect/internal/detect"
)

const defaultCacheTTL = 24 * time.Hour

// defaultQueueCapacity bounds how many pending batch texts the service
// will buffer before SubmitBatch blocks; the worker pool is expected
// to be draining continuously, so this only matters for a burst.
const defaultQueueCapacity = 4096

// BatchTask is one unit of work handed to the worker pool: a single
// text within a batch job, identified by its position so the result
// can be reassembled in request order.
type BatchTask struct {
	JobID string
	Index int
	Text  string
}

// Engine is the subset of detect.Detector / internal/variant.Detector
// that DetectionService depends on, so it can run against the base
// detector or any of its experimental wrappers interchangeably.
type Engine interface {
	DetectAll(text string) ([]detect.LanguageResult, error)
}

// DetectionService is the service-layer entrypoint: it fingerprints
// incoming text, checks the cache, falls through to the detection
// engine on a miss, and tracks batch jobs in an in-memory jobs map.
type DetectionService struct {
	engine Engine
	cache  ICacheService
	logger *zap.Logger

	cfgMu          sync.RWMutex
	profileVariant string
	settingsHash   string

	mu      sync.Mutex
	jobs    map[string]*models.BatchJob
	results map[string][]models.BatchJobResult
	queue   chan BatchTask
}

func NewDetectionService(engine Engine, cache ICacheService, logger *zap.Logger, profileVariant, settingsHash string) *DetectionService {
	return &DetectionService{
		engine:         engine,
		cache:          cache,
		logger:         logger,
		profileVariant: profileVariant,
		settingsHash:   settingsHash,
		jobs:           make(map[string]*models.BatchJob),
		results:        make(map[string][]models.BatchJobResult),
		queue:          make(chan BatchTask, defaultQueueCapacity),
	}
}

// UpdateEngineConfig records the profile variant and settings hash
// currently backing the engine. ProfileAdminService calls this after
// every successful Reload so cache keys for the old configuration stop
// matching, instead of silently serving results computed under
// different settings.
func (s *DetectionService) UpdateEngineConfig(profileVariant, settingsHash string) {
	s.cfgMu.Lock()
	s.profileVariant = profileVariant
	s.settingsHash = settingsHash
	s.cfgMu.Unlock()
}

func (s *DetectionService) currentConfig() (string, string) {
	s.cfgMu.RLock()
	defer s.cfgMu.RUnlock()
	return s.profileVariant, s.settingsHash
}

// Fingerprint derives the cache key for a piece of text: the raw text
// combined with the profile variant and a hash of the active detection
// settings, so that reloading a different profile variant or changing
// a setting like number_of_trials or alpha invalidates old entries
// instead of serving stale rankings for identical text.
func Fingerprint(text, profileVariant, settingsHash string) string {
	sum := sha256.Sum256([]byte(text + "\x00" + profileVariant + "\x00" + settingsHash))
	return hex.EncodeToString(sum[:])
}

// Detect runs a single detection, checking the cache first and
// writing the result back into it on a miss.
func (s *DetectionService) Detect(ctx context.Context, text string) ([]models.LanguageResult, bool, error) {
	profileVariant, settingsHash := s.currentConfig()
	fingerprint := Fingerprint(text, profileVariant, settingsHash)

	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx, fingerprint); ok {
			return cached.Languages, true, nil
		}
	}

	languages, err := s.engine.DetectAll(text)
	if err != nil {
		s.logger.Error("detection failed", zap.Error(err), zap.String("fingerprint", fingerprint))
		return nil, false, err
	}

	converted := toModelResults(languages)
	if s.cache != nil {
		result := &models.DetectionResult{
			Fingerprint:    fingerprint,
			Languages:      converted,
			ProfileVariant: profileVariant,
			CreatedAt:      time.Now(),
			LastAccessed:   time.Now(),
		}
		if err := s.cache.Set(ctx, result, defaultCacheTTL); err != nil {
			// A degraded cache tier should never fail the request —
			// it only means the next identical call misses too.
			s.logger.Warn("cache write failed", zap.Error(err))
		}
	}
	return converted, false, nil
}

// SubmitBatch registers a new batch job and hands texts off to the
// in-process worker pool (see RunWorkerPool), returning the job ID
// immediately.
func (s *DetectionService) SubmitBatch(texts []string) string {
	jobID := utils.GenerateUUID()
	s.mu.Lock()
	s.jobs[jobID] = &models.BatchJob{
		ID:         jobID,
		Status:     models.JobPending,
		TotalTexts: len(texts),
		CreatedAt:  time.Now(),
	}
	s.mu.Unlock()
	for i, text := range texts {
		s.queue <- BatchTask{JobID: jobID, Index: i, Text: text}
	}
	return jobID
}

// Dequeue blocks until a batch task is available or ctx is canceled.
func (s *DetectionService) Dequeue(ctx context.Context) (BatchTask, bool) {
	select {
	case task := <-s.queue:
		return task, true
	case <-ctx.Done():
		return BatchTask{}, false
	}
}

// RecordBatchResult stores one text's outcome within a batch job and
// advances the job's progress counters.
func (s *DetectionService) RecordBatchResult(jobID string, result models.BatchJobResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.jobs[jobID]
	if !ok {
		return
	}
	s.results[jobID] = append(s.results[jobID], result)
	if result.Error != "" {
		job.Failed++
	} else {
		job.Completed++
	}
	if job.Completed+job.Failed >= job.TotalTexts {
		job.Status = models.JobCompleted
		job.CompletedAt = time.Now()
	} else {
		job.Status = models.JobRunning
	}
}

// JobStatus returns a batch job's current progress, or false if the ID
// is unknown.
func (s *DetectionService) JobStatus(jobID string) (*models.BatchJob, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.jobs[jobID]
	return job, ok
}

// JobResults returns the per-text results recorded so far for a batch
// job, ordered by their position in the original request.
func (s *DetectionService) JobResults(jobID string) ([]models.BatchJobResult, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	results, ok := s.results[jobID]
	if !ok {
		return nil, false
	}
	ordered := make([]models.BatchJobResult, len(results))
	copy(ordered, results)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Index < ordered[j].Index })
	return ordered, true
}

func toModelResults(languages []detect.LanguageResult) []models.LanguageResult {
	out := make([]models.LanguageResult, len(languages))
	for i, l := range languages {
		out[i] = models.LanguageResult{Code: l.Code, Probability: l.Probability}
	}
	return out
}
