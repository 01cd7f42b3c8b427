package services

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/textplane/langdetect/app/apperr"
	"github.com/textplane/langdetect/internal/detect"
	"github.com/textplane/langdetect/internal/profile"
)

// SystemStats is a snapshot of the running detection engine for the
// admin surface.
type SystemStats struct {
	Languages      []string  `json:"languages"`
	ProfileVariant string    `json:"profile_variant"`
	CacheStats     CacheStats `json:"cache_stats"`
}

// ProfileAdminService owns the live *detect.Detector pointer and
// allows it to be swapped for a freshly loaded one — reloading
// profiles from disk without restarting the process.
type ProfileAdminService struct {
	logger      *zap.Logger
	cache       ICacheService
	profilesDir string

	mu       sync.RWMutex
	detector *detect.Detector
	variant  string

	reloads  int64
	onReload func(profileVariant, settingsHash string)
}

func NewProfileAdminService(logger *zap.Logger, cache ICacheService, profilesDir string, initial *detect.Detector, variant string) *ProfileAdminService {
	return &ProfileAdminService{
		logger:      logger,
		cache:       cache,
		profilesDir: profilesDir,
		detector:    initial,
		variant:     variant,
	}
}

// OnReload registers a callback invoked after every successful Reload
// with the new profile variant and a hash of the settings the reload
// was built with — wired to DetectionService.UpdateEngineConfig so the
// result cache's key changes the moment the active configuration does.
func (s *ProfileAdminService) OnReload(fn func(profileVariant, settingsHash string)) {
	s.mu.Lock()
	s.onReload = fn
	s.mu.Unlock()
}

// Detector returns the currently active detector. Safe for concurrent
// use alongside Reload.
func (s *ProfileAdminService) Detector() *detect.Detector {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.detector
}

// Reload loads the named variant's profiles from disk, builds a new
// ProfileStore and Detector, and swaps it in atomically. Cached
// results under the previous variant are invalidated so stale
// detections never outlive the profile data that produced them.
func (s *ProfileAdminService) Reload(variant string, languages []string, settings detect.Settings, seed int64) error {
	dir := fmt.Sprintf("%s/%s", s.profilesDir, variant)
	profiles, err := profile.LoadDir(dir, languages)
	if err != nil {
		return apperr.WrapProfileError(err)
	}
	store, err := profile.NewProfileStore(profiles)
	if err != nil {
		return err
	}

	next := detect.New(store, settings, seed)

	s.mu.Lock()
	previous := s.variant
	s.detector = next
	s.variant = variant
	onReload := s.onReload
	s.mu.Unlock()

	atomic.AddInt64(&s.reloads, 1)
	if s.cache != nil && previous != "" {
		if err := s.cache.InvalidateByProfileVersion(context.Background(), previous); err != nil {
			s.logger.Warn("cache invalidation after reload failed", zap.Error(err))
		}
	}
	if onReload != nil {
		onReload(variant, settings.Hash())
	}
	s.logger.Info("profile reload complete", zap.String("variant", variant), zap.Int("languages", len(profiles)))
	return nil
}

// Stats returns a snapshot of the current engine and cache state.
func (s *ProfileAdminService) Stats() SystemStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stats := SystemStats{ProfileVariant: s.variant}
	if s.detector != nil {
		stats.Languages = s.detector.Store().Languages()
	}
	if s.cache != nil {
		stats.CacheStats = s.cache.GetStats()
	}
	return stats
}
