// Command api runs the language detection HTTP service: it loads
// configuration, connects to Mongo and Redis, builds the detection
// engine from its profile store, and serves the gin router.
package main

import (
	"context"
	"log"
	"regexp"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"
	mongooptions "go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/textplane/langdetect/app/config"
	"github.com/textplane/langdetect/app/controllers"
	"github.com/textplane/langdetect/app/services"
	"github.com/textplane/langdetect/internal/detect"
	"github.com/textplane/langdetect/internal/profile"
	"github.com/textplane/langdetect/routes"
)

func main() {
	configPath := bootstrapViper()
	if err := config.Load(configPath); err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger := initLogger(config.C.LogLevel)
	defer logger.Sync()

	profilesDir := config.C.ProfilesDir + "/" + config.C.Detection.ProfileVariant
	profiles, err := profile.LoadDir(profilesDir, config.C.Detection.Languages)
	if err != nil {
		logger.Fatal("loading profiles", zap.Error(err))
	}
	store, err := profile.NewProfileStore(profiles)
	if err != nil {
		logger.Fatal("building profile store", zap.Error(err))
	}

	settings := detectionSettingsFrom(config.C.Detection)
	detector := detect.New(store, settings, 0)

	cache := buildCache(logger)
	detectionService := services.NewDetectionService(detector, cache, logger, config.C.Detection.ProfileVariant, settings.Hash())
	adminService := services.NewProfileAdminService(logger, cache, config.C.ProfilesDir, detector, config.C.Detection.ProfileVariant)
	adminService.OnReload(detectionService.UpdateEngineConfig)

	workerCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()
	services.RunWorkerPool(workerCtx, detectionService, logger, 4)

	if config.C.Server.Mode != "" {
		gin.SetMode(config.C.Server.Mode)
	}
	engine := gin.Default()
	routes.Setup(engine,
		controllers.NewDetectController(detectionService, logger),
		controllers.NewAdminController(adminService),
	)

	port := config.C.Server.Port
	if port == "" {
		port = "8080"
	}
	logger.Info("starting language detection service", zap.String("port", port))
	if err := engine.Run(":" + port); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}

func bootstrapViper() string {
	viper.SetDefault("config_path", "config.yaml")
	viper.SetEnvPrefix("LANGDETECT")
	viper.AutomaticEnv()
	return viper.GetString("config_path")
}

func initLogger(level string) *zap.Logger {
	var cfg zap.Config
	switch level {
	case "debug":
		cfg = zap.NewDevelopmentConfig()
	default:
		cfg = zap.NewProductionConfig()
	}
	logger, err := cfg.Build()
	if err != nil {
		log.Fatalf("building logger: %v", err)
	}
	return logger
}

func detectionSettingsFrom(d config.DetectionSettings) detect.Settings {
	settings := detect.DefaultSettings()
	if d.NumberOfTrials > 0 {
		settings.NumberOfTrials = d.NumberOfTrials
	}
	if d.Alpha > 0 {
		settings.Alpha = d.Alpha
	}
	if d.AlphaWidth > 0 {
		settings.AlphaWidth = d.AlphaWidth
	}
	if d.IterationLimit > 0 {
		settings.IterationLimit = d.IterationLimit
	}
	if d.ProbThreshold > 0 {
		settings.ProbThreshold = d.ProbThreshold
	}
	if d.ConvThreshold > 0 {
		settings.ConvThreshold = d.ConvThreshold
	}
	if d.BaseFreq > 0 {
		settings.BaseFreq = d.BaseFreq
	}
	if d.Pattern != "" {
		settings.Pattern = regexp.MustCompile(d.Pattern)
	}
	settings.Max = d.Max
	settings.LanguageMap = d.Map
	return settings
}

// buildCache wires a Redis + Mongo hybrid cache when both are
// configured, falling back to an in-process cache otherwise — a
// missing cache dependency degrades performance, never correctness.
func buildCache(logger *zap.Logger) services.ICacheService {
	var fast, durable services.ICacheService

	if config.C.Redis.URL != "" {
		redisCache, err := services.NewRedisCacheService(config.C.Redis.URL)
		if err != nil {
			logger.Warn("redis cache unavailable, continuing without it", zap.Error(err))
		} else {
			fast = redisCache
		}
	}

	if config.C.Mongo.URI != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		client, err := mongo.Connect(ctx, mongooptions.Client().ApplyURI(config.C.Mongo.URI))
		if err != nil {
			logger.Warn("mongo cache unavailable, continuing without it", zap.Error(err))
		} else {
			db := client.Database(config.C.Mongo.Database)
			mongoCache, err := services.NewMongoCacheService(ctx, db, 10000)
			if err != nil {
				logger.Warn("mongo cache index setup failed, continuing without it", zap.Error(err))
			} else {
				durable = mongoCache
			}
		}
	}

	switch {
	case fast != nil && durable != nil:
		return services.NewHybridCacheService(fast, durable)
	case durable != nil:
		return durable
	case fast != nil:
		return fast
	default:
		return services.NewMemoryCacheService()
	}
}
