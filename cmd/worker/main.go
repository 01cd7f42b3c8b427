// Command worker runs as a standalone process alongside the API
// service: on an interval, it re-loads the configured languages from
// the active profile variant directory, logs when the number of loaded
// profiles differs from the previous successful check, and warns when
// loading fails (for instance because a configured language's file is
// missing). File contents are not compared.
//
// It intentionally holds no connection to the API process's in-memory
// batch queue — that queue lives inside a single process by design
// (see app/services.RunWorkerPool, started from cmd/api) — this
// binary's job is profile-directory hygiene, not request processing.
package main

import (
	"context"
	"log"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/textplane/langdetect/app/config"
	"github.com/textplane/langdetect/internal/profile"
)

func main() {
	viper.SetDefault("config_path", "config.yaml")
	viper.SetEnvPrefix("LANGDETECT")
	viper.AutomaticEnv()
	configPath := viper.GetString("config_path")

	if err := config.Load(configPath); err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapCfg := zap.NewProductionConfig()
	if config.C.LogLevel == "debug" {
		zapCfg = zap.NewDevelopmentConfig()
	}
	logger, err := zapCfg.Build()
	if err != nil {
		log.Fatalf("building logger: %v", err)
	}
	defer logger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger.Info("profile watcher started", zap.String("variant", config.C.Detection.ProfileVariant))
	watch(ctx, logger)
}

func watch(ctx context.Context, logger *zap.Logger) {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	lastCount := -1
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			dir := config.C.ProfilesDir + "/" + config.C.Detection.ProfileVariant
			profiles, err := profile.LoadDir(dir, config.C.Detection.Languages)
			if err != nil {
				logger.Warn("profile refresh check failed", zap.Error(err))
				continue
			}
			if len(profiles) != lastCount {
				logger.Info("profile set changed since last check",
					zap.Int("previous_count", lastCount),
					zap.Int("current_count", len(profiles)))
				lastCount = len(profiles)
			}
		}
	}
}
