// Package config loads the service's YAML settings file into a
// package-level Settings value: a flat struct tagged for yaml,
// populated by Load, with a handful of environment-variable overrides
// layered on top for the knobs operators most often need to flip
// without editing the checked-in file.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DetectionSettings mirrors the detection engine's own configuration
// surface one-for-one.
type DetectionSettings struct {
	Languages      []string          `yaml:"languages" json:"languages"`
	ProfileVariant string            `yaml:"profile_variant" json:"profile_variant"`
	NumberOfTrials int               `yaml:"number_of_trials" json:"number_of_trials"`
	Alpha          float64           `yaml:"alpha" json:"alpha"`
	AlphaWidth     float64           `yaml:"alpha_width" json:"alpha_width"`
	IterationLimit int               `yaml:"iteration_limit" json:"iteration_limit"`
	ProbThreshold  float64           `yaml:"prob_threshold" json:"prob_threshold"`
	ConvThreshold  float64           `yaml:"conv_threshold" json:"conv_threshold"`
	BaseFreq       float64           `yaml:"base_freq" json:"base_freq"`
	Pattern        string            `yaml:"pattern" json:"pattern"`
	Max            int               `yaml:"max" json:"max"`
	Map            map[string]string `yaml:"map" json:"map"`
}

// ServerSettings configures the HTTP listener.
type ServerSettings struct {
	Port         string `yaml:"port" json:"port"`
	Mode         string `yaml:"mode" json:"mode"` // gin.DebugMode / gin.ReleaseMode
	ReadTimeoutS int    `yaml:"read_timeout_seconds" json:"read_timeout_seconds"`
}

// MongoSettings configures the profile/result persistence tier.
type MongoSettings struct {
	URI      string `yaml:"uri" json:"uri"`
	Database string `yaml:"database" json:"database"`
}

// RedisSettings configures the L1 cache tier.
type RedisSettings struct {
	URL string `yaml:"url" json:"url"`
	TTL int    `yaml:"ttl_seconds" json:"ttl_seconds"`
}

// Settings is the full service configuration contract.
type Settings struct {
	ProfilesDir string            `yaml:"profiles_dir" json:"profiles_dir"`
	LogLevel    string            `yaml:"log_level" json:"log_level"`
	Detection   DetectionSettings `yaml:"detection" json:"detection"`
	Server      ServerSettings    `yaml:"server" json:"server"`
	Mongo       MongoSettings     `yaml:"mongo" json:"mongo"`
	Redis       RedisSettings     `yaml:"redis" json:"redis"`
}

// C is the process-wide settings value, populated by Load. The
// service entrypoints read it directly rather than threading it
// through every constructor.
var C Settings

// Load reads path as YAML into C, then layers a small set of
// environment overrides on top — the knobs operators change per
// deployment without touching the checked-in file.
func Load(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("langdetect: reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, &C); err != nil {
		return fmt.Errorf("langdetect: parsing config %s: %w", path, err)
	}
	applyEnvOverrides()
	return nil
}

func applyEnvOverrides() {
	if v := os.Getenv("LANGDETECT_PORT"); v != "" {
		C.Server.Port = v
	}
	if v := os.Getenv("LANGDETECT_MONGO_URI"); v != "" {
		C.Mongo.URI = v
	}
	if v := os.Getenv("LANGDETECT_REDIS_URL"); v != "" {
		C.Redis.URL = v
	}
	if v := os.Getenv("LANGDETECT_LOG_LEVEL"); v != "" {
		C.LogLevel = v
	}
}

// RequestTimeout is a 1.5s budget for a single /v1/detect call. No
// handler reads it; a detection request is never aborted on a timeout.
func RequestTimeout() time.Duration { return 1500 * time.Millisecond }
