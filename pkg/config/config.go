// pkg/config/config.go
package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/clapenergy/mailtrace-render-starter/pkg/detect"
	"github.com/clapenergy/mailtrace-render-starter/pkg/engine"
	"github.com/clapenergy/mailtrace-render-starter/pkg/match"
)

// Config represents the application configuration
type Config struct {
	// HTTP server
	Port           int
	MaxUploadBytes int64
	// Optional password gate; empty disables it. Read once at startup,
	// never consulted by the matching engine.
	Password   string
	SessionTTL time.Duration

	// Detection / scoring tunables
	DetectSampleSize int
	SynonymsFile     string
	Score            match.ScoreConfig

	// Logging
	LogLevel  string
	LogFormat string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	score := match.DefaultScoreConfig()
	score.UnitMismatchPenalty = getEnvAsInt("UNIT_MISMATCH_PENALTY", score.UnitMismatchPenalty)
	score.UnitMissingPenalty = getEnvAsInt("UNIT_MISSING_PENALTY", score.UnitMissingPenalty)
	score.AcceptThreshold = getEnvAsInt("ACCEPT_THRESHOLD", score.AcceptThreshold)

	cfg := &Config{
		Port:             getEnvAsInt("PORT", 8080),
		MaxUploadBytes:   int64(getEnvAsInt("MAX_UPLOAD_MB", 200)) * 1024 * 1024,
		Password:         getEnv("MAILTRACE_PASSWORD", ""),
		SessionTTL:       time.Duration(getEnvAsInt("SESSION_TTL_MINUTES", 30)) * time.Minute,
		DetectSampleSize: getEnvAsInt("DETECT_SAMPLE_SIZE", 20),
		SynonymsFile:     getEnv("SYNONYMS_FILE", ""),
		Score:            score,
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		LogFormat:        getEnv("LOG_FORMAT", "json"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// EngineConfig builds the engine configuration, loading synonym overrides
// when a file is configured.
func (c *Config) EngineConfig() (engine.Config, error) {
	ec := engine.DefaultConfig()
	ec.Detect.SampleSize = c.DetectSampleSize
	ec.Score = c.Score

	if c.SynonymsFile != "" {
		synonyms, err := detect.LoadSynonyms(c.SynonymsFile)
		if err != nil {
			return engine.Config{}, err
		}
		ec.Detect.Synonyms = synonyms
	}

	return ec, nil
}

// Validate ensures all required configuration is present and valid
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return errors.New("port must be between 1 and 65535")
	}

	if c.MaxUploadBytes <= 0 {
		return errors.New("max upload size must be positive")
	}

	if c.SessionTTL <= 0 {
		return errors.New("session TTL must be positive")
	}

	if c.DetectSampleSize <= 0 {
		return errors.New("detection sample size must be positive")
	}

	if c.Score.UnitMismatchPenalty < 0 || c.Score.UnitMissingPenalty < 0 {
		return errors.New("unit penalties cannot be negative")
	}

	if c.Score.AcceptThreshold < 0 || c.Score.AcceptThreshold > 100 {
		return errors.New("acceptance threshold must be between 0 and 100")
	}

	return nil
}

// Helper functions for environment variables
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
