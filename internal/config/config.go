// Package config loads settings from the environment and an optional .env
// file.
package config

import (
	"fmt"
	"strings"
	"time"

	"resume-builder/internal/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Export slot policies.
const (
	PolicyQueue  = "queue"
	PolicyReject = "reject"
)

type Config struct {
	Server ServerConfig
	Log    logger.Config
	Export ExportConfig
	Jobs   JobsConfig
	Mongo  MongoConfig
	Redis  RedisConfig
	MinIO  MinIOConfig
	AI     AIConfig
}

type ServerConfig struct {
	Port         string
	BodyLimit    int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type ExportConfig struct {
	SettleTimeout time.Duration
	BusyPolicy    string
	ChromePath    string
	PreviewTTL    time.Duration
}

type JobsConfig struct {
	DatabaseURL string
}

type MongoConfig struct {
	URI        string
	Database   string
	Collection string
	Timeout    time.Duration
}

type RedisConfig struct {
	Addr      string
	Password  string
	DB        int
	KeyPrefix string
	DraftTTL  time.Duration
}

type MinIOConfig struct {
	Endpoint   string
	AccessKey  string
	SecretKey  string
	Bucket     string
	UseSSL     bool
	PresignTTL time.Duration
}

type AIConfig struct {
	Provider     string // "http", "gemini" or empty
	BaseURL      string
	GeminiAPIKey string
	GeminiModel  string
	// RateLimit is requests per second per client on /ai; 0 disables it.
	RateLimit float64
	Burst     int
}

// Load reads .env (when present) and the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromViper(viper.New())
}

// FromViper builds a Config from v, registering env bindings and defaults.
func FromViper(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("BODY_LIMIT_MB", 10)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("EXPORT_SETTLE_TIMEOUT", "10s")
	v.SetDefault("EXPORT_BUSY_POLICY", PolicyQueue)
	v.SetDefault("PREVIEW_TTL", "30m")
	v.SetDefault("MONGODB_DATABASE", "resume_builder")
	v.SetDefault("MONGODB_COLLECTION", "resumes")
	v.SetDefault("MONGODB_TIMEOUT", "10s")
	v.SetDefault("REDIS_KEY_PREFIX", "resume-builder:")
	v.SetDefault("DRAFT_TTL", "720h")
	v.SetDefault("MINIO_BUCKET", "exports")
	v.SetDefault("MINIO_PRESIGN_TTL", "15m")
	v.SetDefault("AI_BASE_URL", "http://ai-service:8080")
	v.SetDefault("GEMINI_MODEL", "gemini-1.5-flash")
	v.SetDefault("AI_RATE_LIMIT_RPS", 1)
	v.SetDefault("AI_RATE_LIMIT_BURST", 5)

	cfg := &Config{
		Server: ServerConfig{
			Port:         v.GetString("PORT"),
			BodyLimit:    v.GetInt("BODY_LIMIT_MB") * 1024 * 1024,
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 90 * time.Second,
		},
		Log: logger.Config{
			Level:        v.GetString("LOG_LEVEL"),
			Format:       v.GetString("LOG_FORMAT"),
			TimeFormat:   v.GetString("LOG_TIME_FORMAT"),
			ReportCaller: v.GetBool("LOG_CALLER"),
		},
		Export: ExportConfig{
			SettleTimeout: v.GetDuration("EXPORT_SETTLE_TIMEOUT"),
			BusyPolicy:    strings.ToLower(v.GetString("EXPORT_BUSY_POLICY")),
			ChromePath:    v.GetString("CHROME_PATH"),
			PreviewTTL:    v.GetDuration("PREVIEW_TTL"),
		},
		Jobs: JobsConfig{DatabaseURL: v.GetString("JOBS_DATABASE_URL")},
		Mongo: MongoConfig{
			URI:        v.GetString("MONGODB_URI"),
			Database:   v.GetString("MONGODB_DATABASE"),
			Collection: v.GetString("MONGODB_COLLECTION"),
			Timeout:    v.GetDuration("MONGODB_TIMEOUT"),
		},
		Redis: RedisConfig{
			Addr:      v.GetString("REDIS_ADDR"),
			Password:  v.GetString("REDIS_PASSWORD"),
			DB:        v.GetInt("REDIS_DB"),
			KeyPrefix: v.GetString("REDIS_KEY_PREFIX"),
			DraftTTL:  v.GetDuration("DRAFT_TTL"),
		},
		MinIO: MinIOConfig{
			Endpoint:   v.GetString("MINIO_ENDPOINT"),
			AccessKey:  v.GetString("MINIO_ACCESS_KEY"),
			SecretKey:  v.GetString("MINIO_SECRET_KEY"),
			Bucket:     v.GetString("MINIO_BUCKET"),
			UseSSL:     v.GetBool("MINIO_USE_SSL"),
			PresignTTL: v.GetDuration("MINIO_PRESIGN_TTL"),
		},
		AI: AIConfig{
			Provider:     strings.ToLower(v.GetString("AI_PROVIDER")),
			BaseURL:      v.GetString("AI_BASE_URL"),
			GeminiAPIKey: v.GetString("GEMINI_API_KEY"),
			GeminiModel:  v.GetString("GEMINI_MODEL"),
			RateLimit:    v.GetFloat64("AI_RATE_LIMIT_RPS"),
			Burst:        v.GetInt("AI_RATE_LIMIT_BURST"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Export.BusyPolicy {
	case PolicyQueue, PolicyReject:
	default:
		return fmt.Errorf("config: EXPORT_BUSY_POLICY must be %q or %q, got %q", PolicyQueue, PolicyReject, c.Export.BusyPolicy)
	}
	if c.Export.SettleTimeout <= 0 {
		return fmt.Errorf("config: EXPORT_SETTLE_TIMEOUT must be positive")
	}
	if c.AI.RateLimit < 0 {
		return fmt.Errorf("config: AI_RATE_LIMIT_RPS must not be negative")
	}
	switch c.AI.Provider {
	case "", "http":
	case "gemini":
		if c.AI.GeminiAPIKey == "" {
			return fmt.Errorf("config: GEMINI_API_KEY is required for the gemini provider")
		}
	default:
		return fmt.Errorf("config: unknown AI_PROVIDER %q", c.AI.Provider)
	}
	return nil
}
