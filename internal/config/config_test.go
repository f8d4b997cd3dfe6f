package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := FromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 10*1024*1024, cfg.Server.BodyLimit)
	assert.Equal(t, 10*time.Second, cfg.Export.SettleTimeout)
	assert.Equal(t, PolicyQueue, cfg.Export.BusyPolicy)
	assert.Equal(t, "resumes", cfg.Mongo.Collection)
	assert.Equal(t, 720*time.Hour, cfg.Redis.DraftTTL)
	assert.Equal(t, "gemini-1.5-flash", cfg.AI.GeminiModel)
	assert.Equal(t, 1.0, cfg.AI.RateLimit)
	assert.Equal(t, 5, cfg.AI.Burst)
	assert.Empty(t, cfg.Jobs.DatabaseURL)
}

func TestFromViper_Env(t *testing.T) {
	t.Setenv("EXPORT_BUSY_POLICY", "Reject")
	t.Setenv("EXPORT_SETTLE_TIMEOUT", "3s")
	t.Setenv("REDIS_ADDR", "localhost:6379")

	cfg, err := FromViper(viper.New())
	require.NoError(t, err)
	assert.Equal(t, PolicyReject, cfg.Export.BusyPolicy)
	assert.Equal(t, 3*time.Second, cfg.Export.SettleTimeout)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
}

func TestFromViper_Invalid(t *testing.T) {
	t.Run("policy", func(t *testing.T) {
		t.Setenv("EXPORT_BUSY_POLICY", "drop")
		_, err := FromViper(viper.New())
		assert.ErrorContains(t, err, "EXPORT_BUSY_POLICY")
	})
	t.Run("gemini without key", func(t *testing.T) {
		t.Setenv("AI_PROVIDER", "gemini")
		_, err := FromViper(viper.New())
		assert.ErrorContains(t, err, "GEMINI_API_KEY")
	})
	t.Run("negative rate", func(t *testing.T) {
		t.Setenv("AI_RATE_LIMIT_RPS", "-1")
		_, err := FromViper(viper.New())
		assert.ErrorContains(t, err, "AI_RATE_LIMIT_RPS")
	})
	t.Run("unknown provider", func(t *testing.T) {
		t.Setenv("AI_PROVIDER", "oracle")
		_, err := FromViper(viper.New())
		assert.Error(t, err)
	})
}
