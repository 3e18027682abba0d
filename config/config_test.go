package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("GD_TEST_STRING", "value")
	t.Setenv("GD_TEST_INT", "12")
	t.Setenv("GD_TEST_BAD_INT", "twelve")
	t.Setenv("GD_TEST_DURATION", "90m")
	t.Setenv("GD_TEST_BAD_DURATION", "-1h")

	assert.Equal(t, "value", getEnv("GD_TEST_STRING", "fallback"))
	assert.Equal(t, "fallback", getEnv("GD_TEST_MISSING", "fallback"))

	assert.Equal(t, 12, getEnvInt("GD_TEST_INT", 3))
	assert.Equal(t, 3, getEnvInt("GD_TEST_BAD_INT", 3))
	assert.Equal(t, 3, getEnvInt("GD_TEST_MISSING", 3))

	assert.Equal(t, 90*time.Minute, getEnvDuration("GD_TEST_DURATION", time.Hour))
	assert.Equal(t, time.Hour, getEnvDuration("GD_TEST_BAD_DURATION", time.Hour))
	assert.Equal(t, time.Hour, getEnvDuration("GD_TEST_MISSING", time.Hour))
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("DB_DRIVER", "SQLITE")
	t.Setenv("SUMMARY_TTL", "")
	t.Setenv("APP_ENV", "Production")

	LoadConfig()
	t.Cleanup(func() { AppConfig = nil })

	assert.Equal(t, "sqlite", AppConfig.DBDriver)
	assert.Equal(t, 48*time.Hour, AppConfig.SummaryTTL)
	assert.Equal(t, "@every 1h", AppConfig.SummaryCleanupSpec)
	assert.True(t, AppConfig.IsProduction())
}
