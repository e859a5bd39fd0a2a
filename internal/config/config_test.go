package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Config_EnvironmentOverrideWorksCorrect(t *testing.T) {

	os.Setenv("MODE", "test")
	os.Setenv("LOG_LEVEL", "DEBUG")
	os.Setenv("API_PORT", "9999")
	os.Setenv("METRICS_PORT", "9998")
	os.Setenv("JWT_SECRET", "overrideSecret")
	os.Setenv("HH_MAX_REQUESTS_PER_SECOND", "2.5")
	os.Setenv("HH_CACHE_TTL_DAYS", "14")
	os.Setenv("DB_CONNECTION_STRING", "override.db")
	defer func() {
		for _, key := range []string{"MODE", "LOG_LEVEL", "API_PORT", "METRICS_PORT",
			"JWT_SECRET", "HH_MAX_REQUESTS_PER_SECOND", "HH_CACHE_TTL_DAYS", "DB_CONNECTION_STRING"} {
			os.Unsetenv(key)
		}
	}()

	cfg := Get()

	assert.Equal(t, LevelDebug, cfg.Logger.LogLevel)
	assert.Equal(t, 9999, cfg.API.Port)
	assert.Equal(t, 9998, cfg.API.MetricsPort)
	assert.Equal(t, "overrideSecret", cfg.API.JWTSecret)
	assert.Equal(t, float32(2.5), cfg.HH.MaxRequestsPerSecond)
	assert.Equal(t, 14, cfg.HH.CacheTTLInDays)
	assert.Equal(t, "override.db", cfg.DB.ConnectionString)
}
