package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	// Clear anything the host environment may carry.
	for _, key := range []string{
		"PORT", "NEO4J_URI", "NEO4J_USER", "NEO4J_DATABASE",
		"QUERY_TIMEOUT_SECONDS", "REDIS_ADDR", "STATS_CACHE_TTL_SECONDS", "APP_ENV",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "bolt://localhost:7687", cfg.Graph.URI)
	assert.Equal(t, "neo4j", cfg.Graph.Username)
	assert.Equal(t, "neo4j", cfg.Graph.Database)
	assert.Equal(t, 10*time.Second, cfg.Graph.QueryTimeout)
	assert.Empty(t, cfg.Cache.Addr)
	assert.Equal(t, 60*time.Second, cfg.Cache.StatsTTL)
	assert.Equal(t, "development", cfg.App.Environment)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("NEO4J_URI", "bolt://graph:7687")
	t.Setenv("NEO4J_PASSWORD", "secret")
	t.Setenv("QUERY_TIMEOUT_SECONDS", "3")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("STATS_CACHE_TTL_SECONDS", "120")
	t.Setenv("RATE_LIMIT_RPS", "12.5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, "bolt://graph:7687", cfg.Graph.URI)
	assert.Equal(t, "secret", cfg.Graph.Password)
	assert.Equal(t, 3*time.Second, cfg.Graph.QueryTimeout)
	assert.Equal(t, "localhost:6379", cfg.Cache.Addr)
	assert.Equal(t, 120*time.Second, cfg.Cache.StatsTTL)
	assert.Equal(t, 12.5, cfg.Server.RateLimitRPS)
}

func TestLoadIgnoresMalformedNumbers(t *testing.T) {
	t.Setenv("QUERY_TIMEOUT_SECONDS", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 10*time.Second, cfg.Graph.QueryTimeout)
}

func TestValidate(t *testing.T) {
	t.Run("rejects missing port", func(t *testing.T) {
		cfg := &Config{}
		assert.Error(t, cfg.Validate())
	})

	t.Run("rejects missing graph user", func(t *testing.T) {
		cfg := &Config{}
		cfg.Server.Port = "8080"
		cfg.Graph.URI = "bolt://localhost:7687"
		assert.Error(t, cfg.Validate())
	})

	t.Run("accepts a complete config", func(t *testing.T) {
		cfg := &Config{}
		cfg.Server.Port = "8080"
		cfg.Graph.URI = "bolt://localhost:7687"
		cfg.Graph.Username = "neo4j"
		cfg.Graph.QueryTimeout = time.Second
		assert.NoError(t, cfg.Validate())
	})
}
