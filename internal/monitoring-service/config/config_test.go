package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredPostgresEnv(t *testing.T) {
	t.Setenv("POSTGRES_HOST", "localhost")
	t.Setenv("POSTGRES_PORT", "5432")
	t.Setenv("POSTGRES_USER", "monitor")
	t.Setenv("POSTGRES_PASSWORD", "secret")
	t.Setenv("POSTGRES_DB", "monitoring")
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults applied", func(t *testing.T) {
		setRequiredPostgresEnv(t)

		cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
		require.NoError(t, err)

		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, 10, cfg.Server.ResultsDefaultLimit)
		assert.Equal(t, time.Second, cfg.Scheduler.TickPeriod)
		assert.Equal(t, 5*time.Second, cfg.Scheduler.RequestTimeout)
		assert.Equal(t, int64(1048576), cfg.Scheduler.MaxBodyBytes)
		assert.Equal(t, 16, cfg.Scheduler.WorkerCount)
		assert.Empty(t, cfg.Redis.Host)
		assert.Empty(t, cfg.Kafka.Brokers)
		assert.Empty(t, cfg.Elasticsearch.Addresses)
	})

	t.Run("overrides from environment", func(t *testing.T) {
		setRequiredPostgresEnv(t)
		t.Setenv("SCHEDULER_TICK_PERIOD", "500ms")
		t.Setenv("KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")
		t.Setenv("ELASTICSEARCH_ADDRESSES", "http://es:9200")

		cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
		require.NoError(t, err)

		assert.Equal(t, 500*time.Millisecond, cfg.Scheduler.TickPeriod)
		assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Kafka.Brokers)
		assert.Equal(t, []string{"http://es:9200"}, cfg.Elasticsearch.Addresses)
	})

	t.Run("missing postgres settings", func(t *testing.T) {
		t.Setenv("POSTGRES_HOST", "")
		t.Setenv("POSTGRES_PORT", "")
		t.Setenv("POSTGRES_USER", "")
		t.Setenv("POSTGRES_PASSWORD", "")
		t.Setenv("POSTGRES_DB", "")

		_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
		assert.Error(t, err)
	})
}

func TestSchedulerConfig_ClaimTTL(t *testing.T) {
	testCases := []struct {
		name     string
		cfg      SchedulerConfig
		expected time.Duration
	}{
		{
			name:     "configured ttl is long enough",
			cfg:      SchedulerConfig{LockTTL: 30 * time.Second, RequestTimeout: 5 * time.Second, StoreTimeout: 10 * time.Second},
			expected: 30 * time.Second,
		},
		{
			name:     "configured ttl shorter than one check",
			cfg:      SchedulerConfig{LockTTL: 5 * time.Second, RequestTimeout: 5 * time.Second, StoreTimeout: 10 * time.Second},
			expected: 16 * time.Second,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.cfg.ClaimTTL())
		})
	}
}
