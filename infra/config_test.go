package infra

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewConfigDefaults(t *testing.T) {
	t.Setenv("ENVIRONMENT", "test")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("IBGE_STATE_CODE", "")
	t.Setenv("BACKEND_TIMEOUT_SECONDS", "abc")

	cfg := NewConfig()
	assert.Equal(t, ":8080", cfg.ServerPort)
	assert.Equal(t, 31, cfg.IbgeStateCode)
	assert.Equal(t, 30*time.Second, cfg.BackendTimeout)
}

func TestNewConfigReadsEnvironment(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("SERVER_PORT", ":9000")
	t.Setenv("LOG_DEBUG", "true")
	t.Setenv("IBGE_STATE_CODE", "35")
	t.Setenv("AWS_BUCKET_NAME", "snapshots")

	cfg := NewConfig()
	assert.Equal(t, ":9000", cfg.ServerPort)
	assert.True(t, cfg.LogDebug)
	assert.Equal(t, 35, cfg.IbgeStateCode)
	assert.Equal(t, "snapshots", cfg.AwsBucketName)
}
