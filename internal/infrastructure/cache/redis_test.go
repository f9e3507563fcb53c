package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campus/internal/shared/config"
	"campus/internal/shared/logger"
)

func TestNewRedisClient_Disabled(t *testing.T) {
	client, err := NewRedisClient(context.Background(), config.RedisConfig{Enabled: false}, logger.NewNopLogger())
	require.NoError(t, err)
	assert.Nil(t, client)
}

func TestNewRedisClient_Unreachable(t *testing.T) {
	cfg := config.RedisConfig{Enabled: true, Host: "127.0.0.1", Port: 1}
	client, err := NewRedisClient(context.Background(), cfg, logger.NewNopLogger())
	assert.Error(t, err)
	assert.Nil(t, client)
}
