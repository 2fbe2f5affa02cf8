package database

import (
	"context"
	"strconv"
	"testing"

	"github.com/Phuti24/Singleton-Payment-API/internal/pkg/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRedisClient(t *testing.T) {
	mr := miniredis.RunT(t)
	port, err := strconv.Atoi(mr.Port())
	require.NoError(t, err)

	client, err := NewRedisClient(models.RedisConfig{
		Host:     mr.Host(),
		Port:     port,
		PoolSize: 2,
	})
	require.NoError(t, err)
	defer client.Close()

	require.NotNil(t, client.GetClient())
	assert.NoError(t, client.Ping(context.Background()))

	require.NoError(t, client.GetClient().Set(context.Background(), "rate:limit:/x:1.2.3.4", 1, 0).Err())
	mr.CheckGet(t, "rate:limit:/x:1.2.3.4", "1")
}

func TestNewRedisClient_ConnectionError(t *testing.T) {
	mr := miniredis.RunT(t)
	port, err := strconv.Atoi(mr.Port())
	require.NoError(t, err)
	mr.Close()

	client, err := NewRedisClient(models.RedisConfig{Host: "127.0.0.1", Port: port})

	assert.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "failed to connect to redis")
}
