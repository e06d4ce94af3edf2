package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisClient_ConnectUnreachable(t *testing.T) {
	client := NewRedisClient("127.0.0.1:1", "", 0)
	t.Cleanup(func() { _ = client.Close() })

	err := client.Connect(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis ping failed")
}

func TestRedisClient_NilClient(t *testing.T) {
	var client RedisClient
	assert.Error(t, client.Ping(context.Background()))
	assert.NoError(t, client.Close())
}
