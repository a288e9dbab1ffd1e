// Package testutils provides shared fixtures and Redis helpers for tests
package testutils

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/vtm-builder/internal/redis"
)

// CreateTestRedisClient starts an in-memory Redis for the test and returns a
// client for it. Both are closed when the test ends.
func CreateTestRedisClient(t *testing.T) (redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)

	client, err := redis.NewClient(mr.Addr(), nil)
	require.NoError(t, err, "failed to create redis client")
	t.Cleanup(func() { _ = client.Close() })

	return client, mr
}

// CreateTestRedisClientWithData is CreateTestRedisClient with a hook to seed
// data before the client connects
func CreateTestRedisClientWithData(t *testing.T, setupFunc func(mr *miniredis.Miniredis)) (redis.Client, *miniredis.Miniredis) {
	t.Helper()

	client, mr := CreateTestRedisClient(t)
	if setupFunc != nil {
		setupFunc(mr)
	}
	return client, mr
}
