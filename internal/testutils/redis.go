// Package testutils provides shared helpers for repository and handler tests
package testutils

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/army-rater/internal/redis"
)

// CreateTestRedisClient starts a miniredis server and returns a client for
// it. The server is closed by t.Cleanup; the returned handle lets tests
// inspect keys or fast-forward TTLs.
func CreateTestRedisClient(t *testing.T) (redis.Client, *miniredis.Miniredis) {
	t.Helper()
	return CreateTestRedisClientWithSetup(t, nil)
}

// CreateTestRedisClientWithSetup is CreateTestRedisClient with a hook to seed
// raw keys before the client connects.
func CreateTestRedisClientWithSetup(t *testing.T, setup func(mr *miniredis.Miniredis)) (redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	if setup != nil {
		setup(mr)
	}

	client, err := redis.NewClient(mr.Addr(), nil)
	require.NoError(t, err, "failed to create redis client")
	t.Cleanup(func() {
		_ = client.Close()
	})

	return client, mr
}
