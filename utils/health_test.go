package utils

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
)

func TestCheckHealthUnreachableStores(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	// Nothing listens on port 1; both pings must fail fast.
	opts := &redis.Options{Addr: "127.0.0.1:1", DialTimeout: 100 * time.Millisecond}
	cache := redis.NewClient(opts)
	session := redis.NewClient(opts)

	status := checkHealth(ctx, cache, session, nil)

	assert.False(t, status.CacheRedis)
	assert.False(t, status.SessionRedis)
	assert.False(t, status.Mongo, "a nil mongo client is unhealthy")
	assert.False(t, status.CheckedAt.IsZero())
}

func TestGetHealthStatusSnapshot(t *testing.T) {
	mu.Lock()
	currentHealth = HealthStatus{Mongo: true, CacheRedis: true, SessionRedis: false, CheckedAt: time.Now()}
	mu.Unlock()

	status := GetHealthStatus()
	assert.True(t, status.Mongo)
	assert.True(t, status.CacheRedis)
	assert.False(t, status.SessionRedis)
}
