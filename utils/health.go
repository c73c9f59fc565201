package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthStatus is the latest reachability snapshot of the service's backing
// stores: mongo, the catalog cache and the wizard session cache.
type HealthStatus struct {
	Mongo        bool      `json:"mongo"`
	CacheRedis   bool      `json:"cacheRedis"`
	SessionRedis bool      `json:"sessionRedis"`
	CheckedAt    time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	mu            sync.RWMutex
)

// GetHealthStatus returns the latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	mu.RLock()
	defer mu.RUnlock()
	return currentHealth
}

// checkHealth pings each backing store once. Nil clients report unhealthy.
func checkHealth(ctx context.Context, cache, session *redis.Client, mongoClient *mongo.Client) HealthStatus {
	status := HealthStatus{CheckedAt: time.Now()}
	if cache != nil {
		status.CacheRedis = cache.Ping(ctx).Err() == nil
	}
	if session != nil {
		status.SessionRedis = session.Ping(ctx).Err() == nil
	}
	if mongoClient != nil {
		status.Mongo = mongoClient.Ping(ctx, nil) == nil
	}
	return status
}

// StartHealthMonitor checks the backing stores every minute and updates the
// in-memory snapshot served by the health endpoint.
func StartHealthMonitor(cache, session *redis.Client, mongoClient *mongo.Client) {
	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()

		for range ticker.C {
			status := checkHealth(context.Background(), cache, session, mongoClient)

			mu.Lock()
			currentHealth = status
			mu.Unlock()
		}
	}()
}
