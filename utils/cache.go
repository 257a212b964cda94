package utils

import (
	"context"
	"fmt"
	"log"
	"time"

	"carebook/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CacheClient is the generic cache client (slot lists, sessions).
	CacheClient *redis.Client
	// AuthCacheClient is the dedicated client for authorization caching.
	AuthCacheClient *redis.Client
)

const (
	// AuthCachePrefix namespaces token hashes in the auth cache DB.
	AuthCachePrefix = "auth:"
	// SlotCachePrefix namespaces computed slot lists in the generic cache DB.
	SlotCachePrefix = "slots:"
	// SlotCacheTTL keeps slot snapshots short-lived; a booking invalidates
	// them anyway, the TTL only bounds staleness across instances.
	SlotCacheTTL = 30 * time.Second
)

// InitRedis initializes both redis clients.
func InitRedis() {
	InitCache()
	InitAuthCache()
}

// InitCache initializes the generic Redis cache client.
func InitCache() {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := CacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Cache): %v", err)
	}
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}

// InitAuthCache initializes the Redis client for authorization caching.
func InitAuthCache() {
	AuthCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisAuthDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := AuthCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Auth Cache): %v", err)
	}
}

// GetAuthCacheClient returns the Redis client for authorization caching.
func GetAuthCacheClient() *redis.Client {
	if AuthCacheClient == nil {
		InitAuthCache()
	}
	return AuthCacheClient
}

// SlotCacheKey builds the cache key for one provider's slot list on one date.
func SlotCacheKey(providerID, date string) string {
	return fmt.Sprintf("%s%s:%s", SlotCachePrefix, providerID, date)
}

// InvalidateSlotCache drops the cached slot list for a provider+date. Called
// after every appointment write so readers never see a stale "available" flag
// beyond the snapshot they already hold.
func InvalidateSlotCache(ctx context.Context, providerID, date string) {
	if CacheClient == nil {
		return
	}
	if err := CacheClient.Del(ctx, SlotCacheKey(providerID, date)).Err(); err != nil {
		GetLogger().Sugar().Warnf("failed to invalidate slot cache for %s/%s: %v", providerID, date, err)
	}
}
