package utils

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"fieldserve/config"
)

var (
	// CacheClient is the generic cache client.
	CacheClient *redis.Client
	// SearchCacheClient holds short-lived candidate-search results.
	SearchCacheClient *redis.Client
)

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

// InitSearchCache initializes the Redis client for search result caching.
func InitSearchCache() {
	SearchCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := SearchCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Search Cache): %v", err)
	}
}

// GetSearchCacheClient returns the client for search result caching.
func GetSearchCacheClient() *redis.Client {
	if SearchCacheClient == nil {
		InitSearchCache()
	}
	return SearchCacheClient
}
