package cache

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/MHollmann/VendGuard/internal/pkg/env"
	"github.com/redis/go-redis/v9"
)

var (
	client *redis.Client
	ctx    = context.Background()
)

// SetupCache initializes the connection to the cache server
func SetupCache() {
	host := env.GetEnv("CACHE_HOST", "localhost")
	port := env.GetEnv("CACHE_PORT", "6379")

	client = redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", host, port),
		Password: "", // no password set
		DB:       0,  // use default DB
	})

	// Test the connection
	pong, err := client.Ping(ctx).Result()
	if err != nil {
		log.Printf("Warning: Could not connect to cache: %v", err)
	} else {
		log.Printf("Successfully connected to cache: %s", pong)
	}
}

// GetClient returns the Redis client instance
func GetClient() *redis.Client {
	if client == nil {
		SetupCache()
	}
	return client
}

// Set stores a value in the cache with the given key and expiration time
func Set(key string, value interface{}, expiration time.Duration) error {
	return GetClient().Set(ctx, key, value, expiration).Err()
}

// Get retrieves a value from the cache by key
func Get(key string) (string, error) {
	return GetClient().Get(ctx, key).Result()
}

// Delete removes a value from the cache by key
func Delete(key string) error {
	return GetClient().Del(ctx, key).Err()
}

// ComplianceDamper suppresses repeat compliance checks for a company
// within a bounded window, so a burst of login deliveries for the same
// vendor costs one gateway round trip instead of many.
type ComplianceDamper struct {
	client *redis.Client
}

// NewComplianceDamper creates a damper backed by the shared cache client.
func NewComplianceDamper(client *redis.Client) *ComplianceDamper {
	return &ComplianceDamper{client: client}
}

// MarkChecked records an evaluation for the company and reports whether
// this caller won the window. On cache errors it reports true: a failed
// damper must never suppress a compliance check.
func (d *ComplianceDamper) MarkChecked(companyID uint, window time.Duration) bool {
	key := fmt.Sprintf("compliance:checked:%d", companyID)
	ok, err := d.client.SetNX(ctx, key, time.Now().Unix(), window).Result()
	if err != nil {
		log.Printf("cache: damper write for company %d failed: %v", companyID, err)
		return true
	}
	return ok
}
