package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// ProofCache implements ports.ProofCache using Redis. It holds batch leaf
// sets so inclusion proofs can be rebuilt without touching PostgreSQL.
type ProofCache struct {
	client *goredis.Client
	prefix string
}

// NewProofCache creates a new Redis-backed proof cache.
func NewProofCache(client *goredis.Client) *ProofCache {
	return &ProofCache{
		client: client,
		prefix: "batchleaves:",
	}
}

// Get retrieves a cached leaf set by batch key.
// Returns nil, nil if the key does not exist.
func (c *ProofCache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis proof cache get: %w", err)
	}
	return val, nil
}

// Set stores a leaf set in the proof cache with TTL.
func (c *ProofCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := c.client.Set(ctx, c.prefix+key, value, ttl).Err()
	if err != nil {
		return fmt.Errorf("redis proof cache set: %w", err)
	}
	return nil
}
