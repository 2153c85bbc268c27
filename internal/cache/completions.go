// Package cache is a Redis-backed completion cache used by the serving
// layer. Identical prompts with identical parameters against the same
// provider and endpoint reuse the stored completion instead of hitting
// the remote service.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "modelbridge:completion:"

// Completions stores single completions keyed by the full request
// identity.
type Completions struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCompletions wraps an established Redis client.
func NewCompletions(client *redis.Client, ttl time.Duration) *Completions {
	return &Completions{client: client, ttl: ttl}
}

// Key derives a stable cache key from the request identity. Parameter
// maps serialize with sorted keys under encoding/json, so equal maps
// yield equal keys.
func Key(provider, endpointID, prompt string, params map[string]any) string {
	payload, _ := json.Marshal(struct {
		Provider string         `json:"provider"`
		Endpoint string         `json:"endpoint"`
		Prompt   string         `json:"prompt"`
		Params   map[string]any `json:"params"`
	}{provider, endpointID, prompt, params})

	sum := sha256.Sum256(payload)
	return keyPrefix + hex.EncodeToString(sum[:])
}

// Get returns the cached completion and whether it was present.
func (c *Completions) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := c.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

// Put stores a completion under key with the configured TTL.
func (c *Completions) Put(ctx context.Context, key string, completion string) error {
	return c.client.Set(ctx, key, completion, c.ttl).Err()
}
