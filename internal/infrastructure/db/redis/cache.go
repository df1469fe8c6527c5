package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/careconnect/appointment-system/internal/core/domain"
)

const directoryTTL = 30 * time.Second

// DirectoryCache caches role-filtered user listings in Redis.
// Key format: directory:<role>
type DirectoryCache struct {
	client *redis.Client
}

// NewDirectoryCache creates a DirectoryCache wrapping the given client.
func NewDirectoryCache(client *redis.Client) *DirectoryCache {
	return &DirectoryCache{client: client}
}

// Get returns the cached listing for a role, or (nil, nil) on a miss.
func (c *DirectoryCache) Get(ctx context.Context, role string) ([]*domain.User, error) {
	raw, err := c.client.Get(ctx, c.key(role)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("directory cache get: %w", err)
	}

	var users []*domain.User
	if err := json.Unmarshal(raw, &users); err != nil {
		return nil, fmt.Errorf("directory cache decode: %w", err)
	}
	return users, nil
}

// Set stores the listing for a role (expires after directoryTTL).
// Password hashes carry a json:"-" tag and are never serialized.
func (c *DirectoryCache) Set(ctx context.Context, role string, users []*domain.User) error {
	raw, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("directory cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(role), raw, directoryTTL).Err()
}

// Invalidate drops the cached listing for a role.
func (c *DirectoryCache) Invalidate(ctx context.Context, role string) error {
	return c.client.Del(ctx, c.key(role)).Err()
}

func (c *DirectoryCache) key(role string) string {
	return "directory:" + role
}
