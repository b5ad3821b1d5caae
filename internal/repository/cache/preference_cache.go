package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"neurolearn-be/pkg/preference"

	"github.com/redis/go-redis/v9"
)

const preferenceKeyPrefix = "neurolearn:preferences:"

// PreferenceCache is a read-through cache in front of the preference store.
// Get returns (nil, nil) on a miss.
type PreferenceCache interface {
	Get(ctx context.Context, userId string) (*preference.Profile, error)
	Set(ctx context.Context, profile preference.Profile) error
	Invalidate(ctx context.Context, userId string) error
}

type RedisPreferenceCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisPreferenceCache(rdb *redis.Client, ttl time.Duration) *RedisPreferenceCache {
	return &RedisPreferenceCache{
		rdb: rdb,
		ttl: ttl,
	}
}

func preferenceKey(userId string) string {
	return preferenceKeyPrefix + userId
}

func (c *RedisPreferenceCache) Get(ctx context.Context, userId string) (*preference.Profile, error) {
	raw, err := c.rdb.Get(ctx, preferenceKey(userId)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var profile preference.Profile
	if err := json.Unmarshal(raw, &profile); err != nil {
		// A corrupt entry is treated as a miss and dropped.
		_ = c.rdb.Del(ctx, preferenceKey(userId)).Err()
		return nil, nil
	}
	return &profile, nil
}

func (c *RedisPreferenceCache) Set(ctx context.Context, profile preference.Profile) error {
	raw, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, preferenceKey(profile.UserID), raw, c.ttl).Err()
}

func (c *RedisPreferenceCache) Invalidate(ctx context.Context, userId string) error {
	return c.rdb.Del(ctx, preferenceKey(userId)).Err()
}

// NopPreferenceCache is used when Redis is not reachable at startup.
type NopPreferenceCache struct{}

func (NopPreferenceCache) Get(context.Context, string) (*preference.Profile, error) { return nil, nil }
func (NopPreferenceCache) Set(context.Context, preference.Profile) error            { return nil }
func (NopPreferenceCache) Invalidate(context.Context, string) error                 { return nil }
