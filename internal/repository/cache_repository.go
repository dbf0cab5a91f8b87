package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"multipoles-backend/config"
	"multipoles-backend/internal/locale"
	"multipoles-backend/internal/util"
)

// CacheRepository keeps rendered public content listings in redis,
// keyed by section and locale. Admin writes invalidate the section.
type CacheRepository struct {
	client *config.RedisClient
	ttl    time.Duration
}

func NewCacheRepository(rdb *config.RedisClient, ttl time.Duration) *CacheRepository {
	return &CacheRepository{rdb, ttl}
}

func (r *CacheRepository) Get(ctx context.Context, section, loc string, dest any) (bool, error) {
	val, err := r.client.Client.Get(ctx, r.key(section, loc)).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	} else if err != nil {
		return false, util.LogError("[Cache] redis read failed", err)
	}

	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return false, util.LogError("[Cache] cached payload decoding failed", err)
	}
	return true, nil
}

func (r *CacheRepository) Set(ctx context.Context, section, loc string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return util.LogError("[Cache] payload encoding failed", err)
	}

	if err := r.client.Client.Set(ctx, r.key(section, loc), data, r.ttl).Err(); err != nil {
		return util.LogError("[Cache] redis write failed", err)
	}
	return nil
}

// Invalidate drops the section for every supported locale plus the
// unfiltered variant.
func (r *CacheRepository) Invalidate(ctx context.Context, section string) error {
	keys := []string{
		r.key(section, ""),
		r.key(section, locale.French),
		r.key(section, locale.English),
	}
	if err := r.client.Client.Del(ctx, keys...).Err(); err != nil {
		return util.LogError("[Cache] redis delete failed", err)
	}
	return nil
}

func (r *CacheRepository) key(section, loc string) string {
	return fmt.Sprintf("content:%s:%s", section, loc)
}
