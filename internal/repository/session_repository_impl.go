package repository

import (
	"context"
	"fmt"
	"time"

	domainRepo "hospital-admin/internal/domain/repository"

	gocache "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
)

func sessionKey(tokenID string) string {
	return fmt.Sprintf("access_token:%s", tokenID)
}

type redisSessionRepository struct {
	client *redis.Client
}

func NewRedisSessionRepository(client *redis.Client) domainRepo.SessionRepository {
	return &redisSessionRepository{client: client}
}

func (r *redisSessionRepository) Store(ctx context.Context, tokenID string, ttl time.Duration) error {
	return r.client.Set(ctx, sessionKey(tokenID), "1", ttl).Err()
}

func (r *redisSessionRepository) Exists(ctx context.Context, tokenID string) (bool, error) {
	n, err := r.client.Exists(ctx, sessionKey(tokenID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *redisSessionRepository) Revoke(ctx context.Context, tokenID string) error {
	return r.client.Del(ctx, sessionKey(tokenID)).Err()
}

type memorySessionRepository struct {
	cache *gocache.Cache
}

// NewMemorySessionRepository tracks sessions in an expiring in-process cache
func NewMemorySessionRepository(defaultTTL, cleanupInterval time.Duration) domainRepo.SessionRepository {
	return &memorySessionRepository{cache: gocache.New(defaultTTL, cleanupInterval)}
}

func (r *memorySessionRepository) Store(ctx context.Context, tokenID string, ttl time.Duration) error {
	r.cache.Set(sessionKey(tokenID), struct{}{}, ttl)
	return nil
}

func (r *memorySessionRepository) Exists(ctx context.Context, tokenID string) (bool, error) {
	_, found := r.cache.Get(sessionKey(tokenID))
	return found, nil
}

func (r *memorySessionRepository) Revoke(ctx context.Context, tokenID string) error {
	r.cache.Delete(sessionKey(tokenID))
	return nil
}
