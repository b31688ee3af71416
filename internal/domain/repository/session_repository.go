package repository

import (
	"context"
	"time"
)

// SessionRepository tracks issued access tokens so they can be revoked
type SessionRepository interface {
	Store(ctx context.Context, tokenID string, ttl time.Duration) error
	Exists(ctx context.Context, tokenID string) (bool, error)
	Revoke(ctx context.Context, tokenID string) error
}
