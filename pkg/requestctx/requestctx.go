// Package requestctx carries per-request values (caller identity and request
// id) through context.Context without tying callers to the HTTP layer.
package requestctx

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const (
	userIDKey    contextKey = "user_id"
	userEmailKey contextKey = "user_email"
	roleKey      contextKey = "role"
	tokenIDKey   contextKey = "token_id"
	requestIDKey contextKey = "request_id"
)

// Identity is the authenticated caller as read from the access token
type Identity struct {
	UserID  uuid.UUID
	Email   string
	Role    string
	TokenID string
}

func WithIdentity(ctx context.Context, id Identity) context.Context {
	ctx = context.WithValue(ctx, userIDKey, id.UserID)
	ctx = context.WithValue(ctx, userEmailKey, id.Email)
	ctx = context.WithValue(ctx, roleKey, id.Role)
	return context.WithValue(ctx, tokenIDKey, id.TokenID)
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

func UserID(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(userIDKey).(uuid.UUID)
	return userID, ok
}

func Email(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(userEmailKey).(string)
	return email, ok
}

func Role(ctx context.Context) (string, bool) {
	role, ok := ctx.Value(roleKey).(string)
	return role, ok
}

func TokenID(ctx context.Context) (string, bool) {
	tokenID, ok := ctx.Value(tokenIDKey).(string)
	return tokenID, ok
}

func RequestID(ctx context.Context) (string, bool) {
	requestID, ok := ctx.Value(requestIDKey).(string)
	return requestID, ok
}
