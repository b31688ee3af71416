package requestctx

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestWithIdentity(t *testing.T) {
	userID := uuid.New()
	ctx := WithIdentity(context.Background(), Identity{
		UserID:  userID,
		Email:   "admin@hospital.test",
		Role:    "admin",
		TokenID: "tok-1",
	})

	got, ok := UserID(ctx)
	assert.True(t, ok)
	assert.Equal(t, userID, got)

	email, _ := Email(ctx)
	role, _ := Role(ctx)
	tokenID, _ := TokenID(ctx)
	assert.Equal(t, "admin@hospital.test", email)
	assert.Equal(t, "admin", role)
	assert.Equal(t, "tok-1", tokenID)
}

func TestEmptyContext(t *testing.T) {
	ctx := context.Background()

	_, ok := UserID(ctx)
	assert.False(t, ok)
	_, ok = Role(ctx)
	assert.False(t, ok)
	_, ok = RequestID(ctx)
	assert.False(t, ok)

	rid, ok := RequestID(WithRequestID(ctx, "req-1"))
	assert.True(t, ok)
	assert.Equal(t, "req-1", rid)
}
