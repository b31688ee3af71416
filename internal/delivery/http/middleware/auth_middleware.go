package middleware

import (
	"context"
	"net/http"
	"strings"

	"hospital-admin/internal/domain/repository"
	"hospital-admin/pkg/jwt"
	"hospital-admin/pkg/requestctx"
	"hospital-admin/pkg/response"

	"github.com/google/uuid"
)

type AuthMiddleware struct {
	jwtService  *jwt.JWTService
	sessionRepo repository.SessionRepository
}

func NewAuthMiddleware(jwtService *jwt.JWTService, sessionRepo repository.SessionRepository) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService:  jwtService,
		sessionRepo: sessionRepo,
	}
}

func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Unauthorized(w, "Authorization header is required")
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(w, "Invalid authorization header format")
			return
		}

		claims, err := m.jwtService.ValidateToken(parts[1])
		if err != nil {
			response.Unauthorized(w, "Invalid or expired token")
			return
		}

		if claims.TokenType != jwt.AccessToken {
			response.Unauthorized(w, "Invalid token type")
			return
		}

		// Logout revokes the session, so a valid signature alone is not enough
		exists, err := m.sessionRepo.Exists(r.Context(), claims.TokenID)
		if err != nil {
			response.InternalServerError(w, "Failed to validate token")
			return
		}
		if !exists {
			response.Unauthorized(w, "Token has been revoked")
			return
		}

		ctx := requestctx.WithIdentity(r.Context(), requestctx.Identity{
			UserID:  claims.UserID,
			Email:   claims.Email,
			Role:    claims.Role,
			TokenID: claims.TokenID,
		})

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserIDFromContext extracts user ID from context
func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	return requestctx.UserID(ctx)
}

// GetUserEmailFromContext extracts user email from context
func GetUserEmailFromContext(ctx context.Context) (string, bool) {
	return requestctx.Email(ctx)
}

// GetTokenIDFromContext extracts token ID from context
func GetTokenIDFromContext(ctx context.Context) (string, bool) {
	return requestctx.TokenID(ctx)
}

// GetRoleFromContext extracts the role claim from context
func GetRoleFromContext(ctx context.Context) (string, bool) {
	return requestctx.Role(ctx)
}

// GetRequestIDFromContext extracts the request ID set by RequestID
func GetRequestIDFromContext(ctx context.Context) (string, bool) {
	return requestctx.RequestID(ctx)
}
