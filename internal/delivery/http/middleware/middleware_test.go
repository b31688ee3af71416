package middleware

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hospital-admin/config"
	"hospital-admin/internal/domain/entity"
	"hospital-admin/internal/repository"
	"hospital-admin/pkg/jwt"
	"hospital-admin/pkg/requestctx"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestAuthMiddleware_Authenticate(t *testing.T) {
	jwtService := jwt.NewJWTService(config.JWTConfig{Secret: "test", AccessExpiry: time.Minute})
	sessions := repository.NewMemorySessionRepository(time.Minute, time.Minute)
	m := NewAuthMiddleware(jwtService, sessions)

	userID := uuid.New()
	token, tokenID, err := jwtService.GenerateAccessToken(userID, "admin@hospital.com", entity.RoleAdmin)
	require.NoError(t, err)

	var gotUser uuid.UUID
	var gotRole string
	protected := m.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser, _ = GetUserIDFromContext(r.Context())
		gotRole, _ = GetRoleFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	call := func(header string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusUnauthorized, call(""))
	assert.Equal(t, http.StatusUnauthorized, call("Token "+token))
	assert.Equal(t, http.StatusUnauthorized, call("Bearer not-a-jwt"))

	// signed but never stored
	assert.Equal(t, http.StatusUnauthorized, call("Bearer "+token))

	require.NoError(t, sessions.Store(context.Background(), tokenID, time.Minute))
	assert.Equal(t, http.StatusOK, call("Bearer "+token))
	assert.Equal(t, userID, gotUser)
	assert.Equal(t, entity.RoleAdmin, gotRole)

	require.NoError(t, sessions.Revoke(context.Background(), tokenID))
	assert.Equal(t, http.StatusUnauthorized, call("Bearer "+token))
}

func TestRequireRole(t *testing.T) {
	h := RequireAdmin(okHandler)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(requestctx.WithIdentity(req.Context(), requestctx.Identity{Role: "viewer"}))
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(requestctx.WithIdentity(req.Context(), requestctx.Identity{Role: entity.RoleAdmin}))
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequestID(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = GetRequestIDFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(HeaderXRequestID))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderXRequestID, "abc-123")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", seen)
}

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(RateLimiterConfig{Rate: rate.Every(time.Hour), Burst: 2})
	h := rl.Handle(okHandler)

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		codes = append(codes, rec.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestLoggerMiddleware(t *testing.T) {
	log, hook := test.NewNullLogger()
	m := NewLoggerMiddleware(log)

	notFound := m.Handle(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	notFound.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", nil))

	require.Len(t, hook.Entries, 1)
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	assert.Equal(t, http.StatusNotFound, hook.LastEntry().Data["status"])

	panicking := m.Recover(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))
	rec := httptest.NewRecorder()
	panicking.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
}

func TestMetricsMiddleware_LabelsByRouteTemplate(t *testing.T) {
	m := NewMetricsMiddleware()

	r := mux.NewRouter()
	r.HandleFunc("/doctors/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	r.Use(m.Handle)

	for _, id := range []string{"d1", "d2"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/doctors/"+id, nil))
	}

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)

	assert.Contains(t, string(body), `http_requests_total{method="GET",path="/doctors/{id}",status="404"} 2`)
	assert.Contains(t, string(body), `http_errors_total{method="GET",path="/doctors/{id}",status="404"} 2`)
	assert.NotContains(t, string(body), "/doctors/d1")
}

func TestRecover_PanicIsLoggedAndCountedAsServerError(t *testing.T) {
	log, hook := test.NewNullLogger()
	logger := NewLoggerMiddleware(log)
	metrics := NewMetricsMiddleware()

	r := mux.NewRouter()
	r.HandleFunc("/boom", func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})
	r.Use(logger.Handle)
	r.Use(metrics.Handle)
	r.Use(logger.Recover)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	require.Len(t, hook.Entries, 2)
	assert.Equal(t, "Request panic recovered", hook.Entries[0].Message)
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
	assert.Equal(t, http.StatusInternalServerError, hook.LastEntry().Data["status"])

	out := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(out, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body, err := io.ReadAll(out.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `http_errors_total{method="GET",path="/boom",status="500"} 1`)
}
