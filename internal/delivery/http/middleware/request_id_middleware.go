package middleware

import (
	"net/http"

	"hospital-admin/pkg/requestctx"

	"github.com/google/uuid"
)

const HeaderXRequestID = "X-Request-ID"

// RequestID reuses the caller's X-Request-ID or assigns a new one
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rid := r.Header.Get(HeaderXRequestID)
		if rid == "" {
			rid = uuid.New().String()
		}

		w.Header().Set(HeaderXRequestID, rid)
		ctx := requestctx.WithRequestID(r.Context(), rid)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
