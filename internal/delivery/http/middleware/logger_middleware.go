package middleware

import (
	"net/http"
	"runtime/debug"
	"time"

	"hospital-admin/pkg/response"

	"github.com/sirupsen/logrus"
)

type LoggerMiddleware struct {
	log *logrus.Logger
}

func NewLoggerMiddleware(log *logrus.Logger) *LoggerMiddleware {
	return &LoggerMiddleware{log: log}
}

// Handle logs every request once it has been served
func (m *LoggerMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := newStatusRecorder(w)

		next.ServeHTTP(rec, r)

		requestID, _ := GetRequestIDFromContext(r.Context())
		entry := m.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"client_ip":  r.RemoteAddr,
			"method":     r.Method,
			"path":       r.URL.RequestURI(),
			"status":     rec.status,
			"latency":    time.Since(start).String(),
			"user_agent": r.UserAgent(),
		})

		switch {
		case rec.status >= 500:
			entry.Error("Server error")
		case rec.status >= 400:
			entry.Warn("Client error")
		default:
			entry.Info("Request processed")
		}
	})
}

// Recover turns a handler panic into a 500 response
func (m *LoggerMiddleware) Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				requestID, _ := GetRequestIDFromContext(r.Context())
				m.log.WithFields(logrus.Fields{
					"error":      err,
					"stack":      string(debug.Stack()),
					"method":     r.Method,
					"path":       r.URL.Path,
					"request_id": requestID,
				}).Error("Request panic recovered")
				response.InternalServerError(w, "")
			}
		}()
		next.ServeHTTP(w, r)
	})
}
