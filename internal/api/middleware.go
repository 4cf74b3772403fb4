package api

import (
	"context"
	"net/http"
	"time"

	apperrors "github.com/Tahmid447/Tahmid-English-Club/internal/errors"
	"github.com/Tahmid447/Tahmid-English-Club/internal/logger"
	"github.com/Tahmid447/Tahmid-English-Club/internal/models"
)

// responseWriter wraps http.ResponseWriter to capture the status code.
type responseWriter struct {
	http.ResponseWriter
	status int
	size   int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if rw.status == 0 {
		rw.status = http.StatusOK
	}
	n, err := rw.ResponseWriter.Write(b)
	rw.size += n
	return n, err
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log := logger.Default().WithPrefix("http")

		rw := &responseWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rw, r.WithContext(logger.NewContext(r.Context(), log)))

		log.Debug("%s %s -> %d (%s)", r.Method, r.URL.Path, rw.status, time.Since(start))
	})
}

func recoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.FromContext(r.Context()).Error("panic serving %s %s: %v", r.Method, r.URL.Path, rec)
				http.Error(w, "internal server error", http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

type contextKey string

const userContextKey contextKey = "user"

func userFromContext(ctx context.Context) (models.UserRecord, bool) {
	u, ok := ctx.Value(userContextKey).(models.UserRecord)
	return u, ok
}

// requireUser restores the persisted identity and rejects requests without
// one. Role-based authorization is left to the client's routing.
func (s *Server) requireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := s.Auth.CurrentUser(r.Context())
		if !ok {
			handleError(w, r, apperrors.NewAuthError("not signed in"))
			return
		}
		ctx := context.WithValue(r.Context(), userContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
