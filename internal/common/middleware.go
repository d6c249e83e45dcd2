package common

import (
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// AuthMiddleware validates the bearer credential and injects the resulting
// Session into the request context. Requests without a valid token never
// reach a handler.
func AuthMiddleware(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				WriteError(w, ErrUnauthenticated)
				return
			}

			parts := strings.Fields(header)
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				WriteError(w, ErrUnauthenticated)
				return
			}

			claims, err := ValidToken(parts[1])
			if err != nil {
				logger.Debug("token rejected", zap.Error(err))
				WriteError(w, ErrUnauthenticated)
				return
			}

			session := &Session{
				AccountID: claims.AccountID,
				Role:      Role(claims.Role),
				MentorID:  claims.MentorID,
				StartupID: claims.StartupID,
			}
			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), session)))
		})
	}
}

// RequestLogger logs method, path and remote address for every request.
func RequestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.String("remote", r.RemoteAddr),
			)
			next.ServeHTTP(w, r)
		})
	}
}
