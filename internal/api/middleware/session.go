package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/farm-marketplace/internal/errors"
	"github.com/aaravmahajanofficial/farm-marketplace/internal/utils/response"
	"github.com/google/uuid"
)

const SessionHeader = "X-Session-ID"

type sessionContextKey struct{}

// RequireSession resolves the X-Session-ID header into the request context
// and tags the request logger with it.
func RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := LoggerFromContext(r.Context())

		header := r.Header.Get(SessionHeader)
		if header == "" {
			logger.Warn("Missing session header")
			response.Error(w, errors.UnauthorizedError("Session header is required"))
			return
		}

		id, err := uuid.Parse(header)
		if err != nil {
			logger.Warn("Invalid session header", slog.String("header", header))
			response.Error(w, errors.BadRequestError("Invalid session id"))
			return
		}

		ctx := WithSessionID(r.Context(), id)
		ctx = WithLogger(ctx, logger.With(slog.String("sessionId", id.String())))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func WithSessionID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, sessionContextKey{}, id)
}

func SessionIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(sessionContextKey{}).(uuid.UUID)

	return id, ok
}
