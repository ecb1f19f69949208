package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/broger/storefront-backend/pkg/logger"
)

// SessionHeader carries the opaque storefront session identifier. The cart
// lives under it in redis; no account is attached.
const SessionHeader = "X-Session-Id"

type contextKey string

const ctxSessionID contextKey = "session_id"

// SessionIDFromContext returns the session id injected by Session.
func SessionIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxSessionID).(string); ok {
		return v
	}
	return ""
}

// WithSessionID injects the session identifier into the context.
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxSessionID, sessionID)
}

// Session reads the session header, minting a fresh id when the client has
// none yet, and echoes it back so the client can persist it.
func Session(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID := r.Header.Get(SessionHeader)
			if sessionID == "" {
				sessionID = uuid.NewString()
			}

			w.Header().Set(SessionHeader, sessionID)

			ctx := WithSessionID(r.Context(), sessionID)
			if logg != nil {
				ctx = logg.WithSessionID(ctx, sessionID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
