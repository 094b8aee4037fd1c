package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type sessionContextKey string

// SessionKey carries the storefront session ID through the context.
const SessionKey = sessionContextKey("session")

// Session reads the caller's X-Session-ID header, minting a fresh ID when
// the header is absent, and echoes it back so the browser can keep using
// the same cart across requests.
func Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		sessionID := r.Header.Get("X-Session-ID")
		if sessionID == "" {
			sessionID = uuid.NewString()
		}

		w.Header().Set("X-Session-ID", sessionID)

		ctx := context.WithValue(r.Context(), SessionKey, sessionID)

		next.ServeHTTP(w, r.WithContext(ctx))

	})
}

func SessionFromContext(ctx context.Context) string {
	if sessionID, ok := ctx.Value(SessionKey).(string); ok {
		return sessionID
	}

	return ""
}
