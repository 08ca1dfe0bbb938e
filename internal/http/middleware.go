package http

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// SessionCookieName identifies the anonymous browsing session. There
// is no authentication; the cookie only scopes the in-memory cart.
const SessionCookieName = "print_session"

type ctxKey string

const sessionIDKey ctxKey = "session_id"

// SessionMiddleware ensures every request carries a session ID,
// issuing a new cookie when none is present.
func SessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var sessionID string
		if c, err := r.Cookie(SessionCookieName); err == nil && c.Value != "" {
			sessionID = c.Value
		} else {
			sessionID = uuid.New().String()
			http.SetCookie(w, &http.Cookie{
				Name:     SessionCookieName,
				Value:    sessionID,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		ctx := context.WithValue(r.Context(), sessionIDKey, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func sessionIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(sessionIDKey).(string); ok {
		return id
	}
	return ""
}
