package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type contextKey string

const sessionContextKey contextKey = "cart_session"

// SessionCookieName carries the opaque cart session token.
const SessionCookieName = "caviste_session"

// CartSession issues an opaque session token on first contact and
// propagates it on every request, so each browser gets its own cart.
// Tokens are random UUIDs; a cookie that fails to parse is replaced.
func CartSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var session string

		if cookie, err := r.Cookie(SessionCookieName); err == nil {
			if _, err := uuid.Parse(cookie.Value); err == nil {
				session = cookie.Value
			}
		}

		if session == "" {
			session = uuid.New().String()
			http.SetCookie(w, &http.Cookie{
				Name:     SessionCookieName,
				Value:    session,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		ctx := context.WithValue(r.Context(), sessionContextKey, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetCartSession returns the session token placed by CartSession.
func GetCartSession(ctx context.Context) (string, bool) {
	session, ok := ctx.Value(sessionContextKey).(string)
	return session, ok
}
