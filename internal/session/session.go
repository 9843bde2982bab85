package session

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

const (
	cookieName   = "shop_session"
	cookieMaxAge = 60 * 60 * 24 * 30
)

type contextKey struct{}

// Middleware assigns an anonymous session identity to every request. A
// request without a session cookie gets a fresh uuid; the identity is
// stored on the request context for handlers downstream.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := ""
		if c, err := r.Cookie(cookieName); err == nil {
			id = c.Value
		}
		if id == "" {
			id = uuid.NewString()
			http.SetCookie(w, &http.Cookie{
				Name:     cookieName,
				Value:    id,
				Path:     "/",
				MaxAge:   cookieMaxAge,
				HttpOnly: true,
			})
		}
		ctx := context.WithValue(r.Context(), contextKey{}, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserID returns the session identity for the request context, or ""
// when the middleware did not run.
func UserID(ctx context.Context) string {
	id, _ := ctx.Value(contextKey{}).(string)
	return id
}
