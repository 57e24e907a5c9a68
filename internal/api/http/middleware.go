package http

import (
	"context"
	"net/http"

	"github.com/lexcard/lexcard-client/internal/account"
	"github.com/lexcard/lexcard-client/internal/storage"
)

type sessionIDKey struct{}

// SessionMiddleware binds each request to a browsing session: a cookie
// carries the session ID, and the request context gets the Prefs
// object routing reads/writes between the durable store and that
// session's in-memory store.
func SessionMiddleware(cookieName string, sessions *storage.Sessions, durable storage.KV) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var sid string
			if c, err := r.Cookie(cookieName); err == nil && c.Value != "" {
				sid = c.Value
			} else {
				sid = sessions.New()
				http.SetCookie(w, &http.Cookie{
					Name:     cookieName,
					Value:    sid,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}
			prefs := storage.Prefs{Durable: durable, Session: sessions.Get(sid)}
			ctx := storage.WithPrefs(r.Context(), prefs)
			ctx = context.WithValue(ctx, sessionIDKey{}, sid)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func sessionID(ctx context.Context) string {
	sid, _ := ctx.Value(sessionIDKey{}).(string)
	return sid
}

func prefsFrom(r *http.Request) storage.Prefs {
	p, _ := storage.PrefsFrom(r.Context())
	return p
}

// RequireRole gates the admin console routes on a role claim from the
// stored token. This is UI gating only; the backend re-checks every
// mutation.
func RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tok, ok := account.TokenFromContext(r.Context())
			if !ok {
				http.Error(w, "not logged in", http.StatusUnauthorized)
				return
			}
			c, err := account.ParseClaims(tok)
			if err != nil || c.Expired() {
				http.Error(w, "not logged in", http.StatusUnauthorized)
				return
			}
			if !c.HasRole(role) {
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
