package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aliquis/aliquis-web/internal/auth"
)

// Session resolves the session cookie, starting a new session when it is
// missing or expired, and injects the session into the request context.
func Session(sessions *auth.SessionStore, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var sess auth.Session
			err := auth.ErrNoSession
			if cookie, cerr := r.Cookie(auth.SessionCookie); cerr == nil {
				sess, err = sessions.Get(r.Context(), cookie.Value)
			}
			if errors.Is(err, auth.ErrNoSession) {
				sess, err = sessions.Create(r.Context())
				if err == nil {
					sessions.SetCookie(w, sess)
				}
			}
			if err != nil {
				log.Error("session lookup", "err", err)
				http.Error(w, `{"error":"session unavailable"}`, http.StatusServiceUnavailable)
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithSession(r.Context(), sess)))
		})
	}
}

// RequireUser only lets through sessions logged in as the {username} of the
// route.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, ok := auth.FromContext(r.Context())
		if !ok || sess.Username == "" {
			http.Error(w, `{"error":"not authenticated"}`, http.StatusUnauthorized)
			return
		}
		if sess.Username != chi.URLParam(r, "username") {
			http.Error(w, `{"error":"forbidden"}`, http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}
