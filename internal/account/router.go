package account

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/aliquis/aliquis-web/internal/auth"
	"github.com/aliquis/aliquis-web/internal/middleware"
	"github.com/aliquis/aliquis-web/internal/pages"
)

// RouterConfig gathers what NewRouter wires together.
type RouterConfig struct {
	Forms          *Handler
	Auth           *auth.Handler
	Sessions       *auth.SessionStore
	AllowedOrigins []string
	Log            *slog.Logger
	RequestLog     bool
}

// NewRouter builds the HTTP surface of the front end.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	if cfg.RequestLog {
		r.Use(chimw.Logger)
	}
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.Session(cfg.Sessions, cfg.Log))

		pages.Mount(r)

		r.Route("/api", func(r chi.Router) {
			r.Post("/login", cfg.Auth.Login)
			r.Post("/logout", cfg.Auth.Logout)
			r.Get("/me", cfg.Auth.Me)

			r.Route("/forms/{form}", func(r chi.Router) {
				r.Get("/", cfg.Forms.Get)
				r.Patch("/", cfg.Forms.Update)
				r.Delete("/", cfg.Forms.Clear)
				r.Delete("/status", cfg.Forms.ClearStatus)
				r.Post("/submit", cfg.Forms.Submit)
			})

			r.With(middleware.RequireUser).Post("/users/{username}/load", cfg.Forms.LoadUser)
			r.Post("/confirm/{token}", cfg.Forms.Confirm)
			r.Post("/reactivate/{username}", cfg.Forms.Reactivate)
		})
	})

	return r
}
