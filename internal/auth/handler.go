package auth

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aliquis/aliquis-web/internal/api"
	"github.com/aliquis/aliquis-web/internal/models"
)

// Authenticator checks credentials against the account service.
type Authenticator interface {
	Login(ctx context.Context, req models.LoginRequest) (api.Result, error)
}

// Drafts is the per-session form storage the auth handlers manage.
type Drafts interface {
	Move(ctx context.Context, from, to string) error
	Delete(ctx context.Context, sessionID string) error
}

// Handler holds auth-related HTTP handlers.
type Handler struct {
	accounts Authenticator
	sessions *SessionStore
	drafts   Drafts
	log      *slog.Logger
}

func NewHandler(accounts Authenticator, sessions *SessionStore, drafts Drafts, log *slog.Logger) *Handler {
	return &Handler{accounts: accounts, sessions: sessions, drafts: drafts, log: log}
}

type loginResponse struct {
	Username string        `json:"username,omitempty"`
	Status   models.Status `json:"status"`
}

// Login checks the credentials with the account service and starts a new
// session for the user. The drafts of the anonymous session carry over and
// its id stops working.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	sess, ok := FromContext(r.Context())
	if !ok {
		http.Error(w, `{"error":"no session"}`, http.StatusUnauthorized)
		return
	}

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
		return
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		http.Error(w, `{"error":"username and password are required"}`, http.StatusBadRequest)
		return
	}

	res, err := h.accounts.Login(r.Context(), req)
	if err != nil {
		h.log.Error("login", "username", req.Username, "err", err)
		writeJSON(w, http.StatusBadGateway, loginResponse{Status: api.Failure(err).Status})
		return
	}
	if !res.OK {
		writeJSON(w, http.StatusUnauthorized, loginResponse{Status: res.Status})
		return
	}

	next, err := h.sessions.Create(r.Context())
	if err == nil {
		next.Username = req.Username
		err = h.sessions.Bind(r.Context(), next.ID, next.Username)
	}
	if err != nil {
		h.log.Error("create session", "err", err)
		http.Error(w, `{"error":"session update failed"}`, http.StatusInternalServerError)
		return
	}
	if err := h.drafts.Move(r.Context(), sess.ID, next.ID); err != nil {
		h.log.Warn("move drafts", "err", err)
	}
	if err := h.sessions.Delete(r.Context(), sess.ID); err != nil {
		h.log.Warn("delete session", "err", err)
	}
	h.sessions.SetCookie(w, next)
	writeJSON(w, http.StatusOK, loginResponse{Username: req.Username, Status: res.Status})
}

// Logout destroys the current session and its drafts.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if sess, ok := FromContext(r.Context()); ok {
		if err := h.sessions.Delete(r.Context(), sess.ID); err != nil {
			h.log.Warn("delete session", "err", err)
		}
		if err := h.drafts.Delete(r.Context(), sess.ID); err != nil {
			h.log.Warn("delete drafts", "err", err)
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})

	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"message":"logged out"}`))
}

// Me returns the user logged in on the current session.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	sess, ok := FromContext(r.Context())
	if !ok || sess.Username == "" {
		http.Error(w, `{"error":"not authenticated"}`, http.StatusUnauthorized)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"username": sess.Username})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
