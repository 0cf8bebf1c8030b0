// Package account serves the form state of a browser session: field
// updates, derived values, validity and the submissions that forward a form
// to the account service.
package account

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aliquis/aliquis-web/internal/api"
	"github.com/aliquis/aliquis-web/internal/auth"
	"github.com/aliquis/aliquis-web/internal/form"
	"github.com/aliquis/aliquis-web/internal/models"
	"github.com/aliquis/aliquis-web/internal/store"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// Accounts is the account service as seen by the handlers.
type Accounts interface {
	FetchUser(ctx context.Context, username string) (models.User, api.Result, error)
	UpdateUser(ctx context.Context, u models.User) (api.Result, error)
	SignUp(ctx context.Context, req models.SignUpRequest) (api.Result, error)
	ConfirmUser(ctx context.Context, token string) (api.Result, error)
	ReactivateUser(ctx context.Context, username string) (api.Result, error)
	FetchGrants(ctx context.Context, username string) ([]string, api.Result, error)
}

// DraftStore keeps the form records of each session.
type DraftStore interface {
	Load(ctx context.Context, sessionID string) (store.Drafts, error)
	Update(ctx context.Context, sessionID string, k form.Kind, fn func(form.Record) form.Record) (form.Record, error)
}

// Handler holds the form HTTP handlers.
type Handler struct {
	accounts Accounts
	drafts   DraftStore
	log      *slog.Logger
}

func NewHandler(accounts Accounts, drafts DraftStore, log *slog.Logger) *Handler {
	return &Handler{accounts: accounts, drafts: drafts, log: log}
}

// Snapshot is a form record as shown to the presentation layer, with the
// derived values and the validity of the form. The password never leaves the
// server. The patterns let the page flag malformed input as it is typed.
type Snapshot struct {
	Form form.Kind `json:"form"`
	form.Record
	EffectiveDisplayName string `json:"effective_display_name"`
	EffectiveUsername    string `json:"effective_username"`
	Valid                bool   `json:"valid"`
	EmailPattern         string `json:"email_pattern"`
	UsernamePattern      string `json:"username_pattern"`
}

func snapshot(k form.Kind, r form.Record) Snapshot {
	s := Snapshot{
		Form:                 k,
		Record:               r,
		EffectiveDisplayName: r.DisplayNameValue(),
		EffectiveUsername:    r.UsernameValue(),
		Valid:                k.Valid(r),
		EmailPattern:         form.EmailPattern(),
		UsernamePattern:      form.UsernamePattern(),
	}
	s.Password = ""
	return s
}

// FieldUpdate is the body of PATCH /api/forms/{form}.
type FieldUpdate struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

func kindParam(w http.ResponseWriter, r *http.Request) (form.Kind, bool) {
	k, err := form.ParseKind(chi.URLParam(r, "form"))
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return "", false
	}
	return k, true
}

func session(w http.ResponseWriter, r *http.Request) (auth.Session, bool) {
	sess, ok := auth.FromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "no session")
	}
	return sess, ok
}

// Get returns the current state of a form.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	k, ok := kindParam(w, r)
	if !ok {
		return
	}
	sess, ok := session(w, r)
	if !ok {
		return
	}

	drafts, err := h.drafts.Load(r.Context(), sess.ID)
	if err != nil {
		h.log.Error("load drafts", "form", k, "err", err)
		writeError(w, http.StatusInternalServerError, "could not load form")
		return
	}
	writeJSON(w, http.StatusOK, snapshot(k, *drafts.Form(k)))
}

// Update applies one field update to a form.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	k, ok := kindParam(w, r)
	if !ok {
		return
	}
	sess, ok := session(w, r)
	if !ok {
		return
	}

	var req FieldUpdate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	op, err := form.ParseOp(req.Field)
	if err != nil || !k.Accepts(op) {
		writeError(w, http.StatusBadRequest, "unknown field "+req.Field)
		return
	}

	rec, err := h.drafts.Update(r.Context(), sess.ID, k, func(rec form.Record) form.Record {
		return form.Apply(rec, form.Mutation{Op: op, Value: req.Value})
	})
	if err != nil {
		h.log.Error("update draft", "form", k, "field", req.Field, "err", err)
		writeError(w, http.StatusInternalServerError, "could not update form")
		return
	}
	writeJSON(w, http.StatusOK, snapshot(k, rec))
}

// Clear empties a form.
func (h *Handler) Clear(w http.ResponseWriter, r *http.Request) {
	k, ok := kindParam(w, r)
	if !ok {
		return
	}
	sess, ok := session(w, r)
	if !ok {
		return
	}

	rec, err := h.drafts.Update(r.Context(), sess.ID, k, form.Clear)
	if err != nil {
		h.log.Error("clear draft", "form", k, "err", err)
		writeError(w, http.StatusInternalServerError, "could not clear form")
		return
	}
	writeJSON(w, http.StatusOK, snapshot(k, rec))
}

// ClearStatus dismisses the status message of a form.
func (h *Handler) ClearStatus(w http.ResponseWriter, r *http.Request) {
	k, ok := kindParam(w, r)
	if !ok {
		return
	}
	sess, ok := session(w, r)
	if !ok {
		return
	}

	rec, err := h.drafts.Update(r.Context(), sess.ID, k, form.ClearStatusMessage)
	if err != nil {
		h.log.Error("clear status", "form", k, "err", err)
		writeError(w, http.StatusInternalServerError, "could not update form")
		return
	}
	writeJSON(w, http.StatusOK, snapshot(k, rec))
}

var (
	errInvalidForm = errors.New("form is not valid")
	errForbidden   = errors.New("form belongs to another user")
)

// Submit forwards a valid form to the account service. A successful sign-up
// clears the form.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	k, ok := kindParam(w, r)
	if !ok {
		return
	}
	sess, ok := session(w, r)
	if !ok {
		return
	}

	sub := submission{
		kind: k,
		check: func(rec form.Record) error {
			if !k.Valid(rec) {
				return errInvalidForm
			}
			return nil
		},
	}
	switch k {
	case form.SignUp:
		sub.call = func(ctx context.Context, rec form.Record) (api.Result, error) {
			return h.accounts.SignUp(ctx, form.ToSignUp(rec))
		}
		sub.apply = func(rec form.Record, _ form.Ticket, res api.Result) form.Record {
			if res.OK {
				return form.Clear(rec)
			}
			return rec
		}
	case form.Profile:
		valid := sub.check
		sub.check = func(rec form.Record) error {
			if sess.Username == "" || rec.UsernameValue() != sess.Username {
				return errForbidden
			}
			return valid(rec)
		}
		sub.call = func(ctx context.Context, rec form.Record) (api.Result, error) {
			return h.accounts.UpdateUser(ctx, form.ToUser(rec))
		}
	}
	h.submit(w, r, sess, sub)
}

// LoadUser fetches an account and its grants into the profile form. Fields
// the user edited while the request was in flight are kept.
func (h *Handler) LoadUser(w http.ResponseWriter, r *http.Request) {
	sess, ok := session(w, r)
	if !ok {
		return
	}
	username := chi.URLParam(r, "username")

	var grants []string
	var grantsRes api.Result
	var user models.User
	h.submit(w, r, sess, submission{
		kind: form.Profile,
		call: func(ctx context.Context, _ form.Record) (api.Result, error) {
			var err error
			grants, grantsRes, err = h.accounts.FetchGrants(ctx, username)
			if err != nil {
				h.log.Warn("fetch grants", "username", username, "err", err)
				grantsRes = api.Result{}
			}
			var res api.Result
			user, res, err = h.accounts.FetchUser(ctx, username)
			return res, err
		},
		apply: func(rec form.Record, t form.Ticket, res api.Result) form.Record {
			switch {
			case !res.OK:
				rec = form.ClearUser(rec)
			case !t.Edited(rec):
				rec = form.InitFromUser(rec, user)
			}
			if grantsRes.OK {
				return form.SetGrants(rec, grants)
			}
			return form.ClearGrants(rec)
		},
	})
}

// Confirm activates the account behind a confirmation token. The outcome is
// kept on the confirm record so it never races a sign-up in flight.
func (h *Handler) Confirm(w http.ResponseWriter, r *http.Request) {
	sess, ok := session(w, r)
	if !ok {
		return
	}
	token := chi.URLParam(r, "token")
	h.submit(w, r, sess, submission{
		kind: form.Confirm,
		call: func(ctx context.Context, _ form.Record) (api.Result, error) {
			return h.accounts.ConfirmUser(ctx, token)
		},
	})
}

// Reactivate asks the account service for a new confirmation link.
func (h *Handler) Reactivate(w http.ResponseWriter, r *http.Request) {
	sess, ok := session(w, r)
	if !ok {
		return
	}
	username := chi.URLParam(r, "username")
	h.submit(w, r, sess, submission{
		kind: form.Confirm,
		call: func(ctx context.Context, _ form.Record) (api.Result, error) {
			return h.accounts.ReactivateUser(ctx, username)
		},
	})
}
