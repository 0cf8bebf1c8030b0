package account

import (
	"context"
	"errors"
	"net/http"

	"github.com/aliquis/aliquis-web/internal/api"
	"github.com/aliquis/aliquis-web/internal/auth"
	"github.com/aliquis/aliquis-web/internal/form"
)

// submission describes one request to the account service issued from a
// form. check runs before the request and may refuse it; apply runs on the
// record when the response is the latest one for the form, before the
// status message is set.
type submission struct {
	kind  form.Kind
	check func(form.Record) error
	call  func(context.Context, form.Record) (api.Result, error)
	apply func(form.Record, form.Ticket, api.Result) form.Record
}

// SubmitResponse is the answer to every submission endpoint.
type SubmitResponse struct {
	OK bool `json:"ok"`
	Snapshot
}

func (h *Handler) submit(w http.ResponseWriter, r *http.Request, sess auth.Session, sub submission) {
	ctx := r.Context()

	var (
		sent     form.Record
		ticket   form.Ticket
		checkErr error
	)
	_, err := h.drafts.Update(ctx, sess.ID, sub.kind, func(rec form.Record) form.Record {
		if sub.check != nil {
			if checkErr = sub.check(rec); checkErr != nil {
				return rec
			}
		}
		rec, ticket = form.Begin(rec)
		sent = rec
		return rec
	})
	if err != nil {
		h.log.Error("begin submission", "form", sub.kind, "err", err)
		writeError(w, http.StatusInternalServerError, "could not update form")
		return
	}
	switch {
	case errors.Is(checkErr, errForbidden):
		writeError(w, http.StatusForbidden, checkErr.Error())
		return
	case checkErr != nil:
		writeError(w, http.StatusBadRequest, checkErr.Error())
		return
	}

	res, callErr := sub.call(ctx, sent)
	if callErr != nil {
		h.log.Error("account service", "form", sub.kind, "seq", ticket.Seq, "err", callErr)
		res = api.Failure(callErr)
	}

	// The outcome is recorded even if the client went away meanwhile, so the
	// form does not stay in the loading state.
	var applied bool
	rec, err := h.drafts.Update(context.WithoutCancel(ctx), sess.ID, sub.kind, func(rec form.Record) form.Record {
		rec, applied = form.Complete(rec, ticket, func(rec form.Record) form.Record {
			if sub.apply != nil {
				rec = sub.apply(rec, ticket, res)
			}
			rec = form.SetFieldErrors(rec, res.Errors)
			return form.SetStatusMessage(rec, res.Status.Msg, res.Status.Cls)
		})
		return rec
	})
	if err != nil {
		h.log.Error("complete submission", "form", sub.kind, "err", err)
		writeError(w, http.StatusInternalServerError, "could not update form")
		return
	}
	if !applied {
		h.log.Info("dropped superseded response", "form", sub.kind, "seq", ticket.Seq, "latest", rec.Seq)
		writeError(w, http.StatusConflict, "superseded by a newer submission")
		return
	}

	status := http.StatusOK
	switch {
	case callErr != nil:
		status = http.StatusBadGateway
	case !res.OK:
		status = http.StatusUnprocessableEntity
	}
	writeJSON(w, status, SubmitResponse{OK: res.OK, Snapshot: snapshot(sub.kind, rec)})
}
