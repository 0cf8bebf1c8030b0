package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/aliquis/aliquis-web/internal/form"
)

// ErrConflict is returned when a draft kept changing under an update.
var ErrConflict = errors.New("draft changed concurrently")

const maxUpdateAttempts = 8

// Drafts is everything a browser session has typed so far.
type Drafts struct {
	SignUp  form.Record `json:"sign_up"`
	Profile form.Record `json:"profile"`
	Confirm form.Record `json:"confirm"`
}

// Form returns the record backing the given form.
func (d *Drafts) Form(k form.Kind) *form.Record {
	switch k {
	case form.SignUp:
		return &d.SignUp
	case form.Confirm:
		return &d.Confirm
	}
	return &d.Profile
}

// DraftStore keeps one Drafts value per session in Redis. Drafts expire with
// the session and are never written anywhere else.
type DraftStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewDraftStore(rdb *redis.Client, ttl time.Duration) *DraftStore {
	return &DraftStore{rdb: rdb, ttl: ttl}
}

func draftKey(sessionID string) string {
	return "draft:" + sessionID
}

// Load returns the session drafts, or empty ones if none are stored.
func (s *DraftStore) Load(ctx context.Context, sessionID string) (Drafts, error) {
	data, err := s.rdb.Get(ctx, draftKey(sessionID)).Bytes()
	return decodeDrafts(data, err)
}

// Update runs fn on the record of one form and stores the result. The
// read-modify-write is retried while another request for the same session
// changes the draft in between.
func (s *DraftStore) Update(ctx context.Context, sessionID string, k form.Kind, fn func(form.Record) form.Record) (form.Record, error) {
	key := draftKey(sessionID)
	var out form.Record

	txf := func(tx *redis.Tx) error {
		drafts, err := decodeDrafts(tx.Get(ctx, key).Bytes())
		if err != nil {
			return err
		}
		rec := drafts.Form(k)
		*rec = fn(*rec)
		data, err := json.Marshal(drafts)
		if err != nil {
			return fmt.Errorf("encode draft: %w", err)
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, s.ttl)
			return nil
		})
		if err == nil {
			out = *rec
		}
		return err
	}

	for i := 0; i < maxUpdateAttempts; i++ {
		err := s.rdb.Watch(ctx, txf, key)
		if err == nil {
			return out, nil
		}
		if !errors.Is(err, redis.TxFailedErr) {
			return form.Record{}, err
		}
	}
	return form.Record{}, ErrConflict
}

// Move hands the drafts of one session over to another. Nothing happens
// when the old session has no drafts.
func (s *DraftStore) Move(ctx context.Context, from, to string) error {
	data, err := s.rdb.Get(ctx, draftKey(from)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load draft: %w", err)
	}
	_, err = s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, draftKey(to), data, s.ttl)
		pipe.Del(ctx, draftKey(from))
		return nil
	})
	return err
}

// Delete drops the session drafts.
func (s *DraftStore) Delete(ctx context.Context, sessionID string) error {
	return s.rdb.Del(ctx, draftKey(sessionID)).Err()
}

func decodeDrafts(data []byte, err error) (Drafts, error) {
	var d Drafts
	if errors.Is(err, redis.Nil) {
		return d, nil
	}
	if err != nil {
		return d, fmt.Errorf("load draft: %w", err)
	}
	if err := json.Unmarshal(data, &d); err != nil {
		return d, fmt.Errorf("decode draft: %w", err)
	}
	return d, nil
}
