package auth

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const SessionCookie = "session_id"

// ErrNoSession is returned for unknown or expired session ids.
var ErrNoSession = errors.New("no such session")

// Session is one browser session. Username is empty until login.
type Session struct {
	ID       string
	Username string
}

// SessionStore wraps Redis for session management.
type SessionStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewSessionStore(rdb *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{rdb: rdb, ttl: ttl}
}

func sessionKey(id string) string {
	return "session:" + id
}

// Create stores a new anonymous session.
func (s *SessionStore) Create(ctx context.Context) (Session, error) {
	sess := Session{ID: uuid.New().String()}
	err := s.rdb.Set(ctx, sessionKey(sess.ID), "", s.ttl).Err()
	return sess, err
}

// Get returns the session and extends its lifetime.
func (s *SessionStore) Get(ctx context.Context, id string) (Session, error) {
	val, err := s.rdb.GetEx(ctx, sessionKey(id), s.ttl).Result()
	if err == redis.Nil {
		return Session{}, ErrNoSession
	}
	if err != nil {
		return Session{}, err
	}
	return Session{ID: id, Username: val}, nil
}

// Bind records the user logged in on the session.
func (s *SessionStore) Bind(ctx context.Context, id, username string) error {
	return s.rdb.Set(ctx, sessionKey(id), username, s.ttl).Err()
}

// SetCookie points the browser at the session.
func (s *SessionStore) SetCookie(w http.ResponseWriter, sess Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    sess.ID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(s.ttl.Seconds()),
	})
}

// Delete removes a session.
func (s *SessionStore) Delete(ctx context.Context, id string) error {
	return s.rdb.Del(ctx, sessionKey(id)).Err()
}

type ctxKey struct{}

// WithSession returns a copy of ctx carrying sess.
func WithSession(ctx context.Context, sess Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, sess)
}

// FromContext returns the session injected by the session middleware.
func FromContext(ctx context.Context) (Session, bool) {
	sess, ok := ctx.Value(ctxKey{}).(Session)
	return sess, ok
}
