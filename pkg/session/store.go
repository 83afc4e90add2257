package session

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
)

// DefaultKey is the storage key the session record lives under.
const DefaultKey = "insidechurch.session"

// Store is the single authoritative holder of session state. It keeps the
// current Session in memory and mirrors every mutation to a durable Storage
// record, so the session survives process restarts the way a browser
// session survives page reloads.
//
// No other component writes the persisted record; consumers that only need
// to know whether a token is present should depend on the read side
// (IsAuthenticated, AccessToken) alone.
type Store struct {
	storage Storage
	key     string

	mu      sync.RWMutex
	current Session
}

// New creates a Store backed by the given storage. The in-memory session
// starts empty; call Load to rehydrate a persisted session.
func New(storage Storage, opts ...Option) *Store {
	s := &Store{
		storage: storage,
		key:     DefaultKey,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load hydrates the in-memory session from the persisted record. A missing
// record yields an empty session. A malformed or invariant-violating record
// is treated the same way: the store clears itself instead of surfacing a
// parse failure, since a corrupt credential cache is unrecoverable by the
// caller anyway.
func (s *Store) Load(ctx context.Context) (Session, error) {
	data, err := s.storage.Get(ctx, s.key)
	if err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			return s.reset(), nil
		}
		return Session{}, err
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil || sess.validate() != nil || sess.AccessToken == "" {
		_ = s.storage.Delete(ctx, s.key)
		return s.reset(), nil
	}

	s.mu.Lock()
	s.current = sess
	s.mu.Unlock()
	return sess, nil
}

// Set replaces the whole session, persisting it first. If the write fails
// the in-memory state is left untouched, so readers never observe a
// session that isn't durably mirrored.
func (s *Store) Set(ctx context.Context, sess Session) error {
	if err := sess.validate(); err != nil {
		return err
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return errors.Join(ErrInvalidSession, err)
	}
	if err := s.storage.Set(ctx, s.key, data); err != nil {
		return err
	}

	s.mu.Lock()
	s.current = sess
	s.mu.Unlock()
	return nil
}

// SetUser replaces only the user profile, preserving the tokens. It fails
// with ErrNotAuthenticated when no access token is present, because a
// profile without a token is meaningless.
func (s *Store) SetUser(ctx context.Context, user *User) error {
	s.mu.RLock()
	sess := s.current
	s.mu.RUnlock()

	if !sess.IsAuthenticated() {
		return ErrNotAuthenticated
	}

	sess.User = user
	return s.Set(ctx, sess)
}

// Clear resets the session to empty and deletes the persisted record. The
// in-memory state is cleared even when the delete fails, so a logout always
// takes effect locally; the storage error is still reported.
func (s *Store) Clear(ctx context.Context) error {
	err := s.storage.Delete(ctx, s.key)
	s.reset()
	return err
}

// Current returns a copy of the in-memory session.
func (s *Store) Current() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// IsAuthenticated reports whether an access token is present.
func (s *Store) IsAuthenticated() bool {
	return s.Current().IsAuthenticated()
}

// AccessToken returns the current access token, or "" when anonymous.
func (s *Store) AccessToken() string {
	return s.Current().AccessToken
}

// RefreshToken returns the current refresh token, or "" when absent.
func (s *Store) RefreshToken() string {
	return s.Current().RefreshToken
}

// User returns the current user profile, or nil when not yet fetched.
func (s *Store) User() *User {
	return s.Current().User
}

func (s *Store) reset() Session {
	s.mu.Lock()
	s.current = Session{}
	s.mu.Unlock()
	return Session{}
}
