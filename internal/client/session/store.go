// Package session owns the authenticated identity of the running client.
// The store keeps at most one active session, mirrors it to the persisted
// snapshot so it survives a restart, and performs login/registration lookups
// against the remote record store.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/jobkeeper/internal/client/models"
	"github.com/dmitrijs2005/jobkeeper/internal/client/remote"
	"github.com/dmitrijs2005/jobkeeper/internal/client/repositories/snapshots"
	"github.com/dmitrijs2005/jobkeeper/internal/logging"
)

var (
	// ErrInvalidCredentials means no user matched the supplied
	// username/password pair.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUsernameTaken means a user with the requested username already
	// exists.
	ErrUsernameTaken = errors.New("username already taken")
)

// Store holds the active session. It is driven from the single
// event-handling goroutine; the session is exposed only by value.
type Store struct {
	users   remote.Users
	snaps   snapshots.Repository
	log     logging.Logger
	current *models.Session
}

func NewStore(users remote.Users, snaps snapshots.Repository, log logging.Logger) *Store {
	return &Store{users: users, snaps: snaps, log: log.With("component", "session")}
}

// Current returns the active session by value. The second result is false
// when nobody is logged in.
func (s *Store) Current() (models.Session, bool) {
	if s.current == nil {
		return models.Session{}, false
	}
	return *s.current, true
}

// Restore loads a previously persisted session at startup. A missing
// snapshot leaves the store logged out; a malformed one is discarded
// silently and the corrupt entry deleted. No network call is made.
func (s *Store) Restore(ctx context.Context) error {
	raw, err := s.snaps.Get(ctx, snapshots.KeySession)
	if err != nil {
		return fmt.Errorf("reading session snapshot: %w", err)
	}
	if raw == nil {
		return nil
	}

	var sess models.Session
	if err := json.Unmarshal(raw, &sess); err != nil || sess.Token == "" {
		s.log.Warn(ctx, "discarding malformed session snapshot")
		return s.snaps.Delete(ctx, snapshots.KeySession)
	}

	s.current = &sess
	s.log.Info(ctx, "session restored", "username", sess.User.Username)
	return nil
}

// Login looks up users matching the username/password pair and activates a
// session for the first match. Fails with ErrInvalidCredentials when none
// match; the store stays logged out on any failure.
func (s *Store) Login(ctx context.Context, username, password string) (models.Session, error) {
	users, err := s.users.FindByCredentials(ctx, username, password)
	if err != nil {
		return models.Session{}, fmt.Errorf("login lookup: %w", err)
	}
	if len(users) == 0 {
		return models.Session{}, ErrInvalidCredentials
	}
	return s.activate(ctx, users[0])
}

// Register creates a new user and then behaves as a successful login for it.
// Fails with ErrUsernameTaken when the username already exists.
func (s *Store) Register(ctx context.Context, username, password string) (models.Session, error) {
	existing, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return models.Session{}, fmt.Errorf("duplicate check: %w", err)
	}
	if len(existing) > 0 {
		return models.Session{}, ErrUsernameTaken
	}

	created, err := s.users.Create(ctx, username, password)
	if err != nil {
		return models.Session{}, fmt.Errorf("creating user: %w", err)
	}
	return s.activate(ctx, created)
}

// Logout clears the active session from memory and from the persisted
// snapshot. Idempotent.
func (s *Store) Logout(ctx context.Context) error {
	s.current = nil
	if err := s.snaps.Delete(ctx, snapshots.KeySession); err != nil {
		return fmt.Errorf("clearing session snapshot: %w", err)
	}
	return nil
}

// Forget drops the in-memory session without touching the snapshot. Used
// when the caller has already cleared persisted state itself.
func (s *Store) Forget() {
	s.current = nil
}

// activate synthesizes a session token, stores the session in memory and
// persists it. The token is opaque and only unique per login event; it
// carries no security property.
func (s *Store) activate(ctx context.Context, user models.User) (models.Session, error) {
	sess := models.Session{
		Token: fmt.Sprintf("token-%d-%s", user.ID, uuid.NewString()),
		User:  user,
	}

	raw, err := json.Marshal(sess)
	if err != nil {
		return models.Session{}, fmt.Errorf("encoding session: %w", err)
	}
	if err := s.snaps.Set(ctx, snapshots.KeySession, raw); err != nil {
		return models.Session{}, fmt.Errorf("persisting session: %w", err)
	}

	s.current = &sess
	s.log.Info(ctx, "session activated", "username", user.Username)
	return sess, nil
}
