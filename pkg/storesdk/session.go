package storesdk

import (
	"context"
	"log/slog"
	"sync"
)

// SessionState is the lifecycle state of the current-user session.
type SessionState int

const (
	// StateUninitialized is the state before the first derivation. Access
	// checks treat it like a pending profile load.
	StateUninitialized SessionState = iota

	// StateLoading means a profile fetch is in flight.
	StateLoading

	// StateAuthenticated means a profile was fetched with valid credentials.
	StateAuthenticated

	// StateAnonymous means there are no usable credentials.
	StateAnonymous
)

func (s SessionState) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateAuthenticated:
		return "authenticated"
	case StateAnonymous:
		return "anonymous"
	default:
		return "uninitialized"
	}
}

// Snapshot is an immutable view of the session, consumed by access checks.
type Snapshot struct {
	State SessionState
	User  *User
}

// Loading reports whether the identity is still being resolved.
func (s Snapshot) Loading() bool {
	return s.State == StateUninitialized || s.State == StateLoading
}

// Session owns the current-user identity. It derives the user from the
// stored token pair, exposes login/logout/reload, and fails closed: any
// profile-fetch failure leaves the session anonymous rather than keeping a
// stale user alongside invalid credentials.
//
// Every derivation carries a generation number. A result is applied only if
// no newer token change superseded it, so an in-flight profile fetch from a
// rapid login/logout sequence can never overwrite fresher state.
type Session struct {
	client *Client
	log    *slog.Logger

	mu    sync.Mutex
	state SessionState
	user  *User
	gen   uint64
}

// NewSession creates a session bound to the client's token store. The
// session starts uninitialized; call Reload to derive the identity from any
// persisted tokens.
func NewSession(client *Client, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		client: client,
		log:    logger,
		state:  StateUninitialized,
	}
}

// Snapshot returns the current session view.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{State: s.state, User: s.user}
}

// Reload re-derives the session from the stored token pair. With no tokens
// the session becomes anonymous without any network call. With only a
// refresh token, a refresh is issued before the profile fetch; if the
// refresh fails, no profile call is attempted.
func (s *Session) Reload(ctx context.Context) {
	pair := s.client.Tokens.Get()

	s.mu.Lock()
	s.gen++
	gen := s.gen
	if pair == nil {
		s.state, s.user = StateAnonymous, nil
		s.mu.Unlock()
		return
	}
	s.state, s.user = StateLoading, nil
	s.mu.Unlock()

	if pair.Access == "" {
		if _, err := s.client.awaitRefresh(ctx, pair.Refresh); err != nil {
			s.apply(gen, StateAnonymous, nil)
			return
		}
	}

	user, err := s.client.Me(ctx)
	if err != nil {
		s.apply(gen, StateAnonymous, nil)
		return
	}

	if s.apply(gen, StateAuthenticated, user) {
		s.log.Debug("session derived", "user", user.Username, "role", user.Role)
	}
}

// Login exchanges credentials for tokens, persists them, and fetches the
// profile. The profile is returned to the caller so post-login routing (a
// role-based redirect) can happen without waiting for a second asynchronous
// load.
func (s *Session) Login(ctx context.Context, username, password string) (*User, error) {
	pair, err := s.client.LoginGrant(ctx, username, password)
	if err != nil {
		return nil, err
	}
	if err := s.client.Tokens.Set(pair); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.state, s.user = StateLoading, nil
	s.mu.Unlock()

	user, err := s.client.Me(ctx)
	if err != nil {
		s.apply(gen, StateAnonymous, nil)
		return nil, err
	}

	// May be superseded by a logout that raced the profile fetch; the
	// profile is still returned for the caller's immediate use.
	s.apply(gen, StateAuthenticated, user)

	s.log.Info("logged in", "user", user.Username, "role", user.Role)
	return user, nil
}

// Logout clears the token store and the user synchronously. Idempotent.
// Any in-flight profile fetch is superseded and its result discarded.
func (s *Session) Logout() {
	_ = s.client.Tokens.Set(nil)

	s.mu.Lock()
	s.gen++
	s.state, s.user = StateAnonymous, nil
	s.mu.Unlock()
}

// apply installs a derived result unless a newer token change superseded the
// derivation that produced it. Returns false when the result was stale.
func (s *Session) apply(gen uint64, state SessionState, user *User) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen != gen {
		return false
	}
	s.state, s.user = state, user
	return true
}
