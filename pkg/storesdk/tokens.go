package storesdk

import "sync"

// TokenPair is the access+refresh credential pair issued by the login
// endpoint. The access token is assumed valid until a request proves
// otherwise; there is no local expiry check.
type TokenPair struct {
	// Access is the short-lived JWT used to authorise API calls.
	Access string `json:"access"`

	// Refresh is the longer-lived token used to obtain a new access token.
	// May be empty when the backend withholds refresh capability.
	Refresh string `json:"refresh,omitempty"`
}

// Clone returns a copy of the pair, or nil for a nil pair.
func (p *TokenPair) Clone() *TokenPair {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}

// TokenStore persists the token pair across process restarts. The store is
// the single source of truth for credentials: every writer funnels through
// Set and readers always re-read rather than caching across calls.
type TokenStore interface {
	// Get returns the persisted pair, or nil when absent or unreadable.
	// Parse failures are treated as logged-out, never surfaced.
	Get() *TokenPair

	// Set persists the pair. A nil pair removes the persisted entry.
	Set(pair *TokenPair) error
}

// MemoryTokenStore keeps the pair in process memory. Useful for tests and
// short-lived programs that should not leave credentials on disk.
type MemoryTokenStore struct {
	mu   sync.RWMutex
	pair *TokenPair
}

func NewMemoryTokenStore() *MemoryTokenStore { return &MemoryTokenStore{} }

func (s *MemoryTokenStore) Get() *TokenPair {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pair.Clone()
}

func (s *MemoryTokenStore) Set(pair *TokenPair) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pair = pair.Clone()
	return nil
}
