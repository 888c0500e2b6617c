package storesdk

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

// authBackend fakes the auth endpoints. The me handler can be gated to hold
// a profile fetch in flight while the test races a logout against it.
type authBackend struct {
	mux *http.ServeMux

	meCalls      int32
	refreshCalls int32
	refreshFails bool

	meEntered chan struct{} // closed once /auth/me/ is reached, when non-nil
	meGate    chan struct{} // blocks /auth/me/ until closed, when non-nil
}

func newAuthBackend() *authBackend {
	b := &authBackend{mux: http.NewServeMux()}

	b.mux.HandleFunc("/auth/login/", func(w http.ResponseWriter, r *http.Request) {
		var creds struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		_ = json.NewDecoder(r.Body).Decode(&creds)
		if creds.Password != "good" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"detail":"No active account found with the given credentials"}`))
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{
			"access":  "access-1",
			"refresh": "refresh-1",
		})
	})

	b.mux.HandleFunc("/auth/refresh/", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&b.refreshCalls, 1)
		if b.refreshFails {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"detail":"refresh expired"}`))
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"access": "access-1"})
	})

	b.mux.HandleFunc("/auth/me/", func(w http.ResponseWriter, r *http.Request) {
		if b.meEntered != nil {
			close(b.meEntered)
			b.meEntered = nil
		}
		if b.meGate != nil {
			<-b.meGate
		}
		atomic.AddInt32(&b.meCalls, 1)

		if r.Header.Get("Authorization") != "Bearer access-1" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"detail":"token not valid"}`))
			return
		}
		_ = json.NewEncoder(w).Encode(User{
			ID:       7,
			Username: "mason",
			Email:    "mason@example.com",
			Role:     RoleRetailer,
		})
	})

	return b
}

func TestSessionLogin(t *testing.T) {
	t.Parallel()

	backend := newAuthBackend()
	srv := httptest.NewServer(backend.mux)
	defer srv.Close()

	store := NewMemoryTokenStore()
	session := NewSession(NewClient(srv.URL, store), nil)

	user, err := session.Login(context.Background(), "mason", "good")
	require.NoError(t, err)
	require.Equal(t, "mason", user.Username)
	require.Equal(t, RoleRetailer, user.Role)

	snap := session.Snapshot()
	require.Equal(t, StateAuthenticated, snap.State)
	require.NotNil(t, snap.User)
	require.Equal(t, int64(7), snap.User.ID)

	pair := store.Get()
	require.NotNil(t, pair)
	require.Equal(t, "access-1", pair.Access)
	require.Equal(t, "refresh-1", pair.Refresh)
}

func TestSessionLoginBadCredentials(t *testing.T) {
	t.Parallel()

	backend := newAuthBackend()
	srv := httptest.NewServer(backend.mux)
	defer srv.Close()

	store := NewMemoryTokenStore()
	session := NewSession(NewClient(srv.URL, store), nil)

	_, err := session.Login(context.Background(), "mason", "wrong")
	require.True(t, IsAuthorizationError(err))
	require.Nil(t, store.Get())

	// Login failure never triggers a refresh attempt.
	require.EqualValues(t, 0, atomic.LoadInt32(&backend.refreshCalls))
}

func TestSessionLogoutSupersedesInFlightLogin(t *testing.T) {
	t.Parallel()

	backend := newAuthBackend()
	backend.meEntered = make(chan struct{})
	backend.meGate = make(chan struct{})
	srv := httptest.NewServer(backend.mux)
	defer srv.Close()

	store := NewMemoryTokenStore()
	session := NewSession(NewClient(srv.URL, store), nil)

	entered := backend.meEntered
	loginDone := make(chan struct{})
	go func() {
		defer close(loginDone)
		_, _ = session.Login(context.Background(), "mason", "good")
	}()

	// Log out while the profile fetch is still in flight.
	<-entered
	session.Logout()
	close(backend.meGate)
	<-loginDone

	// The stale profile result must not resurrect the session.
	snap := session.Snapshot()
	require.Equal(t, StateAnonymous, snap.State)
	require.Nil(t, snap.User)
	require.Nil(t, store.Get())
}

func TestSessionReloadWithoutTokens(t *testing.T) {
	t.Parallel()

	backend := newAuthBackend()
	srv := httptest.NewServer(backend.mux)
	defer srv.Close()

	session := NewSession(NewClient(srv.URL, NewMemoryTokenStore()), nil)
	session.Reload(context.Background())

	require.Equal(t, StateAnonymous, session.Snapshot().State)

	// No credentials means no network traffic at all.
	require.EqualValues(t, 0, atomic.LoadInt32(&backend.meCalls))
	require.EqualValues(t, 0, atomic.LoadInt32(&backend.refreshCalls))
}

func TestSessionReloadWithRefreshTokenOnly(t *testing.T) {
	t.Parallel()

	t.Run("refresh succeeds then profile loads", func(t *testing.T) {
		backend := newAuthBackend()
		srv := httptest.NewServer(backend.mux)
		defer srv.Close()

		store := NewMemoryTokenStore()
		require.NoError(t, store.Set(&TokenPair{Refresh: "refresh-1"}))

		session := NewSession(NewClient(srv.URL, store), nil)
		session.Reload(context.Background())

		snap := session.Snapshot()
		require.Equal(t, StateAuthenticated, snap.State)
		require.EqualValues(t, 1, atomic.LoadInt32(&backend.refreshCalls))
		require.EqualValues(t, 1, atomic.LoadInt32(&backend.meCalls))

		pair := store.Get()
		require.NotNil(t, pair)
		require.Equal(t, "access-1", pair.Access)
		require.Equal(t, "refresh-1", pair.Refresh)
	})

	t.Run("refresh fails with no profile call attempted", func(t *testing.T) {
		backend := newAuthBackend()
		backend.refreshFails = true
		srv := httptest.NewServer(backend.mux)
		defer srv.Close()

		store := NewMemoryTokenStore()
		require.NoError(t, store.Set(&TokenPair{Refresh: "dead"}))

		session := NewSession(NewClient(srv.URL, store), nil)
		session.Reload(context.Background())

		require.Equal(t, StateAnonymous, session.Snapshot().State)
		require.EqualValues(t, 0, atomic.LoadInt32(&backend.meCalls))
		require.Nil(t, store.Get())
	})
}

func TestSessionProfileFailureFailsClosed(t *testing.T) {
	t.Parallel()

	backend := newAuthBackend()
	backend.refreshFails = true
	srv := httptest.NewServer(backend.mux)
	defer srv.Close()

	store := NewMemoryTokenStore()
	require.NoError(t, store.Set(&TokenPair{Access: "expired", Refresh: "dead"}))

	session := NewSession(NewClient(srv.URL, store), nil)
	session.Reload(context.Background())

	snap := session.Snapshot()
	require.Equal(t, StateAnonymous, snap.State)
	require.Nil(t, snap.User)
	require.Nil(t, store.Get())
}

func TestSessionLogoutIsIdempotent(t *testing.T) {
	t.Parallel()

	store := NewMemoryTokenStore()
	require.NoError(t, store.Set(&TokenPair{Access: "a", Refresh: "r"}))

	session := NewSession(NewClient("http://backend.invalid", store), nil)
	session.Logout()
	session.Logout()

	require.Equal(t, StateAnonymous, session.Snapshot().State)
	require.Nil(t, store.Get())
}
