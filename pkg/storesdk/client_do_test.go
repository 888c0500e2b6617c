package storesdk

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/buildmart/buildmart/pkg/reqid"
)

// fakeBackend is a minimal storefront API: /protected answers 200 only for
// the refreshed access token, /auth/refresh/ mints it.
type fakeBackend struct {
	mux *http.ServeMux

	refreshCalls int32
	rejected     int32

	// refreshGate, when non-nil, blocks the refresh handler until closed.
	refreshGate chan struct{}
}

func newFakeBackend(goodAccess string) *fakeBackend {
	b := &fakeBackend{mux: http.NewServeMux()}

	b.mux.HandleFunc("/auth/refresh/", func(w http.ResponseWriter, r *http.Request) {
		if b.refreshGate != nil {
			<-b.refreshGate
		}
		atomic.AddInt32(&b.refreshCalls, 1)

		var body struct {
			Refresh string `json:"refresh"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body.Refresh == "" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"detail":"refresh token required"}`))
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"access": goodAccess})
	})

	b.mux.HandleFunc("/protected", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+goodAccess {
			atomic.AddInt32(&b.rejected, 1)
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"detail":"token not valid"}`))
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
	})

	return b
}

func TestDoRefreshAndRetryOn401(t *testing.T) {
	t.Parallel()

	backend := newFakeBackend("fresh-access")
	srv := httptest.NewServer(backend.mux)
	defer srv.Close()

	store := NewMemoryTokenStore()
	require.NoError(t, store.Set(&TokenPair{Access: "stale-access", Refresh: "refresh-1"}))

	client := NewClient(srv.URL, store)

	var out map[string]bool
	require.NoError(t, client.Get(context.Background(), "/protected", &out))
	require.True(t, out["ok"])

	require.EqualValues(t, 1, atomic.LoadInt32(&backend.refreshCalls))
	require.EqualValues(t, 1, atomic.LoadInt32(&backend.rejected))

	// New access token merged into the store, refresh token preserved.
	pair := store.Get()
	require.NotNil(t, pair)
	require.Equal(t, "fresh-access", pair.Access)
	require.Equal(t, "refresh-1", pair.Refresh)
}

func TestDoConcurrent401sShareOneRefresh(t *testing.T) {
	t.Parallel()

	const workers = 8

	backend := newFakeBackend("fresh-access")
	backend.refreshGate = make(chan struct{})
	srv := httptest.NewServer(backend.mux)
	defer srv.Close()

	// Release the refresh only after every worker has been rejected once, so
	// all of them are forced to join the same in-flight refresh.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for atomic.LoadInt32(&backend.rejected) < workers {
			time.Sleep(time.Millisecond)
		}
		close(backend.refreshGate)
	}()

	store := NewMemoryTokenStore()
	require.NoError(t, store.Set(&TokenPair{Access: "stale-access", Refresh: "refresh-1"}))
	client := NewClient(srv.URL, store)

	var wg sync.WaitGroup
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			var out map[string]bool
			errs[i] = client.Get(context.Background(), "/protected", &out)
		}(i)
	}
	wg.Wait()
	<-done

	for i, err := range errs {
		require.NoError(t, err, "worker %d", i)
	}

	// Exactly one refresh call across all concurrent 401s, and each request
	// was rejected exactly once before its retry.
	require.EqualValues(t, 1, atomic.LoadInt32(&backend.refreshCalls))
	require.EqualValues(t, workers, atomic.LoadInt32(&backend.rejected))
}

func TestDoRefreshFailureClearsStoreAndReturnsOriginalError(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/auth/refresh/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"refresh token blacklisted"}`))
	})
	mux.HandleFunc("/protected", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"token not valid"}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	store := NewMemoryTokenStore()
	require.NoError(t, store.Set(&TokenPair{Access: "stale", Refresh: "dead"}))
	client := NewClient(srv.URL, store)

	err := client.Get(context.Background(), "/protected", nil)
	require.Error(t, err)

	// The original request's error surfaces, not the refresh error.
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	require.Equal(t, "token not valid", apiErr.Detail)

	// Forced logged-out state.
	require.Nil(t, store.Get())
}

func TestDoWithoutRefreshTokenPropagates401(t *testing.T) {
	t.Parallel()

	var refreshCalls int32
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/refresh/", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&refreshCalls, 1)
	})
	mux.HandleFunc("/protected", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"token not valid"}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	store := NewMemoryTokenStore()
	require.NoError(t, store.Set(&TokenPair{Access: "stale"}))
	client := NewClient(srv.URL, store)

	err := client.Get(context.Background(), "/protected", nil)
	require.True(t, IsAuthorizationError(err))
	require.EqualValues(t, 0, atomic.LoadInt32(&refreshCalls))
}

func TestDoValidationErrorPropagatesVerbatim(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/auth/register/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"username":["A user with that username already exists."]}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := NewClient(srv.URL, NewMemoryTokenStore())

	_, err := client.Register(context.Background(), RegisterRequest{Username: "taken"})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.True(t, apiErr.IsValidation())
	require.Equal(t, []string{"A user with that username already exists."}, apiErr.Fields["username"])
}

func TestDoTimeoutIsNetworkErrorNotRefresh(t *testing.T) {
	t.Parallel()

	var refreshCalls int32
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/refresh/", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&refreshCalls, 1)
	})
	mux.HandleFunc("/slow", func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	store := NewMemoryTokenStore()
	require.NoError(t, store.Set(&TokenPair{Access: "a", Refresh: "r"}))

	client := NewClient(srv.URL, store)
	client.HTTPClient.Timeout = 50 * time.Millisecond

	err := client.Get(context.Background(), "/slow", nil)
	require.Error(t, err)
	require.True(t, IsNetworkError(err))
	require.False(t, IsAuthorizationError(err))

	// No refresh, no session mutation.
	require.EqualValues(t, 0, atomic.LoadInt32(&refreshCalls))
	require.NotNil(t, store.Get())
}

func TestDoAttachesRequestID(t *testing.T) {
	t.Parallel()

	var gotID string
	mux := http.NewServeMux()
	mux.HandleFunc("/ping", func(w http.ResponseWriter, r *http.Request) {
		gotID = r.Header.Get("X-Request-ID")
		_, _ = w.Write([]byte(`{}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := NewClient(srv.URL, NewMemoryTokenStore())
	require.NoError(t, client.Get(context.Background(), "/ping", nil))
	require.True(t, reqid.Valid(gotID), "X-Request-ID %q should be a ULID", gotID)
}
