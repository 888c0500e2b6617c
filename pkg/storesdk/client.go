package storesdk

import (
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// DefaultTimeout bounds every outbound call. A timeout surfaces as a network
// failure, not an authorization failure, and never triggers refresh logic.
const DefaultTimeout = 15 * time.Second

// Client is the single entry point for outbound calls to the BuildMart
// backend. It attaches bearer auth from the token store and performs a
// single-flight refresh-and-retry-once on authorization failure.
//
// A Client is safe for concurrent use.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	// Tokens is the durable credential store. All token reads and writes go
	// through it; the Client holds no token state of its own.
	Tokens TokenStore

	// Limiter optionally throttles outbound requests. Nil disables
	// throttling.
	Limiter *rate.Limiter

	// Logger receives debug/warn records for refresh coordination. Nil falls
	// back to slog.Default().
	Logger *slog.Logger

	mu      sync.Mutex
	refresh *refreshHandle // shared in-flight refresh, nil when idle
}

// NewClient creates a Client for the backend at baseURL, storing credentials
// in the given store.
func NewClient(baseURL string, store TokenStore) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		Tokens: store,
	}
}

func (c *Client) log() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}

// url builds a complete URL by appending the path to the base URL.
func (c *Client) url(path string) string {
	return c.BaseURL + path
}
