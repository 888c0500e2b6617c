// Package reqid generates request correlation IDs for outbound API calls.
// IDs are ULIDs: lexicographically sortable, timestamp-prefixed, and safe to
// generate concurrently.
package reqid

import (
	"crypto/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

var (
	mu      sync.Mutex
	entropy = ulid.Monotonic(rand.Reader, 0)
)

// New returns a fresh request ID based on the current UTC time.
func New() string {
	mu.Lock()
	defer mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now().UTC()), entropy).String()
}

// Valid reports whether s is a well-formed request ID.
func Valid(s string) bool {
	_, err := ulid.ParseStrict(s)
	return err == nil
}
