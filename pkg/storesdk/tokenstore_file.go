package storesdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// FileTokenStore persists the token pair as a JSON file. Writes are
// synchronous; a missing or corrupt file reads as logged-out.
type FileTokenStore struct {
	path string
	mu   sync.Mutex
}

// NewFileTokenStore creates a store backed by the given file path. Parent
// directories are created on the first write.
func NewFileTokenStore(path string) *FileTokenStore {
	return &FileTokenStore{path: path}
}

func (s *FileTokenStore) Get() *TokenPair {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil
	}

	var pair TokenPair
	if err := json.Unmarshal(raw, &pair); err != nil {
		return nil
	}
	if pair.Access == "" && pair.Refresh == "" {
		return nil
	}
	return &pair
}

func (s *FileTokenStore) Set(pair *TokenPair) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if pair == nil {
		if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("remove token file: %w", err)
		}
		return nil
	}

	raw, err := json.Marshal(pair)
	if err != nil {
		return fmt.Errorf("encode token pair: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("create token dir: %w", err)
		}
	}

	// Credentials file, owner-only.
	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		return fmt.Errorf("write token file: %w", err)
	}
	return nil
}
