package storesdk

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// refreshHandle is the shared in-flight refresh operation. It exists only
// while a refresh is active; concurrent 401s join the same handle instead of
// issuing duplicate refresh calls.
type refreshHandle struct {
	done   chan struct{}
	access string
	err    error
}

// awaitRefresh joins (or starts) the single-flight token refresh and blocks
// until it completes or ctx is cancelled. On success the refreshed access
// token has been merged into the token store, preserving the refresh token.
// On failure the store has been cleared, forcing a logged-out state.
func (c *Client) awaitRefresh(ctx context.Context, refreshToken string) (string, error) {
	c.mu.Lock()
	h := c.refresh
	if h == nil {
		h = &refreshHandle{done: make(chan struct{})}
		c.refresh = h
		go c.runRefresh(h, refreshToken)
	}
	c.mu.Unlock()

	select {
	case <-h.done:
		return h.access, h.err
	case <-ctx.Done():
		// The caller abandons the wait; the refresh itself keeps running so
		// other waiters still get a result.
		return "", ctx.Err()
	}
}

// runRefresh executes the refresh grant on behalf of every waiter. It runs
// detached from any individual caller's context so one cancelled request
// cannot abort the refresh for the others.
func (c *Client) runRefresh(h *refreshHandle, refreshToken string) {
	ctx, cancel := context.WithTimeout(context.Background(), DefaultTimeout)
	defer cancel()

	c.log().Debug("refreshing access token")

	access, err := c.refreshGrant(ctx, refreshToken)
	if err != nil {
		// Failed refresh means the credentials are no longer usable.
		_ = c.Tokens.Set(nil)
		c.log().Warn("token refresh failed", "err", err)
		h.err = err
	} else {
		next := &TokenPair{Access: access, Refresh: refreshToken}
		if pair := c.Tokens.Get(); pair != nil && pair.Refresh != "" {
			// Preserve a rotated refresh token if one landed meanwhile.
			next.Refresh = pair.Refresh
		}
		if serr := c.Tokens.Set(next); serr != nil {
			c.log().Warn("persisting refreshed tokens failed", "err", serr)
		}
		h.access = access
	}

	c.mu.Lock()
	c.refresh = nil
	c.mu.Unlock()
	close(h.done)
}

// refreshGrant exchanges a refresh token for a new access token. It goes
// straight to the transport rather than through Do: the refresh endpoint must
// never recurse into refresh handling.
func (c *Client) refreshGrant(ctx context.Context, refreshToken string) (string, error) {
	body := struct {
		Refresh string `json:"refresh"`
	}{Refresh: refreshToken}

	raw, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("encode refresh request: %w", err)
	}

	status, data, err := c.send(ctx, http.MethodPost, "/auth/refresh/", raw, "")
	if err != nil {
		return "", err
	}
	if status != http.StatusOK {
		return "", parseAPIError(status, data)
	}

	var resp struct {
		Access string `json:"access"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		return "", fmt.Errorf("decode refresh response: %w", err)
	}
	if resp.Access == "" {
		return "", fmt.Errorf("refresh response missing access token")
	}
	return resp.Access, nil
}
