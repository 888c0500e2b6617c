package storesdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/buildmart/buildmart/pkg/reqid"
)

// Do executes an authenticated JSON request against the backend and decodes
// the response body into out when out is non-nil.
//
// The current access token is re-read from the token store for every attempt.
// On a 401 response, if a refresh token exists and the request has not been
// retried yet, Do joins the shared single-flight refresh and retries the
// request exactly once with the refreshed access token. If the refresh fails
// the token store is cleared and the original request's error is returned.
// All other errors propagate unchanged.
func (c *Client) Do(ctx context.Context, method, path string, body, out any) error {
	var raw []byte
	if body != nil {
		var err error
		raw, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
	}

	status, data, err := c.send(ctx, method, path, raw, c.currentAccess())
	if err != nil {
		return err
	}
	if status < 300 {
		return decodeInto(data, out)
	}

	apiErr := parseAPIError(status, data)
	if status != http.StatusUnauthorized {
		return apiErr
	}

	pair := c.Tokens.Get()
	if pair == nil || pair.Refresh == "" {
		return apiErr
	}

	access, refreshErr := c.awaitRefresh(ctx, pair.Refresh)
	if refreshErr != nil {
		// Refresh exhausted: the caller sees the original request's
		// authorization error, not the refresh error.
		return apiErr
	}

	// Retry exactly once. A second 401 propagates without another refresh.
	status, data, err = c.send(ctx, method, path, raw, access)
	if err != nil {
		return err
	}
	if status < 300 {
		return decodeInto(data, out)
	}
	return parseAPIError(status, data)
}

// Get is shorthand for Do with http.MethodGet and no request body.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.Do(ctx, http.MethodGet, path, nil, out)
}

// Post is shorthand for Do with http.MethodPost.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPost, path, body, out)
}

// currentAccess reads the access token from the store, empty when logged out.
func (c *Client) currentAccess() string {
	if pair := c.Tokens.Get(); pair != nil {
		return pair.Access
	}
	return ""
}

// send performs one HTTP round trip. The response body is fully read so the
// caller can parse it either as the expected payload or as an error shape.
func (c *Client) send(
	ctx context.Context,
	method, path string,
	body []byte,
	access string,
) (int, []byte, error) {
	if c.Limiter != nil {
		if err := c.Limiter.Wait(ctx); err != nil {
			return 0, nil, err
		}
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path), reader)
	if err != nil {
		return 0, nil, fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if access != "" {
		req.Header.Set("Authorization", "Bearer "+access)
	}
	req.Header.Set("X-Request-ID", reqid.New())

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("read response body: %w", err)
	}
	return resp.StatusCode, data, nil
}

func decodeInto(data []byte, out any) error {
	if out == nil {
		return nil
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
