package storesdk

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// User is the authenticated account profile returned by the backend.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
}

// RegisterRequest is the payload for creating a new account.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role,omitempty"`
}

// HealthStatus is the backend health probe response.
type HealthStatus struct {
	OK      bool   `json:"ok"`
	App     string `json:"app"`
	Version string `json:"version"`
	DB      string `json:"db"`
}

// LoginGrant exchanges credentials for a token pair. It does not touch the
// token store; Session.Login persists the pair and derives the profile.
func (c *Client) LoginGrant(ctx context.Context, username, password string) (*TokenPair, error) {
	body := struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}{Username: username, Password: password}

	var pair TokenPair
	if err := c.plain(ctx, http.MethodPost, "/auth/login/", body, &pair); err != nil {
		return nil, err
	}
	if pair.Access == "" {
		return nil, fmt.Errorf("login response missing access token")
	}
	return &pair, nil
}

// Me fetches the profile of the currently authenticated user.
func (c *Client) Me(ctx context.Context) (*User, error) {
	var user User
	if err := c.Get(ctx, "/auth/me/", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Register creates a new account. Registration is public; new accounts
// default to the CUSTOMER role when none is given.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	var user User
	if err := c.plain(ctx, http.MethodPost, "/auth/register/", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Health probes the backend liveness endpoint.
func (c *Client) Health(ctx context.Context) (*HealthStatus, error) {
	var status HealthStatus
	if err := c.plain(ctx, http.MethodGet, "/health/", nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// plain performs an unauthenticated request with no refresh handling. Auth
// bootstrap endpoints use it: a 401 from the login endpoint is a credential
// failure, not a token expiry, and must not trigger a refresh.
func (c *Client) plain(ctx context.Context, method, path string, body, out any) error {
	var raw []byte
	if body != nil {
		var err error
		raw, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
	}

	status, data, err := c.send(ctx, method, path, raw, "")
	if err != nil {
		return err
	}
	if status >= 300 {
		return parseAPIError(status, data)
	}
	return decodeInto(data, out)
}
