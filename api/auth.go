// ABOUTME: Authentication endpoint
// ABOUTME: Exchanges credentials for a token and stores it in the session
package api

import (
	"context"
	"fmt"
	"net/http"
)

type authRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string `json:"token"`
}

// Login authenticates and persists the returned token in the session so
// every subsequent request carries it.
func (c *Client) Login(ctx context.Context, username, password string) error {
	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/auth/authenticate", authRequest{
		Username: username,
		Password: password,
	}, &resp); err != nil {
		return err
	}
	if resp.Token == "" {
		return fmt.Errorf("backend returned an empty token")
	}
	if err := c.session.Save(resp.Token); err != nil {
		return fmt.Errorf("authenticated but failed to persist session: %w", err)
	}
	return nil
}

// Logout clears the persisted session.
func (c *Client) Logout() error {
	return c.session.Clear()
}

// LoggedIn reports whether a token is present. It says nothing about the
// token still being accepted by the backend.
func (c *Client) LoggedIn() bool {
	return c.session.Token() != ""
}
