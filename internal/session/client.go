// Package session talks to the external session-identity provider. When the
// provider recognizes the inbound credential it returns the session's user;
// callers fall back to local token verification otherwise.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"storefront-service/internal/model"
)

var ErrNoSession = errors.New("no session for credential")

type Client struct {
	baseURL string
	client  *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

// Enabled reports whether a provider URL was configured at all.
func (c *Client) Enabled() bool {
	return c.baseURL != ""
}

type sessionUser struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
	Active  bool   `json:"active"`
}

// Resolve asks the provider for the identity behind the credential.
func (c *Client) Resolve(credential string) (*model.Principal, error) {
	req, err := http.NewRequest(http.MethodGet, fmt.Sprintf("%s/sessions/current", c.baseURL), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+credential)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("session request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, ErrNoSession
	}

	var u sessionUser
	if err := json.NewDecoder(resp.Body).Decode(&u); err != nil {
		return nil, err
	}
	if !u.Active {
		return nil, ErrNoSession
	}

	return &model.Principal{ID: u.ID, Email: u.Email, IsAdmin: u.IsAdmin}, nil
}
