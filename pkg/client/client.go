// Package client provides a small HTTP client for the API that manages the
// session lifecycle: it injects the bearer access token, stores the refresh
// cookie, and transparently refreshes an expired access token once per request.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"

	"github.com/pkg/errors"
)

// ErrSessionExpired is returned when the access token is rejected and the
// refresh attempt fails too. The caller must log in again.
var ErrSessionExpired = errors.New("session expired, login required")

// Client is a stateful API client bound to one user session.
// It is not safe for concurrent use.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	accessToken string
}

// Option customizes the client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. A cookie jar is
// attached if the given client has none, since the refresh token only
// travels as a cookie.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// New creates a client for the API at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	if _, err := url.Parse(baseURL); err != nil {
		return nil, errors.Wrap(err, "invalid base URL")
	}

	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.httpClient.Jar == nil {
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create cookie jar")
		}
		c.httpClient.Jar = jar
	}

	return c, nil
}

type credentials struct {
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// Register creates an account and starts a session.
func (c *Client) Register(ctx context.Context, username, email, password string) error {
	return c.authenticate(ctx, "/auth/register", credentials{
		Username: username,
		Email:    email,
		Password: password,
	})
}

// Login starts a session for an existing account.
func (c *Client) Login(ctx context.Context, username, password string) error {
	return c.authenticate(ctx, "/auth/login", credentials{
		Username: username,
		Password: password,
	})
}

func (c *Client) authenticate(ctx context.Context, path string, creds credentials) error {
	resp, err := c.post(ctx, path, creds)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("authentication failed with status %d", resp.StatusCode)
	}

	var body tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return errors.Wrap(err, "failed to decode token response")
	}

	c.accessToken = body.Token

	return nil
}

// Refresh exchanges the stored refresh cookie for a new access token.
func (c *Client) Refresh(ctx context.Context) error {
	resp, err := c.post(ctx, "/auth/refresh", nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.accessToken = ""

		return ErrSessionExpired
	}

	var body tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return errors.Wrap(err, "failed to decode token response")
	}

	c.accessToken = body.Token

	return nil
}

// Do performs an authenticated request against the API. On a 401 it refreshes
// the access token once and retries; a second rejection clears the stored
// token and surfaces ErrSessionExpired. The caller owns the response body.
func (c *Client) Do(ctx context.Context, method, path string, payload any) (*http.Response, error) {
	resp, err := c.send(ctx, method, path, payload, c.accessToken)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusUnauthorized {
		return resp, nil
	}

	resp.Body.Close()

	if err := c.Refresh(ctx); err != nil {
		return nil, err
	}

	resp, err = c.send(ctx, method, path, payload, c.accessToken)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		resp.Body.Close()
		c.accessToken = ""

		return nil, ErrSessionExpired
	}

	return resp, nil
}

func (c *Client) post(ctx context.Context, path string, payload any) (*http.Response, error) {
	return c.send(ctx, http.MethodPost, path, payload, "")
}

func (c *Client) send(ctx context.Context, method, path string, payload any, token string) (*http.Response, error) {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode request payload")
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}

	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)

	return resp, errors.Wrap(err, "request failed")
}
