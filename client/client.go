// Package client is a Go consumer of the storefront API. It keeps the
// session cookie in a cookie jar the way a browser would.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"sync"
	"time"

	"hardware-store/models"
)

type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a client for the API mounted at baseURL, e.g.
// "http://localhost:8082/api".
func New(baseURL string) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    &http.Client{Jar: jar, Timeout: 10 * time.Second},
	}, nil
}

type apiError struct {
	Message string `json:"message"`
}

// do sends body as JSON and decodes a 2xx response into out. Non-2xx
// responses return *StatusError.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var e apiError
		_ = json.NewDecoder(resp.Body).Decode(&e)
		return &StatusError{Code: resp.StatusCode, Message: e.Message}
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed (%d)", e.Code)
}

// Session tracks the signed-in user on the consumer side.
type Session struct {
	client *Client

	mu   sync.RWMutex
	user *models.User
}

func NewSession(c *Client) *Session {
	return &Session{client: c}
}

func (s *Session) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

func (s *Session) setUser(u *models.User) {
	s.mu.Lock()
	s.user = u
	s.mu.Unlock()
}

func (s *Session) Login(ctx context.Context, email, password string) (*models.User, error) {
	var resp models.SessionResponse
	err := s.client.do(ctx, http.MethodPost, "/auth/login", models.LoginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		var se *StatusError
		if errors.As(err, &se) && se.Message == "" {
			return nil, fmt.Errorf("login failed (%d)", se.Code)
		}
		return nil, err
	}

	s.setUser(resp.User)
	return resp.User, nil
}

// Logout always forgets the local user, whatever the server answers.
func (s *Session) Logout(ctx context.Context) error {
	defer s.setUser(nil)
	return s.client.do(ctx, http.MethodPost, "/auth/logout", nil, nil)
}

// CheckAuth refreshes the user from the server. Any failure leaves the
// session signed out.
func (s *Session) CheckAuth(ctx context.Context) *models.User {
	var resp models.SessionResponse
	if err := s.client.do(ctx, http.MethodGet, "/auth/me", nil, &resp); err != nil {
		s.setUser(nil)
		return nil
	}
	s.setUser(resp.User)
	return resp.User
}

// ConfigSource loads the store configuration from the API, for use with
// services.ConfigService.
type ConfigSource struct {
	client *Client
}

func NewConfigSource(c *Client) *ConfigSource {
	return &ConfigSource{client: c}
}

func (s *ConfigSource) Load(ctx context.Context) (*models.StoreConfig, error) {
	var cfg models.StoreConfig
	if err := s.client.do(ctx, http.MethodGet, "/config", nil, &cfg); err != nil {
		return nil, fmt.Errorf("fetch config: %w", err)
	}
	return &cfg, nil
}
