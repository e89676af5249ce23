// Package session implements the client side of the API: an HTTP client
// that carries the bearer token, a persistent token store, and the
// loading → authenticated | guest session state machine the UI drives.
package session

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"
)

// TokenHeader mirrors the header the server's authorization gate reads.
const TokenHeader = "x-auth-token"

// User is the public identity summary returned by the API. The password
// hash never appears on the wire.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type Contact struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthResult is the register/login response body.
type AuthResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// APIError is a non-2xx response with the server's message attached.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// Client is a thin API client. Once a token is set it rides along on
// every request as a default header, like the frontend's axios instance.
type Client struct {
	baseURL string
	http    *http.Client

	mu    sync.RWMutex
	token string
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// SetToken attaches the token to all subsequent requests.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// ClearToken removes the default token header.
func (c *Client) ClearToken() {
	c.SetToken("")
}

func (c *Client) currentToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *Client) Register(ctx context.Context, name, email, password string) (*AuthResult, error) {
	var out AuthResult
	err := c.do(ctx, http.MethodPost, "/auth/register",
		map[string]string{"name": name, "email": email, "password": password}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	var out AuthResult
	err := c.do(ctx, http.MethodPost, "/auth/login",
		map[string]string{"email": email, "password": password}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Me(ctx context.Context) (*User, error) {
	var out User
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type contactList struct {
	Success bool      `json:"success"`
	Count   int       `json:"count"`
	Data    []Contact `json:"data"`
}

func (c *Client) Contacts(ctx context.Context) ([]Contact, error) {
	var out contactList
	if err := c.do(ctx, http.MethodGet, "/contacts", nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

type CreateContactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone"`
	Message string `json:"message,omitempty"`
}

func (c *Client) CreateContact(ctx context.Context, in CreateContactInput) (*Contact, error) {
	var out struct {
		Data Contact `json:"data"`
	}
	if err := c.do(ctx, http.MethodPost, "/contacts", in, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

func (c *Client) DeleteContact(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/contacts/"+id, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.currentToken(); token != "" {
		req.Header.Set(TokenHeader, token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		if apiErr.Error == "" {
			apiErr.Error = http.StatusText(resp.StatusCode)
		}
		return &APIError{Status: resp.StatusCode, Message: apiErr.Error}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
