package session

import (
	"context"
	"errors"
	"sync"
)

// State is the session lifecycle state. A session starts in StateLoading
// and settles into exactly one of StateAuthenticated or StateGuest; there
// are no other states and no automatic transitions afterwards.
type State int

const (
	StateLoading State = iota
	StateAuthenticated
	StateGuest
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateAuthenticated:
		return "authenticated"
	case StateGuest:
		return "guest"
	default:
		return "unknown"
	}
}

// Session owns the persisted token and the resolved identity. Views read
// it through State/User and mutate it only via Login, Register and Logout.
type Session struct {
	client *Client
	store  TokenStore

	mu    sync.Mutex
	state State
	user  *User
}

func New(client *Client, store TokenStore) *Session {
	return &Session{
		client: client,
		store:  store,
		state:  StateLoading,
	}
}

// Bootstrap loads the persisted token and resolves it against the server.
// No token, or any resolution failure, lands in guest; the failure is
// deliberately silent and the stale token is cleared. Only a token store
// read error is reported, since it means local state is unreadable rather
// than merely stale.
func (s *Session) Bootstrap(ctx context.Context) error {
	stored, err := s.store.Load()
	if err != nil {
		s.toGuest()
		return err
	}
	if stored == "" {
		s.toGuest()
		return nil
	}

	s.client.SetToken(stored)
	user, err := s.client.Me(ctx)
	if err != nil {
		_ = s.store.Clear()
		s.client.ClearToken()
		s.toGuest()
		return nil
	}

	s.mu.Lock()
	s.state = StateAuthenticated
	s.user = user
	s.mu.Unlock()
	return nil
}

// Login authenticates and, on success, persists the fresh token and moves
// to authenticated. On failure the session stays in its current state and
// the server's message is returned for the form UI.
func (s *Session) Login(ctx context.Context, email, password string) error {
	result, err := s.client.Login(ctx, email, password)
	if err != nil {
		return loginErr(err)
	}
	return s.establish(result)
}

// Register creates an account and establishes the session, mirroring Login.
func (s *Session) Register(ctx context.Context, name, email, password string) error {
	result, err := s.client.Register(ctx, name, email, password)
	if err != nil {
		return loginErr(err)
	}
	return s.establish(result)
}

// Logout drops the persisted token and returns to guest. Purely local —
// the token itself keeps working until it expires, there is no revocation.
func (s *Session) Logout() error {
	err := s.store.Clear()
	s.client.ClearToken()
	s.toGuest()
	return err
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// User returns the resolved identity, or nil outside StateAuthenticated.
func (s *Session) User() *User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateAuthenticated {
		return nil
	}
	u := *s.user
	return &u
}

func (s *Session) establish(result *AuthResult) error {
	if err := s.store.Save(result.Token); err != nil {
		return err
	}
	s.client.SetToken(result.Token)

	s.mu.Lock()
	s.state = StateAuthenticated
	user := result.User
	s.user = &user
	s.mu.Unlock()
	return nil
}

func (s *Session) toGuest() {
	s.mu.Lock()
	s.state = StateGuest
	s.user = nil
	s.mu.Unlock()
}

// loginErr surfaces the server's message for client-visible failures and
// keeps transport errors wrapped as-is.
func loginErr(err error) error {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return errors.New(apiErr.Message)
	}
	return err
}
