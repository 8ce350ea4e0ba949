package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"sync"
	"time"
)

// Client talks to a GoTrue-style auth service and publishes every lifecycle
// change as exactly one event into the inbox. In local mode (no URL
// configured) it still publishes INITIAL_SESSION with no user so the gate
// runs its first check.
type Client struct {
	cfg   Config
	http  *http.Client
	inbox *Inbox
	store *SessionStore

	mu      sync.Mutex
	session *Session
	loading bool
}

func NewClient(cfg Config, inbox *Inbox) *Client {
	return &Client{
		cfg:   cfg,
		inbox: inbox,
		store: NewSessionStore(cfg.SessionFile),
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
			Timeout: 15 * time.Second,
		},
		loading: true,
	}
}

// Loading reports whether the initial session restore is still in flight.
func (c *Client) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// CurrentUser returns the signed-in user, or nil.
func (c *Client) CurrentUser() *User {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session == nil {
		return nil
	}
	u := c.session.User
	return &u
}

// Restore loads any persisted session, refreshing it when expired, then
// publishes INITIAL_SESSION. It must be called once at startup; until it
// returns, Loading reports true and the gate waits.
func (c *Client) Restore(ctx context.Context) {
	defer func() {
		c.mu.Lock()
		c.loading = false
		c.mu.Unlock()
		c.inbox.Publish(EventInitialSession)
	}()

	if !c.cfg.Enabled() {
		return
	}
	sess, err := c.store.Load()
	if err != nil || sess == nil {
		return
	}
	if sess.Expired(time.Now()) {
		refreshed, err := c.refreshToken(ctx, sess.RefreshToken)
		if err != nil {
			return
		}
		sess = refreshed
		_ = c.store.Save(sess)
	}
	c.mu.Lock()
	c.session = sess
	c.mu.Unlock()
}

// SignIn performs a password grant and publishes SIGNED_IN on success.
func (c *Client) SignIn(ctx context.Context, email, password string) error {
	if !c.cfg.Enabled() {
		return ErrNotConfigured
	}
	sess, err := c.tokenRequest(ctx, "/token?grant_type=password", map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return err
	}
	c.setSession(sess)
	c.inbox.Publish(EventSignedIn)
	return nil
}

// SignUp registers a new account and publishes SIGNED_IN when the service
// returns a live session.
func (c *Client) SignUp(ctx context.Context, email, password string) error {
	if !c.cfg.Enabled() {
		return ErrNotConfigured
	}
	sess, err := c.tokenRequest(ctx, "/signup", map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return err
	}
	c.setSession(sess)
	c.inbox.Publish(EventSignedIn)
	return nil
}

// SignOut drops the session locally, best-effort revokes it remotely, and
// publishes SIGNED_OUT.
func (c *Client) SignOut(ctx context.Context) error {
	c.mu.Lock()
	token := ""
	if c.session != nil {
		token = c.session.AccessToken
	}
	c.session = nil
	c.mu.Unlock()

	_ = c.store.Clear()
	if c.cfg.Enabled() && token != "" {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.URL+"/logout", nil)
		if err == nil {
			c.authorize(req, token)
			if resp, err := c.http.Do(req); err == nil {
				resp.Body.Close()
			}
		}
	}
	c.inbox.Publish(EventSignedOut)
	return nil
}

// Refresh exchanges the refresh token for a new session and publishes
// TOKEN_REFRESHED. The gate treats that event as a no-op.
func (c *Client) Refresh(ctx context.Context) error {
	c.mu.Lock()
	if c.session == nil {
		c.mu.Unlock()
		return ErrNoSession
	}
	refreshToken := c.session.RefreshToken
	c.mu.Unlock()

	sess, err := c.refreshToken(ctx, refreshToken)
	if err != nil {
		return err
	}
	c.setSession(sess)
	c.inbox.Publish(EventTokenRefreshed)
	return nil
}

// UpdateEmail changes the account email and publishes USER_UPDATED.
func (c *Client) UpdateEmail(ctx context.Context, email string) error {
	c.mu.Lock()
	if c.session == nil {
		c.mu.Unlock()
		return ErrNoSession
	}
	token := c.session.AccessToken
	c.mu.Unlock()

	body, _ := json.Marshal(map[string]string{"email": email})
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.cfg.URL+"/user", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.authorize(req, token)

	resp, err := c.http.Do(req)
	if err != nil {
		return wrapNetErr(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("auth service returned status %d", resp.StatusCode)
	}

	c.mu.Lock()
	if c.session != nil {
		c.session.User.Email = email
	}
	c.mu.Unlock()
	c.inbox.Publish(EventUserUpdated)
	return nil
}

// StartRefreshLoop refreshes the token on an interval until ctx is done.
// Failures are silent; the next interval retries.
func (c *Client) StartRefreshLoop(ctx context.Context) {
	if !c.cfg.Enabled() || c.cfg.RefreshSecs <= 0 {
		return
	}
	go func() {
		ticker := time.NewTicker(time.Duration(c.cfg.RefreshSecs) * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				_ = c.Refresh(ctx)
			}
		}
	}()
}

func (c *Client) setSession(sess *Session) {
	c.mu.Lock()
	c.session = sess
	c.mu.Unlock()
	_ = c.store.Save(sess)
}

func (c *Client) authorize(req *http.Request, token string) {
	req.Header.Set("apikey", c.cfg.APIKey)
	req.Header.Set("Authorization", "Bearer "+token)
}

// tokenResponse is the JSON body returned by the token and signup endpoints.
type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
	User         User   `json:"user"`
}

func (c *Client) refreshToken(ctx context.Context, refreshToken string) (*Session, error) {
	return c.tokenRequest(ctx, "/token?grant_type=refresh_token", map[string]string{
		"refresh_token": refreshToken,
	})
}

func (c *Client) tokenRequest(ctx context.Context, path string, payload map[string]string) (*Session, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.URL+path, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.cfg.APIKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, wrapNetErr(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnauthorized:
		return nil, ErrInvalidCredentials
	default:
		return nil, fmt.Errorf("auth service returned status %d: %s", resp.StatusCode, string(respBody))
	}

	var tr tokenResponse
	if err := json.Unmarshal(respBody, &tr); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	if tr.AccessToken == "" {
		return nil, fmt.Errorf("auth service returned an empty session")
	}

	return &Session{
		AccessToken:  tr.AccessToken,
		RefreshToken: tr.RefreshToken,
		ExpiresAt:    time.Now().Add(time.Duration(tr.ExpiresIn) * time.Second),
		User:         tr.User,
	}, nil
}

func wrapNetErr(err error) error {
	var netErr *net.OpError
	if errors.As(err, &netErr) {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return err
}
