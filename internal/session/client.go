package session

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Fetcher defines the read-only view of the supervisor the panel polls.
// Implemented by *Client; tests supply fakes.
type Fetcher interface {
	FetchSessions(ctx context.Context) ([]Session, error)
}

// Controller forwards process-control commands for a session. The panel
// fires these and ignores the result in-state; any effect shows up in a
// later FetchSessions response.
type Controller interface {
	Kill(ctx context.Context, id string) error
	Resume(ctx context.Context, id string) error
	Promote(ctx context.Context, id string) error
	Diagnostics(ctx context.Context, id string) error
}

var (
	_ Fetcher    = (*Client)(nil)
	_ Controller = (*Client)(nil)
)

// Client talks to the shell supervisor HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	defaultAPIBind   = "127.0.0.1:7497"
	defaultUserAgent = "shellpanel/0.1"
	requestTimeout   = 5 * time.Second
)

// NewClient builds a Client using the provided apiBind host:port value.
func NewClient(apiBind string) (*Client, error) {
	base, err := parseBaseURL(apiBind)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// FetchSessions retrieves the current session list, logs included.
func (c *Client) FetchSessions(ctx context.Context) ([]Session, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload ListResponse
	if err := c.do(ctx, http.MethodGet, "/api/sessions", &payload); err != nil {
		return nil, err
	}
	return payload.Sessions, nil
}

// Kill asks the supervisor to terminate the session.
func (c *Client) Kill(ctx context.Context, id string) error {
	return c.action(ctx, id, "kill")
}

// Resume asks the supervisor to bring a backgrounded session forward.
func (c *Client) Resume(ctx context.Context, id string) error {
	return c.action(ctx, id, "resume")
}

// Promote asks the supervisor to move a foreground session to background.
func (c *Client) Promote(ctx context.Context, id string) error {
	return c.action(ctx, id, "promote")
}

// Diagnostics asks the supervisor to collect diagnostics for the session.
func (c *Client) Diagnostics(ctx context.Context, id string) error {
	return c.action(ctx, id, "diagnostics")
}

func (c *Client) action(ctx context.Context, id, verb string) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("session id required")
	}
	path := fmt.Sprintf("/api/sessions/%s/%s", url.PathEscape(id), verb)
	return c.do(ctx, http.MethodPost, path, nil)
}

func (c *Client) do(ctx context.Context, method, path string, dest any) error {
	rel := &url.URL{Path: path}
	reqURL := c.baseURL.ResolveReference(rel)
	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("api %s returned status %d", rel.String(), resp.StatusCode)
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseBaseURL(apiBind string) (*url.URL, error) {
	trimmed := strings.TrimSpace(apiBind)
	if trimmed == "" {
		trimmed = defaultAPIBind
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api_bind %q: %w", apiBind, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
