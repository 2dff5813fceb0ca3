// Package api is the typed HTTP client of the portfolio admin API.
//
// Every call returns an explicit outcome: nil, *Error for a rejected request,
// ErrUnauthenticated for any 401 and ErrTransient for timeouts, network
// failures and 5xx responses. Nothing is retried or intercepted here; the
// session store decides what a 401 means.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"portfolio/internal/domain/entity"
	"portfolio/internal/errors"
)

// DefaultTimeout bounds a single request.
const DefaultTimeout = 10 * time.Second

var (
	// ErrUnauthenticated is returned for every 401 response.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrTransient marks failures worth retrying later: timeouts, network errors and 5xx.
	ErrTransient = errors.New("transient failure")
)

// Error is a non-401 rejection carrying the server message.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// Client talks to one API base URL, e.g. http://localhost:5001/api.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// New returns a client for baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// AuthResult is returned by Login.
type AuthResult struct {
	entity.Identity
	Token   string `json:"token"`
	Message string `json:"message,omitempty"`
}

// Login exchanges credentials for a token.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	var out AuthResult
	body := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/auth/login", "", body, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Me resolves token to the identity it belongs to.
func (c *Client) Me(ctx context.Context, token string) (*entity.Identity, error) {
	var out entity.Identity
	if err := c.do(ctx, http.MethodGet, "/auth/me", token, nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// ProjectSummary is the card view returned by the project index.
type ProjectSummary struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Slug       string   `json:"slug"`
	Category   string   `json:"category"`
	TechStack  []string `json:"techStack"`
	IsFeatured bool     `json:"isFeatured"`
}

// Projects lists every project. The index is public; token may be empty.
func (c *Client) Projects(ctx context.Context) ([]ProjectSummary, error) {
	var out []ProjectSummary
	if err := c.do(ctx, http.MethodGet, "/projects", "", nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// Analytics returns the dashboard summary.
func (c *Client) Analytics(ctx context.Context, token string) (*entity.DashboardSummary, error) {
	var out entity.DashboardSummary
	if err := c.do(ctx, http.MethodGet, "/analytics", token, nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// ProjectStats returns per-project view totals, most viewed first.
func (c *Client) ProjectStats(ctx context.Context, token string) ([]entity.ProjectViewStat, error) {
	var out []entity.ProjectViewStat
	if err := c.do(ctx, http.MethodGet, "/analytics/details", token, nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// Messages lists contact messages, newest first.
func (c *Client) Messages(ctx context.Context, token string) ([]entity.ContactMessage, error) {
	var out []entity.ContactMessage
	if err := c.do(ctx, http.MethodGet, "/contact", token, nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

type errorBody struct {
	Message string `json:"message"`
}

func (c *Client) do(ctx context.Context, method, path, token string, in, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return errors.Wrap(err, "encode request")
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return errors.Wrap(err, "build request")
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil && errors.Is(err, context.Canceled) {
			return errors.WithStack(ctx.Err())
		}

		return errors.Join(ErrTransient, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return ErrUnauthenticated
	case resp.StatusCode >= http.StatusInternalServerError:
		return errors.Join(ErrTransient, &Error{Status: resp.StatusCode, Message: readMessage(resp.Body)})
	case resp.StatusCode >= http.StatusBadRequest:
		return &Error{Status: resp.StatusCode, Message: readMessage(resp.Body)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "decode response")
	}

	return nil
}

func readMessage(r io.Reader) string {
	var body errorBody
	if err := json.NewDecoder(io.LimitReader(r, 64<<10)).Decode(&body); err != nil || body.Message == "" {
		return "request failed"
	}

	return body.Message
}
