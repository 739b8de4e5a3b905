// Package gymapi is the typed HTTP client for the remote gym REST API. It is
// the only component that builds requests; stores and handlers consume its
// per-resource methods and never touch the wire themselves.
package gymapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/gymcore/admin-console/internal/core/domain"
)

const defaultTimeout = 15 * time.Second

type tokenKey struct{}

// WithToken returns a context carrying the bearer credential for subsequent
// API calls. When absent the Authorization header is simply omitted and the
// upstream server decides whether to reject.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// TokenFromContext extracts the bearer credential placed by WithToken.
func TokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey{}).(string)
	return token, ok && token != ""
}

// Client talks to a fixed upstream origin over HTTPS with JSON bodies.
type Client struct {
	base string
	http *http.Client
	log  zerolog.Logger
}

// New creates a Client for the given base URL (e.g. "https://api.gym.example/api").
// Cookies set by the upstream are retained and replayed on every request.
func New(baseURL string, timeout time.Duration, log zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	jar, _ := cookiejar.New(nil)
	return &Client{
		base: strings.TrimRight(baseURL, "/"),
		http: &http.Client{Timeout: timeout, Jar: jar},
		log:  log,
	}
}

// Ping reports whether the upstream origin is reachable. Any HTTP response,
// including an error status, counts as reachable.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.base, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("upstream ping: %w", err)
	}
	_ = resp.Body.Close()
	return nil
}

// do executes one round trip: marshals body (when non-nil), attaches the
// bearer credential from ctx (when present), maps error statuses onto domain
// sentinels and decodes the response into out (when non-nil).
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token, ok := TokenFromContext(ctx); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		c.log.Warn().
			Str("method", method).
			Str("path", path).
			Int("status", resp.StatusCode).
			Msg("upstream rejected request")
		return statusError(resp.StatusCode, method, path)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// statusError maps an upstream status code onto a domain sentinel so callers
// can branch with errors.Is without ever seeing net/http.
func statusError(status int, method, path string) error {
	switch status {
	case http.StatusUnauthorized:
		return domain.ErrUnauthorized
	case http.StatusForbidden:
		return domain.ErrForbidden
	case http.StatusNotFound:
		return domain.ErrNotFound
	default:
		return fmt.Errorf("%w: %s %s returned %d", domain.ErrUpstream, method, path, status)
	}
}
