// Package api implements the authenticated HTTP client for the CAD REST
// backend. Every request carries a bearer access token when one is stored;
// a 401 response triggers exactly one silent token refresh followed by a
// replay of the original request.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/mohammadmehrani/CAD/internal/logging"
	"github.com/mohammadmehrani/CAD/internal/tokens"
)

const (
	headerAuthorization = "Authorization"
	headerContentType   = "Content-Type"
	headerRequestID     = "X-Request-ID"
	contentTypeJSON     = "application/json"

	// DefaultTimeout bounds every outgoing request.
	DefaultTimeout = 10 * time.Second
)

// Client talks to the backend. Construct it with New and share one
// instance; it is safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  tokens.Store
	log     logging.Logger

	// expired is invoked after a failed refresh, once both tokens are
	// cleared. The session store uses it to force the login entry point.
	expired func()
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client (tests).
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithLogger sets the structured logger.
func WithLogger(l logging.Logger) Option {
	return func(c *Client) { c.log = l }
}

// WithSessionExpiredHook registers the callback fired after an
// irrecoverable refresh failure.
func WithSessionExpiredHook(fn func()) Option {
	return func(c *Client) { c.expired = fn }
}

// New returns a Client rooted at baseURL that reads and writes tokens
// through store.
func New(baseURL string, store tokens.Store, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: DefaultTimeout},
		tokens:  store,
		log:     logging.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// attempt carries one logical call through the send path. The retried bit
// travels with the attempt, never on the request object, so the refresh
// sequence can fire at most once per call.
type attempt struct {
	method  string
	path    string
	query   url.Values
	body    []byte
	retried bool
}

func (c *Client) do(ctx context.Context, a *attempt, result any) error {
	resp, respBody, err := c.send(ctx, a)
	if err != nil {
		return err
	}

	if resp.StatusCode == http.StatusUnauthorized && !a.retried {
		a.retried = true
		return c.refreshAndReplay(ctx, a, parseError(resp.StatusCode, respBody), result)
	}

	if resp.StatusCode >= 400 {
		return parseError(resp.StatusCode, respBody)
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to parse response: %w", err)
		}
	}
	return nil
}

// send issues the HTTP request for a and returns the response with its
// fully-read body. Transport failures come back wrapped in ErrNetwork.
func (c *Client) send(ctx context.Context, a *attempt) (*http.Response, []byte, error) {
	reqURL, err := url.JoinPath(c.baseURL, a.path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build URL: %w", err)
	}
	if len(a.query) > 0 {
		reqURL += "?" + a.query.Encode()
	}

	var bodyReader io.Reader
	if a.body != nil {
		bodyReader = bytes.NewReader(a.body)
	}

	req, err := http.NewRequestWithContext(ctx, a.method, reqURL, bodyReader)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set(headerRequestID, uuid.NewString())
	if a.body != nil {
		req.Header.Set(headerContentType, contentTypeJSON)
	}

	access, err := c.tokens.Get(ctx, tokens.KeyAccessToken)
	if err != nil {
		return nil, nil, err
	}
	if access != "" {
		req.Header.Set(headerAuthorization, "Bearer "+access)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	return resp, respBody, nil
}

// refreshAndReplay exchanges the stored refresh token for a new access
// token and re-issues the original attempt. origErr is the normalized 401
// from the first try; it is what the caller sees whenever the refresh path
// cannot produce a replayed result.
func (c *Client) refreshAndReplay(ctx context.Context, a *attempt, origErr error, result any) error {
	refresh, err := c.tokens.Get(ctx, tokens.KeyRefreshToken)
	if err != nil {
		return err
	}
	if refresh == "" {
		return fmt.Errorf("%w: %w", ErrNoRefreshToken, origErr)
	}

	access, err := c.refreshAccessToken(ctx, refresh)
	if err != nil {
		c.log.Warn(ctx, "token refresh failed, clearing session", "error", err)
		if clearErr := c.tokens.Clear(ctx); clearErr != nil {
			c.log.Error(ctx, "failed to clear tokens", "error", clearErr)
		}
		if c.expired != nil {
			c.expired()
		}
		return origErr
	}

	if err := c.tokens.Set(ctx, tokens.KeyAccessToken, access); err != nil {
		return err
	}

	c.log.Info(ctx, "access token refreshed, replaying request", "path", a.path)
	return c.do(ctx, a, result)
}

// refreshAccessToken calls the refresh endpoint directly, outside the
// interceptor, so a rejected refresh can never recurse.
func (c *Client) refreshAccessToken(ctx context.Context, refresh string) (string, error) {
	reqURL, err := url.JoinPath(c.baseURL, "/auth/token/refresh/")
	if err != nil {
		return "", err
	}

	payload, err := json.Marshal(map[string]string{"refresh": refresh})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set(headerContentType, contentTypeJSON)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	if resp.StatusCode >= 400 {
		return "", parseError(resp.StatusCode, respBody)
	}

	var out struct {
		Access string `json:"access"`
	}
	if err := json.Unmarshal(respBody, &out); err != nil {
		return "", fmt.Errorf("failed to parse refresh response: %w", err)
	}
	return out.Access, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, result any) error {
	return c.do(ctx, &attempt{method: http.MethodGet, path: path, query: query}, result)
}

func (c *Client) post(ctx context.Context, path string, body, result any) error {
	payload, err := marshalBody(body)
	if err != nil {
		return err
	}
	return c.do(ctx, &attempt{method: http.MethodPost, path: path, body: payload}, result)
}

func (c *Client) patch(ctx context.Context, path string, body, result any) error {
	payload, err := marshalBody(body)
	if err != nil {
		return err
	}
	return c.do(ctx, &attempt{method: http.MethodPatch, path: path, body: payload}, result)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, &attempt{method: http.MethodDelete, path: path}, nil)
}

func marshalBody(body any) ([]byte, error) {
	if body == nil {
		return nil, nil
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}
	return payload, nil
}
