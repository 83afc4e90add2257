package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
)

// TokenProvider exposes the current access token to the client. The
// credential store satisfies it; the client never mutates what it reads.
type TokenProvider interface {
	AccessToken() string
}

// Client performs JSON requests against the API with authentication context
// applied and errors normalized. It carries no session-lifecycle policy:
// it never refreshes tokens, never retries, never touches stored
// credentials.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenProvider
}

// New creates a client for the API at baseURL. Paths passed to Do are
// resolved relative to it; a trailing slash is trimmed.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Do performs one request. A non-nil body is JSON-encoded; a non-nil out
// receives the decoded 2xx response body. Default headers are
// Content-Type/Accept application/json plus, when the token provider
// reports a token, Authorization: Bearer. Request options are applied
// after the defaults, so caller-supplied headers win — including
// Authorization (deliberate last-writer-wins).
//
// Failures: network and codec problems match ErrTransport; every non-2xx
// status yields an *Error, with 401 additionally matching ErrUnauthenticated
// and 5xx matching ErrServer.
func (c *Client) Do(ctx context.Context, method, path string, body, out any, opts ...RequestOption) error {
	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return errors.Join(ErrTransport, err)
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return errors.Join(ErrTransport, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.tokens != nil {
		if token := c.tokens.AccessToken(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	for _, opt := range opts {
		opt(req)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Join(ErrTransport, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Join(ErrTransport, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newError(resp.StatusCode, data)
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return errors.Join(ErrTransport, err)
	}
	return nil
}

// Call performs a request and decodes the 2xx response body into T.
func Call[T any](ctx context.Context, c *Client, method, path string, body any, opts ...RequestOption) (T, error) {
	var out T
	err := c.Do(ctx, method, path, body, &out, opts...)
	return out, err
}
