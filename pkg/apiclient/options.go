package apiclient

import "net/http"

// Option configures a Client at construction time.
type Option func(*Client)

// WithHTTPClient sets a custom http.Client, e.g. for timeouts, proxies or
// test transports.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTokenProvider sets the source of the bearer token. Without one the
// client sends unauthenticated requests.
func WithTokenProvider(tp TokenProvider) Option {
	return func(c *Client) {
		c.tokens = tp
	}
}

// RequestOption customizes a single request before it is sent.
type RequestOption func(*http.Request)

// WithHeader sets a header on the request. Applied after the client's
// defaults, so it overrides them.
func WithHeader(key, value string) RequestOption {
	return func(r *http.Request) {
		r.Header.Set(key, value)
	}
}
