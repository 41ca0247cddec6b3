package sonarr

import (
	"net/http"
	"time"
)

// Option configures a Client.
type Option func(*Client)

// WithPort sets the port the Sonarr instance listens on.
func WithPort(port int) Option {
	return func(c *Client) {
		if port > 0 {
			c.port = port
		}
	}
}

// WithBasePath overrides the API base path.
func WithBasePath(basePath string) Option {
	return func(c *Client) {
		if basePath != "" {
			c.basePath = basePath
		}
	}
}

// WithTLS enables HTTPS for all requests.
func WithTLS() Option {
	return func(c *Client) {
		c.tls = true
	}
}

// WithInsecureSkipVerify disables certificate verification.
// Use with caution and only for development/testing.
func WithInsecureSkipVerify() Option {
	return func(c *Client) {
		c.verifyCert = false
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithUserAgent sets a custom user agent string.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		if userAgent != "" {
			c.userAgent = userAgent
		}
	}
}

// WithAPIKeyInQuery sends the API key as the apikey query parameter instead
// of the X-Api-Key header.
func WithAPIKeyInQuery() Option {
	return func(c *Client) {
		c.apiKeyInQuery = true
	}
}

// WithHTTPClient supplies an externally managed http.Client, for example to
// share a connection pool. Close will not touch a client supplied this way,
// and WithTimeout and WithInsecureSkipVerify are ignored for it.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
			c.ownClient = false
		}
	}
}
