package sonarr

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Defaults used when no option overrides them.
const (
	DefaultBasePath = "/api/"
	DefaultPort     = 8989
	DefaultTimeout  = 30 * time.Second

	defaultUserAgent = "go-sonarr"
)

// Client talks to a single Sonarr instance.
//
// The client holds one piece of mutable state, the Application cache filled
// by Update. Methods issue at most two sequential requests and take no
// internal locks; concurrent use of the same Client from multiple goroutines
// requires external synchronization by the caller.
type Client struct {
	host          string
	port          int
	apiKey        string
	basePath      string
	tls           bool
	verifyCert    bool
	apiKeyInQuery bool
	userAgent     string
	timeout       time.Duration

	httpClient *http.Client
	ownClient  bool
	logger     zerolog.Logger

	app    *Application
	closed bool
}

// NewClient creates a new Sonarr client for the given host and API key.
// Construction performs no network traffic; use Ping to probe connectivity.
func NewClient(host, apiKey string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if host == "" {
		return nil, fmt.Errorf("sonarr host is required: %w", ErrInvalidConfig)
	}
	if apiKey == "" {
		return nil, fmt.Errorf("sonarr API key is required: %w", ErrInvalidConfig)
	}

	client := &Client{
		host:       strings.TrimRight(host, "/"),
		port:       DefaultPort,
		apiKey:     apiKey,
		basePath:   DefaultBasePath,
		verifyCert: true,
		userAgent:  defaultUserAgent,
		timeout:    DefaultTimeout,
		logger:     logger,
	}

	for _, opt := range opts {
		opt(client)
	}

	if client.httpClient == nil {
		client.httpClient = &http.Client{Timeout: client.timeout}
		if !client.verifyCert {
			client.httpClient.Transport = &http.Transport{
				TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
			}
		}
		client.ownClient = true
	}

	return client, nil
}

// endpointURL builds the absolute URL for an API path.
func (c *Client) endpointURL(path string, params url.Values) string {
	scheme := "http"
	if c.tls {
		scheme = "https"
	}

	base := strings.Trim(c.basePath, "/")
	u := url.URL{
		Scheme: scheme,
		Host:   fmt.Sprintf("%s:%d", c.host, c.port),
		Path:   "/" + base + "/" + path,
	}

	if c.apiKeyInQuery {
		if params == nil {
			params = url.Values{}
		}
		params.Set("apikey", c.apiKey)
	}
	u.RawQuery = params.Encode()

	return u.String()
}

// request performs one API call and returns the raw JSON payload. All
// failure modes (connection, non-2xx status, unreadable body) surface as a
// *Error; nothing is retried.
func (c *Client) request(ctx context.Context, method, path string, params url.Values, body any) (json.RawMessage, error) {
	requestURL := c.endpointURL(path, params)

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, &Error{Message: "failed to encode request body", Err: err}
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, reader)
	if err != nil {
		return nil, &Error{Message: "failed to create request", Err: err}
	}

	if !c.apiKeyInQuery {
		req.Header.Set("X-Api-Key", c.apiKey)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debug().
		Str("method", method).
		Str("url", requestURL).
		Msg("Making Sonarr API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &Error{Message: "request failed", Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Message: "failed to read response body", Err: err}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &Error{
			StatusCode: resp.StatusCode,
			Message:    http.StatusText(resp.StatusCode),
			Body:       string(raw),
		}
	}

	return raw, nil
}

// decode unmarshals a response payload into out.
func decode(raw json.RawMessage, out any) error {
	if err := json.Unmarshal(raw, out); err != nil {
		return &Error{Message: "malformed JSON payload", Err: err}
	}
	return nil
}

// emptyPayload reports whether the server answered with no JSON value.
func emptyPayload(raw json.RawMessage) bool {
	trimmed := strings.TrimSpace(string(raw))
	return trimmed == "" || trimmed == "null"
}

// Close releases the transport resources held by the client. It is safe to
// call more than once; a client whose http.Client was supplied by the caller
// is left untouched.
func (c *Client) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true

	if c.ownClient {
		c.httpClient.CloseIdleConnections()
	}

	return nil
}
