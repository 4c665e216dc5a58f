// Package ipquery is a client for the https://api.ipquery.io API. It
// looks up geolocation, ISP and risk information for IP addresses,
// either one at a time or in bulk, and can fetch the caller's own
// public IP address.
//
// The simplest usage is the package-level functions, which share a
// default client:
//
//	info, err := ipquery.QueryIP(ctx, "8.8.8.8")
//
// Callers needing their own transport, timeout or endpoint build a
// Client with NewClient and the With* options.
package ipquery

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultEndpoint is the base URL of the ipquery.io API.
const DefaultEndpoint = "https://api.ipquery.io/"

// Version is the client version, sent in the User-Agent header.
const Version = "1.0.0"

const defaultTimeout = 30 * time.Second

var (
	errMissingIP = errors.New("response is missing the ip field")
	errNotAnIP   = errors.New("response body is not an IP address")
)

// Client queries the ipquery.io API. A Client holds no state beyond
// its configuration, so a single Client is safe for concurrent use
// and any number of calls may run in parallel. The client imposes no
// rate limits and performs no retries; callers own both.
type Client struct {
	endpoint   string
	httpClient *http.Client
	userAgent  string
	logger     *logrus.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithEndpoint points the client at a different API base URL. A
// trailing slash is appended if missing.
func WithEndpoint(endpoint string) Option {
	return func(c *Client) {
		if !strings.HasSuffix(endpoint, "/") {
			endpoint += "/"
		}
		c.endpoint = endpoint
	}
}

// WithHTTPClient replaces the underlying HTTP client, including its
// timeout. Useful for proxies and custom transports.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout sets the timeout on the underlying HTTP client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithUserAgent overrides the User-Agent header sent with requests.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithLogger sets the logger used for request debug logging. The
// default logger discards everything.
func WithLogger(logger *logrus.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a Client for the public ipquery.io endpoint,
// adjusted by the given options.
func NewClient(opts ...Option) *Client {
	c := &Client{
		endpoint:   DefaultEndpoint,
		httpClient: &http.Client{Timeout: defaultTimeout},
		userAgent:  "ipquery-go/" + Version,
		logger:     newDiscardLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func newDiscardLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// QueryIP fetches the information the provider holds for a single IP
// address. The address is not validated client-side; a malformed
// address is forwarded and the provider's response surfaces as-is.
func (c *Client) QueryIP(ctx context.Context, ip string) (*IPInfo, error) {
	url := c.endpoint + ip

	status, body, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}

	var info IPInfo
	if err := json.Unmarshal(body, &info); err != nil {
		return nil, &DecodeError{URL: url, Status: status, Body: body, Err: err}
	}
	if info.IP == "" {
		return nil, &DecodeError{URL: url, Status: status, Body: body, Err: errMissingIP}
	}

	return &info, nil
}

// QueryBulk fetches information for multiple IP addresses with a
// single request. The results are returned in the order the provider
// sent them; correspondence with the input order is determined by the
// provider, not enforced by the client. An empty address list returns
// ErrNoAddresses.
func (c *Client) QueryBulk(ctx context.Context, ips []string) ([]IPInfo, error) {
	if len(ips) == 0 {
		return nil, ErrNoAddresses
	}

	url := c.endpoint + strings.Join(ips, ",")

	status, body, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}

	var infos []IPInfo
	if err := json.Unmarshal(body, &infos); err != nil {
		return nil, &DecodeError{URL: url, Status: status, Body: body, Err: err}
	}
	for i := range infos {
		if infos[i].IP == "" {
			return nil, &DecodeError{URL: url, Status: status, Body: body, Err: errMissingIP}
		}
	}

	return infos, nil
}

// OwnIP fetches the public IP address of the calling machine. The
// provider answers with a plain-text body; the result is trimmed of
// surrounding whitespace and validated as an IP address.
func (c *Client) OwnIP(ctx context.Context) (string, error) {
	status, body, err := c.get(ctx, c.endpoint)
	if err != nil {
		return "", err
	}

	ip := strings.TrimSpace(string(body))
	if net.ParseIP(ip) == nil {
		return "", &DecodeError{URL: c.endpoint, Status: status, Body: body, Err: errNotAnIP}
	}

	return ip, nil
}

// get performs the HTTP exchange and returns the status and raw body.
// Transport failures are wrapped in NetworkError. The status is not
// special-cased here: provider error bodies fail schema decoding in
// the callers and surface as DecodeError with the status attached.
func (c *Client) get(ctx context.Context, url string) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, nil, &NetworkError{URL: url, Err: err}
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, &NetworkError{URL: url, Err: err}
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.Warnf("Failed to close response body: %v", err)
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, &NetworkError{URL: url, Err: err}
	}

	c.logger.WithFields(logrus.Fields{
		"url":           url,
		"status":        resp.StatusCode,
		"duration_ms":   time.Since(start).Milliseconds(),
		"response_size": len(body),
	}).Debug("request_completed")

	return resp.StatusCode, body, nil
}

// DefaultClient backs the package-level query functions.
var DefaultClient = NewClient()

// QueryIP fetches information for a single IP address using the
// default client.
func QueryIP(ctx context.Context, ip string) (*IPInfo, error) {
	return DefaultClient.QueryIP(ctx, ip)
}

// QueryBulk fetches information for multiple IP addresses using the
// default client.
func QueryBulk(ctx context.Context, ips []string) ([]IPInfo, error) {
	return DefaultClient.QueryBulk(ctx, ips)
}

// OwnIP fetches the caller's public IP address using the default
// client.
func OwnIP(ctx context.Context) (string, error) {
	return DefaultClient.OwnIP(ctx)
}
