// Package api is the typed Trading212 client: one method per API endpoint,
// each binding a domain type to a path and verb. Transport concerns live in
// pkg/sdk/rest; this package adds path building, query parameters and
// schema validation of decoded values.
package api

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/equitybot/t212go/pkg/sdk/rest"
)

// ConfigError is a fatal construction-time problem, raised before any
// network activity.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "config: " + e.Reason
}

// Client is the resource façade. It is stateless apart from the underlying
// session, so one instance can serve concurrent callers.
type Client struct {
	rest *rest.Client
}

type options struct {
	host       string
	timeout    time.Duration
	httpClient *http.Client
	logger     *logrus.Logger
	throttle   rest.Throttle
}

// Option customizes the client at construction time.
type Option func(*options)

// WithHost overrides the API host, e.g. "demo.trading212.com". A full base
// URL with scheme is accepted too, which is what tests use.
func WithHost(host string) Option {
	return func(o *options) { o.host = host }
}

// WithTimeout overrides the default 30s per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// WithHTTPClient swaps in a caller-owned http.Client; its timeout settings
// then apply instead of WithTimeout.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *options) { o.httpClient = hc }
}

// WithLogger routes request logging somewhere other than the standard
// logrus logger.
func WithLogger(l *logrus.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithThrottle paces requests through a client-side limiter such as
// ratelimit.Defaults(). Without one, every call goes straight out and quota
// violations surface as 429 APIErrors.
func WithThrottle(t rest.Throttle) Option {
	return func(o *options) { o.throttle = t }
}

// NewClient builds a client around an API key. The key is an explicit
// parameter on purpose: the client never reads the environment. An empty
// key is a *ConfigError, returned before any network call.
func NewClient(apiKey string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, &ConfigError{Reason: "API key is required"}
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return &Client{
		rest: rest.NewClient(rest.Config{
			Host:       o.host,
			APIKey:     apiKey,
			Timeout:    o.timeout,
			HTTPClient: o.httpClient,
			Logger:     o.logger,
			Throttle:   o.throttle,
		}),
	}, nil
}

// get fetches and schema-checks in one step; every GET endpoint goes
// through here.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	if err := c.rest.Fetch(ctx, path, query, out); err != nil {
		return err
	}
	return checkSchema(out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	if err := c.rest.Submit(ctx, path, body, out); err != nil {
		return err
	}
	return checkSchema(out)
}
