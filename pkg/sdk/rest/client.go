// Package rest holds the authenticated HTTP session and the three verb-level
// primitives (Fetch, Submit, Remove) shared by every API operation. It maps
// transport and HTTP failures into the typed errors of errors.go and decodes
// JSON response bodies; it knows nothing about individual endpoints.
package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	// DefaultHost is the production API host.
	DefaultHost = "live.trading212.com"

	apiPrefix      = "/api/v0"
	defaultTimeout = 30 * time.Second
	userAgent      = "t212go/1.0"
)

// Config controls the session. All fields are optional except APIKey, which
// the api package validates before constructing a Client.
type Config struct {
	// Host is a bare hostname ("demo.trading212.com") or a full base URL
	// ("http://127.0.0.1:9999"); the /api/v0 prefix is appended either way.
	Host string

	// APIKey is sent verbatim as the Authorization header on every request.
	APIKey string

	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     *logrus.Logger

	// Throttle, when set, is consulted before every request. It lets polling
	// callers stay inside the per-endpoint quotas instead of collecting 429s.
	Throttle Throttle
}

// Throttle paces outgoing requests by path.
type Throttle interface {
	Wait(ctx context.Context, path string) error
}

// Client is the authenticated session: base URL plus credential header,
// constructed once and reused across calls. It holds no other state, so
// concurrent calls are safe.
//
// The client performs exactly one network attempt per call. Retry and
// backoff policy, including 429 handling, is left to the caller.
type Client struct {
	http     *resty.Client
	log      *logrus.Logger
	throttle Throttle
}

// NewClient builds the session. The credential is attached here, once; no
// per-call re-authentication happens afterwards.
func NewClient(cfg Config) *Client {
	host := cfg.Host
	if host == "" {
		host = DefaultHost
	}
	base := host
	if !strings.Contains(base, "://") {
		base = "https://" + base
	}
	base = strings.TrimSuffix(base, "/") + apiPrefix

	var rc *resty.Client
	if cfg.HTTPClient != nil {
		rc = resty.NewWithClient(cfg.HTTPClient)
	} else {
		rc = resty.New()
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = defaultTimeout
		}
		rc.SetTimeout(timeout)
	}

	rc.SetBaseURL(base).
		SetHeader("Authorization", cfg.APIKey).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", userAgent)

	log := cfg.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	return &Client{http: rc, log: log, throttle: cfg.Throttle}
}

// BaseURL reports the resolved base URL, mainly for logging.
func (c *Client) BaseURL() string {
	return c.http.BaseURL
}

// Fetch issues a GET and decodes the JSON body into out. Entries of query
// are sent as-is; callers omit absent parameters entirely rather than
// sending them empty.
func (c *Client) Fetch(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

// Submit issues a POST with a JSON body and decodes the JSON response into
// out.
func (c *Client) Submit(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

// Remove issues a DELETE. Any response body is discarded; the endpoints
// answering DELETE return no content on success.
func (c *Client) Remove(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	if c.throttle != nil {
		if err := c.throttle.Wait(ctx, path); err != nil {
			return &TransportError{Cause: err}
		}
	}

	req := c.http.R().SetContext(ctx)
	if len(query) > 0 {
		req.SetQueryParamsFromValues(query)
	}
	if body != nil {
		req.SetHeader("Content-Type", "application/json")
		req.SetBody(body)
	}

	reqID := uuid.NewString()
	fields := logrus.Fields{"request_id": reqID, "method": method, "path": path}
	c.log.WithFields(fields).Debug("dispatching request")

	start := time.Now()
	resp, err := req.Execute(method, path)
	if err != nil {
		c.log.WithFields(fields).WithError(err).Debug("request failed before a response")
		return &TransportError{Cause: err}
	}

	fields["status"] = resp.StatusCode()
	fields["duration"] = time.Since(start).Round(time.Millisecond).String()
	c.log.WithFields(fields).Debug("request complete")

	if resp.IsError() {
		return &APIError{
			StatusCode: resp.StatusCode(),
			Message:    errorMessage(resp),
			Path:       path,
		}
	}

	if out == nil {
		return nil
	}
	return Decode(resp.Body(), out)
}

// Decode unmarshals a response body, converting json failures into
// *SchemaError. Unknown fields are ignored so that additive API changes do
// not break decoding; a wrong primitive kind names the offending field.
func Decode(data []byte, out any) error {
	err := json.Unmarshal(data, out)
	if err == nil {
		return nil
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return &SchemaError{
			Field:  typeErr.Field,
			Reason: fmt.Sprintf("expected %s", typeErr.Type),
			Cause:  err,
		}
	}
	var schemaErr *SchemaError
	if errors.As(err, &schemaErr) {
		// Raised by an enum UnmarshalJSON; keep it intact.
		return schemaErr
	}
	return &SchemaError{Reason: "response is not valid JSON", Cause: err}
}

// errorMessage pulls the server message out of an error body. Trading212
// error bodies look like {"message": "..."}; anything else falls back to
// the status text.
func errorMessage(resp *resty.Response) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(resp.Body(), &body); err == nil && body.Message != "" {
		return body.Message
	}
	return resp.Status()
}
