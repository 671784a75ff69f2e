// Package platform implements the outbound HTTP clients for the Supplier
// Portal and the Menu Platform.
package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/supplierhub/relay/internal/domain/relay"
	"github.com/supplierhub/relay/internal/infrastructure/logger"
	"github.com/supplierhub/relay/internal/infrastructure/telemetry"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

const (
	// DefaultTimeout bounds a single platform call
	DefaultTimeout = 30 * time.Second
	// DefaultMaxResponseSize caps how much of a response body is read (10MB)
	DefaultMaxResponseSize = 10 * 1024 * 1024

	// maxErrorBodyLog is how much of a rejected response body is kept in errors
	maxErrorBodyLog = 512
)

// ErrMissingBaseURL is returned when a client is built without a base URL
var ErrMissingBaseURL = errors.New("platform: base URL is required")

// Config configures a platform client
type Config struct {
	BaseURL         string
	APIKey          string
	Timeout         time.Duration
	MaxResponseSize int64
	// Transport overrides the HTTP transport. Tests use it to point at httptest.
	Transport http.RoundTripper
}

// Client performs authenticated JSON calls against one platform.
// It never retries; a failed call is reported to the caller at once.
type Client struct {
	platform        relay.Platform
	baseURL         string
	apiKey          string
	maxResponseSize int64
	httpClient      *http.Client
	logger          *zap.Logger
	metrics         *telemetry.RelayMetrics
}

// NewClient creates a client for the given platform. metrics may be nil.
func NewClient(platform relay.Platform, cfg Config, log *zap.Logger, metrics *telemetry.RelayMetrics) (*Client, error) {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		return nil, ErrMissingBaseURL
	}
	if log == nil {
		log = zap.NewNop()
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	maxSize := cfg.MaxResponseSize
	if maxSize <= 0 {
		maxSize = DefaultMaxResponseSize
	}
	transport := cfg.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}

	return &Client{
		platform:        platform,
		baseURL:         baseURL,
		apiKey:          cfg.APIKey,
		maxResponseSize: maxSize,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(transport),
		},
		logger:  log.With(zap.String("platform", string(platform))),
		metrics: metrics,
	}, nil
}

// Platform returns the platform this client talks to
func (c *Client) Platform() relay.Platform {
	return c.platform
}

// call is one outbound request
type call struct {
	operation string
	method    string
	path      string
	query     url.Values
	body      any
}

// do sends the call and returns the raw JSON response document. An empty
// 2xx body yields a nil document.
func (c *Client) do(ctx context.Context, cl call) (json.RawMessage, error) {
	ctx, span := telemetry.StartClientSpan(ctx, string(c.platform), cl.operation,
		attribute.String("http.request.method", cl.method),
	)
	defer span.End()

	start := time.Now()
	raw, outcome, err := c.roundTrip(ctx, cl)
	c.metrics.RecordForward(ctx, string(c.platform), cl.operation, outcome, time.Since(start))

	log := logger.WithLogger(ctx, c.logger).With(
		zap.String("operation", cl.operation),
		zap.String("method", cl.method),
		zap.String("path", cl.path),
		zap.Duration("latency", time.Since(start)),
	)
	if err != nil {
		telemetry.RecordError(span, err)
		log.Warn("Platform call failed", zap.String("outcome", outcome), zap.Error(err))
		return nil, err
	}
	telemetry.SetOK(span)
	log.Debug("Platform call succeeded")
	return raw, nil
}

func (c *Client) roundTrip(ctx context.Context, cl call) (json.RawMessage, string, error) {
	endpoint := c.baseURL + cl.path
	if len(cl.query) > 0 {
		endpoint += "?" + cl.query.Encode()
	}

	var body io.Reader
	if cl.body != nil {
		payload, err := json.Marshal(cl.body)
		if err != nil {
			return nil, telemetry.OutcomeRejected, fmt.Errorf("platform: failed to encode %s body: %w", cl.operation, err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, cl.method, endpoint, body)
	if err != nil {
		return nil, telemetry.OutcomeRejected, fmt.Errorf("platform: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, telemetry.OutcomeUnavailable, fmt.Errorf("%w: %s %s: %v", relay.ErrPlatformUnavailable, cl.method, cl.path, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, c.maxResponseSize+1))
	if err != nil {
		return nil, telemetry.OutcomeUnavailable, fmt.Errorf("%w: failed to read response: %v", relay.ErrPlatformUnavailable, err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, telemetry.OutcomeNotFound, fmt.Errorf("%w: HTTP %d", relay.ErrPlatformNotFound, resp.StatusCode)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, telemetry.OutcomeRejected, fmt.Errorf("%w: HTTP %d: %s", relay.ErrPlatformRejected, resp.StatusCode, truncate(payload, maxErrorBodyLog))
	}

	if int64(len(payload)) > c.maxResponseSize {
		return nil, telemetry.OutcomeInvalid, fmt.Errorf("%w: response exceeds %d bytes", relay.ErrPlatformInvalidResponse, c.maxResponseSize)
	}
	payload = bytes.TrimSpace(payload)
	if len(payload) == 0 {
		return nil, telemetry.OutcomeSuccess, nil
	}
	if !json.Valid(payload) {
		return nil, telemetry.OutcomeInvalid, fmt.Errorf("%w: response is not JSON", relay.ErrPlatformInvalidResponse)
	}
	return json.RawMessage(payload), telemetry.OutcomeSuccess, nil
}

func truncate(b []byte, n int) string {
	s := strings.TrimSpace(string(b))
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
