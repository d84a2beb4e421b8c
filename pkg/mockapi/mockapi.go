// Package mockapi simulates the remote API the profile flow talks to. Every
// call waits a fixed delay and then succeeds or fails as decided by a Strategy;
// the payload never influences the outcome.
package mockapi

import (
	"context"
	"net/http"
	"sync"
	"time"

	"opiol_backend/pkg/monitoring"
	"opiol_backend/pkg/tracing"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

const (
	DefaultDelay       = 1500 * time.Millisecond
	DefaultFailureRate = 0.3
)

const (
	MsgPostFailed   = "Server error. Please try again."
	MsgGetFailed    = "Failed to fetch data. Please try again."
	MsgPutFailed    = "Failed to update data. Please try again."
	MsgDeleteFailed = "Failed to delete. Please try again."

	MsgPostOK   = "Submission successful!"
	MsgPutOK    = "Update successful!"
	MsgDeleteOK = "Deletion successful!"
)

// Response mirrors the {success, message} body of the simulated endpoint.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Error is returned when the strategy decides the call fails.
type Error struct {
	Method  string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

type Client struct {
	mu       sync.RWMutex
	delay    time.Duration
	strategy Strategy
	logger   *zap.Logger
	debug    bool
}

type Option func(*Client)

func WithDelay(d time.Duration) Option {
	return func(c *Client) { c.delay = d }
}

func WithStrategy(s Strategy) Option {
	return func(c *Client) { c.strategy = s }
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// WithDebug enables payload logging, the development-mode side effect.
func WithDebug(debug bool) Option {
	return func(c *Client) { c.debug = debug }
}

func New(opts ...Option) *Client {
	c := &Client{
		delay:  DefaultDelay,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.strategy == nil {
		c.strategy = NewRandomStrategy(DefaultFailureRate, time.Now().UnixNano())
	}
	return c
}

// Reconfigure swaps delay and failure rate at runtime (config hot reload).
// The failure rate only applies when the client runs a *RandomStrategy.
func (c *Client) Reconfigure(delay time.Duration, failureRate float64) {
	c.mu.Lock()
	c.delay = delay
	strategy := c.strategy
	c.mu.Unlock()

	if rs, ok := strategy.(*RandomStrategy); ok {
		rs.SetFailureRate(failureRate)
	}
}

func (c *Client) Delay() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.delay
}

func (c *Client) Post(ctx context.Context, payload interface{}) (*Response, error) {
	return c.do(ctx, http.MethodPost, "", payload, MsgPostFailed, MsgPostOK)
}

// Get only reports success or failure: the simulated endpoint has no data.
func (c *Client) Get(ctx context.Context, endpoint string) error {
	_, err := c.do(ctx, http.MethodGet, endpoint, nil, MsgGetFailed, "")
	return err
}

func (c *Client) Put(ctx context.Context, endpoint string, payload interface{}) (*Response, error) {
	return c.do(ctx, http.MethodPut, endpoint, payload, MsgPutFailed, MsgPutOK)
}

func (c *Client) Delete(ctx context.Context, endpoint string) (*Response, error) {
	return c.do(ctx, http.MethodDelete, endpoint, nil, MsgDeleteFailed, MsgDeleteOK)
}

func (c *Client) do(ctx context.Context, method, endpoint string, payload interface{}, failMsg, okMsg string) (*Response, error) {
	c.mu.RLock()
	delay, strategy := c.delay, c.strategy
	c.mu.RUnlock()

	ctx, span := tracing.Tracer.Start(ctx, "mockapi "+method)
	defer span.End()
	span.SetAttributes(
		attribute.String("mockapi.endpoint", endpoint),
		attribute.Int64("mockapi.delay_ms", delay.Milliseconds()),
	)

	if err := wait(ctx, delay); err != nil {
		monitoring.TransportRequests.WithLabelValues(method, "cancelled").Inc()
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	if strategy.Attempt() == Failure {
		monitoring.TransportRequests.WithLabelValues(method, "failure").Inc()
		span.SetStatus(codes.Error, failMsg)
		return nil, &Error{Method: method, Message: failMsg}
	}

	if c.debug {
		c.logger.Debug("Mock API received",
			zap.String("method", method),
			zap.String("endpoint", endpoint),
			zap.Any("payload", payload),
		)
	}

	monitoring.TransportRequests.WithLabelValues(method, "success").Inc()
	return &Response{Success: true, Message: okMsg}, nil
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
