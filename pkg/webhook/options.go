package webhook

import (
	"net/http"
	"time"
)

// DeliveryResult describes one delivery attempt.
type DeliveryResult struct {
	DeliveryID string
	Attempt    int
	StatusCode int
	Duration   time.Duration
	Err        error
}

// Success reports whether the endpoint answered with a 2xx status.
func (r DeliveryResult) Success() bool {
	return r.Err == nil && r.StatusCode >= 200 && r.StatusCode < 300
}

// DeliveryHook is called after each delivery attempt.
type DeliveryHook func(result DeliveryResult)

// SendOption configures a single Send call.
type SendOption func(*sendOptions)

type sendOptions struct {
	timeout    time.Duration
	headers    http.Header
	maxRetries int
	backoff    BackoffStrategy
	deliveryID string
	onDelivery DeliveryHook
}

func defaultSendOptions() *sendOptions {
	return &sendOptions{
		timeout:    5 * time.Second,
		headers:    make(http.Header),
		maxRetries: 3,
		backoff:    DefaultBackoffStrategy(),
	}
}

// WithTimeout bounds each attempt. Default 5s.
func WithTimeout(timeout time.Duration) SendOption {
	return func(o *sendOptions) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithHeader sets a request header. Empty keys or values are ignored.
func WithHeader(key, value string) SendOption {
	return func(o *sendOptions) {
		if key != "" && value != "" {
			o.headers.Set(key, value)
		}
	}
}

// WithMaxRetries sets the number of retries after the first attempt. Default 3.
func WithMaxRetries(n int) SendOption {
	return func(o *sendOptions) {
		if n >= 0 {
			o.maxRetries = n
		}
	}
}

// WithNoRetry disables retries.
func WithNoRetry() SendOption {
	return WithMaxRetries(0)
}

// WithBackoff replaces the retry delay strategy.
func WithBackoff(strategy BackoffStrategy) SendOption {
	return func(o *sendOptions) {
		if strategy != nil {
			o.backoff = strategy
		}
	}
}

// WithDeliveryID sets the X-Webhook-ID value instead of a random UUID.
func WithDeliveryID(id string) SendOption {
	return func(o *sendOptions) {
		if id != "" {
			o.deliveryID = id
		}
	}
}

// WithOnDelivery registers a callback invoked after every attempt.
func WithOnDelivery(hook DeliveryHook) SendOption {
	return func(o *sendOptions) { o.onDelivery = hook }
}
