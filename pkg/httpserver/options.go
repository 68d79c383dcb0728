package httpserver

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

// Hook runs around the server life-cycle. addr is the bound listener address.
type Hook func(ctx context.Context, log *slog.Logger, addr string)

// Option configures the HTTP server.
type Option func(*options)

type options struct {
	addr              string
	readTimeout       time.Duration
	readHeaderTimeout time.Duration
	writeTimeout      time.Duration
	idleTimeout       time.Duration
	shutdownTimeout   time.Duration
	server            *http.Server
	logger            *slog.Logger
	startHooks        []Hook
	stopHooks         []Hook
}

func defaultOptions() *options {
	return &options{
		addr:              ":8080",
		readHeaderTimeout: 10 * time.Second,
		shutdownTimeout:   5 * time.Second,
	}
}

// WithAddr sets the listen address. ":0" picks a free port; see Server.Addr.
func WithAddr(addr string) Option {
	if addr == "" {
		panic("WithAddr: addr cannot be empty")
	}
	return func(o *options) { o.addr = addr }
}

// WithReadTimeout sets the maximum duration for reading the entire request.
func WithReadTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("WithReadTimeout: duration must be > 0")
	}
	return func(o *options) { o.readTimeout = d }
}

// WithReadHeaderTimeout bounds the time spent reading request headers.
func WithReadHeaderTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("WithReadHeaderTimeout: duration must be > 0")
	}
	return func(o *options) { o.readHeaderTimeout = d }
}

// WithWriteTimeout sets the maximum duration before timing out writes of the response.
func WithWriteTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("WithWriteTimeout: duration must be > 0")
	}
	return func(o *options) { o.writeTimeout = d }
}

// WithIdleTimeout sets the keep-alive idle timeout.
func WithIdleTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("WithIdleTimeout: duration must be > 0")
	}
	return func(o *options) { o.idleTimeout = d }
}

// WithShutdownTimeout sets the time allowed for in-flight requests to drain.
func WithShutdownTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("WithShutdownTimeout: duration must be > 0")
	}
	return func(o *options) { o.shutdownTimeout = d }
}

// WithServer reuses srv. Timeouts already set on srv take precedence.
func WithServer(srv *http.Server) Option {
	if srv == nil {
		panic("WithServer: nil server")
	}
	return func(o *options) { o.server = srv }
}

// WithLogger sets the logger passed to hooks and used for lifecycle messages.
// A nil logger discards output.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithStartHook registers a callback invoked once the listener is bound.
func WithStartHook(h Hook) Option {
	if h == nil {
		panic("WithStartHook: nil hook")
	}
	return func(o *options) { o.startHooks = append(o.startHooks, h) }
}

// WithStopHook registers a callback invoked after shutdown completes.
func WithStopHook(h Hook) Option {
	if h == nil {
		panic("WithStopHook: nil hook")
	}
	return func(o *options) { o.stopHooks = append(o.stopHooks, h) }
}
