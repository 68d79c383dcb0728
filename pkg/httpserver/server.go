package httpserver

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrymomot/oneclick/pkg/logger"
)

// Server wraps http.Server with signal-aware graceful shutdown.
type Server struct {
	opts *options

	mu       sync.Mutex
	srv      *http.Server
	listener net.Listener
	once     sync.Once
	stopped  chan struct{}
}

// New returns a configured Server.
func New(opts ...Option) *Server {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = logger.Noop()
	}
	return &Server{opts: o, stopped: make(chan struct{})}
}

// Addr returns the bound listener address, or "" before Run has bound it.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Run binds the listener and serves handler until ctx is cancelled, SIGINT or
// SIGTERM arrives, or Shutdown is called. Bind failures are wrapped with
// ErrStart and returned without serving.
func (s *Server) Run(ctx context.Context, handler http.Handler) error {
	if handler == nil {
		handler = http.NotFoundHandler()
	}

	s.mu.Lock()
	if s.srv != nil {
		s.mu.Unlock()
		return errors.Join(ErrStart, ErrAlreadyRunning)
	}
	srv := s.configure(handler)
	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		s.mu.Unlock()
		return errors.Join(ErrStart, err)
	}
	s.srv = srv
	s.listener = ln
	s.mu.Unlock()

	sigCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := s.opts.logger
	addr := ln.Addr().String()
	log.InfoContext(ctx, "http server listening", slog.String("addr", addr))
	for _, h := range s.opts.startHooks {
		h(ctx, log, addr)
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	select {
	case <-sigCtx.Done():
		log.InfoContext(ctx, "http server shutting down")
		if err := s.Shutdown(context.WithoutCancel(ctx)); err != nil {
			<-errCh
			return err
		}
	case <-s.stopped:
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return errors.Join(ErrStart, err)
		}
		return nil
	}

	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Join(ErrStart, err)
	}
	return nil
}

// Shutdown drains in-flight requests within the configured timeout.
// Calls before Run and repeated calls are no-ops.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	srv := s.srv
	s.mu.Unlock()
	if srv == nil {
		return nil
	}

	var err error
	s.once.Do(func() {
		defer close(s.stopped)

		ctx, cancel := context.WithTimeout(ctx, s.opts.shutdownTimeout)
		defer cancel()
		err = srv.Shutdown(ctx)

		addr := s.Addr()
		for _, h := range s.opts.stopHooks {
			h(ctx, s.opts.logger, addr)
		}
	})

	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Join(ErrShutdown, err)
	}
	return nil
}

func (s *Server) configure(handler http.Handler) *http.Server {
	o := s.opts
	srv := o.server
	if srv == nil {
		srv = &http.Server{}
	}
	if srv.Addr == "" {
		srv.Addr = o.addr
	}
	if srv.ReadTimeout == 0 {
		srv.ReadTimeout = o.readTimeout
	}
	if srv.ReadHeaderTimeout == 0 {
		srv.ReadHeaderTimeout = o.readHeaderTimeout
	}
	if srv.WriteTimeout == 0 {
		srv.WriteTimeout = o.writeTimeout
	}
	if srv.IdleTimeout == 0 {
		srv.IdleTimeout = o.idleTimeout
	}
	if srv.ErrorLog == nil {
		srv.ErrorLog = slog.NewLogLogger(o.logger.Handler(), slog.LevelError)
	}
	srv.Handler = handler
	return srv
}
