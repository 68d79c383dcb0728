package httpserver

import "errors"

var (
	// ErrStart indicates that the server failed to start listening.
	ErrStart = errors.New("failed to start HTTP server")
	// ErrShutdown indicates that graceful shutdown failed.
	ErrShutdown = errors.New("failed to shutdown HTTP server gracefully")
	// ErrAlreadyRunning is returned by Run when the server is already serving.
	ErrAlreadyRunning = errors.New("http server already running")
)
