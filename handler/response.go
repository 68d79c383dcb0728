package handler

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/oneclick/pkg/logger"
)

// Response renders itself to an http.ResponseWriter.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

// Func handles a request and returns the response to render.
type Func func(r *http.Request) Response

// Handle adapts fn to http.HandlerFunc. A nil response renders 204; render
// errors are logged because the status line may already be written.
func Handle(log *slog.Logger, fn Func) http.HandlerFunc {
	if log == nil {
		log = logger.Noop()
	}
	return func(w http.ResponseWriter, r *http.Request) {
		resp := fn(r)
		if resp == nil {
			resp = Empty()
		}
		if err := resp.Render(w, r); err != nil {
			log.ErrorContext(r.Context(), "failed to render response", logger.Error(err))
		}
	}
}
