package unsubscribe

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/oneclick/pkg/jwt"
	"github.com/dmitrymomot/oneclick/pkg/logger"
	"github.com/dmitrymomot/oneclick/svc/suppression"
)

// Purpose is the sub claim an unsubscribe token must carry.
const Purpose = "unsubscribe"

// TokenParam is the query parameter and form field holding the token.
const TokenParam = "token"

// Options wires the module's dependencies. Store and Secret are required.
type Options struct {
	Store  suppression.Store
	Secret jwt.SecretFunc
	// Notifier is optional; nil disables chat notifications.
	Notifier Notifier
	// NotifyTimeout bounds a notification. Default 10s.
	NotifyTimeout time.Duration
	Logger        *slog.Logger
	Metrics       *Metrics
}

// Module serves the one-click unsubscribe endpoints.
type Module struct {
	store         suppression.Store
	secret        jwt.SecretFunc
	notifier      Notifier
	notifyTimeout time.Duration
	log           *slog.Logger
	metrics       *Metrics
}

// New validates opts and returns a Module. It panics when Store or Secret is
// missing.
func New(opts Options) *Module {
	if opts.Store == nil {
		panic("unsubscribe: Options.Store is required")
	}
	if opts.Secret == nil {
		panic("unsubscribe: Options.Secret is required")
	}
	log := opts.Logger
	if log == nil {
		log = logger.Noop()
	}
	timeout := opts.NotifyTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Module{
		store:         opts.Store,
		secret:        opts.Secret,
		notifier:      opts.Notifier,
		notifyTimeout: timeout,
		log:           log.With(logger.Component("unsubscribe")),
		metrics:       opts.Metrics,
	}
}

// Handle returns the module router, meant to be mounted by the caller:
//
//	r.Mount("/unsubscribe", unsubscribe.New(opts).Handle())
//
// GET / previews the token's email without verifying it. POST / verifies the
// token and records the unsubscribe.
func (m *Module) Handle() http.Handler {
	r := chi.NewRouter()

	r.Get("/", m.preview)

	verify := jwt.MiddlewareWithConfig(jwt.MiddlewareConfig{
		Secret: m.secret,
		Extractor: jwt.ChainExtractors(
			jwt.QueryTokenExtractor(TokenParam),
			jwt.FormTokenExtractor(TokenParam),
		),
		OnReject:     m.onReject,
		ErrorHandler: m.renderRejection,
	})
	r.With(verify).Post("/", m.unsubscribe)

	return r
}
