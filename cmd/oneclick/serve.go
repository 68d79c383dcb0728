package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/oneclick/handler"
	"github.com/dmitrymomot/oneclick/modules/unsubscribe"
	"github.com/dmitrymomot/oneclick/pkg/clientip"
	"github.com/dmitrymomot/oneclick/pkg/httpserver"
	"github.com/dmitrymomot/oneclick/pkg/logger"
	"github.com/dmitrymomot/oneclick/pkg/ratelimiter"
	"github.com/dmitrymomot/oneclick/pkg/redis"
	"github.com/dmitrymomot/oneclick/pkg/requestid"
	"github.com/dmitrymomot/oneclick/pkg/webhook"
	"github.com/dmitrymomot/oneclick/svc/suppression"
)

func newServeCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the unsubscribe HTTP service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(flags.envFiles)
			if err != nil {
				return err
			}
			return runServe(cmd.Context(), cfg)
		},
	}
}

func newLogger(cfg Config) *slog.Logger {
	opts := []logger.Option{
		logger.WithEnvironment(cfg.AppEnv, cfg.AppName),
		logger.WithContextExtractors(requestid.LoggerExtractor(), clientip.LoggerExtractor()),
	}
	if cfg.LogLevel != "" {
		opts = append(opts, logger.WithLevelName(cfg.LogLevel))
	}
	return logger.New(opts...)
}

func runServe(ctx context.Context, cfg Config) error {
	log := newLogger(cfg)
	logger.SetAsDefault(log)

	var (
		store   suppression.Store
		rlStore ratelimiter.Store
		checks  []httpserver.Check
	)
	if cfg.Redis.Enabled() {
		client, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		defer func() { _ = client.Close() }()

		store = suppression.NewRedisStore(client, suppression.WithKey(cfg.SuppressionRedisKey))
		rlStore = ratelimiter.NewRedisStore(client, cfg.RateLimitPrefix)
		checks = append(checks, httpserver.Check{Name: "redis", Fn: redis.Healthcheck(client)})
		log.InfoContext(ctx, "using redis suppression store", slog.String("key", cfg.SuppressionRedisKey))
	} else {
		store = suppression.NewMemoryStore()
		mem := ratelimiter.NewMemoryStore()
		defer mem.Close()
		rlStore = mem
		log.WarnContext(ctx, "REDIS_URL not set, suppression list is kept in memory")
	}

	var notifier unsubscribe.Notifier
	if cfg.NotifyWebhookURL != "" {
		notifier = unsubscribe.NewWebhookNotifier(webhook.NewSender(nil), cfg.NotifyWebhookURL,
			webhook.WithMaxRetries(2),
			webhook.WithOnDelivery(func(res webhook.DeliveryResult) {
				log.DebugContext(ctx, "notification attempt",
					slog.Int("attempt", res.Attempt),
					slog.Int("status", res.StatusCode),
					logger.Duration(res.Duration),
					logger.Error(res.Err),
				)
			}),
		)
	}

	router, err := newRouter(routerDeps{
		cfg:      cfg,
		log:      log,
		store:    store,
		limits:   rlStore,
		notifier: notifier,
		metrics:  prometheus.DefaultRegisterer,
		checks:   checks,
	})
	if err != nil {
		return err
	}

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	if err := srv.Run(ctx, router); err != nil && !errors.Is(err, context.Canceled) {
		log.ErrorContext(ctx, "http server stopped", logger.Error(err))
		return err
	}
	return nil
}

type routerDeps struct {
	cfg      Config
	log      *slog.Logger
	store    suppression.Store
	limits   ratelimiter.Store
	notifier unsubscribe.Notifier
	metrics  prometheus.Registerer
	checks   []httpserver.Check
}

func newRouter(d routerDeps) (http.Handler, error) {
	limiter, err := ratelimiter.NewBucket(d.limits, d.cfg.RateLimit)
	if err != nil {
		return nil, err
	}

	secret := []byte(d.cfg.TokenSecret)
	module := unsubscribe.New(unsubscribe.Options{
		Store:    d.store,
		Secret:   func() []byte { return secret },
		Notifier: d.notifier,
		Logger:   d.log,
		Metrics:  unsubscribe.NewMetrics(d.metrics),
	})

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(clientip.Middleware(clientip.NewResolver(d.cfg.TrustedIPHeaders...)))
	r.Use(middleware.Recoverer)
	r.Get("/healthz", httpserver.LivenessHandler())
	r.Get("/readyz", httpserver.ReadinessHandler(d.log, 2*time.Second, d.checks...))
	r.Handle("/metrics", promhttp.Handler())
	r.Group(func(r chi.Router) {
		r.Use(ratelimiter.Middleware(limiter, ratelimiter.ByClientIP,
			ratelimiter.WithLimitedHandler(rateLimited(d.log)),
			ratelimiter.WithErrorHandler(rateLimitUnavailable(d.log)),
		))
		r.Mount("/unsubscribe", module.Handle())
	})
	return r, nil
}

func rateLimited(log *slog.Logger) func(http.ResponseWriter, *http.Request, ratelimiter.Result) {
	return func(w http.ResponseWriter, r *http.Request, res ratelimiter.Result) {
		log.WarnContext(r.Context(), "rate limit exceeded", logger.Duration(res.RetryAfter()))
		handler.Handle(log, func(*http.Request) handler.Response {
			return handler.JSONError(http.StatusTooManyRequests, "RateLimited", "too many requests")
		})(w, r)
	}
}

func rateLimitUnavailable(log *slog.Logger) func(http.ResponseWriter, *http.Request, error) {
	return func(w http.ResponseWriter, r *http.Request, err error) {
		// Fail closed: the endpoint mutates state.
		log.ErrorContext(r.Context(), "rate limiter unavailable", logger.Error(err))
		handler.Handle(log, func(*http.Request) handler.Response {
			return handler.JSONError(http.StatusServiceUnavailable, "RateLimiterUnavailable", "try again later")
		})(w, r)
	}
}
