package httpserver_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/oneclick/pkg/httpserver"
	"github.com/dmitrymomot/oneclick/pkg/logger"
)

func TestLivenessHandler(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	httpserver.LivenessHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ALIVE", rec.Body.String())
}

func TestReadinessHandler(t *testing.T) {
	t.Parallel()

	ok := httpserver.Check{Name: "ok", Fn: func(context.Context) error { return nil }}
	failing := httpserver.Check{Name: "redis", Fn: func(context.Context) error { return errors.New("connection refused") }}

	t.Run("all checks pass", func(t *testing.T) {
		rec := httptest.NewRecorder()
		httpserver.ReadinessHandler(logger.Noop(), time.Second, ok, ok).
			ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "READY", rec.Body.String())
	})

	t.Run("no checks", func(t *testing.T) {
		rec := httptest.NewRecorder()
		httpserver.ReadinessHandler(nil, 0).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("failing check", func(t *testing.T) {
		var calledAfter bool
		after := httpserver.Check{Name: "after", Fn: func(context.Context) error { calledAfter = true; return nil }}

		rec := httptest.NewRecorder()
		httpserver.ReadinessHandler(logger.Noop(), time.Second, ok, failing, after).
			ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, "NOT_READY", rec.Body.String())
		assert.False(t, calledAfter)
	})

	t.Run("timeout bounds checks", func(t *testing.T) {
		slow := httpserver.Check{Name: "slow", Fn: func(ctx context.Context) error {
			<-ctx.Done()
			return ctx.Err()
		}}

		rec := httptest.NewRecorder()
		httpserver.ReadinessHandler(logger.Noop(), 20*time.Millisecond, slow).
			ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}
