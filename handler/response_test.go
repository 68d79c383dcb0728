package handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/oneclick/handler"
	"github.com/dmitrymomot/oneclick/pkg/logger"
)

func render(t *testing.T, resp handler.Response) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	handler.Handle(logger.Noop(), func(*http.Request) handler.Response { return resp }).
		ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	return rec
}

func TestJSON(t *testing.T) {
	t.Parallel()

	t.Run("data envelope", func(t *testing.T) {
		t.Parallel()
		rec := render(t, handler.JSON(map[string]any{"email": "a@example.com"}))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
		assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
		assert.JSONEq(t, `{"data":{"email":"a@example.com"}}`, rec.Body.String())
	})

	t.Run("status and meta", func(t *testing.T) {
		t.Parallel()
		rec := render(t, handler.JSON("x",
			handler.WithJSONStatus(http.StatusAccepted),
			handler.WithJSONMeta(map[string]any{"n": 1}),
		))

		assert.Equal(t, http.StatusAccepted, rec.Code)
		assert.JSONEq(t, `{"data":"x","meta":{"n":1}}`, rec.Body.String())
	})

	t.Run("null data field is kept in nested maps", func(t *testing.T) {
		t.Parallel()
		rec := render(t, handler.JSON(map[string]any{"email": nil}))
		assert.JSONEq(t, `{"data":{"email":null}}`, rec.Body.String())
	})
}

func TestJSONError(t *testing.T) {
	t.Parallel()

	rec := render(t, handler.JSONError(http.StatusUnauthorized, "expired", "token expired"))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	var body handler.JSONResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	assert.Equal(t, "expired", body.Error.Code)
	assert.Equal(t, "token expired", body.Error.Message)
	assert.Nil(t, body.Data)
}

func TestEmpty(t *testing.T) {
	t.Parallel()

	assert.Equal(t, http.StatusNoContent, render(t, handler.Empty()).Code)
	assert.Equal(t, http.StatusAccepted, render(t, handler.EmptyWithStatus(http.StatusAccepted)).Code)
	assert.Equal(t, http.StatusNoContent, render(t, nil).Code)
}

type failingResponse struct{}

func (failingResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	w.WriteHeader(http.StatusTeapot)
	return errors.New("boom")
}

func TestHandle_RenderError(t *testing.T) {
	t.Parallel()

	rec := render(t, failingResponse{})
	assert.Equal(t, http.StatusTeapot, rec.Code)
}
