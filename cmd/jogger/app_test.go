package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/jogger/core/logger"
	"github.com/dmitrymomot/jogger/core/router"
	"github.com/dmitrymomot/jogger/middleware"
)

func newTestDispatcher(t *testing.T) *router.Dispatcher {
	t.Helper()
	d, err := router.NewWithFactory(newFactory(logger.Discard(), nil, false))
	require.NoError(t, err)
	return d
}

// chunked hides the length of body so only reads can enforce a limit.
type chunked struct {
	r *strings.Reader
}

func (c chunked) Read(p []byte) (int, error) { return c.r.Read(p) }

func TestUpload(t *testing.T) {
	t.Parallel()

	d := newTestDispatcher(t)

	t.Run("within the limit", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		d.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/upload", strings.NewReader("hello")))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"size":5}`, rec.Body.String())
	})

	t.Run("declared length over the limit", func(t *testing.T) {
		t.Parallel()

		body := strings.Repeat("x", int(middleware.MB)+1)
		rec := httptest.NewRecorder()
		d.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/upload", strings.NewReader(body)))

		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	})

	t.Run("chunked body over the limit", func(t *testing.T) {
		t.Parallel()

		body := chunked{strings.NewReader(strings.Repeat("x", int(middleware.MB)+1))}
		req := httptest.NewRequest(http.MethodPut, "/upload", body)
		req.ContentLength = -1
		rec := httptest.NewRecorder()
		d.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	})
}

func TestEcho(t *testing.T) {
	t.Parallel()

	d := newTestDispatcher(t)
	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader("message=hi"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	d.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"hi"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}
