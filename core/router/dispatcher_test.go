package router_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/jogger/core/asset"
	"github.com/dmitrymomot/jogger/core/handler"
	"github.com/dmitrymomot/jogger/core/logger"
	"github.com/dmitrymomot/jogger/core/route"
	"github.com/dmitrymomot/jogger/core/router"
	"github.com/dmitrymomot/jogger/core/web"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func newDispatcher(t *testing.T, app *router.App, opts ...router.Option) *router.Dispatcher {
	t.Helper()
	d, err := router.New(app, opts...)
	require.NoError(t, err)
	return d
}

func serve(d http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	d.ServeHTTP(rec, req)
	return rec
}

// authCheck lets requests with an X-User header through.
func authCheck(calls *atomic.Int32) handler.Interceptor {
	return handler.InterceptorFunc(func(req handler.Request, res handler.Response, chain handler.Chain) error {
		calls.Add(1)
		if req.Header("X-User") == "" {
			res.Unauthorized()
			return res.WriteString("unauthorized")
		}
		return chain.Proceed()
	})
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("nil app", func(t *testing.T) {
		t.Parallel()

		d, err := router.New(nil)
		assert.ErrorIs(t, err, router.ErrNilApp)
		assert.Nil(t, d)
	})

	t.Run("nil factory", func(t *testing.T) {
		t.Parallel()

		d, err := router.NewWithFactory(nil)
		assert.ErrorIs(t, err, router.ErrNilFactory)
		assert.Nil(t, d)
	})

	t.Run("factory failure", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("boom")
		d, err := router.NewWithFactory(router.FactoryFunc(func() (*router.App, error) { return nil, boom }))
		assert.ErrorIs(t, err, router.ErrConfigure)
		assert.ErrorIs(t, err, boom)
		assert.Nil(t, d)
	})

	t.Run("factory returns no app", func(t *testing.T) {
		t.Parallel()

		_, err := router.NewWithFactory(router.FactoryFunc(func() (*router.App, error) { return nil, nil }))
		assert.ErrorIs(t, err, router.ErrConfigure)
		assert.ErrorIs(t, err, router.ErrNilApp)
	})

	t.Run("factory panics", func(t *testing.T) {
		t.Parallel()

		_, err := router.NewWithFactory(router.FactoryFunc(func() (*router.App, error) { panic("bad config") }))
		assert.ErrorIs(t, err, router.ErrConfigure)
		var pe router.PanicError
		assert.ErrorAs(t, err, &pe)
	})

	t.Run("keeps the snapshot", func(t *testing.T) {
		t.Parallel()

		app := &router.App{}
		d := newDispatcher(t, app)
		assert.Same(t, app, d.App())
	})
}

func TestDispatchRoute(t *testing.T) {
	t.Parallel()

	t.Run("matched route with interceptor", func(t *testing.T) {
		t.Parallel()

		var authCalls, handlerCalls, fallbackCalls atomic.Int32
		routes := route.NewRegistry()
		routes.Get("/users/:id", func(req handler.Request, res handler.Response) error {
			handlerCalls.Add(1)
			return res.WriteString("user " + req.Param("id"))
		}, authCheck(&authCalls))

		d := newDispatcher(t, &router.App{
			Routes: routes,
			ExceptionHandler: handler.ExceptionHandlerFunc(func(error, handler.Request, handler.Response) error {
				fallbackCalls.Add(1)
				return nil
			}),
			NotFoundHandler: handler.NotFoundHandlerFunc(func(handler.Request, handler.Response) error {
				fallbackCalls.Add(1)
				return nil
			}),
		})

		req := httptest.NewRequest(http.MethodGet, "/users/42", nil)
		req.Header.Set("X-User", "alice")
		rec := serve(d, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "user 42", rec.Body.String())
		assert.Equal(t, int32(1), authCalls.Load())
		assert.Equal(t, int32(1), handlerCalls.Load())
		assert.Zero(t, fallbackCalls.Load())
	})

	t.Run("interceptor short-circuits the handler", func(t *testing.T) {
		t.Parallel()

		var authCalls, handlerCalls atomic.Int32
		routes := route.NewRegistry()
		routes.Get("/users/:id", func(req handler.Request, res handler.Response) error {
			handlerCalls.Add(1)
			return nil
		}, authCheck(&authCalls))

		d := newDispatcher(t, &router.App{Routes: routes})
		rec := serve(d, httptest.NewRequest(http.MethodGet, "/users/42", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "unauthorized", rec.Body.String())
		assert.Equal(t, int32(1), authCalls.Load())
		assert.Zero(t, handlerCalls.Load())
	})

	t.Run("handler with empty body still finishes", func(t *testing.T) {
		t.Parallel()

		routes := route.NewRegistry()
		routes.Delete("/items/:id", func(req handler.Request, res handler.Response) error {
			res.SetStatus(http.StatusNoContent)
			return nil
		})

		d := newDispatcher(t, &router.App{Routes: routes})
		rec := serve(d, httptest.NewRequest(http.MethodDelete, "/items/7", nil))

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("handler reports not found", func(t *testing.T) {
		t.Parallel()

		var notFoundCalls atomic.Int32
		routes := route.NewRegistry()
		routes.Get("/items/:id", func(req handler.Request, res handler.Response) error {
			res.NotFound()
			return nil
		})

		d := newDispatcher(t, &router.App{
			Routes: routes,
			NotFoundHandler: handler.NotFoundHandlerFunc(func(req handler.Request, res handler.Response) error {
				notFoundCalls.Add(1)
				return res.WriteString("no item " + req.Param("id"))
			}),
		})
		rec := serve(d, httptest.NewRequest(http.MethodGet, "/items/9", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "no item 9", rec.Body.String())
		assert.Equal(t, int32(1), notFoundCalls.Load())
	})
}

func TestDispatchEscapedPaths(t *testing.T) {
	t.Parallel()

	routes := route.NewRegistry()
	routes.Get("/about", func(req handler.Request, res handler.Response) error {
		return res.WriteString("about")
	})
	routes.Get("/files/:name", func(req handler.Request, res handler.Response) error {
		return res.WriteString(req.Param("name"))
	})
	d := newDispatcher(t, &router.App{Routes: routes})

	tests := []struct {
		target string
		status int
		body   string
	}{
		{"/about", http.StatusOK, "about"},
		{"/%61bout", http.StatusOK, "about"},
		{"/files/a%20b", http.StatusOK, "a b"},
		{"/files/a%2Fb%20c", http.StatusOK, "a/b c"},
		{"/files/a/b", http.StatusNotFound, ""},
	}
	for _, tt := range tests {
		rec := serve(d, httptest.NewRequest(http.MethodGet, tt.target, nil))
		assert.Equal(t, tt.status, rec.Code, tt.target)
		if tt.body != "" {
			assert.Equal(t, tt.body, rec.Body.String(), tt.target)
		}
	}
}

type panickingTable struct{}

func (panickingTable) Lookup(string, string) (route.Match, bool) { panic("table corrupted") }

func TestDispatchRouteTable(t *testing.T) {
	t.Parallel()

	t.Run("nil registry is not found", func(t *testing.T) {
		t.Parallel()

		var routes *route.Registry
		d := newDispatcher(t, &router.App{Routes: routes})
		rec := serve(d, httptest.NewRequest(http.MethodGet, "/users", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("panicking table is an exception", func(t *testing.T) {
		t.Parallel()

		var got error
		d := newDispatcher(t, &router.App{
			Routes: panickingTable{},
			ExceptionHandler: handler.ExceptionHandlerFunc(func(err error, req handler.Request, res handler.Response) error {
				got = err
				return res.WriteString("lookup failed")
			}),
		})
		rec := serve(d, httptest.NewRequest(http.MethodGet, "/users", nil))

		var pe router.PanicError
		require.ErrorAs(t, got, &pe)
		assert.Equal(t, "table corrupted", pe.Value())
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "lookup failed", rec.Body.String())
	})
}

func TestDispatchNotFound(t *testing.T) {
	t.Parallel()

	t.Run("default handler", func(t *testing.T) {
		t.Parallel()

		d := newDispatcher(t, &router.App{Routes: route.NewRegistry()})
		rec := serve(d, httptest.NewRequest(http.MethodPost, "/missing", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
		assert.Contains(t, rec.Body.String(), "Not Found")
		assert.Contains(t, rec.Body.String(), "POST /missing")
	})

	t.Run("default handler as json", func(t *testing.T) {
		t.Parallel()

		d := newDispatcher(t, &router.App{})
		req := httptest.NewRequest(http.MethodGet, "/missing", nil)
		req.Header.Set("Accept", "application/json")
		rec := serve(d, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
		assert.JSONEq(t, `{"status":404,"error":"Not Found","path":"/missing"}`, rec.Body.String())
	})

	t.Run("custom handler", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		d := newDispatcher(t, &router.App{
			NotFoundHandler: handler.NotFoundHandlerFunc(func(req handler.Request, res handler.Response) error {
				calls.Add(1)
				res.NotFound()
				return res.WriteString("nothing at " + req.Path())
			}),
		})
		rec := serve(d, httptest.NewRequest(http.MethodPost, "/missing", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "nothing at /missing", rec.Body.String())
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("failing custom handler falls back to default", func(t *testing.T) {
		t.Parallel()

		d := newDispatcher(t, &router.App{
			NotFoundHandler: handler.NotFoundHandlerFunc(func(handler.Request, handler.Response) error {
				return errors.New("template missing")
			}),
		})
		rec := serve(d, httptest.NewRequest(http.MethodGet, "/missing", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "GET /missing")
	})

	t.Run("panicking custom handler falls back to default", func(t *testing.T) {
		t.Parallel()

		d := newDispatcher(t, &router.App{
			NotFoundHandler: handler.NotFoundHandlerFunc(func(handler.Request, handler.Response) error {
				panic("boom")
			}),
		})
		rec := serve(d, httptest.NewRequest(http.MethodGet, "/missing", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "GET /missing")
	})

	t.Run("method mismatch is not found", func(t *testing.T) {
		t.Parallel()

		routes := route.NewRegistry()
		routes.Get("/users", func(req handler.Request, res handler.Response) error {
			return res.WriteString("users")
		})
		d := newDispatcher(t, &router.App{Routes: routes})
		rec := serve(d, httptest.NewRequest(http.MethodPost, "/users", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("not logged as an error", func(t *testing.T) {
		t.Parallel()

		var out syncBuffer
		log := logger.New(logger.WithOutput(&out), logger.WithTextFormatter(), logger.WithLevel(slog.LevelDebug))
		d := newDispatcher(t, &router.App{}, router.WithLogger(log))
		serve(d, httptest.NewRequest(http.MethodGet, "/missing", nil))

		assert.Contains(t, out.String(), "level=DEBUG")
		assert.NotContains(t, out.String(), "level=ERROR")
	})
}

func TestDispatchException(t *testing.T) {
	t.Parallel()

	t.Run("custom handler receives the failure", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("database down")
		var got error
		var calls atomic.Int32
		routes := route.NewRegistry()
		routes.Get("/fail", func(handler.Request, handler.Response) error { return boom })

		d := newDispatcher(t, &router.App{
			Routes: routes,
			ExceptionHandler: handler.ExceptionHandlerFunc(func(err error, req handler.Request, res handler.Response) error {
				calls.Add(1)
				got = err
				res.SetStatus(http.StatusServiceUnavailable)
				return res.WriteString("try later")
			}),
		})
		rec := serve(d, httptest.NewRequest(http.MethodGet, "/fail", nil))

		assert.Same(t, boom, got)
		assert.Equal(t, int32(1), calls.Load())
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, "try later", rec.Body.String())
	})

	t.Run("default handler hides the failure", func(t *testing.T) {
		t.Parallel()

		routes := route.NewRegistry()
		routes.Get("/fail", func(handler.Request, handler.Response) error {
			return errors.New("secret connection string")
		})
		d := newDispatcher(t, &router.App{Routes: routes})
		rec := serve(d, httptest.NewRequest(http.MethodGet, "/fail", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "Internal Server Error")
		assert.NotContains(t, rec.Body.String(), "secret")
	})

	t.Run("default handler uses status from the error", func(t *testing.T) {
		t.Parallel()

		routes := route.NewRegistry()
		routes.Get("/conflict", func(handler.Request, handler.Response) error {
			return statusError{code: http.StatusConflict}
		})
		d := newDispatcher(t, &router.App{Routes: routes})
		req := httptest.NewRequest(http.MethodGet, "/conflict", nil)
		req.Header.Set("Accept", "application/json")
		rec := serve(d, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.JSONEq(t, `{"status":409,"error":"Conflict"}`, rec.Body.String())
	})

	t.Run("interceptor failure skips the handler", func(t *testing.T) {
		t.Parallel()

		denied := errors.New("denied")
		var handlerCalls atomic.Int32
		var got error
		routes := route.NewRegistry()
		routes.Get("/guarded", func(handler.Request, handler.Response) error {
			handlerCalls.Add(1)
			return nil
		}, handler.InterceptorFunc(func(handler.Request, handler.Response, handler.Chain) error {
			return denied
		}))

		d := newDispatcher(t, &router.App{
			Routes: routes,
			ExceptionHandler: handler.ExceptionHandlerFunc(func(err error, req handler.Request, res handler.Response) error {
				got = err
				return nil
			}),
		})
		rec := serve(d, httptest.NewRequest(http.MethodGet, "/guarded", nil))

		assert.Same(t, denied, got)
		assert.Zero(t, handlerCalls.Load())
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("failing custom handler runs default once", func(t *testing.T) {
		t.Parallel()

		var out syncBuffer
		log := logger.New(logger.WithOutput(&out), logger.WithTextFormatter())
		routes := route.NewRegistry()
		routes.Get("/fail", func(handler.Request, handler.Response) error { return errors.New("boom") })

		d := newDispatcher(t, &router.App{
			Routes: routes,
			ExceptionHandler: handler.ExceptionHandlerFunc(func(error, handler.Request, handler.Response) error {
				return errors.New("handler broken")
			}),
		}, router.WithLogger(log))
		rec := serve(d, httptest.NewRequest(http.MethodGet, "/fail", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, 1, strings.Count(rec.Body.String(), "<h1>Internal Server Error</h1>"))
		assert.Contains(t, out.String(), "handler broken")
	})

	t.Run("panicking custom handler runs default", func(t *testing.T) {
		t.Parallel()

		routes := route.NewRegistry()
		routes.Get("/fail", func(handler.Request, handler.Response) error { return errors.New("boom") })

		d := newDispatcher(t, &router.App{
			Routes: routes,
			ExceptionHandler: handler.ExceptionHandlerFunc(func(error, handler.Request, handler.Response) error {
				panic("handler exploded")
			}),
		})
		rec := serve(d, httptest.NewRequest(http.MethodGet, "/fail", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "Internal Server Error")
	})

	t.Run("handler panic becomes a panic error", func(t *testing.T) {
		t.Parallel()

		var got error
		routes := route.NewRegistry()
		routes.Get("/panic", func(handler.Request, handler.Response) error { panic("nil map") })

		d := newDispatcher(t, &router.App{
			Routes: routes,
			ExceptionHandler: handler.ExceptionHandlerFunc(func(err error, req handler.Request, res handler.Response) error {
				got = err
				res.SetStatus(http.StatusInternalServerError)
				return res.WriteString("recovered")
			}),
		})
		rec := serve(d, httptest.NewRequest(http.MethodGet, "/panic", nil))

		var pe router.PanicError
		require.ErrorAs(t, got, &pe)
		assert.Equal(t, "nil map", pe.Value())
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "recovered", rec.Body.String())
	})

	t.Run("committed response is left alone", func(t *testing.T) {
		t.Parallel()

		routes := route.NewRegistry()
		routes.Get("/partial", func(req handler.Request, res handler.Response) error {
			if err := res.WriteString("partial"); err != nil {
				return err
			}
			return errors.New("stream broke")
		})
		d := newDispatcher(t, &router.App{Routes: routes})
		rec := serve(d, httptest.NewRequest(http.MethodGet, "/partial", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "partial", rec.Body.String())
	})

	t.Run("malformed request never reaches the route", func(t *testing.T) {
		t.Parallel()

		var interceptorCalls, handlerCalls, exceptionCalls atomic.Int32
		var got error
		routes := route.NewRegistry()
		routes.Post("/form", func(handler.Request, handler.Response) error {
			handlerCalls.Add(1)
			return nil
		}, handler.InterceptorFunc(func(req handler.Request, res handler.Response, chain handler.Chain) error {
			interceptorCalls.Add(1)
			return chain.Proceed()
		}))

		d := newDispatcher(t, &router.App{
			Routes: routes,
			ExceptionHandler: handler.ExceptionHandlerFunc(func(err error, req handler.Request, res handler.Response) error {
				exceptionCalls.Add(1)
				got = err
				res.BadRequest()
				return res.WriteString("bad form")
			}),
		})
		req := httptest.NewRequest(http.MethodPost, "/form", strings.NewReader("name=%zz"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := serve(d, req)

		assert.ErrorIs(t, got, web.ErrMalformedRequest)
		assert.Zero(t, interceptorCalls.Load())
		assert.Zero(t, handlerCalls.Load())
		assert.Equal(t, int32(1), exceptionCalls.Load())
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "bad form", rec.Body.String())
	})

	t.Run("malformed request with default handler", func(t *testing.T) {
		t.Parallel()

		d := newDispatcher(t, &router.App{})
		req := httptest.NewRequest(http.MethodPost, "/upload", strings.NewReader("x"))
		req.Header.Set("Content-Type", "multipart/form-data")
		rec := serve(d, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("logged as an error with the stack for panics", func(t *testing.T) {
		t.Parallel()

		var out syncBuffer
		log := logger.New(logger.WithOutput(&out), logger.WithTextFormatter())
		routes := route.NewRegistry()
		routes.Get("/panic", func(handler.Request, handler.Response) error { panic("kaboom") })

		d := newDispatcher(t, &router.App{Routes: routes}, router.WithLogger(log))
		serve(d, httptest.NewRequest(http.MethodGet, "/panic", nil))

		assert.Contains(t, out.String(), "level=ERROR")
		assert.Contains(t, out.String(), "kaboom")
		assert.Contains(t, out.String(), "stack=")
	})
}

type statusError struct {
	code int
}

func (e statusError) Error() string   { return http.StatusText(e.code) }
func (e statusError) StatusCode() int { return e.code }

func TestDispatchAssets(t *testing.T) {
	t.Parallel()

	modTime := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	assets := asset.FS(fstest.MapFS{
		"index.html":      {Data: []byte("<h1>home</h1>"), ModTime: modTime},
		"css/app.css":     {Data: []byte("body{}"), ModTime: modTime},
		"docs/index.html": {Data: []byte("docs"), ModTime: modTime},
	})

	routes := route.NewRegistry()
	routes.Get("/api/ping", func(req handler.Request, res handler.Response) error {
		return res.WriteString("pong")
	})
	d := newDispatcher(t, &router.App{Routes: routes, Assets: assets})

	t.Run("serves a file", func(t *testing.T) {
		t.Parallel()

		rec := serve(d, httptest.NewRequest(http.MethodGet, "/css/app.css", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "body{}", rec.Body.String())
		assert.Contains(t, rec.Header().Get("Content-Type"), "text/css")
		assert.Equal(t, "6", rec.Header().Get("Content-Length"))
		assert.Equal(t, modTime.Format(http.TimeFormat), rec.Header().Get("Last-Modified"))
	})

	t.Run("serves directory index", func(t *testing.T) {
		t.Parallel()

		for _, path := range []string{"/", "/docs"} {
			rec := serve(d, httptest.NewRequest(http.MethodGet, path, nil))
			assert.Equal(t, http.StatusOK, rec.Code, path)
			assert.Contains(t, rec.Header().Get("Content-Type"), "text/html", path)
		}
	})

	t.Run("routes win over assets", func(t *testing.T) {
		t.Parallel()

		rec := serve(d, httptest.NewRequest(http.MethodGet, "/api/ping", nil))
		assert.Equal(t, "pong", rec.Body.String())
	})

	t.Run("head sends headers only", func(t *testing.T) {
		t.Parallel()

		rec := serve(d, httptest.NewRequest(http.MethodHead, "/css/app.css", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Body.String())
		assert.Equal(t, "6", rec.Header().Get("Content-Length"))
	})

	t.Run("not modified", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/css/app.css", nil)
		req.Header.Set("If-Modified-Since", modTime.Add(time.Hour).Format(http.TimeFormat))
		rec := serve(d, req)

		assert.Equal(t, http.StatusNotModified, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("modified since", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/css/app.css", nil)
		req.Header.Set("If-Modified-Since", modTime.Add(-time.Hour).Format(http.TimeFormat))
		rec := serve(d, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "body{}", rec.Body.String())
	})

	t.Run("missing asset is not found", func(t *testing.T) {
		t.Parallel()

		rec := serve(d, httptest.NewRequest(http.MethodGet, "/css/missing.css", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "GET /css/missing.css")
	})

	t.Run("other methods are not found", func(t *testing.T) {
		t.Parallel()

		for _, method := range []string{http.MethodPost, http.MethodPut, http.MethodDelete} {
			rec := serve(d, httptest.NewRequest(method, "/css/app.css", nil))
			assert.Equal(t, http.StatusNotFound, rec.Code, method)
		}
	})

	t.Run("loader failure is an exception", func(t *testing.T) {
		t.Parallel()

		broken := asset.LoaderFunc(func(ctx context.Context, name string) (*asset.Asset, error) {
			return nil, errors.New("bucket unreachable")
		})
		var got error
		d := newDispatcher(t, &router.App{
			Assets: broken,
			ExceptionHandler: handler.ExceptionHandlerFunc(func(err error, req handler.Request, res handler.Response) error {
				got = err
				return nil
			}),
		})
		rec := serve(d, httptest.NewRequest(http.MethodGet, "/app.js", nil))

		assert.EqualError(t, got, "bucket unreachable")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestDevelopmentMode(t *testing.T) {
	t.Parallel()

	t.Run("reconfigures before every request", func(t *testing.T) {
		t.Parallel()

		var builds atomic.Int32
		factory := router.FactoryFunc(func() (*router.App, error) {
			n := builds.Add(1)
			routes := route.NewRegistry()
			routes.Get("/version", func(req handler.Request, res handler.Response) error {
				return res.WriteString(fmt.Sprintf("v%d", n))
			})
			return &router.App{Routes: routes}, nil
		})

		d, err := router.NewWithFactory(factory, router.WithDevelopment(true))
		require.NoError(t, err)
		require.Equal(t, int32(1), builds.Load())

		first := serve(d, httptest.NewRequest(http.MethodGet, "/version", nil))
		second := serve(d, httptest.NewRequest(http.MethodGet, "/version", nil))

		assert.Equal(t, "v2", first.Body.String())
		assert.Equal(t, "v3", second.Body.String())
		assert.Equal(t, int32(3), builds.Load())
	})

	t.Run("production keeps the first snapshot", func(t *testing.T) {
		t.Parallel()

		var builds atomic.Int32
		factory := router.FactoryFunc(func() (*router.App, error) {
			builds.Add(1)
			return &router.App{}, nil
		})

		d, err := router.NewWithFactory(factory)
		require.NoError(t, err)
		serve(d, httptest.NewRequest(http.MethodGet, "/", nil))
		serve(d, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, int32(1), builds.Load())
	})

	t.Run("reload failure is a bare server error", func(t *testing.T) {
		t.Parallel()

		var builds, handlerCalls, exceptionCalls atomic.Int32
		factory := router.FactoryFunc(func() (*router.App, error) {
			if builds.Add(1) > 1 {
				return nil, errors.New("syntax error in routes")
			}
			routes := route.NewRegistry()
			routes.Get("/", func(handler.Request, handler.Response) error {
				handlerCalls.Add(1)
				return nil
			})
			return &router.App{
				Routes: routes,
				ExceptionHandler: handler.ExceptionHandlerFunc(func(error, handler.Request, handler.Response) error {
					exceptionCalls.Add(1)
					return nil
				}),
			}, nil
		})

		d, err := router.NewWithFactory(factory, router.WithDevelopment(true))
		require.NoError(t, err)
		rec := serve(d, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Zero(t, handlerCalls.Load())
		assert.Zero(t, exceptionCalls.Load())
	})

	t.Run("enabled from config", func(t *testing.T) {
		t.Parallel()

		var builds atomic.Int32
		factory := router.FactoryFunc(func() (*router.App, error) {
			builds.Add(1)
			return &router.App{}, nil
		})

		d, err := router.NewWithFactory(factory, router.WithConfig(router.Config{Env: "development"}))
		require.NoError(t, err)
		serve(d, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, int32(2), builds.Load())
	})
}

func TestConfigIsDevelopment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		env  string
		want bool
	}{
		{"development", true},
		{"dev", true},
		{" Development ", true},
		{"production", false},
		{"", false},
		{"staging", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, router.Config{Env: tt.env}.IsDevelopment(), tt.env)
	}
}

func TestConcurrentRequests(t *testing.T) {
	t.Parallel()

	routes := route.NewRegistry()
	routes.Get("/echo/:n", func(req handler.Request, res handler.Response) error {
		req.SetValue("n", req.Param("n"))
		return res.WriteString(req.Value("n").(string))
	}, handler.InterceptorFunc(func(req handler.Request, res handler.Response, chain handler.Chain) error {
		res.SetHeader("X-Request-ID", req.ID())
		return chain.Proceed()
	}))
	d := newDispatcher(t, &router.App{Routes: routes})

	const n = 50
	var wg sync.WaitGroup
	ids := make([]string, n)
	bodies := make([]string, n)
	for i := 0; i < n; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec := serve(d, httptest.NewRequest(http.MethodGet, fmt.Sprintf("/echo/%d", i), nil))
			bodies[i] = rec.Body.String()
			ids[i] = rec.Header().Get("X-Request-ID")
		}()
	}
	wg.Wait()

	seen := make(map[string]bool, n)
	for i := 0; i < n; i++ {
		assert.Equal(t, fmt.Sprintf("%d", i), bodies[i])
		assert.NotEmpty(t, ids[i])
		assert.False(t, seen[ids[i]], "request ids must be unique")
		seen[ids[i]] = true
	}
}
