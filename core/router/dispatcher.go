package router

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync/atomic"

	"github.com/dmitrymomot/jogger/core/handler"
	"github.com/dmitrymomot/jogger/core/logger"
	"github.com/dmitrymomot/jogger/core/route"
	"github.com/dmitrymomot/jogger/core/web"
)

// Dispatcher is the per-request orchestrator. For every request it looks up
// a route, builds the request and response, runs the route or asset and
// falls back to the not-found or exception handler, producing exactly one
// outcome.
//
// In development mode the configuration snapshot is rebuilt before each
// request and swapped in atomically without locking. Each request reads the
// snapshot once and keeps it to the end, so a single dispatch never sees a
// mix of two snapshots, but concurrent requests may briefly observe
// different ones. That window is accepted in exchange for fast reloads.
type Dispatcher struct {
	factory     Factory
	app         atomic.Pointer[App]
	development bool
	logger      *slog.Logger

	defaultException handler.ExceptionHandler
	defaultNotFound  handler.NotFoundHandler
}

// New creates a dispatcher serving a fixed snapshot.
func New(app *App, opts ...Option) (*Dispatcher, error) {
	if app == nil {
		return nil, ErrNilApp
	}
	return NewWithFactory(FactoryFunc(func() (*App, error) { return app, nil }), opts...)
}

// NewWithFactory creates a dispatcher and builds the initial snapshot from
// factory.
func NewWithFactory(factory Factory, opts ...Option) (*Dispatcher, error) {
	if factory == nil {
		return nil, ErrNilFactory
	}

	d := &Dispatcher{
		factory:          factory,
		logger:           logger.Discard(),
		defaultException: handler.ExceptionHandlerFunc(defaultExceptionHandler),
		defaultNotFound:  handler.NotFoundHandlerFunc(defaultNotFoundHandler),
	}
	for _, opt := range opts {
		opt(d)
	}

	app, err := d.configure()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigure, err)
	}
	d.app.Store(app)
	return d, nil
}

// App returns the current configuration snapshot.
func (d *Dispatcher) App() *App {
	return d.app.Load()
}

// ServeHTTP implements http.Handler.
func (d *Dispatcher) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	app, err := d.snapshot()
	if err != nil {
		// No request or response exists yet, so no application handler applies.
		d.logger.ErrorContext(r.Context(), "failed to reload configuration",
			logger.Method(r.Method),
			logger.Path(web.Path(r)),
			logger.Error(err),
		)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	match, lookupErr := lookup(app.Routes, r)

	res := web.NewResponse(w, r)
	defer res.Finish()

	req := web.NewRequest(r, match)
	if lookupErr != nil {
		res.SetStatus(handler.StatusInternalError)
		d.handleException(app, lookupErr, req, res)
		return
	}
	if err := req.Init(); err != nil {
		res.SetStatus(handler.StatusInternalError)
		d.handleException(app, err, req, res)
		return
	}

	if err := d.execute(app, req, res); err != nil {
		res.SetStatus(handler.StatusInternalError)
		d.handleException(app, err, req, res)
	}
}

// lookup resolves r against routes. A panicking table becomes an error
// handled like any other failure.
func lookup(routes route.Table, r *http.Request) (route.Match, error) {
	var match route.Match
	err := guard(func() error {
		if routes == nil {
			return nil
		}
		if m, ok := routes.Lookup(r.Method, web.LookupPath(r)); ok {
			match = m
		}
		return nil
	})
	return match, err
}

// execute runs the matched route, the asset loader or nothing, then hands
// a not found status to the not-found handler. Panics become errors.
func (d *Dispatcher) execute(app *App, req *web.Request, res *web.Response) error {
	err := guard(func() error {
		switch {
		case req.Route() != nil:
			return executeRoute(req.Route(), req, res)
		case app.Assets != nil:
			return executeAsset(app.Assets, req, res)
		default:
			res.NotFound()
			return nil
		}
	})
	if err != nil {
		return err
	}

	if res.Status() == handler.StatusNotFound {
		d.handleNotFound(app, req, res)
	}
	return nil
}

// handleException tries the application's exception handler, then the
// built-in one. It never panics or returns a failure.
func (d *Dispatcher) handleException(app *App, err error, req *web.Request, res *web.Response) {
	attrs := requestAttrs(req)
	var pe PanicError
	if errors.As(err, &pe) {
		attrs = append(attrs, logger.Stack(pe.Stack()))
	}
	d.logger.LogAttrs(req.Context(), slog.LevelError, "exception processing request",
		append(attrs, logger.Error(err))...)

	if h := app.ExceptionHandler; h != nil {
		herr := guard(func() error { return h.HandleException(err, req, res) })
		if herr == nil {
			return
		}
		d.logger.LogAttrs(req.Context(), slog.LevelError, "exception handler failed, using the default one",
			append(requestAttrs(req), logger.Error(herr))...)
	}

	if derr := guard(func() error { return d.defaultException.HandleException(err, req, res) }); derr != nil {
		d.logger.LogAttrs(req.Context(), slog.LevelError, "default exception handler failed",
			append(requestAttrs(req), logger.Error(derr))...)
	}
}

// handleNotFound tries the application's not-found handler, then the
// built-in one. Not found is a normal outcome and is logged at debug level.
func (d *Dispatcher) handleNotFound(app *App, req *web.Request, res *web.Response) {
	d.logger.LogAttrs(req.Context(), slog.LevelDebug, "no route or asset found", requestAttrs(req)...)

	if h := app.NotFoundHandler; h != nil {
		herr := guard(func() error { return h.HandleNotFound(req, res) })
		if herr == nil {
			return
		}
		d.logger.LogAttrs(req.Context(), slog.LevelError, "not found handler failed, using the default one",
			append(requestAttrs(req), logger.Error(herr))...)
	}

	if derr := guard(func() error { return d.defaultNotFound.HandleNotFound(req, res) }); derr != nil {
		d.logger.LogAttrs(req.Context(), slog.LevelError, "default not found handler failed",
			append(requestAttrs(req), logger.Error(derr))...)
	}
}

// snapshot returns the configuration for one request, rebuilding it first
// in development mode.
func (d *Dispatcher) snapshot() (*App, error) {
	if !d.development {
		return d.app.Load(), nil
	}

	app, err := d.configure()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReload, err)
	}
	d.app.Store(app)
	return app, nil
}

func (d *Dispatcher) configure() (*App, error) {
	var app *App
	err := guard(func() error {
		var err error
		app, err = d.factory.Configure()
		return err
	})
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, ErrNilApp
	}
	return app, nil
}

func requestAttrs(req *web.Request) []slog.Attr {
	attrs := []slog.Attr{
		logger.Method(req.Method()),
		logger.Path(req.Path()),
		logger.RequestID(req.ID()),
	}
	if rt := req.Route(); rt != nil {
		attrs = append(attrs, logger.Route(rt.Pattern()))
	}
	return attrs
}
