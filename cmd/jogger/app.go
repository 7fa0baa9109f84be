package main

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/jogger/core/asset"
	"github.com/dmitrymomot/jogger/core/handler"
	"github.com/dmitrymomot/jogger/core/health"
	"github.com/dmitrymomot/jogger/core/route"
	"github.com/dmitrymomot/jogger/core/router"
	"github.com/dmitrymomot/jogger/middleware"
)

// newFactory returns the application wiring. In development mode it runs
// before every request.
func newFactory(log *slog.Logger, assets asset.Loader, development bool) router.Factory {
	security := middleware.BalancedSecurity
	if development {
		security = middleware.DevelopmentSecurity
	}

	return router.FactoryFunc(func() (*router.App, error) {
		common := []handler.Interceptor{
			middleware.RequestID(),
			middleware.Logging(log),
			middleware.SecurityHeadersWithConfig(security),
		}

		routes := route.NewRegistry()
		routes.Get("/health/live", health.Liveness)
		routes.Get("/health/ready", health.Readiness(log))
		routes.Get("/hello/:name", func(req handler.Request, res handler.Response) error {
			return res.WriteString("Hello, " + req.Param("name") + "!")
		}, common...)
		routes.Post("/echo", func(req handler.Request, res handler.Response) error {
			return res.JSON(map[string]string{"message": req.Form("message")})
		}, common...)
		// Raw bodies are read by the handler, after the limit is in place.
		routes.Put("/upload", upload, append(common, middleware.BodyLimit(middleware.MB))...)

		return &router.App{
			Routes: routes,
			Assets: assets,
		}, nil
	})
}

// upload consumes a raw request body and reports its size.
func upload(req handler.Request, res handler.Response) error {
	n, err := io.Copy(io.Discard, req.Body())
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		res.SetStatus(http.StatusRequestEntityTooLarge)
		return res.WriteString(http.StatusText(http.StatusRequestEntityTooLarge))
	}
	if err != nil {
		return err
	}
	return res.JSON(map[string]int64{"size": n})
}
