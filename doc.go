// Package jogger is an HTTP dispatch core: it routes each request to a
// handler wrapped in interceptors, falls back to static assets, and
// guarantees exactly one outcome per request through not-found and
// exception handlers. In development mode the whole configuration is rebuilt
// before every request.
//
// # Package Organization
//
// The module is organized into core packages, reusable interceptors and a
// runnable server:
//
//	github.com/dmitrymomot/jogger/core/handler - Handler, Interceptor and fallback contracts
//	github.com/dmitrymomot/jogger/core/route   - Route patterns, matching and the route registry
//	github.com/dmitrymomot/jogger/core/web     - net/http backed Request and Response
//	github.com/dmitrymomot/jogger/core/asset   - Asset loaders for local directories, fs.FS and S3
//	github.com/dmitrymomot/jogger/core/router  - The dispatcher: chains, assets, fallbacks and hot reload
//	github.com/dmitrymomot/jogger/core/server  - HTTP server with graceful shutdown
//	github.com/dmitrymomot/jogger/core/config  - Type-safe environment variable loading
//	github.com/dmitrymomot/jogger/core/logger  - Structured logging built on slog
//	github.com/dmitrymomot/jogger/core/health  - Liveness and readiness handlers
//	github.com/dmitrymomot/jogger/middleware   - Request ID, access log, security headers and body limit interceptors
//	github.com/dmitrymomot/jogger/cmd/jogger   - Example server wiring everything together
//
// # Getting Documentation
//
//	go doc github.com/dmitrymomot/jogger/core/router
//	go doc -all github.com/dmitrymomot/jogger/middleware
//
// # Quick Start
//
//	routes := route.NewRegistry()
//	routes.Get("/users/:id", showUser, middleware.RequestID())
//
//	d, err := router.New(&router.App{
//		Routes: routes,
//		Assets: asset.Dir("./public"),
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	srv := server.New(server.DefaultAddr)
//	_ = srv.Run(ctx, d)()
package jogger
