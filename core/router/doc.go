// Package router is the request-dispatch core of jogger. A Dispatcher is an
// http.Handler that, for every request, looks up a route, runs the route's
// interceptors and handler, serves a static asset when no route matched, and
// converts unmatched requests and failures into the configured not-found and
// exception handlers.
//
// # Basic Usage
//
//	routes := route.NewRegistry()
//	routes.Get("/users/:id", getUser, authCheck)
//
//	d, err := router.New(&router.App{
//		Routes: routes,
//		Assets: asset.Dir("./public"),
//	}, router.WithLogger(log))
//	if err != nil {
//		return err
//	}
//
//	http.ListenAndServe(":5000", d)
//
// # Dispatch
//
// Each request ends in exactly one of three outcomes:
//
//   - success: the route or asset produced the response
//   - not found: no route or asset matched, or the route left the status at
//     404; the NotFoundHandler runs
//   - error: request parsing, an interceptor, the handler or the asset loader
//     failed or panicked; the status is forced to 500 and the
//     ExceptionHandler runs
//
// When the application's fallback handler is missing, fails or panics, the
// built-in default runs instead. The response is always committed before
// ServeHTTP returns.
//
// # Interceptors
//
// Interceptors run in registration order around the handler. Each one calls
// chain.Proceed to continue and may run code after it returns:
//
//	timing := handler.InterceptorFunc(func(req handler.Request, res handler.Response, chain handler.Chain) error {
//		start := time.Now()
//		err := chain.Proceed()
//		log.Info("request served", logger.Path(req.Path()), logger.Elapsed(start))
//		return err
//	})
//
// Not calling Proceed short-circuits the route. Calling it twice from the
// same invocation returns ErrChainProceeded without running anything.
//
// # Development Mode
//
// With WithDevelopment(true), or JOGGER_ENV=development through WithConfig,
// the Factory is called before every request so route and handler changes
// take effect without a restart:
//
//	d, err := router.NewWithFactory(router.FactoryFunc(buildApp),
//		router.WithConfig(cfg),
//	)
//
// A reload failure answers the request with a bare 500 because no
// application handler can run without a configuration.
package router
