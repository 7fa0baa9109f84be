// Package middleware provides reusable interceptors for route chains.
//
// Every constructor returns a handler.Interceptor that can be attached to a
// route at registration time:
//
//	routes := route.NewRegistry()
//	routes.Get("/users/:id", showUser,
//		middleware.RequestID(),
//		middleware.Logging(log),
//		middleware.SecurityHeaders(),
//	)
//
// Interceptors run in the order given. Each one may do work before calling
// chain.Proceed, after it returns, or stop the chain by not calling it at
// all. Interceptors only wrap matched routes; assets and fallback handlers
// are not intercepted.
//
// # Request ID
//
// RequestID echoes the request identifier in a response header so clients
// and logs can be correlated. With UseExisting an incoming header value wins
// over the generated one:
//
//	middleware.RequestIDWithConfig(middleware.RequestIDConfig{
//		HeaderName:  "X-Correlation-ID",
//		UseExisting: true,
//	})
//
// # Logging
//
// Logging writes one access record per request once the rest of the chain
// has finished. Requests slower than SlowRequestThreshold are logged at warn
// level; failures are logged with the error that will reach the exception
// handler.
//
// # Security Headers
//
// SecurityHeaders applies BalancedSecurity. StrictSecurity and
// DevelopmentSecurity are available through SecurityHeadersWithConfig.
//
// # Body Limit
//
// BodyLimit rejects requests whose declared Content-Length exceeds the limit
// with 413 and caps reads of the remaining body.
package middleware
