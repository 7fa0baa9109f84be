// Package handler defines the contracts every route, interceptor and
// fallback handler is written against. It holds no behaviour of its own:
// the dispatcher in core/router composes these types for every request, and
// core/web provides the net/http backed Request and Response.
//
// # Features
//
//   - Request and Response abstractions over an already parsed HTTP exchange
//   - Route handlers and interceptors with explicit error returns
//   - Around-advice interceptors through the Chain continuation
//   - Pluggable exception and not-found handlers
//   - Func adapters for every interface
//
// # Handlers
//
// A handler writes the response and returns an error when it fails:
//
//	import "github.com/dmitrymomot/jogger/core/handler"
//
//	getUser := handler.HandlerFunc(func(req handler.Request, res handler.Response) error {
//		user, err := users.Find(req.Context(), req.Param("id"))
//		if err != nil {
//			return err
//		}
//		return res.JSON(user)
//	})
//
// # Interceptors
//
// An interceptor runs code before and after the rest of the route. Calling
// chain.Proceed continues; returning without calling it rejects the request
// without signalling a failure:
//
//	auth := handler.InterceptorFunc(func(req handler.Request, res handler.Response, chain handler.Chain) error {
//		if req.Header("Authorization") == "" {
//			res.Unauthorized()
//			return nil
//		}
//		start := time.Now()
//		err := chain.Proceed()
//		log.Printf("%s %s took %s", req.Method(), req.Path(), time.Since(start))
//		return err
//	})
//
// Errors returned by later elements propagate back through every enclosing
// Proceed call unchanged. Calling Proceed twice from one interceptor
// invocation is a programming error and the second call fails.
//
// # Fallback Handlers
//
// ExceptionHandler receives any failure raised while serving a request.
// NotFoundHandler runs when the response status is StatusNotFound after the
// route or asset executed. Both have built-in defaults that are used when the
// application does not provide one, or when the provided one fails:
//
//	notFound := handler.NotFoundHandlerFunc(func(req handler.Request, res handler.Response) error {
//		return res.Render(pages.NotFound(req.Path()))
//	})
package handler
