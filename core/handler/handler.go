package handler

import "net/http"

// Status codes the dispatcher inspects by value after a route or asset ran.
const (
	StatusNotFound      = http.StatusNotFound
	StatusInternalError = http.StatusInternalServerError
)

// Handler is the terminal element of a route: it produces the response.
type Handler interface {
	Handle(req Request, res Response) error
}

// HandlerFunc adapts an ordinary function to the Handler interface.
type HandlerFunc func(req Request, res Response) error

// Handle calls f(req, res).
func (f HandlerFunc) Handle(req Request, res Response) error {
	return f(req, res)
}

// Chain lets an interceptor continue with the rest of a route.
//
// Proceed runs the next interceptor, or the route handler when no
// interceptors are left, and returns once that element has finished.
// An interceptor that never calls Proceed short-circuits the route.
// Proceed must be called at most once per interceptor invocation.
type Chain interface {
	Proceed() error
}

// Interceptor wraps route execution with optional before and after logic.
type Interceptor interface {
	Intercept(req Request, res Response, chain Chain) error
}

// InterceptorFunc adapts an ordinary function to the Interceptor interface.
type InterceptorFunc func(req Request, res Response, chain Chain) error

// Intercept calls f(req, res, chain).
func (f InterceptorFunc) Intercept(req Request, res Response, chain Chain) error {
	return f(req, res, chain)
}

// ExceptionHandler renders a response for a failed request.
type ExceptionHandler interface {
	HandleException(err error, req Request, res Response) error
}

// ExceptionHandlerFunc adapts an ordinary function to the ExceptionHandler interface.
type ExceptionHandlerFunc func(err error, req Request, res Response) error

// HandleException calls f(err, req, res).
func (f ExceptionHandlerFunc) HandleException(err error, req Request, res Response) error {
	return f(err, req, res)
}

// NotFoundHandler renders a response when nothing matched the request.
type NotFoundHandler interface {
	HandleNotFound(req Request, res Response) error
}

// NotFoundHandlerFunc adapts an ordinary function to the NotFoundHandler interface.
type NotFoundHandlerFunc func(req Request, res Response) error

// HandleNotFound calls f(req, res).
func (f NotFoundHandlerFunc) HandleNotFound(req Request, res Response) error {
	return f(req, res)
}
