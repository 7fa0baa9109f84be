package middleware

import (
	"github.com/dmitrymomot/jogger/core/handler"
)

// requestIDKey is used as a key for storing the effective request ID.
type requestIDKey struct{}

// RequestIDConfig configures the request ID interceptor.
type RequestIDConfig struct {
	// Skip defines a function to skip the interceptor for specific requests
	Skip func(req handler.Request) bool
	// HeaderName is the response header carrying the ID (default: "X-Request-ID")
	HeaderName string
	// UseExisting prefers an ID sent by the client in HeaderName
	UseExisting bool
}

// RequestID echoes the request ID in the X-Request-ID response header.
func RequestID() handler.Interceptor {
	return RequestIDWithConfig(RequestIDConfig{})
}

// RequestIDWithConfig creates a request ID interceptor with custom configuration.
func RequestIDWithConfig(cfg RequestIDConfig) handler.Interceptor {
	if cfg.HeaderName == "" {
		cfg.HeaderName = "X-Request-ID"
	}

	return handler.InterceptorFunc(func(req handler.Request, res handler.Response, chain handler.Chain) error {
		if cfg.Skip != nil && cfg.Skip(req) {
			return chain.Proceed()
		}

		id := req.ID()
		if cfg.UseExisting {
			if existing := req.Header(cfg.HeaderName); existing != "" {
				id = existing
			}
		}

		req.SetValue(requestIDKey{}, id)
		res.SetHeader(cfg.HeaderName, id)
		return chain.Proceed()
	})
}

// GetRequestID returns the ID chosen by the request ID interceptor, falling
// back to the dispatcher-assigned one.
func GetRequestID(req handler.Request) string {
	if id, ok := req.Value(requestIDKey{}).(string); ok {
		return id
	}
	return req.ID()
}
