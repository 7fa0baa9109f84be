package handler

import (
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"
)

// Request is the per-dispatch view of an inbound HTTP request.
type Request interface {
	// ID is a unique identifier assigned to the request on construction.
	ID() string
	Method() string
	// Path is the normalized request path; never empty.
	Path() string
	Host() string
	Context() context.Context
	Raw() *http.Request

	// Param returns a path parameter bound by the matched route.
	Param(key string) string
	Params() map[string]string
	Query(key string) string
	Header(key string) string
	Cookie(name string) (*http.Cookie, bool)
	// Form returns a value from the parsed form body or query string.
	Form(key string) string
	Body() io.Reader

	// Value and SetValue hold request-scoped attributes shared by
	// interceptors and handlers.
	Value(key any) any
	SetValue(key, val any)
}

// Response accumulates the outcome of a dispatch.
//
// Status may be changed freely until the first body write commits it.
type Response interface {
	Status() int
	SetStatus(code int)
	// Committed reports whether the status line and headers have been sent.
	Committed() bool

	SetHeader(key, value string)
	SetContentType(contentType string)
	SetCookie(cookie *http.Cookie)

	Write(b []byte) error
	WriteString(s string) error
	// Stream copies r into the body.
	Stream(r io.Reader) error
	JSON(v any) error
	// Render writes a templ component as HTML.
	Render(c templ.Component) error

	NotFound()
	BadRequest()
	Unauthorized()
	Conflict()
	Redirect(url string)
}
