package web

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/google/uuid"

	"github.com/dmitrymomot/jogger/core/handler"
	"github.com/dmitrymomot/jogger/core/route"
)

// DefaultMaxMemory bounds the in-memory part of a parsed multipart body.
const DefaultMaxMemory = 32 << 20 // 32 MB

var ErrMalformedRequest = errors.New("malformed request")

var _ handler.Request = (*Request)(nil)

// Request adapts an *http.Request to handler.Request. It is bound to the
// route that matched it, or unbound when nothing matched.
type Request struct {
	r         *http.Request
	id        string
	path      string
	route     *route.Route
	params    map[string]string
	values    map[any]any
	maxMemory int64
}

// NewRequest wraps r. The zero Match leaves the request unbound.
func NewRequest(r *http.Request, m route.Match) *Request {
	return &Request{
		r:         r,
		id:        uuid.New().String(),
		path:      Path(r),
		route:     m.Route,
		params:    m.Params,
		maxMemory: DefaultMaxMemory,
	}
}

// Path returns the normalized, decoded path of r. It is what handlers,
// logs and asset loaders see.
func Path(r *http.Request) string {
	if r.URL == nil {
		return "/"
	}
	return route.NormalizePath(r.URL.Path)
}

// LookupPath returns the normalized path of r in escaped form, the
// representation route tables match against. It is always escaped, however
// the client encoded it, so "%2F" inside a segment is never mistaken for a
// separator.
func LookupPath(r *http.Request) string {
	if r.URL == nil {
		return "/"
	}
	return route.NormalizePath(r.URL.EscapedPath())
}

// Init parses the request body. It fails with ErrMalformedRequest when the
// content type or form body cannot be parsed.
func (r *Request) Init() error {
	if ct := r.r.Header.Get("Content-Type"); ct != "" {
		mt, _, err := mime.ParseMediaType(ct)
		if err != nil {
			return fmt.Errorf("%w: content type: %v", ErrMalformedRequest, err)
		}
		if mt == "multipart/form-data" {
			if err := r.r.ParseMultipartForm(r.maxMemory); err != nil {
				return fmt.Errorf("%w: multipart form: %v", ErrMalformedRequest, err)
			}
			return nil
		}
	}

	if err := r.r.ParseForm(); err != nil {
		return fmt.Errorf("%w: form: %v", ErrMalformedRequest, err)
	}
	return nil
}

// Route returns the matched route, or nil for an unbound request.
func (r *Request) Route() *route.Route {
	return r.route
}

func (r *Request) ID() string               { return r.id }
func (r *Request) Method() string           { return r.r.Method }
func (r *Request) Path() string             { return r.path }
func (r *Request) Host() string             { return r.r.Host }
func (r *Request) Context() context.Context { return r.r.Context() }
func (r *Request) Raw() *http.Request       { return r.r }
func (r *Request) Body() io.Reader          { return r.r.Body }

// Param returns a path parameter, or "" when it is not bound.
func (r *Request) Param(key string) string {
	return r.params[key]
}

// Params returns a copy of the path parameters.
func (r *Request) Params() map[string]string {
	out := make(map[string]string, len(r.params))
	for k, v := range r.params {
		out[k] = v
	}
	return out
}

func (r *Request) Query(key string) string {
	return r.r.URL.Query().Get(key)
}

func (r *Request) Header(key string) string {
	return r.r.Header.Get(key)
}

func (r *Request) Cookie(name string) (*http.Cookie, bool) {
	c, err := r.r.Cookie(name)
	if err != nil {
		return nil, false
	}
	return c, true
}

// Form returns the first value for key from the body or query string.
// It is empty until Init has run.
func (r *Request) Form(key string) string {
	if r.r.Form == nil {
		return ""
	}
	return r.r.Form.Get(key)
}

// Value returns a request attribute, falling back to the request context.
func (r *Request) Value(key any) any {
	if v, ok := r.values[key]; ok {
		return v
	}
	return r.r.Context().Value(key)
}

func (r *Request) SetValue(key, val any) {
	if r.values == nil {
		r.values = make(map[any]any)
	}
	r.values[key] = val
}
