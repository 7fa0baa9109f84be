package route

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/dmitrymomot/jogger/core/handler"
)

// Registry is an ordered, in-memory route table. When several routes match a
// request, the one registered first wins.
//
// Registration is safe for concurrent use, but tables are meant to be
// populated before serving starts.
type Registry struct {
	mu     sync.RWMutex
	routes []*Route
}

// NewRegistry creates an empty route table.
func NewRegistry() *Registry {
	return &Registry{}
}

// Lookup implements Table. A nil Registry matches nothing.
func (t *Registry) Lookup(method, path string) (Match, bool) {
	if t == nil {
		return Match{}, false
	}
	t.mu.RLock()
	defer t.mu.RUnlock()

	for _, r := range t.routes {
		if params, ok := r.Match(method, path); ok {
			return Match{Route: r, Params: params}, true
		}
	}
	return Match{}, false
}

// Add compiles and registers a route.
func (t *Registry) Add(method, pattern string, h handler.Handler, interceptors ...handler.Interceptor) (*Route, error) {
	r, err := New(method, pattern, h, interceptors...)
	if err != nil {
		return nil, err
	}

	t.mu.Lock()
	t.routes = append(t.routes, r)
	t.mu.Unlock()
	return r, nil
}

// Routes returns the registered routes in precedence order.
func (t *Registry) Routes() []*Route {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append([]*Route(nil), t.routes...)
}

// Get registers a handler for GET requests.
func (t *Registry) Get(pattern string, h handler.HandlerFunc, interceptors ...handler.Interceptor) {
	t.mustAdd(http.MethodGet, pattern, h, interceptors)
}

// Post registers a handler for POST requests.
func (t *Registry) Post(pattern string, h handler.HandlerFunc, interceptors ...handler.Interceptor) {
	t.mustAdd(http.MethodPost, pattern, h, interceptors)
}

// Put registers a handler for PUT requests.
func (t *Registry) Put(pattern string, h handler.HandlerFunc, interceptors ...handler.Interceptor) {
	t.mustAdd(http.MethodPut, pattern, h, interceptors)
}

// Patch registers a handler for PATCH requests.
func (t *Registry) Patch(pattern string, h handler.HandlerFunc, interceptors ...handler.Interceptor) {
	t.mustAdd(http.MethodPatch, pattern, h, interceptors)
}

// Delete registers a handler for DELETE requests.
func (t *Registry) Delete(pattern string, h handler.HandlerFunc, interceptors ...handler.Interceptor) {
	t.mustAdd(http.MethodDelete, pattern, h, interceptors)
}

// Head registers a handler for HEAD requests.
func (t *Registry) Head(pattern string, h handler.HandlerFunc, interceptors ...handler.Interceptor) {
	t.mustAdd(http.MethodHead, pattern, h, interceptors)
}

// Options registers a handler for OPTIONS requests.
func (t *Registry) Options(pattern string, h handler.HandlerFunc, interceptors ...handler.Interceptor) {
	t.mustAdd(http.MethodOptions, pattern, h, interceptors)
}

// Handle registers a handler for all HTTP methods.
func (t *Registry) Handle(pattern string, h handler.HandlerFunc, interceptors ...handler.Interceptor) {
	t.mustAdd(MethodAny, pattern, h, interceptors)
}

func (t *Registry) mustAdd(method, pattern string, h handler.HandlerFunc, interceptors []handler.Interceptor) {
	var hh handler.Handler
	if h != nil {
		hh = h
	}
	if _, err := t.Add(method, pattern, hh, interceptors...); err != nil {
		panic(fmt.Errorf("jogger: %w", err))
	}
}
