package route

import (
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/dmitrymomot/jogger/core/handler"
)

// MethodAny registers a route for every HTTP method.
const MethodAny = "*"

var (
	ErrInvalidMethod    = errors.New("invalid http method")
	ErrInvalidPattern   = errors.New("invalid route path pattern")
	ErrInvalidRegexp    = errors.New("invalid route path pattern regexp")
	ErrWildcardPosition = errors.New("wildcard position must be last")
	ErrDuplicateParam   = errors.New("duplicate parameter name")
	ErrNilHandler       = errors.New("nil route handler")
	ErrNilInterceptor   = errors.New("nil route interceptor")
)

var methods = map[string]struct{}{
	http.MethodConnect: {},
	http.MethodDelete:  {},
	http.MethodGet:     {},
	http.MethodHead:    {},
	http.MethodOptions: {},
	http.MethodPatch:   {},
	http.MethodPost:    {},
	http.MethodPut:     {},
	http.MethodTrace:   {},
	MethodAny:          {},
}

// Route binds a method and path pattern to an ordered interceptor sequence
// and a terminal handler. A Route is immutable once built.
type Route struct {
	method       string
	pattern      string
	interceptors []handler.Interceptor
	handler      handler.Handler
	segments     []segment
}

// Match is the result of a successful lookup.
type Match struct {
	Route  *Route
	Params map[string]string
}

// Table resolves a request to at most one route.
type Table interface {
	Lookup(method, path string) (Match, bool)
}

// New compiles a route. Patterns start with "/" and may contain
// ":name" or "{name}" parameters, "{name:regexp}" constrained parameters and
// a trailing "*" catch-all.
func New(method, pattern string, h handler.Handler, interceptors ...handler.Interceptor) (*Route, error) {
	method = strings.ToUpper(method)
	if _, ok := methods[method]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrInvalidMethod, method)
	}
	if h == nil {
		return nil, fmt.Errorf("%w on '%s %s'", ErrNilHandler, method, pattern)
	}
	for _, i := range interceptors {
		if i == nil {
			return nil, fmt.Errorf("%w on '%s %s'", ErrNilInterceptor, method, pattern)
		}
	}

	segments, err := compile(pattern)
	if err != nil {
		return nil, err
	}

	return &Route{
		method:       method,
		pattern:      pattern,
		interceptors: append([]handler.Interceptor(nil), interceptors...),
		handler:      h,
		segments:     segments,
	}, nil
}

// Method returns the HTTP method, or MethodAny.
func (r *Route) Method() string {
	return r.method
}

// Pattern returns the path pattern the route was registered with.
func (r *Route) Pattern() string {
	return r.pattern
}

// Interceptors returns a copy of the route's interceptor sequence.
func (r *Route) Interceptors() []handler.Interceptor {
	return append([]handler.Interceptor(nil), r.interceptors...)
}

// Handler returns the route's terminal handler.
func (r *Route) Handler() handler.Handler {
	return r.handler
}

// Match reports whether the route serves method and path, returning the
// bound path parameters. The path is in escaped form; each segment is
// unescaped before comparison, so "%2F" never splits a segment.
func (r *Route) Match(method, path string) (map[string]string, bool) {
	if r.method != MethodAny && r.method != method {
		return nil, false
	}

	parts, ok := decodeSegments(split(path))
	if !ok {
		return nil, false
	}
	var params map[string]string
	bind := func(key, val string) {
		if params == nil {
			params = make(map[string]string, len(r.segments))
		}
		params[key] = val
	}

	for i, seg := range r.segments {
		if seg.kind == segCatchAll {
			bind(seg.value, strings.Join(parts[i:], "/"))
			return params, true
		}
		if i >= len(parts) {
			return nil, false
		}
		switch seg.kind {
		case segStatic:
			if parts[i] != seg.value {
				return nil, false
			}
		case segParam:
			if parts[i] == "" {
				return nil, false
			}
			bind(seg.value, parts[i])
		case segRegexp:
			if !seg.rex.MatchString(parts[i]) {
				return nil, false
			}
			bind(seg.value, parts[i])
		}
	}

	if len(parts) != len(r.segments) {
		return nil, false
	}
	return params, true
}

// String returns "METHOD pattern".
func (r *Route) String() string {
	return r.method + " " + r.pattern
}

type segmentKind uint8

const (
	segStatic   segmentKind = iota // /home
	segParam                       // /:user or /{user}
	segRegexp                      // /{id:[0-9]+}
	segCatchAll                    // /assets/*
)

type segment struct {
	kind  segmentKind
	value string
	rex   *regexp.Regexp
}

func compile(pattern string) ([]segment, error) {
	if len(pattern) == 0 || pattern[0] != '/' {
		return nil, fmt.Errorf("%w: '%s'", ErrInvalidPattern, pattern)
	}

	parts := split(pattern)
	segments := make([]segment, 0, len(parts))
	seen := make(map[string]struct{})

	for i, part := range parts {
		seg, err := compileSegment(part)
		if err != nil {
			return nil, fmt.Errorf("%w in '%s'", err, pattern)
		}
		if seg.kind == segCatchAll && i != len(parts)-1 {
			return nil, fmt.Errorf("%w in '%s'", ErrWildcardPosition, pattern)
		}
		if seg.kind != segStatic {
			if _, dup := seen[seg.value]; dup {
				return nil, fmt.Errorf("%w '%s' in '%s'", ErrDuplicateParam, seg.value, pattern)
			}
			seen[seg.value] = struct{}{}
		}
		segments = append(segments, seg)
	}

	return segments, nil
}

func compileSegment(part string) (segment, error) {
	switch {
	case part == "*":
		return segment{kind: segCatchAll, value: "*"}, nil
	case strings.HasPrefix(part, ":"):
		if len(part) == 1 {
			return segment{}, ErrInvalidPattern
		}
		return segment{kind: segParam, value: part[1:]}, nil
	case strings.HasPrefix(part, "{"):
		if !strings.HasSuffix(part, "}") || len(part) < 3 {
			return segment{}, ErrInvalidPattern
		}
		inner := part[1 : len(part)-1]
		name, expr, hasRex := strings.Cut(inner, ":")
		if name == "" {
			return segment{}, ErrInvalidPattern
		}
		if !hasRex {
			return segment{kind: segParam, value: name}, nil
		}
		if len(expr) == 0 || expr[0] != '^' {
			expr = "^" + expr
		}
		if expr[len(expr)-1] != '$' {
			expr += "$"
		}
		rex, err := regexp.Compile(expr)
		if err != nil {
			return segment{}, fmt.Errorf("%w: %v", ErrInvalidRegexp, err)
		}
		return segment{kind: segRegexp, value: name, rex: rex}, nil
	case strings.Contains(part, "*"):
		return segment{}, ErrWildcardPosition
	case strings.ContainsAny(part, "{}"):
		return segment{}, ErrInvalidPattern
	}
	return segment{kind: segStatic, value: norm.NFC.String(part)}, nil
}

// split breaks a path into its segments, ignoring leading and trailing
// slashes. The root path yields no segments.
func split(path string) []string {
	path = strings.Trim(path, "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}
