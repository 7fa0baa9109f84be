package web

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/jogger/core/handler"
)

var _ handler.Response = (*Response)(nil)

// Response adapts an http.ResponseWriter to handler.Response.
//
// The status is buffered until the first body write, Redirect or Finish
// commits it. Once committed, SetStatus has no effect and Status reports
// what was sent.
type Response struct {
	w         http.ResponseWriter
	ctx       context.Context
	status    int
	committed bool
	size      int64
}

// NewResponse wraps w. Templates render with the context of r.
func NewResponse(w http.ResponseWriter, r *http.Request) *Response {
	ctx := context.Background()
	if r != nil {
		ctx = r.Context()
	}
	return &Response{
		w:      w,
		ctx:    ctx,
		status: http.StatusOK,
	}
}

func (r *Response) Status() int {
	return r.status
}

func (r *Response) SetStatus(code int) {
	if r.committed {
		return
	}
	r.status = code
}

func (r *Response) Committed() bool {
	return r.committed
}

// Size returns the number of body bytes written.
func (r *Response) Size() int64 {
	return r.size
}

func (r *Response) SetHeader(key, value string) {
	r.w.Header().Set(key, value)
}

func (r *Response) SetContentType(contentType string) {
	r.w.Header().Set("Content-Type", contentType)
}

func (r *Response) SetCookie(cookie *http.Cookie) {
	http.SetCookie(r.w, cookie)
}

func (r *Response) Write(b []byte) error {
	r.commit()
	n, err := r.w.Write(b)
	r.size += int64(n)
	return err
}

func (r *Response) WriteString(s string) error {
	return r.Write([]byte(s))
}

func (r *Response) Stream(src io.Reader) error {
	r.commit()
	n, err := io.Copy(r.w, src)
	r.size += n
	return err
}

func (r *Response) JSON(v any) error {
	if r.w.Header().Get("Content-Type") == "" {
		r.SetContentType("application/json; charset=utf-8")
	}
	r.commit()
	return json.NewEncoder(countingWriter{r}).Encode(v)
}

func (r *Response) Render(c templ.Component) error {
	if r.w.Header().Get("Content-Type") == "" {
		r.SetContentType("text/html; charset=utf-8")
	}
	r.commit()
	return c.Render(r.ctx, countingWriter{r})
}

func (r *Response) NotFound()     { r.SetStatus(http.StatusNotFound) }
func (r *Response) BadRequest()   { r.SetStatus(http.StatusBadRequest) }
func (r *Response) Unauthorized() { r.SetStatus(http.StatusUnauthorized) }
func (r *Response) Conflict()     { r.SetStatus(http.StatusConflict) }

// Redirect sends a 302 to url and commits the response.
func (r *Response) Redirect(url string) {
	if r.committed {
		return
	}
	r.SetHeader("Location", url)
	r.SetStatus(http.StatusFound)
	r.commit()
}

// Finish commits the status if nothing has been written yet. The dispatcher
// calls it once per request as its final step.
func (r *Response) Finish() {
	r.commit()
}

// Flush implements http.Flusher if the underlying ResponseWriter supports it.
func (r *Response) Flush() {
	r.commit()
	if f, ok := r.w.(http.Flusher); ok {
		f.Flush()
	}
}

func (r *Response) commit() {
	if r.committed {
		return
	}
	r.committed = true
	r.w.WriteHeader(r.status)
}

type countingWriter struct {
	r *Response
}

func (c countingWriter) Write(b []byte) (int, error) {
	n, err := c.r.w.Write(b)
	c.r.size += int64(n)
	return n, err
}
