package router

import (
	"errors"
	"net/http"
	"strings"

	"github.com/dmitrymomot/jogger/core/handler"
	"github.com/dmitrymomot/jogger/core/web"
)

type errorBody struct {
	Status int    `json:"status"`
	Error  string `json:"error"`
	Path   string `json:"path,omitempty"`
}

// defaultExceptionHandler finalizes the response with an error status. It
// never overwrites a response that is already committed and never exposes
// the failure message to the client.
func defaultExceptionHandler(err error, req handler.Request, res handler.Response) error {
	if res.Committed() {
		return nil
	}

	status := handler.StatusInternalError
	var sc statusCoder
	switch {
	case errors.Is(err, web.ErrMalformedRequest):
		status = http.StatusBadRequest
	case errors.As(err, &sc) && sc.StatusCode() >= 400 && sc.StatusCode() < 600:
		status = sc.StatusCode()
	}
	res.SetStatus(status)

	if wantsJSON(req) {
		return res.JSON(errorBody{Status: status, Error: http.StatusText(status)})
	}
	return res.Render(statusPage(status, ""))
}

// defaultNotFoundHandler finalizes the response with a not found page.
func defaultNotFoundHandler(req handler.Request, res handler.Response) error {
	if res.Committed() {
		return nil
	}
	res.SetStatus(handler.StatusNotFound)

	if wantsJSON(req) {
		return res.JSON(errorBody{Status: handler.StatusNotFound, Error: http.StatusText(handler.StatusNotFound), Path: req.Path()})
	}
	return res.Render(statusPage(handler.StatusNotFound, req.Method()+" "+req.Path()))
}

func wantsJSON(req handler.Request) bool {
	accept := req.Header("Accept")
	return strings.Contains(accept, "application/json") && !strings.Contains(accept, "text/html")
}
