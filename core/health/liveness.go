package health

import (
	"net/http"

	"github.com/dmitrymomot/jogger/core/handler"
)

// Liveness always answers "ALIVE" with 200 OK.
func Liveness(_ handler.Request, res handler.Response) error {
	return res.WriteString("ALIVE")
}

// NoContent answers 204 without a body.
func NoContent(_ handler.Request, res handler.Response) error {
	res.SetStatus(http.StatusNoContent)
	return nil
}
