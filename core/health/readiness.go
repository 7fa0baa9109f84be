package health

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/jogger/core/handler"
	"github.com/dmitrymomot/jogger/core/logger"
)

// Readiness answers "READY" when every check passes and 503 Service
// Unavailable on the first failure. Failures are logged, not exposed.
func Readiness(log *slog.Logger, checks ...func(context.Context) error) handler.HandlerFunc {
	return func(req handler.Request, res handler.Response) error {
		for _, check := range checks {
			if err := check(req.Context()); err != nil {
				log.ErrorContext(req.Context(), "Readiness check failed", logger.Component("health"), logger.Error(err))
				res.SetStatus(http.StatusServiceUnavailable)
				return res.WriteString(http.StatusText(http.StatusServiceUnavailable))
			}
		}
		return res.WriteString("READY")
	}
}
