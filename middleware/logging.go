package middleware

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/jogger/core/handler"
	"github.com/dmitrymomot/jogger/core/logger"
)

// LoggingConfig configures the access log interceptor.
type LoggingConfig struct {
	// Skip defines a function to skip the interceptor for specific requests
	Skip func(req handler.Request) bool

	// Logger is the slog logger to use (default: slog.Default())
	Logger *slog.Logger

	// LogLevel for completed requests (default: slog.LevelInfo)
	LogLevel slog.Level

	// SlowRequestThreshold logs slow requests at warn level (default: 5s)
	SlowRequestThreshold time.Duration

	// Component name for structured logging (default: "http")
	Component string
}

// Logging creates an access log interceptor writing to log.
func Logging(log *slog.Logger) handler.Interceptor {
	return LoggingWithConfig(LoggingConfig{Logger: log})
}

// LoggingWithConfig creates an access log interceptor with custom configuration.
func LoggingWithConfig(cfg LoggingConfig) handler.Interceptor {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.SlowRequestThreshold <= 0 {
		cfg.SlowRequestThreshold = 5 * time.Second
	}
	if cfg.Component == "" {
		cfg.Component = "http"
	}

	return handler.InterceptorFunc(func(req handler.Request, res handler.Response, chain handler.Chain) error {
		if cfg.Skip != nil && cfg.Skip(req) {
			return chain.Proceed()
		}

		start := time.Now()
		err := chain.Proceed()
		elapsed := time.Since(start)

		attrs := []slog.Attr{
			logger.Component(cfg.Component),
			logger.RequestID(GetRequestID(req)),
			logger.Method(req.Method()),
			logger.Path(req.Path()),
			logger.StatusCode(res.Status()),
			logger.Elapsed(start),
		}

		level, msg := cfg.LogLevel, "Request completed"
		switch {
		case err != nil:
			level, msg = slog.LevelError, "Request failed"
			attrs = append(attrs, logger.Error(err))
		case elapsed > cfg.SlowRequestThreshold:
			level, msg = slog.LevelWarn, "Slow request"
		}
		cfg.Logger.LogAttrs(req.Context(), level, msg, attrs...)

		return err
	})
}
