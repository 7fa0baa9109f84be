// Package logger provides structured logging utilities built on Go's
// standard slog package: a small logger factory with environment presets and
// attribute helpers for the fields the dispatcher logs.
//
// # Basic Usage
//
//	import "github.com/dmitrymomot/jogger/core/logger"
//
//	// Development: text format, debug level, stdout
//	log := logger.New(logger.WithDevelopment("myapp"))
//
//	// Production: JSON format, info level, stdout
//	log := logger.New(logger.WithProduction("myapp"))
//
//	// Custom configuration
//	log := logger.New(
//		logger.WithLevel(slog.LevelWarn),
//		logger.WithJSONFormatter(),
//		logger.WithOutput(os.Stderr),
//	)
//
// # Attribute Helpers
//
// Helpers return an empty slog.Attr for empty values, which slog drops:
//
//	log.Error("exception processing request",
//		logger.Method(req.Method()),
//		logger.Path(req.Path()),
//		logger.RequestID(req.ID()),
//		logger.Error(err),
//	)
package logger
