package router

import "log/slog"

// Option configures a Dispatcher during creation.
type Option func(*Dispatcher)

// WithLogger sets the logger for exception and reload diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Dispatcher) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// WithDevelopment enables rebuilding the configuration snapshot from the
// factory before every request.
func WithDevelopment(enabled bool) Option {
	return func(d *Dispatcher) {
		d.development = enabled
	}
}

// WithConfig applies settings loaded from the environment.
func WithConfig(cfg Config) Option {
	return WithDevelopment(cfg.IsDevelopment())
}
