package router

import (
	"strings"

	"github.com/dmitrymomot/jogger/core/asset"
	"github.com/dmitrymomot/jogger/core/handler"
	"github.com/dmitrymomot/jogger/core/route"
)

// App is an immutable configuration snapshot: everything the dispatcher
// needs to serve a request. Any field may be nil; a nil Routes table matches
// nothing and nil fallback handlers are replaced by the built-in defaults.
type App struct {
	Routes           route.Table
	ExceptionHandler handler.ExceptionHandler
	NotFoundHandler  handler.NotFoundHandler
	Assets           asset.Loader
}

// Factory builds configuration snapshots. It is called once when the
// dispatcher is created and, in development mode, before every request.
type Factory interface {
	Configure() (*App, error)
}

// FactoryFunc adapts an ordinary function to the Factory interface.
type FactoryFunc func() (*App, error)

// Configure calls f().
func (f FactoryFunc) Configure() (*App, error) {
	return f()
}

// Config holds dispatcher settings loaded from the environment.
type Config struct {
	Env string `env:"JOGGER_ENV" envDefault:"production"`
}

// IsDevelopment reports whether the environment enables per-request
// configuration reload.
func (c Config) IsDevelopment() bool {
	switch strings.ToLower(strings.TrimSpace(c.Env)) {
	case "dev", "development":
		return true
	}
	return false
}
