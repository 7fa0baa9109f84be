package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/jogger/core/asset"
	"github.com/dmitrymomot/jogger/core/config"
	"github.com/dmitrymomot/jogger/core/logger"
	"github.com/dmitrymomot/jogger/core/router"
	"github.com/dmitrymomot/jogger/core/server"
)

// Config is the process configuration, loaded from the environment and an
// optional .env file.
type Config struct {
	AppName   string `env:"APP_NAME" envDefault:"jogger"`
	AssetsDir string `env:"ASSETS_DIR"`

	Router router.Config
	Server server.Config
	S3     asset.S3Config
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cfg Config
	config.MustLoad(&cfg)

	logOpt := logger.WithProduction(cfg.AppName)
	if cfg.Router.IsDevelopment() {
		logOpt = logger.WithDevelopment(cfg.AppName)
	}
	log := logger.New(logOpt)

	assets, err := newAssets(ctx, cfg)
	if err != nil {
		log.Error("Failed to set up assets", logger.Component("assets"), logger.Error(err))
		os.Exit(1)
	}

	d, err := router.NewWithFactory(newFactory(log, assets, cfg.Router.IsDevelopment()),
		router.WithConfig(cfg.Router),
		router.WithLogger(log),
	)
	if err != nil {
		log.Error("Failed to configure dispatcher", logger.Component("router"), logger.Error(err))
		os.Exit(1)
	}

	s, err := server.NewFromConfig(cfg.Server, server.WithLogger(log))
	if err != nil {
		log.Error("Failed to create server", logger.Component("server"), logger.Error(err))
		os.Exit(1)
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(s.Run(ctx, d))

	if err := eg.Wait(); err != nil {
		log.Error("Failed to run server", logger.Component("server"), logger.Error(err))
		os.Exit(1)
	}

	log.Info("Application stopped")
}

// newAssets picks the asset source: a bucket when one is configured, a local
// directory otherwise, or none.
func newAssets(ctx context.Context, cfg Config) (asset.Loader, error) {
	switch {
	case cfg.S3.Bucket != "":
		return asset.S3(ctx, cfg.S3)
	case cfg.AssetsDir != "":
		return asset.Dir(cfg.AssetsDir), nil
	default:
		return nil, nil
	}
}
