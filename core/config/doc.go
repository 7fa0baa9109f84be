// Package config loads typed configuration from environment variables using
// caarlos0/env struct tags. A .env file in the working directory is read on
// first use; variables already set in the environment take precedence.
//
//	type Config struct {
//		Env  string `env:"JOGGER_ENV" envDefault:"production"`
//		Addr string `env:"SERVER_ADDR" envDefault:":5000"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
//	// Or panic on failure, useful at startup.
//	config.MustLoad(&cfg)
//
// Each configuration type is parsed once per process and served from cache
// on later calls, so repeated loads of the same type are cheap and
// consistent. Different types are cached independently.
package config
