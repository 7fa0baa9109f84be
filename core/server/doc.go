// Package server binds an http.Handler, typically the jogger dispatcher, to
// a TCP listener and manages its lifecycle.
//
//	srv := server.New(":5000", server.WithLogger(log))
//
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
//	defer stop()
//
//	if err := srv.Run(ctx, dispatcher)(); err != nil {
//		log.Error("server failed", logger.Error(err))
//	}
//
// Start blocks until the context is canceled; Stop performs a graceful
// shutdown bounded by the configured timeout. Run combines both and is
// suitable for errgroup. Configuration can also be loaded from the
// environment through Config and NewFromConfig.
package server
