// Package server wraps http.Server with graceful shutdown and
// production defaults.
//
//	srv := server.New(":8080", server.WithLogger(log))
//
//	g, ctx := errgroup.WithContext(ctx)
//	g.Go(srv.Run(ctx, router))
//	if err := g.Wait(); err != nil {
//		log.Error("server failed", logger.Error(err))
//	}
package server
