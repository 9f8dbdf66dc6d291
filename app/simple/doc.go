// Package simple is a prewired session-backed web application: request
// ID and logging middleware, encrypted client-side sessions in chunked
// cookies, a liveness probe, and a graceful HTTP server, all configured
// from the environment.
//
//	app, err := simple.NewApp()
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	app.Router().Get("/", func(ctx *simple.Context) handler.Response {
//		data := middleware.GetSession(ctx)
//		return response.JSON(data)
//	})
//
//	if err := app.Run(ctx); err != nil {
//		log.Fatal(err)
//	}
package simple
