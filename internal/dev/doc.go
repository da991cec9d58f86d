// Package dev provides the development server.
//
// The server compiles the application to WebAssembly, serves the bundle
// and a generated host page, watches the project by polling and pushes
// reload messages to connected browsers over a websocket.
//
//	srv := dev.NewServer(dev.Options{
//	    Config: cfg,
//	    Logger: logger,
//	})
//	if err := srv.Start(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// # Routes
//
//	/              host page, with the reload client when dev.hotReload is set
//	/_elt/reload   websocket for reload messages
//	/metrics       Prometheus metrics of the server and of page builds
//	/*             files from build.output
//
// Requests are traced with OpenTelemetry through the global tracer
// provider unless Options.TracerProvider is set.
//
// # Reload protocol
//
// Messages are JSON encoded:
//
//	{"type": "reload"}                 // reload the page
//	{"type": "css", "file": "..."}     // reload stylesheets
//	{"type": "error", "error": "..."}  // show the build error overlay
//	{"type": "clear"}                  // remove the overlay
package dev
