// Package server provides the HTTP server of the book server.
//
// # Architecture Overview
//
//	┌───────────────────────────────────────────────────────────────┐
//	│                         HTTP Server                           │
//	│                     :8574 (server.http-port)                  │
//	├───────────────────────────────────────────────────────────────┤
//	│                       Middleware Stack                        │
//	│  ┌─────────────────────────────────────────────────────────┐  │
//	│  │  RequestLogger (numbering, request id, request-logger)  │  │
//	│  │  Recovery (panic recovery with zap logging)             │  │
//	│  └─────────────────────────────────────────────────────────┘  │
//	├───────────────────────────────────────────────────────────────┤
//	│                       Router (/)                              │
//	│  ┌─────────────────────────────────────────────────────────┐  │
//	│  │  Handlers (registered via callback)                     │  │
//	│  └─────────────────────────────────────────────────────────┘  │
//	└───────────────────────────────────────────────────────────────┘
//
// # Server Modes
//
// Development Mode (ServerMode = "dev"): gin runs in debug mode.
//
// Production Mode (ServerMode = "prod"): gin runs in release mode.
//
// # Server Lifecycle
//
//	srv, err := server.NewServer(cfg, requestLogger, func(router gin.IRouter) {
//	    v1.RegisterHandlersWithOptions(router, handler, v1.GinServerOptions{
//	        ErrorHandler: handlers.ErrorHandler,
//	    })
//	})
//
//	// Blocks until error or shutdown
//	err := srv.Start(ctx)
//
//	// Graceful shutdown, waits for in-flight requests
//	srv.Stop(ctx)
//
// # Middleware
//
// RequestLogger (middlewares.RequestLogger):
//   - Numbers requests with a counter owned by the server instance
//   - Keeps the X-Request-ID header or generates a UUID, echoed in the response
//   - Info: "Incoming request | #N | resource: /book | HTTP Verb POST"
//   - Debug: "request #N duration: Xms"
//
// Recovery Middleware (ginzap.RecoveryWithZap):
//   - Recovers from panics in handlers
//   - Logs panic details with stack trace
//   - Returns 500 Internal Server Error
//
// Unknown routes answer 404 with an error envelope.
package server
