// Package server provides HTTP routing, middleware, and the listener lifecycle for the web widget.
//
// # Router Infrastructure
//
// The [Router] interface defines HTTP routing with middleware support.
//
// [Middleware] wraps handlers in reverse order (last added executes first), following the standard Go pattern.
//
// The [BasicRouter] implementation uses [http.ServeMux] internally with method filtering. Paths may use
// ServeMux wildcards such as /cards/{id}/like; handlers read them with [http.Request.PathValue].
//
// # Middleware
//
// [Defaults] assembles chi's RequestID, RealIP and Recoverer around [Logging]. [RateLimit] applies a single
// token bucket across all clients.
//
// # Handler Interface
//
// Custom handlers implement the [Handler] interface, which wraps the stdlib handler interface and adds routes,
// allowing handlers to register multiple routes to encapsulate route definitions within the implementation.
//
// # Lifecycle
//
// [Serve] binds the listener, serves until its context is cancelled and then shuts down within [ShutdownTimeout].
package server
