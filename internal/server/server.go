package server

import "net/http"

// Middleware decorates a handler. See [BasicRouter.Apply] for ordering.
type Middleware func(http.Handler) http.Handler

// Handler serves a fixed set of mux patterns without per-method dispatch, e.g. static assets.
type Handler interface {
	http.Handler
	Routes() []string
}

// Router registers method routes and [Handler] groups behind a shared middleware stack.
//
// [BasicRouter] is the implementation used by the web widget.
type Router interface {
	Use(middleware ...Middleware)
	Handle(method, path string, handler http.Handler)
	Handler(handler Handler)
	http.Handler
}

var _ Router = (*BasicRouter)(nil)
