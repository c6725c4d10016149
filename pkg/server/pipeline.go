package server

import (
	"net/http"

	"github.com/shashiranjanraj/setu/pkg/middleware"
	"github.com/shashiranjanraj/setu/pkg/reqid"
	"github.com/shashiranjanraj/setu/pkg/router"
	"github.com/shashiranjanraj/setu/pkg/tracing"
)

// tracerName names the pipeline's OpenTelemetry tracer.
const tracerName = "setu"

// Stack returns the global middleware chain, outermost first:
//
//  1. CORS (only when enabled): cross-origin concerns, preflight
//     included, are settled before any other layer observes the request
//  2. tracing: the span stays open while everything below runs
//  3. request ID: assigned before anything logs
//  4. logging: every line carries the request_id from context
//
// The order is a contract: request-ID and tracing must wrap logging so
// log lines correlate with an ID and a live span, and CORS must be
// outermost.
//
// Each call returns a fresh slice; appending to it never affects the
// server.
func (s *Server) Stack() []router.Middleware {
	stack := make([]router.Middleware, 0, 4)

	if s.cfg.CORSEnabled {
		stack = append(stack, middleware.CORS(middleware.AllowAll()))
	}

	stack = append(stack,
		tracing.Middleware(tracerName),
		reqid.Middleware(),
		middleware.Logger,
	)

	return stack
}

// Build assembles the request pipeline: a fresh router with the
// application's routes mounted, wrapped by Stack. Build performs no I/O,
// cannot fail, and never mutates the Server; each call yields an
// independently usable handler. The result is a plain http.Handler, so
// callers are free to wrap it further (metrics, recovery, rate limits)
// before serving.
func (s *Server) Build() http.Handler {
	r := router.New()
	r.Use(s.Stack()...)
	s.app.Mount(r)
	return r.Handler()
}
