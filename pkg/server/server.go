// Package server boots Setu's HTTP listener: it holds the bind
// configuration, assembles the request pipeline (application routes
// wrapped by the fixed global middleware chain), and drives the accept
// loop.
//
// Minimal usage:
//
//	srv := server.WithDefaults(myApp)
//	if err := srv.Run(); err != nil {
//	    logger.Error("server stopped", "error", err)
//	}
//
// Transport tuning, TLS, and shutdown signalling are deliberately out of
// scope; callers who need them can Build() the pipeline and mount it on
// their own *http.Server.
package server

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"

	"github.com/shashiranjanraj/setu/pkg/logger"
	"github.com/shashiranjanraj/setu/pkg/router"
)

// App is the shared application state handle. Mount registers the
// application's route dispatch on a router; handlers close over the
// receiver, so the same state is read concurrently by every in-flight
// request and must be safe for shared access. The server never inspects
// or mutates it.
type App interface {
	Mount(r *router.Router)
}

// ErrInvalidAddress reports a host:port literal that cannot be resolved
// into a socket address. It is returned by Run before any socket is
// bound; callers decide whether to fix the configuration or give up.
var ErrInvalidAddress = errors.New("invalid listen address")

// Server owns one Config and one application handle. Both are fixed at
// construction; the pipeline is re-derived from them on every Build.
type Server struct {
	cfg Config
	app App
}

// New creates a Server. No validation, no side effects.
func New(app App, cfg Config) *Server {
	return &Server{cfg: cfg, app: app}
}

// WithDefaults creates a Server with DefaultConfig.
func WithDefaults(app App) *Server {
	return New(app, DefaultConfig())
}

// Address returns the configured "host:port" literal. Purely formatting;
// it does not imply the address is resolvable.
func (s *Server) Address() string {
	return s.cfg.Host + ":" + strconv.Itoa(int(s.cfg.Port))
}

// resolve turns the configured literal into a concrete TCP address.
// An empty host is rejected up front; net.ResolveTCPAddr handles IP
// literals, wildcard forms, and hostname lookup.
func (s *Server) resolve() (*net.TCPAddr, error) {
	if s.cfg.Host == "" {
		return nil, fmt.Errorf("%w: empty host", ErrInvalidAddress)
	}

	addr, err := net.ResolveTCPAddr("tcp", net.JoinHostPort(s.cfg.Host, strconv.Itoa(int(s.cfg.Port))))
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidAddress, s.Address(), err)
	}
	return addr, nil
}

// Run resolves the configured address, builds the pipeline, binds the
// listener, and serves until the accept loop fails. It blocks for the
// life of the server and always returns a non-nil error:
//
//   - ErrInvalidAddress when the host:port literal cannot be resolved
//     (nothing is bound in that case),
//   - the OS error when the bind is refused (port in use, permission),
//   - whatever the serve loop failed with otherwise.
//
// Each accepted connection is handled on its own goroutine, so one slow
// request never blocks acceptance of the next.
func (s *Server) Run() error {
	addr, err := s.resolve()
	if err != nil {
		return err
	}

	handler := s.Build()

	ln, err := net.Listen("tcp", addr.String())
	if err != nil {
		return fmt.Errorf("bind %s: %w", addr, err)
	}

	logger.Info("server started", "host", s.cfg.Host, "port", s.cfg.Port)

	return http.Serve(ln, handler)
}
