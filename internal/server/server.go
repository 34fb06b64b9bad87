// package server contains middleware & handlers for the catalog web service
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/tunedex/internal/catalog"
	"github.com/desertthunder/tunedex/internal/shared"
)

// Middleware wraps an http.Handler and returns a new http.Handler with additional behavior.
type Middleware func(http.Handler) http.Handler

// Handler defines the interface for HTTP request handlers in the catalog service.
//
// Routes returns method patterns ("GET /catalog") mapped to the handler serving them.
type Handler interface {
	Routes() map[string]http.Handler
}

// Router defines the interface for HTTP routing and middleware management.
// Implementations register handlers, apply middleware, and configure the HTTP server.
type Router interface {
	Use(middleware ...Middleware)                     // Use adds middleware to the router's middleware stack
	Handle(method, path string, handler http.Handler) // Handle registers a handler for the specified method and path
	Handler(handler Handler)                          // Handler registers a custom Handler implementation
	ServeHTTP(w http.ResponseWriter, r *http.Request) // ServeHTTP implements http.Handler for the entire router
}

// Server runs the catalog HTTP API.
type Server struct {
	config  shared.ServerConfig
	router  *BasicRouter
	logger  *log.Logger
	httpSrv *http.Server
}

// New wires the middleware stack and the [CatalogHandler] for store into a [Server].
func New(store *catalog.Store, config shared.ServerConfig, logger *log.Logger) *Server {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	logger = shared.WithLogger(logger, "component", "server")

	router := NewBasicRouter()
	router.Use(
		Recover(logger),
		RequestLogger(logger),
		RateLimit(NewLimiter(config.RateLimit, config.Burst)),
	)
	router.Handler(NewCatalogHandler(store, logger))

	return &Server{
		config: config,
		router: router,
		logger: logger,
		httpSrv: &http.Server{
			Addr:              config.Addr(),
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Handler returns the fully wrapped router.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Addr returns the address the server listens on.
func (s *Server) Addr() string {
	return s.httpSrv.Addr
}

// ListenAndServe serves until ctx is cancelled, then shuts down within the configured timeout.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.httpSrv.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.httpSrv.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	errs := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", ln.Addr().String())
		errs <- s.httpSrv.Serve(ln)
	}()

	select {
	case err := <-errs:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	timeout := s.config.ShutdownTimeout.Duration
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	s.logger.Info("shutting down", "timeout", timeout)
	if err := s.httpSrv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	if err := <-errs; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
