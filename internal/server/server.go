// Package server exposes the search pipeline over HTTP.
//
// Routes:
//
//	GET  /healthz           liveness and build version
//	GET  /mazes             preset names
//	GET  /mazes/{name}      one preset with its grid and endpoints
//	POST /run               search a caller-supplied maze
//	POST /{algorithm}       search a preset (bfs, dfs, greedy, astar)
//
// Failures are answered with {"error": {"code": ..., "message": ...}} and the
// status from [errs.HTTPStatus].
package server

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/matzehuels/mazetrace/pkg/pipeline"
	"github.com/matzehuels/mazetrace/pkg/search"
)

// Server is the HTTP front end. It is safe for concurrent use; every request
// runs its own search over shared read-only presets.
type Server struct {
	cfg    Config
	runner *pipeline.Runner
	logger *log.Logger
	router chi.Router
}

// New builds a server. A nil runner uses the built-in presets and a nil
// logger uses the default charm logger.
func New(cfg Config, runner *pipeline.Runner, logger *log.Logger) (*Server, error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.Default()
	}
	if runner == nil {
		runner = pipeline.NewRunner(nil, logger)
	}

	s := &Server{
		cfg:    cfg,
		runner: runner,
		logger: logger,
	}
	s.router = s.routes()
	return s, nil
}

// Handler returns the root handler, for mounting or for tests.
func (s *Server) Handler() http.Handler { return s.router }

// Config returns the effective configuration after defaults.
func (s *Server) Config() Config { return s.cfg }

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()

	r.Use(requestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(s.cfg.RequestTimeout))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.cfg.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{headerRequestID},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.NotFound(s.notFound)
	r.MethodNotAllowed(s.methodNotAllowed)

	r.Get("/healthz", s.handleHealth)
	r.Get("/mazes", s.handleListMazes)
	r.Get("/mazes/{name}", s.handleGetMaze)
	r.Post("/run", s.handleRun)
	for _, algo := range search.Algorithms() {
		r.Post("/"+algo.String(), s.handlePreset(algo))
	}
	return r
}

// ListenAndServe serves on the configured address until ctx is cancelled,
// then drains in-flight requests for up to ShutdownTimeout.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve is ListenAndServe on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadTimeout:       s.cfg.ReadTimeout,
		ReadHeaderTimeout: s.cfg.ReadTimeout,
		WriteTimeout:      s.cfg.WriteTimeout,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", ln.Addr().String(), "origins", s.cfg.AllowedOrigins)
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down", "timeout", s.cfg.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
