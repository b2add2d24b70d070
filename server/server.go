// Package server exposes the solver over a small JSON HTTP API.
//
//	POST   /v1/solve       solve synchronously
//	POST   /v1/jobs        submit an asynchronous job (202 + Location)
//	GET    /v1/jobs/{id}   poll a job
//	DELETE /v1/jobs/{id}   cancel a job
//	GET    /healthz        liveness
//
// Request bodies are cost matrices in any matrix.Format, chosen by
// Content-Type (JSON when absent).
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/katalvlaran/littletsp/solver"
)

// maxBodyBytes caps request bodies; a 20×20 matrix is a few kilobytes.
const maxBodyBytes = 1 << 20

// Config holds listener settings.
type Config struct {
	Addr         string // e.g. ":8080" or "127.0.0.1:0" for a random port
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Server wraps the HTTP server and the solver it fronts.
type Server struct {
	httpServer *http.Server
	svc        *solver.Service
	logger     *log.Logger
}

// New builds a server. It does not listen until Run.
func New(cfg Config, svc *solver.Service, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{svc: svc, logger: logger}
	s.httpServer = &http.Server{
		Addr:         cfg.Addr,
		Handler:      s.Handler(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  2 * time.Minute,
	}
	return s
}

// Handler returns the routed API.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/solve", s.handleSolve)
		r.Post("/jobs", s.handleSubmit)
		r.Get("/jobs/{id}", s.handleGetJob)
		r.Delete("/jobs/{id}", s.handleCancelJob)
	})
	return r
}

// Run listens on the configured address and serves until ctx is done, then
// shuts down gracefully. ready, when non-nil, receives the bound address.
func (s *Server) Run(ctx context.Context, ready chan<- string) error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}
	addr := ln.Addr().String()
	s.logger.Info("listening", "addr", addr)
	if ready != nil {
		ready <- addr
	}

	errc := make(chan error, 1)
	go func() { errc <- s.httpServer.Serve(ln) }()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	s.logger.Info("shutting down")
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return nil
}

// logRequests logs one line per request at debug level, and failures at
// warn.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)

		kv := []any{
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start).Round(time.Microsecond),
			"request_id", middleware.GetReqID(r.Context()),
		}
		if ww.Status() >= http.StatusInternalServerError {
			s.logger.Warn("request failed", kv...)
			return
		}
		s.logger.Debug("request", kv...)
	})
}
