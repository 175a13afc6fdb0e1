package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"symptomchecker/internal/analyzer"
	"symptomchecker/internal/config"
	"symptomchecker/internal/store"
)

type Server struct {
	cfg      config.Config
	router   *chi.Mux
	server   *http.Server
	analyzer *analyzer.Analyzer
	store    store.Store
}

func New(cfg config.Config, analyzer *analyzer.Analyzer, store store.Store) *Server {
	s := &Server{
		cfg:      cfg,
		router:   chi.NewRouter(),
		analyzer: analyzer,
		store:    store,
	}

	s.setupRoutes()

	s.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:      s.router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	return s
}

func (s *Server) setupRoutes() {
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	// Outer bound on a whole request; the provider call has its own tighter
	// timeout from config.
	s.router.Use(middleware.Timeout(s.cfg.Server.WriteTimeout))

	// API routes
	s.router.Route("/api/v1", func(r chi.Router) {
		r.Post("/analyze", s.handleAnalyze)
		r.Get("/history", s.handleHistory)
		r.Get("/queries/{id}", s.handleQuery)
		r.Get("/health", s.handleHealth)
	})

	// Serve static files
	fs := http.FileServer(http.Dir("web/static"))
	s.router.Handle("/*", fs)
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Run() error {
	serverErrors := make(chan error, 1)

	go func() {
		slog.Info("starting server", "address", s.server.Addr)
		serverErrors <- s.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		slog.Info("starting shutdown", "signal", sig)

		// Give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := s.server.Shutdown(ctx); err != nil {
			return fmt.Errorf("shutdown error: %w", err)
		}
	}

	return nil
}
