// Package server exposes the flavor-text proxy used by prince.HTTPClient.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/jadiha/little-prince/internal/prince"
	"github.com/jadiha/little-prince/internal/util"
)

const maxBodyBytes = 1 << 16

// Server answers POST /api/prince. Without a generator, or when the generator
// fails, it still answers 200 with a line from the fallback bank.
type Server struct {
	mu        sync.RWMutex
	generator prince.Generator
	catalog   prince.Catalog
	timeout   time.Duration
	pick      func(n int) int
}

// Option configures a Server.
type Option func(*Server)

// WithCatalog overrides the embedded story planet catalog.
func WithCatalog(c prince.Catalog) Option {
	return func(s *Server) { s.catalog = c }
}

// WithTimeout bounds a single generator call.
func WithTimeout(d time.Duration) Option {
	return func(s *Server) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// WithPicker makes fallback selection deterministic.
func WithPicker(pick func(n int) int) Option {
	return func(s *Server) { s.pick = pick }
}

func New(g prince.Generator, opts ...Option) *Server {
	s := &Server{
		generator: g,
		catalog:   prince.DefaultCatalog(),
		timeout:   prince.DefaultTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetGenerator swaps the backend, e.g. after a config reload.
func (s *Server) SetGenerator(g prince.Generator) {
	s.mu.Lock()
	s.generator = g
	s.mu.Unlock()
}

func (s *Server) currentGenerator() prince.Generator {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.generator
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)

	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "use POST")
	})
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "not_found", "no such route")
	})

	r.Get("/healthz", s.handleHealth)
	r.Post("/api/prince", s.handlePrince)
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"generator": s.currentGenerator() != nil,
	})
}

func (s *Server) handlePrince(w http.ResponseWriter, r *http.Request) {
	var req prince.Request
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "request body must be a prince request")
		return
	}

	msg, err := s.generate(r.Context(), req)
	if err != nil {
		util.Debugf("server: %s falling back: %v", req.Context, err)
		msg = prince.PickFallback(req.Context, s.pick)
	}
	writeJSON(w, http.StatusOK, prince.Response{Message: msg})
}

var errNoGenerator = errors.New("no generator configured")

func (s *Server) generate(ctx context.Context, req prince.Request) (string, error) {
	g := s.currentGenerator()
	if g == nil {
		return "", errNoGenerator
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	d := prince.Direct{Generator: g, Catalog: s.catalog}
	return d.Message(ctx, req)
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
