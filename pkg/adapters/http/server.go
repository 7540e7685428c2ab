package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/aretw0/termgen/pkg/codec"
	"github.com/aretw0/termgen/pkg/domain"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// DefaultMaxCount caps the number of terms a single request may ask for.
const DefaultMaxCount = 10000

// Engine defines what the HTTP adapter needs from termgen.
type Engine interface {
	Generate(ctx context.Context, n int) ([]domain.Term, error)
}

// Server serves generated terms over HTTP.
type Server struct {
	Engine   Engine
	MaxCount int
	Logger   *slog.Logger
}

// Option configures the handler.
type Option func(*Server)

// WithMaxCount overrides DefaultMaxCount.
func WithMaxCount(n int) Option {
	return func(s *Server) {
		s.MaxCount = n
	}
}

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.Logger = logger
	}
}

// WithMetrics mounts h (usually promhttp.Handler()) at /metrics.
func WithMetrics(h http.Handler) func(chi.Router) {
	return func(r chi.Router) {
		r.Handle("/metrics", h)
	}
}

// NewHandler creates a new HTTP handler for the engine.
// Extra routes can be mounted with mounts, e.g. WithMetrics.
func NewHandler(engine Engine, opts []Option, mounts ...func(chi.Router)) http.Handler {
	server := &Server{
		Engine:   engine,
		MaxCount: DefaultMaxCount,
		Logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(server)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/terms", server.Terms)

	for _, mount := range mounts {
		mount(r)
	}
	return r
}

// Terms handles GET /terms?count=N. The body uses the same line format as the output file.
func (s *Server) Terms(w http.ResponseWriter, r *http.Request) {
	count := 1
	if raw := r.URL.Query().Get("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 || n > s.MaxCount {
			http.Error(w, fmt.Sprintf("count must be an integer in [0, %d]", s.MaxCount), http.StatusBadRequest)
			s.Logger.Warn("Terms: invalid count", "count", raw)
			return
		}
		count = n
	}

	terms, err := s.Engine.Generate(r.Context(), count)
	if err != nil {
		http.Error(w, fmt.Sprintf("Generate error: %v", err), http.StatusInternalServerError)
		s.Logger.Error("Generate failed", "error", err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Term-Count", strconv.Itoa(len(terms)))
	if err := codec.Write(w, terms); err != nil {
		s.Logger.Error("Terms response write failed", "error", err)
	}
}
