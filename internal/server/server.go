package server

import (
	"log/slog"
	"net/http"

	"github.com/claude/tenrm/internal/load"
	"github.com/go-chi/chi/v5"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	calc   *load.Calculator
	log    *slog.Logger
	router chi.Router
}

// New creates a new Server with all routes configured.
func New(calc *load.Calculator, log *slog.Logger) *Server {
	s := &Server{
		calc:   calc,
		log:    log,
		router: chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestID)
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	s.router.Get("/healthz", s.handleHealth)

	s.router.Route("/api/v1", func(r chi.Router) {
		r.Get("/programs", s.handleListPrograms)
		r.Get("/programs/{name}", s.handleGetProgram)
		r.Get("/programs/{name}/weeks/{week}", s.handleGetPhase)
		r.Post("/table", s.handleComputeTable)
	})
}

// SetMCP mounts an MCP handler at /mcp. When apiKey is non-empty the
// endpoint requires it in the X-API-Key header.
func (s *Server) SetMCP(h http.Handler, apiKey string) {
	s.router.Route("/mcp", func(r chi.Router) {
		if apiKey != "" {
			r.Use(APIKeyAuth(apiKey))
		}
		r.Handle("/", h)
	})
}
