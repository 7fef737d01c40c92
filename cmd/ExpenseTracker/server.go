package main

import (
	"context"
	"github.com/sebuszqo/ExpenseTracker/internal/finance/interfaces"
	"github.com/sebuszqo/ExpenseTracker/internal/logging"
	"log/slog"
	"net/http"
	"slices"
	"strings"
)

type HealthChecker interface {
	Health(ctx context.Context) map[string]string
}

type routeRegistrar interface {
	RegisterRoutes(mux *http.ServeMux)
}

type Server struct {
	router         *http.ServeMux
	health         HealthChecker
	allowedOrigins []string
	handlers       []routeRegistrar
}

func NewServer(health HealthChecker, allowedOrigins []string, handlers ...routeRegistrar) *Server {
	return &Server{
		router:         http.NewServeMux(),
		health:         health,
		allowedOrigins: allowedOrigins,
		handlers:       handlers,
	}
}

func notFoundHandler(w http.ResponseWriter, _ *http.Request) {
	interfaces.RespondError(w, http.StatusNotFound, "Path not found")
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	stats := s.health.Health(r.Context())
	if stats["status"] != "up" {
		slog.WarnContext(r.Context(), "Database not ready", "error", stats["error"])
		interfaces.RespondJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "unavailable",
		})
		return
	}
	interfaces.RespondJSON(w, http.StatusOK, map[string]string{
		"status": "ready",
	})
}

func (s *Server) RegisterRoutes() {
	apiRoutes := http.NewServeMux()
	for _, h := range s.handlers {
		h.RegisterRoutes(apiRoutes)
	}
	apiRoutes.Handle("GET /api/ready", http.HandlerFunc(s.handleReady))
	apiRoutes.Handle("/api/", http.HandlerFunc(notFoundHandler))

	mainRouter := http.NewServeMux()
	mainRouter.Handle("/api/", apiRoutes)
	mainRouter.Handle("/", http.HandlerFunc(notFoundHandler))

	s.router = mainRouter
}

// Handler wraps the routes with CORS and request logging.
func (s *Server) Handler(logger *slog.Logger) http.Handler {
	return logging.Middleware(logger)(corsMiddleware(s.allowedOrigins)(s.router))
}

func corsMiddleware(allowedOrigins []string) func(http.Handler) http.Handler {
	allowAll := slices.Contains(allowedOrigins, "*")
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin != "" && (allowAll || slices.Contains(allowedOrigins, origin)) {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Methods", strings.Join([]string{
					http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions,
				}, ", "))
				w.Header().Set("Access-Control-Allow-Headers", "Content-Type, "+logging.HeaderRequestID)
				w.Header().Add("Vary", "Origin")
			}

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
