package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httplog"

	"quiz-solver/internal/application/port/input"
	"quiz-solver/internal/application/port/output"
)

// Config carries the two process-wide expected values every inbound request
// is validated against. Built once at startup, never read from the
// environment here.
type Config struct {
	Email  string
	Secret string
}

type Server struct {
	cfg    Config
	runner input.ChainRunner
	logger output.LoggerPort
}

func NewServer(cfg Config, runner input.ChainRunner, logger output.LoggerPort) *Server {
	return &Server{cfg: cfg, runner: runner, logger: logger}
}

func (s *Server) Router() http.Handler {
	requestLogger := httplog.NewLogger("quiz-solver", httplog.Options{
		JSON:    true,
		Concise: true,
	})

	r := chi.NewRouter()
	r.Use(httplog.RequestLogger(requestLogger))
	r.Use(middleware.Recoverer)

	r.Post("/solve", s.solve)
	r.Get("/", s.root)
	r.Get("/health", s.health)

	return r
}

type quizRequest struct {
	Email  string `json:"email"`
	Secret string `json:"secret"`
	URL    string `json:"url"`
}

func (s *Server) solve(w http.ResponseWriter, r *http.Request) {
	var req quizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "invalid request body"})
		return
	}

	if req.Secret != s.cfg.Secret {
		s.logger.Warn("Secret mismatch on /solve")
		writeJSON(w, http.StatusForbidden, map[string]string{"detail": "Invalid secret"})
		return
	}
	if req.Email != s.cfg.Email {
		s.logger.Warn("Email mismatch on /solve", "email", req.Email)
		writeJSON(w, http.StatusForbidden, map[string]string{"detail": "Invalid email"})
		return
	}

	s.logger.Info("Received quiz request", "email", req.Email, "url", req.URL)

	result, err := s.runner.Run(r.Context(), req.URL)
	if err != nil {
		// Internal failures never fail the transport-level request.
		s.logger.Error("Quiz run failed", "error", err)
		writeJSON(w, http.StatusOK, map[string]any{
			"status":  "error",
			"message": err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "success",
		"message": "Quiz solving completed",
		"result":  result,
	})
}

func (s *Server) root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "LLM Quiz Solver API is running",
		"status":  "ok",
		"email":   s.cfg.Email,
		"endpoints": map[string]string{
			"POST /solve": "Submit quiz URL to solve",
			"GET /health": "Check API health",
		},
	})
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "llm-quiz-solver",
	})
}

func writeJSON(w http.ResponseWriter, statusCode int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(value)
}
