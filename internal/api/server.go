package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	telegramify "github.com/riverfjs/telegramify-html"
	"github.com/riverfjs/telegramify-html/internal/types"
)

// maxBodyBytes caps a render request body.
const maxBodyBytes = 1 << 20

// RenderRequest is the body of POST /v1/render.
type RenderRequest struct {
	Markdown  string `json:"markdown"`
	MaxLength int    `json:"max_length,omitempty"`
	Plain     bool   `json:"plain,omitempty"`
}

// RenderResponse carries the full rendering and its transport-sized chunks.
type RenderResponse struct {
	ID        string   `json:"id"`
	ParseMode string   `json:"parse_mode"`
	HTML      string   `json:"html"`
	Chunks    []string `json:"chunks"`
}

type Server struct {
	router *chi.Mux
	port   int
	config *types.RenderConfig
	logger *slog.Logger
	http   *http.Server
}

// NewServer builds the render service. A nil config uses the defaults.
func NewServer(port int, config *types.RenderConfig, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	cfg := config.Clone()
	cfg.Normalize()

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	s := &Server{
		router: router,
		port:   port,
		config: cfg,
		logger: logger,
	}

	router.Get("/health", s.health)
	router.Route("/v1", func(r chi.Router) {
		r.Post("/render", s.render)
	})

	return s
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.logger.Info("API server starting", "addr", addr)
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) render(w http.ResponseWriter, r *http.Request) {
	var req RenderRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid JSON: %v", err))
		return
	}
	if strings.TrimSpace(req.Markdown) == "" {
		writeError(w, http.StatusBadRequest, telegramify.ErrEmptyMarkdown.Error())
		return
	}

	maxLength := req.MaxLength
	if maxLength <= 0 {
		maxLength = s.config.MaxLength
	}

	resp := RenderResponse{
		ID:        uuid.NewString(),
		ParseMode: telegramify.ParseModeHTML,
	}
	opts := []telegramify.Option{telegramify.WithConfig(s.config), telegramify.WithLogger(s.logger)}
	if req.Plain {
		resp.ParseMode = telegramify.ParseModeNone
		resp.HTML = telegramify.PlainText(req.Markdown, opts...)
	} else {
		resp.HTML = telegramify.Convert(req.Markdown, opts...)
	}
	resp.Chunks = telegramify.SplitMessage(resp.HTML, maxLength)

	s.logger.Debug("rendered",
		"id", resp.ID,
		"request_id", middleware.GetReqID(r.Context()),
		"chunks", len(resp.Chunks),
		"plain", req.Plain,
	)
	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
