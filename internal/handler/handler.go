package handler

import (
	"net/http"

	"wordregistry/internal/service"

	"go.uber.org/zap"
)

// Handler serves the words HTTP API
type Handler struct {
	wordService *service.WordService
	logger      *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(wordService *service.WordService, logger *zap.Logger) *Handler {
	return &Handler{
		wordService: wordService,
		logger:      logger,
	}
}

// RegisterRoutes registers all API routes on mux
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /words", h.handleList)
	mux.HandleFunc("POST /words", h.handleAdd)
	mux.HandleFunc("PATCH /words/{id}", h.handleUpdate)
	mux.HandleFunc("DELETE /words/{id}", h.handleDelete)

	mux.HandleFunc("GET /healthz", h.handleHealth)
}

// Routes returns a mux with all API routes registered
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	h.RegisterRoutes(mux)
	return mux
}
