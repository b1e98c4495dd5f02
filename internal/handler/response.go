package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"wordregistry/internal/domain"

	"go.uber.org/zap"
)

type messageResponse struct {
	Message string       `json:"message"`
	Word    *domain.Word `json:"word,omitempty"`
	Error   string       `json:"error,omitempty"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Warn("Failed to write response", zap.Error(err))
	}
}

// writeError maps the error taxonomy onto status codes.
// failMessage is used for server errors only.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, failMessage string, err error) {
	var dupErr *domain.DuplicateEntryError

	switch {
	case errors.Is(err, domain.ErrValidation):
		h.writeJSON(w, http.StatusBadRequest, messageResponse{Message: err.Error()})

	case errors.As(err, &dupErr):
		h.writeJSON(w, http.StatusBadRequest, messageResponse{
			Message: "Word already exists",
			Word:    dupErr.Existing,
		})

	case errors.Is(err, domain.ErrNotFound):
		h.writeJSON(w, http.StatusNotFound, messageResponse{Message: "Word not found"})

	default:
		h.logger.Error(failMessage,
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		h.writeJSON(w, http.StatusInternalServerError, messageResponse{
			Message: failMessage,
			Error:   causeMessage(err),
		})
	}
}

// causeMessage strips the operation prefix a StorageError adds
func causeMessage(err error) string {
	var sErr *domain.StorageError
	if errors.As(err, &sErr) && sErr.Err != nil {
		return sErr.Err.Error()
	}
	return err.Error()
}
