package handler

import (
	"net/http"

	"go.uber.org/zap"
)

// handleList handles GET /words
func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	words, err := h.wordService.List(r.Context())
	if err != nil {
		h.writeError(w, r, "Error fetching words", err)
		return
	}

	h.writeJSON(w, http.StatusOK, words)
}

// handleAdd handles POST /words
func (h *Handler) handleAdd(w http.ResponseWriter, r *http.Request) {
	cmd, err := parseWordCommand(w, r)
	if err != nil {
		h.writeError(w, r, "Error adding word", err)
		return
	}

	word, err := h.wordService.Add(r.Context(), cmd.Text)
	if err != nil {
		h.writeError(w, r, "Error adding word", err)
		return
	}

	h.logger.Info("Word added",
		zap.String("id", word.ID),
		zap.String("text", word.Text),
	)

	h.writeJSON(w, http.StatusOK, messageResponse{
		Message: "Word added successfully",
		Word:    word,
	})
}

// handleUpdate handles PATCH /words/{id}
func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	cmd, err := parseWordCommand(w, r)
	if err != nil {
		h.writeError(w, r, "Error updating word", err)
		return
	}

	word, err := h.wordService.Update(r.Context(), id, cmd.Text)
	if err != nil {
		h.writeError(w, r, "Error updating word", err)
		return
	}

	h.logger.Info("Word updated",
		zap.String("id", word.ID),
		zap.String("text", word.Text),
	)

	h.writeJSON(w, http.StatusOK, messageResponse{
		Message: "Word updated successfully",
		Word:    word,
	})
}

// handleDelete handles DELETE /words/{id}
func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := h.wordService.Delete(r.Context(), id); err != nil {
		h.writeError(w, r, "Error deleting word", err)
		return
	}

	h.logger.Info("Word deleted", zap.String("id", id))

	h.writeJSON(w, http.StatusOK, messageResponse{Message: "Word deleted successfully"})
}

// handleHealth reports whether the backing store answers
func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := h.wordService.Ping(r.Context()); err != nil {
		h.logger.Warn("Health check failed", zap.Error(err))
		h.writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "unavailable",
			"error":  causeMessage(err),
		})
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
