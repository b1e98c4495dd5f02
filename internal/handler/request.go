package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"wordregistry/internal/domain"
)

const maxBodyBytes = 1 << 20

// wordRequest is the raw body of POST /words and PATCH /words/{id}
type wordRequest struct {
	Text *string `json:"text"`
}

// wordCommand is a body that passed boundary validation
type wordCommand struct {
	Text string
}

// parseWordCommand decodes the body and rejects a missing or blank text
func parseWordCommand(w http.ResponseWriter, r *http.Request) (wordCommand, error) {
	var req wordRequest

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		return wordCommand{}, &domain.ValidationError{Field: "body", Message: "invalid request body"}
	}

	if req.Text == nil || strings.TrimSpace(*req.Text) == "" {
		return wordCommand{}, domain.ErrTextRequired()
	}

	return wordCommand{Text: *req.Text}, nil
}
