package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"groove/internal/api"
	"groove/internal/catalog"
	"groove/internal/logging"
	"groove/internal/orders"
)

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("failed to encode response", logging.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}

// writeDomainError maps the typed core failures onto HTTP status codes.
// Anything unrecognized is a 500.
func (s *Server) writeDomainError(w http.ResponseWriter, err error) {
	var recordNotFound *orders.RecordNotFoundError
	switch {
	case errors.Is(err, api.ErrValidation):
		s.writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, catalog.ErrDuplicate):
		s.writeError(w, http.StatusConflict, err.Error())
	case errors.As(err, &recordNotFound):
		s.writeError(w, http.StatusNotFound, recordNotFound.Error())
	case errors.Is(err, catalog.ErrNotFound), errors.Is(err, orders.ErrNotFound):
		s.writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, orders.ErrInsufficientStock):
		s.writeError(w, http.StatusConflict, err.Error())
	default:
		s.logger.Error("request failed", logging.Error(err))
		s.writeError(w, http.StatusInternalServerError, "internal error")
	}
}
