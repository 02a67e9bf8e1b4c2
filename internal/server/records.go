package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"groove/internal/api"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	health := api.HealthStatus{Status: "ok", Database: "ok"}
	status := http.StatusOK
	if err := s.store.Ping(r.Context()); err != nil {
		health.Status = "degraded"
		health.Database = err.Error()
		status = http.StatusServiceUnavailable
	}
	s.writeJSON(w, status, health)
}

func (s *Server) handleRecords(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.listRecords(w, r)
	case http.MethodPost:
		s.createRecord(w, r)
	default:
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *Server) listRecords(w http.ResponseWriter, r *http.Request) {
	query := api.ParseRecordListQuery(r.URL.Query())
	result, err := s.catalog.List(r.Context(), query)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, api.FromRecordPage(result))
}

func (s *Server) createRecord(w http.ResponseWriter, r *http.Request) {
	var req api.CreateRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	input, err := api.ValidateCreateRecord(req)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	record, err := s.catalog.Create(r.Context(), input)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, api.FromRecord(record))
}

func (s *Server) handleRecord(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/records/")
	if id == "" || strings.Contains(id, "/") {
		s.writeError(w, http.StatusNotFound, "record not found")
		return
	}

	switch r.Method {
	case http.MethodGet:
		record, err := s.catalog.GetByID(r.Context(), id)
		if err != nil {
			s.writeDomainError(w, err)
			return
		}
		s.writeJSON(w, http.StatusOK, api.FromRecord(record))
	case http.MethodPut, http.MethodPatch:
		var req api.UpdateRecordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		input, err := api.ValidateUpdateRecord(req)
		if err != nil {
			s.writeDomainError(w, err)
			return
		}
		record, err := s.catalog.Update(r.Context(), id, input)
		if err != nil {
			s.writeDomainError(w, err)
			return
		}
		s.writeJSON(w, http.StatusOK, api.FromRecord(record))
	case http.MethodDelete:
		if err := s.catalog.Delete(r.Context(), id); err != nil {
			s.writeDomainError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}
