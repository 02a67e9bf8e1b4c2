package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"groove/internal/api"
)

func (s *Server) handleOrders(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		query := api.ParseOrderListQuery(r.URL.Query())
		result, err := s.orders.List(r.Context(), query)
		if err != nil {
			s.writeDomainError(w, err)
			return
		}
		s.writeJSON(w, http.StatusOK, api.FromOrderPage(result))
	case http.MethodPost:
		var req api.CreateOrderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		input, err := api.ValidateCreateOrder(req)
		if err != nil {
			s.writeDomainError(w, err)
			return
		}
		order, err := s.orders.Create(r.Context(), input)
		if err != nil {
			s.writeDomainError(w, err)
			return
		}
		s.writeJSON(w, http.StatusCreated, api.FromOrder(order))
	default:
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *Server) handleOrder(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	id := strings.TrimPrefix(r.URL.Path, "/api/orders/")
	if id == "" || strings.Contains(id, "/") {
		s.writeError(w, http.StatusNotFound, "order not found")
		return
	}
	order, err := s.orders.GetByID(r.Context(), id)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, api.FromOrder(order))
}
