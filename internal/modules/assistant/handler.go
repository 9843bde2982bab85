package assistant

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/shopchat-labs/shopchat-backend/internal/session"
)

// Handler exposes the assistant query endpoint.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Post("/api/v1/assistant/query", h.query)
}

// QueryRequest is the payload for one free-text storefront query.
type QueryRequest struct {
	Query string `json:"query"`
}

func (h *Handler) query(w http.ResponseWriter, r *http.Request) {
	userID := session.UserID(r.Context())
	if userID == "" {
		http.Error(w, "session required", http.StatusUnauthorized)
		return
	}
	var req QueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		http.Error(w, "query is required", http.StatusBadRequest)
		return
	}
	reply, err := h.service.Respond(r.Context(), userID, req.Query)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(reply)
}
