package cart

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/shopchat-labs/shopchat-backend/internal/modules/catalog"
	"github.com/shopchat-labs/shopchat-backend/internal/session"
)

// Handler exposes cart HTTP endpoints. The catalog service resolves the
// denormalized product name captured on each add.
type Handler struct {
	service Service
	catalog catalog.Service
}

func NewHandler(service Service, catalogService catalog.Service) *Handler {
	return &Handler{service: service, catalog: catalogService}
}

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/cart", func(r chi.Router) {
		r.Get("/", h.listCart)
		r.Post("/items", h.addItem)
		r.Delete("/items/{productID}", h.removeItem)
		r.Delete("/", h.clearCart)
		r.Post("/checkout", h.checkout)
	})
}

type messageResponse struct {
	Message string `json:"message"`
}

func (h *Handler) listCart(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireSession(w, r)
	if !ok {
		return
	}
	items, err := h.service.List(r.Context(), userID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if items == nil {
		items = []*Item{}
	}
	respond(w, http.StatusOK, items)
}

func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireSession(w, r)
	if !ok {
		return
	}
	var req AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}
	p, err := h.catalog.GetProduct(r.Context(), req.ProductID)
	if err != nil {
		http.Error(w, "product not found", http.StatusNotFound)
		return
	}
	msg, err := h.service.Add(r.Context(), userID, p.ID, p.ProductName, req.Quantity)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, ErrQuantityRange) {
			status = http.StatusBadRequest
		}
		http.Error(w, err.Error(), status)
		return
	}
	respond(w, http.StatusOK, messageResponse{Message: msg})
}

func (h *Handler) removeItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireSession(w, r)
	if !ok {
		return
	}
	productID, err := strconv.ParseInt(chi.URLParam(r, "productID"), 10, 64)
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}
	msg, err := h.service.Remove(r.Context(), userID, productID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	respond(w, http.StatusOK, messageResponse{Message: msg})
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireSession(w, r)
	if !ok {
		return
	}
	msg, err := h.service.Clear(r.Context(), userID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	respond(w, http.StatusOK, messageResponse{Message: msg})
}

func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireSession(w, r)
	if !ok {
		return
	}
	msg, err := h.service.Checkout(r.Context(), userID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	respond(w, http.StatusOK, messageResponse{Message: msg})
}

func requireSession(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID := session.UserID(r.Context())
	if userID == "" {
		http.Error(w, "session required", http.StatusUnauthorized)
		return "", false
	}
	return userID, true
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
