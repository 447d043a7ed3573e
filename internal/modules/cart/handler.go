package cart

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/ecobazaar/ecobazaar-backend/internal/modules/auth"
	"github.com/ecobazaar/ecobazaar-backend/internal/modules/user"
	"github.com/go-chi/chi/v5"
)

// Handler exposes the customer cart endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux, authn func(http.Handler) http.Handler) {
	r.Route("/api/v1/cart", func(r chi.Router) {
		r.Use(authn, auth.RequireRole(user.RoleCustomer))
		r.Get("/", h.view)                                // GET    /api/v1/cart
		r.Post("/items", h.addItem)                       // POST   /api/v1/cart/items
		r.Patch("/items/{product_id}", h.setQuantity)     // PATCH  /api/v1/cart/items/{product_id}
		r.Delete("/items/{product_id}", h.removeItem)     // DELETE /api/v1/cart/items/{product_id}
		r.Delete("/", h.clear)                            // DELETE /api/v1/cart
	})
}

func (h *Handler) view(w http.ResponseWriter, r *http.Request) {
	claims, _ := auth.ClaimsFromContext(r.Context())
	summary, err := h.service.View(r.Context(), claims.Email)
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, summary)
}

func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	claims, _ := auth.ClaimsFromContext(r.Context())
	type request struct {
		ProductID string `json:"product_id"`
	}
	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	summary, err := h.service.AddProduct(r.Context(), claims.Email, req.ProductID)
	if err != nil {
		code := http.StatusInternalServerError
		if strings.Contains(err.Error(), "not found") {
			code = http.StatusNotFound
		} else if strings.Contains(err.Error(), "no longer available") {
			code = http.StatusUnprocessableEntity
		}
		respond(w, code, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, summary)
}

func (h *Handler) setQuantity(w http.ResponseWriter, r *http.Request) {
	claims, _ := auth.ClaimsFromContext(r.Context())
	type request struct {
		Quantity int `json:"quantity"`
	}
	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	summary, err := h.service.SetQuantity(r.Context(), claims.Email, chi.URLParam(r, "product_id"), req.Quantity)
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, summary)
}

func (h *Handler) removeItem(w http.ResponseWriter, r *http.Request) {
	claims, _ := auth.ClaimsFromContext(r.Context())
	summary, err := h.service.RemoveProduct(r.Context(), claims.Email, chi.URLParam(r, "product_id"))
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, summary)
}

func (h *Handler) clear(w http.ResponseWriter, r *http.Request) {
	claims, _ := auth.ClaimsFromContext(r.Context())
	if err := h.service.Clear(r.Context(), claims.Email); err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, map[string]string{"status": "cart cleared"})
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
