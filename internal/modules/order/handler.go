package order

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/ecobazaar/ecobazaar-backend/internal/modules/auth"
	"github.com/ecobazaar/ecobazaar-backend/internal/modules/user"
	"github.com/go-chi/chi/v5"
)

// Handler exposes order HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux, authn func(http.Handler) http.Handler) {
	r.Route("/api/v1/orders", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(authn, auth.RequireRole(user.RoleCustomer))
			r.Post("/", h.placeOrder)                 // POST   /api/v1/orders
			r.Get("/", h.listMyOrders)                // GET    /api/v1/orders
			r.Get("/summary", h.customerSummary)      // GET    /api/v1/orders/summary
			r.Get("/{id}", h.getOrder)                // GET    /api/v1/orders/{id}
			r.Get("/{id}/timeline", h.orderTimeline)  // GET    /api/v1/orders/{id}/timeline
			r.Delete("/{id}", h.cancelOrder)          // DELETE /api/v1/orders/{id}
		})
		r.Group(func(r chi.Router) {
			r.Use(authn, auth.RequireRole(user.RoleSeller))
			r.Get("/seller", h.listSellerOrders)      // GET    /api/v1/orders/seller
			r.Patch("/{id}/status", h.updateStatus)   // PATCH  /api/v1/orders/{id}/status
		})
		r.Group(func(r chi.Router) {
			r.Use(authn, auth.RequireRole(user.RoleAdmin))
			r.Get("/all", h.listAllOrders)            // GET    /api/v1/orders/all
		})
	})
}

func (h *Handler) placeOrder(w http.ResponseWriter, r *http.Request) {
	claims, _ := auth.ClaimsFromContext(r.Context())
	var req PlaceOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	o, err := h.service.PlaceOrder(r.Context(), claims.Email, req)
	if err != nil {
		code := http.StatusInternalServerError
		msg := err.Error()
		if strings.Contains(msg, "insufficient inventory") || strings.Contains(msg, "no longer available") {
			code = http.StatusUnprocessableEntity
		} else if strings.Contains(msg, "cart is empty") || strings.Contains(msg, "not found") {
			code = http.StatusBadRequest
		}
		respond(w, code, map[string]string{"error": msg})
		return
	}
	respond(w, http.StatusCreated, o)
}

func (h *Handler) listMyOrders(w http.ResponseWriter, r *http.Request) {
	claims, _ := auth.ClaimsFromContext(r.Context())
	orders, err := h.service.ListCustomerOrders(r.Context(), claims.Email)
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, orders)
}

func (h *Handler) customerSummary(w http.ResponseWriter, r *http.Request) {
	claims, _ := auth.ClaimsFromContext(r.Context())
	summary, err := h.service.CustomerSummary(r.Context(), claims.Email)
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, summary)
}

func (h *Handler) listAllOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.ListAllOrders(r.Context())
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, orders)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	claims, _ := auth.ClaimsFromContext(r.Context())
	o, err := h.service.GetOrder(r.Context(), chi.URLParam(r, "id"), claims.Email)
	if err != nil {
		respond(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, o)
}

func (h *Handler) orderTimeline(w http.ResponseWriter, r *http.Request) {
	claims, _ := auth.ClaimsFromContext(r.Context())
	tl, err := h.service.TrackOrder(r.Context(), chi.URLParam(r, "id"), claims.Email)
	if err != nil {
		respond(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, tl)
}

func (h *Handler) cancelOrder(w http.ResponseWriter, r *http.Request) {
	claims, _ := auth.ClaimsFromContext(r.Context())
	if err := h.service.CancelOrder(r.Context(), chi.URLParam(r, "id"), claims.Email); err != nil {
		code := http.StatusInternalServerError
		if strings.Contains(err.Error(), "only PENDING") {
			code = http.StatusUnprocessableEntity
		} else if strings.Contains(err.Error(), "not found") {
			code = http.StatusNotFound
		}
		respond(w, code, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, map[string]string{"status": "order cancelled"})
}

func (h *Handler) listSellerOrders(w http.ResponseWriter, r *http.Request) {
	claims, _ := auth.ClaimsFromContext(r.Context())
	orders, err := h.service.ListSellerOrders(r.Context(), claims.Email)
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, orders)
}

func (h *Handler) updateStatus(w http.ResponseWriter, r *http.Request) {
	claims, _ := auth.ClaimsFromContext(r.Context())
	var req UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	o, err := h.service.UpdateStatus(r.Context(), chi.URLParam(r, "id"), req, claims.Email)
	if err != nil {
		code := http.StatusInternalServerError
		if strings.Contains(err.Error(), "cannot transition") {
			code = http.StatusUnprocessableEntity
		} else if strings.Contains(err.Error(), "not found") {
			code = http.StatusNotFound
		} else if strings.Contains(err.Error(), "no items from this seller") {
			code = http.StatusForbidden
		}
		respond(w, code, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, o)
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
