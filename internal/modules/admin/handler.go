package admin

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/ecobazaar/ecobazaar-backend/internal/modules/auth"
	"github.com/ecobazaar/ecobazaar-backend/internal/modules/user"
	"github.com/go-chi/chi/v5"
)

// Handler exposes the admin dashboard endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux, authn func(http.Handler) http.Handler) {
	r.Route("/api/v1/admin", func(r chi.Router) {
		r.Use(authn, auth.RequireRole(user.RoleAdmin))
		r.Get("/reports/carbon", h.carbonReport)         // GET    /api/v1/admin/reports/carbon
		r.Get("/customers", h.listCustomers)             // GET    /api/v1/admin/customers
		r.Get("/sellers", h.listSellers)                 // GET    /api/v1/admin/sellers
		r.Get("/sellers/{id}/details", h.sellerDetails)  // GET    /api/v1/admin/sellers/{id}/details
		r.Post("/sellers/{id}/approve", h.approveSeller) // POST   /api/v1/admin/sellers/{id}/approve
		r.Get("/users/{id}", h.getUser)                  // GET    /api/v1/admin/users/{id}
		r.Delete("/users/{id}", h.deleteAccount)         // DELETE /api/v1/admin/users/{id}
	})
}

func (h *Handler) carbonReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.service.CarbonReport(r.Context())
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, report)
}

func (h *Handler) listCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.service.ListCustomers(r.Context())
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, customers)
}

func (h *Handler) listSellers(w http.ResponseWriter, r *http.Request) {
	sellers, err := h.service.ListSellers(r.Context())
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, sellers)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	u, err := h.service.GetUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respond(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, u)
}

func (h *Handler) sellerDetails(w http.ResponseWriter, r *http.Request) {
	details, err := h.service.SellerDetails(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		code := http.StatusInternalServerError
		if strings.Contains(err.Error(), "not found") {
			code = http.StatusNotFound
		} else if strings.Contains(err.Error(), "not a seller") {
			code = http.StatusUnprocessableEntity
		}
		respond(w, code, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, details)
}

func (h *Handler) approveSeller(w http.ResponseWriter, r *http.Request) {
	if err := h.service.ApproveSeller(r.Context(), chi.URLParam(r, "id")); err != nil {
		code := http.StatusInternalServerError
		if strings.Contains(err.Error(), "not found") {
			code = http.StatusNotFound
		} else if strings.Contains(err.Error(), "not a seller") {
			code = http.StatusUnprocessableEntity
		}
		respond(w, code, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, map[string]string{"status": "seller approved"})
}

func (h *Handler) deleteAccount(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteAccount(r.Context(), chi.URLParam(r, "id")); err != nil {
		code := http.StatusInternalServerError
		if strings.Contains(err.Error(), "not found") {
			code = http.StatusNotFound
		} else if strings.Contains(err.Error(), "cannot be deleted") {
			code = http.StatusForbidden
		}
		respond(w, code, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, map[string]string{"status": "account deleted"})
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
