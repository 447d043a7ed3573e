package seller

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/ecobazaar/ecobazaar-backend/internal/modules/auth"
	"github.com/ecobazaar/ecobazaar-backend/internal/modules/user"
	"github.com/go-chi/chi/v5"
)

// Handler exposes seller stats and profile endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux, authn func(http.Handler) http.Handler) {
	r.Route("/api/v1/seller", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(authn, auth.RequireRole(user.RoleSeller))
			r.Get("/stats", h.myStats)            // GET  /api/v1/seller/stats
			r.Get("/profile", h.myProfile)        // GET  /api/v1/seller/profile
			r.Post("/profile", h.completeProfile) // POST /api/v1/seller/profile
			r.Put("/profile", h.updateProfile)    // PUT  /api/v1/seller/profile
		})
		r.Group(func(r chi.Router) {
			r.Use(authn, auth.RequireRole(user.RoleAdmin))
			r.Post("/{email}/settle", h.settle) // POST /api/v1/seller/{email}/settle
		})
	})
}

func (h *Handler) myStats(w http.ResponseWriter, r *http.Request) {
	claims, _ := auth.ClaimsFromContext(r.Context())
	stats, err := h.service.StatsFor(r.Context(), claims.Email)
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, stats)
}

func (h *Handler) myProfile(w http.ResponseWriter, r *http.Request) {
	claims, _ := auth.ClaimsFromContext(r.Context())
	profile, err := h.service.Profile(r.Context(), claims.Email)
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if profile == nil {
		respond(w, http.StatusNotFound, map[string]string{"error": "profile not completed"})
		return
	}
	respond(w, http.StatusOK, profile)
}

func (h *Handler) completeProfile(w http.ResponseWriter, r *http.Request) {
	claims, _ := auth.ClaimsFromContext(r.Context())
	var req ProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	profile, err := h.service.CompleteProfile(r.Context(), claims.Email, req)
	if err != nil {
		code := http.StatusBadRequest
		if strings.Contains(err.Error(), "already completed") {
			code = http.StatusConflict
		}
		respond(w, code, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusCreated, profile)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	claims, _ := auth.ClaimsFromContext(r.Context())
	var req ProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	profile, err := h.service.UpdateProfile(r.Context(), claims.Email, req)
	if err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, profile)
}

func (h *Handler) settle(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	if err := h.service.SettlePayouts(r.Context(), email); err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, map[string]string{"status": "payouts settled"})
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
