package summary

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/nestegg/internal/settings"
	"github.com/MrJamesThe3rd/nestegg/internal/summary"
)

type Handler struct {
	summarySvc  *summary.Service
	settingsSvc *settings.Service
}

func NewHandler(summarySvc *summary.Service, settingsSvc *settings.Service) *Handler {
	return &Handler{summarySvc: summarySvc, settingsSvc: settingsSvc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/summary", h.overview)
	r.Get("/settings", h.getSettings)
	r.Put("/settings", h.updateSettings)
}

func (h *Handler) overview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.summarySvc.Overview(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toOverviewResponse(overview)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) getSettings(w http.ResponseWriter, r *http.Request) {
	row, err := h.settingsSvc.Get(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toSettingsResponse(row)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateSettingsRequest struct {
	TotalTarget float64 `json:"total_target"`
}

func (h *Handler) updateSettings(w http.ResponseWriter, r *http.Request) {
	var req updateSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	row, err := h.settingsSvc.Update(r.Context(), req.TotalTarget)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toSettingsResponse(row)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
