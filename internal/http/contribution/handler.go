package contribution

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/nestegg/internal/contribution"
)

type Handler struct {
	svc *contribution.Service
}

func NewHandler(svc *contribution.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Delete("/{id}", h.delete)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	cs, err := h.svc.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(cs)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type createContributionRequest struct {
	AccountID *uuid.UUID `json:"account_id"`
	Amount    float64    `json:"amount"`
	Date      *string    `json:"date"`
	Recurring bool       `json:"recurring"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createContributionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	c, err := h.svc.Create(r.Context(), contribution.CreateParams{
		AccountID: req.AccountID,
		Amount:    req.Amount,
		Date:      req.Date,
		Recurring: req.Recurring,
	})
	if err != nil {
		if errors.Is(err, contribution.ErrAccountNotFound) {
			http.Error(w, "account not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(c)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		if errors.Is(err, contribution.ErrNotFound) {
			http.Error(w, "contribution not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
